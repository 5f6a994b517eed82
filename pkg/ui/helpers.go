package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"eventick/pkg/event"
	"eventick/pkg/timer"
	"eventick/pkg/utils"
)

// refreshEvents reloads the event list into the table using the current
// sort settings. Countdown columns are recomputed from m.now, so this runs
// on every tick while the events view is visible.
func (m *Model) refreshEvents() {
	m.items = m.SortEvents(m.state.Events.List())

	tableRows := []table.Row{}
	for _, e := range m.items {
		tableRows = append(tableRows, table.Row{m.eventLine(e)})
	}
	m.table.SetRows(tableRows)

	if cursor := m.table.Cursor(); cursor >= len(tableRows) && len(tableRows) > 0 {
		m.table.SetCursor(len(tableRows) - 1)
	}
}

// eventLine renders one table row: name, occurrence and live countdown.
func (m *Model) eventLine(e event.Event) string {
	r := timer.Until(e.OccursAt, m.now)

	countdown := r.String()
	switch {
	case r.Expired:
		countdown = lipgloss.NewStyle().Foreground(lipgloss.Color(m.styles.ExpiredColor)).Render(countdown)
	case r.Urgent:
		countdown = lipgloss.NewStyle().Foreground(lipgloss.Color(m.styles.UrgentColor)).Bold(true).Render(countdown)
	default:
		countdown = lipgloss.NewStyle().Foreground(lipgloss.Color(m.styles.CountdownColor)).Render(countdown)
	}

	name := e.Name
	if len(name) > 24 {
		name = name[:21] + "..."
	}

	line := fmt.Sprintf("%-24s %s  %s", name, e.OccursAt.Format("2006-01-02 15:04"), countdown)
	if e.Repeat != event.RepeatNone {
		line += lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.styles.AccentColor)).
			Render(fmt.Sprintf("  (every %d %s)", e.RepeatInterval, repeatUnit(e.Repeat)))
	}
	return line
}

func repeatUnit(r event.Repeat) string {
	switch r {
	case event.RepeatDaily:
		return "day(s)"
	case event.RepeatWeekly:
		return "week(s)"
	case event.RepeatMonthly:
		return "month(s)"
	}
	return ""
}

// selectedEvent returns the event under the table cursor, if any.
func (m *Model) selectedEvent() *event.Event {
	if len(m.items) == 0 || m.table.Cursor() >= len(m.items) {
		return nil
	}
	return &m.items[m.table.Cursor()]
}

// copySelectedCountdown puts the selected event's countdown line on the
// system clipboard.
func (m *Model) copySelectedCountdown() {
	e := m.selectedEvent()
	if e == nil {
		return
	}
	r := timer.Until(e.OccursAt, m.now)
	text := fmt.Sprintf("%s: %s", e.Name, r.String())
	if err := clipboard.WriteAll(text); err != nil {
		utils.Log("Error copying to clipboard: %v", err)
	}
}

// focusNextInput cycles through the form inputs
func (m *Model) focusNextInput() {
	m.setActiveInput((m.activeInput + 1) % 5)
}

// focusPreviousInput cycles through the form inputs
func (m *Model) focusPreviousInput() {
	m.setActiveInput((m.activeInput + 4) % 5)
}

func (m *Model) setActiveInput(idx int) {
	m.activeInput = idx
	m.nameInput.Blur()
	m.dateInput.Blur()
	m.timeInput.Blur()
	m.intervalInput.Blur()

	switch idx {
	case 0:
		m.nameInput.Focus()
	case 1:
		m.dateInput.Focus()
	case 2:
		m.timeInput.Focus()
	case 3:
		// Repeat selector, no textinput to focus
	case 4:
		m.intervalInput.Focus()
	}
}

// cycleRepeat advances the repeat selector by delta.
func (m *Model) cycleRepeat(delta int) {
	n := len(event.Repeats)
	m.repeatIndex = (m.repeatIndex + delta + n) % n
}

// submitForm validates the form and adds or updates the event. An invalid
// form refuses the submit and stays open with the error shown; the store
// never receives an invalid event.
func (m *Model) submitForm() {
	name := strings.TrimSpace(m.nameInput.Value())
	dateStr := strings.TrimSpace(m.dateInput.Value())
	timeStr := strings.TrimSpace(m.timeInput.Value())
	intervalStr := strings.TrimSpace(m.intervalInput.Value())

	if name == "" {
		m.err = event.ErrEmptyName
		return
	}

	occursAt, err := event.ParseOccursAt(dateStr, timeStr)
	if err != nil {
		m.err = fmt.Errorf("invalid date/time: use YYYY-MM-DD and HH:MM")
		return
	}

	interval := 1
	if intervalStr != "" {
		interval, err = strconv.Atoi(intervalStr)
		if err != nil || interval < 1 {
			m.err = event.ErrBadInterval
			return
		}
	}

	repeat := event.Repeats[m.repeatIndex]

	switch m.mode {
	case AddMode:
		e, err := event.New(name, occursAt, repeat, interval, m.state.Clock.Now())
		if err != nil {
			m.err = err
			return
		}
		if err := m.state.Events.Add(e); err != nil {
			m.err = err
			return
		}

	case EditMode:
		if m.editingEvent != nil {
			updated := *m.editingEvent
			updated.Name = name
			updated.OccursAt = occursAt
			updated.Repeat = repeat
			updated.RepeatInterval = interval
			if err := m.state.Events.Update(updated); err != nil {
				m.err = err
				return
			}
		}
	}

	// Reset state and rescan so a newly added event can fire its
	// thresholds right away.
	m.err = nil
	m.mode = NormalMode
	m.resetInputs()
	m.editingEvent = nil
	m.refreshEvents()
	m.state.Scan()
}
