package ui

import (
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"eventick/pkg/event"
	"eventick/pkg/utils"
)

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tickMsg:
		// Per-second tick: advance the display clock and recompute every
		// countdown.
		m.now = m.state.Clock.Now()
		m.refreshEvents()
		return m, tickCmd()

	case scanMsg:
		// Per-minute tick: run one notification scan.
		fired := m.state.Scan()
		if len(fired) > 0 {
			utils.Log("Scan fired %d notification(s)", len(fired))
		}
		return m, scanCmd()

	case tea.KeyMsg:
		switch m.mode {
		case NormalMode:
			return m.updateNormal(msg)

		case AddMode, EditMode:
			switch msg.String() {
			case "esc":
				m.err = nil
				m.mode = NormalMode
				m.resetInputs()
				m.editingEvent = nil

			case "tab":
				m.focusNextInput()

			case "shift+tab":
				m.focusPreviousInput()

			case "enter":
				if m.activeInput == 4 { // Submit on enter from the last field
					m.submitForm()
				} else {
					m.focusNextInput()
				}
			}

			// Handle input updates
			switch m.activeInput {
			case 0:
				m.nameInput, cmd = m.nameInput.Update(msg)
				cmds = append(cmds, cmd)
			case 1:
				m.dateInput, cmd = m.dateInput.Update(msg)
				cmds = append(cmds, cmd)
			case 2:
				m.timeInput, cmd = m.timeInput.Update(msg)
				cmds = append(cmds, cmd)
			case 3:
				// Repeat selector cycles instead of accepting text
				switch msg.String() {
				case "left":
					m.cycleRepeat(-1)
				case "right", " ":
					m.cycleRepeat(1)
				}
			case 4:
				m.intervalInput, cmd = m.intervalInput.Update(msg)
				cmds = append(cmds, cmd)
			}

		case DeleteConfirmMode:
			// Handle delete confirmation
			switch msg.String() {
			case "y", "Y":
				if m.editingEvent != nil {
					utils.Log("Deleting event: %s", m.editingEvent.ID)
					if err := m.state.Events.Delete(m.editingEvent.ID); err != nil {
						m.err = err
					}
					m.refreshEvents()
					m.state.Scan()
				}
				m.mode = NormalMode
				m.editingEvent = nil

			case "n", "N", "esc":
				m.mode = NormalMode
				m.editingEvent = nil
			}

		case HelpViewMode:
			switch msg.String() {
			case "esc", "ctrl+b":
				m.mode = NormalMode
			}
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.table.SetWidth(msg.Width - 4)
		m.table.SetHeight(msg.Height - 6)
	}

	// Only update table when the events view is visible
	if m.mode == NormalMode && m.viewMode == EventsView {
		m.table, cmd = m.table.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// updateNormal handles key presses in normal mode.
func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch {
	case key.Matches(msg, m.keyMap.ShowHelp):
		m.mode = HelpViewMode

	case key.Matches(msg, m.keyMap.QuitApp):
		return m, tea.Quit

	case key.Matches(msg, m.keyMap.ShowHome):
		m.viewMode = HomeView

	case key.Matches(msg, m.keyMap.ShowEvents):
		m.viewMode = EventsView
		m.refreshEvents()

	case key.Matches(msg, m.keyMap.ShowCalendar):
		m.viewMode = CalendarView

	case key.Matches(msg, m.keyMap.ShowInbox):
		m.viewMode = InboxView

	case key.Matches(msg, m.keyMap.ShowPrefs):
		m.viewMode = PrefsView
		m.prefsCursor = 0

	case key.Matches(msg, m.keyMap.AddEvent):
		m.mode = AddMode
		m.resetInputs()
		if m.viewMode == CalendarView {
			selected := time.Date(m.calendarMonth.Year(), m.calendarMonth.Month(), m.calendarSelectedDay,
				0, 0, 0, 0, m.calendarMonth.Location())
			m.dateInput.SetValue(selected.Format("2006-01-02"))
		}

	case key.Matches(msg, m.keyMap.EditEvent) && m.viewMode == EventsView:
		if e := m.selectedEvent(); e != nil {
			m.mode = EditMode
			m.editingEvent = e
			m.resetInputs()

			// Populate form with existing values
			m.nameInput.SetValue(e.Name)
			m.dateInput.SetValue(e.OccursAt.Format("2006-01-02"))
			if e.OccursAt.Hour() != 0 || e.OccursAt.Minute() != 0 {
				m.timeInput.SetValue(e.OccursAt.Format("15:04"))
			}
			for i, r := range event.Repeats {
				if r == e.Repeat {
					m.repeatIndex = i
				}
			}
			m.intervalInput.SetValue(strconv.Itoa(e.RepeatInterval))
		}

	case key.Matches(msg, m.keyMap.DeleteEvent) && m.viewMode == EventsView:
		if e := m.selectedEvent(); e != nil {
			m.mode = DeleteConfirmMode
			m.editingEvent = e
		}

	case key.Matches(msg, m.keyMap.CopyCountdown) && m.viewMode == EventsView:
		m.copySelectedCountdown()

	case key.Matches(msg, m.keyMap.ToggleSortBy) && m.viewMode == EventsView:
		m.sortBy = (m.sortBy + 1) % sortByCount
		m.refreshEvents()

	case key.Matches(msg, m.keyMap.ToggleSortOrder) && m.viewMode == EventsView:
		if m.sortOrder == SortAsc {
			m.sortOrder = SortDesc
		} else {
			m.sortOrder = SortAsc
		}
		m.refreshEvents()

	case key.Matches(msg, m.keyMap.ClearInbox) && m.viewMode == InboxView:
		m.state.Evaluator.Clear()

	// Preferences navigation and toggles
	case m.viewMode == PrefsView && msg.String() == "up":
		if m.prefsCursor > 0 {
			m.prefsCursor--
		}

	case m.viewMode == PrefsView && msg.String() == "down":
		if m.prefsCursor < len(thresholdChoices)+1 {
			m.prefsCursor++
		}

	case key.Matches(msg, m.keyMap.ToggleOption) && m.viewMode == PrefsView:
		m.toggleSelectedPref()

	// Calendar navigation (only when in calendar view)
	case key.Matches(msg, m.keyMap.PrevMonth) && m.viewMode == CalendarView:
		m.calendarMonth = m.calendarMonth.AddDate(0, -1, 0)
		m.clampCalendarDay()

	case key.Matches(msg, m.keyMap.NextMonth) && m.viewMode == CalendarView:
		m.calendarMonth = m.calendarMonth.AddDate(0, 1, 0)
		m.clampCalendarDay()

	case key.Matches(msg, m.keyMap.CalendarLeft) && m.viewMode == CalendarView:
		if m.calendarSelectedDay > 1 {
			m.calendarSelectedDay--
		} else {
			// Move to previous month and set to last day
			m.calendarMonth = m.calendarMonth.AddDate(0, -1, 0)
			m.calendarSelectedDay = daysInMonth(m.calendarMonth)
		}

	case key.Matches(msg, m.keyMap.CalendarRight) && m.viewMode == CalendarView:
		if m.calendarSelectedDay < daysInMonth(m.calendarMonth) {
			m.calendarSelectedDay++
		} else {
			// Move to next month and set to first day
			m.calendarMonth = m.calendarMonth.AddDate(0, 1, 0)
			m.calendarSelectedDay = 1
		}

	case key.Matches(msg, m.keyMap.CalendarUp) && m.viewMode == CalendarView:
		newDay := m.calendarSelectedDay - 7
		if newDay < 1 {
			m.calendarMonth = m.calendarMonth.AddDate(0, -1, 0)
			m.calendarSelectedDay = daysInMonth(m.calendarMonth) + newDay
			if m.calendarSelectedDay < 1 {
				m.calendarSelectedDay = 1
			}
		} else {
			m.calendarSelectedDay = newDay
		}

	case key.Matches(msg, m.keyMap.CalendarDown) && m.viewMode == CalendarView:
		last := daysInMonth(m.calendarMonth)
		newDay := m.calendarSelectedDay + 7
		if newDay > last {
			m.calendarMonth = m.calendarMonth.AddDate(0, 1, 0)
			m.calendarSelectedDay = newDay - last
			m.clampCalendarDay()
		} else {
			m.calendarSelectedDay = newDay
		}

	case key.Matches(msg, m.keyMap.CalendarSelect) && m.viewMode == CalendarView:
		// Start the add form prefilled with the selected day
		selected := time.Date(m.calendarMonth.Year(), m.calendarMonth.Month(), m.calendarSelectedDay,
			0, 0, 0, 0, m.calendarMonth.Location())
		m.mode = AddMode
		m.resetInputs()
		m.dateInput.SetValue(selected.Format("2006-01-02"))

	case key.Matches(msg, m.keyMap.JumpToToday) && m.viewMode == CalendarView:
		m.calendarMonth = time.Date(m.now.Year(), m.now.Month(), 1, 0, 0, 0, 0, m.now.Location())
		m.calendarSelectedDay = m.now.Day()

	case msg.String() == "esc" && m.viewMode != HomeView:
		m.viewMode = HomeView
	}

	// Table keys (cursor movement) still apply in the events view.
	if m.viewMode == EventsView {
		m.table, cmd = m.table.Update(msg)
	}

	return m, cmd
}

// toggleSelectedPref flips the preference under the cursor, persists the
// settings and rescans so the change takes effect immediately.
func (m *Model) toggleSelectedPref() {
	if m.prefsCursor < len(thresholdChoices) {
		m.state.Settings.ToggleThreshold(thresholdChoices[m.prefsCursor])
	} else if m.prefsCursor == len(thresholdChoices) {
		m.state.Settings.DesktopNotifications = !m.state.Settings.DesktopNotifications
	} else {
		m.state.Settings.SoundEnabled = !m.state.Settings.SoundEnabled
	}
	m.state.SaveSettings()
	m.state.Scan()
}

// clampCalendarDay keeps the selected day inside the current month.
func (m *Model) clampCalendarDay() {
	if last := daysInMonth(m.calendarMonth); m.calendarSelectedDay > last {
		m.calendarSelectedDay = last
	}
}

// daysInMonth returns the number of days in the month containing t.
func daysInMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}
