package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"eventick/pkg/event"
	"eventick/pkg/timer"
)

// View renders the UI based on the current mode
func (m Model) View() string {
	var sb strings.Builder

	switch m.mode {
	case NormalMode:
		switch m.viewMode {
		case HomeView:
			sb.WriteString(m.renderHome())
		case EventsView:
			sb.WriteString(m.renderEvents())
		case CalendarView:
			sb.WriteString(m.renderCalendar())
		case InboxView:
			sb.WriteString(m.renderInbox())
		case PrefsView:
			sb.WriteString(m.renderPrefs())
		}

	case AddMode:
		sb.WriteString(m.titleBar(" New Event ", m.styles.AccentColor))
		sb.WriteString("\n\n")
		sb.WriteString(m.renderForm())

	case EditMode:
		sb.WriteString(m.titleBar(" Edit Event ", m.styles.AccentColor))
		sb.WriteString("\n\n")
		sb.WriteString(m.renderForm())

	case DeleteConfirmMode:
		sb.WriteString(m.titleBar(" Delete Event ", m.styles.ErrorColor))
		sb.WriteString("\n\n")

		if m.editingEvent != nil {
			sb.WriteString("Are you sure you want to delete this event?\n\n")
			sb.WriteString(fmt.Sprintf("Name: %s\n", m.editingEvent.Name))
			sb.WriteString(fmt.Sprintf("When: %s\n", m.editingEvent.OccursAt.Format("2006-01-02 15:04")))
			sb.WriteString("\n")
			sb.WriteString(lipgloss.NewStyle().Bold(true).Render("Press Y to confirm, N to cancel"))
		}

	case HelpViewMode:
		sb.WriteString(m.renderHelp())
	}

	// Error message if any
	if m.err != nil {
		sb.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.styles.ErrorColor)).
			Render(fmt.Sprintf("\n\nError: %v", m.err)))
	}

	// Add help status bar at the bottom
	sb.WriteString("\n")
	sb.WriteString(m.helpBar())

	return sb.String()
}

// titleBar renders the highlighted screen title.
func (m Model) titleBar(text, bg string) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(m.styles.SelectedTextColor)).
		Background(lipgloss.Color(bg)).
		Padding(0, 1).
		Render(text)
}

// renderHome shows the next few events with live countdowns.
func (m Model) renderHome() string {
	var sb strings.Builder

	title := " Eventick "
	if n := m.state.Evaluator.Count(); n > 0 {
		title = fmt.Sprintf(" Eventick  [%d notification(s)] ", n)
	}
	sb.WriteString(m.titleBar(title, m.styles.AccentColor))
	sb.WriteString("\n\n")

	events := upcomingFirst(m.state.Events.List(), m.now)
	if len(events) == 0 {
		sb.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.styles.NormalTextColor)).
			Render("No events yet. Press 'a' to add the first one."))
		sb.WriteString("\n")
		return sb.String()
	}

	shown := events
	if len(shown) > 3 {
		shown = shown[:3]
	}

	for _, e := range shown {
		r := timer.Until(e.OccursAt, m.now)

		nameStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.styles.AccentColor))
		sb.WriteString(nameStyle.Render(e.Name))
		sb.WriteString("\n")

		var cdStyle lipgloss.Style
		switch {
		case r.Expired:
			cdStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(m.styles.ExpiredColor))
		case r.Urgent:
			cdStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(m.styles.UrgentColor)).Bold(true)
		default:
			cdStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(m.styles.CountdownColor)).Bold(true)
		}
		sb.WriteString(cdStyle.Render(r.String()))
		sb.WriteString("\n")

		sb.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.styles.NormalTextColor)).
			Render(e.OccursAt.Format("Mon, 02 Jan 2006 15:04")))
		sb.WriteString("\n\n")
	}

	if len(events) > 3 {
		sb.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.styles.NormalTextColor)).
			Render(fmt.Sprintf("... and %d more, press '2' for all events", len(events)-3)))
		sb.WriteString("\n")
	}

	return sb.String()
}

// renderEvents shows the full event table.
func (m Model) renderEvents() string {
	var sb strings.Builder

	sb.WriteString(m.titleBar(fmt.Sprintf(" All Events (%d) ", m.state.Events.Len()), m.styles.AccentColor))
	sb.WriteString("\n\n")
	sb.WriteString(m.table.View())
	sb.WriteString("\n")

	sortByStr := []string{"occurrence", "name", "created"}[m.sortBy]
	orderStr := "asc"
	if m.sortOrder == SortDesc {
		orderStr = "desc"
	}
	sb.WriteString(lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.styles.NormalTextColor)).
		Render(fmt.Sprintf("Sorted by %s (%s)", sortByStr, orderStr)))
	sb.WriteString("\n")

	return sb.String()
}

// renderCalendar renders the 6-week month grid.
func (m Model) renderCalendar() string {
	var sb strings.Builder

	sb.WriteString(m.titleBar(" "+m.calendarMonth.Format("January 2006")+" ", m.styles.AccentColor))
	sb.WriteString("\n\n")

	// Monday-first weekday headers, matching the grid layout.
	weekdays := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	weekdayRow := ""
	for _, day := range weekdays {
		weekdayRow += fmt.Sprintf("%-4s", day)
	}
	sb.WriteString(lipgloss.NewStyle().Bold(true).Render(weekdayRow))
	sb.WriteString("\n")

	cells := timer.ProjectMonth(m.calendarMonth.Year(), m.calendarMonth.Month(), m.state.Events.List(), m.now)

	for i, cell := range cells {
		dayStyle := lipgloss.NewStyle()

		isSelected := cell.InMonth && cell.Day == m.calendarSelectedDay

		switch {
		case isSelected:
			dayStyle = dayStyle.Background(lipgloss.Color(m.styles.AccentColor)).
				Foreground(lipgloss.Color(m.styles.SelectedTextColor)).Bold(true)
		case cell.Today:
			dayStyle = dayStyle.Background(lipgloss.Color(m.styles.TodayBgColor)).
				Foreground(lipgloss.Color(m.styles.SelectedTextColor))
		case cell.HasEvent && cell.InMonth:
			dayStyle = dayStyle.Foreground(lipgloss.Color(m.styles.EventColor)).Bold(true)
		case !cell.InMonth:
			dayStyle = dayStyle.Faint(true)
		}

		marker := " "
		if cell.HasEvent {
			marker = "•"
		}
		sb.WriteString(dayStyle.Render(fmt.Sprintf("%2d%s", cell.Day, marker)))
		sb.WriteString(" ")

		if (i+1)%7 == 0 {
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\n")
	sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(m.styles.NormalTextColor)).Render(
		"Navigate: ←→↑↓  |  Month: ctrl+←/→  |  Add on day: enter  |  Today: h"))
	sb.WriteString("\n")

	return sb.String()
}

// renderInbox lists fired notifications, newest first.
func (m Model) renderInbox() string {
	var sb strings.Builder

	notifications := m.state.Evaluator.Notifications()

	sb.WriteString(m.titleBar(fmt.Sprintf(" Notifications (%d) ", len(notifications)), m.styles.AccentColor))
	sb.WriteString("\n\n")

	if len(notifications) == 0 {
		sb.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.styles.NormalTextColor)).
			Render("No notifications."))
		sb.WriteString("\n")
		return sb.String()
	}

	for i := len(notifications) - 1; i >= 0; i-- {
		n := notifications[i]
		sb.WriteString(lipgloss.NewStyle().Bold(true).Render(n.EventName))
		sb.WriteString("\n")
		sb.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.styles.NormalTextColor)).
			Render(fmt.Sprintf("in %s (on %s), fired %s",
				timer.DaysText(n.DaysLeft),
				n.OccursAt.Format("2006-01-02 15:04"),
				n.FiredAt.Format("15:04"))))
		sb.WriteString("\n\n")
	}

	sb.WriteString(lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.styles.NormalTextColor)).
		Render("Press 'x' to clear all notifications"))
	sb.WriteString("\n")

	return sb.String()
}

// renderPrefs shows the notification preferences.
func (m Model) renderPrefs() string {
	var sb strings.Builder

	sb.WriteString(m.titleBar(" Notification Preferences ", m.styles.AccentColor))
	sb.WriteString("\n\n")
	sb.WriteString("Remind me before an event:\n\n")

	cursorStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.styles.SelectedTextColor)).
		Background(lipgloss.Color(m.styles.SelectedBgColor))

	line := func(idx int, checked bool, label string) {
		box := "[ ]"
		if checked {
			box = "[x]"
		}
		text := fmt.Sprintf(" %s %s ", box, label)
		if idx == m.prefsCursor {
			text = cursorStyle.Render(text)
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	for i, days := range thresholdChoices {
		line(i, m.state.Settings.HasThreshold(days), timer.DaysText(days))
	}

	sb.WriteString("\n")
	line(len(thresholdChoices), m.state.Settings.DesktopNotifications, "desktop notifications")
	line(len(thresholdChoices)+1, m.state.Settings.SoundEnabled, "notification sound")

	sb.WriteString("\n")
	sb.WriteString(lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.styles.NormalTextColor)).
		Render("↑↓ to move, space to toggle"))
	sb.WriteString("\n")

	return sb.String()
}

// renderHelp renders the fullscreen command list.
func (m Model) renderHelp() string {
	var sb strings.Builder

	sb.WriteString(lipgloss.NewStyle().Bold(true).Render("Available Commands"))
	sb.WriteString("\n\n")

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.styles.AccentColor)).
		Bold(true)
	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.styles.NormalTextColor))

	addCommand := func(binding key.Binding) {
		sb.WriteString(fmt.Sprintf("%s: %s\n",
			descStyle.Render(binding.Help().Desc),
			keyStyle.Render(binding.Help().Key)))
	}

	addCommand(m.keyMap.QuitApp)
	addCommand(m.keyMap.ShowHelp)
	addCommand(m.keyMap.AddEvent)
	addCommand(m.keyMap.EditEvent)
	addCommand(m.keyMap.DeleteEvent)
	addCommand(m.keyMap.CopyCountdown)
	addCommand(m.keyMap.ShowHome)
	addCommand(m.keyMap.ShowEvents)
	addCommand(m.keyMap.ShowCalendar)
	addCommand(m.keyMap.ShowInbox)
	addCommand(m.keyMap.ShowPrefs)
	addCommand(m.keyMap.ClearInbox)
	addCommand(m.keyMap.ToggleSortBy)
	addCommand(m.keyMap.ToggleSortOrder)

	sb.WriteString("\n")
	sb.WriteString(lipgloss.NewStyle().Bold(true).Render("Calendar Commands"))
	sb.WriteString("\n\n")
	addCommand(m.keyMap.PrevMonth)
	addCommand(m.keyMap.NextMonth)
	addCommand(m.keyMap.CalendarLeft)
	addCommand(m.keyMap.CalendarRight)
	addCommand(m.keyMap.CalendarUp)
	addCommand(m.keyMap.CalendarDown)
	addCommand(m.keyMap.CalendarSelect)
	addCommand(m.keyMap.JumpToToday)

	return sb.String()
}

// helpBar renders a sleek status bar with available actions
func (m Model) helpBar() string {
	var actions []string

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.styles.AccentColor)).
		Bold(true)
	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.styles.NormalTextColor))
	separatorStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.styles.BorderColor))

	separator := separatorStyle.Render(" • ")

	addAction := func(k, desc string) {
		actions = append(actions, fmt.Sprintf("%s %s", keyStyle.Render(k), descStyle.Render(desc)))
	}

	switch m.mode {
	case NormalMode:
		switch m.viewMode {
		case CalendarView:
			addAction("←↑↓→", "nav")
			addAction("enter", "add on day")
			addAction("h", "today")
			addAction("esc", "home")
		case InboxView:
			addAction("x", "clear")
			addAction("esc", "home")
		case PrefsView:
			addAction("↑↓", "move")
			addAction("space", "toggle")
			addAction("esc", "home")
		case EventsView:
			addAction("a", "add")
			addAction("e", "edit")
			addAction("d", "del")
			addAction("y", "copy")
			addAction("s/o", "sort")
		default:
			addAction("a", "add")
			addAction("1-4", "views")
			addAction("p", "prefs")
		}
		addAction("ctrl+b", "help")
		addAction("q", "quit")

	case AddMode, EditMode:
		addAction("tab", "next field")
		addAction("enter", "save")
		addAction("esc", "cancel")

	case DeleteConfirmMode:
		addAction("y", "confirm")
		addAction("n", "cancel")

	case HelpViewMode:
		addAction("ctrl+b/esc", "back")
		addAction("q", "quit")
	}

	return strings.Join(actions, separator)
}

// renderForm renders the input form for adding/editing events
func (m Model) renderForm() string {
	var sb strings.Builder

	sb.WriteString("Name:\n")
	sb.WriteString(m.nameInput.View())
	sb.WriteString("\n\n")

	sb.WriteString("Date (YYYY-MM-DD):\n")
	sb.WriteString(m.dateInput.View())
	sb.WriteString("\n\n")

	sb.WriteString("Time (HH:MM, blank for midnight):\n")
	sb.WriteString(m.timeInput.View())
	sb.WriteString("\n\n")

	// Repeat selector
	sb.WriteString("Repeat (←/→ to change):\n")
	repeatLine := ""
	for i, r := range event.Repeats {
		label := string(r)
		if i == m.repeatIndex {
			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(m.styles.SelectedTextColor)).
				Background(lipgloss.Color(m.styles.SelectedBgColor)).
				Bold(true)
			if m.activeInput == 3 {
				style = style.Background(lipgloss.Color(m.styles.AccentColor))
			}
			label = style.Render(" " + label + " ")
		} else {
			label = " " + label + " "
		}
		repeatLine += label
	}
	sb.WriteString(repeatLine)
	sb.WriteString("\n\n")

	sb.WriteString("Repeat interval:\n")
	sb.WriteString(m.intervalInput.View())

	return sb.String()
}
