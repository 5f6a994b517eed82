package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"eventick/pkg/app"
	"eventick/pkg/config"
	"eventick/pkg/event"
	"eventick/pkg/keymaps"
	"eventick/pkg/timer"
)

// InputMode represents the current input mode
type InputMode int

const (
	NormalMode InputMode = iota
	AddMode
	EditMode
	DeleteConfirmMode
	HelpViewMode // Mode for displaying help
)

// ViewMode selects which tab is visible in normal mode.
type ViewMode int

const (
	HomeView ViewMode = iota // next three upcoming events with live countdowns
	EventsView
	CalendarView
	InboxView
	PrefsView
)

// thresholdChoices are the day counts offered in the preferences view.
var thresholdChoices = []int{1, 3, 7, 14, 30}

// tickMsg arrives once per second and drives the countdown refresh.
type tickMsg time.Time

// scanMsg arrives once per minute and drives the notification scan.
type scanMsg time.Time

// Model represents the application state
type Model struct {
	state         *app.State
	table         table.Model
	items         []event.Event
	now           time.Time
	width, height int
	err           error

	// Configuration
	config config.Config
	styles config.Styles
	keyMap keymaps.KeyMap

	// View state
	mode     InputMode
	viewMode ViewMode

	// Form state
	nameInput     textinput.Model
	dateInput     textinput.Model
	timeInput     textinput.Model
	intervalInput textinput.Model
	repeatIndex   int
	activeInput   int

	// Edit/delete state
	editingEvent *event.Event

	// Sorting state
	sortBy    SortBy
	sortOrder SortOrder

	// Calendar state
	calendarMonth       time.Time
	calendarSelectedDay int

	// Preferences cursor
	prefsCursor int
}

// NewModel creates a new UI model with the provided state and configuration
func NewModel(state *app.State, cfg config.Config, styles config.Styles) Model {
	// Single borderless column; rows carry their own formatting.
	columns := []table.Column{
		{Title: "", Width: 72},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.HiddenBorder()).
		BorderBottom(false).
		Bold(false).
		Foreground(lipgloss.NoColor{})
	s.Selected = s.Selected.
		Foreground(lipgloss.Color(styles.SelectedTextColor)).
		Background(lipgloss.Color(styles.SelectedBgColor)).
		Bold(true)
	t.SetStyles(s)

	// Initialize text inputs
	nameInput := textinput.New()
	nameInput.Placeholder = "Event name"
	nameInput.Focus()
	nameInput.Width = 40

	dateInput := textinput.New()
	dateInput.Placeholder = "Date (YYYY-MM-DD)"
	dateInput.Width = 40

	timeInput := textinput.New()
	timeInput.Placeholder = "Time (HH:MM, optional)"
	timeInput.Width = 40

	intervalInput := textinput.New()
	intervalInput.Placeholder = "Repeat interval (default 1)"
	intervalInput.Width = 40

	now := state.Clock.Now()

	m := Model{
		state:               state,
		table:               t,
		now:                 now,
		config:              cfg,
		styles:              styles,
		keyMap:              keymaps.BuildKeyMap(cfg.KeyMap),
		mode:                NormalMode,
		viewMode:            HomeView,
		nameInput:           nameInput,
		dateInput:           dateInput,
		timeInput:           timeInput,
		intervalInput:       intervalInput,
		calendarMonth:       time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()),
		calendarSelectedDay: now.Day(),
	}

	m.refreshEvents()

	return m
}

// Init starts the two recurring triggers: the per-second tick and the
// per-minute notification scan. One scan already ran at startup before the
// program took over.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), scanCmd())
}

func tickCmd() tea.Cmd {
	return tea.Tick(timer.TickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func scanCmd() tea.Cmd {
	return tea.Tick(timer.ScanInterval, func(t time.Time) tea.Msg {
		return scanMsg(t)
	})
}

// resetInputs clears all form inputs
func (m *Model) resetInputs() {
	m.nameInput.Reset()
	m.dateInput.SetValue(m.now.Format("2006-01-02"))
	m.timeInput.Reset()
	m.intervalInput.SetValue("1")
	m.repeatIndex = 0

	m.activeInput = 0
	m.nameInput.Focus()
	m.dateInput.Blur()
	m.timeInput.Blur()
	m.intervalInput.Blur()
}
