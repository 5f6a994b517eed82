package keymaps

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type KeyDefinition struct {
	DefaultKey string
	Help       string
}

var KeyDefinitions = map[string]KeyDefinition{
	"ShowHelp":        {"ctrl+b", "show/hide commands"},
	"QuitApp":         {"q", "quit"},
	"AddEvent":        {"a", "add event"},
	"EditEvent":       {"e", "edit event"},
	"DeleteEvent":     {"d", "delete event"},
	"CopyCountdown":   {"y", "copy countdown to clipboard"},
	"ShowHome":        {"1", "home view"},
	"ShowEvents":      {"2", "all events view"},
	"ShowCalendar":    {"3", "calendar view"},
	"ShowInbox":       {"4", "notifications view"},
	"ShowPrefs":       {"p", "notification preferences"},
	"ClearInbox":      {"x", "clear notifications"},
	"ToggleOption":    {"space", "toggle selected option"},
	"ToggleSortBy":    {"s", "cycle sort by"},
	"ToggleSortOrder": {"o", "toggle sort order"},
	"PrevMonth":       {"ctrl+left", "previous month"},
	"NextMonth":       {"ctrl+right", "next month"},
	"CalendarLeft":    {"left", "move left in calendar"},
	"CalendarRight":   {"right", "move right in calendar"},
	"CalendarUp":      {"up", "move up in calendar"},
	"CalendarDown":    {"down", "move down in calendar"},
	"CalendarSelect":  {"enter", "add event on selected day"},
	"JumpToToday":     {"h", "jump to current month"},
}

type KeyMap struct {
	ShowHelp        key.Binding
	QuitApp         key.Binding
	AddEvent        key.Binding
	EditEvent       key.Binding
	DeleteEvent     key.Binding
	CopyCountdown   key.Binding
	ShowHome        key.Binding
	ShowEvents      key.Binding
	ShowCalendar    key.Binding
	ShowInbox       key.Binding
	ShowPrefs       key.Binding
	ClearInbox      key.Binding
	ToggleOption    key.Binding
	ToggleSortBy    key.Binding
	ToggleSortOrder key.Binding
	PrevMonth       key.Binding
	NextMonth       key.Binding
	CalendarLeft    key.Binding
	CalendarRight   key.Binding
	CalendarUp      key.Binding
	CalendarDown    key.Binding
	CalendarSelect  key.Binding
	JumpToToday     key.Binding
}

func BuildKeyMap(configOverrides map[string]string) KeyMap {
	km := KeyMap{}
	for action, def := range KeyDefinitions {
		keyStr := def.DefaultKey
		if override, exists := configOverrides[action]; exists && override != "" {
			keyStr = override
		}

		switch action {
		case "ShowHelp":
			km.ShowHelp = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "QuitApp":
			km.QuitApp = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "AddEvent":
			km.AddEvent = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "EditEvent":
			km.EditEvent = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "DeleteEvent":
			km.DeleteEvent = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "CopyCountdown":
			km.CopyCountdown = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "ShowHome":
			km.ShowHome = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "ShowEvents":
			km.ShowEvents = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "ShowCalendar":
			km.ShowCalendar = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "ShowInbox":
			km.ShowInbox = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "ShowPrefs":
			km.ShowPrefs = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "ClearInbox":
			km.ClearInbox = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "ToggleOption":
			km.ToggleOption = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "ToggleSortBy":
			km.ToggleSortBy = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "ToggleSortOrder":
			km.ToggleSortOrder = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "PrevMonth":
			km.PrevMonth = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "NextMonth":
			km.NextMonth = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "CalendarLeft":
			km.CalendarLeft = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "CalendarRight":
			km.CalendarRight = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "CalendarUp":
			km.CalendarUp = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "CalendarDown":
			km.CalendarDown = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "CalendarSelect":
			km.CalendarSelect = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "JumpToToday":
			km.JumpToToday = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		}
	}
	return km
}

func parseKeyBinding(keyStr, defaultKey, helpText string) key.Binding {
	if keyStr == "" {
		keyStr = defaultKey
	}

	// Handle multiple keys separated by commas
	keys := strings.Split(keyStr, ",")
	for i, k := range keys {
		keys[i] = strings.TrimSpace(k)
	}

	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(keys[0], helpText),
	)
}

// GetDefaultKeyMappings returns the default key mappings for configuration
func GetDefaultKeyMappings() map[string]string {
	keyMappings := make(map[string]string)
	for action, def := range KeyDefinitions {
		keyMappings[action] = def.DefaultKey
	}
	return keyMappings
}
