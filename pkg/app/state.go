// Package app wires the engine components into one explicit state container.
// Everything that used to be ambient application state (events, settings,
// the notification inbox) lives here and is passed by reference to the UI
// and the CLI commands; there are no package-level singletons.
package app

import (
	"eventick/pkg/event"
	"eventick/pkg/store"
	"eventick/pkg/timer"
	"eventick/pkg/utils"
)

// State is the root application state.
type State struct {
	Events    *event.Store
	Settings  event.Settings
	Evaluator *timer.Evaluator
	Clock     timer.Clock

	settingsStore store.Store[event.Settings]
}

// NewState loads events and settings from their stores. Missing or corrupt
// settings degrade to the defaults.
func NewState(events *event.Store, settingsStore store.Store[event.Settings], ev *timer.Evaluator, clock timer.Clock) *State {
	settings, err := settingsStore.Load()
	if err != nil {
		if err != store.ErrNotFound {
			utils.Log("Could not load settings, using defaults: %v", err)
		}
		settings = event.DefaultSettings()
	}
	settings.Normalize()

	return &State{
		Events:        events,
		Settings:      settings,
		Evaluator:     ev,
		Clock:         clock,
		settingsStore: settingsStore,
	}
}

// SaveSettings persists the current settings. Failures are logged, never
// fatal.
func (s *State) SaveSettings() {
	if err := s.settingsStore.Save(s.Settings); err != nil {
		utils.Log("Error saving settings: %v", err)
	}
}

// Scan runs one notification scan. Now is sampled exactly once so every
// comparison within the pass sees the same instant.
func (s *State) Scan() []timer.Notification {
	return s.Evaluator.Scan(s.Events.List(), s.Settings, s.Clock.Now())
}
