package event

import "sort"

// Settings holds the user preferences consumed by the notification scan.
// The two booleans only gate side effects (desktop popup, sound); they never
// change what the engine computes.
type Settings struct {
	NotificationDays     []int `json:"notification_days"`
	DesktopNotifications bool  `json:"desktop_notifications"`
	SoundEnabled         bool  `json:"sound_enabled"`
}

// DefaultSettings mirrors the defaults of a fresh install: remind one day,
// three days and a week ahead.
func DefaultSettings() Settings {
	return Settings{
		NotificationDays:     []int{1, 3, 7},
		DesktopNotifications: true,
		SoundEnabled:         true,
	}
}

// HasThreshold reports whether days is a configured notification threshold.
func (s Settings) HasThreshold(days int) bool {
	for _, d := range s.NotificationDays {
		if d == days {
			return true
		}
	}
	return false
}

// AddThreshold inserts a threshold, keeping the set sorted ascending and
// free of duplicates. Non-positive values are ignored.
func (s *Settings) AddThreshold(days int) {
	if days < 1 || s.HasThreshold(days) {
		return
	}
	s.NotificationDays = append(s.NotificationDays, days)
	sort.Ints(s.NotificationDays)
}

// RemoveThreshold deletes a threshold if present.
func (s *Settings) RemoveThreshold(days int) {
	out := s.NotificationDays[:0]
	for _, d := range s.NotificationDays {
		if d != days {
			out = append(out, d)
		}
	}
	s.NotificationDays = out
}

// ToggleThreshold adds the threshold if absent, removes it otherwise.
func (s *Settings) ToggleThreshold(days int) {
	if s.HasThreshold(days) {
		s.RemoveThreshold(days)
	} else {
		s.AddThreshold(days)
	}
}

// Normalize repairs settings loaded from disk: sorts the thresholds, drops
// duplicates and non-positive values.
func (s *Settings) Normalize() {
	seen := make(map[int]bool, len(s.NotificationDays))
	out := s.NotificationDays[:0]
	for _, d := range s.NotificationDays {
		if d < 1 || seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}
	sort.Ints(out)
	s.NotificationDays = out
}
