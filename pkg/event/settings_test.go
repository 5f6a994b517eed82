package event

import (
	"reflect"
	"testing"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	if !reflect.DeepEqual(s.NotificationDays, []int{1, 3, 7}) {
		t.Errorf("default thresholds = %v, want [1 3 7]", s.NotificationDays)
	}
	if !s.DesktopNotifications || !s.SoundEnabled {
		t.Errorf("defaults should enable desktop notifications and sound")
	}
}

func TestThresholdOperations(t *testing.T) {
	tests := []struct {
		name string
		op   func(*Settings)
		want []int
	}{
		{
			"add keeps sorted",
			func(s *Settings) { s.AddThreshold(2) },
			[]int{1, 2, 3, 7},
		},
		{
			"add duplicate ignored",
			func(s *Settings) { s.AddThreshold(3) },
			[]int{1, 3, 7},
		},
		{
			"add non-positive ignored",
			func(s *Settings) { s.AddThreshold(0); s.AddThreshold(-5) },
			[]int{1, 3, 7},
		},
		{
			"remove present",
			func(s *Settings) { s.RemoveThreshold(3) },
			[]int{1, 7},
		},
		{
			"remove absent is noop",
			func(s *Settings) { s.RemoveThreshold(14) },
			[]int{1, 3, 7},
		},
		{
			"toggle off then on",
			func(s *Settings) { s.ToggleThreshold(7); s.ToggleThreshold(7) },
			[]int{1, 3, 7},
		},
		{
			"toggle new",
			func(s *Settings) { s.ToggleThreshold(30) },
			[]int{1, 3, 7, 30},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := DefaultSettings()
			tc.op(&s)
			if !reflect.DeepEqual(s.NotificationDays, tc.want) {
				t.Errorf("thresholds = %v, want %v", s.NotificationDays, tc.want)
			}
		})
	}
}

func TestHasThreshold(t *testing.T) {
	s := DefaultSettings()
	if !s.HasThreshold(3) {
		t.Errorf("HasThreshold(3) = false")
	}
	if s.HasThreshold(14) {
		t.Errorf("HasThreshold(14) = true")
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   []int
		want []int
	}{
		{"already clean", []int{1, 3, 7}, []int{1, 3, 7}},
		{"unsorted", []int{7, 1, 3}, []int{1, 3, 7}},
		{"duplicates", []int{3, 3, 1, 7, 1}, []int{1, 3, 7}},
		{"non-positive dropped", []int{0, -1, 3}, []int{3}},
		{"empty stays empty", []int{}, []int{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := Settings{NotificationDays: tc.in}
			s.Normalize()
			if !reflect.DeepEqual(s.NotificationDays, tc.want) {
				t.Errorf("Normalize(%v) = %v, want %v", tc.in, s.NotificationDays, tc.want)
			}
		})
	}
}
