package timer

import (
	"testing"
	"time"
)

func TestUntilExpired(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		occursAt time.Time
	}{
		{"in the past", now.Add(-time.Hour)},
		{"exactly now", now},
		{"one nanosecond ago", now.Add(-time.Nanosecond)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := Until(tc.occursAt, now)
			if !r.Expired {
				t.Errorf("Until(%v) Expired = false, want true", tc.occursAt)
			}
			if r.Days != 0 || r.Hours != 0 || r.Minutes != 0 || r.Seconds != 0 {
				t.Errorf("expired breakdown should be zeroed, got %+v", r)
			}
			if r.Urgent {
				t.Errorf("expired event must not be urgent")
			}
		})
	}
}

func TestUntilDecomposition(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		diff    time.Duration
		days    int
		hours   int
		minutes int
		seconds int
	}{
		{"one second", time.Second, 0, 0, 0, 1},
		{"just under a minute", 59 * time.Second, 0, 0, 0, 59},
		{"one hour", time.Hour, 0, 1, 0, 0},
		{"just under a day", 23*time.Hour + 59*time.Minute + 59*time.Second, 0, 23, 59, 59},
		{"exactly one day", 24 * time.Hour, 1, 0, 0, 0},
		{"mixed", 2*24*time.Hour + 5*time.Hour + 30*time.Minute + 15*time.Second, 2, 5, 30, 15},
		{"sub-second truncates", 1500 * time.Millisecond, 0, 0, 0, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := Until(now.Add(tc.diff), now)
			if r.Expired {
				t.Fatalf("Until(+%v) unexpectedly expired", tc.diff)
			}
			if r.Days != tc.days || r.Hours != tc.hours || r.Minutes != tc.minutes || r.Seconds != tc.seconds {
				t.Errorf("Until(+%v) = %d d %d h %d m %d s, want %d d %d h %d m %d s",
					tc.diff, r.Days, r.Hours, r.Minutes, r.Seconds,
					tc.days, tc.hours, tc.minutes, tc.seconds)
			}
		})
	}
}

// Truncation at each level means the parts always recombine to the whole
// seconds of the original difference.
func TestUntilPartsRecombine(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	diffs := []time.Duration{
		time.Second,
		90 * time.Minute,
		36*time.Hour + 42*time.Minute + 7*time.Second,
		100*24*time.Hour + 1,
	}

	for _, diff := range diffs {
		r := Until(now.Add(diff), now)
		got := r.Days*86400 + r.Hours*3600 + r.Minutes*60 + r.Seconds
		want := int(diff / time.Second)
		if got != want {
			t.Errorf("Until(+%v): parts sum to %d seconds, want %d", diff, got, want)
		}
	}
}

func TestUntilUrgent(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		diff   time.Duration
		urgent bool
	}{
		{"one second left", time.Second, true},
		{"23 hours left", 23 * time.Hour, true},
		{"just under a day", 24*time.Hour - time.Second, true},
		{"exactly a day", 24 * time.Hour, false},
		{"two days", 48 * time.Hour, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := Until(now.Add(tc.diff), now)
			if r.Urgent != tc.urgent {
				t.Errorf("Until(+%v) Urgent = %v, want %v", tc.diff, r.Urgent, tc.urgent)
			}
		})
	}
}

func TestRemainingString(t *testing.T) {
	if got := (Remaining{Expired: true}).String(); got != "event passed" {
		t.Errorf("expired String() = %q, want %q", got, "event passed")
	}

	r := Remaining{Days: 3, Hours: 4, Minutes: 5, Seconds: 6}
	want := "3 d. 04 h. 05 m. 06 s."
	if got := r.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
