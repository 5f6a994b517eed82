package timer

import (
	"fmt"
	"testing"
	"time"

	"eventick/pkg/event"
)

// recordingNotifier captures deliveries for inspection.
type recordingNotifier struct {
	titles []string
	bodies []string
	sounds []bool
}

func (r *recordingNotifier) Notify(title, body string, sound bool) error {
	r.titles = append(r.titles, title)
	r.bodies = append(r.bodies, body)
	r.sounds = append(r.sounds, sound)
	return nil
}

func testEvent(t *testing.T, name string, occursAt time.Time) event.Event {
	t.Helper()
	e, err := event.New(name, occursAt, event.RepeatNone, 1, occursAt.Add(-30*24*time.Hour))
	if err != nil {
		t.Fatalf("event.New(%q): %v", name, err)
	}
	return e
}

func testSettings(days ...int) event.Settings {
	return event.Settings{NotificationDays: days, DesktopNotifications: true, SoundEnabled: true}
}

func TestScanExactThresholdMatch(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		diff  time.Duration
		days  []int
		fires int
	}{
		// ceil(3.2 days) == 4, threshold 3 does not match
		{"partway past threshold misses", 3*24*time.Hour + 5*time.Hour, []int{3}, 0},
		// ceil(2.9 days) == 3, matches exactly
		{"inside threshold day fires", 2*24*time.Hour + 22*time.Hour, []int{3}, 1},
		{"exact whole days fires", 7 * 24 * time.Hour, []int{7}, 1},
		{"one minute into next day", 7*24*time.Hour + time.Minute, []int{7}, 0},
		{"expired never fires", -time.Hour, []int{1, 3, 7}, 0},
		{"occurring right now never fires", 0, []int{1, 3, 7}, 0},
		{"no thresholds no fires", 24 * time.Hour, nil, 0},
		{"final day matches threshold 1", 6 * time.Hour, []int{1}, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ev := NewEvaluator(&recordingNotifier{})
			events := []event.Event{testEvent(t, "party", now.Add(tc.diff))}

			fired := ev.Scan(events, testSettings(tc.days...), now)
			if len(fired) != tc.fires {
				t.Errorf("Scan fired %d notification(s), want %d", len(fired), tc.fires)
			}
			if ev.Count() != tc.fires {
				t.Errorf("inbox has %d notification(s), want %d", ev.Count(), tc.fires)
			}
		})
	}
}

func TestScanNotificationSnapshot(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	occursAt := now.Add(3 * 24 * time.Hour)

	ev := NewEvaluator(&recordingNotifier{})
	e := testEvent(t, "launch", occursAt)

	fired := ev.Scan([]event.Event{e}, testSettings(3), now)
	if len(fired) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(fired))
	}

	n := fired[0]
	if n.ID != fmt.Sprintf("%s-3", e.ID) {
		t.Errorf("notification ID = %q, want %q", n.ID, fmt.Sprintf("%s-3", e.ID))
	}
	if n.EventID != e.ID || n.EventName != "launch" || n.DaysLeft != 3 {
		t.Errorf("notification snapshot = %+v", n)
	}
	if !n.OccursAt.Equal(occursAt) || !n.FiredAt.Equal(now) {
		t.Errorf("notification times = occursAt %v firedAt %v", n.OccursAt, n.FiredAt)
	}

	// Renaming the event afterwards must not rewrite the snapshot.
	e.Name = "renamed"
	inbox := ev.Notifications()
	if inbox[0].EventName != "launch" {
		t.Errorf("inbox entry changed after event edit: %q", inbox[0].EventName)
	}
}

func TestScanMultipleEventsAndThresholds(t *testing.T) {
	now := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	events := []event.Event{
		testEvent(t, "tomorrow", now.Add(24*time.Hour)),
		testEvent(t, "next week", now.Add(7*24*time.Hour)),
		testEvent(t, "far out", now.Add(30*24*time.Hour)),
	}

	ev := NewEvaluator(&recordingNotifier{})
	fired := ev.Scan(events, testSettings(1, 7), now)

	if len(fired) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(fired))
	}
	if fired[0].EventName != "tomorrow" || fired[0].DaysLeft != 1 {
		t.Errorf("first notification = %+v", fired[0])
	}
	if fired[1].EventName != "next week" || fired[1].DaysLeft != 7 {
		t.Errorf("second notification = %+v", fired[1])
	}
}

func TestScanRepeatsWithoutDedup(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	events := []event.Event{testEvent(t, "party", now.Add(3*24*time.Hour))}

	ev := NewEvaluator(&recordingNotifier{})
	ev.Scan(events, testSettings(3), now)
	// A second scan inside the same qualifying window fires again.
	ev.Scan(events, testSettings(3), now.Add(time.Minute))

	if ev.Count() != 2 {
		t.Errorf("inbox has %d notification(s) after two scans, want 2", ev.Count())
	}
}

func TestScanDesktopDeliveryGating(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	events := []event.Event{testEvent(t, "party", now.Add(24*time.Hour))}

	t.Run("disabled desktop still fills inbox", func(t *testing.T) {
		rec := &recordingNotifier{}
		ev := NewEvaluator(rec)
		settings := event.Settings{NotificationDays: []int{1}, DesktopNotifications: false, SoundEnabled: true}

		fired := ev.Scan(events, settings, now)
		if len(fired) != 1 || ev.Count() != 1 {
			t.Fatalf("expected inbox entry regardless of desktop setting")
		}
		if len(rec.titles) != 0 {
			t.Errorf("notifier called %d time(s) with desktop disabled", len(rec.titles))
		}
	})

	t.Run("sound flag forwarded", func(t *testing.T) {
		rec := &recordingNotifier{}
		ev := NewEvaluator(rec)
		settings := event.Settings{NotificationDays: []int{1}, DesktopNotifications: true, SoundEnabled: false}

		ev.Scan(events, settings, now)
		if len(rec.sounds) != 1 || rec.sounds[0] {
			t.Errorf("sound flag = %v, want [false]", rec.sounds)
		}
		if rec.bodies[0] != `"party" in 1 day` {
			t.Errorf("body = %q", rec.bodies[0])
		}
	})
}

func TestClearThenRescan(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	events := []event.Event{testEvent(t, "party", now.Add(24*time.Hour))}

	ev := NewEvaluator(&recordingNotifier{})
	ev.Scan(events, testSettings(1), now)
	ev.Clear()

	if ev.Count() != 0 {
		t.Fatalf("inbox not empty after Clear")
	}

	// Clearing does not suppress later crossings.
	ev.Scan(events, testSettings(1), now.Add(time.Minute))
	if ev.Count() != 1 {
		t.Errorf("inbox has %d notification(s) after rescan, want 1", ev.Count())
	}
}

func TestNotificationsReturnsCopy(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	events := []event.Event{testEvent(t, "party", now.Add(24*time.Hour))}

	ev := NewEvaluator(&recordingNotifier{})
	ev.Scan(events, testSettings(1), now)

	got := ev.Notifications()
	got[0].EventName = "mutated"

	if ev.Notifications()[0].EventName != "party" {
		t.Errorf("mutating the returned slice changed the inbox")
	}
}

func TestDaysText(t *testing.T) {
	tests := []struct {
		days int
		want string
	}{
		{1, "1 day"},
		{2, "2 days"},
		{30, "30 days"},
	}
	for _, tc := range tests {
		if got := DaysText(tc.days); got != tc.want {
			t.Errorf("DaysText(%d) = %q, want %q", tc.days, got, tc.want)
		}
	}
}
