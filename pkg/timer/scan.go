package timer

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"eventick/pkg/event"
	"eventick/pkg/notify"
	"eventick/pkg/utils"
)

// Notification is a fired reminder. It is a snapshot of the event at the
// moment the threshold was crossed, so later edits or deletes of the event
// do not rewrite it.
type Notification struct {
	ID        string
	EventID   uuid.UUID
	EventName string
	DaysLeft  int
	OccursAt  time.Time
	FiredAt   time.Time
}

// Evaluator runs the periodic threshold scan. Fired notifications accumulate
// in the inbox until the user clears them; the inbox is transient and never
// persisted.
type Evaluator struct {
	notifier notify.Notifier
	inbox    []Notification
}

// NewEvaluator creates an evaluator that delivers through the given
// notifier.
func NewEvaluator(n notify.Notifier) *Evaluator {
	return &Evaluator{notifier: n}
}

// Scan checks every event against every configured threshold and fires a
// notification where ceil((occursAt-now)/day) equals the threshold exactly
// and the event is still in the future. The rule is exact-match, not "at
// most": a threshold the scan never observes (process suspended during its
// minute window) is silently missed, and a second scan inside the same
// qualifying window fires again — there is no dedup key beyond the passage
// of time.
//
// now is sampled once by the caller so all comparisons within one scan are
// consistent. Newly fired notifications are returned and appended to the
// inbox; existing entries are never touched.
func (ev *Evaluator) Scan(events []event.Event, settings event.Settings, now time.Time) []Notification {
	var fired []Notification

	for _, e := range events {
		diff := e.OccursAt.Sub(now)
		if diff <= 0 {
			continue
		}
		daysDiff := ceilDays(diff)

		for _, d := range settings.NotificationDays {
			if daysDiff != d {
				continue
			}
			fired = append(fired, Notification{
				ID:        fmt.Sprintf("%s-%d", e.ID, d),
				EventID:   e.ID,
				EventName: e.Name,
				DaysLeft:  d,
				OccursAt:  e.OccursAt,
				FiredAt:   now,
			})
		}
	}

	if len(fired) == 0 {
		return nil
	}

	ev.inbox = append(ev.inbox, fired...)

	if settings.DesktopNotifications {
		for _, n := range fired {
			title := "Event reminder"
			body := fmt.Sprintf("%q in %s", n.EventName, DaysText(n.DaysLeft))
			// Delivery is fire-and-forget; an unsupported environment is
			// a silent no-op.
			if err := ev.notifier.Notify(title, body, settings.SoundEnabled); err != nil {
				utils.Log("Notifier error: %v", err)
			}
		}
	}

	return fired
}

// Notifications returns a copy of the inbox, newest last.
func (ev *Evaluator) Notifications() []Notification {
	out := make([]Notification, len(ev.inbox))
	copy(out, ev.inbox)
	return out
}

// Count returns the number of notifications in the inbox.
func (ev *Evaluator) Count() int {
	return len(ev.inbox)
}

// Clear empties the inbox unconditionally. It does not prevent future
// threshold crossings from firing again.
func (ev *Evaluator) Clear() {
	ev.inbox = nil
}

// ceilDays converts a positive duration to a day count, rounding up.
func ceilDays(d time.Duration) int {
	days := int(d / (24 * time.Hour))
	if d%(24*time.Hour) > 0 {
		days++
	}
	return days
}

// DaysText renders a day count for notification bodies.
func DaysText(days int) string {
	if days == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", days)
}
