// Package notify is the delivery seam for fired reminders. Delivery is
// fire-and-forget: callers log failures and move on.
package notify

import "github.com/gen2brain/beeep"

// Notifier delivers one notification to the user.
type Notifier interface {
	Notify(title, body string, sound bool) error
}

// Desktop shows a system notification via the OS notification service.
type Desktop struct{}

// Notify pops a desktop notification, with an audible alert when sound is
// enabled.
func (Desktop) Notify(title, body string, sound bool) error {
	if sound {
		return beeep.Alert(title, body, "")
	}
	return beeep.Notify(title, body, "")
}

// Nop swallows notifications. Used when desktop delivery is unsupported or
// during CLI runs.
type Nop struct{}

// Notify does nothing.
func (Nop) Notify(title, body string, sound bool) error {
	return nil
}
