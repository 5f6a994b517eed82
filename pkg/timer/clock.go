// Package timer holds the temporal engine: the countdown breakdown, the
// notification threshold scan and the monthly calendar projection. All of it
// is pure computation over an injected "now" so it stays testable.
package timer

import "time"

// TickInterval drives the countdown refresh, ScanInterval the notification
// scan.
const (
	TickInterval = time.Second
	ScanInterval = 60 * time.Second
)

// Clock supplies the current wall-clock time. Engine code never reads the
// system clock directly; it always goes through this seam.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production clock.
type SystemClock struct{}

// Now returns the current local time.
func (SystemClock) Now() time.Time {
	return time.Now()
}
