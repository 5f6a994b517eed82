package timer

import (
	"fmt"
	"time"
)

// Remaining is the countdown breakdown for a single event. When Expired is
// true the numeric fields are zero; an event in the past is a terminal
// display state, not an error. Urgent flags events inside their final day
// and is advisory metadata for presentation only.
type Remaining struct {
	Days    int
	Hours   int
	Minutes int
	Seconds int
	Expired bool
	Urgent  bool
}

// Until decomposes the time between now and occursAt into whole days, then
// hours, minutes and seconds, truncating at each level. It must be
// recomputed every tick for a correct second-level display.
func Until(occursAt, now time.Time) Remaining {
	diff := occursAt.Sub(now)
	if diff <= 0 {
		return Remaining{Expired: true}
	}

	days := int(diff / (24 * time.Hour))
	diff -= time.Duration(days) * 24 * time.Hour
	hours := int(diff / time.Hour)
	diff -= time.Duration(hours) * time.Hour
	minutes := int(diff / time.Minute)
	diff -= time.Duration(minutes) * time.Minute
	seconds := int(diff / time.Second)

	return Remaining{
		Days:    days,
		Hours:   hours,
		Minutes: minutes,
		Seconds: seconds,
		Urgent:  days == 0 && hours < 24,
	}
}

// String formats the breakdown for display.
func (r Remaining) String() string {
	if r.Expired {
		return "event passed"
	}
	return fmt.Sprintf("%d d. %02d h. %02d m. %02d s.", r.Days, r.Hours, r.Minutes, r.Seconds)
}
