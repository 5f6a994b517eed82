package event

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Repeat describes how often an event recurs.
type Repeat string

const (
	RepeatNone    Repeat = "none"
	RepeatDaily   Repeat = "daily"
	RepeatWeekly  Repeat = "weekly"
	RepeatMonthly Repeat = "monthly"
)

// Repeats lists the valid repeat values in menu order.
var Repeats = []Repeat{RepeatNone, RepeatDaily, RepeatWeekly, RepeatMonthly}

// ValidRepeat returns true if r is a known repeat value.
func ValidRepeat(r Repeat) bool {
	switch r {
	case RepeatNone, RepeatDaily, RepeatWeekly, RepeatMonthly:
		return true
	}
	return false
}

// Event is a single countdown target. The repeat fields are captured and
// round-tripped but occurrences are never expanded from them: the calendar
// and the notification scan only ever match OccursAt itself.
type Event struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	OccursAt       time.Time `json:"occurs_at"`
	Repeat         Repeat    `json:"repeat"`
	RepeatInterval int       `json:"repeat_interval"`
	Created        time.Time `json:"created"`
}

var (
	ErrEmptyName      = errors.New("event name must not be empty")
	ErrInvalidTime    = errors.New("event has no valid occurrence time")
	ErrInvalidRepeat  = errors.New("unknown repeat value")
	ErrBadInterval    = errors.New("repeat interval must be positive")
	ErrUnknownEventID = errors.New("no event with that id")
)

// Validate checks the invariants an Event must satisfy before it is
// persisted. Invalid events are rejected at the edit boundary; the rest of
// the code never sees one.
func (e Event) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return ErrEmptyName
	}
	if e.OccursAt.IsZero() {
		return ErrInvalidTime
	}
	if !ValidRepeat(e.Repeat) {
		return ErrInvalidRepeat
	}
	if e.Repeat != RepeatNone && e.RepeatInterval < 1 {
		return ErrBadInterval
	}
	return nil
}

// New builds a validated event with a fresh ID.
func New(name string, occursAt time.Time, repeat Repeat, interval int, now time.Time) (Event, error) {
	if repeat == "" {
		repeat = RepeatNone
	}
	if interval < 1 {
		interval = 1
	}
	e := Event{
		ID:             uuid.New(),
		Name:           strings.TrimSpace(name),
		OccursAt:       occursAt,
		Repeat:         repeat,
		RepeatInterval: interval,
		Created:        now,
	}
	if err := e.Validate(); err != nil {
		return Event{}, err
	}
	return e, nil
}

// ParseOccursAt combines a date string and an optional time-of-day string
// into the event's occurrence time in the local wall clock. An empty time
// defaults to midnight.
func ParseOccursAt(dateStr, timeStr string) (time.Time, error) {
	d, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(dateStr), time.Local)
	if err != nil {
		return time.Time{}, err
	}
	if strings.TrimSpace(timeStr) == "" {
		return d, nil
	}
	t, err := time.Parse("15:04", strings.TrimSpace(timeStr))
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), 0, 0, time.Local), nil
}
