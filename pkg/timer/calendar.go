package timer

import (
	"time"

	"eventick/pkg/event"
)

// CalendarCells is the fixed size of the month grid: 6 weeks of 7 days.
const CalendarCells = 42

// Cell is one day of the projected month grid.
type Cell struct {
	Date     time.Time
	Day      int
	InMonth  bool
	Today    bool
	HasEvent bool
}

// ProjectMonth lays the given month out as 42 cells in row-major order,
// Monday first, starting from the Monday on or before the 1st. Cells from
// the surrounding months are included with InMonth false.
//
// HasEvent matches each event's stored occurrence date only (time of day
// ignored). Repeat fields are deliberately not expanded into future
// occurrences here.
func ProjectMonth(year int, month time.Month, events []event.Event, today time.Time) []Cell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, today.Location())

	// Monday on or before the 1st. time.Weekday has Sunday == 0.
	offset := (int(first.Weekday()) + 6) % 7
	start := first.AddDate(0, 0, -offset)

	cells := make([]Cell, 0, CalendarCells)
	for i := 0; i < CalendarCells; i++ {
		date := start.AddDate(0, 0, i)

		hasEvent := false
		for _, e := range events {
			if sameDate(e.OccursAt, date) {
				hasEvent = true
				break
			}
		}

		cells = append(cells, Cell{
			Date:     date,
			Day:      date.Day(),
			InMonth:  date.Month() == month,
			Today:    sameDate(date, today),
			HasEvent: hasEvent,
		})
	}

	return cells
}

// sameDate compares calendar dates, ignoring time of day.
func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
