package ui

import (
	"sort"
	"strings"
	"time"

	"eventick/pkg/event"
)

// SortBy selects the event table sort key.
type SortBy int

const (
	SortByOccurs SortBy = iota
	SortByName
	SortByCreated
	sortByCount // keep last
)

// SortOrder selects ascending or descending order.
type SortOrder int

const (
	SortAsc SortOrder = iota
	SortDesc
)

// SortEvents sorts events based on the current sort settings.
func (m *Model) SortEvents(events []event.Event) []event.Event {
	sorted := make([]event.Event, len(events))
	copy(sorted, events)

	sort.SliceStable(sorted, func(i, j int) bool {
		var result bool

		switch m.sortBy {
		case SortByName:
			result = strings.ToLower(sorted[i].Name) < strings.ToLower(sorted[j].Name)
		case SortByCreated:
			result = sorted[i].Created.Before(sorted[j].Created)
		default:
			result = sorted[i].OccursAt.Before(sorted[j].OccursAt)
		}

		if m.sortOrder == SortDesc {
			result = !result
		}
		return result
	})

	return sorted
}

// upcomingFirst orders events for the home view: future events by soonest
// occurrence, then expired events last.
func upcomingFirst(events []event.Event, now time.Time) []event.Event {
	sorted := make([]event.Event, len(events))
	copy(sorted, events)

	sort.SliceStable(sorted, func(i, j int) bool {
		iPast := !sorted[i].OccursAt.After(now)
		jPast := !sorted[j].OccursAt.After(now)
		if iPast != jPast {
			return jPast
		}
		return sorted[i].OccursAt.Before(sorted[j].OccursAt)
	})

	return sorted
}
