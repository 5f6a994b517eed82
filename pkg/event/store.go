package event

import (
	"github.com/google/uuid"

	"eventick/pkg/store"
	"eventick/pkg/utils"
)

// Store is the ordered collection of events. Every mutation is written
// through to the backend; a backend that fails to load simply yields an
// empty collection.
type Store struct {
	events  []Event
	backend store.Store[[]Event]
}

// NewStore loads the event list from the backend. Corrupt or missing data
// degrades to an empty store, never an error.
func NewStore(backend store.Store[[]Event]) *Store {
	s := &Store{backend: backend}
	events, err := backend.Load()
	if err != nil {
		utils.Log("Could not load events, starting empty: %v", err)
		return s
	}
	s.events = events
	return s
}

// List returns a copy of the events in insertion order.
func (s *Store) List() []Event {
	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}

// Len returns the number of stored events.
func (s *Store) Len() int {
	return len(s.events)
}

// Get looks an event up by ID.
func (s *Store) Get(id uuid.UUID) (Event, bool) {
	for _, e := range s.events {
		if e.ID == id {
			return e, true
		}
	}
	return Event{}, false
}

// Add validates and appends a new event.
func (s *Store) Add(e Event) error {
	if err := e.Validate(); err != nil {
		return err
	}
	s.events = append(s.events, e)
	return s.persist()
}

// Update replaces every field of the stored event with the same ID. The ID
// itself is immutable once assigned.
func (s *Store) Update(e Event) error {
	if err := e.Validate(); err != nil {
		return err
	}
	for i := range s.events {
		if s.events[i].ID == e.ID {
			s.events[i] = e
			return s.persist()
		}
	}
	return ErrUnknownEventID
}

// Delete removes the event with the given ID. Deleting an unknown ID is a
// no-op.
func (s *Store) Delete(id uuid.UUID) error {
	out := s.events[:0]
	for _, e := range s.events {
		if e.ID != id {
			out = append(out, e)
		}
	}
	s.events = out
	return s.persist()
}

// DeleteWhere removes every event for which keep returns true and reports
// how many were removed. Used by the purge command.
func (s *Store) DeleteWhere(match func(Event) bool) (int, error) {
	out := s.events[:0]
	removed := 0
	for _, e := range s.events {
		if match(e) {
			removed++
			continue
		}
		out = append(out, e)
	}
	s.events = out
	return removed, s.persist()
}

func (s *Store) persist() error {
	if err := s.backend.Save(s.events); err != nil {
		utils.Log("Error saving events: %v", err)
		return err
	}
	return nil
}
