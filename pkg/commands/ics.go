package commands

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"eventick/pkg/event"
)

// repeat <-> RRULE FREQ mapping. Repeat fields round-trip through ICS as
// plain RRULEs; nothing in the app expands them into occurrences.
var repeatToFreq = map[event.Repeat]string{
	event.RepeatDaily:   "DAILY",
	event.RepeatWeekly:  "WEEKLY",
	event.RepeatMonthly: "MONTHLY",
}

var freqToRepeat = map[string]event.Repeat{
	"DAILY":   event.RepeatDaily,
	"WEEKLY":  event.RepeatWeekly,
	"MONTHLY": event.RepeatMonthly,
}

// BuildCalendar renders the event list as an iCalendar document.
func BuildCalendar(events []event.Event) *ics.Calendar {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//eventick//EN")

	for _, e := range events {
		ve := cal.AddEvent(e.ID.String())
		ve.SetCreatedTime(e.Created)
		ve.SetDtStampTime(e.Created)
		ve.SetStartAt(e.OccursAt)
		ve.SetSummary(e.Name)
		if freq, ok := repeatToFreq[e.Repeat]; ok {
			ve.AddRrule(fmt.Sprintf("FREQ=%s;INTERVAL=%d", freq, e.RepeatInterval))
		}
	}

	return cal
}

// ParseEvents reads VEVENTs out of an iCalendar document. Entries without a
// summary or start time are skipped; the caller reports how many survived.
func ParseEvents(data []byte, now time.Time) ([]event.Event, error) {
	cal, err := ics.ParseCalendar(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	var out []event.Event
	for _, ve := range cal.Events() {
		start, err := ve.GetStartAt()
		if err != nil {
			continue
		}

		summary := ""
		if prop := ve.GetProperty(ics.ComponentPropertySummary); prop != nil {
			summary = prop.Value
		}
		if strings.TrimSpace(summary) == "" {
			continue
		}

		repeat, interval := parseRrule(ve)

		e, err := event.New(summary, start.In(time.Local), repeat, interval, now)
		if err != nil {
			continue
		}
		out = append(out, e)
	}

	return out, nil
}

// parseRrule extracts the repeat unit and interval from a VEVENT's RRULE,
// defaulting to a non-repeating event for rules the app does not model.
func parseRrule(ve *ics.VEvent) (event.Repeat, int) {
	prop := ve.GetProperty(ics.ComponentPropertyRrule)
	if prop == nil {
		return event.RepeatNone, 1
	}

	repeat := event.RepeatNone
	interval := 1
	for _, part := range strings.Split(prop.Value, ";") {
		kv := strings.SplitN(part, "=", 2)
		if len(kv) != 2 {
			continue
		}
		switch strings.ToUpper(kv[0]) {
		case "FREQ":
			if r, ok := freqToRepeat[strings.ToUpper(kv[1])]; ok {
				repeat = r
			}
		case "INTERVAL":
			if n, err := strconv.Atoi(kv[1]); err == nil && n > 0 {
				interval = n
			}
		}
	}

	return repeat, interval
}
