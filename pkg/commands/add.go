package commands

import (
	"fmt"
	"os"

	"eventick/pkg/event"
	"eventick/pkg/timer"
)

// HandleAddEvent processes the --add command
func HandleAddEvent(events *event.Store, clock timer.Clock, name, dateStr, timeStr, repeatStr string, interval int) {
	if dateStr == "" {
		fmt.Println("Error: --add requires --date (YYYY-MM-DD)")
		os.Exit(1)
	}

	occursAt, err := event.ParseOccursAt(dateStr, timeStr)
	if err != nil {
		fmt.Printf("Error parsing date/time: %v\n", err)
		os.Exit(1)
	}

	e, err := event.New(name, occursAt, event.Repeat(repeatStr), interval, clock.Now())
	if err != nil {
		fmt.Printf("Error creating event: %v\n", err)
		os.Exit(1)
	}

	if err := events.Add(e); err != nil {
		fmt.Printf("Error adding event: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Event added: %s on %s\n", e.Name, e.OccursAt.Format("2006-01-02 15:04"))
}
