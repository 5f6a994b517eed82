package commands

import (
	"fmt"
	"os"

	"eventick/pkg/event"
	"eventick/pkg/timer"
)

// HandleImportCommand processes --import commands
func HandleImportCommand(events *event.Store, clock timer.Clock, filename string) {
	content, err := os.ReadFile(filename)
	if err != nil {
		fmt.Printf("Error reading file: %v\n", err)
		os.Exit(1)
	}

	imported, err := ParseEvents(content, clock.Now())
	if err != nil {
		fmt.Printf("Error parsing calendar: %v\n", err)
		os.Exit(1)
	}

	var added int
	for _, e := range imported {
		if err := events.Add(e); err != nil {
			fmt.Printf("Error adding event '%s': %v\n", e.Name, err)
			continue
		}
		added++
	}

	fmt.Printf("Successfully imported %d event(s) from %s\n", added, filename)
}
