package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"eventick/pkg/event"
)

// HandleExportCommand processes --export commands
func HandleExportCommand(events *event.Store, filename, exportType string) {
	list := events.List()

	// Ensure directory exists
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		fmt.Printf("Error creating directory: %v\n", err)
		os.Exit(1)
	}

	var content []byte
	var err error

	switch exportType {
	case "json":
		content, err = json.MarshalIndent(list, "", "  ")
		if err != nil {
			fmt.Printf("Error marshaling events to JSON: %v\n", err)
			os.Exit(1)
		}
	case "ics":
		content = []byte(BuildCalendar(list).Serialize())
	default:
		fmt.Printf("Unknown export type: %s\n", exportType)
		os.Exit(1)
	}

	if err := os.WriteFile(filename, content, 0644); err != nil {
		fmt.Printf("Error writing file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully exported %d event(s) to %s\n", len(list), filename)
}
