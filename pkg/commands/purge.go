package commands

import (
	"fmt"
	"os"
	"strings"

	"eventick/pkg/event"
	"eventick/pkg/timer"
)

// HandlePurgeCommand processes --purge commands
func HandlePurgeCommand(events *event.Store, clock timer.Clock, expiredOnly, skipConfirm bool) {
	scope := "ALL events"
	if expiredOnly {
		scope = "all expired events"
	}

	// Show confirmation unless --yes flag is used
	if !skipConfirm {
		fmt.Printf("Are you sure you want to delete %s? (y/N): ", scope)
		var response string
		fmt.Scanln(&response)
		if strings.ToLower(response) != "y" && strings.ToLower(response) != "yes" {
			fmt.Println("Operation cancelled.")
			return
		}
	}

	now := clock.Now()
	removed, err := events.DeleteWhere(func(e event.Event) bool {
		if expiredOnly {
			return !e.OccursAt.After(now)
		}
		return true
	})
	if err != nil {
		fmt.Printf("Error purging events: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully deleted %d event(s)\n", removed)
}
