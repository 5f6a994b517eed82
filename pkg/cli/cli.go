package cli

import (
	"flag"

	"eventick/pkg/commands"
	"eventick/pkg/event"
	"eventick/pkg/timer"
)

// Args represents parsed command line arguments
type Args struct {
	ConfigPath string
	Verbose    bool

	// Event operations
	AddEvent     string
	DateFlag     string
	TimeFlag     string
	RepeatFlag   string
	IntervalFlag int

	// Purge operations
	PurgeFlag   bool
	ExpiredFlag bool
	YesFlag     bool

	// Import/Export operations
	ImportFile string
	ExportFile string
	TypeFlag   string
}

// ParseArgs parses command line arguments and returns Args struct
func ParseArgs() *Args {
	args := &Args{}

	// Define command line flags
	flag.StringVar(&args.ConfigPath, "config", "", "Path to configuration file")
	flag.BoolVar(&args.Verbose, "verbose", false, "Enable verbose logging")

	// Event operations
	flag.StringVar(&args.AddEvent, "add", "", "Add a new event with the given name")
	flag.StringVar(&args.DateFlag, "date", "", "Event date (YYYY-MM-DD format)")
	flag.StringVar(&args.TimeFlag, "time", "", "Event time of day (HH:MM, defaults to midnight)")
	flag.StringVar(&args.RepeatFlag, "repeat", "none", "Repeat unit (none, daily, weekly, monthly)")
	flag.IntVar(&args.IntervalFlag, "interval", 1, "Repeat interval multiplier")

	// Purge operations
	flag.BoolVar(&args.PurgeFlag, "purge", false, "Delete events")
	flag.BoolVar(&args.ExpiredFlag, "expired", false, "Restrict purge to expired events")
	flag.BoolVar(&args.YesFlag, "yes", false, "Skip confirmation")

	// Import/Export operations
	flag.StringVar(&args.ImportFile, "import", "", "Import events from an ICS file")
	flag.StringVar(&args.ExportFile, "export", "", "Export events to file")
	flag.StringVar(&args.TypeFlag, "type", "ics", "Export file type (ics, json)")

	flag.Parse()
	return args
}

// HandleCommands processes CLI commands and returns true if a command was handled
func HandleCommands(events *event.Store, clock timer.Clock, args *Args) bool {
	// Check for CLI commands
	if args.AddEvent != "" {
		commands.HandleAddEvent(events, clock, args.AddEvent, args.DateFlag, args.TimeFlag, args.RepeatFlag, args.IntervalFlag)
		return true
	}

	if args.PurgeFlag {
		commands.HandlePurgeCommand(events, clock, args.ExpiredFlag, args.YesFlag)
		return true
	}

	if args.ImportFile != "" {
		commands.HandleImportCommand(events, clock, args.ImportFile)
		return true
	}

	if args.ExportFile != "" {
		commands.HandleExportCommand(events, args.ExportFile, args.TypeFlag)
		return true
	}

	// No CLI command was handled
	return false
}
