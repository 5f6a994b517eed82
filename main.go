package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"eventick/pkg/app"
	"eventick/pkg/cli"
	"eventick/pkg/config"
	"eventick/pkg/event"
	"eventick/pkg/notify"
	"eventick/pkg/store"
	"eventick/pkg/timer"
	"eventick/pkg/ui"
	"eventick/pkg/utils"
)

func main() {
	args := cli.ParseArgs()

	utils.InitLogger(args.Verbose)
	defer utils.CloseLogger()

	// Load configuration
	cfg, styles, err := config.Load(args.ConfigPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	eventStore, settingsStore, closeBackend, err := openBackend(cfg)
	if err != nil {
		fmt.Printf("Error opening storage: %v\n", err)
		os.Exit(1)
	}
	defer closeBackend()

	clock := timer.SystemClock{}
	events := event.NewStore(eventStore)

	// CLI commands run against the store directly and never start the UI.
	if cli.HandleCommands(events, clock, args) {
		return
	}

	evaluator := timer.NewEvaluator(notify.Desktop{})
	state := app.NewState(events, settingsStore, evaluator, clock)

	// Startup scan, before the first minute tick.
	state.Scan()

	p := tea.NewProgram(ui.NewModel(state, cfg, styles), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}

// openBackend builds the event and settings stores for the configured
// backend. The returned close function releases any database handle.
func openBackend(cfg config.Config) (store.Store[[]event.Event], store.Store[event.Settings], func(), error) {
	switch cfg.Storage {
	case config.StorageSQLite:
		db, err := store.OpenSQLite(cfg.Database)
		if err != nil {
			return nil, nil, nil, err
		}
		return store.NewSQLite[[]event.Event](db, "events"),
			store.NewSQLite[event.Settings](db, "settings"),
			func() { db.Close() }, nil

	case config.StoragePostgres:
		db, err := store.OpenPostgres(cfg.PostgresDSN)
		if err != nil {
			return nil, nil, nil, err
		}
		return store.NewPostgres[[]event.Event](db, "events"),
			store.NewPostgres[event.Settings](db, "settings"),
			func() { db.Close() }, nil

	default:
		return store.NewFile[[]event.Event](filepath.Join(cfg.DataDir, "events.json")),
			store.NewFile[event.Settings](filepath.Join(cfg.DataDir, "settings.json")),
			func() {}, nil
	}
}
