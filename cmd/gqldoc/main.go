package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"gqldoc/internal/config"
	"gqldoc/internal/eventbus"
	"gqldoc/internal/schema"
	"gqldoc/internal/ui"
)

func main() {
	var schemaPath string
	flag.StringVar(&schemaPath, "schema", "", "GraphQL SDL file to browse")
	flag.StringVar(&schemaPath, "s", "", "GraphQL SDL file to browse (shorthand)")
	noWatch := flag.Bool("no-watch", false, "Disable reloading when the schema file changes")
	flag.Parse()

	if schemaPath == "" && flag.NArg() > 0 {
		schemaPath = flag.Arg(0)
	}

	// Set up logging
	logFile, err := os.OpenFile("gqldoc.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()

	// Load configuration
	configSvc := config.NewConfigServiceWithBus(bus)
	cfg, err := configSvc.Load()
	if err != nil {
		log.Printf("Error loading config: %v", err)
		cfg = config.DefaultConfig()
	}

	// Fall back to the last opened schema when none was given
	if schemaPath == "" && cfg.UISettings.RememberSchema {
		schemaPath = cfg.SchemaPath
	}
	if schemaPath != "" {
		if abs, err := filepath.Abs(schemaPath); err == nil {
			schemaPath = abs
		}
	}

	// Load the schema; absence is not fatal, the UI shows a placeholder
	var (
		s       *schema.Schema
		loadErr error
	)
	if schemaPath != "" {
		s, loadErr = schema.Load(schemaPath)
		if loadErr != nil {
			log.Printf("Error loading schema: %v", loadErr)
		}
	}

	// Create UI model
	uiModel := ui.NewModel(bus, cfg, s, loadErr)

	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetPager(ui.NewPagerOps(p))

	// Forward schema events to the UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Println("Event channel full, dropping event")
		}
	}
	bus.Subscribe(eventbus.EventSchemaLoaded, forward)
	bus.Subscribe(eventbus.EventSchemaError, forward)
	bus.Subscribe(eventbus.EventSchemaChanged, forward)

	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	// Watch the schema file for changes
	if schemaPath != "" && cfg.UISettings.WatchSchema && !*noWatch {
		watcher, err := schema.NewWatcher(schemaPath, bus)
		if err != nil {
			log.Printf("Could not watch schema file: %v", err)
		} else {
			go watcher.Run(ctx)
		}
	}

	// Run the UI
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}

	// Persist the schema path for next time
	if cfg.UISettings.RememberSchema && schemaPath != "" && loadErr == nil {
		cfg.SchemaPath = schemaPath
		if err := configSvc.Save(cfg); err != nil {
			log.Printf("Error saving config: %v", err)
		}
	}

	close(eventChan)
	cancel()
}
