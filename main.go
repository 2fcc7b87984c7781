package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"multipick/internal/config"
	"multipick/internal/domain"
	"multipick/internal/eventbus"
	"multipick/internal/groupid"
	"multipick/internal/ui"
)

func main() {
	// Parse command line arguments
	var dataFile string
	var configPath string
	var mode string
	var visual string
	flag.StringVar(&dataFile, "data", "", "JSON file with the item collection")
	flag.StringVar(&dataFile, "d", "", "JSON file with the item collection (shorthand)")
	flag.StringVar(&configPath, "config", "", "Path to a config file")
	flag.StringVar(&mode, "mode", "", "Selection mode override: single, multi or additive")
	flag.StringVar(&visual, "visual", "", "Visual override: highlight or checkbox")
	flag.Parse()

	// If no data file specified, check for remaining args
	if dataFile == "" && flag.NArg() > 0 {
		dataFile = flag.Arg(0)
	}

	// Set up logging
	logFile, err := os.OpenFile("multipick.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Create event bus
	bus := eventbus.New()

	// Load configuration
	configSvc := config.NewConfigServiceWithBus(bus)
	var cfg *config.Config
	if configPath != "" {
		cfg, err = configSvc.LoadFromPath(configPath)
	} else {
		cfg, err = configSvc.Load()
	}
	if err != nil {
		log.Printf("Error loading config: %v", err)
		cfg = config.DefaultConfig()
	}

	// Flag overrides take precedence over config defaults
	cfg.Selection = cfg.Selection.Merged(config.SelectionSettings{
		Mode:   mode,
		Visual: visual,
	})

	if dataFile == "" {
		dataFile = cfg.DataFile
	}
	if dataFile == "" {
		fmt.Println("multipick: no item collection; pass a JSON data file or set data_file in the config")
		os.Exit(1)
	}

	// The collection binding is required; failing to load it is fatal
	records, err := domain.LoadRecords(dataFile)
	if err != nil {
		fmt.Printf("Error loading items: %v\n", err)
		os.Exit(1)
	}

	// Resolve a group id for this list's container
	groups := groupid.NewRegistry()
	groupID := groups.Resolve("multipick/main")

	// Create UI model
	uiModel, err := ui.NewModel(bus, cfg, records, groupID)
	if err != nil {
		fmt.Printf("Error initializing: %v\n", err)
		os.Exit(1)
	}

	// Create Bubble Tea program with mouse support
	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithMouseCellMotion())
	uiModel.SetProgram(p)

	// Set up event forwarding to UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Println("Event channel full, dropping event")
		}
	}
	bus.Subscribe(eventbus.EventItemsLoaded, forward)
	bus.Subscribe(eventbus.EventError, forward)

	// Start forwarding events to UI in background
	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	bus.Publish(eventbus.ItemsLoadedEvent{Source: dataFile, Count: len(records)})
	bus.Publish(eventbus.AppReadyEvent{ItemCount: len(records)})

	// Run the UI
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}

	// Cleanup
	close(eventChan)

	if cfg.UISettings.AutosaveOnExit {
		if err := configSvc.Save(cfg); err != nil {
			log.Printf("Error saving config: %v", err)
		}
	}
}
