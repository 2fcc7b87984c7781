package main

import (
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
	cfg, err := configSvc.Load()
	if err != nil {
		log.Printf("Error loading config: %v", err)
		cfg = config.DefaultConfig()
	}

	dataFile := cfg.DataFile
	if len(os.Args) > 1 {
		dataFile = os.Args[1]
	}
	if dataFile == "" {
		fmt.Println("multipick: no item collection; pass a JSON data file or set data_file in the config")
		os.Exit(1)
	}

	records, err := domain.LoadRecords(dataFile)
	if err != nil {
		fmt.Printf("Error loading items: %v\n", err)
		os.Exit(1)
	}

	groups := groupid.NewRegistry()
	uiModel, err := ui.NewModel(bus, cfg, records, groups.Resolve("multipick/main"))
	if err != nil {
		fmt.Printf("Error initializing: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithMouseCellMotion())
	uiModel.SetProgram(p)

	// Forward bus events into the UI loop
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
	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	bus.Publish(eventbus.ItemsLoadedEvent{Source: dataFile, Count: len(records)})

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}

	close(eventChan)
}
