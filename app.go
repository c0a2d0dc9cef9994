package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"headersearch/internal/catalog"
	"headersearch/internal/config"
	"headersearch/internal/eventbus"
	"headersearch/internal/search"
	"headersearch/internal/ui"
)

// runTUI starts the interactive header
func runTUI(cmd *cobra.Command, args []string) error {
	bus := eventbus.New()
	defer bus.Close()

	cfg, closeLog, err := startSession(bus)
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := loadCatalog(cfg, bus)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	uiModel := ui.NewModel(cfg, store, search.NewDefaultRouter(), bus)
	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	uiModel.SetProgram(p)

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	// Errors reach the status line
	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	})

	if cfg.UISettings.WatchCatalog && (cfg.Catalog.Machines != "" || cfg.Catalog.Products != "") {
		watcher, err := catalog.NewWatcher(cfg.Catalog.Machines, cfg.Catalog.Products)
		if err != nil {
			log.Printf("Catalog watcher disabled: %v", err)
		} else {
			defer watcher.Stop()
			watcher.Watch(func(path string) {
				p.Send(ui.CatalogChangedMsg{Path: path})
			})
			log.Printf("Watching catalog files: %v", watcher.Files())
		}
	}

	if os.Getenv("HEADERSEARCH_E2E_TEST") == "1" {
		fmt.Println("__READY__")
	}

	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		log.Printf("Error running program: %v", err)
		return fmt.Errorf("error running program: %w", err)
	}
	log.Printf("UI exited normally")

	return nil
}

// startSession loads the config, points the standard logger at the
// configured log file and only then attaches the event logger, so nothing
// published during startup is written to the terminal the UI is about to own.
func startSession(bus eventbus.EventBus) (*config.Config, func(), error) {
	cfg, svc, err := loadConfig(nil)
	if err != nil {
		return nil, nil, err
	}

	closeLog := func() {}
	if cfg.LogFile != "" {
		logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			log.Printf("Could not open log file: %v", err)
		} else {
			log.SetOutput(logFile)
			closeLog = func() { logFile.Close() }
		}
	}

	subscribeLogging(bus)
	bus.Publish(eventbus.ConfigLoadedEvent{
		Path:         svc.Path(),
		MachinesPath: cfg.Catalog.Machines,
		ProductsPath: cfg.Catalog.Products,
	})
	return cfg, closeLog, nil
}

// subscribeLogging writes every domain event the host cares about to the log
func subscribeLogging(bus eventbus.EventBus) {
	bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.ConfigLoadedEvent); ok {
			log.Printf("Config loaded from %s", ev.Path)
		}
	})
	bus.Subscribe(eventbus.EventConfigSaved, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.ConfigSavedEvent); ok {
			log.Printf("Config saved to %s", ev.Path)
		}
	})
	bus.Subscribe(eventbus.EventCatalogLoaded, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.CatalogLoadedEvent); ok {
			log.Printf("Catalog ready: %d machines, %d products (%s)", ev.Machines, ev.Products, ev.Source)
		}
	})
	bus.Subscribe(eventbus.EventCatalogReloaded, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.CatalogReloadedEvent); ok {
			log.Printf("Catalog reloaded after change to %s: %d machines, %d products", ev.Path, ev.Machines, ev.Products)
		}
	})
	bus.Subscribe(eventbus.EventSearchCompleted, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.SearchCompletedEvent); ok {
			log.Printf("Search %q: %d shown %v", ev.Query, ev.MatchCount, ev.Counts)
		}
	})
	bus.Subscribe(eventbus.EventResultCommitted, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.ResultCommittedEvent); ok {
			log.Printf("Committed %s %q from query %q", ev.Result.Category, ev.Result.SourceID, ev.Query)
		}
	})
	bus.Subscribe(eventbus.EventDropdownCancelled, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.DropdownCancelledEvent); ok {
			log.Printf("Search cancelled (query %q, blurred %t)", ev.Query, ev.Blurred)
		}
	})
	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.ErrorEvent); ok {
			log.Printf("Error: %s: %v", ev.Message, ev.Err)
		}
	})
}
