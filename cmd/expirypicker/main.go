package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"expirypicker/internal/config"
	"expirypicker/internal/domain"
	"expirypicker/internal/eventbus"
	"expirypicker/internal/expiration"
	"expirypicker/internal/logging"
	"expirypicker/internal/ui"
)

const e2eEnv = "EXPIRYPICKER_E2E_TEST"

func main() {
	// Parse command line arguments
	var configPath, statePath, logPath, month, year string
	flag.StringVar(&configPath, "config", "", "Path to the config file")
	flag.StringVar(&statePath, "state", "", "Path to the expiration state file")
	flag.StringVar(&logPath, "log", "", "Path to the log file")
	flag.StringVar(&month, "month", "", "Initial month (MM)")
	flag.StringVar(&year, "year", "", "Initial year (YYYY)")
	flag.Parse()

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "expirypicker must be run in a terminal")
		os.Exit(1)
	}

	// Logger buffers until the config names the log file
	log := logging.NewDeferred()

	// Create event bus
	bus := eventbus.New(log.Logger)
	stopJournal := journal(bus, log.Logger)

	// Load configuration
	configSvc := config.NewConfigService()
	if configPath != "" {
		configSvc = config.NewConfigServiceAt(configPath)
	}
	cfg, err := loadOrCreateConfig(config.WithBus(configSvc, bus), log.Logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if statePath == "" {
		statePath = cfg.StatePath(configSvc.Path())
	}
	if logPath == "" {
		logPath = cfg.LogPath(configSvc.Path())
	}

	// Set up logging
	logCloser, err := log.Open(logPath, cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error setting up logging: %v\n", err)
		os.Exit(1)
	}

	err = run(cfg, bus, statePath, domain.Expiration{Month: month, Year: year}, log.Logger)
	bus.Close()
	stopJournal()
	if err != nil {
		log.WithError(err).Error("program failed")
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		logCloser.Close()
		os.Exit(1)
	}
	logCloser.Close()
}

// loadOrCreateConfig loads the config file, writing the defaults on first run
func loadOrCreateConfig(configSvc config.ConfigService, log logrus.FieldLogger) (*config.Config, error) {
	_, statErr := os.Stat(configSvc.Path())

	cfg, err := configSvc.Load()
	if err != nil {
		return nil, err
	}

	if os.IsNotExist(statErr) {
		log.WithField("path", configSvc.Path()).Info("creating default config")
		if err := configSvc.Save(cfg); err != nil {
			log.WithError(err).Warn("failed to save config")
		}
	}
	return cfg, nil
}

// journal logs picker and config activity from the bus
func journal(bus eventbus.EventBus, log logrus.FieldLogger) func() {
	handle := func(e eventbus.DomainEvent) {
		switch event := e.(type) {
		case eventbus.PickerFocusedEvent:
			log.WithFields(logrus.Fields{"picker_id": event.PickerID, "field": event.Field}).Info("picker opened")
		case eventbus.PickerBlurredEvent:
			log.WithFields(logrus.Fields{"picker_id": event.PickerID, "field": event.Field}).Info("picker closed")
		case eventbus.ConfigLoadedEvent:
			log.WithField("path", event.Path).Info("config loaded")
		case eventbus.ConfigSavedEvent:
			log.WithField("path", event.Path).Info("config saved")
		}
	}

	var unsubscribe []func()
	for _, t := range []eventbus.EventType{
		eventbus.EventPickerFocused,
		eventbus.EventPickerBlurred,
		eventbus.EventConfigLoaded,
		eventbus.EventConfigSaved,
	} {
		unsubscribe = append(unsubscribe, bus.Subscribe(t, handle))
	}
	return func() {
		for _, u := range unsubscribe {
			u()
		}
	}
}

func run(cfg *config.Config, bus eventbus.EventBus, statePath string, override domain.Expiration, log *logrus.Logger) error {
	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	initial, err := expiration.LoadState(statePath)
	if err != nil {
		return err
	}
	if override.Month != "" {
		initial.Month = override.Month
	}
	if override.Year != "" {
		initial.Year = override.Year
	}
	log.WithFields(logrus.Fields{"path": statePath, "expiration": initial.String()}).Info("expiration loaded")

	store := expiration.NewStore(initial, bus)

	saver := expiration.NewSaver(store, statePath, bus, log)
	if cfg.State.Autosave {
		saver.Start()
		defer saver.Stop()
	}

	// Create UI model
	uiModel := ui.NewModel(bus, cfg, store, log)
	uiModel.SetReadyMarker(os.Getenv(e2eEnv) == "1")

	opts := []tea.ProgramOption{}
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(uiModel, opts...)
	uiModel.SetProgram(p)

	// Set up event forwarding to UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.WithField("event", e.Type()).Warn("event channel full, dropping event")
		}
	}
	for _, t := range []eventbus.EventType{
		eventbus.EventExpirationLoaded,
		eventbus.EventExpirationSaved,
		eventbus.EventError,
	} {
		unsubscribe := bus.Subscribe(t, forward)
		defer unsubscribe()
	}

	g, gctx := errgroup.WithContext(ctx)

	// Forward events to the UI in background
	g.Go(func() error {
		for {
			select {
			case <-gctx.Done():
				return nil
			case event := <-eventChan:
				p.Send(ui.EventMsg{Event: event})
			}
		}
	})

	// Handle termination signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	g.Go(func() error {
		select {
		case sig := <-sigChan:
			log.WithField("signal", sig.String()).Info("received signal, quitting")
			p.Quit()
		case <-gctx.Done():
		}
		return nil
	})

	bus.Publish(eventbus.ExpirationLoadedEvent{Path: statePath, Expiration: initial})

	// Run the UI
	_, runErr := p.Run()
	cancel()
	_ = g.Wait()
	if runErr != nil {
		return runErr
	}

	// Final save
	if err := saver.Save(); err != nil {
		return err
	}
	log.WithField("expiration", store.Snapshot().String()).Info("exiting")
	return nil
}
