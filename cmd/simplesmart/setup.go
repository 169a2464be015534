package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/simplesmart/internal/config"
	"github.com/vovakirdan/simplesmart/internal/core"
	"github.com/vovakirdan/simplesmart/internal/platform/tui"
	"github.com/vovakirdan/simplesmart/internal/storage"
)

// loadConfig loads the config named by --config or the default search path.
func loadConfig() config.Config {
	cfg, _, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// runtimeConfig builds the runtime config from the terminal size,
// falling back to the configured screen size.
func runtimeConfig(cfg config.Config) core.RuntimeConfig {
	rc := cfg.Runtime(flagSeed)
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	return rc
}

// openDebugLog returns the logger for the walk debug stream and a function
// closing its file. Without --debug-log everything is discarded.
func openDebugLog() (*log.Logger, func()) {
	if flagDebugLog == "" {
		return log.New(io.Discard), func() {}
	}

	if err := os.MkdirAll(filepath.Dir(flagDebugLog), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not create debug log directory: %v\n", err)
		return log.New(io.Discard), func() {}
	}
	f, err := os.OpenFile(flagDebugLog, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open debug log: %v\n", err)
		return log.New(io.Discard), func() {}
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "simplesmart",
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }
}

// openStore opens the profile store. The game still works without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// sessionOptions assembles the options shared by play and menu.
func sessionOptions(cfg config.Config, store *storage.Store, logger *log.Logger, record bool) tui.Options {
	return tui.Options{
		Store:   store,
		Config:  cfg,
		Runtime: runtimeConfig(cfg),
		Logger:  logger,
		Record:  record || cfg.RecordScores,
	}
}
