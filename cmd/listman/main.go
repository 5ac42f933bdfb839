package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/listman/internal/config"
	"github.com/mmcdole/listman/internal/log"
	"github.com/mmcdole/listman/internal/service"
	"github.com/mmcdole/listman/internal/store"
	"github.com/mmcdole/listman/internal/tui"
	"golang.org/x/term"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	var (
		showVersion bool
		configFile  string
		memoryOnly  bool
	)
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.StringVar(&configFile, "config", "", "path to config file")
	flag.BoolVar(&memoryOnly, "memory", false, "keep items in memory only")
	flag.Parse()

	if showVersion {
		fmt.Printf("listman %s\n", Version)
		return
	}

	if err := run(configFile, memoryOnly); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configFile string, memoryOnly bool) error {
	// Load configuration
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if memoryOnly {
		cfg.Storage.Path = ""
	}

	// Setup logger
	fileLog, err := log.Open(&cfg.Logging)
	if err != nil {
		// A broken log file never blocks the list
		fileLog = log.Discard()
	}
	defer fileLog.Close()
	logger := fileLog.Logger
	slog.SetDefault(logger)

	logger.Info("starting listman", "version", Version, "storage", cfg.Storage.Path)

	itemStore, err := store.NewItemStore(cfg.Storage.Path, logger)
	if err != nil {
		return fmt.Errorf("failed to open item store: %w", err)
	}
	defer itemStore.Close()

	svc := service.NewItemService(itemStore, logger)
	loc := cfg.UI.Location()

	// Piped output gets a plain listing instead of the TUI
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		items, err := svc.Load(ctx)
		if err != nil {
			return fmt.Errorf("failed to load items: %w", err)
		}
		fmt.Print(tui.RenderSnapshot(items, loc, cfg.UI.ShowTime))
		return nil
	}

	model := tui.NewModel(svc, tui.Options{
		Title:    cfg.UI.Title,
		Location: loc,
		ShowTime: cfg.UI.ShowTime,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}
