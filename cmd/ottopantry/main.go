// OttoPantry keeps track of a kitchen pantry and a recipe book, and tells
// you what you can cook with what you have.
//
// Usage:
//
//	ottopantry [-verbose] [-quiet] [-log-file path] [-no-seed] [-today yyyy-mm-dd]
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hammamikhairi/ottopantry/internal/command"
	"github.com/hammamikhairi/ottopantry/internal/config"
	"github.com/hammamikhairi/ottopantry/internal/display"
	"github.com/hammamikhairi/ottopantry/internal/engine"
	"github.com/hammamikhairi/ottopantry/internal/logger"
	"github.com/hammamikhairi/ottopantry/internal/recipe"
	"github.com/hammamikhairi/ottopantry/internal/seed"
	"github.com/hammamikhairi/ottopantry/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	verbose := flag.Bool("verbose", false, "enable verbose/debug logging")
	quiet := flag.Bool("quiet", false, "disable all logging")
	logFile := flag.String("log-file", cfg.LogFile, "file to write logs to (use \"stderr\" to log to console)")
	noSeed := flag.Bool("no-seed", !cfg.Seed, "start with an empty pantry and cookbook")
	today := flag.String("today", "", "pin today's date (yyyy-mm-dd) for expiry checks")
	flag.Parse()

	if *verbose {
		cfg.LogLevel = logger.LevelVerbose
	}
	if *quiet {
		cfg.LogLevel = logger.LevelOff
	}
	cfg.LogFile = *logFile
	cfg.Seed = !*noSeed
	if *today != "" {
		t, err := command.ParseDate(*today)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: -today: %v\n", err)
			os.Exit(2)
		}
		cfg.Today = t
	}

	// Logs go to a file by default so the prompt stays clean.
	var logOut io.Writer = os.Stderr
	if cfg.LogFile != "" && cfg.LogFile != "stderr" {
		f, err := openLogFile(cfg.LogFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v (falling back to stderr)\n", err)
		} else {
			logOut = f
			defer f.Close()
		}
	}

	log := logger.New(cfg.LogLevel, logOut)

	// Cancelled when the UI quits.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ui := display.NewUI(cfg.Currency)
	pantry := storage.NewPantry(log, storage.WithMergeDecider(askMerge(ctx, ui)))
	catalog := recipe.NewCatalog(log)
	eng := engine.New(pantry, catalog, log, engine.WithClock(cfg.Clock()))

	if cfg.Seed {
		n := seed.Pantry(pantry)
		m, err := seed.Cookbook(catalog)
		if err != nil {
			log.Error("seeding cookbook: %v", err)
		}
		log.Info("seeded %d ingredients and %d recipes", n, m)
	}

	app := &cliApp{
		engine:   eng,
		parser:   command.NewKeywordParser(log),
		notifier: command.NewCLINotifier(log, ui.PrintInfo, ui.PrintUrgent),
		log:      log,
		ui:       ui,
		currency: cfg.Currency,
	}

	fmt.Println(display.RenderBanner())
	fmt.Println(display.BannerStyle.Render("  Type 'help' for commands, 'quit' to exit."))
	fmt.Println()

	go func() {
		ui.WaitReady()
		app.run(ctx)
		ui.Quit()
	}()

	// Bubble Tea owns the terminal; blocks until quit.
	if err := ui.Run(); err != nil {
		log.Error("display: %v", err)
	}
	cancel()
}

// openLogFile opens path for appending, creating its directory if needed.
func openLogFile(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("could not create log directory %s: %w", dir, err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("could not open log file %s: %w", path, err)
	}
	return f, nil
}
