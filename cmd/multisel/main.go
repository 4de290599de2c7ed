// Package main is the entry point for the multisel demo editor.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/multisel/internal/app"
	"github.com/dshills/multisel/internal/config"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts, logClose := parseFlags()
	if logClose != nil {
		defer logClose()
	}

	application, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}

	// Handle signals for graceful shutdown
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-signals
		application.Interrupt()
	}()

	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags() (app.Options, func()) {
	var configPath string
	var logLevel string
	var noWatch bool
	var showVersion bool
	var showHelp bool

	flag.StringVar(&configPath, "config", "", "Path to configuration file")
	flag.StringVar(&configPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.BoolVar(&noWatch, "no-watch", false, "Disable reloading when the file changes on disk")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Multisel - multi-selection demo editor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: multisel [options] file\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nKeys (defaults):\n")
		fmt.Fprintf(os.Stderr, "  Ctrl-A    Select all occurrences of the selected text\n")
		fmt.Fprintf(os.Stderr, "  Ctrl-D    Select the next occurrence\n")
		fmt.Fprintf(os.Stderr, "  Esc       Collapse back to a single selection\n")
		fmt.Fprintf(os.Stderr, "  Ctrl-Q    Quit\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("Multisel %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if configPath == "" {
		configPath = config.DefaultPath()
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
	}

	if logLevel == "" {
		logLevel = cfg.Log.Level
	}

	// Logs go to a file only: writing to stderr would corrupt the
	// terminal UI.
	logger := app.NullLogger
	var logClose func()
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: cannot open log file: %v\n", err)
		} else {
			logger = app.NewLogger(f, app.ParseLogLevel(logLevel))
			logClose = func() { _ = f.Close() }
		}
	}

	return app.Options{
		Path:      flag.Arg(0),
		Config:    cfg,
		Logger:    logger,
		WatchFile: !noWatch,
	}, logClose
}
