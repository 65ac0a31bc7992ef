package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dgallion1/txtread/internal/app"
	"github.com/dgallion1/txtread/internal/config"
	"github.com/dgallion1/txtread/internal/pipeline"
	"github.com/dgallion1/txtread/internal/tui"
	"github.com/gdamore/tcell/v2"
)

func printHelp() {
	fmt.Print(`txtread-tui - read a .txt file one page at a time

USAGE:
    tui [FILE]

FILE is stored as the reader's filePath. Without it the stored setting
is used. Environment variables are the same as for the server
(TXTREAD_SETTINGS_FILE, TXTREAD_PAGE_SIZE, TXTREAD_ENCODING, ...).
`)
}

func main() {
	cfg := config.Load()

	if len(os.Args) > 1 {
		arg := os.Args[1]
		switch arg {
		case "-h", "--help":
			printHelp()
			os.Exit(0)
		default:
			abs, err := filepath.Abs(arg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error resolving %s: %v\n", arg, err)
				os.Exit(1)
			}
			cfg.SeedFilePath = abs
		}
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	// The screen owns stdout, so logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewJSONHandler(logOut, &slog.HandlerOptions{Level: level}))

	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing screen: %v\n", err)
		os.Exit(1)
	}

	reader, err := app.New(cfg, log)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Error initializing reader: %v\n", err)
		os.Exit(1)
	}

	ui := tui.New(screen, reader.Orchestrator, log)
	reader.Session.Presenter().Attach(pipeline.NewID(), ui.View())

	if err := reader.Start(context.Background()); err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Error starting reader: %v\n", err)
		os.Exit(1)
	}

	ui.Run()
	screen.Fini()
	reader.Close()
}
