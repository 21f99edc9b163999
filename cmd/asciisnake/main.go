// Package main is the entry point for ASCII-Snake.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
	"github.com/joho/godotenv"
	"golang.org/x/term"

	"github.com/samdwyer/asciisnake/internal/game"
	"github.com/samdwyer/asciisnake/internal/gamedata"
	"github.com/samdwyer/asciisnake/internal/telemetry"
	"github.com/samdwyer/asciisnake/internal/ui"
)

func main() {
	// Load .env file for local development
	// This makes HONEYCOMB_ASCIISNAKE_API_KEY and SNAKE_* settings available
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	// Set up OTEL environment variables from our .env variables
	exportTraces := telemetry.ConfigureHoneycomb()

	cfg, err := game.LoadConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		log.Fatalf("asciisnake needs an interactive terminal")
	}

	greet(os.Stdout)

	highscore, err := session(cfg, exportTraces)
	if err != nil {
		log.Fatalf("Game error: %v", err)
	}

	farewell(os.Stdout, highscore)
}

// greet announces startup before the screen takes over the terminal.
func greet(w io.Writer) {
	fmt.Fprintln(w, "Starting ASCII-Snake... Loaded!")
}

// farewell reports the session's highscore once the terminal is restored.
func farewell(w io.Writer, highscore int) {
	fmt.Fprintf(w, "\nYour Highscore was: %d Point(s)\n", highscore)
	fmt.Fprintln(w, "Exiting...")
}

// session opens the log sink and telemetry around one run of the game.
// Everything it opens is closed before it returns.
func session(cfg game.Config, exportTraces bool) (int, error) {
	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return 0, fmt.Errorf("open log file: %w", err)
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize telemetry only when there is somewhere to send it
	if exportTraces {
		shutdown, err := telemetry.Setup(ctx, logger.WithName("otel"))
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
			log.Printf("Game will run without observability")
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					log.Printf("Error shutting down telemetry: %v", err)
				}
			}()
		}
	}

	return run(ctx, cfg, logger)
}

// run owns the screen for the lifetime of the game and restores the
// terminal before returning.
func run(ctx context.Context, cfg game.Config, logger logr.Logger) (int, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return 0, fmt.Errorf("initialize screen: %w", err)
	}
	defer screen.Close()

	renderer := ui.NewRenderer(screen, gamedata.MustLoadTheme())
	g, err := game.New(cfg, ui.NewKeyboard(screen), renderer, game.WithLogger(logger))
	if err != nil {
		return 0, err
	}

	if err := g.Run(ctx); err != nil {
		return g.Highscore(), err
	}
	return g.Highscore(), nil
}

// newLogger writes structured logs to the configured file. The terminal is
// owned by the screen, so without a file logs are discarded.
func newLogger(cfg game.Config) (logr.Logger, func(), error) {
	if cfg.LogFile == "" {
		return logr.Discard(), func() {}, nil
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return logr.Discard(), func() {}, err
	}

	stdr.SetVerbosity(cfg.LogVerbosity)
	logger := stdr.New(log.New(f, "", log.LstdFlags|log.Lmicroseconds)).WithName("asciisnake")
	return logger, func() { _ = f.Close() }, nil
}
