// Package main is the entry point for Skirmish.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/samdwyer/skirmish/internal/game"
	"github.com/samdwyer/skirmish/internal/gamedata"
	"github.com/samdwyer/skirmish/internal/input"
	"github.com/samdwyer/skirmish/internal/telemetry"
	"github.com/samdwyer/skirmish/internal/ui"
)

func main() {
	// Load .env file for local development
	envErr := godotenv.Load()

	cfg, err := game.ParseConfig()
	if err != nil {
		logrus.Fatalf("Invalid configuration: %v", err)
	}

	logger, err := telemetry.NewLogger(cfg.LogLevel, os.Stderr)
	if err != nil {
		logrus.Fatalf("Invalid log level: %v", err)
	}
	if envErr != nil {
		// Not fatal - env vars might be set directly
		logger.Debugf(".env file not loaded: %v", envErr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if cfg.Telemetry {
		setupOTelEnv()
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			logger.Warnf("Telemetry setup failed, running without traces: %v", err)
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					logger.Errorf("Error shutting down telemetry: %v", err)
				}
			}()
		}
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Errorf("Game error: %v", err)
		stop()
		os.Exit(1)
	}
}

// run sets up the game from embedded data and plays it on the configured UI.
func run(ctx context.Context, cfg game.Config, logger *logrus.Logger) error {
	catalog, err := gamedata.LoadCatalog()
	if err != nil {
		return fmt.Errorf("load game data: %w", err)
	}

	state, err := game.NewDefaultState(cfg, catalog)
	if err != nil {
		return fmt.Errorf("set up game: %w", err)
	}
	controller := game.NewController(state, cfg, logger)

	var (
		source   input.Source
		renderer ui.Renderer
	)
	switch cfg.UI {
	case "screen":
		screen, err := ui.NewScreen()
		if err != nil {
			return fmt.Errorf("open screen: %w", err)
		}
		defer screen.Close()
		source = ui.NewKeySource(screen)
		renderer = ui.NewScreenRenderer(screen, ui.PaletteFromCatalog(catalog))
	default:
		source = input.NewLineSource(os.Stdin, os.Stdout)
		renderer = ui.NewTextRenderer(os.Stdout)
	}

	return game.New(controller, source, renderer, logger).Run(ctx)
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	}

	// The .env file may hold an unexpanded variable reference, so the
	// headers are built here from the API key.
	apiKey := os.Getenv("HONEYCOMB_SKIRMISH_API_KEY")
	dataset := os.Getenv("HONEYCOMB_SKIRMISH_DATASET")
	if dataset == "" {
		dataset = "skirmish"
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
