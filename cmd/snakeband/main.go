// Package main is the entry point for SnakeBand.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/samdwyer/snakeband/internal/game"
	"github.com/samdwyer/snakeband/internal/telemetry"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := game.LoadConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Telemetry {
		setupOTelEnv()
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
			log.Printf("Game will run without observability")
			cfg.Telemetry = false
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					log.Printf("Error shutting down telemetry: %v", err)
				}
			}()
		}
	}

	// The terminal belongs to the game from here on.
	closeLog, err := redirectLog(cfg.LogFile)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}

	g, err := game.New(cfg)
	if err != nil {
		closeLog()
		log.Fatalf("Failed to initialize game: %v", err)
	}

	runErr := g.Run(ctx)
	closeLog()
	if runErr != nil {
		log.Fatalf("Game error: %v", runErr)
	}
}

// redirectLog sends log output to path, or discards it when path is empty.
// The returned function restores stderr.
func redirectLog(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() { log.SetOutput(os.Stderr) }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	log.SetOutput(f)
	return func() {
		log.SetOutput(os.Stderr)
		f.Close()
	}, nil
}

// setupOTelEnv fills in OTLP exporter settings from our own env vars,
// leaving any OTEL_* values that are already set untouched.
func setupOTelEnv() {
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	}

	apiKey := os.Getenv("HONEYCOMB_SNAKEBAND_API_KEY")
	dataset := os.Getenv("HONEYCOMB_SNAKEBAND_DATASET")
	if dataset == "" {
		dataset = "snakeband"
	}
	if apiKey != "" && os.Getenv("OTEL_EXPORTER_OTLP_HEADERS") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
