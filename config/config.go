// Package config loads runtime settings from an optional .env file, the
// environment and command-line flags, in increasing order of precedence.
package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/dimaq12/minesweaper/models"
)

type Config struct {
	LogLevel zerolog.Level

	// LogFile receives the logs; empty discards them. The terminal belongs
	// to the game, so logs never go to stdout.
	LogFile string

	Tick time.Duration
	Seed int64

	// Mode preselects a preset and skips the menu for the first round.
	Mode *models.Mode
}

const (
	defaultLogLevel = "info"
	defaultLogFile  = "minesweeper.log"
	defaultTickMS   = 50
)

// Load builds the configuration. args excludes the program name.
func Load(args []string) (Config, error) {
	_ = godotenv.Load()

	var cfg Config

	lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", defaultLogLevel))
	if err != nil {
		return cfg, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	cfg.LogLevel = lvl
	cfg.LogFile = defaultLogFile
	if v, ok := os.LookupEnv("LOG_FILE"); ok {
		cfg.LogFile = v
	}

	tickMS, err := strconv.Atoi(getEnv("TICK_MS", strconv.Itoa(defaultTickMS)))
	if err != nil {
		return cfg, fmt.Errorf("TICK_MS: %w", err)
	}

	seed := time.Now().UnixNano()
	if v := os.Getenv("SEED"); v != "" {
		if seed, err = strconv.ParseInt(v, 10, 64); err != nil {
			return cfg, fmt.Errorf("SEED: %w", err)
		}
	}

	fs := flag.NewFlagSet("minesweeper", flag.ContinueOnError)
	fs.Int64Var(&cfg.Seed, "seed", seed, "mine placement seed")
	fs.IntVar(&tickMS, "tick", tickMS, "host loop tick in milliseconds")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "log destination, empty discards logs")
	mode := fs.String("mode", os.Getenv("MODE"), "preselected board: 8x8|16x16|30x16")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	if tickMS <= 0 {
		return cfg, fmt.Errorf("tick must be positive, got %d", tickMS)
	}
	cfg.Tick = time.Duration(tickMS) * time.Millisecond

	if *mode != "" {
		m, err := models.ParseMode(*mode)
		if err != nil {
			return cfg, err
		}
		cfg.Mode = &m
	}

	return cfg, nil
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
