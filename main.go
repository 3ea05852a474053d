package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/dimaq12/minesweaper/config"
	"github.com/dimaq12/minesweaper/game"
	"github.com/dimaq12/minesweaper/models"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(2)
	}

	out, err := logOutput(cfg.LogFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "log file:", err)
		os.Exit(1)
	}
	defer out.Close()
	zerolog.SetGlobalLevel(cfg.LogLevel)
	log.Logger = zerolog.New(out).With().Timestamp().Logger()

	terminal, err := game.NewTerminal(cfg.Tick, log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open terminal")
	}

	session := game.NewSession(
		game.WithPlacer(models.NewRandomPlacer(rand.New(rand.NewSource(cfg.Seed)))),
		game.WithAudio(terminal.Audio()),
		game.WithLogger(log.Logger),
	)
	if cfg.Mode != nil {
		session.SelectMode(*cfg.Mode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().Int64("seed", cfg.Seed).Msg("starting minesweeper")
	if err := terminal.Run(ctx, session); err != nil {
		log.Error().Err(err).Msg("terminal exited")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func logOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{io.Discard}, nil
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}
