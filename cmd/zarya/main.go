package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jwebster45206/d20"
	"github.com/jwebster45206/zarya/internal/browser"
	"github.com/jwebster45206/zarya/internal/config"
	"github.com/jwebster45206/zarya/internal/game"
	"github.com/jwebster45206/zarya/internal/journal"
	"github.com/jwebster45206/zarya/internal/logger"
	"github.com/jwebster45206/zarya/internal/metrics"
	"github.com/jwebster45206/zarya/internal/transport/console"
	"github.com/jwebster45206/zarya/internal/transport/discord"
	"github.com/jwebster45206/zarya/pkg/locale"
)

var version = "0.2.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	appLog, closeLog, err := setupLogging(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer closeLog()
	log := appLog

	log.Info("Starting Zarya",
		"version", version,
		"environment", cfg.Environment,
		"transport", cfg.Transport,
		"journal", cfg.Journal,
		"language", cfg.Language)

	strs, err := locale.Load(cfg.Language)
	if err != nil {
		log.Error("Failed to load strings", "error", err, "language", cfg.Language)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	inputJournal, closeJournal, err := openJournal(ctx, cfg, log)
	if err != nil {
		log.Error("Failed to open journal", "error", err)
		os.Exit(1)
	}
	defer closeJournal()

	if cfg.MetricsAddr != "" {
		srv := metrics.NewServer(cfg.MetricsAddr, log)
		srv.Start()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Stop(shutdownCtx); err != nil {
				log.Error("Metrics server shutdown failed", "error", err)
			}
		}()
	}

	deps := game.Deps{
		Strings: strs,
		Journal: inputJournal,
		Fetcher: browser.NewClient(cfg.FetchTimeout, log),
		Dice:    d20.NewRandomRoller(),
		Logger:  log,
	}
	gameCfg := game.Config{Version: version, MaxDepth: cfg.MaxDepth, Skip: cfg.Skip}

	switch cfg.Transport {
	case config.TransportDiscord:
		err = runDiscord(ctx, cfg, gameCfg, deps)
	default:
		err = runConsole(ctx, gameCfg, deps)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Error("Zarya stopped", "error", err)
		os.Exit(1)
	}
	log.Info("Zarya stopped")
}

// runConsole plays one session in the terminal. The UI has to run on the main goroutine, so the
// session runs beside it and closes the UI when it ends.
func runConsole(ctx context.Context, gameCfg game.Config, deps game.Deps) error {
	tr := console.New(newRand(), tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	deps.Transport = tr

	session, err := game.NewSession(gameCfg, deps)
	if err != nil {
		return err
	}
	startJournal(ctx, deps, session)

	sessionErr := make(chan error, 1)
	go func() {
		_, err := session.Run(ctx)
		if err == nil {
			// Leave the last lines on screen for a moment.
			select {
			case <-time.After(2 * time.Second):
			case <-tr.Done():
			}
		}
		tr.Quit()
		sessionErr <- err
	}()

	if err := tr.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	err = <-sessionErr
	if errors.Is(err, io.EOF) {
		// The player closed the UI.
		return nil
	}
	return err
}

// runDiscord plays sessions in the configured channel back to back until the process is stopped.
func runDiscord(ctx context.Context, cfg *config.Config, gameCfg game.Config, deps game.Deps) error {
	tr, err := discord.New(discord.Config{Token: cfg.DiscordToken, ChannelID: cfg.DiscordChannelID}, newRand(), deps.Logger)
	if err != nil {
		return err
	}
	if err := tr.Open(); err != nil {
		return err
	}
	defer tr.Close()
	deps.Transport = tr

	for ctx.Err() == nil {
		session, err := game.NewSession(gameCfg, deps)
		if err != nil {
			return err
		}
		startJournal(ctx, deps, session)
		if _, err := session.Run(ctx); err != nil {
			return err
		}
	}
	return ctx.Err()
}

// setupLogging logs to stdout, except in console mode where the UI owns the terminal and logs go to
// a file.
func setupLogging(cfg *config.Config) (*slog.Logger, func(), error) {
	if cfg.Transport != config.TransportConsole {
		return logger.Setup(cfg), func() {}, nil
	}
	f, err := os.OpenFile(cfg.LogPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return logger.SetupWriter(cfg, f), func() { _ = f.Close() }, nil
}

func openJournal(ctx context.Context, cfg *config.Config, log *slog.Logger) (game.Journal, func(), error) {
	switch cfg.Journal {
	case config.JournalFile:
		return journal.NewFileJournal(cfg.JournalPath, log), func() {}, nil
	case config.JournalRedis:
		j, err := journal.NewRedisJournal(cfg.RedisURL, log)
		if err != nil {
			return nil, nil, err
		}
		waitCtx, cancel := context.WithTimeout(ctx, time.Minute)
		defer cancel()
		if err := j.WaitForConnection(waitCtx); err != nil {
			_ = j.Close()
			return nil, nil, fmt.Errorf("redis journal unavailable: %w", err)
		}
		return j, func() { _ = j.Close() }, nil
	default:
		return nil, func() {}, nil
	}
}

// startJournal marks the start of a session in journals that support it.
func startJournal(ctx context.Context, deps game.Deps, session *game.Session) {
	if fj, ok := deps.Journal.(*journal.FileJournal); ok {
		if err := fj.Start(ctx, session.State().ID); err != nil {
			logger.WithError(deps.Logger, err).Warn("Failed to write journal header")
		}
	}
}

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), rand.Uint64()))
}
