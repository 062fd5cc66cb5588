// Command shapewars runs the game in a window (Ebitengine) or in the terminal (tcell).
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/profile"

	"github.com/plus3/shapewars/config"
	"github.com/plus3/shapewars/debugui"
	"github.com/plus3/shapewars/game"
	"github.com/plus3/shapewars/surface/ebitensurface"
	"github.com/plus3/shapewars/surface/terminal"
)

const defaultFramerate = 60

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "assets/config.txt", "Path to the game configuration file.")
	surfaceKind := flag.String("surface", "window", "Where to draw the game: window or terminal.")
	seed := flag.Uint64("seed", 0, "Random seed; 0 picks one from the clock.")
	debug := flag.Bool("debug", false, "Show the ImGui debug overlay (window surface only).")
	profileMode := flag.String("profile", "", "Write a cpu or mem profile to the working directory.")
	logPath := flag.String("log", "", "Write logs to this file instead of stderr.")
	verbose := flag.Bool("v", false, "Log at debug level.")
	flag.Parse()

	logOut := io.Writer(os.Stderr)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "shapewars: open log: %v\n", err)
			return 1
		}
		defer f.Close()
		logOut = f
	} else if *surfaceKind == "terminal" {
		// stderr is the playfield.
		logOut = io.Discard
	}
	logger := newLogger(logOut, *verbose)
	slog.SetDefault(logger)

	prof, err := startProfile(*profileMode, ".")
	if err != nil {
		logger.Error("invalid flag", "err", err)
		return 2
	}
	defer prof.Stop()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "path", *configPath, "err", err)
		return 1
	}

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}
	logger.Info("starting", "surface", *surfaceKind, "seed", *seed)
	rng := game.NewRandom(*seed)

	switch *surfaceKind {
	case "window":
		err = runWindow(cfg, rng, logger, *debug)
	case "terminal":
		if *debug {
			logger.Warn("debug overlay is only available on the window surface")
		}
		err = runTerminal(cfg, rng, logger)
	default:
		logger.Error("invalid flag", "err", fmt.Errorf("unknown surface %q", *surfaceKind))
		return 2
	}

	if err != nil {
		logger.Error("game exited with error", "err", err)
		return 1
	}
	logger.Info("bye")
	return 0
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

type stopper interface {
	Stop()
}

type noopProfile struct{}

func (noopProfile) Stop() {}

func startProfile(mode, dir string) (stopper, error) {
	switch mode {
	case "":
		return noopProfile{}, nil
	case "cpu":
		return profile.Start(profile.CPUProfile, profile.ProfilePath(dir), profile.NoShutdownHook, profile.Quiet), nil
	case "mem":
		return profile.Start(profile.MemProfileAllocs, profile.ProfilePath(dir), profile.NoShutdownHook, profile.Quiet), nil
	}
	return nil, fmt.Errorf("unknown profile mode %q", mode)
}

func runWindow(cfg *config.Config, rng game.Random, logger *slog.Logger, debug bool) error {
	var (
		opts    []ebitensurface.Option
		overlay *debugui.Overlay
	)
	if debug {
		overlay = debugui.NewOverlay()
		opts = append(opts, ebitensurface.WithOverlay(overlay))
	}

	surface, err := ebitensurface.New(cfg, opts...)
	if err != nil {
		return err
	}
	defer surface.Close()

	engine := game.New(cfg, surface, rng, game.WithLogger(logger))
	if overlay != nil {
		overlay.SetSource(engine)
	}
	return surface.Run(engine)
}

func runTerminal(cfg *config.Config, rng game.Random, logger *slog.Logger) error {
	surface, err := terminal.Open(cfg.Window.Width, cfg.Window.Height, terminal.WithLogger(logger))
	if err != nil {
		return err
	}
	defer surface.Close()

	engine := game.New(cfg, surface, rng, game.WithLogger(logger))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = engine.Run(ctx, frameInterval(cfg.Window.FramerateLimit))
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// frameInterval converts a framerate limit to a tick period. A limit of zero means
// uncapped in a window; the terminal falls back to defaultFramerate.
func frameInterval(limit int) time.Duration {
	if limit <= 0 {
		limit = defaultFramerate
	}
	return time.Second / time.Duration(limit)
}
