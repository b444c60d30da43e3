package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hand-snake/capture"
	"hand-snake/config"
	"hand-snake/game"
	"hand-snake/ui"

	"golang.org/x/exp/rand"
)

func main() {
	configPath := flag.String("config", "", "Path to a TOML config file")
	camera := flag.Int("camera", -1, "Camera device index (overrides config)")
	seed := flag.Uint64("seed", 0, "Food placement seed (0 = time based)")
	mute := flag.Bool("mute", false, "Disable the eat sound")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn or error")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err == nil {
		cfg, err = config.Overrides{
			Camera:   *camera,
			Seed:     *seed,
			Mute:     *mute,
			LogLevel: *logLevel,
		}.Apply(cfg)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}

	level, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("exiting", "err", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	detector := capture.NewMarkerDetector(cfg.Marker)
	cam, err := capture.Open(cfg.Camera, detector, logger.With("component", "camera"))
	if err != nil {
		if cerr := detector.Close(); cerr != nil {
			logger.Warn("detector close", "err", cerr)
		}
		return err
	}
	defer func() {
		if err := cam.Close(); err != nil {
			logger.Warn("camera close", "err", err)
		}
	}()
	cam.Start(ctx)

	win := ui.OpenWindow(cfg.Window)
	defer win.Close()

	opts := []game.Option{
		game.WithTerminator(win),
		game.WithLogger(logger),
	}
	// Sound is optional; the game runs silently without it.
	if audio, err := ui.NewAudio(cfg.Audio); err != nil {
		logger.Warn("running without sound", "err", err)
	} else {
		defer audio.Close()
		opts = append(opts, game.WithAudio(audio))
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	session := game.NewSession(cfg.Arena(), rand.New(rand.NewSource(seed)))

	return game.NewGame(session, cam, ui.NewRenderer(), opts...).Run(ctx)
}
