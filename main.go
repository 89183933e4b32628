package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"golang.org/x/exp/rand"

	"wormy/config"
	"wormy/game"
	"wormy/game/clock"
	"wormy/ui"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	fps := flag.Int("fps", 0, "Ticks per second (0 = use config)")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	grid, err := cfg.GridGeometry()
	if err != nil {
		slog.Error("invalid grid", "error", err)
		os.Exit(1)
	}

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}
	tickRate := cfg.Screen.TargetFPS
	if *fps > 0 {
		tickRate = *fps
	}

	slog.Info("starting", "seed", rngSeed, "fps", tickRate, "grid_width", grid.Width, "grid_height", grid.Height)

	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), cfg.Screen.Title)
	defer rl.CloseWindow()

	renderer := ui.NewRenderer(grid, clock.New(tickRate))
	g := game.New(game.Options{
		Grid:           grid,
		InitialLength:  cfg.Worm.InitialLength,
		GrowthPerApple: cfg.Worm.GrowthPerApple,
		Apple:          cfg.AppleSettings(),
		Rand:           rand.New(rand.NewSource(uint64(rngSeed))),
		Logger:         logger,
	}, renderer)

	g.Run()
}
