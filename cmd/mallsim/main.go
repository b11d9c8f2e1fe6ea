// Command mallsim runs the Grand Mall department store simulation.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/mkweon/grandmall/internal/api"
	"github.com/mkweon/grandmall/internal/config"
	"github.com/mkweon/grandmall/internal/entropy"
	"github.com/mkweon/grandmall/internal/persistence"
	"github.com/mkweon/grandmall/internal/sim"
	"github.com/mkweon/grandmall/internal/weather"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfgPath := flag.String("config", "grandmall.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		slog.Error("failed to load config", "path", *cfgPath, "error", err)
		os.Exit(1)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = entropy.CryptoSeed()
	}
	rng := entropy.NewLocked(entropy.NewSeeded(seed))
	slog.Info("Grand Mall Story — Department Store Simulation", "seed", seed)

	// ── Database ──────────────────────────────────────────────────────
	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		os.MkdirAll(dir, 0755)
	}
	db, err := persistence.Open(cfg.DBPath, cfg.SnapshotHistory)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	slog.Info("database opened", "path", cfg.DBPath)

	// ── Load or Start Fresh ───────────────────────────────────────────
	var state *sim.State
	snap, err := db.LoadSnapshot()
	switch {
	case err == nil:
		state = sim.FromSnapshot(snap, rng)
		slog.Info("saved game restored",
			"day", snap.Day, "gold", snap.Gold, "reputation", snap.Reputation)
	case err == persistence.ErrNoSave:
		slog.Info("no saved game, opening a new store")
		state = sim.New(rng)
		state.EnsureRival()
	default:
		slog.Error("failed to load saved game", "error", err)
		os.Exit(1)
	}

	// ── Weather ───────────────────────────────────────────────────────
	forecaster := weather.New(seed)
	state.StormyDay = forecaster.Wet

	// ── HTTP API ──────────────────────────────────────────────────────
	if cfg.AdminToken == "" {
		cfg.AdminToken = os.Getenv("GRANDMALL_ADMIN_TOKEN")
	}
	if cfg.AdminToken == "" {
		slog.Warn("no admin token configured — management POST endpoints will be disabled")
	}

	apiServer := &api.Server{
		State:    state,
		DB:       db,
		Addr:     cfg.APIAddr,
		AdminKey: cfg.AdminToken,
	}
	hub := apiServer.Start()

	// ── Tick Loop ─────────────────────────────────────────────────────
	engine := sim.NewEngine(state, cfg.TickInterval())
	engine.OnTick = func(dayRolled bool) {
		hub.Broadcast(state.Status())
		if dayRolled && cfg.Autosave {
			if err := db.SaveSnapshot(state.ToSnapshot()); err != nil {
				slog.Error("autosave failed", "error", err)
			}
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("received signal, shutting down", "signal", sig)
		cancel()
	}()

	fmt.Printf("\nThe doors are open. API: http://localhost%s/api/v1/status\n", cfg.APIAddr)
	fmt.Println("Running simulation... (Ctrl+C to stop)")

	engine.Run(ctx)

	// Final save on shutdown.
	slog.Info("final save...")
	if err := db.SaveSnapshot(state.ToSnapshot()); err != nil {
		slog.Error("final save failed", "error", err)
	}
	fmt.Println("Simulation stopped. Game saved.")
}
