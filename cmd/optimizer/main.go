package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/vkarev/modopt/internal/config"
	"github.com/vkarev/modopt/internal/game/builds"
	"github.com/vkarev/modopt/internal/report"
)

const ConfigPath = "config/optimizer.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// Configure slog
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// Load config
	cfgPath := ConfigPath
	if p := os.Getenv("MODOPT_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadOptimizer(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	slog.Info("config loaded",
		"weapon", cfg.Weapon.Name,
		"fixed_mods", len(cfg.FixedMods),
		"pool", len(cfg.Mods),
		"max_slots", cfg.MaxSlots)

	opt := builds.NewOptimizer(cfg.WeaponStats(), cfg.FixedMods, cfg.Mods, cfg.Settings())

	results, err := opt.SearchParallel(ctx, cfg.TopN, cfg.Workers)
	if err != nil {
		return fmt.Errorf("searching builds: %w", err)
	}
	slog.Info("search finished", "free_slots", opt.FreeSlots(), "ranked", len(results))

	for i, build := range results {
		fmt.Printf("Build %d:\n", i+1)
		report.Render(os.Stdout, cfg.WeaponStats(), cfg.Settings().Arcanes, build)
	}
	return nil
}
