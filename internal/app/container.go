// Package app provides the dependency injection container for the application.
package app

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/rgplazas/TaskMaster/internal/domain"
	"github.com/rgplazas/TaskMaster/internal/infra/config"
	"github.com/rgplazas/TaskMaster/internal/infra/jsonstore"
	"github.com/rgplazas/TaskMaster/internal/infra/logging"
	"github.com/rgplazas/TaskMaster/internal/infra/seed"
	"github.com/rgplazas/TaskMaster/internal/usecase"
)

// Container provides dependency injection for the application.
// It holds all port implementations and the shared task manager.
type Container struct {
	Store   domain.TaskStore
	Manager *usecase.Manager
	Logger  *slog.Logger
	Config  *config.Config

	closeLog func() error
}

// New creates a Container from the configuration resolved for the given
// working directory.
func New(workDir string) (*Container, error) {
	cfg, err := config.NewLoader(workDir).Load()
	if err != nil {
		return nil, err
	}

	logger, closeLog, err := logging.New(cfg.Log.File, logging.ParseLevel(cfg.Log.Level))
	if err != nil {
		return nil, err
	}

	opts := []jsonstore.Option{
		jsonstore.WithLogger(logger),
		jsonstore.WithFetcher(domain.SeedSourceFetch, seed.NewClient(cfg.Seed.Endpoint, nil)),
		jsonstore.WithFetcher(domain.SeedSourceStream, seed.NewStreamClient(cfg.Seed.Endpoint, nil)),
	}
	if cfg.Storage.SimulateLatency {
		opts = append(opts, jsonstore.WithDelay(latency(cfg.Storage.LatencyMinMS, cfg.Storage.LatencyMaxMS)))
	}
	store := jsonstore.New(cfg.Storage.Path, opts...)

	c := &Container{
		Store:    store,
		Manager:  usecase.NewManager(store, logger),
		Logger:   logger,
		Config:   cfg,
		closeLog: closeLog,
	}
	return c, nil
}

// NewWithDeps creates a Container from explicit dependencies.
// This is useful for testing.
func NewWithDeps(cfg *config.Config, store domain.TaskStore, logger *slog.Logger) *Container {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Container{
		Store:   store,
		Manager: usecase.NewManager(store, logger),
		Logger:  logger,
		Config:  cfg,
	}
}

// Close releases container-held resources.
func (c *Container) Close() error {
	if c.closeLog != nil {
		return c.closeLog()
	}
	return nil
}

// latency returns a delay function sleeping a random duration in
// [minMS, maxMS] milliseconds, cut short if the context ends first.
func latency(minMS, maxMS int) func(context.Context) {
	if maxMS < minMS {
		maxMS = minMS
	}
	return func(ctx context.Context) {
		d := time.Duration(minMS) * time.Millisecond
		if spread := maxMS - minMS; spread > 0 {
			d += time.Duration(rand.N(spread+1)) * time.Millisecond
		}
		select {
		case <-time.After(d):
		case <-ctx.Done():
		}
	}
}
