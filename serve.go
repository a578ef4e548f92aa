package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sandeepkvelagam/oddside/config"
	"github.com/sandeepkvelagam/oddside/domain/events"
	"github.com/sandeepkvelagam/oddside/metrics"
	"github.com/sandeepkvelagam/oddside/poker"
	"github.com/sandeepkvelagam/oddside/server"
)

// ServeCmd runs the HTTP and websocket API. Flags override the loaded config.
type ServeCmd struct {
	Addr     string `help:"Listen address, overrides config"`
	LogLevel string `help:"Log level (debug, info, warn, error), overrides config"`
}

func (c *ServeCmd) Run() error {
	// Setup graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}
	if c.Addr != "" {
		cfg.Addr = c.Addr
	}
	if c.LogLevel != "" {
		cfg.LogLevel = c.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := newLogger(os.Stderr, cfg.LogLevel)
	m := metrics.NewManager()
	store := events.NewInMemoryEventStore(cfg.HistoryLimit)

	svc := poker.NewService(
		poker.WithLogger(logger),
		poker.WithEventStore(store),
		poker.WithMetrics(m),
		poker.WithRejectDuplicates(cfg.RejectDuplicates),
		poker.WithBatchWorkers(cfg.BatchWorkers),
	)

	logger.Info("starting oddside",
		"version", version,
		"addr", cfg.Addr,
		"batch_workers", cfg.BatchWorkers,
		"max_batch", cfg.MaxBatch,
		"reject_duplicates", cfg.RejectDuplicates,
		"history_limit", cfg.HistoryLimit,
	)

	return server.NewServer(*cfg, svc, store, m, logger).Run(ctx)
}
