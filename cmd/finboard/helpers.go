package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Veraticus/finboard/internal/config"
	"github.com/Veraticus/finboard/internal/source"
	"github.com/Veraticus/finboard/internal/storage"
	"github.com/Veraticus/finboard/internal/store"
)

// envKeyReplacer maps nested keys like server.addr to FINBOARD_SERVER_ADDR.
var envKeyReplacer = strings.NewReplacer(".", "_")

// initStore builds the dashboard store for cfg. Data comes from the SQLite
// dataset when one is configured, otherwise from the demo dataset. The
// returned close function releases the dataset.
func initStore(ctx context.Context, cfg config.Config, now time.Time, logger *slog.Logger) (*store.Store, func() error, error) {
	sources, closeFn, err := dataSources(ctx, cfg, now)
	if err != nil {
		return nil, nil, err
	}

	st := store.New(simulate(sources, cfg.Source),
		store.WithFetchPolicy(cfg.FetchPolicy),
		store.WithTransactionView(cfg.Transactions),
		store.WithLogger(logger),
	)
	return st, closeFn, nil
}

func dataSources(ctx context.Context, cfg config.Config, now time.Time) (store.Sources, func() error, error) {
	if cfg.Dataset.UsesDemo() {
		ds := source.Demo(now)
		return store.Sources{
			Profile:      source.Static(ds.Profile),
			Transactions: source.Static(ds.Transactions),
			Savings:      source.Static(ds.Savings),
			Investments:  source.Static(ds.Investments),
		}, func() error { return nil }, nil
	}

	db, err := storage.Open(ctx, cfg.Dataset.Path)
	if err != nil {
		return store.Sources{}, nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	return db.Sources(), db.Close, nil
}

func simulate(src store.Sources, cfg source.SimulationConfig) store.Sources {
	return store.Sources{
		Profile:      source.Simulate(src.Profile, cfg),
		Transactions: source.Simulate(src.Transactions, cfg),
		Savings:      source.Simulate(src.Savings, cfg),
		Investments:  source.Simulate(src.Investments, cfg),
	}
}
