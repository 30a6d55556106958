// Package testutil builds stores and datasets shared by tests.
package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/Veraticus/finboard/internal/common"
	"github.com/Veraticus/finboard/internal/model"
	"github.com/Veraticus/finboard/internal/source"
	"github.com/Veraticus/finboard/internal/storage"
	"github.com/Veraticus/finboard/internal/store"
)

// Now is the clock tests pin the demo dataset to.
var Now = time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

// StaticSources serves ds without delay or failure.
func StaticSources(ds model.Dataset) store.Sources {
	return store.Sources{
		Profile:      source.Static(ds.Profile),
		Transactions: source.Static(ds.Transactions),
		Savings:      source.Static(ds.Savings),
		Investments:  source.Static(ds.Investments),
	}
}

// DemoSources serves the demo dataset laid out around Now.
func DemoSources() store.Sources {
	return StaticSources(source.Demo(Now))
}

// NewDemoStore returns a quiet store over DemoSources. When loaded is true
// every category has already been fetched.
func NewDemoStore(t *testing.T, loaded bool, opts ...store.Option) *store.Store {
	t.Helper()

	opts = append([]store.Option{store.WithLogger(common.DiscardLogger())}, opts...)
	st := store.New(DemoSources(), opts...)
	if loaded {
		st.FetchAll(context.Background())
	}
	return st
}

// SetupTestDB creates a migrated in-memory dataset holding ds.
// It is closed when the test finishes.
func SetupTestDB(t *testing.T, ds model.Dataset) *storage.SQLiteStorage {
	t.Helper()

	db, err := storage.Open(context.Background(), storage.MemoryPath)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("failed to close test database: %v", err)
		}
	})

	if err := db.SaveDataset(context.Background(), ds, nil); err != nil {
		t.Fatalf("failed to seed test database: %v", err)
	}
	return db
}
