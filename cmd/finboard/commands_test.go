package main

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/Veraticus/finboard/internal/common"
	"github.com/Veraticus/finboard/internal/config"
	"github.com/Veraticus/finboard/internal/model"
	"github.com/Veraticus/finboard/internal/source"
	"github.com/Veraticus/finboard/internal/store"
	"github.com/Veraticus/finboard/internal/testutil"
	"github.com/Veraticus/finboard/internal/tui/tuitest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = testutil.Now

// testConfig loads instantly and never fails unless errorRate says so.
func testConfig(errorRate float64) config.Config {
	return config.Config{
		Source:       source.SimulationConfig{ErrorRate: errorRate},
		Transactions: store.DefaultTransactionView(),
		FetchPolicy:  store.PolicyOverlap,
		Server:       config.ServerConfig{Addr: ":0"},
	}
}

func TestInitStore_Demo(t *testing.T) {
	cfg := testConfig(0)
	cfg.Transactions.Filter = "food"

	st, closeStore, err := initStore(context.Background(), cfg, now, common.DiscardLogger())
	require.NoError(t, err)
	defer func() { _ = closeStore() }()

	assert.Equal(t, "food", st.Snapshot().View.Filter)

	st.FetchAll(context.Background())
	snap := st.Snapshot()
	require.NotNil(t, snap.Profile)
	assert.Equal(t, "Alex Johnson", snap.Profile.Name)
	assert.Len(t, snap.Transactions, 7)
	assert.Len(t, snap.Savings, 3)
	assert.Len(t, snap.Investments, 5)
	assert.False(t, snap.Loading())
}

func TestInitStore_Dataset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "finboard.db")
	_, err := seedDataset(context.Background(), path, &bytes.Buffer{}, now)
	require.NoError(t, err)

	cfg := testConfig(0)
	cfg.Dataset.Path = path

	st, closeStore, err := initStore(context.Background(), cfg, now, common.DiscardLogger())
	require.NoError(t, err)
	defer func() { _ = closeStore() }()

	st.FetchAll(context.Background())
	snap := st.Snapshot()
	assert.Equal(t, store.PhaseSuccess, snap.UserStatus.Phase)
	assert.Len(t, snap.Transactions, 7)
	assert.Equal(t, "t1", snap.Transactions[0].ID)
}

func TestSeedDataset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "finboard.db")

	var progress bytes.Buffer
	ds, err := seedDataset(context.Background(), path, &progress, now)
	require.NoError(t, err)
	assert.Contains(t, progress.String(), "Seeding dataset")
	assert.Equal(t, source.Demo(now).Profile, ds.Profile)
	assert.Len(t, ds.Transactions, 7)
	assert.Len(t, ds.Savings, 3)
	assert.Len(t, ds.Investments, 5)

	// Seeding twice replaces rather than duplicates.
	ds, err = seedDataset(context.Background(), path, &bytes.Buffer{}, now)
	require.NoError(t, err)
	assert.Len(t, ds.Transactions, 7)
}

func TestWriteSeedReport(t *testing.T) {
	var out bytes.Buffer
	writeSeedReport(&out, "/tmp/finboard.db", source.Demo(now))

	text := tuitest.StripANSI(out.String())
	assert.True(t, tuitest.ContainsInOrder(text,
		"Dataset seeded",
		"File:", "/tmp/finboard.db",
		"Account holder:", "Alex Johnson",
		"Transactions:", "7",
		"Savings goals:", "3",
		"Investments:", "5",
	))
}

func TestExportTransactions(t *testing.T) {
	tests := []struct {
		name string
		view store.TransactionView
		want string
	}{
		{
			name: "income by amount ascending",
			view: store.TransactionView{Filter: "income", SortField: model.SortAmount, SortDirection: model.SortAsc},
			want: "id,date,description,category,type,amount\n" +
				"t5,2024-03-02,Freelance Payment,Income,deposit,750.00\n" +
				"t1,2024-03-15,Salary Deposit,Income,deposit,3200.00\n",
		},
		{
			name: "no matches",
			view: store.TransactionView{Filter: "rent", SortField: model.SortDate, SortDirection: model.SortDesc},
			want: "id,date,description,category,type,amount\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(0)
			cfg.Transactions = tt.view

			var buf bytes.Buffer
			require.NoError(t, exportTransactions(context.Background(), cfg, &buf, now))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestExportTransactions_FetchFailed(t *testing.T) {
	var buf bytes.Buffer
	err := exportTransactions(context.Background(), testConfig(1), &buf, now)
	require.Error(t, err)

	var userErr *common.UserError
	require.True(t, errors.As(err, &userErr))
	assert.Equal(t, "Failed to load transactions", userErr.UserMessage)
	assert.Contains(t, err.Error(), common.ErrFetchFailed.Error())
	assert.Empty(t, buf.String())
}

func TestReportError(t *testing.T) {
	var logs bytes.Buffer
	logger, err := common.NewLogger(&logs, slog.LevelDebug, "json")
	require.NoError(t, err)
	previous := slog.Default()
	slog.SetDefault(logger)
	t.Cleanup(func() { slog.SetDefault(previous) })

	var out bytes.Buffer
	reportError(&out, common.NewUserError("Failed to load transactions", errors.New("timeout")))
	assert.Equal(t, "Failed to load transactions\n", out.String())
	assert.Contains(t, logs.String(), `"level":"DEBUG"`)
	assert.Contains(t, logs.String(), `"error":"timeout"`)

	out.Reset()
	logs.Reset()
	reportError(&out, errors.New("failed to read config: bad yaml"))
	assert.Empty(t, out.String())
	assert.Contains(t, logs.String(), `"level":"ERROR"`)
	assert.Contains(t, logs.String(), `"msg":"Command failed"`)
	assert.Contains(t, logs.String(), `"error":"failed to read config: bad yaml"`)
}

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeSummary(context.Background(), testConfig(0), &buf, now))

	out := tuitest.StripANSI(buf.String())
	assert.True(t, tuitest.ContainsInOrder(out, "Alex Johnson", "$41,250.00", "Salary Deposit", "Emergency Fund", "Tech Stocks"), out)
}

func TestWriteSummary_AllFailed(t *testing.T) {
	var buf bytes.Buffer
	err := writeSummary(context.Background(), testConfig(1), &buf, now)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrFetchFailed)

	out := tuitest.StripANSI(buf.String())
	assert.Contains(t, out, "Failed to load transactions")
}

func TestDatasetLabel(t *testing.T) {
	assert.Equal(t, "demo", datasetLabel(""))
	assert.Equal(t, "/tmp/finboard.db", datasetLabel("/tmp/finboard.db"))
}
