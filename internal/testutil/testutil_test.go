package testutil

import (
	"context"
	"testing"

	"github.com/Veraticus/finboard/internal/source"
	"github.com/Veraticus/finboard/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDemoStore(t *testing.T) {
	idle := NewDemoStore(t, false)
	assert.Equal(t, store.PhaseIdle, idle.Snapshot().TransactionsStatus.Phase)

	loaded := NewDemoStore(t, true, store.WithFetchPolicy(store.PolicySkip))
	snap := loaded.Snapshot()
	assert.Equal(t, store.PolicySkip, loaded.Policy())
	assert.Len(t, snap.Transactions, 7)
	assert.False(t, snap.Loading())
}

func TestSetupTestDB(t *testing.T) {
	ds := source.Demo(Now)
	db := SetupTestDB(t, ds)

	st := store.New(db.Sources())
	st.FetchAll(context.Background())
	snap := st.Snapshot()

	require.NotNil(t, snap.Profile)
	assert.Equal(t, ds.Profile, *snap.Profile)
	assert.Equal(t, ds.Investments, snap.Investments)
}
