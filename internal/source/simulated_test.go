package source

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Veraticus/finboard/internal/common"
	"github.com/Veraticus/finboard/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixed(v float64) func() float64 {
	return func() float64 { return v }
}

func TestStatic(t *testing.T) {
	src := Static([]string{"a", "b"})

	got, err := src.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = src.Fetch(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSimulated_Delay(t *testing.T) {
	tests := []struct {
		name   string
		cfg    SimulationConfig
		random float64
		want   time.Duration
	}{
		{
			name:   "lower bound",
			cfg:    SimulationConfig{MinDelay: time.Second, MaxDelay: 2 * time.Second},
			random: 0,
			want:   time.Second,
		},
		{
			name:   "midpoint",
			cfg:    SimulationConfig{MinDelay: time.Second, MaxDelay: 2 * time.Second},
			random: 0.5,
			want:   1500 * time.Millisecond,
		},
		{
			name:   "no span",
			cfg:    SimulationConfig{MinDelay: 10 * time.Millisecond, MaxDelay: 10 * time.Millisecond},
			random: 0.9,
			want:   10 * time.Millisecond,
		},
		{
			name:   "inverted bounds collapse to min",
			cfg:    SimulationConfig{MinDelay: 20 * time.Millisecond, MaxDelay: time.Millisecond},
			random: 0.9,
			want:   20 * time.Millisecond,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sim := Simulate(Static(1), tt.cfg, WithRandom(fixed(tt.random)))
			assert.Equal(t, tt.want, sim.Delay())
		})
	}
}

func TestSimulated_Fetch(t *testing.T) {
	t.Run("succeeds when roll is above the error rate", func(t *testing.T) {
		sim := Simulate(Static("ok"), SimulationConfig{ErrorRate: 0.05}, WithRandom(fixed(0.5)))
		got, err := sim.Fetch(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "ok", got)
	})

	t.Run("fails when roll is below the error rate", func(t *testing.T) {
		sim := Simulate(Static("ok"), SimulationConfig{ErrorRate: 0.05}, WithRandom(fixed(0.01)))
		got, err := sim.Fetch(context.Background())
		require.Error(t, err)
		assert.True(t, errors.Is(err, common.ErrFetchFailed))
		assert.Empty(t, got)
	})

	t.Run("error rate zero never fails", func(t *testing.T) {
		sim := Simulate(Static("ok"), SimulationConfig{}, WithRandom(fixed(0)))
		_, err := sim.Fetch(context.Background())
		assert.NoError(t, err)
	})

	t.Run("error rate one always fails", func(t *testing.T) {
		sim := Simulate(Static("ok"), SimulationConfig{ErrorRate: 1}, WithRandom(fixed(0.999)))
		_, err := sim.Fetch(context.Background())
		assert.ErrorIs(t, err, common.ErrFetchFailed)
	})

	t.Run("cancellation aborts the wait", func(t *testing.T) {
		sim := Simulate(Static("ok"), SimulationConfig{MinDelay: time.Hour, MaxDelay: time.Hour})
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		start := time.Now()
		_, err := sim.Fetch(ctx)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Less(t, time.Since(start), time.Minute)
	})

	t.Run("inner errors pass through", func(t *testing.T) {
		boom := errors.New("boom")
		inner := Func[int](func(context.Context) (int, error) { return 0, boom })
		sim := Simulate[int](inner, SimulationConfig{}, WithRandom(fixed(0.5)))
		_, err := sim.Fetch(context.Background())
		assert.ErrorIs(t, err, boom)
	})
}

func TestDemo(t *testing.T) {
	now := time.Date(2025, time.March, 28, 12, 0, 0, 0, time.UTC)
	ds := Demo(now)

	assert.Equal(t, "Alex Johnson", ds.Profile.Name)
	require.Len(t, ds.Transactions, 7)
	require.Len(t, ds.Savings, 3)
	require.Len(t, ds.Investments, 5)

	seen := make(map[string]bool)
	for _, txn := range ds.Transactions {
		assert.False(t, seen[txn.ID], "duplicate id %s", txn.ID)
		seen[txn.ID] = true
		assert.GreaterOrEqual(t, txn.Amount, 0.0)
		assert.False(t, txn.Date.After(now.Add(24*time.Hour)))
	}

	assert.Equal(t, model.TransactionDeposit, ds.Transactions[0].Type)
	assert.Equal(t, now.Year(), ds.Transactions[0].Date.Year())
	assert.Equal(t, now.Month(), ds.Transactions[0].Date.Month())

	for _, goal := range ds.Savings {
		assert.True(t, goal.Deadline.After(now))
	}
}
