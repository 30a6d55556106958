package source

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/Veraticus/finboard/internal/common"
)

// SimulationConfig controls the latency and failure rate of a simulated backend.
type SimulationConfig struct {
	ErrorRate float64
	MinDelay  time.Duration
	MaxDelay  time.Duration
}

// DefaultSimulation mirrors a slow, occasionally failing backend:
// 1-2s latency and a 5% failure rate.
func DefaultSimulation() SimulationConfig {
	return SimulationConfig{
		ErrorRate: 0.05,
		MinDelay:  time.Second,
		MaxDelay:  2 * time.Second,
	}
}

// SimOption configures a Simulated source.
type SimOption func(*simOptions)

type simOptions struct {
	random func() float64
}

// WithRandom replaces the random number generator. fn must return values in
// [0, 1) and be safe for concurrent use.
func WithRandom(fn func() float64) SimOption {
	return func(o *simOptions) {
		o.random = fn
	}
}

// Simulated wraps a Source with random latency and random failure.
type Simulated[T any] struct {
	inner  Source[T]
	random func() float64
	cfg    SimulationConfig
}

// Simulate wraps inner so every fetch waits a delay drawn uniformly from
// [MinDelay, MaxDelay) and then fails with probability ErrorRate.
func Simulate[T any](inner Source[T], cfg SimulationConfig, opts ...SimOption) *Simulated[T] {
	o := simOptions{random: rand.Float64}
	for _, opt := range opts {
		opt(&o)
	}
	if cfg.MaxDelay < cfg.MinDelay {
		cfg.MaxDelay = cfg.MinDelay
	}
	return &Simulated[T]{inner: inner, cfg: cfg, random: o.random}
}

// Delay draws the latency for one fetch.
func (s *Simulated[T]) Delay() time.Duration {
	span := s.cfg.MaxDelay - s.cfg.MinDelay
	if span <= 0 {
		return s.cfg.MinDelay
	}
	return s.cfg.MinDelay + time.Duration(s.random()*float64(span))
}

// Fetch waits, then either fails with common.ErrFetchFailed or delegates to
// the wrapped source. Cancelling ctx aborts the wait.
func (s *Simulated[T]) Fetch(ctx context.Context) (T, error) {
	var zero T

	if delay := s.Delay(); delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-timer.C:
		}
	}

	if s.random() < s.cfg.ErrorRate {
		return zero, common.ErrFetchFailed
	}

	return s.inner.Fetch(ctx)
}
