package store

import (
	"context"
	"fmt"
	"time"

	"github.com/Veraticus/finboard/internal/common"
	"github.com/Veraticus/finboard/internal/model"
	"github.com/Veraticus/finboard/internal/source"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// FetchError is the failure of one category fetch.
type FetchError struct {
	Err      error
	Category model.Category
}

func (e *FetchError) Error() string {
	return common.ErrorMessage(e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// FetchUserProfile loads the user profile.
func (s *Store) FetchUserProfile(ctx context.Context) {
	fetch(ctx, s, model.CategoryUser, s.sources.Profile, func(st *State, p model.UserProfile) {
		st.Profile = &p
	})
}

// FetchTransactions loads the transaction history.
func (s *Store) FetchTransactions(ctx context.Context) {
	fetch(ctx, s, model.CategoryTransactions, s.sources.Transactions, func(st *State, txns []model.Transaction) {
		st.Transactions = txns
	})
}

// FetchSavings loads the savings goals.
func (s *Store) FetchSavings(ctx context.Context) {
	fetch(ctx, s, model.CategorySavings, s.sources.Savings, func(st *State, goals []model.SavingsGoal) {
		st.Savings = goals
	})
}

// FetchInvestments loads the investment portfolio.
func (s *Store) FetchInvestments(ctx context.Context) {
	fetch(ctx, s, model.CategoryInvestments, s.sources.Investments, func(st *State, inv []model.Investment) {
		st.Investments = inv
	})
}

// Fetch loads category c. Unknown categories are ignored.
func (s *Store) Fetch(ctx context.Context, c model.Category) {
	switch c {
	case model.CategoryUser:
		s.FetchUserProfile(ctx)
	case model.CategoryTransactions:
		s.FetchTransactions(ctx)
	case model.CategorySavings:
		s.FetchSavings(ctx)
	case model.CategoryInvestments:
		s.FetchInvestments(ctx)
	default:
		s.logger.Warn("Ignoring fetch of unknown category", "category", c)
	}
}

// Retry fetches category c again. It behaves exactly like Fetch.
func (s *Store) Retry(ctx context.Context, c model.Category) {
	s.Fetch(ctx, c)
}

// FetchAll loads every category concurrently and returns when all are done.
func (s *Store) FetchAll(ctx context.Context) {
	var g errgroup.Group
	for _, c := range model.Categories {
		g.Go(func() error {
			s.Fetch(ctx, c)
			return nil
		})
	}
	_ = g.Wait()
}

// fetch moves category c to loading, waits for src and then atomically
// stores either the result or the failure. Errors never escape.
func fetch[T any](ctx context.Context, s *Store, c model.Category, src source.Source[T], apply func(*State, T)) {
	var generation uint64
	started := s.update(func(st *State) bool {
		if s.policy == PolicySkip && st.Status(c).IsLoading() {
			return false
		}
		s.generation[c]++
		generation = s.generation[c]
		st.setStatus(c, Status{Phase: PhaseLoading})
		return true
	})
	if !started {
		s.logger.Debug("Fetch already in flight, skipping", "category", c)
		return
	}

	requestID := uuid.NewString()
	begin := time.Now()
	s.logger.Debug("Fetching", "category", c, "request_id", requestID)

	var (
		data T
		err  error
	)
	if src == nil {
		err = fmt.Errorf("%w: no source for %s", common.ErrMissingConfig, c)
	} else {
		data, err = src.Fetch(ctx)
	}

	applied := s.update(func(st *State) bool {
		if s.policy == PolicyLatest && generation != s.generation[c] {
			return false
		}
		if err != nil {
			fetchErr := &FetchError{Category: c, Err: err}
			st.setStatus(c, Status{Phase: PhaseError, Err: fetchErr.Error()})
			return true
		}
		apply(st, data)
		st.setStatus(c, Status{Phase: PhaseSuccess})
		return true
	})

	duration := time.Since(begin)
	switch {
	case !applied:
		s.logger.Debug("Discarding superseded fetch result", "category", c, "request_id", requestID, "duration", duration)
	case err != nil:
		s.logger.Warn("Fetch failed", "category", c, "request_id", requestID, "duration", duration, "error", err)
	default:
		s.logger.Debug("Fetch complete", "category", c, "request_id", requestID, "duration", duration)
	}
}
