// Package store holds the dashboard's fetched data, the fetch status of each
// data category and the transaction view preference. All mutation goes
// through named actions; every transition is published to subscribers.
package store

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/Veraticus/finboard/internal/common"
	"github.com/Veraticus/finboard/internal/model"
	"github.com/Veraticus/finboard/internal/source"
)

// FetchPolicy decides what happens when a category is fetched while an
// earlier fetch of the same category is still in flight.
type FetchPolicy string

const (
	// PolicyOverlap runs every fetch; whichever finishes last wins.
	PolicyOverlap FetchPolicy = "overlap"
	// PolicySkip ignores a fetch while the category is loading.
	PolicySkip FetchPolicy = "skip"
	// PolicyLatest runs every fetch but drops results of superseded ones.
	PolicyLatest FetchPolicy = "latest"
)

// ParseFetchPolicy validates a configured policy name.
func ParseFetchPolicy(s string) (FetchPolicy, error) {
	switch p := FetchPolicy(s); p {
	case PolicyOverlap, PolicySkip, PolicyLatest:
		return p, nil
	case "":
		return PolicyOverlap, nil
	default:
		return "", fmt.Errorf("%w: fetch policy %q", common.ErrInvalidConfig, s)
	}
}

// Sources supplies the data for each category.
type Sources struct {
	Profile      source.Source[model.UserProfile]
	Transactions source.Source[[]model.Transaction]
	Savings      source.Source[[]model.SavingsGoal]
	Investments  source.Source[[]model.Investment]
}

// Listener receives a snapshot after every state transition.
type Listener func(State)

type listenerEntry struct {
	fn Listener
	id uint64
}

// Option configures a Store.
type Option func(*Store)

// WithInitialState seeds the store, for example from a previous session.
func WithInitialState(st State) Option {
	return func(s *Store) {
		s.state = st.clone()
	}
}

// WithTransactionView sets the initial sort and filter preference.
func WithTransactionView(v TransactionView) Option {
	return func(s *Store) {
		s.state.View = v
	}
}

// WithFetchPolicy sets the in-flight policy. The default is PolicyOverlap.
func WithFetchPolicy(p FetchPolicy) Option {
	return func(s *Store) {
		s.policy = p
	}
}

// WithLogger sets the logger used for fetch diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		s.logger = l
	}
}

// Store is the single source of truth for dashboard data.
type Store struct {
	logger       *slog.Logger
	sources      Sources
	policy       FetchPolicy
	listeners    []listenerEntry
	pending      []State
	state        State
	generation   [4]uint64
	nextListener uint64
	mu           sync.Mutex
	delivering   bool
}

// New creates a store reading from sources.
func New(sources Sources, opts ...Option) *Store {
	s := &Store{
		sources: sources,
		policy:  PolicyOverlap,
		state:   State{View: DefaultTransactionView()},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// Policy returns the configured fetch policy.
func (s *Store) Policy() FetchPolicy {
	return s.policy
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// SetTransactionSort replaces the sort preference.
func (s *Store) SetTransactionSort(field model.SortField, direction model.SortDirection) {
	s.update(func(st *State) bool {
		st.View.SortField = field
		st.View.SortDirection = direction
		return true
	})
}

// SetTransactionFilter replaces the filter text. The empty string disables filtering.
func (s *Store) SetTransactionFilter(text string) {
	s.update(func(st *State) bool {
		st.View.Filter = text
		return true
	})
}

// UpdateTransactionView applies edit to a copy of the current view and stores
// it in one transition. Nothing is published when the view is unchanged. It
// returns the resulting view.
func (s *Store) UpdateTransactionView(edit func(v *TransactionView)) TransactionView {
	var out TransactionView
	s.update(func(st *State) bool {
		next := st.View
		edit(&next)
		out = next
		if next == st.View {
			return false
		}
		st.View = next
		return true
	})
	return out
}

// update applies mutate under the lock and, if it reports a change, queues a
// snapshot for listeners. Snapshots are delivered in transition order by
// whichever caller finds no delivery in progress; listeners may call store
// actions, their transitions are queued behind the current one.
func (s *Store) update(mutate func(st *State) bool) bool {
	s.mu.Lock()
	if !mutate(&s.state) {
		s.mu.Unlock()
		return false
	}
	s.state.Version++
	s.pending = append(s.pending, s.state.clone())

	if s.delivering {
		s.mu.Unlock()
		return true
	}
	s.delivering = true
	drained := false
	defer func() {
		// a panicking listener must not wedge delivery for everyone else
		if !drained {
			s.mu.Lock()
			s.delivering = false
			s.pending = nil
			s.mu.Unlock()
		}
	}()

	for len(s.pending) > 0 {
		batch := s.pending
		s.pending = nil
		listeners := make([]Listener, len(s.listeners))
		for i, l := range s.listeners {
			listeners[i] = l.fn
		}
		s.mu.Unlock()

		for _, st := range batch {
			for _, l := range listeners {
				l(st)
			}
		}

		s.mu.Lock()
	}
	s.delivering = false
	drained = true
	s.mu.Unlock()
	return true
}
