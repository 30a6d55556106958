package store

import (
	"slices"

	"github.com/Veraticus/finboard/internal/model"
)

// Phase is the lifecycle of the most recent load of one category.
type Phase int

// Fetch phases.
const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseSuccess
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseSuccess:
		return "success"
	case PhaseError:
		return "error"
	default:
		return "unknown"
	}
}

// MarshalText renders the phase name in JSON payloads.
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Status is the fetch status of one category. Err is only set in PhaseError.
type Status struct {
	Err   string `json:"error,omitempty"`
	Phase Phase  `json:"phase"`
}

// IsLoading reports whether a fetch is in flight.
func (s Status) IsLoading() bool { return s.Phase == PhaseLoading }

// HasError reports whether the last fetch failed.
func (s Status) HasError() bool { return s.Phase == PhaseError }

// TransactionView is the user's sort and filter preference for the
// transaction list.
type TransactionView struct {
	SortField     model.SortField     `json:"sortField"`
	SortDirection model.SortDirection `json:"sortDirection"`
	Filter        string              `json:"filter"`
}

// DefaultTransactionView sorts newest first with no filter.
func DefaultTransactionView() TransactionView {
	return TransactionView{
		SortField:     model.SortDate,
		SortDirection: model.SortDesc,
	}
}

// State is an immutable snapshot of everything the store holds.
type State struct {
	Profile            *model.UserProfile
	Transactions       []model.Transaction
	Savings            []model.SavingsGoal
	Investments        []model.Investment
	View               TransactionView
	UserStatus         Status
	TransactionsStatus Status
	SavingsStatus      Status
	InvestmentsStatus  Status
	// Version increases by one on every state transition.
	Version uint64
}

// Status returns the fetch status of category c.
func (s State) Status(c model.Category) Status {
	switch c {
	case model.CategoryUser:
		return s.UserStatus
	case model.CategoryTransactions:
		return s.TransactionsStatus
	case model.CategorySavings:
		return s.SavingsStatus
	case model.CategoryInvestments:
		return s.InvestmentsStatus
	default:
		return Status{}
	}
}

func (s *State) setStatus(c model.Category, st Status) {
	switch c {
	case model.CategoryUser:
		s.UserStatus = st
	case model.CategoryTransactions:
		s.TransactionsStatus = st
	case model.CategorySavings:
		s.SavingsStatus = st
	case model.CategoryInvestments:
		s.InvestmentsStatus = st
	}
}

// Loading reports whether any category is still loading.
func (s State) Loading() bool {
	for _, c := range model.Categories {
		if s.Status(c).IsLoading() {
			return true
		}
	}
	return false
}

func (s State) clone() State {
	out := s
	if s.Profile != nil {
		p := *s.Profile
		out.Profile = &p
	}
	out.Transactions = slices.Clone(s.Transactions)
	out.Savings = slices.Clone(s.Savings)
	out.Investments = slices.Clone(s.Investments)
	return out
}
