package storage

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/Veraticus/finboard/internal/model"
)

// Validation errors.
var (
	ErrNilContext         = errors.New("context cannot be nil")
	ErrEmptyString        = errors.New("string parameter cannot be empty")
	ErrInvalidProfile     = errors.New("invalid profile")
	ErrInvalidTransaction = errors.New("invalid transaction")
	ErrInvalidGoal        = errors.New("invalid savings goal")
	ErrInvalidInvestment  = errors.New("invalid investment")
)

func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func validateProfile(p *model.UserProfile) error {
	if strings.TrimSpace(p.ID) == "" {
		return fmt.Errorf("%w: missing ID", ErrInvalidProfile)
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidProfile)
	}
	for _, v := range []float64{p.TotalSavings, p.TotalInvestments, p.SavingsRate, p.InvestmentReturn} {
		if !finite(v) {
			return fmt.Errorf("%w: non-finite amount", ErrInvalidProfile)
		}
	}
	return nil
}

func validateTransaction(txn *model.Transaction) error {
	if strings.TrimSpace(txn.ID) == "" {
		return fmt.Errorf("%w: missing ID", ErrInvalidTransaction)
	}
	if txn.Date.IsZero() {
		return fmt.Errorf("%w: missing date", ErrInvalidTransaction)
	}
	if _, err := model.ParseTransactionType(string(txn.Type)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidTransaction, err)
	}
	if !finite(txn.Amount) || txn.Amount < 0 {
		return fmt.Errorf("%w: amount must be a non-negative number", ErrInvalidTransaction)
	}
	return nil
}

func validateGoal(g *model.SavingsGoal) error {
	if strings.TrimSpace(g.ID) == "" {
		return fmt.Errorf("%w: missing ID", ErrInvalidGoal)
	}
	if g.Deadline.IsZero() {
		return fmt.Errorf("%w: missing deadline", ErrInvalidGoal)
	}
	if !finite(g.TargetAmount) || !finite(g.CurrentAmount) {
		return fmt.Errorf("%w: non-finite amount", ErrInvalidGoal)
	}
	return nil
}

func validateInvestment(inv *model.Investment) error {
	if strings.TrimSpace(inv.ID) == "" {
		return fmt.Errorf("%w: missing ID", ErrInvalidInvestment)
	}
	if !finite(inv.InitialValue) || !finite(inv.CurrentValue) || !finite(inv.ROI) {
		return fmt.Errorf("%w: non-finite amount", ErrInvalidInvestment)
	}
	return nil
}

func validateDataset(ds *model.Dataset) error {
	if err := validateProfile(&ds.Profile); err != nil {
		return err
	}
	for i := range ds.Transactions {
		if err := validateTransaction(&ds.Transactions[i]); err != nil {
			return fmt.Errorf("transaction at index %d: %w", i, err)
		}
	}
	for i := range ds.Savings {
		if err := validateGoal(&ds.Savings[i]); err != nil {
			return fmt.Errorf("savings goal at index %d: %w", i, err)
		}
	}
	for i := range ds.Investments {
		if err := validateInvestment(&ds.Investments[i]); err != nil {
			return fmt.Errorf("investment at index %d: %w", i, err)
		}
	}
	return nil
}
