package model

import (
	"fmt"
	"time"

	"github.com/Veraticus/finboard/internal/common"
)

// TransactionType carries the direction of a transaction.
type TransactionType string

// Transaction types.
const (
	TransactionDeposit    TransactionType = "deposit"
	TransactionWithdrawal TransactionType = "withdrawal"
)

// ParseTransactionType validates a stored transaction type.
func ParseTransactionType(s string) (TransactionType, error) {
	switch t := TransactionType(s); t {
	case TransactionDeposit, TransactionWithdrawal:
		return t, nil
	default:
		return "", fmt.Errorf("%w: %q", common.ErrInvalidTransactionType, s)
	}
}

// Transaction represents a single movement of money on the account.
// Amount is never negative; the direction lives in Type.
type Transaction struct {
	Date        time.Time       `json:"date"`
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Type        TransactionType `json:"type"`
	Amount      float64         `json:"amount"`
}

// IsDeposit reports whether the transaction adds money.
func (t Transaction) IsDeposit() bool {
	return t.Type == TransactionDeposit
}

// IsWithdrawal reports whether the transaction removes money.
func (t Transaction) IsWithdrawal() bool {
	return t.Type == TransactionWithdrawal
}

// SignedAmount returns the amount with the sign implied by the type.
func (t Transaction) SignedAmount() float64 {
	if t.IsDeposit() {
		return t.Amount
	}
	return -t.Amount
}
