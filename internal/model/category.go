package model

import (
	"fmt"
	"strings"

	"github.com/Veraticus/finboard/internal/common"
)

// Category identifies one independently fetched slice of dashboard data.
type Category int

// Data categories.
const (
	CategoryUser Category = iota
	CategoryTransactions
	CategorySavings
	CategoryInvestments
)

// Categories lists every category in display order.
var Categories = []Category{CategoryUser, CategoryTransactions, CategorySavings, CategoryInvestments}

func (c Category) String() string {
	switch c {
	case CategoryUser:
		return "user"
	case CategoryTransactions:
		return "transactions"
	case CategorySavings:
		return "savings"
	case CategoryInvestments:
		return "investments"
	default:
		return fmt.Sprintf("category(%d)", int(c))
	}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	return c >= CategoryUser && c <= CategoryInvestments
}

// ParseCategory accepts the lower-case category name.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if strings.EqualFold(s, c.String()) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", common.ErrUnknownCategory, s)
}

// MarshalText renders the category name in JSON payloads.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
