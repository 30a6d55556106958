package model

import (
	"fmt"

	"github.com/Veraticus/finboard/internal/common"
)

// SortField names the transaction attribute used for ordering.
// The zero value means no ordering.
type SortField string

// Sort fields.
const (
	SortNone        SortField = ""
	SortDate        SortField = "date"
	SortAmount      SortField = "amount"
	SortDescription SortField = "description"
	SortCategory    SortField = "category"
)

// SortDirection is ascending or descending.
type SortDirection string

// Sort directions.
const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// ParseSortField validates a sort field name. The empty string is SortNone.
func ParseSortField(s string) (SortField, error) {
	switch f := SortField(s); f {
	case SortNone, SortDate, SortAmount, SortDescription, SortCategory:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", common.ErrInvalidSortField, s)
	}
}

// ParseSortDirection validates a sort direction.
func ParseSortDirection(s string) (SortDirection, error) {
	switch d := SortDirection(s); d {
	case SortAsc, SortDesc:
		return d, nil
	default:
		return "", fmt.Errorf("%w: %q", common.ErrInvalidSortDirection, s)
	}
}

// Toggle returns the opposite direction.
func (d SortDirection) Toggle() SortDirection {
	if d == SortAsc {
		return SortDesc
	}
	return SortAsc
}
