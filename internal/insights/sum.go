package insights

import "github.com/shopspring/decimal"

// sum adds currency amounts without accumulating binary rounding error.
type sum struct {
	total decimal.Decimal
}

func (s *sum) add(v float64) {
	s.total = s.total.Add(decimal.NewFromFloat(v))
}

func (s *sum) sub(v float64) {
	s.total = s.total.Sub(decimal.NewFromFloat(v))
}

func (s sum) value() float64 {
	return s.total.InexactFloat64()
}
