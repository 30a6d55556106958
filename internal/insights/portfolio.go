package insights

import "github.com/Veraticus/finboard/internal/model"

// PortfolioValue is the sum of current values.
func PortfolioValue(investments []model.Investment) float64 {
	var total sum
	for _, inv := range investments {
		total.add(inv.CurrentValue)
	}
	return total.value()
}

// AllocationPercent is value's share of total, in percent. It is 0 when
// total is not positive.
func AllocationPercent(value, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return value / total * 100
}

// Allocation is one investment together with its derived figures.
type Allocation struct {
	Investment  model.Investment  `json:"investment"`
	Percent     float64           `json:"allocationPercent"`
	Performance model.Performance `json:"performance"`
}

// Allocations computes each investment's share of the portfolio, in input order.
func Allocations(investments []model.Investment) []Allocation {
	total := PortfolioValue(investments)
	out := make([]Allocation, len(investments))
	for i, inv := range investments {
		out[i] = Allocation{
			Investment:  inv,
			Percent:     AllocationPercent(inv.CurrentValue, total),
			Performance: ClassifyPerformance(inv.ROI),
		}
	}
	return out
}

// ClassifyPerformance buckets a signed ROI percentage. Exactly 5 is weak
// positive and exactly -5 is strong negative.
func ClassifyPerformance(roi float64) model.Performance {
	switch {
	case roi > 5:
		return model.PerformanceStrongPositive
	case roi > 0:
		return model.PerformanceWeakPositive
	case roi == 0:
		return model.PerformanceNeutral
	case roi > -5:
		return model.PerformanceWeakNegative
	default:
		return model.PerformanceStrongNegative
	}
}
