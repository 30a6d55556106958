package insights

import (
	"time"

	"github.com/Veraticus/finboard/internal/model"
)

// Overview is the headline figures of the dashboard.
type Overview struct {
	TotalBalance     float64 `json:"totalBalance"`
	TotalSavings     float64 `json:"totalSavings"`
	TotalInvestments float64 `json:"totalInvestments"`
	SavingsRate      float64 `json:"savingsRate"`
	InvestmentReturn float64 `json:"investmentReturn"`
	MonthlyChange    float64 `json:"monthlyChange"`
}

// PositiveChange reports whether this month's net change is not a loss.
func (o Overview) PositiveChange() bool {
	return o.MonthlyChange >= 0
}

// Summarize builds the overview. A missing profile counts as zero balances.
func Summarize(profile *model.UserProfile, txns []model.Transaction, now time.Time) Overview {
	o := Overview{MonthlyChange: MonthlyNetChange(txns, now)}
	if profile != nil {
		var balance sum
		balance.add(profile.TotalSavings)
		balance.add(profile.TotalInvestments)

		o.TotalBalance = balance.value()
		o.TotalSavings = profile.TotalSavings
		o.TotalInvestments = profile.TotalInvestments
		o.SavingsRate = profile.SavingsRate
		o.InvestmentReturn = profile.InvestmentReturn
	}
	return o
}
