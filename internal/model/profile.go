package model

// UserProfile is the account holder's overview record.
type UserProfile struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Email            string  `json:"email"`
	TotalSavings     float64 `json:"totalSavings"`
	TotalInvestments float64 `json:"totalInvestments"`
	SavingsRate      float64 `json:"savingsRate"`      // percent of income
	InvestmentReturn float64 `json:"investmentReturn"` // signed percent
}
