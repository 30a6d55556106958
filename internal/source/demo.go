package source

import (
	"time"

	"github.com/Veraticus/finboard/internal/model"
)

const day = 24 * time.Hour

// Demo returns the built-in sample dataset. Dates are laid out relative to
// now so the current-month figures are never empty.
func Demo(now time.Time) model.Dataset {
	at := func(daysAgo int, hour, minute int) time.Time {
		d := now.AddDate(0, 0, -daysAgo)
		return time.Date(d.Year(), d.Month(), d.Day(), hour, minute, 0, 0, time.UTC)
	}
	due := func(days int) time.Time {
		d := now.Add(time.Duration(days) * day)
		return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	}

	return model.Dataset{
		Profile: model.UserProfile{
			ID:               "user1",
			Name:             "Alex Johnson",
			Email:            "alex@example.com",
			TotalSavings:     12500,
			TotalInvestments: 28750,
			SavingsRate:      15,
			InvestmentReturn: 8.5,
		},
		Transactions: []model.Transaction{
			{ID: "t1", Date: at(0, 10, 30), Description: "Salary Deposit", Amount: 3200, Type: model.TransactionDeposit, Category: "Income"},
			{ID: "t2", Date: at(3, 14, 20), Description: "Grocery Shopping", Amount: 125.5, Type: model.TransactionWithdrawal, Category: "Food"},
			{ID: "t3", Date: at(6, 9, 15), Description: "Investment Contribution", Amount: 500, Type: model.TransactionWithdrawal, Category: "Investment"},
			{ID: "t4", Date: at(8, 16, 45), Description: "Utility Bill", Amount: 85.75, Type: model.TransactionWithdrawal, Category: "Utilities"},
			{ID: "t5", Date: at(13, 11, 30), Description: "Freelance Payment", Amount: 750, Type: model.TransactionDeposit, Category: "Income"},
			{ID: "t6", Date: at(18, 13, 20), Description: "Restaurant Dinner", Amount: 68.9, Type: model.TransactionWithdrawal, Category: "Dining"},
			{ID: "t7", Date: at(23, 9, 0), Description: "Savings Transfer", Amount: 400, Type: model.TransactionWithdrawal, Category: "Savings"},
		},
		Savings: []model.SavingsGoal{
			{ID: "s1", Name: "Emergency Fund", TargetAmount: 10000, CurrentAmount: 7500, Deadline: due(94)},
			{ID: "s2", Name: "Vacation", TargetAmount: 3000, CurrentAmount: 2100, Deadline: due(140)},
			{ID: "s3", Name: "New Car", TargetAmount: 15000, CurrentAmount: 2900, Deadline: due(279)},
		},
		Investments: []model.Investment{
			{ID: "i1", Name: "Tech Stocks", Type: model.AssetStocks, InitialValue: 5000, CurrentValue: 6250, ROI: 25},
			{ID: "i2", Name: "Government Bonds", Type: model.AssetBonds, InitialValue: 7500, CurrentValue: 7875, ROI: 5},
			{ID: "i3", Name: "Real Estate Fund", Type: model.AssetRealEstate, InitialValue: 10000, CurrentValue: 11200, ROI: 12},
			{ID: "i4", Name: "Cryptocurrency", Type: model.AssetCrypto, InitialValue: 2000, CurrentValue: 3400, ROI: 70},
			{ID: "i5", Name: "Cash Savings", Type: model.AssetCash, InitialValue: 3000, CurrentValue: 3025, ROI: 0.8},
		},
	}
}
