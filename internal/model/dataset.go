package model

// Dataset is a complete set of dashboard data for one user.
type Dataset struct {
	Profile      UserProfile
	Transactions []Transaction
	Savings      []SavingsGoal
	Investments  []Investment
}
