package model

import "time"

// SavingsGoal is a target amount the user is saving toward.
// CurrentAmount may exceed TargetAmount.
type SavingsGoal struct {
	Deadline      time.Time `json:"deadline"`
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	TargetAmount  float64   `json:"targetAmount"`
	CurrentAmount float64   `json:"currentAmount"`
}
