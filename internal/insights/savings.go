package insights

import (
	"math"
	"time"

	"github.com/Veraticus/finboard/internal/model"
)

const day = 24 * time.Hour

// ProgressPercent is current over target as a whole percentage, rounded half
// up and clamped to [0, 100]. A goal without a positive target is complete
// unless the saved amount is below it.
func ProgressPercent(goal model.SavingsGoal) int {
	if goal.TargetAmount <= 0 {
		if goal.CurrentAmount >= goal.TargetAmount {
			return 100
		}
		return 0
	}
	pct := math.Floor(goal.CurrentAmount/goal.TargetAmount*100 + 0.5)
	return int(min(max(pct, 0), 100))
}

// DaysRemaining is the number of days until the deadline, rounded up.
// It is zero or negative once the deadline has passed.
func DaysRemaining(goal model.SavingsGoal, now time.Time) int {
	return int(math.Ceil(float64(goal.Deadline.Sub(now)) / float64(day)))
}

// GoalProgress is a savings goal with its derived figures.
type GoalProgress struct {
	Goal     model.SavingsGoal `json:"goal"`
	Percent  int               `json:"progressPercent"`
	DaysLeft int               `json:"daysLeft"`
}

// Overdue reports whether the deadline has passed.
func (g GoalProgress) Overdue() bool {
	return g.DaysLeft <= 0
}

// Progress derives progress for every goal, in input order.
func Progress(goals []model.SavingsGoal, now time.Time) []GoalProgress {
	out := make([]GoalProgress, len(goals))
	for i, g := range goals {
		out[i] = GoalProgress{
			Goal:     g,
			Percent:  ProgressPercent(g),
			DaysLeft: DaysRemaining(g, now),
		}
	}
	return out
}
