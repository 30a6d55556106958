package insights

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/Veraticus/finboard/internal/model"
)

// FilterTransactions keeps transactions whose description or category
// contains filter, ignoring case. An empty filter keeps everything.
// The result is always a new slice.
func FilterTransactions(txns []model.Transaction, filter string) []model.Transaction {
	needle := strings.ToLower(filter)
	out := make([]model.Transaction, 0, len(txns))
	for _, t := range txns {
		if needle == "" ||
			strings.Contains(strings.ToLower(t.Description), needle) ||
			strings.Contains(strings.ToLower(t.Category), needle) {
			out = append(out, t)
		}
	}
	return out
}

// SortTransactions returns a stably sorted copy of txns. Text fields compare
// byte-wise and case-sensitively. SortNone, or a field it does not know,
// keeps the input order. Any direction other than SortDesc sorts ascending.
func SortTransactions(txns []model.Transaction, field model.SortField, direction model.SortDirection) []model.Transaction {
	out := slices.Clone(txns)
	compare := comparator(field)
	if compare == nil {
		return out
	}
	if direction == model.SortDesc {
		asc := compare
		compare = func(a, b model.Transaction) int { return asc(b, a) }
	}
	slices.SortStableFunc(out, compare)
	return out
}

func comparator(field model.SortField) func(a, b model.Transaction) int {
	switch field {
	case model.SortDate:
		return func(a, b model.Transaction) int { return a.Date.Compare(b.Date) }
	case model.SortAmount:
		return func(a, b model.Transaction) int { return cmp.Compare(a.Amount, b.Amount) }
	case model.SortDescription:
		return func(a, b model.Transaction) int { return strings.Compare(a.Description, b.Description) }
	case model.SortCategory:
		return func(a, b model.Transaction) int { return strings.Compare(a.Category, b.Category) }
	default:
		return nil
	}
}

// FilterAndSort is the transaction list as the user currently wants to see it.
func FilterAndSort(txns []model.Transaction, filter string, field model.SortField, direction model.SortDirection) []model.Transaction {
	return SortTransactions(FilterTransactions(txns, filter), field, direction)
}

// NextSort returns the preference after the user picks field: picking the
// active field flips the direction, picking another starts descending.
func NextSort(current model.SortField, direction model.SortDirection, field model.SortField) (model.SortField, model.SortDirection) {
	if current == field {
		return field, direction.Toggle()
	}
	return field, model.SortDesc
}

// CategoryTotal is the amount spent in one category.
type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

// CategoryTotals sums withdrawals per category, in first-seen order.
func CategoryTotals(txns []model.Transaction) []CategoryTotal {
	index := make(map[string]int)
	sums := make([]sum, 0)
	names := make([]string, 0)

	for _, t := range txns {
		if !t.IsWithdrawal() {
			continue
		}
		i, ok := index[t.Category]
		if !ok {
			i = len(names)
			index[t.Category] = i
			names = append(names, t.Category)
			sums = append(sums, sum{})
		}
		sums[i].add(t.Amount)
	}

	out := make([]CategoryTotal, len(names))
	for i, name := range names {
		out[i] = CategoryTotal{Category: name, Total: sums[i].value()}
	}
	return out
}

// TopExpenses returns the n categories with the highest spend, largest
// first. Equal totals keep first-seen order.
func TopExpenses(txns []model.Transaction, n int) []CategoryTotal {
	totals := CategoryTotals(txns)
	slices.SortStableFunc(totals, func(a, b CategoryTotal) int {
		return cmp.Compare(b.Total, a.Total)
	})
	if n < 0 {
		n = 0
	}
	if len(totals) > n {
		totals = totals[:n]
	}
	return totals
}

// Totals is income and spending over a set of transactions.
type Totals struct {
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
}

// Net is income minus expenses.
func (t Totals) Net() float64 {
	return t.Income - t.Expenses
}

// IncomeAndExpenses sums deposits and withdrawals over every transaction,
// regardless of the active filter.
func IncomeAndExpenses(txns []model.Transaction) Totals {
	var income, expenses sum
	for _, t := range txns {
		switch t.Type {
		case model.TransactionDeposit:
			income.add(t.Amount)
		case model.TransactionWithdrawal:
			expenses.add(t.Amount)
		}
	}
	return Totals{Income: income.value(), Expenses: expenses.value()}
}

// MonthlyNetChange sums deposits minus withdrawals dated in the calendar
// month of now, using now's location.
func MonthlyNetChange(txns []model.Transaction, now time.Time) float64 {
	var net sum
	year, month := now.Year(), now.Month()
	for _, t := range txns {
		d := t.Date.In(now.Location())
		if d.Year() != year || d.Month() != month {
			continue
		}
		switch t.Type {
		case model.TransactionDeposit:
			net.add(t.Amount)
		case model.TransactionWithdrawal:
			net.sub(t.Amount)
		}
	}
	return net.value()
}
