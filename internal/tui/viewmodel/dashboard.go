// Package viewmodel turns store snapshots into display-ready values. It has
// no terminal dependencies so every figure can be checked in plain tests.
package viewmodel

import (
	"time"

	"github.com/Veraticus/finboard/internal/format"
	"github.com/Veraticus/finboard/internal/insights"
	"github.com/Veraticus/finboard/internal/model"
	"github.com/Veraticus/finboard/internal/store"
)

// Empty-state messages.
const (
	NoTransactions = "No transactions found."
	NoGoals        = "Add Your First Goal"
	NoInvestments  = "Add Your First Investment"
)

// TopExpenseCount is how many spending categories the dashboard lists.
const TopExpenseCount = 3

// SectionStatus is the fetch state of the data behind a section.
type SectionStatus struct {
	Error    string
	Category model.Category
	Loading  bool
}

// Failed reports whether the last fetch failed.
func (s SectionStatus) Failed() bool {
	return s.Error != ""
}

// Heading is the error title for a failed section.
func (s SectionStatus) Heading() string {
	return format.FailedToLoad(s.Category)
}

func sectionStatus(st store.State, c model.Category) SectionStatus {
	status := st.Status(c)
	out := SectionStatus{Category: c, Loading: status.IsLoading()}
	if status.HasError() {
		out.Error = status.Err
	}
	return out
}

// Dashboard is everything the dashboard renders.
type Dashboard struct {
	Overview     OverviewView
	Transactions TransactionListView
	Savings      SavingsView
	Investments  InvestmentsView
	Version      uint64
	Loading      bool
}

// Build derives the dashboard from a snapshot.
func Build(st store.State, now time.Time) Dashboard {
	return Dashboard{
		Overview:     buildOverview(st, now),
		Transactions: buildTransactions(st),
		Savings:      buildSavings(st, now),
		Investments:  buildInvestments(st),
		Version:      st.Version,
		Loading:      st.Loading(),
	}
}

// OverviewView holds the headline cards.
type OverviewView struct {
	Name           string
	TotalBalance   string
	TotalSavings   string
	Investments    string
	SavingsCaption string
	ReturnCaption  string
	MonthlyChange  string
	Income         string
	Expenses       string
	TopExpenses    []CategorySpend
	Status         SectionStatus
	PositiveChange bool
	HasProfile     bool
}

// CategorySpend is one row of the spending breakdown.
type CategorySpend struct {
	Category   string
	Amount     string
	Share      float64
	ColorIndex int
}

func buildOverview(st store.State, now time.Time) OverviewView {
	o := insights.Summarize(st.Profile, st.Transactions, now)
	totals := insights.IncomeAndExpenses(st.Transactions)

	view := OverviewView{
		TotalBalance:   format.Currency(o.TotalBalance),
		TotalSavings:   format.Currency(o.TotalSavings),
		Investments:    format.Currency(o.TotalInvestments),
		SavingsCaption: format.SavingsRateCaption(o.SavingsRate),
		ReturnCaption:  format.ReturnCaption(o.InvestmentReturn),
		MonthlyChange:  format.Currency(abs(o.MonthlyChange)),
		PositiveChange: o.PositiveChange(),
		Income:         format.Currency(totals.Income),
		Expenses:       format.Currency(totals.Expenses),
		Status:         sectionStatus(st, model.CategoryUser),
		HasProfile:     st.Profile != nil,
	}
	if st.Profile != nil {
		view.Name = st.Profile.Name
	}

	for i, ct := range insights.TopExpenses(st.Transactions, TopExpenseCount) {
		view.TopExpenses = append(view.TopExpenses, CategorySpend{
			Category:   ct.Category,
			Amount:     format.Currency(ct.Total),
			Share:      insights.AllocationPercent(ct.Total, totals.Expenses),
			ColorIndex: i,
		})
	}
	return view
}

// TransactionListView is the filtered and sorted transaction table.
type TransactionListView struct {
	Filter        string
	SortField     model.SortField
	SortDirection model.SortDirection
	Rows          []TransactionRow
	Status        SectionStatus
	Total         int
}

// TransactionRow is one formatted transaction.
type TransactionRow struct {
	ID          string
	Date        string
	Description string
	Category    string
	Amount      string
	Deposit     bool
}

// IsEmpty reports whether no transaction matches the filter.
func (v TransactionListView) IsEmpty() bool {
	return len(v.Rows) == 0
}

func buildTransactions(st store.State) TransactionListView {
	visible := insights.FilterAndSort(st.Transactions, st.View.Filter, st.View.SortField, st.View.SortDirection)

	rows := make([]TransactionRow, len(visible))
	for i, t := range visible {
		rows[i] = TransactionRow{
			ID:          t.ID,
			Date:        format.Date(t.Date),
			Description: t.Description,
			Category:    t.Category,
			Amount:      format.Signed(t.Amount, t.IsDeposit()),
			Deposit:     t.IsDeposit(),
		}
	}

	return TransactionListView{
		Filter:        st.View.Filter,
		SortField:     st.View.SortField,
		SortDirection: st.View.SortDirection,
		Rows:          rows,
		Status:        sectionStatus(st, model.CategoryTransactions),
		Total:         len(st.Transactions),
	}
}

// SavingsView lists the savings goals.
type SavingsView struct {
	Goals  []GoalView
	Status SectionStatus
}

// GoalView is one savings goal with its progress.
type GoalView struct {
	Name     string
	Current  string
	Target   string
	DaysLeft string
	Percent  int
	Overdue  bool
}

// Fraction is Percent as a value between 0 and 1.
func (g GoalView) Fraction() float64 {
	return float64(g.Percent) / 100
}

func buildSavings(st store.State, now time.Time) SavingsView {
	progress := insights.Progress(st.Savings, now)
	goals := make([]GoalView, len(progress))
	for i, p := range progress {
		goals[i] = GoalView{
			Name:     p.Goal.Name,
			Current:  format.Currency(p.Goal.CurrentAmount),
			Target:   format.Currency(p.Goal.TargetAmount),
			DaysLeft: format.DaysLeft(p.DaysLeft),
			Percent:  p.Percent,
			Overdue:  p.Overdue(),
		}
	}
	return SavingsView{Goals: goals, Status: sectionStatus(st, model.CategorySavings)}
}

// InvestmentsView lists holdings with their portfolio share.
type InvestmentsView struct {
	Total    string
	Holdings []HoldingView
	Status   SectionStatus
}

// HoldingView is one investment row.
type HoldingView struct {
	Name        string
	Type        model.AssetType
	Value       string
	Allocation  string
	ROI         string
	Percent     float64
	Performance model.Performance
}

func buildInvestments(st store.State) InvestmentsView {
	allocations := insights.Allocations(st.Investments)
	holdings := make([]HoldingView, len(allocations))
	for i, a := range allocations {
		holdings[i] = HoldingView{
			Name:        a.Investment.Name,
			Type:        a.Investment.Type,
			Value:       format.Currency(a.Investment.CurrentValue),
			Allocation:  format.Percent(a.Percent, 1),
			ROI:         format.SignedPercent(a.Investment.ROI),
			Percent:     a.Percent,
			Performance: a.Performance,
		}
	}
	return InvestmentsView{
		Total:    format.Currency(insights.PortfolioValue(st.Investments)),
		Holdings: holdings,
		Status:   sectionStatus(st, model.CategoryInvestments),
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
