package components

import (
	"strings"
	"testing"
	"time"

	"github.com/Veraticus/finboard/internal/model"
	"github.com/Veraticus/finboard/internal/source"
	"github.com/Veraticus/finboard/internal/store"
	"github.com/Veraticus/finboard/internal/tui/themes"
	"github.com/Veraticus/finboard/internal/tui/tuitest"
	"github.com/Veraticus/finboard/internal/tui/viewmodel"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

func dashboard() viewmodel.Dashboard {
	ds := source.Demo(now)
	ok := store.Status{Phase: store.PhaseSuccess}
	return viewmodel.Build(store.State{
		Profile:            &ds.Profile,
		Transactions:       ds.Transactions,
		Savings:            ds.Savings,
		Investments:        ds.Investments,
		View:               store.DefaultTransactionView(),
		UserStatus:         ok,
		TransactionsStatus: ok,
		SavingsStatus:      ok,
		InvestmentsStatus:  ok,
	}, now)
}

func TestRenderStatus(t *testing.T) {
	failed := viewmodel.SectionStatus{Category: model.CategorySavings, Error: "failed to fetch data"}
	out := tuitest.StripANSI(RenderStatus(themes.Default, failed, "*"))
	assert.True(t, tuitest.ContainsInOrder(out, "Failed to load savings", "failed to fetch data", "press r to retry"))

	loading := viewmodel.SectionStatus{Category: model.CategoryInvestments, Loading: true}
	assert.Contains(t, tuitest.StripANSI(RenderStatus(themes.Default, loading, "*")), "* Loading investments...")

	assert.Empty(t, RenderStatus(themes.Default, viewmodel.SectionStatus{}, "*"))
}

func TestRenderOverview(t *testing.T) {
	out := tuitest.StripANSI(RenderOverview(themes.Default, dashboard().Overview, "*", 120))

	assert.Contains(t, out, "Welcome back, Alex Johnson")
	assert.Contains(t, out, "$41,250.00")
	assert.Contains(t, out, "15% of income")
	assert.Contains(t, out, "+8.5% overall return")
	assert.Contains(t, out, "▲ $3,238.75")
	assert.True(t, tuitest.ContainsInOrder(out, "Top spending", "Investment", "Savings", "Food"))
}

func TestRenderTransactionSummary(t *testing.T) {
	out := tuitest.StripANSI(RenderTransactionSummary(themes.Default, dashboard().Overview))
	assert.Equal(t, "Income $3,950.00   Expenses $1,180.15   Top Investment $500.00, Savings $400.00, Food $125.50", out)

	empty := tuitest.StripANSI(RenderTransactionSummary(themes.Default, viewmodel.OverviewView{Income: "$0.00", Expenses: "$0.00"}))
	assert.Equal(t, "Income $0.00   Expenses $0.00", empty)
}

func TestTransactionList_View(t *testing.T) {
	list := NewTransactionList(themes.Default)
	list.Resize(120, 20)
	list.SetView(dashboard().Transactions)

	out := tuitest.StripANSI(list.View())
	assert.Contains(t, out, "7 of 7")
	assert.Contains(t, out, "sorted by date ↓")
	assert.True(t, tuitest.ContainsInOrder(out, "Salary Deposit", "+$3,200.00", "Grocery Shopping", "-$125.50"))

	list.SetView(viewmodel.TransactionListView{Filter: "zzz", Total: 7})
	assert.Contains(t, tuitest.StripANSI(list.View()), viewmodel.NoTransactions)
}

func TestTransactionList_Filtering(t *testing.T) {
	list := NewTransactionList(themes.Default)
	list.SetView(dashboard().Transactions)

	list.StartFilter()
	require.True(t, list.Filtering())

	var cmd tea.Cmd
	list, cmd = list.Update(tuitest.KeyPress("f"))
	require.NotNil(t, cmd)
	assert.Contains(t, collect(cmd), FilterChangedMsg{Text: "f"})

	list, cmd = list.Update(tuitest.Key(tea.KeyEnter))
	assert.False(t, list.Filtering())
	assert.Contains(t, collect(cmd), FilterClosedMsg{})

	list.StartFilter()
	list, cmd = list.Update(tuitest.Key(tea.KeyEsc))
	assert.False(t, list.Filtering())
	msgs := collect(cmd)
	assert.Contains(t, msgs, FilterChangedMsg{})
	assert.Contains(t, msgs, FilterClosedMsg{})
}

// collect runs cmd and flattens batches, skipping textinput cursor blinks.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		if c == nil {
			continue
		}
		switch m := c().(type) {
		case FilterChangedMsg, FilterClosedMsg:
			out = append(out, m)
		}
	}
	return out
}

func TestGoalList_View(t *testing.T) {
	goals := NewGoalList(themes.Default)
	goals.Resize(100)

	out := tuitest.StripANSI(goals.View(dashboard().Savings, "*"))
	assert.True(t, tuitest.ContainsInOrder(out,
		"Emergency Fund", "94 days left", "$7,500.00 of $10,000.00",
		"Vacation", "New Car"))

	empty := tuitest.StripANSI(goals.View(viewmodel.SavingsView{}, "*"))
	assert.Contains(t, empty, viewmodel.NoGoals)
}

func TestRenderHoldings(t *testing.T) {
	out := tuitest.StripANSI(RenderHoldings(themes.Default, dashboard().Investments, "*", 120))

	assert.Contains(t, out, "Portfolio value $31,750.00")
	assert.True(t, tuitest.ContainsInOrder(out, "Tech Stocks", "stocks", "$6,250.00", "19.7%", "+25%"))
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 7)

	empty := tuitest.StripANSI(RenderHoldings(themes.Default, viewmodel.InvestmentsView{}, "*", 120))
	assert.Contains(t, empty, viewmodel.NoInvestments)
}
