package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Veraticus/finboard/internal/model"
	"github.com/Veraticus/finboard/internal/store"
	"github.com/Veraticus/finboard/internal/tui/themes"
	"github.com/Veraticus/finboard/internal/tui/viewmodel"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// AllFailed reports whether every category ended in an error.
func AllFailed(st store.State) bool {
	for _, c := range model.Categories {
		if !st.Status(c).HasError() {
			return false
		}
	}
	return true
}

// WriteSummary prints a one-shot dashboard report for st.
func WriteSummary(w io.Writer, st store.State, now time.Time) error {
	d := viewmodel.Build(st, now)

	sections := []string{
		renderOverview(d.Overview),
		renderTransactions(d.Transactions),
		renderSavings(d.Savings),
		renderInvestments(d.Investments),
	}

	_, err := fmt.Fprintln(w, strings.Join(sections, "\n\n"))
	return err
}

func renderFailure(status viewmodel.SectionStatus) string {
	return FormatError(status.Heading() + ": " + status.Error)
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(SubtleStyle).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return TableHeaderStyle
			}
			return TableCellStyle
		})
}

func renderOverview(o viewmodel.OverviewView) string {
	title := "Financial summary"
	if o.Name != "" {
		title += " for " + o.Name
	}
	if o.Status.Failed() {
		return FormatTitle(title) + "\n" + renderFailure(o.Status)
	}

	arrow := DownIcon
	if o.PositiveChange {
		arrow = UpIcon
	}

	lines := []string{
		BoldStyle.Render("Total balance  ") + o.TotalBalance,
		BoldStyle.Render("Savings        ") + o.TotalSavings + "  " + SubtleStyle.Render(o.SavingsCaption),
		BoldStyle.Render("Investments    ") + o.Investments + "  " + SubtleStyle.Render(o.ReturnCaption),
		BoldStyle.Render("This month     ") + StyleAmount(arrow+" "+o.MonthlyChange, o.PositiveChange),
		BoldStyle.Render("Income         ") + SuccessStyle.Render(o.Income),
		BoldStyle.Render("Expenses       ") + ErrorStyle.Render(o.Expenses),
	}
	return FormatTitle(title) + "\n" + BoxStyle.Render(strings.Join(lines, "\n"))
}

func renderTransactions(v viewmodel.TransactionListView) string {
	title := TitleStyle.Render(fmt.Sprintf("%s Transactions (%d of %d)", ChartIcon, len(v.Rows), v.Total))
	if v.Status.Failed() {
		return title + "\n" + renderFailure(v.Status)
	}
	if v.IsEmpty() {
		return title + "\n" + SubtleStyle.Render(viewmodel.NoTransactions)
	}

	t := newTable("Date", "Description", "Category", "Amount")
	for _, r := range v.Rows {
		t.Row(r.Date, r.Description, r.Category, StyleAmount(r.Amount, r.Deposit))
	}
	return title + "\n" + t.String()
}

func renderSavings(v viewmodel.SavingsView) string {
	title := TitleStyle.Render(GoalIcon + " Savings goals")
	if v.Status.Failed() {
		return title + "\n" + renderFailure(v.Status)
	}
	if len(v.Goals) == 0 {
		return title + "\n" + SubtleStyle.Render(viewmodel.NoGoals)
	}

	t := newTable("Goal", "Progress", "Saved", "Deadline")
	for _, g := range v.Goals {
		deadline := g.DaysLeft
		if g.Overdue {
			deadline = WarningStyle.Render(deadline)
		}
		t.Row(g.Name, progressBar(g.Percent, 20)+fmt.Sprintf(" %3d%%", g.Percent), g.Current+" of "+g.Target, deadline)
	}
	return title + "\n" + t.String()
}

func renderInvestments(v viewmodel.InvestmentsView) string {
	title := TitleStyle.Render(MoneyIcon + " Investments (" + v.Total + ")")
	if v.Status.Failed() {
		return title + "\n" + renderFailure(v.Status)
	}
	if len(v.Holdings) == 0 {
		return title + "\n" + SubtleStyle.Render(viewmodel.NoInvestments)
	}

	t := newTable("Name", "Type", "Value", "Allocation", "Return")
	for _, h := range v.Holdings {
		typeStyle := lipgloss.NewStyle().Foreground(themes.AssetColor(h.Type))
		roiStyle := lipgloss.NewStyle().Foreground(themes.PerformanceColor(h.Performance))
		t.Row(h.Name, typeStyle.Render(string(h.Type)), h.Value, h.Allocation, roiStyle.Render(h.ROI))
	}
	return title + "\n" + t.String()
}

func progressBar(percent, width int) string {
	filled := percent * width / 100
	return SuccessStyle.Render(strings.Repeat("█", filled)) +
		SubtleStyle.Render(strings.Repeat("░", width-filled))
}
