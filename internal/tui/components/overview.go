package components

import (
	"strings"

	"github.com/Veraticus/finboard/internal/tui/themes"
	"github.com/Veraticus/finboard/internal/tui/viewmodel"
	"github.com/charmbracelet/lipgloss"
)

// RenderOverview draws the headline cards and the spending breakdown.
func RenderOverview(theme themes.Theme, v viewmodel.OverviewView, spin string, width int) string {
	cardWidth := max((width-8)/4, 18)
	card := func(title, value, caption string, captionStyle lipgloss.Style) string {
		return theme.Card.Width(cardWidth).Render(lipgloss.JoinVertical(lipgloss.Left,
			theme.Subtitle.Render(title),
			theme.Bold.Render(value),
			captionStyle.Render(caption),
		))
	}

	changeStyle, changeArrow := theme.Negative, "▼ "
	if v.PositiveChange {
		changeStyle, changeArrow = theme.Positive, "▲ "
	}

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		card("Total Balance", v.TotalBalance, "Savings + investments", theme.Faint),
		card("Savings", v.TotalSavings, v.SavingsCaption, theme.Faint),
		card("Investments", v.Investments, v.ReturnCaption, theme.Faint),
		card("This Month", changeArrow+v.MonthlyChange, "Net change", changeStyle),
	)

	greeting := "Welcome"
	if v.Name != "" {
		greeting = "Welcome back, " + v.Name
	}

	sections := []string{
		theme.Title.Render(greeting),
		cards,
		"",
		renderTotals(theme, v),
	}

	if len(v.TopExpenses) > 0 {
		sections = append(sections, "", theme.Bold.Render("Top spending"))
		sections = append(sections, renderSpending(theme, v.TopExpenses, width))
	}

	return WithStatus(theme, v.Status, spin, lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func renderSpending(theme themes.Theme, rows []viewmodel.CategorySpend, width int) string {
	barWidth := max(min(width-50, 40), 10)
	lines := make([]string, len(rows))
	for i, r := range rows {
		filled := int(r.Share / 100 * float64(barWidth))
		bar := lipgloss.NewStyle().
			Foreground(themes.CategoryColor(r.ColorIndex)).
			Render(strings.Repeat("█", filled)) +
			theme.Faint.Render(strings.Repeat("░", barWidth-filled))

		lines[i] = lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.NewStyle().Width(3).Render(themes.GetCategoryIcon(r.Category)),
			lipgloss.NewStyle().Width(16).Render(r.Category),
			bar,
			" ",
			theme.Normal.Render(r.Amount),
		)
	}
	return strings.Join(lines, "\n")
}

func renderTotals(theme themes.Theme, v viewmodel.OverviewView) string {
	return theme.Bold.Render("Income ") + theme.Positive.Render(v.Income) +
		theme.Bold.Render("   Expenses ") + theme.Negative.Render(v.Expenses)
}

// RenderTransactionSummary is the one-line income, expenses and top
// spending header of the transactions page.
func RenderTransactionSummary(theme themes.Theme, v viewmodel.OverviewView) string {
	line := renderTotals(theme, v)

	if len(v.TopExpenses) == 0 {
		return line
	}
	parts := make([]string, len(v.TopExpenses))
	for i, r := range v.TopExpenses {
		parts[i] = r.Category + " " + r.Amount
	}
	return line + theme.Bold.Render("   Top ") + theme.Faint.Render(strings.Join(parts, ", "))
}
