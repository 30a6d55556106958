package components

import (
	"strings"

	"github.com/Veraticus/finboard/internal/tui/themes"
	"github.com/Veraticus/finboard/internal/tui/viewmodel"
	"github.com/charmbracelet/lipgloss"
)

// RenderHoldings draws each investment with its share of the portfolio.
func RenderHoldings(theme themes.Theme, v viewmodel.InvestmentsView, spin string, width int) string {
	if len(v.Holdings) == 0 && !v.Status.Loading {
		return WithStatus(theme, v.Status, spin, theme.Faint.Render(viewmodel.NoInvestments))
	}

	barWidth := max(min(width-70, 30), 10)
	lines := []string{theme.Bold.Render("Portfolio value ") + theme.Normal.Render(v.Total), ""}
	for _, h := range v.Holdings {
		swatch := lipgloss.NewStyle().Foreground(themes.AssetColor(h.Type))
		filled := int(h.Percent / 100 * float64(barWidth))

		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			swatch.Render("● "),
			lipgloss.NewStyle().Width(22).Render(h.Name),
			theme.Faint.Width(12).Render(string(h.Type)),
			lipgloss.NewStyle().Width(14).Render(h.Value),
			swatch.Render(strings.Repeat("█", filled)),
			theme.Faint.Render(strings.Repeat("░", barWidth-filled)),
			lipgloss.NewStyle().Width(8).Align(lipgloss.Right).Render(h.Allocation),
			lipgloss.NewStyle().Width(9).Align(lipgloss.Right).
				Foreground(themes.PerformanceColor(h.Performance)).
				Render(h.ROI),
		))
	}

	return WithStatus(theme, v.Status, spin, strings.Join(lines, "\n"))
}
