package tui

import (
	"github.com/Veraticus/finboard/internal/tui/components"
	"github.com/charmbracelet/lipgloss"
)

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderTabs(),
		"",
		m.renderBody(),
		"",
		m.help.View(m.keymap),
	)
}

func (m Model) renderTabs() string {
	title := m.theme.Bold.Foreground(m.theme.Primary).Render("finboard")
	if m.dash.Loading {
		title += " " + m.spinner.View()
	}

	tabs := []string{title, "  "}
	for _, t := range Tabs {
		style := m.theme.TabInactive
		if t == m.tab {
			style = m.theme.TabActive
		}
		tabs = append(tabs, style.Render(t.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderBody() string {
	spin := m.spinner.View()
	width := m.width - 2

	switch m.tab {
	case TabTransactions:
		body := lipgloss.JoinVertical(lipgloss.Left,
			components.RenderTransactionSummary(m.theme, m.dash.Overview),
			"",
			m.transactions.View(),
		)
		return components.WithStatus(m.theme, m.dash.Transactions.Status, spin, body)
	case TabSavings:
		return m.goals.View(m.dash.Savings, spin)
	case TabInvestments:
		return components.RenderHoldings(m.theme, m.dash.Investments, spin, width)
	default:
		return components.RenderOverview(m.theme, m.dash.Overview, spin, width)
	}
}
