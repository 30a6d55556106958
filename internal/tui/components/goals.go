package components

import (
	"strings"

	"github.com/Veraticus/finboard/internal/tui/themes"
	"github.com/Veraticus/finboard/internal/tui/viewmodel"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// GoalListModel renders savings goals with progress bars.
type GoalListModel struct {
	theme themes.Theme
	bar   progress.Model
	width int
}

// NewGoalList creates a goal list.
func NewGoalList(theme themes.Theme) GoalListModel {
	bar := progress.New(
		progress.WithSolidFill(string(theme.Primary)),
		progress.WithWidth(40),
	)
	return GoalListModel{theme: theme, bar: bar, width: 80}
}

// Resize sets the available width.
func (m *GoalListModel) Resize(width int) {
	m.width = width
	m.bar.Width = max(min(width-30, 50), 10)
}

// View renders the goals in v.
func (m GoalListModel) View(v viewmodel.SavingsView, spin string) string {
	if len(v.Goals) == 0 && !v.Status.Loading {
		return WithStatus(m.theme, v.Status, spin, m.theme.Faint.Render(viewmodel.NoGoals))
	}

	blocks := make([]string, len(v.Goals))
	for i, g := range v.Goals {
		deadline := m.theme.Faint.Render(g.DaysLeft)
		if g.Overdue {
			deadline = m.theme.StatusWarning.Render(g.DaysLeft)
		}
		blocks[i] = lipgloss.JoinVertical(lipgloss.Left,
			m.theme.Bold.Render(g.Name)+"  "+deadline,
			m.bar.ViewAs(g.Fraction()),
			m.theme.Subtitle.Render(g.Current+" of "+g.Target),
		)
	}

	return WithStatus(m.theme, v.Status, spin, strings.Join(blocks, "\n\n"))
}
