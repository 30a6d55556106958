package components

import (
	"fmt"
	"strings"

	"github.com/Veraticus/finboard/internal/model"
	"github.com/Veraticus/finboard/internal/tui/themes"
	"github.com/Veraticus/finboard/internal/tui/viewmodel"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TransactionListModel shows the filtered and sorted transactions.
type TransactionListModel struct {
	theme       themes.Theme
	view        viewmodel.TransactionListView
	filterInput textinput.Model
	table       table.Model
	width       int
	height      int
	filtering   bool
}

// NewTransactionList creates an empty transaction list.
func NewTransactionList(theme themes.Theme) TransactionListModel {
	t := table.New(
		table.WithColumns(columns(80)),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Bold(true)
	s.Selected = theme.Selected
	t.SetStyles(s)

	input := textinput.New()
	input.Placeholder = "Search description or category..."
	input.Prompt = "/ "
	input.CharLimit = 64

	return TransactionListModel{
		theme:       theme,
		table:       t,
		filterInput: input,
		width:       80,
		height:      24,
	}
}

func columns(width int) []table.Column {
	fixed := 14 + 18 + 14
	desc := max(width-fixed-8, 16)
	return []table.Column{
		{Title: "Date", Width: 14},
		{Title: "Description", Width: desc},
		{Title: "Category", Width: 18},
		{Title: "Amount", Width: 14},
	}
}

// SetView replaces the rows shown.
func (m *TransactionListModel) SetView(v viewmodel.TransactionListView) {
	m.view = v
	rows := make([]table.Row, len(v.Rows))
	for i, r := range v.Rows {
		rows[i] = table.Row{r.Date, r.Description, r.Category, r.Amount}
	}
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(max(len(rows)-1, 0))
	}
	if !m.filtering {
		m.filterInput.SetValue(v.Filter)
	}
}

// Resize sets the available space.
func (m *TransactionListModel) Resize(width, height int) {
	m.width = width
	m.height = height
	m.table.SetColumns(columns(width))
	m.table.SetHeight(max(height-4, 3))
}

// Filtering reports whether the filter input has focus.
func (m TransactionListModel) Filtering() bool {
	return m.filtering
}

// StartFilter focuses the filter input.
func (m *TransactionListModel) StartFilter() tea.Cmd {
	m.filtering = true
	m.table.Blur()
	return m.filterInput.Focus()
}

func (m *TransactionListModel) stopFilter() {
	m.filtering = false
	m.filterInput.Blur()
	m.table.Focus()
}

// Update handles navigation and filter editing.
func (m TransactionListModel) Update(msg tea.Msg) (TransactionListModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && m.filtering {
		return m.handleFilterKey(key)
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m TransactionListModel) handleFilterKey(msg tea.KeyMsg) (TransactionListModel, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.stopFilter()
		return m, emit(FilterClosedMsg{})

	case "esc":
		m.stopFilter()
		m.filterInput.SetValue("")
		return m, tea.Batch(emit(FilterChangedMsg{}), emit(FilterClosedMsg{}))
	}

	before := m.filterInput.Value()
	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	if after := m.filterInput.Value(); after != before {
		return m, tea.Batch(cmd, emit(FilterChangedMsg{Text: after}))
	}
	return m, cmd
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// View renders the list.
func (m TransactionListModel) View() string {
	header := m.renderHeader()

	var body string
	if m.view.IsEmpty() {
		body = m.theme.Faint.Render(viewmodel.NoTransactions)
	} else {
		body = m.colorAmounts(m.table.View())
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body)
}

func (m TransactionListModel) renderHeader() string {
	arrow := "↓"
	if m.view.SortDirection == model.SortAsc {
		arrow = "↑"
	}
	sortLabel := "unsorted"
	if m.view.SortField != model.SortNone {
		sortLabel = fmt.Sprintf("sorted by %s %s", m.view.SortField, arrow)
	}
	counts := fmt.Sprintf("%d of %d", len(m.view.Rows), m.view.Total)

	var filter string
	switch {
	case m.filtering:
		filter = m.filterInput.View()
	case m.view.Filter != "":
		filter = m.theme.Subtitle.Render("filter: " + m.view.Filter)
	default:
		filter = m.theme.Faint.Render("press / to search")
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		filter,
		"  ",
		m.theme.Faint.Render(counts+" · "+sortLabel),
	)
}

// colorAmounts tints signed amounts without disturbing table alignment.
func (m TransactionListModel) colorAmounts(rendered string) string {
	lines := strings.Split(rendered, "\n")
	for i, line := range lines {
		for _, r := range m.view.Rows {
			if !strings.Contains(line, r.Amount) {
				continue
			}
			style := m.theme.Negative
			if r.Deposit {
				style = m.theme.Positive
			}
			lines[i] = strings.Replace(line, r.Amount, style.Render(r.Amount), 1)
			break
		}
	}
	return strings.Join(lines, "\n")
}
