// Package tui implements the interactive terminal dashboard.
package tui

import (
	"context"

	"github.com/Veraticus/finboard/internal/insights"
	"github.com/Veraticus/finboard/internal/model"
	"github.com/Veraticus/finboard/internal/store"
	"github.com/Veraticus/finboard/internal/tui/components"
	"github.com/Veraticus/finboard/internal/tui/themes"
	"github.com/Veraticus/finboard/internal/tui/viewmodel"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Tab identifies a dashboard page.
type Tab int

// Dashboard pages, in display order.
const (
	TabOverview Tab = iota
	TabTransactions
	TabSavings
	TabInvestments
)

// Tabs lists every page in display order.
var Tabs = []Tab{TabOverview, TabTransactions, TabSavings, TabInvestments}

func (t Tab) String() string {
	switch t {
	case TabOverview:
		return "Overview"
	case TabTransactions:
		return "Transactions"
	case TabSavings:
		return "Savings"
	case TabInvestments:
		return "Investments"
	default:
		return "Unknown"
	}
}

// categories returns the data categories a page depends on.
func (t Tab) categories() []model.Category {
	switch t {
	case TabOverview:
		return []model.Category{model.CategoryUser, model.CategoryTransactions}
	case TabTransactions:
		return []model.Category{model.CategoryTransactions}
	case TabSavings:
		return []model.Category{model.CategorySavings}
	case TabInvestments:
		return []model.Category{model.CategoryInvestments}
	default:
		return nil
	}
}

// Model holds the main TUI state.
type Model struct {
	ctx          context.Context
	store        *store.Store
	updates      <-chan store.State
	theme        themes.Theme
	config       Config
	keymap       KeyMap
	help         help.Model
	spinner      spinner.Model
	transactions components.TransactionListModel
	goals        components.GoalListModel
	state        store.State
	dash         viewmodel.Dashboard
	tab          Tab
	width        int
	height       int
	quitting     bool
}

// New creates the dashboard model. The store is watched until ctx is done.
func New(ctx context.Context, s *store.Store, opts ...Option) Model {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	spin := spinner.New(spinner.WithSpinner(spinner.Dot))
	spin.Style = spin.Style.Foreground(cfg.Theme.Primary)

	m := Model{
		ctx:          ctx,
		store:        s,
		updates:      s.Watch(ctx),
		theme:        cfg.Theme,
		config:       cfg,
		keymap:       DefaultKeyMap(),
		help:         help.New(),
		spinner:      spin,
		transactions: components.NewTransactionList(cfg.Theme),
		goals:        components.NewGoalList(cfg.Theme),
	}
	m.resize(cfg.Width, cfg.Height)
	m.applyState(s.Snapshot())
	return m
}

// Init starts the spinner, the store watch and the initial fetch.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick, waitForState(m.updates)}
	if m.config.FetchOnStart {
		cmds = append(cmds, fetchCmd(m.ctx, m.store, model.Categories...))
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case stateMsg:
		m.applyState(msg.state)
		return m, waitForState(m.updates)

	case watchClosedMsg, fetchDoneMsg:
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case components.FilterChangedMsg:
		m.store.SetTransactionFilter(msg.Text)
		return m, nil

	case components.FilterClosedMsg:
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.tab == TabTransactions && m.transactions.Filtering() {
		var cmd tea.Cmd
		m.transactions, cmd = m.transactions.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keymap.NextTab):
		m.tab = Tabs[(int(m.tab)+1)%len(Tabs)]
		return m, nil

	case key.Matches(msg, m.keymap.PrevTab):
		m.tab = Tabs[(int(m.tab)+len(Tabs)-1)%len(Tabs)]
		return m, nil

	case key.Matches(msg, m.keymap.Tab1):
		m.tab = TabOverview
		return m, nil
	case key.Matches(msg, m.keymap.Tab2):
		m.tab = TabTransactions
		return m, nil
	case key.Matches(msg, m.keymap.Tab3):
		m.tab = TabSavings
		return m, nil
	case key.Matches(msg, m.keymap.Tab4):
		m.tab = TabInvestments
		return m, nil

	case key.Matches(msg, m.keymap.Retry):
		return m, fetchCmd(m.ctx, m.store, m.failedCategories()...)

	case key.Matches(msg, m.keymap.RefreshAll):
		return m, fetchCmd(m.ctx, m.store, model.Categories...)
	}

	if m.tab == TabTransactions {
		return m.handleTransactionKey(msg)
	}
	return m, nil
}

func (m Model) handleTransactionKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	view := m.state.View

	sortBy := func(field model.SortField) {
		next, direction := insights.NextSort(view.SortField, view.SortDirection, field)
		m.store.SetTransactionSort(next, direction)
	}

	switch {
	case key.Matches(msg, m.keymap.Search):
		return m, m.transactions.StartFilter()
	case key.Matches(msg, m.keymap.SortDate):
		sortBy(model.SortDate)
	case key.Matches(msg, m.keymap.SortAmount):
		sortBy(model.SortAmount)
	case key.Matches(msg, m.keymap.SortDesc):
		sortBy(model.SortDescription)
	case key.Matches(msg, m.keymap.SortCategory):
		sortBy(model.SortCategory)
	case key.Matches(msg, m.keymap.FlipDirection):
		m.store.SetTransactionSort(view.SortField, view.SortDirection.Toggle())
	default:
		var cmd tea.Cmd
		m.transactions, cmd = m.transactions.Update(msg)
		return m, cmd
	}
	return m, nil
}

// failedCategories returns the current page's categories whose last fetch failed.
func (m Model) failedCategories() []model.Category {
	var failed []model.Category
	for _, c := range m.tab.categories() {
		if m.state.Status(c).HasError() {
			failed = append(failed, c)
		}
	}
	return failed
}

func (m *Model) applyState(st store.State) {
	m.state = st
	m.dash = viewmodel.Build(st, m.config.Clock())
	m.transactions.SetView(m.dash.Transactions)
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
	m.transactions.Resize(width-2, height-6)
	m.goals.Resize(width - 2)
}

// ActiveTab returns the page currently shown.
func (m Model) ActiveTab() Tab {
	return m.tab
}

// State returns the last snapshot the model rendered.
func (m Model) State() store.State {
	return m.state
}
