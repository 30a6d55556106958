package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts.
type KeyMap struct {
	// Navigation
	Up      key.Binding
	Down    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Tab1    key.Binding
	Tab2    key.Binding
	Tab3    key.Binding
	Tab4    key.Binding

	// Transactions
	Search        key.Binding
	SortDate      key.Binding
	SortAmount    key.Binding
	SortDesc      key.Binding
	SortCategory  key.Binding
	FlipDirection key.Binding

	// Application
	Retry      key.Binding
	RefreshAll key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("Tab", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("Shift+Tab", "previous tab"),
		),
		Tab1: key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "overview")),
		Tab2: key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "transactions")),
		Tab3: key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "savings")),
		Tab4: key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "investments")),

		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		SortDate: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "sort by date"),
		),
		SortAmount: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "sort by amount"),
		),
		SortDesc: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort by description"),
		),
		SortCategory: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "sort by category"),
		),
		FlipDirection: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "flip order"),
		),

		Retry: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "retry"),
		),
		RefreshAll: key.NewBinding(
			key.WithKeys("R", "ctrl+r"),
			key.WithHelp("R", "refresh all"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.Retry, k.Help, k.Quit}
}

// FullHelp returns all key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextTab, k.PrevTab, k.Tab1, k.Tab2, k.Tab3, k.Tab4},
		{k.Up, k.Down, k.Search, k.FlipDirection},
		{k.SortDate, k.SortAmount, k.SortDesc, k.SortCategory},
		{k.Retry, k.RefreshAll, k.Help, k.Quit},
	}
}
