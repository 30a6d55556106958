package tui

import (
	"context"

	"github.com/Veraticus/finboard/internal/model"
	"github.com/Veraticus/finboard/internal/store"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"
)

// stateMsg carries a new store snapshot.
type stateMsg struct {
	state store.State
}

// watchClosedMsg is sent once the store's watch channel is closed.
type watchClosedMsg struct{}

// fetchDoneMsg is sent when a fetch started from the UI has settled.
type fetchDoneMsg struct {
	categories []model.Category
}

// waitForState blocks until the store publishes the next snapshot.
func waitForState(updates <-chan store.State) tea.Cmd {
	return func() tea.Msg {
		st, ok := <-updates
		if !ok {
			return watchClosedMsg{}
		}
		return stateMsg{state: st}
	}
}

// fetchCmd re-fetches the given categories concurrently.
func fetchCmd(ctx context.Context, s *store.Store, categories ...model.Category) tea.Cmd {
	if len(categories) == 0 {
		return nil
	}
	return func() tea.Msg {
		var g errgroup.Group
		for _, c := range categories {
			g.Go(func() error {
				s.Retry(ctx, c)
				return nil
			})
		}
		_ = g.Wait()
		return fetchDoneMsg{categories: categories}
	}
}
