package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/Veraticus/finboard/internal/store"
	tea "github.com/charmbracelet/bubbletea"
)

// Run shows the dashboard until the user quits or ctx is cancelled.
func Run(ctx context.Context, s *store.Store, opts ...Option) error {
	if s == nil {
		return fmt.Errorf("store is required")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m := New(ctx, s, opts...)

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if m.config.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}

	if _, err := tea.NewProgram(m, programOpts...).Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
