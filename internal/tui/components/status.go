package components

import (
	"github.com/Veraticus/finboard/internal/tui/themes"
	"github.com/Veraticus/finboard/internal/tui/viewmodel"
	"github.com/charmbracelet/lipgloss"
)

// RenderStatus returns the loading or error banner for a section, or "" when
// the section has neither. spin is the current spinner frame.
func RenderStatus(theme themes.Theme, status viewmodel.SectionStatus, spin string) string {
	switch {
	case status.Failed():
		return theme.ErrorBox.Render(lipgloss.JoinVertical(lipgloss.Left,
			theme.StatusError.Render(status.Heading()),
			status.Error,
			theme.Faint.Render("press r to retry"),
		))
	case status.Loading:
		return theme.StatusPending.Render(spin + " Loading " + status.Category.String() + "...")
	default:
		return ""
	}
}

// WithStatus stacks the status banner above body.
func WithStatus(theme themes.Theme, status viewmodel.SectionStatus, spin, body string) string {
	banner := RenderStatus(theme, status, spin)
	if banner == "" {
		return body
	}
	return lipgloss.JoinVertical(lipgloss.Left, banner, "", body)
}
