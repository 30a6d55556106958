package tui

import (
	"time"

	"github.com/Veraticus/finboard/internal/tui/themes"
)

// Config holds TUI configuration.
type Config struct {
	Theme        themes.Theme
	Clock        func() time.Time
	Width        int
	Height       int
	FetchOnStart bool
	AltScreen    bool
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:        themes.Default,
		Clock:        time.Now,
		Width:        100,
		Height:       30,
		FetchOnStart: true,
		AltScreen:    true,
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithClock overrides the time source used for date-relative figures.
func WithClock(clock func() time.Time) Option {
	return func(c *Config) {
		c.Clock = clock
	}
}

// WithFetchOnStart controls whether every category is fetched when the
// program starts.
func WithFetchOnStart(enabled bool) Option {
	return func(c *Config) {
		c.FetchOnStart = enabled
	}
}

// WithAltScreen controls whether the program takes over the full terminal.
func WithAltScreen(enabled bool) Option {
	return func(c *Config) {
		c.AltScreen = enabled
	}
}
