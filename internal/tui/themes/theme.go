// Package themes holds the dashboard color schemes.
package themes

import (
	"github.com/Veraticus/finboard/internal/model"
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the visual style for the TUI.
type Theme struct {
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Normal        lipgloss.Style
	Bold          lipgloss.Style
	Faint         lipgloss.Style
	Selected      lipgloss.Style
	TabActive     lipgloss.Style
	TabInactive   lipgloss.Style
	Card          lipgloss.Style
	ErrorBox      lipgloss.Style
	StatusSuccess lipgloss.Style
	StatusWarning lipgloss.Style
	StatusError   lipgloss.Style
	StatusPending lipgloss.Style
	Positive      lipgloss.Style
	Negative      lipgloss.Style
	Primary       lipgloss.Color
	Secondary     lipgloss.Color
	Success       lipgloss.Color
	Warning       lipgloss.Color
	Error         lipgloss.Color
	Info          lipgloss.Color
	Foreground    lipgloss.Color
	Subtle        lipgloss.Color
	Border        lipgloss.Color
	Muted         lipgloss.Color
}

type palette struct {
	primary, secondary, success, warning, errorColor, info lipgloss.Color
	foreground, subtle, border, muted, selectedText        lipgloss.Color
}

func newTheme(p palette) Theme {
	return Theme{
		Primary:    p.primary,
		Secondary:  p.secondary,
		Success:    p.success,
		Warning:    p.warning,
		Error:      p.errorColor,
		Info:       p.info,
		Foreground: p.foreground,
		Subtle:     p.subtle,
		Border:     p.border,
		Muted:      p.muted,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.foreground).
			MarginBottom(1),
		Subtitle: lipgloss.NewStyle().
			Foreground(p.subtle),
		Normal: lipgloss.NewStyle().
			Foreground(p.foreground),
		Bold: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.foreground),
		Faint: lipgloss.NewStyle().
			Foreground(p.muted),
		Selected: lipgloss.NewStyle().
			Background(p.primary).
			Foreground(p.selectedText).
			Bold(true),
		TabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.selectedText).
			Background(p.primary).
			Padding(0, 2),
		TabInactive: lipgloss.NewStyle().
			Foreground(p.subtle).
			Padding(0, 2),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.border).
			Padding(0, 1),
		ErrorBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.errorColor).
			Foreground(p.errorColor).
			Padding(0, 1),

		StatusSuccess: lipgloss.NewStyle().
			Foreground(p.success).
			Bold(true),
		StatusWarning: lipgloss.NewStyle().
			Foreground(p.warning).
			Bold(true),
		StatusError: lipgloss.NewStyle().
			Foreground(p.errorColor).
			Bold(true),
		StatusPending: lipgloss.NewStyle().
			Foreground(p.muted).
			Italic(true),
		Positive: lipgloss.NewStyle().
			Foreground(p.success),
		Negative: lipgloss.NewStyle().
			Foreground(p.errorColor),
	}
}

// Default is the default theme.
var Default = newTheme(palette{
	primary:      lipgloss.Color("#4f46e5"),
	secondary:    lipgloss.Color("#818cf8"),
	success:      lipgloss.Color("#10b981"),
	warning:      lipgloss.Color("#f59e0b"),
	errorColor:   lipgloss.Color("#ef4444"),
	info:         lipgloss.Color("#3b82f6"),
	foreground:   lipgloss.Color("#fafafa"),
	subtle:       lipgloss.Color("#a3a3a3"),
	border:       lipgloss.Color("#404040"),
	muted:        lipgloss.Color("#737373"),
	selectedText: lipgloss.Color("#fafafa"),
})

// CatppuccinMocha is the Catppuccin Mocha theme.
var CatppuccinMocha = newTheme(palette{
	primary:      lipgloss.Color("#cba6f7"),
	secondary:    lipgloss.Color("#f5c2e7"),
	success:      lipgloss.Color("#a6e3a1"),
	warning:      lipgloss.Color("#f9e2af"),
	errorColor:   lipgloss.Color("#f38ba8"),
	info:         lipgloss.Color("#89dceb"),
	foreground:   lipgloss.Color("#cdd6f4"),
	subtle:       lipgloss.Color("#a6adc8"),
	border:       lipgloss.Color("#45475a"),
	muted:        lipgloss.Color("#6c7086"),
	selectedText: lipgloss.Color("#1e1e2e"),
})

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	switch name {
	case "catppuccin-mocha":
		return CatppuccinMocha
	default:
		return Default
	}
}

// AssetColors maps each asset type to its chart color.
var AssetColors = map[model.AssetType]lipgloss.Color{
	model.AssetStocks:     "#4f46e5",
	model.AssetBonds:      "#0ea5e9",
	model.AssetCrypto:     "#f59e0b",
	model.AssetRealEstate: "#10b981",
	model.AssetCash:       "#6b7280",
	model.AssetOther:      "#8b5cf6",
}

// AssetColor returns the color for t, using the "other" color for unknown types.
func AssetColor(t model.AssetType) lipgloss.Color {
	if c, ok := AssetColors[t]; ok {
		return c
	}
	return AssetColors[model.AssetOther]
}

// PerformanceColor returns the color used to render an ROI bucket.
func PerformanceColor(p model.Performance) lipgloss.Color {
	switch p {
	case model.PerformanceStrongPositive:
		return "#22c55e"
	case model.PerformanceWeakPositive:
		return "#4ade80"
	case model.PerformanceWeakNegative:
		return "#f87171"
	case model.PerformanceStrongNegative:
		return "#ef4444"
	default:
		return "#6b7280"
	}
}

// CategoryPalette is cycled through for spending categories.
var CategoryPalette = []lipgloss.Color{
	"#0088FE", "#00C49F", "#FFBB28", "#FF8042", "#8884d8", "#82ca9d",
}

// CategoryColor returns the palette color for the i-th category.
func CategoryColor(i int) lipgloss.Color {
	if i < 0 {
		i = -i
	}
	return CategoryPalette[i%len(CategoryPalette)]
}

// CategoryIcons maps transaction categories to icons.
var CategoryIcons = map[string]string{
	"Income":     "💰",
	"Food":       "🥬",
	"Groceries":  "🥬",
	"Dining":     "🍕",
	"Utilities":  "💡",
	"Investment": "📈",
	"Savings":    "🏦",
	"Transport":  "🚗",
	"Shopping":   "🛍️",
	"Other":      "📦",
}

// GetCategoryIcon returns an icon for a category.
func GetCategoryIcon(category string) string {
	if icon, ok := CategoryIcons[category]; ok {
		return icon
	}
	return "📦"
}
