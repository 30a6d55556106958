package main

import (
	"log/slog"
	"time"

	"github.com/Veraticus/finboard/internal/common"
	"github.com/Veraticus/finboard/internal/tui"
	"github.com/Veraticus/finboard/internal/tui/themes"
	"github.com/spf13/cobra"
)

func dashboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Open the interactive dashboard",
		Long: `Show the overview, transactions, savings goals and investments in a
full-screen terminal dashboard.

Every category loads on start. A failed category can be retried with 'r'.`,
		RunE: runDashboard,
	}

	cmd.Flags().String("theme", "default", "Color theme (default, catppuccin-mocha)")
	cmd.Flags().Bool("inline", false, "Render inline instead of using the alternate screen")

	return cmd
}

func runDashboard(cmd *cobra.Command, _ []string) error {
	themeName, _ := cmd.Flags().GetString("theme")
	inline, _ := cmd.Flags().GetBool("inline")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The dashboard owns the terminal, so nothing may log to stderr meanwhile.
	previous := slog.Default()
	slog.SetDefault(common.DiscardLogger())
	defer slog.SetDefault(previous)

	ctx := cmd.Context()
	st, closeStore, err := initStore(ctx, cfg, time.Now(), common.DiscardLogger())
	if err != nil {
		return err
	}
	defer func() { _ = closeStore() }()

	return tui.Run(ctx, st,
		tui.WithTheme(themes.GetTheme(themeName)),
		tui.WithAltScreen(!inline),
		tui.WithFetchOnStart(true),
	)
}
