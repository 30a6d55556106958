package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/Veraticus/finboard/internal/cli"
	"github.com/Veraticus/finboard/internal/common"
	"github.com/Veraticus/finboard/internal/config"
	"github.com/spf13/cobra"
)

func summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print a one-shot dashboard report",
		Long: `Load every category once and print the overview, recent transactions,
savings goals and portfolio.

Categories that fail to load are reported inline. The command only fails
when nothing could be loaded.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return writeSummary(cmd.Context(), cfg, cmd.OutOrStdout(), time.Now())
		},
	}
}

func writeSummary(ctx context.Context, cfg config.Config, w io.Writer, now time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout())
	defer cancel()

	st, closeStore, err := initStore(ctx, cfg, now, slog.Default())
	if err != nil {
		return err
	}
	defer func() { _ = closeStore() }()

	st.FetchAll(ctx)
	snap := st.Snapshot()

	if err := cli.WriteSummary(w, snap, now); err != nil {
		return err
	}
	if cli.AllFailed(snap) {
		return common.NewUserError("Every category failed to load", common.ErrFetchFailed)
	}
	return nil
}
