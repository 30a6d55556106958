package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/Veraticus/finboard/internal/cli"
	"github.com/Veraticus/finboard/internal/common"
	"github.com/Veraticus/finboard/internal/config"
	"github.com/Veraticus/finboard/internal/export"
	"github.com/Veraticus/finboard/internal/insights"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export transactions as CSV",
		Long: `Load transactions and write the filtered, sorted list as CSV.

Filter and sort default to the configured transaction view.`,
		RunE: runExport,
	}

	cmd.Flags().String("filter", "", "Only include transactions whose description or category contains this text")
	cmd.Flags().String("sort", "date", "Sort field (date, amount, description, category)")
	cmd.Flags().String("direction", "desc", "Sort direction (asc, desc)")
	cmd.Flags().StringP("output", "o", "", "Write to this file instead of stdout")

	_ = viper.BindPFlag("transactions.filter", cmd.Flags().Lookup("filter"))
	_ = viper.BindPFlag("transactions.sort_field", cmd.Flags().Lookup("sort"))
	_ = viper.BindPFlag("transactions.sort_direction", cmd.Flags().Lookup("direction"))

	return cmd
}

func runExport(cmd *cobra.Command, _ []string) error {
	output, _ := cmd.Flags().GetString("output")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if output == "" {
		return exportTransactions(cmd.Context(), cfg, cmd.OutOrStdout(), time.Now())
	}

	path := config.ExpandPath(output)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := exportTransactions(cmd.Context(), cfg, f, time.Now()); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}

	common.LogInfo(cli.FormatSuccess("Exported transactions"), common.Fields{"file": path})
	return nil
}

// exportTransactions fetches transactions once and writes them as CSV using
// the configured view.
func exportTransactions(ctx context.Context, cfg config.Config, w io.Writer, now time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout())
	defer cancel()

	st, closeStore, err := initStore(ctx, cfg, now, slog.Default())
	if err != nil {
		return err
	}
	defer func() { _ = closeStore() }()

	st.FetchTransactions(ctx)
	snap := st.Snapshot()
	if snap.TransactionsStatus.HasError() {
		return common.NewUserError("Failed to load transactions", errors.New(snap.TransactionsStatus.Err))
	}

	view := snap.View
	rows := insights.FilterAndSort(snap.Transactions, view.Filter, view.SortField, view.SortDirection)
	return export.WriteCSV(w, rows)
}
