package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Veraticus/finboard/internal/cli"
	"github.com/Veraticus/finboard/internal/common"
	"github.com/Veraticus/finboard/internal/model"
	"github.com/Veraticus/finboard/internal/source"
	"github.com/Veraticus/finboard/internal/storage"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func seedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Write the demo dataset to the SQLite dataset file",
		Long: `Create or migrate the dataset at dataset.path and replace its contents
with the demo dataset.

Afterwards every command reads from that file instead of the built-in data.`,
		RunE: runSeed,
	}

	cmd.Flags().String("path", "", "Dataset file (default: dataset.path)")
	_ = viper.BindPFlag("dataset.path", cmd.Flags().Lookup("path"))

	return cmd
}

func runSeed(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.Dataset.UsesDemo() {
		return common.NewUserError("No dataset file configured; pass --path or set dataset.path",
			fmt.Errorf("%w: dataset.path", common.ErrMissingConfig))
	}

	interrupts := cli.NewInterruptHandler(os.Stderr)
	ctx := interrupts.HandleInterrupts(cmd.Context(), "Seeding", "The dataset was left unchanged.")

	ds, err := seedDataset(ctx, cfg.Dataset.Path, os.Stderr, time.Now())
	if err != nil {
		if interrupts.WasInterrupted() {
			return nil
		}
		return err
	}

	common.LogInfo(cli.FormatSuccess("Dataset seeded"), common.Fields{
		"path":         cfg.Dataset.Path,
		"transactions": len(ds.Transactions),
	})
	writeSeedReport(cmd.OutOrStdout(), cfg.Dataset.Path, ds)
	return nil
}

// writeSeedReport summarizes what the dataset file now holds.
func writeSeedReport(w io.Writer, path string, ds model.Dataset) {
	lines := []string{
		"File:           " + path,
		"Account holder: " + ds.Profile.Name,
		"Transactions:   " + strconv.Itoa(len(ds.Transactions)),
		"Savings goals:  " + strconv.Itoa(len(ds.Savings)),
		"Investments:    " + strconv.Itoa(len(ds.Investments)),
	}
	_, _ = fmt.Fprintln(w, cli.RenderBox("Dataset seeded", strings.Join(lines, "\n")))
}

// seedDataset replaces the contents of the dataset at path with the demo
// dataset, drawing a progress bar on w. It returns what was read back.
func seedDataset(ctx context.Context, path string, w io.Writer, now time.Time) (model.Dataset, error) {
	db, err := storage.Open(ctx, path)
	if err != nil {
		return model.Dataset{}, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer func() { _ = db.Close() }()

	ds := source.Demo(now)
	bar := progressbar.NewOptions(storage.DatasetSize(ds),
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]Seeding dataset...[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			_, _ = fmt.Fprintln(w)
		}),
	)

	err = db.SaveDataset(ctx, ds, func(done, _ int) {
		if setErr := bar.Set(done); setErr != nil {
			common.LogDebug("Failed to update progress bar", common.Fields{"error": setErr.Error()})
		}
	})
	if err != nil {
		return model.Dataset{}, fmt.Errorf("failed to seed dataset: %w", err)
	}

	saved, err := db.LoadDataset(ctx)
	if err != nil {
		return model.Dataset{}, fmt.Errorf("failed to read back dataset: %w", err)
	}
	return saved, nil
}
