package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/Veraticus/finboard/internal/api"
	"github.com/Veraticus/finboard/internal/cli"
	"github.com/Veraticus/finboard/internal/common"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard as a JSON API",
		Long: `Start an HTTP server exposing the dashboard state, derived figures and
a server-sent event stream of state changes.

Every category is fetched once on start; POST /api/fetch/:category
triggers further fetches.`,
		RunE: runServe,
	}

	cmd.Flags().String("addr", ":8080", "Address to listen on")
	_ = viper.BindPFlag("server.addr", cmd.Flags().Lookup("addr"))

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	interrupts := cli.NewInterruptHandler(os.Stderr)
	ctx := interrupts.HandleInterrupts(cmd.Context(), "Server", "")

	st, closeStore, err := initStore(ctx, cfg, time.Now(), slog.Default())
	if err != nil {
		return err
	}
	defer func() { _ = closeStore() }()

	go st.FetchAll(ctx)

	srv := api.NewServer(st,
		api.WithLogger(slog.Default()),
		api.WithAllowedOrigins(cfg.Server.AllowedOrigins),
		api.WithBaseContext(ctx),
	)

	common.LogInfo(cli.FormatTitle("Serving dashboard"), common.Fields{
		"addr":    cfg.Server.Addr,
		"dataset": datasetLabel(cfg.Dataset.Path),
	})
	return srv.ListenAndServe(ctx, cfg.Server.Addr)
}

func datasetLabel(path string) string {
	if path == "" {
		return "demo"
	}
	return path
}
