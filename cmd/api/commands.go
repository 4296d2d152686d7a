package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/yigit/airlinehub/internal/bootstrap"
	"github.com/yigit/airlinehub/internal/pkg/logger"
	"github.com/yigit/airlinehub/internal/seed"
	"github.com/yigit/airlinehub/internal/server"
)

var defaultConfigPath = filepath.Join("configs", "config.yaml")

// newRootCmd creates the airlinehub command tree. Running it without a
// subcommand starts the HTTP server.
func newRootCmd() *cobra.Command {
	var configPath string

	serve := func(cmd *cobra.Command, args []string) error {
		srv, err := server.NewServer(configPath)
		if err != nil {
			return fmt.Errorf("failed to initialize server: %w", err)
		}
		if err := srv.Run(); err != nil {
			return err
		}
		logger.Info().Msg("Application finished gracefully.")
		return nil
	}

	cmd := &cobra.Command{
		Use:           "airlinehub",
		Short:         "Airline management API and UI",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve,
	}
	cmd.PersistentFlags().StringVar(&configPath, "config", defaultConfigPath, "path to the YAML config file")

	cmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server (default)",
		Args:  cobra.NoArgs,
		RunE:  serve,
	})
	cmd.AddCommand(newMigrateCmd(&configPath))
	cmd.AddCommand(newSeedCmd(&configPath))

	return cmd
}

func newMigrateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(*configPath)
			if err != nil {
				return err
			}
			database, err := bootstrap.OpenDatabase(cfg, lgr)
			if err != nil {
				return err
			}
			defer database.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
			defer cancel()
			return bootstrap.MigrateDatabase(ctx, database, lgr)
		},
	}
}

func newSeedCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Migrate, then insert the default airports into an empty database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(*configPath)
			if err != nil {
				return err
			}
			database, err := bootstrap.OpenDatabase(cfg, lgr)
			if err != nil {
				return err
			}
			defer database.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
			defer cancel()
			if err := bootstrap.MigrateDatabase(ctx, database, lgr); err != nil {
				return err
			}
			return seed.CreateDefaultData(ctx, database, lgr)
		},
	}
}
