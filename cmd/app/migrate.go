package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vibe-gaming/registration/internal/config"
	"github.com/vibe-gaming/registration/internal/db"
	"github.com/vibe-gaming/registration/pkg/logger"
)

// migrateCmd represents the migrate command.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all up migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDatabase(cmd, db.MigrateUp)
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the latest migration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDatabase(cmd, db.MigrateDown)
	},
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print migration status",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDatabase(cmd, db.MigrateStatus)
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd, migrateStatusCmd)
}

func withDatabase(cmd *cobra.Command, run func(ctx context.Context, conn *sql.DB) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger.SetupLogger(cfg.Env, cfg.LogLevel)
	defer logger.Sync()

	conn, err := db.New(cfg.Database)
	if err != nil {
		return fmt.Errorf("mysql connect failed: %w", err)
	}
	defer conn.Close()

	return run(cmd.Context(), conn.DB)
}
