package main

// Run database migrations:
//   go run ./cmd/migrate up
//   go run ./cmd/migrate --driver sqlite --database-url "file:marine.db?_pragma=foreign_keys(1)" status

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"marine-api/internal/shared/config"
	"marine-api/internal/shared/storage/db"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cfg := config.Load()
	var (
		driver      string
		databaseURL string
	)

	cmd := &cobra.Command{
		Use:           "migrate",
		Short:         "Manage the experiments database schema",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&driver, "driver", cfg.DBDriver, "Database driver (postgres, sqlite)")
	cmd.PersistentFlags().StringVar(&databaseURL, "database-url", cfg.DatabaseURL, "Database connection URL")

	withDB := func(fn func(ctx context.Context, conn *sql.DB, d db.Driver) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			d := db.ParseDriver(driver)
			conn, err := db.Connect(ctx, d, databaseURL, db.OptionsFromEnv(db.DefaultMigrateOptions()))
			if err != nil {
				return fmt.Errorf("connect database: %w", err)
			}
			defer conn.Close()
			return fn(ctx, conn, d)
		}
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			RunE: withDB(func(ctx context.Context, conn *sql.DB, d db.Driver) error {
				if err := db.RunMigrations(ctx, conn, d); err != nil {
					return err
				}
				return printVersion(ctx, cmd, conn, d)
			}),
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the most recent migration",
			RunE: withDB(func(ctx context.Context, conn *sql.DB, d db.Driver) error {
				if err := db.RollbackMigration(ctx, conn, d); err != nil {
					return err
				}
				return printVersion(ctx, cmd, conn, d)
			}),
		},
		&cobra.Command{
			Use:   "reset",
			Short: "Roll back every migration",
			RunE: withDB(func(ctx context.Context, conn *sql.DB, d db.Driver) error {
				if err := db.ResetMigrations(ctx, conn, d); err != nil {
					return err
				}
				return printVersion(ctx, cmd, conn, d)
			}),
		},
		&cobra.Command{
			Use:   "status",
			Short: "Print the current schema version",
			RunE: withDB(func(ctx context.Context, conn *sql.DB, d db.Driver) error {
				return printVersion(ctx, cmd, conn, d)
			}),
		},
	)
	return cmd
}

func printVersion(ctx context.Context, cmd *cobra.Command, conn *sql.DB, d db.Driver) error {
	version, err := db.MigrationVersion(ctx, conn, d)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s schema version: %d\n", d, version)
	return nil
}
