package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"intern-match/internal/config"
	"intern-match/internal/database/migration"
	"intern-match/internal/database/postgres"
	"intern-match/migrations"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply or inspect Postgres schema migrations using the DB_* environment",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply pending migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withMigrationDB(cmd, func(ctx context.Context, r migration.Runner, db *sql.DB) error {
			return r.Run(ctx, db)
		})
	},
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "List migrations and whether they are applied",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withMigrationDB(cmd, func(ctx context.Context, r migration.Runner, db *sql.DB) error {
			statuses, err := r.Status(ctx, db)
			if err != nil {
				return err
			}
			return printStatuses(cmd.OutOrStdout(), statuses)
		})
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd, migrateStatusCmd)

	migrateCmd.PersistentFlags().String("dir", "", "migrations directory, defaults to MIGRATIONS_DIR or the embedded files")
	migrateCmd.PersistentFlags().Duration("timeout", time.Minute, "overall timeout")
}

func withMigrationDB(cmd *cobra.Command, fn func(context.Context, migration.Runner, *sql.DB) error) error {
	dbCfg, dir, err := config.LoadDatabase()
	if err != nil {
		return err
	}
	if !dbCfg.Enabled() {
		return fmt.Errorf("DB_HOST is not set")
	}
	if flagDir, _ := cmd.Flags().GetString("dir"); flagDir != "" {
		dir = flagDir
	}
	timeout, _ := cmd.Flags().GetDuration("timeout")

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	db, err := postgres.Connect(ctx, dbCfg)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer db.Close()

	runner := migration.Runner{FS: migrations.Files, Logger: newLogger(cmd)}
	if dir != "" {
		runner = migration.Runner{Dir: dir, Logger: newLogger(cmd)}
	}
	return fn(ctx, runner, db.SQLDB())
}

func printStatuses(w io.Writer, statuses []migration.Status) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "VERSION\tNAME\tSTATE\tAPPLIED AT")
	for _, s := range statuses {
		state, at := "pending", "-"
		if s.Applied {
			state = "applied"
			at = s.AppliedAt.UTC().Format(time.RFC3339)
		}
		if s.Drifted {
			state = "changed since applied"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", s.Version, s.Name, state, at)
	}
	return tw.Flush()
}
