// filepath: internal/cli/migrate.go
package cli

import (
	"fmt"

	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/shinohara-jil/recipe-app/internal/db/migrations"
	"github.com/shinohara-jil/recipe-app/internal/repository"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Database migration tools",
	Long:  `Manage database schema versions. Use subcommands 'up', 'down', or 'status'.`,
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Migrate the database to the most recent version",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigration("up")
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the database by one version",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigration("down")
	},
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Dump the migration status for the current DB",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigration("status")
	},
}

func init() {
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateDownCmd)
	migrateCmd.AddCommand(migrateStatusCmd)
	RootCmd.AddCommand(migrateCmd)
}

func runMigration(command string) error {
	if !cfg.DatabaseConfigured() {
		return fmt.Errorf("no database path configured; set database.path or RECIPEHUB_DATABASE_PATH")
	}

	repo, err := repository.NewRepository(cfg)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer repo.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}

	switch command {
	case "up":
		return goose.Up(repo.DB, ".")
	case "down":
		return goose.Down(repo.DB, ".")
	case "status":
		return goose.Status(repo.DB, ".")
	default:
		return fmt.Errorf("unknown migration command: %s", command)
	}
}
