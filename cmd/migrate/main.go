package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	"glowdesk-be/internal/config"
	"glowdesk-be/internal/db"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

var (
	dbURL         string
	migrationsDir string
	seedFile      string
)

var openDBFunc = func(url string) (*sql.DB, error) {
	if url == "" {
		return db.NewDatabase(config.LoadConfig())
	}
	conn, err := sql.Open("postgres", url)
	if err != nil {
		return nil, err
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping DB: %w", err)
	}
	return conn, nil
}

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "migrate",
		Short:         "Schema migrations and seed data for glowdesk",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&dbURL, "db-url", os.Getenv("DB_URL"),
		"postgres connection URL (falls back to DB_* variables)")
	root.PersistentFlags().StringVar(&migrationsDir, "dir", "./migrations", "path to migrations directory")

	root.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			RunE: withDB(func(cmd *cobra.Command, conn *sql.DB) error {
				files, err := listMigrations(migrationsDir)
				if err != nil {
					return err
				}
				return runMigrationsUp(conn, files, cmd.OutOrStdout())
			}),
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the most recent migration",
			RunE: withDB(func(cmd *cobra.Command, conn *sql.DB) error {
				files, err := listMigrations(migrationsDir)
				if err != nil {
					return err
				}
				return runMigrationsDown(conn, files, cmd.OutOrStdout())
			}),
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show applied and pending migrations",
			RunE: withDB(func(cmd *cobra.Command, conn *sql.DB) error {
				files, err := listMigrations(migrationsDir)
				if err != nil {
					return err
				}
				return printStatus(conn, files, cmd.OutOrStdout())
			}),
		},
		newSeedCmd(),
	)

	return root
}

func newSeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load service categories and the admin account from a YAML catalog",
		RunE: withDB(func(cmd *cobra.Command, conn *sql.DB) error {
			catalog, err := loadCatalog(seedFile)
			if err != nil {
				return err
			}
			return seedCatalog(cmd.Context(), conn, catalog, cmd.OutOrStdout())
		}),
	}
	cmd.Flags().StringVarP(&seedFile, "file", "f", "seed/catalog.yaml", "catalog file")
	return cmd
}

// withDB opens the connection for a subcommand and ensures the
// bookkeeping table exists.
func withDB(fn func(cmd *cobra.Command, conn *sql.DB) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		conn, err := openDBFunc(dbURL)
		if err != nil {
			return fmt.Errorf("failed to connect db: %w", err)
		}
		defer conn.Close()

		if err := ensureSchemaTable(conn); err != nil {
			return err
		}
		return fn(cmd, conn)
	}
}
