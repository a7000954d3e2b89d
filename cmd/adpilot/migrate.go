package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"adpilot/internal/adapter/postgres"
	"adpilot/internal/db"
)

var (
	seedOwner   string
	seedPostURL string
	seedDemo    bool
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations",
	RunE:  runMigrate,
}

func init() {
	migrateCmd.Flags().BoolVar(&seedDemo, "seed", false, "store a demo draft after migrating")
	migrateCmd.Flags().StringVar(&seedOwner, "owner", "demo", "owner of the demo draft")
	migrateCmd.Flags().StringVar(&seedPostURL, "post-url", "", "post the demo ads point at")
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	logger.Info("migrations applied successfully")

	if !seedDemo {
		return nil
	}

	ctx := cmd.Context()
	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return fmt.Errorf("database connection: %w", err)
	}
	defer pool.Close()

	id, err := db.Seed(ctx, postgres.NewDraftRepository(pool), postgres.NewLabelRepository(pool), seedOwner, seedPostURL)
	if err != nil {
		return err
	}
	logger.Info("demo draft stored", slog.String("id", id))
	return nil
}
