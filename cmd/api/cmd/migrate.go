package cmd

import (
	"fmt"

	"github.com/progresstrack/progress-api/internal/database"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the schema and seed the built-in roles",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger()
		if err != nil {
			return fmt.Errorf("failed to build logger: %w", err)
		}
		defer func() { _ = logger.Sync() }()

		db, err := database.Connect(cfg.DatabaseURL, debug)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer func() { _ = database.Close(db) }()

		if err := database.Migrate(cmd.Context(), db); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}

		logger.Info("migrations applied", zap.Int("seeded_roles", len(database.DefaultRoles)))
		return nil
	},
}
