package cmd

import (
	"fmt"

	"github.com/progresstrack/progress-api/internal/database"
	"github.com/progresstrack/progress-api/internal/repository"
	"github.com/progresstrack/progress-api/internal/service"
	"github.com/spf13/cobra"
)

var (
	roleValue       string
	roleDescription string
)

var roleCmd = &cobra.Command{
	Use:   "role",
	Short: "Role management commands",
}

var roleCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a role",
	RunE: func(cmd *cobra.Command, args []string) error {
		if roleValue == "" {
			return fmt.Errorf("--value flag is required")
		}

		db, err := database.Connect(cfg.DatabaseURL, debug)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer func() { _ = database.Close(db) }()

		roles := service.NewRoleService(repository.NewRoleRepository(db, cfg.StoreTimeout))
		role, err := roles.Create(cmd.Context(), roleValue, roleDescription)
		if err != nil {
			return fmt.Errorf("failed to create role %q: %w", roleValue, err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created role %s (id %d)\n", role.Value, role.ID)
		return nil
	},
}

func init() {
	roleCreateCmd.Flags().StringVar(&roleValue, "value", "", "Role value, e.g. Editor (required)")
	roleCreateCmd.Flags().StringVar(&roleDescription, "description", "", "Human readable description")
	roleCmd.AddCommand(roleCreateCmd)
}
