package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/progresstrack/progress-api/internal/database"
	"github.com/progresstrack/progress-api/internal/models"
	"github.com/progresstrack/progress-api/internal/repository"
	"github.com/progresstrack/progress-api/internal/service"
	"github.com/spf13/cobra"
)

var (
	userEmail    string
	userPassword string
	userRole     string
	userStdin    bool
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "User management commands",
}

// userCreateCmd bootstraps accounts with a chosen role, typically the first Admin.
var userCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a user with the given role",
	RunE: func(cmd *cobra.Command, args []string) error {
		if userEmail == "" {
			return fmt.Errorf("--email flag is required")
		}

		password := userPassword
		if userStdin {
			scanner := bufio.NewScanner(os.Stdin)
			fmt.Fprint(cmd.OutOrStdout(), "Enter password: ")
			if scanner.Scan() {
				password = strings.TrimSpace(scanner.Text())
			}
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("failed to read password: %w", err)
			}
		}
		if len(password) < 6 {
			return fmt.Errorf("password must be at least 6 characters")
		}

		db, err := database.Connect(cfg.DatabaseURL, debug)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer func() { _ = database.Close(db) }()

		users := service.NewUserService(
			repository.NewUserRepository(db, cfg.StoreTimeout),
			service.NewPasswordHasher(cfg.BcryptCost),
			nil, 0, userRole,
		)
		user, err := users.Create(cmd.Context(), userEmail, password)
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", userEmail, err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created user %s (id %d) with role %s\n", user.Email, user.ID, userRole)
		return nil
	},
}

func init() {
	userCreateCmd.Flags().StringVar(&userEmail, "email", "", "Email address (required)")
	userCreateCmd.Flags().StringVar(&userPassword, "password", "", "Password")
	userCreateCmd.Flags().StringVar(&userRole, "role", models.RoleAdmin, "Role assigned to the user")
	userCreateCmd.Flags().BoolVar(&userStdin, "password-stdin", false, "Read the password from stdin")
	userCmd.AddCommand(userCreateCmd)
}
