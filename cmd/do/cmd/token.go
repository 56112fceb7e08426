package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thrivelog/thrivelog/internal/config"
	"github.com/thrivelog/thrivelog/internal/db"
	"github.com/thrivelog/thrivelog/internal/repository"
	"github.com/thrivelog/thrivelog/internal/service"
)

func TokenCmd() *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "token <email>",
		Short: "Mint an API token for a local user, creating the user if needed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if cfg.IsProduction() {
				return fmt.Errorf("refusing to mint tokens with APP_ENV=production")
			}

			conn, err := db.Init(cfg.DBDriver, cfg.DBConnection)
			if err != nil {
				return err
			}
			defer func() { _ = db.Close(conn) }()

			if migrate {
				err = db.RunMigrations(conn.DB, cfg.DBDriver)
				if err != nil {
					return err
				}
			}

			authService := service.NewAuthService(repository.NewUserRepository(conn), cfg.JWTSecret, false, cfg.JWTExpiry)

			user, err := authService.UserForToken(args[0])
			if err != nil {
				return err
			}

			token, err := authService.GenerateJWT(user)
			if err != nil {
				return fmt.Errorf("failed to generate jwt: %w", err)
			}

			fmt.Fprintf(cmd.ErrOrStderr(), "user %s (%s), expires %s\n", user.ID, user.Email, authService.TokenExpiry().Format("2006-01-02 15:04"))
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().BoolVar(&migrate, "migrate", true, "apply pending migrations first")
	return cmd
}
