package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/srs-review-backend/internal/auth"
	"github.com/heartmarshall/srs-review-backend/internal/config"
	"github.com/heartmarshall/srs-review-backend/pkg/ctxutil"
)

var (
	tokenUser string
	tokenRole string
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue a session token for a user",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := uuid.Parse(tokenUser)
		if err != nil {
			return fmt.Errorf("--user must be a UUID: %w", err)
		}
		if tokenRole != "" && tokenRole != ctxutil.RoleAdmin {
			return fmt.Errorf("--role must be empty or %q", ctxutil.RoleAdmin)
		}

		cfg, err := config.LoadFrom(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		tm, err := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.SessionTTL)
		if err != nil {
			return err
		}

		token, err := tm.Issue(userID, tokenRole)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)

	tokenCmd.Flags().StringVarP(&tokenUser, "user", "u", "", "User ID (UUID)")
	tokenCmd.Flags().StringVarP(&tokenRole, "role", "r", "", "Role claim (empty or admin)")
	_ = tokenCmd.MarkFlagRequired("user")
}
