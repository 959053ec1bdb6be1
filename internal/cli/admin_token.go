package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"awareness-hub-service/internal/config"
	transport "awareness-hub-service/internal/transport/http"
)

// NewAdminTokenCmd mints an admin bearer token for the moderation API.
func NewAdminTokenCmd(configPath *string) *cobra.Command {
	var ttl time.Duration
	cmd := &cobra.Command{
		Use:   "admin-token",
		Short: "Mint an admin bearer token",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			if cfg.Admin.JWTSecret == "" {
				return fmt.Errorf("admin jwt secret not configured")
			}
			token, err := transport.NewAdminAuth(cfg.Admin.JWTSecret).GenerateToken(ttl)
			if err != nil {
				return err
			}
			fmt.Println(token)
			return nil
		},
	}
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")
	return cmd
}
