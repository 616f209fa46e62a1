package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"activation-engine/internal/auth"
)

func newTokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a bearer token for the API",
		Long: `Sign an HS256 token with $ACTIVATION_JWT_SECRET.

Examples:
  activation token --subject mobile-app --ttl 720h`,
		Args: cobra.NoArgs,
		RunE: runToken,
	}
	cmd.Flags().String("subject", "", "token subject (required)")
	cmd.Flags().Duration("ttl", auth.DefaultTokenTTL, "token lifetime")
	_ = cmd.MarkFlagRequired("subject")
	return cmd
}

func runToken(cmd *cobra.Command, _ []string) error {
	rt := loadApp(cmd)
	if !rt.cfg.AuthEnabled() {
		return errors.New("ACTIVATION_JWT_SECRET is not set")
	}

	subject, _ := cmd.Flags().GetString("subject")
	ttl, _ := cmd.Flags().GetDuration("ttl")

	tok, err := auth.GenerateToken([]byte(rt.cfg.JWTSecret), subject, ttl)
	if err != nil {
		return fmt.Errorf("signing token: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), tok)
	return err
}
