package cmd

import (
	"time"

	"github.com/hance08/dompet/internal/app"
	"github.com/hance08/dompet/internal/ui"
	"github.com/hance08/dompet/internal/ui/views"
	"github.com/spf13/cobra"
)

func NewWhoamiCmd(a *app.App, theme ui.Theme) *cobra.Command {
	return &cobra.Command{
		Use:     "whoami",
		Aliases: []string{"profile", "me"},
		Short:   "Show the signed-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := a.RequireLogin(cmd.Context())
			if err != nil {
				return err
			}

			var expiresAt time.Time
			if claims, ok := a.Session.TokenClaims(); ok {
				expiresAt = claims.ExpiresAt
			}
			return views.RenderProfile(theme, user, a.Formatter, expiresAt)
		},
	}
}
