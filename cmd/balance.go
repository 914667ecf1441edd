package cmd

import (
	"github.com/hance08/dompet/internal/app"
	"github.com/hance08/dompet/internal/ui"
	"github.com/hance08/dompet/internal/ui/views"
	"github.com/spf13/cobra"
)

func NewBalanceCmd(a *app.App, theme ui.Theme) *cobra.Command {
	return &cobra.Command{
		Use:     "balance",
		Aliases: []string{"bal"},
		Short:   "Show your current wallet balance",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.RequireLogin(cmd.Context()); err != nil {
				return err
			}

			wallet, err := a.Service.Wallet.RefreshBalance(cmd.Context())
			if err != nil {
				return err
			}
			views.RenderBalance(theme, wallet, a.Formatter)
			return nil
		},
	}
}

func NewRecipientsCmd(a *app.App, theme ui.Theme) *cobra.Command {
	return &cobra.Command{
		Use:   "recipients",
		Short: "List wallets you can transfer to",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.RequireLogin(cmd.Context()); err != nil {
				return err
			}

			wallets, err := a.Service.Wallet.ListRecipients(cmd.Context())
			if err != nil {
				return err
			}
			return views.RenderRecipients(theme, wallets)
		},
	}
}
