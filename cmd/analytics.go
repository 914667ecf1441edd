package cmd

import (
	"github.com/hance08/dompet/internal/app"
	"github.com/hance08/dompet/internal/service"
	"github.com/hance08/dompet/internal/ui"
	"github.com/hance08/dompet/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func NewAnalyticsCmd(a *app.App, theme ui.Theme) *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:     "analytics",
		Aliases: []string{"stats"},
		Short:   "Break down income and expenses by category",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.RequireLogin(cmd.Context()); err != nil {
				return err
			}

			filter := service.DefaultFilter().WithSearch(search)

			spinner, _ := pterm.DefaultSpinner.Start("Loading transactions...")
			agg, err := a.Service.Transaction.Analyze(cmd.Context(), filter)
			if err != nil {
				spinner.Fail("Could not load transactions")
				return err
			}
			spinner.Success("Transactions loaded")

			return views.NewAnalyticsView(theme, a.Formatter).Render(agg)
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "Only include transactions matching this text")
	return cmd
}
