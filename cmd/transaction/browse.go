package transaction

import (
	"github.com/hance08/dompet/internal/app"
	"github.com/hance08/dompet/internal/ui"
	"github.com/hance08/dompet/internal/ui/tui"
	"github.com/spf13/cobra"
)

func NewBrowseCmd(a *app.App, theme ui.Theme) *cobra.Command {
	flags := &filterFlags{}

	cmd := &cobra.Command{
		Use:     "browse",
		Aliases: []string{"b"},
		Short:   "Browse transactions interactively",
		Long: `Open a full-screen browser over your transaction history.

Keys: n/p page, / search, s sort field, o sort order, z page size,
r retry, q quit.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.RequireLogin(cmd.Context()); err != nil {
				return err
			}

			filter, err := flags.filter()
			if err != nil {
				return err
			}

			return tui.Run(cmd.Context(), newController(a, filter), theme.Dark)
		},
	}

	flags.bind(cmd, defaultPageSize(a))
	return cmd
}
