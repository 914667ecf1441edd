package transaction

import (
	"github.com/hance08/dompet/internal/app"
	"github.com/hance08/dompet/internal/ui"
	"github.com/hance08/dompet/internal/ui/listing"
	"github.com/hance08/dompet/internal/ui/views"
	"github.com/spf13/cobra"
)

type listRunner struct {
	app   *app.App
	theme ui.Theme
	flags *filterFlags
	cmd   *cobra.Command
}

func NewListCmd(a *app.App, theme ui.Theme) *cobra.Command {
	flags := &filterFlags{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "l"},
		Short:   "List one page of transactions",
		Long: `List one page of your transaction history.

Each row shows the date, type, the other party, category, notes and the
signed amount. Credits are green and debits red.

	Examples:
	dompet tx list
	dompet tx list --page 2 --size 20
	dompet tx list --search coffee --sort amount --order asc`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &listRunner{
				app:   a,
				theme: theme,
				flags: flags,
				cmd:   cmd,
			}
			return runner.Run()
		},
	}

	flags.bind(cmd, defaultPageSize(a))
	return cmd
}

func (r *listRunner) Run() error {
	if _, err := r.app.RequireLogin(r.cmd.Context()); err != nil {
		return err
	}

	filter, err := r.flags.filter()
	if err != nil {
		return err
	}

	ctrl := newController(r.app, filter)
	defer ctrl.Dispose()

	ctrl.Mount(r.cmd.Context())
	ctrl.Wait()

	view := ctrl.View()
	if view.State == listing.StateError {
		return view.Err
	}

	return views.NewTransactionListView(r.theme).Render(view)
}
