package transaction

import (
	"github.com/hance08/dompet/internal/app"
	"github.com/hance08/dompet/internal/errhandler"
	"github.com/hance08/dompet/internal/service"
	"github.com/hance08/dompet/internal/ui"
	"github.com/hance08/dompet/internal/ui/listing"
	"github.com/spf13/cobra"
)

func NewTransactionCmd(a *app.App, theme ui.Theme) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tx",
		Aliases: []string{"transaction", "history"},
		Short:   "Browse your transaction history",
		Long:    "Browse, page through and export your transaction history.",
	}

	cmd.AddCommand(NewListCmd(a, theme))
	cmd.AddCommand(NewBrowseCmd(a, theme))
	cmd.AddCommand(NewExportCmd(a))

	return cmd
}

// filterFlags are shared by every subcommand that reads history.
type filterFlags struct {
	Page   int
	Size   int
	Search string
	Sort   string
	Order  string
}

func (f *filterFlags) bind(cmd *cobra.Command, defaultSize int) {
	cmd.Flags().IntVarP(&f.Page, "page", "p", 1, "Page number, starting at 1")
	cmd.Flags().IntVar(&f.Size, "size", defaultSize, "Rows per page: 10, 20 or 50")
	cmd.Flags().StringVarP(&f.Search, "search", "s", "", "Filter by description, category or name")
	cmd.Flags().StringVar(&f.Sort, "sort", string(service.SortByDate), "Sort field: date or amount")
	cmd.Flags().StringVar(&f.Order, "order", string(service.SortDesc), "Sort order: asc or desc")
}

func (f *filterFlags) filter() (service.FilterState, error) {
	field, err := service.ParseSortField(f.Sort)
	if err != nil {
		return service.FilterState{}, err
	}
	dir, err := service.ParseSortDirection(f.Order)
	if err != nil {
		return service.FilterState{}, err
	}

	filter := service.DefaultFilter().
		WithPageSize(f.Size).
		WithSearch(f.Search).
		WithSort(field, dir).
		WithPage(f.Page)

	if err := filter.Validate(); err != nil {
		return service.FilterState{}, err
	}
	return filter, nil
}

func defaultPageSize(a *app.App) int {
	for _, size := range service.PageSizes {
		if size == a.Config.Display.PageSize {
			return size
		}
	}
	return service.DefaultPageSize
}

func newPresenter(a *app.App) *listing.Presenter {
	txs := a.Service.Transaction
	return listing.NewPresenter(txs.Classifier(), a.Formatter, txs.Viewer())
}

func newController(a *app.App, filter service.FilterState) *listing.Controller {
	return listing.NewController(a.Service.Transaction, newPresenter(a),
		listing.WithFilter(filter),
		listing.WithLogger(a.Log),
		listing.WithErrorMessage(errhandler.UserMessage),
	)
}
