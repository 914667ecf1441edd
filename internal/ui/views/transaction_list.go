package views

import (
	"github.com/hance08/dompet/internal/service"
	"github.com/hance08/dompet/internal/ui"
	"github.com/hance08/dompet/internal/ui/listing"
	"github.com/pterm/pterm"
)

type TransactionListView struct {
	theme ui.Theme
}

func NewTransactionListView(theme ui.Theme) *TransactionListView {
	return &TransactionListView{theme: theme}
}

func (v *TransactionListView) Render(view listing.View) error {
	switch view.State {
	case listing.StateIdle, listing.StateLoading:
		pterm.Info.Println("Loading transactions...")
		return nil
	case listing.StateError:
		pterm.Error.Println(view.Message)
		pterm.Info.Println("Run the command again to retry")
		return nil
	case listing.StateEmpty:
		pterm.Warning.Println(view.Message)
		v.renderFooter(view)
		return nil
	}

	f := view.Filter
	pterm.DefaultSection.Printf("Transactions (sorted by %s %s)", f.SortField, f.SortDirection)
	if f.Search != "" {
		pterm.Info.Printf("Search: %q\n", f.Search)
	}

	tableData := pterm.TableData{
		{"Date", "Type", "From/To", "Category", "Description", "Amount"},
	}

	for _, row := range view.Rows {
		amount := row.Amount
		switch row.Direction {
		case service.DirectionCredit:
			amount = v.theme.Credit.Sprint(row.Amount)
		case service.DirectionDebit:
			amount = v.theme.Debit.Sprint(row.Amount)
		}

		tableData = append(tableData, []string{
			row.Date,
			row.Type,
			row.Counterparty,
			row.Category,
			row.Description,
			amount,
		})
	}

	if err := v.theme.Table().WithData(tableData).Render(); err != nil {
		return err
	}
	v.renderFooter(view)
	return nil
}

func (v *TransactionListView) renderFooter(view listing.View) {
	pterm.Info.Printf("Page %d of %d (%d per page)\n", view.Filter.Page, view.TotalPages, view.Filter.PageSize)
}
