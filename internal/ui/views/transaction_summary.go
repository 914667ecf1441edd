package views

import (
	"github.com/hance08/dompet/internal/model"
	"github.com/hance08/dompet/internal/service"
	"github.com/hance08/dompet/internal/ui"
	"github.com/hance08/dompet/internal/utils"
	"github.com/pterm/pterm"
)

// RenderTransferSummary is shown before a transfer is confirmed.
func RenderTransferSummary(theme ui.Theme, in service.TransferInput, recipient *model.Wallet, f *utils.Formatter) {
	pterm.DefaultSection.Println("Transfer Summary")

	to := in.RecipientAccountNumber
	if recipient != nil {
		to = recipient.OwnerName() + " (" + recipient.AccountNumber + ")"
	}

	tableData := pterm.TableData{
		{"Field", "Value"},
		{"To", to},
		{"Category", in.Category},
		{"Amount", f.Format(in.Amount)},
		{"Notes", orDash(in.Description)},
	}
	theme.Table().WithData(tableData).Render()
}

func RenderTopUpSummary(theme ui.Theme, in service.TopUpInput, f *utils.Formatter) {
	pterm.DefaultSection.Println("Top Up Summary")

	tableData := pterm.TableData{
		{"Field", "Value"},
		{"Method", string(in.Method)},
		{"Amount", f.Format(in.Amount)},
		{"Notes", orDash(in.Description)},
	}
	theme.Table().WithData(tableData).Render()
}

// RenderReceipt is shown after a transfer or top-up succeeded.
func RenderReceipt(theme ui.Theme, r *service.Receipt, f *utils.Formatter) {
	title := "Transfer Successful"
	if r.TransactionType == model.TypeTopUp {
		title = "Top Up Successful"
	}
	pterm.Success.Println(title)

	tableData := pterm.TableData{
		{"Field", "Value"},
		{"Transaction ID", orDash(r.TransactionID.String())},
		{"Date", r.CompletedAt.Format("02 Jan 2006 15:04")},
		{"Amount", f.Format(r.Amount)},
	}
	if r.From != "" {
		tableData = append(tableData, []string{"From", r.From})
	}
	if r.To != "" {
		tableData = append(tableData, []string{"To", r.To})
	}
	if r.Method != "" {
		tableData = append(tableData, []string{"Method", string(r.Method)})
	}
	if r.Category != "" {
		tableData = append(tableData, []string{"Category", r.Category})
	}
	tableData = append(tableData, []string{"Notes", orDash(r.Description)})

	theme.Table().WithData(tableData).Render()

	if r.BalanceKnown {
		pterm.Info.Printf("New balance: %s\n", f.Format(r.Balance))
	} else {
		pterm.Warning.Println("Could not refresh balance. Run 'dompet balance' to check it")
	}
}
