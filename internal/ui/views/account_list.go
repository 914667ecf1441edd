package views

import (
	"github.com/hance08/dompet/internal/model"
	"github.com/hance08/dompet/internal/ui"
	"github.com/pterm/pterm"
)

// RenderRecipients lists the wallets the viewer can transfer to.
func RenderRecipients(theme ui.Theme, wallets []model.Wallet) error {
	if len(wallets) == 0 {
		pterm.Warning.Println("No recipients available")
		return nil
	}

	tableData := pterm.TableData{{"Name", "Account Number"}}
	for _, w := range wallets {
		tableData = append(tableData, []string{w.OwnerName(), w.AccountNumber})
	}

	pterm.DefaultSection.Println("Recipients")
	if err := theme.Table().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d recipients\n", len(wallets))
	return nil
}
