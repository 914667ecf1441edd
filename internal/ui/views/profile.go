package views

import (
	"time"

	"github.com/hance08/dompet/internal/model"
	"github.com/hance08/dompet/internal/ui"
	"github.com/hance08/dompet/internal/utils"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// RenderProfile shows the signed-in user. expiresAt is zero for opaque
// tokens.
func RenderProfile(theme ui.Theme, user *model.CurrentUser, f *utils.Formatter, expiresAt time.Time) error {
	pterm.DefaultSection.Println("Profile")

	expiry := "-"
	if !expiresAt.IsZero() {
		expiry = expiresAt.Local().Format("2006-01-02 15:04")
	}

	tableData := pterm.TableData{
		{"Field", "Value"},
		{"Name", user.DisplayName()},
		{"Username", orDash(user.Username)},
		{"Email", orDash(user.Email)},
		{"Phone", orDash(user.PhoneNumber)},
		{"Account Number", orDash(user.AccountNumber)},
		{"Balance", f.Format(user.Balance)},
		{"Session Expires", expiry},
	}
	return theme.Table().WithData(tableData).Render()
}

func RenderBalance(theme ui.Theme, wallet *model.Wallet, f *utils.Formatter) {
	pterm.DefaultSection.Println("Account Balance")
	pterm.Printfln("Account Number: %s", orDash(wallet.AccountNumber))
	pterm.Printfln("Balance:        %s", theme.Accent.Sprint(f.Format(wallet.Balance)))
}
