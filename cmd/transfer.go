package cmd

import (
	"fmt"

	"github.com/hance08/dompet/internal/app"
	"github.com/hance08/dompet/internal/model"
	"github.com/hance08/dompet/internal/service"
	"github.com/hance08/dompet/internal/ui"
	"github.com/hance08/dompet/internal/ui/prompts"
	"github.com/hance08/dompet/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type transferFlags struct {
	To       string
	Amount   string
	Category string
	Notes    string
	Yes      bool
}

type transferRunner struct {
	app   *app.App
	theme ui.Theme
	flags *transferFlags
	cmd   *cobra.Command
}

func NewTransferCmd(a *app.App, theme ui.Theme) *cobra.Command {
	flags := &transferFlags{}

	cmd := &cobra.Command{
		Use:     "transfer",
		Aliases: []string{"send"},
		Short:   "Send money to another wallet",
		Long: `Send money from your wallet to another user's wallet.

	Use flags for quick entry or run without flags for a guided form.

	Examples:
	# Interactive mode
	dompet transfer

	# Quick mode with flags
	dompet transfer --to 1234567890 --amount 50.000 --category Food --notes "Lunch"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &transferRunner{
				app:   a,
				theme: theme,
				flags: flags,
				cmd:   cmd,
			}
			return runner.Run()
		},
	}

	cmd.Flags().StringVarP(&flags.To, "to", "t", "", "Recipient account number")
	cmd.Flags().StringVarP(&flags.Amount, "amount", "a", "", "Amount in your display locale (e.g. 50.000)")
	cmd.Flags().StringVar(&flags.Category, "category", service.TransferCategories[0], "Transfer category")
	cmd.Flags().StringVarP(&flags.Notes, "notes", "n", "", "Optional notes")
	cmd.Flags().BoolVarP(&flags.Yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func (r *transferRunner) Run() error {
	ctx := r.cmd.Context()
	if _, err := r.app.RequireLogin(ctx); err != nil {
		return err
	}

	var (
		input     service.TransferInput
		recipient *model.Wallet
		err       error
	)

	hasFlags := r.cmd.Flags().Changed("to") || r.cmd.Flags().Changed("amount")
	if hasFlags {
		input, recipient, err = r.flagsMode()
	} else {
		input, recipient, err = r.interactiveMode()
	}
	if err != nil {
		return err
	}

	if err := input.Validate(); err != nil {
		return err
	}

	views.RenderTransferSummary(r.theme, input, recipient, r.app.Formatter)

	if !r.flags.Yes {
		confirm, err := prompts.AskConfirm("Send this transfer?")
		if err != nil {
			return err
		}
		if !confirm {
			pterm.Info.Println("Transfer cancelled")
			return nil
		}
	}

	spinner, _ := pterm.DefaultSpinner.Start("Sending transfer...")
	receipt, err := r.app.Service.Transaction.Transfer(ctx, input)
	if err != nil {
		spinner.Fail("Transfer failed")
		return err
	}
	spinner.Success("Transfer completed")

	views.RenderReceipt(r.theme, receipt, r.app.Formatter)
	return nil
}

func (r *transferRunner) flagsMode() (service.TransferInput, *model.Wallet, error) {
	if r.flags.To == "" {
		return service.TransferInput{}, nil, fmt.Errorf("when using flags, --to is required")
	}

	recipient, err := r.app.Service.Wallet.FindRecipient(r.cmd.Context(), r.flags.To)
	if err != nil {
		return service.TransferInput{}, nil, err
	}

	amountText := r.flags.Amount
	if amountText == "" {
		amountText, err = promptAmount(r.app)
		if err != nil {
			return service.TransferInput{}, nil, err
		}
	}

	amount, err := r.app.Formatter.Parse(amountText)
	if err != nil {
		return service.TransferInput{}, nil, fmt.Errorf("invalid amount: %w", err)
	}

	return service.TransferInput{
		RecipientAccountNumber: r.flags.To,
		Category:               r.flags.Category,
		Amount:                 amount,
		Description:            r.flags.Notes,
	}, recipient, nil
}

func (r *transferRunner) interactiveMode() (service.TransferInput, *model.Wallet, error) {
	ctx := r.cmd.Context()

	recipients, err := r.app.Service.Wallet.ListRecipients(ctx)
	if err != nil {
		return service.TransferInput{}, nil, err
	}

	balance := "-"
	if wallet, err := r.app.Service.Wallet.GetWallet(ctx); err == nil {
		balance = r.app.Formatter.Format(wallet.Balance)
	}

	return prompts.PromptTransfer(recipients, r.app.Formatter, balance)
}

// promptAmount asks only for the amount when the other flags were given.
func promptAmount(a *app.App) (string, error) {
	return prompts.PromptAmount(
		fmt.Sprintf("Amount (%s):", a.Formatter.Symbol()),
		fmt.Sprintf("e.g. %s", a.Formatter.FormatNumber(decimal.NewFromInt(50000))),
		func(s string) error {
			amount, err := a.Formatter.Parse(s)
			if err != nil {
				return err
			}
			if !amount.IsPositive() {
				return fmt.Errorf("amount must be greater than zero")
			}
			return nil
		},
	)
}
