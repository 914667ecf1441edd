package cmd

import (
	"fmt"
	"strings"

	"github.com/hance08/dompet/internal/app"
	"github.com/hance08/dompet/internal/service"
	"github.com/hance08/dompet/internal/ui"
	"github.com/hance08/dompet/internal/ui/prompts"
	"github.com/hance08/dompet/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type topUpFlags struct {
	Method string
	Amount string
	Notes  string
	Yes    bool
}

type topUpRunner struct {
	app   *app.App
	theme ui.Theme
	flags *topUpFlags
	cmd   *cobra.Command
}

func NewTopUpCmd(a *app.App, theme ui.Theme) *cobra.Command {
	flags := &topUpFlags{}

	cmd := &cobra.Command{
		Use:   "topup",
		Short: "Add funds to your wallet",
		Long: `Top up your wallet using one of the supported payment methods.

	Examples:
	# Interactive mode
	dompet topup

	# Quick mode with flags
	dompet topup --method qris --amount 100.000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &topUpRunner{
				app:   a,
				theme: theme,
				flags: flags,
				cmd:   cmd,
			}
			return runner.Run()
		},
	}

	cmd.Flags().StringVarP(&flags.Method, "method", "m", string(service.MethodCreditCard), "Payment method: credit-card, bank-transfer or qris")
	cmd.Flags().StringVarP(&flags.Amount, "amount", "a", "", "Amount in your display locale")
	cmd.Flags().StringVarP(&flags.Notes, "notes", "n", "", "Optional notes")
	cmd.Flags().BoolVarP(&flags.Yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func (r *topUpRunner) Run() error {
	ctx := r.cmd.Context()
	if _, err := r.app.RequireLogin(ctx); err != nil {
		return err
	}

	var (
		input service.TopUpInput
		err   error
	)
	if r.cmd.Flags().Changed("amount") || r.cmd.Flags().Changed("method") {
		input, err = r.flagsMode()
	} else {
		input, err = prompts.PromptTopUp(r.app.Formatter)
	}
	if err != nil {
		return err
	}

	if err := input.Validate(); err != nil {
		return err
	}

	views.RenderTopUpSummary(r.theme, input, r.app.Formatter)

	if !r.flags.Yes {
		confirm, err := prompts.AskConfirm("Proceed with this top up?")
		if err != nil {
			return err
		}
		if !confirm {
			pterm.Info.Println("Top up cancelled")
			return nil
		}
	}

	spinner, _ := pterm.DefaultSpinner.Start("Processing top up...")
	receipt, err := r.app.Service.Transaction.TopUp(ctx, input)
	if err != nil {
		spinner.Fail("Top up failed")
		return err
	}
	spinner.Success("Top up completed")

	views.RenderReceipt(r.theme, receipt, r.app.Formatter)
	return nil
}

func (r *topUpRunner) flagsMode() (service.TopUpInput, error) {
	method, err := parseMethod(r.flags.Method)
	if err != nil {
		return service.TopUpInput{}, err
	}

	amountText := r.flags.Amount
	if amountText == "" {
		amountText, err = promptAmount(r.app)
		if err != nil {
			return service.TopUpInput{}, err
		}
	}

	amount, err := r.app.Formatter.Parse(amountText)
	if err != nil {
		return service.TopUpInput{}, fmt.Errorf("invalid amount: %w", err)
	}

	return service.TopUpInput{
		Method:      method,
		Amount:      amount,
		Description: r.flags.Notes,
	}, nil
}

// parseMethod accepts both the display name and a dashed form ("bank-transfer").
func parseMethod(s string) (service.TopUpMethod, error) {
	key := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), "-", " "))
	for _, m := range service.TopUpMethods {
		if strings.ToLower(string(m)) == key {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown payment method %q", s)
}
