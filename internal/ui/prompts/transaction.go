package prompts

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/hance08/dompet/internal/model"
	"github.com/hance08/dompet/internal/service"
	"github.com/hance08/dompet/internal/utils"
)

var (
	errPasswordMismatch = errors.New("passwords do not match")
	errNoRecipients     = errors.New("no recipients available for transfer")
)

// amountValidator accepts localised positive amounts, e.g. "50.000" for id-ID.
func amountValidator(f *utils.Formatter) func(string) error {
	return func(s string) error {
		amount, err := f.Parse(s)
		if err != nil {
			return err
		}
		if !amount.IsPositive() {
			return fmt.Errorf("amount must be greater than zero")
		}
		return nil
	}
}

// PromptTransfer collects a transfer. balance is shown in the amount hint.
func PromptTransfer(recipients []model.Wallet, f *utils.Formatter, balance string) (service.TransferInput, *model.Wallet, error) {
	if len(recipients) == 0 {
		return service.TransferInput{}, nil, errNoRecipients
	}

	var (
		accountNumber string
		category      = service.TransferCategories[0]
		amountText    string
		notes         string
	)

	byAccount := make(map[string]*model.Wallet, len(recipients))
	var recipientOpts []huh.Option[string]
	for i := range recipients {
		w := &recipients[i]
		byAccount[w.AccountNumber] = w
		label := fmt.Sprintf("%s (%s)", w.OwnerName(), w.AccountNumber)
		recipientOpts = append(recipientOpts, huh.NewOption(label, w.AccountNumber))
	}

	var categoryOpts []huh.Option[string]
	for _, c := range service.TransferCategories {
		categoryOpts = append(categoryOpts, huh.NewOption(c, c))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Recipient").
				Options(recipientOpts...).
				Value(&accountNumber).
				Height(10),
			huh.NewSelect[string]().
				Title("Category").
				Options(categoryOpts...).
				Value(&category),
			huh.NewInput().
				Title(fmt.Sprintf("Amount (%s)", f.Currency)).
				Description("Balance: "+balance).
				Value(&amountText).
				Validate(amountValidator(f)),
			huh.NewInput().
				Title("Notes").
				Value(&notes),
		),
	)

	if err := form.Run(); err != nil {
		return service.TransferInput{}, nil, err
	}

	amount, err := f.Parse(amountText)
	if err != nil {
		return service.TransferInput{}, nil, err
	}

	return service.TransferInput{
		RecipientAccountNumber: accountNumber,
		Category:               category,
		Amount:                 amount,
		Description:            notes,
	}, byAccount[accountNumber], nil
}

func PromptTopUp(f *utils.Formatter) (service.TopUpInput, error) {
	var (
		method     = string(service.TopUpMethods[0])
		amountText string
		notes      string
	)

	var methodOpts []huh.Option[string]
	for _, m := range service.TopUpMethods {
		methodOpts = append(methodOpts, huh.NewOption(string(m), string(m)))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Payment method").
				Options(methodOpts...).
				Value(&method),
			huh.NewInput().
				Title(fmt.Sprintf("Amount (%s)", f.Currency)).
				Value(&amountText).
				Validate(amountValidator(f)),
			huh.NewInput().
				Title("Notes").
				Description("Leave empty for \"Top Up from <method>\"").
				Value(&notes),
		),
	)

	if err := form.Run(); err != nil {
		return service.TopUpInput{}, err
	}

	amount, err := f.Parse(amountText)
	if err != nil {
		return service.TopUpInput{}, err
	}

	return service.TopUpInput{
		Method:      service.TopUpMethod(method),
		Amount:      amount,
		Description: notes,
	}, nil
}
