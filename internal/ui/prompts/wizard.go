package prompts

import (
	"errors"
	"net/url"
	"strings"

	"github.com/charmbracelet/huh"
)

// InitSettings are asked once, when no config file exists yet.
type InitSettings struct {
	BaseURL  string
	Currency string
}

func PromptInitSettings(defaults InitSettings) (InitSettings, error) {
	settings := defaults
	currency := defaults.Currency

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Welcome to dompet! Where is your wallet API?").
				Description("Base URL of the wallet service, e.g. http://localhost:8080/api").
				Value(&settings.BaseURL).
				Validate(func(s string) error {
					u, err := url.Parse(strings.TrimSpace(s))
					if err != nil || u.Scheme == "" || u.Host == "" {
						return errors.New("please enter a full URL including http:// or https://")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Display currency").
				Options(
					huh.NewOption("IDR", "IDR"),
					huh.NewOption("USD", "USD"),
					huh.NewOption("EUR", "EUR"),
					huh.NewOption("SGD", "SGD"),
					huh.NewOption("MYR", "MYR"),
					huh.NewOption("Other", "Other"),
				).
				Value(&currency),
		),
	).Run()
	if err != nil {
		return InitSettings{}, err
	}

	settings.BaseURL = strings.TrimSpace(settings.BaseURL)
	settings.Currency = currency

	if currency == "Other" {
		customInput, err := PromptInput("Please enter the currency code (ISO 4217):", "", func(s string) error {
			if len(strings.TrimSpace(s)) != 3 {
				return errors.New("currency code must be 3 letters")
			}
			return nil
		})
		if err != nil {
			return InitSettings{}, err
		}
		settings.Currency = strings.ToUpper(strings.TrimSpace(customInput))
	}

	return settings, nil
}
