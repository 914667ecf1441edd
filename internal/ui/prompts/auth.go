package prompts

import (
	"github.com/charmbracelet/huh"
	"github.com/hance08/dompet/internal/service"
	"github.com/hance08/dompet/internal/validation"
)

// PromptLogin asks for credentials. defaultEmail pre-fills the email field.
func PromptLogin(defaultEmail string) (email, password string, err error) {
	email = defaultEmail

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Email").
				Value(&email).
				Validate(func(s string) error { return validation.ValidateEmail(s) }),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&password).
				Validate(func(s string) error { return validation.ValidateRequired("password")(s) }),
		),
	)

	if err := form.Run(); err != nil {
		return "", "", err
	}
	return email, password, nil
}

func PromptRegister() (service.RegisterInput, error) {
	var in service.RegisterInput
	var confirm string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Full name").
				Value(&in.Fullname).
				Validate(func(s string) error { return validation.ValidateRequired("full name")(s) }),
			huh.NewInput().
				Title("Username").
				Value(&in.Username).
				Validate(func(s string) error { return validation.ValidateRequired("username")(s) }),
			huh.NewInput().
				Title("Email").
				Value(&in.Email).
				Validate(func(s string) error { return validation.ValidateEmail(s) }),
			huh.NewInput().
				Title("Phone number").
				Description("Optional. Digits with an optional leading +").
				Value(&in.PhoneNumber).
				Validate(func(s string) error { return validation.ValidatePhone(s) }),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Password").
				Description("At least 8 characters with upper case, lower case and a number").
				EchoMode(huh.EchoModePassword).
				Value(&in.Password).
				Validate(func(s string) error { return validation.ValidatePassword(s) }),
			huh.NewInput().
				Title("Confirm password").
				EchoMode(huh.EchoModePassword).
				Value(&confirm).
				Validate(func(s string) error {
					if s != in.Password {
						return errPasswordMismatch
					}
					return nil
				}),
		),
	)

	if err := form.Run(); err != nil {
		return service.RegisterInput{}, err
	}
	return in, nil
}
