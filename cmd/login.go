package cmd

import (
	"github.com/hance08/dompet/internal/app"
	"github.com/hance08/dompet/internal/ui/prompts"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type loginFlags struct {
	Email    string
	Password string
}

type loginRunner struct {
	app   *app.App
	flags *loginFlags
	cmd   *cobra.Command
}

func NewLoginCmd(a *app.App) *cobra.Command {
	flags := &loginFlags{}

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to your wallet",
		Long: `Log in with your email and password. The session is kept until you log out
or it expires.

	Examples:
	# Interactive mode
	dompet login

	# Quick mode (the password is read from DOMPET_PASSWORD when --password is omitted)
	dompet login --email budi@mail.id`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &loginRunner{
				app:   a,
				flags: flags,
				cmd:   cmd,
			}
			return runner.Run()
		},
	}

	cmd.Flags().StringVarP(&flags.Email, "email", "e", "", "Account email")
	cmd.Flags().StringVarP(&flags.Password, "password", "p", "", "Account password")

	return cmd
}

func (r *loginRunner) Run() error {
	email, password := r.flags.Email, r.flags.Password
	if password == "" {
		password = lookupEnv("DOMPET_PASSWORD")
	}

	if email == "" || password == "" {
		var err error
		email, password, err = prompts.PromptLogin(email)
		if err != nil {
			return err
		}
	}

	spinner, _ := pterm.DefaultSpinner.Start("Logging in...")
	user, err := r.app.Service.Auth.Login(r.cmd.Context(), email, password)
	if err != nil {
		spinner.Fail("Login failed")
		return err
	}
	spinner.Success("Logged in")

	pterm.Success.Printf("Welcome back, %s!\n", user.DisplayName())
	pterm.Info.Printf("Balance: %s\n", r.app.Formatter.Format(user.Balance))
	return nil
}
