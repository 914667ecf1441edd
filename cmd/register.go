package cmd

import (
	"github.com/hance08/dompet/internal/app"
	"github.com/hance08/dompet/internal/ui/prompts"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type registerRunner struct {
	app *app.App
	cmd *cobra.Command
}

func NewRegisterCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "register",
		Short: "Create a new wallet account",
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &registerRunner{app: a, cmd: cmd}
			return runner.Run()
		},
	}
}

func (r *registerRunner) Run() error {
	input, err := prompts.PromptRegister()
	if err != nil {
		return err
	}

	if err := r.app.Service.Auth.Register(r.cmd.Context(), input); err != nil {
		return err
	}

	pterm.Success.Printf("Account created for %s\n", input.Email)
	pterm.Info.Println("Run 'dompet login' to sign in")
	return nil
}
