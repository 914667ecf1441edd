package cmd

import (
	"os"
	"strings"

	"github.com/hance08/dompet/internal/app"
	"github.com/hance08/dompet/internal/ui/prompts"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type logoutRunner struct {
	app *app.App
	yes bool
}

func NewLogoutCmd(a *app.App) *cobra.Command {
	runner := &logoutRunner{app: a}

	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Log out and forget the saved session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runner.Run()
		},
	}
	cmd.Flags().BoolVarP(&runner.yes, "yes", "y", false, "Do not ask for confirmation")

	return cmd
}

func (r *logoutRunner) Run() error {
	if !r.app.Service.Auth.IsLoggedIn() {
		pterm.Info.Println("You are not logged in")
		return nil
	}

	if !r.yes {
		confirm, err := prompts.PromptConfirm("Log out of dompet?", true)
		if err != nil {
			return err
		}
		if !confirm {
			pterm.Info.Println("Logout cancelled")
			return nil
		}
	}

	if err := r.app.Service.Auth.Logout(); err != nil {
		return err
	}
	pterm.Success.Println("Logged out")
	return nil
}

func lookupEnv(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}
