package cmd

import (
	"fmt"
	"strings"

	"github.com/hance08/dompet/internal/app"
	"github.com/hance08/dompet/internal/ui"
	"github.com/hance08/dompet/internal/ui/prompts"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func NewThemeCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:       "theme [dark|light]",
		Short:     "Switch between the dark and light theme",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"dark", "light"},
		RunE: func(cmd *cobra.Command, args []string) error {
			current := ui.NewTheme(a.Session.DarkMode()).Name()

			var choice string
			if len(args) == 1 {
				choice = strings.ToLower(args[0])
			} else {
				var err error
				choice, err = prompts.PromptSelect("Theme:", []string{"dark", "light"}, current)
				if err != nil {
					return err
				}
			}

			if choice != "dark" && choice != "light" {
				return fmt.Errorf("unknown theme %q, expected dark or light", choice)
			}

			if err := a.Session.SetDarkMode(choice == "dark"); err != nil {
				return err
			}
			pterm.Success.Printf("Theme set to %s\n", choice)
			return nil
		},
	}
}
