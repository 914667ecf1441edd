package cmd

import (
	"os"

	"github.com/hance08/dompet/internal/app"
	"github.com/hance08/dompet/internal/ui"
	"github.com/hance08/dompet/internal/ui/views"
	"github.com/spf13/cobra"
)

type infoRunner struct {
	app   *app.App
	theme ui.Theme
}

func NewInfoCmd(a *app.App, theme ui.Theme) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display application information",
		Long:  `Display current configuration, session store path, and system details.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &infoRunner{
				app:   a,
				theme: theme,
			}

			return runner.Run()
		},
	}
}

func (r *infoRunner) Run() error {
	cfg := r.app.Config

	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = "(None, using defaults)"
	}

	sessionExists := false
	if _, err := os.Stat(r.app.Paths.SessionPath); err == nil {
		sessionExists = true
	}

	items := views.SystemInfoItem{
		ConfigPath:    configPath,
		SessionPath:   r.app.Paths.SessionPath,
		SessionExists: sessionExists,
		APIBaseURL:    cfg.API.BaseURL,
		Locale:        r.app.Formatter.Locale.String(),
		Currency:      r.app.Formatter.Currency.String(),
		Theme:         r.theme.Name(),
		LogFile:       r.app.Paths.LogFile,
		AppDataDir:    r.app.Paths.AppDir,
		LoggedIn:      r.app.Service.Auth.IsLoggedIn(),
	}

	return views.RenderSystemInfo(items)
}
