package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hance08/dompet/cmd/transaction"
	"github.com/hance08/dompet/internal/app"
	"github.com/hance08/dompet/internal/config"
	"github.com/hance08/dompet/internal/errhandler"
	"github.com/hance08/dompet/internal/logger"
	"github.com/hance08/dompet/internal/ui"
	"github.com/hance08/dompet/internal/ui/prompts"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	cfg     *config.Config
)

func Execute(migrations fs.FS) {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	// the config is needed before cobra parses flags
	cfgFile = scanConfigFlag(os.Args[1:])

	created, err := initConfig()
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	if created && isInteractive() {
		if err := initWizard(); err != nil {
			if errhandler.IsCancelled(err) {
				pterm.Warning.Println("Setup skipped, using defaults")
			} else {
				pterm.Error.Println(err)
				os.Exit(1)
			}
		}
	}

	application, cleanup, err := app.NewApp(cfg, migrations, func() {
		pterm.Warning.Println("Session expired, you have been logged out")
	})
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	theme := ui.NewTheme(application.Session.DarkMode())

	rootCmd := &cobra.Command{
		Use:           "dompet",
		Short:         "dompet is a CLI/TUI client for your digital wallet",
		Long:          `dompet is a CLI/TUI client for your digital wallet: check your balance, browse and analyse your transactions, transfer and top up.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "set the config file path")

	rootCmd.AddCommand(NewLoginCmd(application))
	rootCmd.AddCommand(NewRegisterCmd(application))
	rootCmd.AddCommand(NewLogoutCmd(application))
	rootCmd.AddCommand(NewWhoamiCmd(application, theme))
	rootCmd.AddCommand(NewBalanceCmd(application, theme))
	rootCmd.AddCommand(NewRecipientsCmd(application, theme))
	rootCmd.AddCommand(NewTransferCmd(application, theme))
	rootCmd.AddCommand(NewTopUpCmd(application, theme))
	rootCmd.AddCommand(NewAnalyticsCmd(application, theme))
	rootCmd.AddCommand(NewThemeCmd(application))
	rootCmd.AddCommand(NewInfoCmd(application, theme))
	rootCmd.AddCommand(transaction.NewTransactionCmd(application, theme))

	ctx := logger.WithContext(context.Background(), application.Log)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if !errhandler.IsCancelled(err) {
			application.Log.Error().Err(err).Str("command", strings.Join(os.Args[1:], " ")).Msg("Command failed")
		}
		code := errhandler.HandleError(err)
		cleanup()
		os.Exit(code)
	}
	cleanup()
}

// initConfig loads the config file, writing one with defaults when none
// exists. It reports whether the file was just created.
func initConfig() (bool, error) {
	for key, value := range config.Defaults() {
		viper.SetDefault(key, value)
	}

	var err error
	created := false
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		appDir, err := app.GetAppDataDir()
		if err != nil {
			return false, fmt.Errorf("error getting app dir: %w", err)
		}

		viper.AddConfigPath(appDir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")

		created, err = createDefaultConfig(appDir)
		if err != nil {
			return false, fmt.Errorf("failed to ensure config file: %w", err)
		}
	}

	viper.SetEnvPrefix("DOMPET")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // allow using environment variables to override

	if err = viper.ReadInConfig(); err != nil {

		if cfgFile != "" {
			return false, fmt.Errorf("failed to read config file: %w", err)
		}

		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return false, fmt.Errorf("config file error: %w", err)
		}
	}

	cfg = config.NewDefault()
	if err = viper.Unmarshal(cfg); err != nil {
		return false, fmt.Errorf("unable to decode into struct, %v", err)
	}

	cfg.ConfigPath = viper.ConfigFileUsed()
	if cfg.Session.Path, err = expandPath(cfg.Session.Path); err != nil {
		return false, err
	}
	if cfg.Log.File, err = expandPath(cfg.Log.File); err != nil {
		return false, err
	}

	return created, nil
}

func initWizard() error {
	settings, err := prompts.PromptInitSettings(prompts.InitSettings{
		BaseURL:  viper.GetString("api.base_url"),
		Currency: viper.GetString("display.currency"),
	})
	if err != nil {
		return err
	}

	viper.Set("api.base_url", settings.BaseURL)
	viper.Set("display.currency", settings.Currency)

	if err := viper.WriteConfig(); err != nil {
		return fmt.Errorf("failed to save config to file: %w", err)
	}

	cfg.API.BaseURL = settings.BaseURL
	cfg.Display.Currency = settings.Currency

	pterm.Success.Printf("Configuration saved to %s\n", viper.ConfigFileUsed())
	return nil
}

// scanConfigFlag finds --config/-c in args.
func scanConfigFlag(args []string) string {
	for i, arg := range args {
		switch {
		case arg == "--":
			return ""
		case arg == "--config" || arg == "-c":
			if i+1 < len(args) {
				return args[i+1]
			}
		case strings.HasPrefix(arg, "--config="):
			return strings.TrimPrefix(arg, "--config=")
		case strings.HasPrefix(arg, "-c="):
			return strings.TrimPrefix(arg, "-c=")
		}
	}
	return ""
}

func isInteractive() bool {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

func expandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if path == "~" {
			return home, nil
		}
		if strings.HasPrefix(path, "~/") || strings.HasPrefix(path, "~\\") {
			return filepath.Join(home, path[2:]), nil
		}
	}
	return path, nil
}

func createDefaultConfig(appDir string) (bool, error) {
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return false, fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(appDir, "config.yaml")

	if _, err := os.Stat(configPath); err == nil {
		return false, nil
	}

	if err := viper.WriteConfigAs(configPath); err != nil {
		return false, fmt.Errorf("failed to write config file: %w", err)
	}

	return true, nil
}
