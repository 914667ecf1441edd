package app

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hance08/dompet/internal/api"
	"github.com/hance08/dompet/internal/config"
	"github.com/hance08/dompet/internal/logger"
	"github.com/hance08/dompet/internal/model"
	"github.com/hance08/dompet/internal/service"
	"github.com/hance08/dompet/internal/session"
	"github.com/hance08/dompet/internal/store"
	"github.com/hance08/dompet/internal/utils"
	"github.com/rs/zerolog"
)

type Paths struct {
	AppDir      string
	SessionPath string
	LogFile     string
}

type App struct {
	Config    *config.Config
	Paths     Paths
	Log       zerolog.Logger
	Store     store.Repository
	Session   *session.Session
	Client    *api.Client
	Service   *service.Service
	Formatter *utils.Formatter
}

// NewApp wires the session store, transport and services, then returns App
// together with its cleanup. onUnauthorized runs once per expired session.
func NewApp(cfg *config.Config, migrationFS fs.FS, onUnauthorized func()) (*App, func(), error) {
	appDir, err := GetAppDataDir()
	if err != nil {
		return nil, nil, err
	}

	paths := Paths{
		AppDir:      appDir,
		SessionPath: cfg.Session.Path,
		LogFile:     cfg.Log.File,
	}
	if paths.SessionPath == "" {
		paths.SessionPath = filepath.Join(appDir, "session.db")
	}
	if paths.LogFile == "" {
		paths.LogFile = filepath.Join(appDir, "dompet.log")
	}

	log, closeLog, err := logger.OpenFile(paths.LogFile, cfg.Log.Level)
	if err != nil {
		return nil, nil, err
	}

	formatter, err := utils.NewFormatter(cfg.Display.Locale, cfg.Display.Currency)
	if err != nil {
		closeLog()
		return nil, nil, fmt.Errorf("invalid display settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(paths.SessionPath), 0700); err != nil {
		closeLog()
		return nil, nil, fmt.Errorf("failed to create session directory: %w", err)
	}

	dbStore, err := store.NewStore(paths.SessionPath, migrationFS)
	if err != nil {
		closeLog()
		return nil, nil, fmt.Errorf("failed to initialize session store: %w", err)
	}

	cleanup := func() {
		if err := dbStore.Close(); err != nil {
			fmt.Printf("Error closing session store: %v\n", err)
		}
		closeLog()
	}

	sess, err := session.Open(dbStore, log)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	client, err := api.NewClient(cfg.API.BaseURL, sess,
		api.WithTimeout(cfg.API.Timeout),
		api.WithLogger(log),
		api.WithUnauthorizedHandler(onUnauthorized),
	)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	svc, err := service.NewService(client, sess, cfg, log)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	log.Debug().
		Str("api", cfg.API.BaseURL).
		Str("session", paths.SessionPath).
		Msg("Application initialized")

	return &App{
		Config:    cfg,
		Paths:     paths,
		Log:       log,
		Store:     dbStore,
		Session:   sess,
		Client:    client,
		Service:   svc,
		Formatter: formatter,
	}, cleanup, nil
}

func GetAppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, ".dompet"), nil
	}

	return filepath.Join(configDir, "dompet"), nil
}

// RequireLogin restores the signed-in user, re-fetching the profile when only
// the token survived.
func (a *App) RequireLogin(ctx context.Context) (*model.CurrentUser, error) {
	return a.Service.Auth.Restore(ctx)
}
