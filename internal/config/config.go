package config

import "time"

type Config struct {
	API        APIConfig        `mapstructure:"api"`
	Session    SessionConfig    `mapstructure:"session"`
	Display    DisplayConfig    `mapstructure:"display"`
	Classifier ClassifierConfig `mapstructure:"classifier"`
	Log        LogConfig        `mapstructure:"log"`
	ConfigPath string           `mapstructure:"-"`
}

type APIConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type SessionConfig struct {
	Path string `mapstructure:"path"`
}

type DisplayConfig struct {
	Locale   string `mapstructure:"locale"`
	Currency string `mapstructure:"currency"`
	PageSize int    `mapstructure:"page_size"`
}

type ClassifierConfig struct {
	// NonTransferPolicy decides credit/debit for TOP_UP and QR records:
	// "sender", "qr-debit" or "credit".
	NonTransferPolicy string `mapstructure:"non_transfer_policy"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

func NewDefault() *Config {
	return &Config{
		API:        APIConfig{BaseURL: "http://localhost:8080/api", Timeout: 30 * time.Second},
		Session:    SessionConfig{Path: ""},
		Display:    DisplayConfig{Locale: "id-ID", Currency: "IDR", PageSize: 10},
		Classifier: ClassifierConfig{NonTransferPolicy: "sender"},
		Log:        LogConfig{Level: "info", File: ""},
	}
}

// Defaults flattens NewDefault into viper-style dotted keys.
func Defaults() map[string]any {
	d := NewDefault()
	return map[string]any{
		"api.base_url":                   d.API.BaseURL,
		"api.timeout":                    d.API.Timeout.String(),
		"session.path":                   d.Session.Path,
		"display.locale":                 d.Display.Locale,
		"display.currency":               d.Display.Currency,
		"display.page_size":              d.Display.PageSize,
		"classifier.non_transfer_policy": d.Classifier.NonTransferPolicy,
		"log.level":                      d.Log.Level,
		"log.file":                       d.Log.File,
	}
}
