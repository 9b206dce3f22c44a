// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// LogLevel is the minimum log level.
	LogLevel string
	// LogFile is the file the client appends logs to.
	LogFile string
	// AccountSecret seals stored passwords when non-empty.
	AccountSecret string
}

// ClientAdapter holds network settings used by the Moodle client.
type ClientAdapter struct {
	Scheme         string
	RequestTimeout time.Duration
	RetryCount     int
	Service        string
	DefaultSite    string
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite database file path.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// RefreshInterval defines how often remote data is refreshed.
	RefreshInterval time.Duration
	// ToastFade is the pause between two toast messages.
	ToastFade time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig(flags *Flags) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(flags)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			LogLevel:      cfg.App.LogLevel,
			LogFile:       cfg.App.LogFile,
			AccountSecret: cfg.App.AccountSecret,
		},
		Adapter: ClientAdapter{
			Scheme:         cfg.Adapter.Scheme,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			RetryCount:     cfg.Adapter.RetryCount,
			Service:        cfg.Adapter.Service,
			DefaultSite:    cfg.Adapter.DefaultSite,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Workers: ClientWorkers{
			RefreshInterval: cfg.Workers.RefreshInterval,
			ToastFade:       cfg.Workers.ToastFade,
		},
	}
}
