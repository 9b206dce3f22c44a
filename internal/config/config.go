// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the markdo
// client. It aggregates all sub-configurations and is populated by merging
// defaults, an optional JSON/YAML file, environment variables (optionally
// loaded from a .env file) and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as logging and the optional
	// secret used to seal stored account passwords.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local SQLite database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds settings for the Moodle web-service client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// ConfigFilePath is the optional path to a JSON or YAML configuration
	// file. Populated via the CONFIG environment variable or the -c / -config
	// flag.
	ConfigFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// LogLevel is the minimum zerolog level (e.g. "debug", "info").
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogFile is the file the interactive client appends its logs to.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// AccountSecret, when set, seals remembered account passwords at rest.
	// Changing it makes previously sealed passwords unreadable.
	// Env: APP_ACCOUNT_SECRET
	AccountSecret string `env:"ACCOUNT_SECRET"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for all storage backends used by the
// client.
type Storage struct {
	// DB holds the local database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite database file path (e.g. "markdo.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Adapter holds configuration for the Moodle web-service client.
type Adapter struct {
	// Scheme is prepended to the normalized site ("https" or "http").
	// Env: ADAPTER_SCHEME
	Scheme string `env:"SCHEME"`

	// RequestTimeout bounds a single outbound request (e.g. "20s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RetryCount is the number of resty retries for transport failures.
	// Env: ADAPTER_RETRY_COUNT
	RetryCount int `env:"RETRY_COUNT"`

	// Service is the Moodle external service name used for token requests.
	// Env: ADAPTER_SERVICE
	Service string `env:"SERVICE"`

	// DefaultSite pre-fills the login form when no account is remembered.
	// Env: ADAPTER_DEFAULT_SITE
	DefaultSite string `env:"DEFAULT_SITE"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// RefreshInterval is how often remote data is refreshed while signed in.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`

	// ToastFade is the pause between two toast messages.
	// Env: WORKERS_TOAST_FADE
	ToastFade time.Duration `env:"TOAST_FADE"`
}

// defaultConfig returns the lowest-precedence configuration layer.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel: "info",
			LogFile:  "markdo.log",
		},
		Storage: Storage{
			DB: DB{DSN: "markdo.db"},
		},
		Adapter: Adapter{
			Scheme:         "https",
			RequestTimeout: 20 * time.Second,
			RetryCount:     1,
			Service:        "moodle_mobile_app",
		},
		Workers: Workers{
			RefreshInterval: 10 * time.Minute,
			ToastFade:       300 * time.Millisecond,
		},
	}
}

// GetStructuredConfig loads and merges the configuration from all available
// sources in the following priority order (later sources override earlier
// non-zero fields):
//  1. Built-in defaults
//  2. JSON or YAML file (path resolved from env and flags)
//  3. Environment variables, after loading an optional .env file
//  4. Command-line flags
func GetStructuredConfig(flags *Flags) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv().
		withEnv().
		withFlags(flags).
		withFile().
		build()
}
