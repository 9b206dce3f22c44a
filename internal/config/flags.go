// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"time"
)

// Flags owns the configuration flag set. The set is parsed either directly
// with Parse or by a command framework that adopts it (cobra's
// AddGoFlagSet).
//
// Flags:
//
//	-d / -dsn             local database file
//	-c / -config          JSON or YAML config file path
//	-log-level            log level (debug, info, warn, error)
//	-log-file             client log file
//	-account-secret       secret used to seal stored passwords
//	-scheme               Moodle URL scheme (https or http)
//	-request-timeout      request timeout (e.g., "20s", "1m")
//	-retry-count          transport retries per request
//	-default-site         site pre-filled on the login form
//	-refresh-interval     background refresh interval (e.g., "10m")
type Flags struct {
	fs *flag.FlagSet

	dsn             string
	configPath      string
	logLevel        string
	logFile         string
	accountSecret   string
	scheme          string
	requestTimeout  time.Duration
	retryCount      int
	defaultSite     string
	refreshInterval time.Duration
}

// NewFlags registers all configuration flags on a fresh flag set.
func NewFlags(name string) *Flags {
	f := &Flags{fs: flag.NewFlagSet(name, flag.ContinueOnError)}

	f.fs.StringVar(&f.dsn, "d", "", "Database file path")
	f.fs.StringVar(&f.dsn, "dsn", "", "Database file path (alias)")
	f.fs.StringVar(&f.configPath, "c", "", "JSON or YAML config file path")
	f.fs.StringVar(&f.configPath, "config", "", "JSON or YAML config file path (alias)")
	f.fs.StringVar(&f.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	f.fs.StringVar(&f.logFile, "log-file", "", "Client log file")
	f.fs.StringVar(&f.accountSecret, "account-secret", "", "Secret used to seal stored passwords")
	f.fs.StringVar(&f.scheme, "scheme", "", "Moodle URL scheme (https or http)")
	f.fs.DurationVar(&f.requestTimeout, "request-timeout", 0, "Request timeout (e.g., 20s, 1m)")
	f.fs.IntVar(&f.retryCount, "retry-count", 0, "Transport retries per request")
	f.fs.StringVar(&f.defaultSite, "default-site", "", "Site pre-filled on the login form")
	f.fs.DurationVar(&f.refreshInterval, "refresh-interval", 0, "Background refresh interval (e.g., 10m)")

	return f
}

// FlagSet exposes the underlying standard flag set.
func (f *Flags) FlagSet() *flag.FlagSet {
	return f.fs
}

// Parse parses args into the flag set.
func (f *Flags) Parse(args []string) error {
	return f.fs.Parse(args)
}

// Config returns the flag layer. Unset flags are zero and do not override
// lower layers.
func (f *Flags) Config() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel:      f.logLevel,
			LogFile:       f.logFile,
			AccountSecret: f.accountSecret,
		},
		Storage: Storage{
			DB: DB{DSN: f.dsn},
		},
		Adapter: Adapter{
			Scheme:         f.scheme,
			RequestTimeout: f.requestTimeout,
			RetryCount:     f.retryCount,
			DefaultSite:    f.defaultSite,
		},
		Workers: Workers{
			RefreshInterval: f.refreshInterval,
		},
		ConfigFilePath: f.configPath,
	}
}
