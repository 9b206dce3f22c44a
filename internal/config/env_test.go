// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.yaml",

		"APP_LOG_LEVEL":      "warn",
		"APP_LOG_FILE":       "/tmp/markdo.log",
		"APP_ACCOUNT_SECRET": "s3cret",
		"APP_VERSION":        "1.2.3",

		// Storage has nested prefixes: STORAGE_ + DB_
		"STORAGE_DB_DSN": "/var/lib/markdo.db",

		"ADAPTER_SCHEME":          "http",
		"ADAPTER_REQUEST_TIMEOUT": "30s",
		"ADAPTER_RETRY_COUNT":     "3",
		"ADAPTER_SERVICE":         "custom_service",
		"ADAPTER_DEFAULT_SITE":    "moodle.example.edu",

		"WORKERS_REFRESH_INTERVAL": "5m",
		"WORKERS_TOAST_FADE":       "250ms",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.yaml", cfg.ConfigFilePath)

	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.Equal(t, "/tmp/markdo.log", cfg.App.LogFile)
	assert.Equal(t, "s3cret", cfg.App.AccountSecret)
	assert.Equal(t, "1.2.3", cfg.App.Version)

	assert.Equal(t, "/var/lib/markdo.db", cfg.Storage.DB.DSN)

	assert.Equal(t, "http", cfg.Adapter.Scheme)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 3, cfg.Adapter.RetryCount)
	assert.Equal(t, "custom_service", cfg.Adapter.Service)
	assert.Equal(t, "moodle.example.edu", cfg.Adapter.DefaultSite)

	assert.Equal(t, 5*time.Minute, cfg.Workers.RefreshInterval)
	assert.Equal(t, 250*time.Millisecond, cfg.Workers.ToastFade)
}

func TestParseEnv_PartialFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"STORAGE_DB_DSN": "partial.db",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "partial.db", cfg.Storage.DB.DSN)
	assert.Zero(t, cfg.Adapter.RequestTimeout)
}

func TestParseEnv_InvalidInt(t *testing.T) {
	setEnvVars(t, map[string]string{
		"ADAPTER_RETRY_COUNT": "many",
	})

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}
