// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFile_JSON(t *testing.T) {
	path := writeTempConfig(t, "cfg.json", `{
		"app": {"log_level": "warn", "account_secret": "k"},
		"storage": {"db": {"dsn": "json.db"}},
		"adapter": {"scheme": "http", "request_timeout": "15s", "retry_count": 2},
		"workers": {"refresh_interval": "2m", "toast_fade": 100000000}
	}`)

	cfg, err := parseFile(path)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.Equal(t, "k", cfg.App.AccountSecret)
	assert.Equal(t, "json.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "http", cfg.Adapter.Scheme)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 2, cfg.Adapter.RetryCount)
	assert.Equal(t, 2*time.Minute, cfg.Workers.RefreshInterval)
	assert.Equal(t, 100*time.Millisecond, cfg.Workers.ToastFade)
	assert.Empty(t, cfg.ConfigFilePath)
}

func TestParseFile_YAML(t *testing.T) {
	path := writeTempConfig(t, "cfg.yaml", `
app:
  log_file: /tmp/y.log
storage:
  db:
    dsn: yaml.db
adapter:
  default_site: moodle.example.edu
  request_timeout: 45s
workers:
  refresh_interval: 30m
`)

	cfg, err := parseFile(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/y.log", cfg.App.LogFile)
	assert.Equal(t, "yaml.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "moodle.example.edu", cfg.Adapter.DefaultSite)
	assert.Equal(t, 45*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 30*time.Minute, cfg.Workers.RefreshInterval)
}

func TestParseFile_Errors(t *testing.T) {
	t.Run("unsupported extension", func(t *testing.T) {
		_, err := parseFile(writeTempConfig(t, "cfg.toml", "a = 1"))
		assert.ErrorIs(t, err, ErrUnsupportedConfigFile)
	})

	t.Run("broken json", func(t *testing.T) {
		_, err := parseFile(writeTempConfig(t, "cfg.json", "{"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error decoding json configs")
	})

	t.Run("bad yaml duration", func(t *testing.T) {
		_, err := parseFile(writeTempConfig(t, "cfg.yml", "adapter:\n  request_timeout: soon\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error decoding yaml configs")
	})
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration(90 * time.Second))
	require.NoError(t, err)
	assert.JSONEq(t, `"1m30s"`, string(b))
}
