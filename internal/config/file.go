// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// StructuredFileConfig mirrors [StructuredConfig] for JSON and YAML files.
// Durations are written as strings such as "20s".
type StructuredFileConfig struct {
	App struct {
		LogLevel      string `json:"log_level" yaml:"log_level"`
		LogFile       string `json:"log_file" yaml:"log_file"`
		AccountSecret string `json:"account_secret" yaml:"account_secret"`
		Version       string `json:"version" yaml:"version"`
	} `json:"app,omitempty" yaml:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" yaml:"dsn"`
		} `json:"db,omitempty" yaml:"db,omitempty"`
	} `json:"storage,omitempty" yaml:"storage,omitempty"`

	Adapter struct {
		Scheme         string   `json:"scheme" yaml:"scheme"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
		RetryCount     int      `json:"retry_count" yaml:"retry_count"`
		Service        string   `json:"service" yaml:"service"`
		DefaultSite    string   `json:"default_site" yaml:"default_site"`
	} `json:"adapter,omitempty" yaml:"adapter,omitempty"`

	Workers struct {
		RefreshInterval Duration `json:"refresh_interval" yaml:"refresh_interval"`
		ToastFade       Duration `json:"toast_fade" yaml:"toast_fade"`
	} `json:"workers,omitempty" yaml:"workers,omitempty"`
}

// parseFile reads a JSON (.json) or YAML (.yaml, .yml) config file.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}

	var fileCfg StructuredFileConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err = json.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedConfigFile, ext)
	}

	return fileCfg.toStructured(), nil
}

func (f StructuredFileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel:      f.App.LogLevel,
			LogFile:       f.App.LogFile,
			AccountSecret: f.App.AccountSecret,
			Version:       f.App.Version,
		},
		Storage: Storage{
			DB: DB{DSN: f.Storage.DB.DSN},
		},
		Adapter: Adapter{
			Scheme:         f.Adapter.Scheme,
			RequestTimeout: time.Duration(f.Adapter.RequestTimeout),
			RetryCount:     f.Adapter.RetryCount,
			Service:        f.Adapter.Service,
			DefaultSite:    f.Adapter.DefaultSite,
		},
		Workers: Workers{
			RefreshInterval: time.Duration(f.Workers.RefreshInterval),
			ToastFade:       time.Duration(f.Workers.ToastFade),
		},
	}
}

// Duration is a wrapper around time.Duration that supports JSON and YAML
// unmarshaling from strings like "1h", "30s" or from integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var n int64
	if err := node.Decode(&n); err == nil {
		*d = Duration(time.Duration(n))
		return nil
	}

	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	tmp, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}
