// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks settings shared by every entry point. Client-specific
// invariants live in [ClientConfig.validate].
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.RetryCount < 0 {
		return ErrInvalidAdapterConfigs
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.Scheme != "https" && cfg.Adapter.Scheme != "http" {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Adapter.RequestTimeout <= 0 || cfg.Adapter.Service == "" {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.RefreshInterval <= 0 || cfg.Workers.ToastFade < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
