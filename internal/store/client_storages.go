// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-markdo/internal/config"
	"github.com/MKhiriev/go-markdo/internal/logger"
)

// ClientStorages groups all client-side repositories into a single value
// that can be passed around the service layer.
type ClientStorages struct {
	// AccountRepository stores remembered logins.
	AccountRepository AccountRepository
	// CacheRepository stores per-account snapshots of remote data.
	CacheRepository CacheRepository
	// PreferenceRepository is the key/value store backing RuleRepository.
	PreferenceRepository PreferenceRepository
	// RuleRepository stores text transform rules and their enable flag.
	RuleRepository RuleRepository

	db *DB
}

// NewClientStorages initialises the client storage layer:
//  1. opens the SQLite file named by cfg.DB.DSN, creating it when missing;
//  2. runs pending schema migrations via [DB.Migrate];
//  3. wires every repository to the connection and loads the stored rules.
//
// sealer may be nil, in which case passwords are stored as given.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, sealer PasswordSealer, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	prefs := NewPreferenceRepository(db, logger)
	rules, err := NewRuleRepository(ctx, prefs, logger)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("loading rules failed: %w", err)
	}

	return &ClientStorages{
		AccountRepository:    NewAccountRepository(db, sealer, logger),
		CacheRepository:      NewCacheRepository(db, logger),
		PreferenceRepository: prefs,
		RuleRepository:       rules,
		db:                   db,
	}, nil
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
