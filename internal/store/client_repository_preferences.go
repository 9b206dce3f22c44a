// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-markdo/internal/logger"
)

type preferenceRepository struct {
	*DB
	logger *logger.Logger
}

// NewPreferenceRepository constructs a [PreferenceRepository] over the
// "preferences" table.
func NewPreferenceRepository(db *DB, logger *logger.Logger) PreferenceRepository {
	return &preferenceRepository{
		DB:     db,
		logger: logger,
	}
}

func (p *preferenceRepository) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := p.DB.QueryRowContext(ctx, getPreference, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "preferenceRepository.Get").
			Str("key", key).
			Msg("failed to read preference")
		return "", false, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return value, true, nil
}

func (p *preferenceRepository) Set(ctx context.Context, key, value string) error {
	if _, err := p.DB.ExecContext(ctx, setPreference, key, value); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "preferenceRepository.Set").
			Str("key", key).
			Msg("failed to write preference")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (p *preferenceRepository) Delete(ctx context.Context, key string) error {
	if _, err := p.DB.ExecContext(ctx, deletePreference, key); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "preferenceRepository.Delete").
			Str("key", key).
			Msg("failed to delete preference")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
