// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-markdo/internal/logger"
	"github.com/MKhiriev/go-markdo/models"
)

// accountRepository is the sqlite-backed implementation of
// [AccountRepository] over the "saved_login_accounts" table.
type accountRepository struct {
	*DB
	sealer PasswordSealer
	now    func() time.Time
	logger *logger.Logger
}

// NewAccountRepository constructs an [AccountRepository]. A nil sealer
// stores passwords as given.
func NewAccountRepository(db *DB, sealer PasswordSealer, logger *logger.Logger) AccountRepository {
	if sealer == nil {
		sealer = plainSealer{}
	}
	return &accountRepository{
		DB:     db,
		sealer: sealer,
		now:    time.Now,
		logger: logger,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *accountRepository) scanAccount(ctx context.Context, row rowScanner) (models.Account, error) {
	var (
		account models.Account
		stored  string
	)
	if err := row.Scan(
		&account.AccountKey,
		&account.BaseSite,
		&account.Username,
		&stored,
		&account.LastLoginEpochMs,
		&account.IsActive,
	); err != nil {
		return models.Account{}, err
	}

	password, err := r.sealer.Open(stored)
	if err != nil {
		// the account stays usable for manual login
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "accountRepository.scanAccount").
			Str("account_key", account.AccountKey).
			Msg("stored password could not be opened")
		password = ""
	}
	account.Password = password

	return account, nil
}

func (r *accountRepository) ListAccounts(ctx context.Context) ([]models.Account, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, listAccounts)
	if err != nil {
		log.Err(err).Str("func", "accountRepository.ListAccounts").Msg("failed to query accounts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	accounts := make([]models.Account, 0, 4)
	for rows.Next() {
		account, scanErr := r.scanAccount(ctx, rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "accountRepository.ListAccounts").Msg("failed to scan account row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		accounts = append(accounts, account)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "accountRepository.ListAccounts").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return accounts, nil
}

func (r *accountRepository) GetByKey(ctx context.Context, accountKey string) (models.Account, error) {
	return r.getOne(ctx, "accountRepository.GetByKey", getAccountByKey, accountKey)
}

func (r *accountRepository) GetActive(ctx context.Context) (models.Account, error) {
	return r.getOne(ctx, "accountRepository.GetActive", getActiveAccount)
}

func (r *accountRepository) getOne(ctx context.Context, funcName, query string, args ...any) (models.Account, error) {
	account, err := r.scanAccount(ctx, r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Account{}, ErrAccountNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("failed to scan account row")
		return models.Account{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return account, nil
}

func (r *accountRepository) HasAny(ctx context.Context) (bool, error) {
	var exists bool
	if err := r.DB.QueryRowContext(ctx, hasAnyAccount).Scan(&exists); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "accountRepository.HasAny").Msg("failed to query accounts")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return exists, nil
}

// SaveSuccessfulLogin normalizes site and username, upserts the row with the
// current time and activates it in one transaction.
func (r *accountRepository) SaveSuccessfulLogin(ctx context.Context, site, username, password string) (models.Account, error) {
	log := logger.FromContext(ctx)

	account := models.Account{
		AccountKey:       models.BuildAccountKey(site, username),
		BaseSite:         models.NormalizeSite(site),
		Username:         strings.TrimSpace(username),
		Password:         password,
		LastLoginEpochMs: r.now().UnixMilli(),
		IsActive:         true,
	}

	sealed, err := r.sealer.Seal(password)
	if err != nil {
		log.Err(err).Str("func", "accountRepository.SaveSuccessfulLogin").Msg("failed to seal password")
		return models.Account{}, fmt.Errorf("%w: %w", ErrSealingPassword, err)
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "accountRepository.SaveSuccessfulLogin").Msg("failed to begin transaction")
		return models.Account{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, upsertAccount,
		account.AccountKey,
		account.BaseSite,
		account.Username,
		sealed,
		account.LastLoginEpochMs,
	); err != nil {
		log.Err(err).
			Str("func", "accountRepository.SaveSuccessfulLogin").
			Str("account_key", account.AccountKey).
			Msg("failed to upsert account")
		return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if _, err = setActiveTx(ctx, tx, account.AccountKey); err != nil {
		log.Err(err).
			Str("func", "accountRepository.SaveSuccessfulLogin").
			Str("account_key", account.AccountKey).
			Msg("failed to activate account")
		return models.Account{}, err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "accountRepository.SaveSuccessfulLogin").Msg("failed to commit transaction")
		return models.Account{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return account, nil
}

func (r *accountRepository) SetActive(ctx context.Context, accountKey string) (bool, error) {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "accountRepository.SetActive").Msg("failed to begin transaction")
		return false, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	found, err := setActiveTx(ctx, tx, accountKey)
	if err != nil {
		log.Err(err).Str("func", "accountRepository.SetActive").Str("account_key", accountKey).Msg("failed to activate account")
		return false, err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "accountRepository.SetActive").Msg("failed to commit transaction")
		return false, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return found, nil
}

func setActiveTx(ctx context.Context, tx *sql.Tx, accountKey string) (bool, error) {
	if _, err := tx.ExecContext(ctx, clearActiveAccounts); err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	res, err := tx.ExecContext(ctx, markAccountActive, accountKey)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected > 0, nil
}

func (r *accountRepository) ClearActive(ctx context.Context) error {
	if _, err := r.DB.ExecContext(ctx, clearActiveAccounts); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "accountRepository.ClearActive").Msg("failed to clear active account")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

// Remove deletes only inactive rows, so the active-account check and the
// delete are a single statement.
func (r *accountRepository) Remove(ctx context.Context, accountKey string) (bool, error) {
	res, err := r.DB.ExecContext(ctx, deleteInactiveAccount, accountKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "accountRepository.Remove").
			Str("account_key", accountKey).
			Msg("failed to delete account")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected > 0, nil
}

func (r *accountRepository) ClearAll(ctx context.Context) error {
	if _, err := r.DB.ExecContext(ctx, deleteAllAccounts); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "accountRepository.ClearAll").Msg("failed to delete accounts")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

// plainSealer stores passwords unchanged.
type plainSealer struct{}

func (plainSealer) Seal(plain string) (string, error)  { return plain, nil }
func (plainSealer) Open(stored string) (string, error) { return stored, nil }
