// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	listAccounts = `
		SELECT
			account_key,
			base_site,
			username,
			password,
			last_login_epoch_ms,
			is_active
		FROM saved_login_accounts
		ORDER BY is_active DESC, last_login_epoch_ms DESC;`

	getAccountByKey = `
		SELECT
			account_key,
			base_site,
			username,
			password,
			last_login_epoch_ms,
			is_active
		FROM saved_login_accounts
		WHERE account_key = ?
		LIMIT 1;`

	getActiveAccount = `
		SELECT
			account_key,
			base_site,
			username,
			password,
			last_login_epoch_ms,
			is_active
		FROM saved_login_accounts
		WHERE is_active = 1
		LIMIT 1;`

	hasAnyAccount = `SELECT EXISTS(SELECT 1 FROM saved_login_accounts);`

	upsertAccount = `
		INSERT INTO saved_login_accounts (
			account_key,
			base_site,
			username,
			password,
			last_login_epoch_ms,
			is_active
		) VALUES (?, ?, ?, ?, ?, 0)
		ON CONFLICT (account_key) DO UPDATE SET
			base_site = excluded.base_site,
			username = excluded.username,
			password = excluded.password,
			last_login_epoch_ms = excluded.last_login_epoch_ms;`

	clearActiveAccounts = `UPDATE saved_login_accounts SET is_active = 0 WHERE is_active = 1;`

	markAccountActive = `UPDATE saved_login_accounts SET is_active = 1 WHERE account_key = ?;`

	deleteInactiveAccount = `DELETE FROM saved_login_accounts WHERE account_key = ? AND is_active = 0;`

	deleteAllAccounts = `DELETE FROM saved_login_accounts;`
)

const (
	getPreference = `SELECT value FROM preferences WHERE key = ?;`

	setPreference = `
		INSERT INTO preferences (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value;`

	deletePreference = `DELETE FROM preferences WHERE key = ?;`
)

const (
	hasAnyCache = `
		SELECT
			EXISTS(SELECT 1 FROM cache_user_profile) OR
			EXISTS(SELECT 1 FROM cache_timeline) OR
			EXISTS(SELECT 1 FROM cache_recent_items) OR
			EXISTS(SELECT 1 FROM cache_courses);`

	hasAnyCacheForAccount = `
		SELECT
			EXISTS(SELECT 1 FROM cache_user_profile WHERE account_key = ?1) OR
			EXISTS(SELECT 1 FROM cache_timeline WHERE account_key = ?1) OR
			EXISTS(SELECT 1 FROM cache_recent_items WHERE account_key = ?1) OR
			EXISTS(SELECT 1 FROM cache_courses WHERE account_key = ?1);`
)
