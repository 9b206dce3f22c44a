// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// Account is one remembered Moodle login. AccountKey is derived from the
// normalized site and username, so saving the same pair twice updates the
// existing row instead of creating a new one.
type Account struct {
	// AccountKey is lower(NormalizeSite(BaseSite)) + "|" + lower(trim(Username)).
	AccountKey string `json:"account_key"`

	// BaseSite is the normalized site host (and optional path) without scheme.
	BaseSite string `json:"base_site"`

	Username string `json:"username"`

	// Password is the credential used for automatic re-login. It is never
	// serialized into exports.
	Password string `json:"-"`

	// LastLoginEpochMs is the wall-clock time of the last successful login.
	LastLoginEpochMs int64 `json:"last_login_epoch_ms"`

	// IsActive marks the account currently driving the session. At most one
	// account is active at any time.
	IsActive bool `json:"is_active"`
}

// LoginDraft pre-fills the login form.
type LoginDraft struct {
	BaseSite string
	Username string
	Password string
}

// Draft returns the login form values stored in the account.
func (a Account) Draft() LoginDraft {
	return LoginDraft{BaseSite: a.BaseSite, Username: a.Username, Password: a.Password}
}

// NormalizeSite trims the raw site, drops an "https://" or "http://" prefix
// and strips trailing slashes.
func NormalizeSite(site string) string {
	s := strings.TrimSpace(site)
	s = strings.TrimPrefix(s, "https://")
	s = strings.TrimPrefix(s, "http://")
	s = strings.TrimSpace(s)
	return strings.TrimRight(s, "/")
}

// BuildAccountKey derives the stable account key for a site and username.
// Equivalent inputs that differ only in case, surrounding whitespace, scheme
// prefix or trailing slash produce the same key.
func BuildAccountKey(site, username string) string {
	return strings.ToLower(NormalizeSite(site)) + "|" + strings.ToLower(strings.TrimSpace(username))
}
