// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message strings shared by the
// session service, the TUI and the CLI.
//
// Unauthed reasons published by the session service are taken from here so
// that the presentation layer can compare against them (for example to reset
// the login form after [MsgUserLoggedOut]).
package app

const (
	// MsgNoLoginInfo is the Unauthed reason when no account is active.
	MsgNoLoginInfo = "no login info"

	// MsgMissingLoginInfo is the Unauthed reason when the login form is
	// submitted with a blank site, username or password.
	MsgMissingLoginInfo = "missing login info"

	// MsgInvalidCredentials is the Unauthed reason when Moodle rejects the
	// username/password pair.
	MsgInvalidCredentials = "invalid credentials"

	// MsgNetworkError is the Unauthed reason when the site cannot be reached
	// and no offline cache is usable.
	MsgNetworkError = "network error"

	// MsgUserLoggedOut is the Unauthed reason after an explicit logout.
	MsgUserLoggedOut = "user logged out"

	// MsgLoginFailedUnknown is used when a failure carries no message.
	MsgLoginFailedUnknown = "login failed: unknown reason"

	// MsgImportInvalidFormat is shown when a rule import cannot be decoded.
	MsgImportInvalidFormat = "import failed: invalid format"

	// MsgImportEmpty is shown when a rule import is blank.
	MsgImportEmpty = "import failed: nothing to import"

	// MsgRuleNotFound is shown when an edited rule no longer exists.
	MsgRuleNotFound = "rule not found"

	// MsgUnknownError is the Error(message) text of a failed refresh that
	// carries no message.
	MsgUnknownError = "unknown error"

	MsgRulesCopied = "rules copied to clipboard"
)
