// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Sentinel errors returned by [MoodleAdapter] implementations. Callers match
// them with [errors.Is]; the wrapped message carries the Moodle error text.
var (
	// ErrInvalidCredentials is returned when the site rejects the username
	// and password (Moodle errorcode "invalidlogin").
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNetwork is returned when the site cannot be reached: transport
	// failures, timeouts and gateway errors.
	ErrNetwork = errors.New("network error")

	// ErrWebService is returned when Moodle answers with an exception or an
	// error code other than invalid credentials.
	ErrWebService = errors.New("moodle web service error")

	// ErrUnexpectedResponse is returned when the response status or body
	// cannot be interpreted.
	ErrUnexpectedResponse = errors.New("unexpected response")

	// ErrNoSession is returned by data calls made before a successful Login,
	// after ClearSession, or when the site reports the token as invalid.
	ErrNoSession = errors.New("no active session")

	// ErrInvalidSite is returned when the site cannot form a base URL.
	ErrInvalidSite = errors.New("invalid site address")
)
