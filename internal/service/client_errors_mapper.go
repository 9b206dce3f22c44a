// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-markdo/internal/adapter"
	"github.com/MKhiriev/go-markdo/internal/app"
)

// failureKind classifies a failed login.
type failureKind int

const (
	failureUnknown failureKind = iota
	failureInvalidCredentials
	failureNetwork
)

// loginFailure is a classified login error with the reason shown to the
// user.
type loginFailure struct {
	kind    failureKind
	message string
}

// classifyLoginError translates an adapter error into a login failure.
// Anything that is neither a credential nor a network problem is Unknown and
// keeps the error text.
func classifyLoginError(err error) loginFailure {
	switch {
	case errors.Is(err, adapter.ErrInvalidCredentials):
		return loginFailure{kind: failureInvalidCredentials, message: app.MsgInvalidCredentials}
	case errors.Is(err, adapter.ErrNetwork):
		return loginFailure{kind: failureNetwork, message: app.MsgNetworkError}
	default:
		return unknownFailure(err)
	}
}

// unknownFailure is used for adapter errors outside the known categories and
// for store errors inside login flows.
func unknownFailure(err error) loginFailure {
	msg := ""
	if err != nil {
		msg = strings.TrimSpace(err.Error())
	}
	if msg == "" {
		msg = app.MsgLoginFailedUnknown
	}
	return loginFailure{kind: failureUnknown, message: msg}
}

// fetchErrorMessage is the Error(message) text of a failed entity refresh.
func fetchErrorMessage(err error) string {
	switch {
	case errors.Is(err, adapter.ErrNetwork):
		return app.MsgNetworkError
	case err == nil || strings.TrimSpace(err.Error()) == "":
		return app.MsgUnknownError
	default:
		return err.Error()
	}
}
