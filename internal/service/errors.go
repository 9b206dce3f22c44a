// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-markdo/internal/app"
)

var (
	// ErrValidation wraps a rejected rule draft. The validator error is
	// wrapped alongside it.
	ErrValidation = errors.New("validation error")

	ErrImportFormat = errors.New(app.MsgImportInvalidFormat)
	ErrImportEmpty  = errors.New(app.MsgImportEmpty)
	ErrRuleNotFound = errors.New(app.MsgRuleNotFound)

	// ErrNoActiveAccount is returned by a refresh when no account key can be
	// resolved.
	ErrNoActiveAccount = errors.New("no active account")

	ErrVersionIsNotSpecified = errors.New("version is not specified")
)
