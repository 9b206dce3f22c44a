// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/go-markdo/internal/app"
	"github.com/MKhiriev/go-markdo/internal/service"
	"github.com/MKhiriev/go-markdo/internal/validators"
)

// humanizeError maps service errors to the short messages shown to the user.
func humanizeError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrImportEmpty):
		return app.MsgImportEmpty
	case errors.Is(err, service.ErrImportFormat):
		return app.MsgImportInvalidFormat
	case errors.Is(err, service.ErrRuleNotFound):
		return app.MsgRuleNotFound
	case errors.Is(err, validators.ErrEmptyMatcher):
		return "matcher must not be blank"
	case errors.Is(err, validators.ErrInvalidRegex):
		return "invalid regular expression"
	case errors.Is(err, validators.ErrInvalidRuleType):
		return "unknown rule type"
	default:
		return err.Error()
	}
}
