// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyRuleID      = errors.New("rule id is required")
	ErrDuplicateRuleID  = errors.New("duplicate rule id")
	ErrInvalidRuleType  = errors.New("invalid rule type")
	ErrEmptyMatcher     = errors.New("matcher must not be blank")
	ErrInvalidRegex     = errors.New("invalid regular expression")
	ErrMissingLoginInfo = errors.New("missing login info")
)
