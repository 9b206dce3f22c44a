// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/MKhiriev/go-markdo/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldID targets the rule identifier.
	FieldID = "id"

	// FieldType targets the rule type (KEYWORD, REGEX, LOCATION).
	FieldType = "type"

	// FieldMatcher targets the rule matcher: non-blank, and a compilable
	// pattern for REGEX rules.
	FieldMatcher = "matcher"

	// FieldRules targets a whole rule collection: every rule plus id
	// uniqueness.
	FieldRules = "rules"

	// FieldSite targets the login form site.
	FieldSite = "site"

	// FieldUsername targets the login form username.
	FieldUsername = "username"

	// FieldPassword targets the login form password.
	FieldPassword = "password"
)

// RuleValidator implements [Validator] for text transform rules, rule
// drafts, rule collections and login drafts.
type RuleValidator struct{}

// NewRuleValidator constructs a new RuleValidator and returns it as the
// Validator interface.
func NewRuleValidator() Validator {
	return &RuleValidator{}
}

// Validate dispatches on the dynamic type of obj.
//
// Supported types:
//   - models.RuleDraft / *models.RuleDraft
//   - models.TextTransformRule / *models.TextTransformRule
//   - []models.TextTransformRule
//   - models.LoginDraft / *models.LoginDraft
//
// Returns ErrUnsupportedType for anything else.
func (v *RuleValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RuleDraft:
		return v.validateDraft(ctx, value, fields...)
	case *models.RuleDraft:
		return v.validateDraft(ctx, *value, fields...)

	case models.TextTransformRule:
		return v.validateRule(ctx, value, fields...)
	case *models.TextTransformRule:
		return v.validateRule(ctx, *value, fields...)

	case []models.TextTransformRule:
		return v.validateRules(ctx, value)

	case models.LoginDraft:
		return v.validateLogin(ctx, value, fields...)
	case *models.LoginDraft:
		return v.validateLogin(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateDraft checks the editable fields of a rule.
//
// Default validated fields: Type, Matcher.
func (v *RuleValidator) validateDraft(_ context.Context, draft models.RuleDraft, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldType, FieldMatcher}
	}

	for _, f := range fields {
		switch f {
		case FieldType:
			if !draft.Type.Valid() {
				return fmt.Errorf("%w: %q", ErrInvalidRuleType, draft.Type)
			}
		case FieldMatcher:
			if err := validateMatcher(draft.Type, draft.Matcher, draft.IgnoreCase); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateRule checks a stored or imported rule.
//
// Default validated fields: ID, Type, Matcher.
func (v *RuleValidator) validateRule(ctx context.Context, rule models.TextTransformRule, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldType, FieldMatcher}
	}

	draftFields := make([]string, 0, len(fields))
	for _, f := range fields {
		if f == FieldID {
			if strings.TrimSpace(rule.ID) == "" {
				return ErrEmptyRuleID
			}
			continue
		}
		draftFields = append(draftFields, f)
	}
	if len(draftFields) == 0 {
		return nil
	}

	return v.validateDraft(ctx, models.DraftFromRule(rule), draftFields...)
}

// validateRules checks a whole collection. Ids must be unique. Matchers
// are only required to be non-blank: an invalid regex in an imported rule
// is kept and simply never fires.
func (v *RuleValidator) validateRules(ctx context.Context, rules []models.TextTransformRule) error {
	seen := make(map[string]struct{}, len(rules))
	for i, rule := range rules {
		if err := v.validateRule(ctx, rule, FieldID, FieldType); err != nil {
			return fmt.Errorf("rule %d: %w", i, err)
		}
		if _, dup := seen[rule.ID]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateRuleID, rule.ID)
		}
		seen[rule.ID] = struct{}{}
	}
	return nil
}

// validateLogin checks that the login form is filled in after trimming.
//
// Default validated fields: Site, Username, Password.
func (v *RuleValidator) validateLogin(_ context.Context, draft models.LoginDraft, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSite, FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldSite:
			if models.NormalizeSite(draft.BaseSite) == "" {
				return ErrMissingLoginInfo
			}
		case FieldUsername:
			if strings.TrimSpace(draft.Username) == "" {
				return ErrMissingLoginInfo
			}
		case FieldPassword:
			if strings.TrimSpace(draft.Password) == "" {
				return ErrMissingLoginInfo
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateMatcher(ruleType models.RuleType, matcher string, ignoreCase bool) error {
	trimmed := strings.TrimSpace(matcher)
	if trimmed == "" {
		return ErrEmptyMatcher
	}
	if ruleType != models.RuleRegex {
		return nil
	}

	var opts regexp2.RegexOptions
	if ignoreCase {
		opts = regexp2.IgnoreCase
	}
	if _, err := regexp2.Compile(trimmed, opts); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRegex, err)
	}
	return nil
}
