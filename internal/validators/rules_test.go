// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-markdo/models"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func rule(id string, t models.RuleType, matcher string) models.TextTransformRule {
	return models.TextTransformRule{ID: id, Type: t, Matcher: matcher, Replacement: "x", Enabled: true}
}

// ---------------------------------------------------------------------------
// Dispatch
// ---------------------------------------------------------------------------

func TestNewRuleValidator(t *testing.T) {
	require.NotNil(t, NewRuleValidator())
}

func TestValidate_UnsupportedType(t *testing.T) {
	err := NewRuleValidator().Validate(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestValidate_PointerForms(t *testing.T) {
	v := NewRuleValidator()
	ctx := context.Background()

	draft := models.RuleDraft{Type: models.RuleKeyword, Matcher: "a"}
	assert.NoError(t, v.Validate(ctx, &draft))

	r := rule("1", models.RuleKeyword, "a")
	assert.NoError(t, v.Validate(ctx, &r))

	login := models.LoginDraft{BaseSite: "m.example.edu", Username: "u", Password: "p"}
	assert.NoError(t, v.Validate(ctx, &login))
}

// ---------------------------------------------------------------------------
// Drafts
// ---------------------------------------------------------------------------

func TestValidateDraft(t *testing.T) {
	tests := []struct {
		name    string
		draft   models.RuleDraft
		wantErr error
	}{
		{"keyword ok", models.RuleDraft{Type: models.RuleKeyword, Matcher: "Week 1"}, nil},
		{"location ok", models.RuleDraft{Type: models.RuleLocation, Matcher: "course/course:42/name"}, nil},
		{"regex ok", models.RuleDraft{Type: models.RuleRegex, Matcher: `\d+`}, nil},
		{"regex ok ignore case", models.RuleDraft{Type: models.RuleRegex, Matcher: `(?<w>week)\s\k<w>`, IgnoreCase: true}, nil},
		{"blank matcher", models.RuleDraft{Type: models.RuleKeyword, Matcher: "   "}, ErrEmptyMatcher},
		{"blank regex", models.RuleDraft{Type: models.RuleRegex, Matcher: ""}, ErrEmptyMatcher},
		{"broken regex", models.RuleDraft{Type: models.RuleRegex, Matcher: "["}, ErrInvalidRegex},
		{"unknown type", models.RuleDraft{Type: "WILDCARD", Matcher: "a"}, ErrInvalidRuleType},
	}

	v := NewRuleValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.draft)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateDraft_BrokenPatternAllowedForKeyword(t *testing.T) {
	err := NewRuleValidator().Validate(context.Background(), models.RuleDraft{Type: models.RuleKeyword, Matcher: "["})
	assert.NoError(t, err)
}

func TestValidateDraft_UnknownField(t *testing.T) {
	err := NewRuleValidator().Validate(context.Background(), models.RuleDraft{}, "colour")
	assert.ErrorIs(t, err, ErrUnknownField)
}

// ---------------------------------------------------------------------------
// Rules and collections
// ---------------------------------------------------------------------------

func TestValidateRule_EmptyID(t *testing.T) {
	err := NewRuleValidator().Validate(context.Background(), rule(" ", models.RuleKeyword, "a"))
	assert.ErrorIs(t, err, ErrEmptyRuleID)
}

func TestValidateRule_OnlyID(t *testing.T) {
	err := NewRuleValidator().Validate(context.Background(), rule("1", models.RuleRegex, "["), FieldID)
	assert.NoError(t, err)
}

func TestValidateRules(t *testing.T) {
	v := NewRuleValidator()
	ctx := context.Background()

	ok := []models.TextTransformRule{
		rule("1", models.RuleKeyword, "a"),
		rule("2", models.RuleRegex, "["),
	}
	assert.NoError(t, v.Validate(ctx, ok))
	assert.NoError(t, v.Validate(ctx, []models.TextTransformRule{}))

	dup := []models.TextTransformRule{
		rule("1", models.RuleKeyword, "a"),
		rule("1", models.RuleKeyword, "b"),
	}
	assert.ErrorIs(t, v.Validate(ctx, dup), ErrDuplicateRuleID)

	missing := []models.TextTransformRule{rule("", models.RuleKeyword, "a")}
	assert.ErrorIs(t, v.Validate(ctx, missing), ErrEmptyRuleID)
}

// ---------------------------------------------------------------------------
// Login drafts
// ---------------------------------------------------------------------------

func TestValidateLogin(t *testing.T) {
	v := NewRuleValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.LoginDraft{BaseSite: "https://m.example.edu/", Username: "u", Password: "p"}))

	blank := []models.LoginDraft{
		{BaseSite: "https:// / ", Username: "u", Password: "p"},
		{BaseSite: "m.example.edu", Username: "  ", Password: "p"},
		{BaseSite: "m.example.edu", Username: "u", Password: ""},
	}
	for _, d := range blank {
		assert.ErrorIs(t, v.Validate(ctx, d), ErrMissingLoginInfo)
	}

	assert.NoError(t, v.Validate(ctx, models.LoginDraft{BaseSite: "m.example.edu"}, FieldSite))
}
