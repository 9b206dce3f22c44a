// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrMalformedRule is returned when a serialized rule lacks a required field
// or carries an unknown rule type.
var ErrMalformedRule = errors.New("malformed text transform rule")

// RuleType selects how a rule matcher is interpreted.
type RuleType string

const (
	// RuleKeyword replaces literal occurrences of the matcher.
	RuleKeyword RuleType = "KEYWORD"
	// RuleRegex replaces every match of the matcher pattern.
	RuleRegex RuleType = "REGEX"
	// RuleLocation replaces the whole text shown at the matcher location key.
	RuleLocation RuleType = "LOCATION"
)

// Valid reports whether t is one of the known rule types.
func (t RuleType) Valid() bool {
	switch t {
	case RuleKeyword, RuleRegex, RuleLocation:
		return true
	}
	return false
}

func (t *RuleType) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	rt := RuleType(s)
	if !rt.Valid() {
		return fmt.Errorf("%w: unknown rule type %q", ErrMalformedRule, s)
	}
	*t = rt
	return nil
}

// TextTransformRule is one user-defined substitution. Rules apply in stored
// order; the ID is unique within a collection.
type TextTransformRule struct {
	ID               string   `json:"id"`
	Type             RuleType `json:"type"`
	Matcher          string   `json:"matcher"`
	Replacement      string   `json:"replacement"`
	Enabled          bool     `json:"enabled"`
	IgnoreCase       bool     `json:"ignoreCase"`
	Note             string   `json:"note"`
	CreatedAtEpochMs int64    `json:"createdAtEpochMs"`
}

// UnmarshalJSON decodes a rule, applying the defaults of older exports:
// enabled and ignoreCase default to true, note to "", createdAtEpochMs to now.
// id, type, matcher and replacement are required.
func (r *TextTransformRule) UnmarshalJSON(b []byte) error {
	var raw struct {
		ID               *string   `json:"id"`
		Type             *RuleType `json:"type"`
		Matcher          *string   `json:"matcher"`
		Replacement      *string   `json:"replacement"`
		Enabled          *bool     `json:"enabled"`
		IgnoreCase       *bool     `json:"ignoreCase"`
		Note             *string   `json:"note"`
		CreatedAtEpochMs *int64    `json:"createdAtEpochMs"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	switch {
	case raw.ID == nil:
		return fmt.Errorf("%w: missing id", ErrMalformedRule)
	case raw.Type == nil:
		return fmt.Errorf("%w: missing type", ErrMalformedRule)
	case raw.Matcher == nil:
		return fmt.Errorf("%w: missing matcher", ErrMalformedRule)
	case raw.Replacement == nil:
		return fmt.Errorf("%w: missing replacement", ErrMalformedRule)
	}

	*r = TextTransformRule{
		ID:               *raw.ID,
		Type:             *raw.Type,
		Matcher:          *raw.Matcher,
		Replacement:      *raw.Replacement,
		Enabled:          true,
		IgnoreCase:       true,
		CreatedAtEpochMs: time.Now().UnixMilli(),
	}
	if raw.Enabled != nil {
		r.Enabled = *raw.Enabled
	}
	if raw.IgnoreCase != nil {
		r.IgnoreCase = *raw.IgnoreCase
	}
	if raw.Note != nil {
		r.Note = *raw.Note
	}
	if raw.CreatedAtEpochMs != nil {
		r.CreatedAtEpochMs = *raw.CreatedAtEpochMs
	}

	return nil
}

// RuleBundleVersion is the current export envelope version.
const RuleBundleVersion = 1

// RuleBundle is the versioned export envelope.
type RuleBundle struct {
	Version int                 `json:"version"`
	Rules   []TextTransformRule `json:"rules"`
}

// RuleDraft carries the user-editable fields of a rule.
type RuleDraft struct {
	Type        RuleType
	Matcher     string
	Replacement string
	IgnoreCase  bool
	Note        string
}

// DraftFromRule returns the editable fields of rule.
func DraftFromRule(rule TextTransformRule) RuleDraft {
	return RuleDraft{
		Type:        rule.Type,
		Matcher:     rule.Matcher,
		Replacement: rule.Replacement,
		IgnoreCase:  rule.IgnoreCase,
		Note:        rule.Note,
	}
}

// TextContext describes where a string is displayed.
type TextContext struct {
	LocationKey   string
	LocationLabel string
}

// NewTextContext returns a context whose label equals its key.
func NewTextContext(locationKey string) TextContext {
	return TextContext{LocationKey: locationKey, LocationLabel: locationKey}
}
