// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/go-markdo/internal/logger"
	"github.com/MKhiriev/go-markdo/internal/state"
	"github.com/MKhiriev/go-markdo/models"
)

// Preference keys owned by the rule repository.
const (
	PrefTextTransformRules   = "text_transform_rules_json"
	PrefTextTransformEnabled = "text_transform_enabled"
)

// DefaultTextTransformEnabled applies when the enabled preference is unset.
const DefaultTextTransformEnabled = true

// ruleRepository keeps the rule collection as one versioned JSON blob in
// the preferences table and mirrors it into observable values.
type ruleRepository struct {
	prefs PreferenceRepository

	// mu serializes read-modify-write cycles on the blob.
	mu      sync.Mutex
	rules   *state.Value[[]models.TextTransformRule]
	enabled *state.Value[bool]

	logger *logger.Logger
}

// NewRuleRepository constructs a [RuleRepository] and loads the current
// preferences.
func NewRuleRepository(ctx context.Context, prefs PreferenceRepository, logger *logger.Logger) (RuleRepository, error) {
	r := &ruleRepository{
		prefs:   prefs,
		rules:   state.New[[]models.TextTransformRule](nil),
		enabled: state.New(DefaultTextTransformEnabled),
		logger:  logger,
	}
	if err := r.Reload(ctx); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *ruleRepository) Rules() *state.Value[[]models.TextTransformRule] { return r.rules }

func (r *ruleRepository) Enabled() *state.Value[bool] { return r.enabled }

func (r *ruleRepository) Reload(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	raw, _, err := r.prefs.Get(ctx, PrefTextTransformRules)
	if err != nil {
		return fmt.Errorf("failed to read rules: %w", err)
	}
	rules := DecodeStoredRules(ctx, raw)

	enabled := DefaultTextTransformEnabled
	rawEnabled, ok, err := r.prefs.Get(ctx, PrefTextTransformEnabled)
	if err != nil {
		return fmt.Errorf("failed to read enabled flag: %w", err)
	}
	if ok {
		if parsed, parseErr := strconv.ParseBool(rawEnabled); parseErr == nil {
			enabled = parsed
		}
	}

	r.rules.Set(rules)
	r.enabled.Set(enabled)
	return nil
}

func (r *ruleRepository) Upsert(ctx context.Context, rule models.TextTransformRule) error {
	return r.mutate(ctx, func(current []models.TextTransformRule) []models.TextTransformRule {
		if idx := slices.IndexFunc(current, func(x models.TextTransformRule) bool { return x.ID == rule.ID }); idx >= 0 {
			current[idx] = rule
			return current
		}
		return append(current, rule)
	})
}

func (r *ruleRepository) Delete(ctx context.Context, ruleID string) error {
	return r.mutate(ctx, func(current []models.TextTransformRule) []models.TextTransformRule {
		return slices.DeleteFunc(current, func(x models.TextTransformRule) bool { return x.ID == ruleID })
	})
}

func (r *ruleRepository) ReplaceAll(ctx context.Context, rules []models.TextTransformRule) error {
	return r.mutate(ctx, func([]models.TextTransformRule) []models.TextTransformRule {
		return slices.Clone(rules)
	})
}

func (r *ruleRepository) SetEnabled(ctx context.Context, enabled bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.prefs.Set(ctx, PrefTextTransformEnabled, strconv.FormatBool(enabled)); err != nil {
		return fmt.Errorf("failed to store enabled flag: %w", err)
	}
	r.enabled.Set(enabled)
	return nil
}

// mutate applies fn to a copy of the current collection, persists the
// result and republishes it. Nothing is published when persisting fails.
func (r *ruleRepository) mutate(ctx context.Context, fn func([]models.TextTransformRule) []models.TextTransformRule) error {
	log := logger.FromContext(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	updated := fn(slices.Clone(r.rules.Get()))

	payload, err := EncodeRules(updated)
	if err != nil {
		log.Err(err).Str("func", "ruleRepository.mutate").Msg("failed to encode rules")
		return err
	}

	if err = r.prefs.Set(ctx, PrefTextTransformRules, string(payload)); err != nil {
		log.Err(err).Str("func", "ruleRepository.mutate").Int("count", len(updated)).Msg("failed to store rules")
		return fmt.Errorf("failed to store rules: %w", err)
	}

	r.rules.Set(updated)
	return nil
}

// EncodeRules writes the compact versioned envelope.
func EncodeRules(rules []models.TextTransformRule) ([]byte, error) {
	if rules == nil {
		rules = []models.TextTransformRule{}
	}
	payload, err := json.Marshal(models.RuleBundle{Version: models.RuleBundleVersion, Rules: rules})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingRules, err)
	}
	return payload, nil
}

// DecodeStoredRules reads the envelope, falling back to a bare list. Blank or
// unreadable input yields an empty collection.
func DecodeStoredRules(ctx context.Context, raw string) []models.TextTransformRule {
	if strings.TrimSpace(raw) == "" {
		return []models.TextTransformRule{}
	}

	var bundle models.RuleBundle
	if err := json.Unmarshal([]byte(raw), &bundle); err == nil {
		if bundle.Rules == nil {
			return []models.TextTransformRule{}
		}
		return bundle.Rules
	}

	var list []models.TextTransformRule
	if err := json.Unmarshal([]byte(raw), &list); err == nil {
		if list == nil {
			return []models.TextTransformRule{}
		}
		return list
	}

	logger.FromContext(ctx).Warn().Str("func", "DecodeStoredRules").Msg("stored rules are unreadable; using empty set")
	return []models.TextTransformRule{}
}
