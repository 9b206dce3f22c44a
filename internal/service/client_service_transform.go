// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dlclark/regexp2"

	"github.com/MKhiriev/go-markdo/internal/logger"
	"github.com/MKhiriev/go-markdo/internal/state"
	"github.com/MKhiriev/go-markdo/internal/store"
	"github.com/MKhiriev/go-markdo/internal/utils"
	"github.com/MKhiriev/go-markdo/internal/validators"
	"github.com/MKhiriev/go-markdo/models"
)

// regexMatchTimeout bounds a single user pattern against one string.
const regexMatchTimeout = 200 * time.Millisecond

type textTransformService struct {
	repo      store.RuleRepository
	validator validators.Validator
	ids       utils.IDGenerator
	now       func() time.Time

	// compiled caches patterns for the current rule set; a nil entry marks a
	// pattern that failed to compile.
	mu       sync.Mutex
	compiled map[patternKey]*regexp2.Regexp

	logger *logger.Logger
}

type patternKey struct {
	pattern    string
	ignoreCase bool
}

// NewTextTransformService builds the transform engine on top of repo. The
// pattern cache is dropped whenever the rule collection changes.
func NewTextTransformService(repo store.RuleRepository, logger *logger.Logger) TextTransformService {
	s := &textTransformService{
		repo:      repo,
		validator: validators.NewRuleValidator(),
		ids:       utils.NewUUIDGenerator(),
		now:       time.Now,
		compiled:  make(map[patternKey]*regexp2.Regexp),
		logger:    logger,
	}

	repo.Rules().OnChange(func([]models.TextTransformRule) {
		s.mu.Lock()
		clear(s.compiled)
		s.mu.Unlock()
	})

	return s
}

// Transform implements [TextTransformService].
func (s *textTransformService) Transform(raw string, tc models.TextContext) string {
	if raw == "" || !s.repo.Enabled().Get() {
		return raw
	}

	rules := enabledRules(s.repo.Rules().Get())
	if rule, ok := matchLocation(rules, tc); ok {
		return rule.Replacement
	}

	text := raw
	for _, rule := range rules {
		text, _ = s.apply(rule, text)
	}
	return text
}

// GetEffectiveRules implements [TextTransformService].
func (s *textTransformService) GetEffectiveRules(raw string, tc models.TextContext) []models.TextTransformRule {
	if raw == "" || !s.repo.Enabled().Get() {
		return nil
	}

	rules := enabledRules(s.repo.Rules().Get())
	if rule, ok := matchLocation(rules, tc); ok {
		return []models.TextTransformRule{rule}
	}

	var fired []models.TextTransformRule
	text := raw
	for _, rule := range rules {
		var matched bool
		text, matched = s.apply(rule, text)
		if matched {
			fired = append(fired, rule)
		}
	}
	return fired
}

func enabledRules(all []models.TextTransformRule) []models.TextTransformRule {
	out := make([]models.TextTransformRule, 0, len(all))
	for _, r := range all {
		if r.Enabled {
			out = append(out, r)
		}
	}
	return out
}

func matchLocation(rules []models.TextTransformRule, tc models.TextContext) (models.TextTransformRule, bool) {
	key := models.CanonicalLocation(tc.LocationKey)
	for _, r := range rules {
		if r.Type == models.RuleLocation && models.CanonicalLocation(r.Matcher) == key {
			return r, true
		}
	}
	return models.TextTransformRule{}, false
}

// apply runs one KEYWORD or REGEX rule over text and reports whether it
// matched. A rule that cannot be evaluated leaves text unchanged.
func (s *textTransformService) apply(rule models.TextTransformRule, text string) (string, bool) {
	if strings.TrimSpace(rule.Matcher) == "" {
		return text, false
	}

	switch rule.Type {
	case models.RuleKeyword:
		if !rule.IgnoreCase {
			if !strings.Contains(text, rule.Matcher) {
				return text, false
			}
			return strings.ReplaceAll(text, rule.Matcher, rule.Replacement), true
		}
		re := s.pattern(regexp2.Escape(rule.Matcher), true)
		return replace(re, text, strings.ReplaceAll(rule.Replacement, "$", "$$"))

	case models.RuleRegex:
		return replace(s.pattern(rule.Matcher, rule.IgnoreCase), text, rule.Replacement)

	default:
		return text, false
	}
}

func replace(re *regexp2.Regexp, text, replacement string) (string, bool) {
	if re == nil {
		return text, false
	}
	matched, err := re.MatchString(text)
	if err != nil || !matched {
		return text, false
	}
	out, err := re.Replace(text, replacement, -1, -1)
	if err != nil {
		return text, false
	}
	return out, true
}

func (s *textTransformService) pattern(expr string, ignoreCase bool) *regexp2.Regexp {
	key := patternKey{pattern: expr, ignoreCase: ignoreCase}

	s.mu.Lock()
	defer s.mu.Unlock()

	if re, ok := s.compiled[key]; ok {
		return re
	}

	var opts regexp2.RegexOptions
	if ignoreCase {
		opts = regexp2.IgnoreCase
	}
	re, err := regexp2.Compile(expr, opts)
	if err != nil {
		s.logger.Debug().Err(err).Str("func", "textTransformService.pattern").Msg("rule pattern does not compile")
		re = nil
	} else {
		re.MatchTimeout = regexMatchTimeout
	}
	s.compiled[key] = re
	return re
}

// AddRule implements [TextTransformService].
func (s *textTransformService) AddRule(ctx context.Context, draft models.RuleDraft) (models.TextTransformRule, error) {
	if err := s.validator.Validate(ctx, draft); err != nil {
		return models.TextTransformRule{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	rule := models.TextTransformRule{
		ID:               utils.UniqueID(s.ids, s.ruleExists),
		Type:             draft.Type,
		Matcher:          normalizeMatcher(draft.Type, draft.Matcher),
		Replacement:      draft.Replacement,
		Enabled:          true,
		IgnoreCase:       draft.IgnoreCase,
		Note:             strings.TrimSpace(draft.Note),
		CreatedAtEpochMs: s.now().UnixMilli(),
	}

	if err := s.repo.Upsert(ctx, rule); err != nil {
		return models.TextTransformRule{}, fmt.Errorf("save rule: %w", err)
	}
	return rule, nil
}

// UpdateRule implements [TextTransformService]. The id, enabled flag and
// creation time are kept.
func (s *textTransformService) UpdateRule(ctx context.Context, ruleID string, draft models.RuleDraft) error {
	if err := s.validator.Validate(ctx, draft); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	current, ok := s.findRule(ruleID)
	if !ok {
		return ErrRuleNotFound
	}

	current.Type = draft.Type
	current.Matcher = normalizeMatcher(draft.Type, draft.Matcher)
	current.Replacement = draft.Replacement
	current.IgnoreCase = draft.IgnoreCase
	current.Note = strings.TrimSpace(draft.Note)

	if err := s.repo.Upsert(ctx, current); err != nil {
		return fmt.Errorf("save rule: %w", err)
	}
	return nil
}

func (s *textTransformService) SetRuleEnabled(ctx context.Context, ruleID string, enabled bool) error {
	current, ok := s.findRule(ruleID)
	if !ok {
		return ErrRuleNotFound
	}
	current.Enabled = enabled

	if err := s.repo.Upsert(ctx, current); err != nil {
		return fmt.Errorf("save rule: %w", err)
	}
	return nil
}

func (s *textTransformService) DeleteRule(ctx context.Context, ruleID string) error {
	if err := s.repo.Delete(ctx, ruleID); err != nil {
		return fmt.Errorf("delete rule: %w", err)
	}
	return nil
}

func (s *textTransformService) findRule(ruleID string) (models.TextTransformRule, bool) {
	for _, r := range s.repo.Rules().Get() {
		if r.ID == ruleID {
			return r, true
		}
	}
	return models.TextTransformRule{}, false
}

func normalizeMatcher(ruleType models.RuleType, matcher string) string {
	trimmed := strings.TrimSpace(matcher)
	if ruleType == models.RuleLocation {
		return models.CanonicalLocation(trimmed)
	}
	return trimmed
}

// ExportRulesJSON implements [TextTransformService].
func (s *textTransformService) ExportRulesJSON() (string, error) {
	rules := s.repo.Rules().Get()
	if rules == nil {
		rules = []models.TextTransformRule{}
	}

	out, err := json.MarshalIndent(models.RuleBundle{Version: models.RuleBundleVersion, Rules: rules}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode rules: %w", err)
	}
	return string(out), nil
}

// ImportRulesJSON implements [TextTransformService]. The envelope is tried
// first, then a bare list. Nothing changes unless the whole input decodes
// and validates.
func (s *textTransformService) ImportRulesJSON(ctx context.Context, raw string) (int, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(raw) == "" {
		return 0, ErrImportEmpty
	}

	rules, err := decodeRuleImport([]byte(raw))
	if err != nil {
		log.Warn().Err(err).Str("func", "textTransformService.ImportRulesJSON").Msg("rejected rule import")
		return 0, fmt.Errorf("%w: %w", ErrImportFormat, err)
	}
	if err = s.validator.Validate(ctx, rules); err != nil {
		log.Warn().Err(err).Str("func", "textTransformService.ImportRulesJSON").Msg("rejected rule import")
		return 0, fmt.Errorf("%w: %w", ErrImportFormat, err)
	}

	if err = s.repo.ReplaceAll(ctx, rules); err != nil {
		return 0, fmt.Errorf("replace rules: %w", err)
	}
	return len(rules), nil
}

func decodeRuleImport(raw []byte) ([]models.TextTransformRule, error) {
	trimmed := bytes.TrimSpace(raw)

	var envelope struct {
		Version int                        `json:"version"`
		Rules   *[]models.TextTransformRule `json:"rules"`
	}
	envErr := json.Unmarshal(trimmed, &envelope)
	if envErr == nil && envelope.Rules != nil {
		return nonNilRules(*envelope.Rules), nil
	}
	if envErr == nil {
		envErr = errors.New("missing rules")
	}

	var list []models.TextTransformRule
	if err := json.Unmarshal(trimmed, &list); err != nil {
		return nil, fmt.Errorf("envelope: %w; list: %w", envErr, err)
	}
	if list == nil {
		return nil, errors.New("null rule list")
	}
	return list, nil
}

func nonNilRules(rules []models.TextTransformRule) []models.TextTransformRule {
	if rules == nil {
		return []models.TextTransformRule{}
	}
	return rules
}

func (s *textTransformService) SetEnabled(ctx context.Context, enabled bool) error {
	if err := s.repo.SetEnabled(ctx, enabled); err != nil {
		return fmt.Errorf("save enabled flag: %w", err)
	}
	return nil
}

func (s *textTransformService) Enabled() bool { return s.repo.Enabled().Get() }

func (s *textTransformService) Rules() []models.TextTransformRule { return s.repo.Rules().Get() }

func (s *textTransformService) RulesState() *state.Value[[]models.TextTransformRule] {
	return s.repo.Rules()
}

func (s *textTransformService) EnabledState() *state.Value[bool] { return s.repo.Enabled() }

func (s *textTransformService) BuildDraftFromRule(rule models.TextTransformRule) models.RuleDraft {
	return models.DraftFromRule(rule)
}

func (s *textTransformService) ruleExists(id string) bool {
	for _, r := range s.repo.Rules().Get() {
		if r.ID == id {
			return true
		}
	}
	return false
}
