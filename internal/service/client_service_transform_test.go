// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-markdo/internal/config"
	"github.com/MKhiriev/go-markdo/internal/logger"
	"github.com/MKhiriev/go-markdo/internal/store"
	"github.com/MKhiriev/go-markdo/internal/validators"
	"github.com/MKhiriev/go-markdo/models"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func newTestTransform(t *testing.T) (TextTransformService, store.RuleRepository) {
	t.Helper()

	storages, err := store.NewClientStorages(
		context.Background(),
		config.ClientStorage{DB: config.ClientDB{DSN: filepath.Join(t.TempDir(), "markdo.db")}},
		nil,
		logger.Nop(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { storages.Close() })

	return NewTextTransformService(storages.RuleRepository, logger.Nop()), storages.RuleRepository
}

func mustAdd(t *testing.T, svc TextTransformService, draft models.RuleDraft) models.TextTransformRule {
	t.Helper()
	rule, err := svc.AddRule(context.Background(), draft)
	require.NoError(t, err)
	return rule
}

var anywhere = models.NewTextContext("dashboard/timeline/event/name")

// ── Transform ─────────────────────────────────────────────────────────────────

func TestTransform_KeywordAppliedOnce(t *testing.T) {
	svc, _ := newTestTransform(t)
	mustAdd(t, svc, models.RuleDraft{Type: models.RuleKeyword, Matcher: "a", Replacement: "aa"})

	assert.Equal(t, "baanaanaa", svc.Transform("banana", anywhere))
}

func TestTransform_KeywordCaseSensitivity(t *testing.T) {
	tests := []struct {
		name       string
		ignoreCase bool
		want       string
	}{
		{name: "case sensitive", ignoreCase: false, want: "Quiz 1 and Exam 2"},
		{name: "ignore case", ignoreCase: true, want: "Exam 1 and Exam 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestTransform(t)
			mustAdd(t, svc, models.RuleDraft{Type: models.RuleKeyword, Matcher: "quiz", Replacement: "Exam", IgnoreCase: tt.ignoreCase})

			assert.Equal(t, tt.want, svc.Transform("Quiz 1 and quiz 2", anywhere))
		})
	}
}

func TestTransform_IgnoreCaseKeywordDollarIsLiteral(t *testing.T) {
	svc, _ := newTestTransform(t)
	mustAdd(t, svc, models.RuleDraft{Type: models.RuleKeyword, Matcher: "price", Replacement: "$1 each", IgnoreCase: true})

	assert.Equal(t, "$1 each: 5", svc.Transform("PRICE: 5", anywhere))
}

func TestTransform_RegexWithGroups(t *testing.T) {
	svc, _ := newTestTransform(t)
	mustAdd(t, svc, models.RuleDraft{Type: models.RuleRegex, Matcher: `Week (\d+)`, Replacement: "W$1"})

	assert.Equal(t, "W3 / W4", svc.Transform("Week 3 / Week 4", anywhere))
}

func TestTransform_RulesChainInOrder(t *testing.T) {
	svc, _ := newTestTransform(t)
	mustAdd(t, svc, models.RuleDraft{Type: models.RuleKeyword, Matcher: "Homework", Replacement: "HW"})
	mustAdd(t, svc, models.RuleDraft{Type: models.RuleKeyword, Matcher: "HW", Replacement: "Task"})

	assert.Equal(t, "Task 1", svc.Transform("Homework 1", anywhere))
}

func TestTransform_LocationWins(t *testing.T) {
	svc, _ := newTestTransform(t)
	mustAdd(t, svc, models.RuleDraft{Type: models.RuleKeyword, Matcher: "Math", Replacement: "Maths"})
	loc := mustAdd(t, svc, models.RuleDraft{Type: models.RuleLocation, Matcher: " course/detail/title ", Replacement: "My favourite course"})

	assert.Equal(t, "course/name", loc.Matcher)
	assert.Equal(t, "My favourite course", svc.Transform("Math 101", models.NewTextContext("course/all/title")))
	assert.Equal(t, "Maths 101", svc.Transform("Math 101", models.NewTextContext("course/category")))
}

func TestTransform_DisabledEngineAndRules(t *testing.T) {
	svc, _ := newTestTransform(t)
	ctx := context.Background()
	rule := mustAdd(t, svc, models.RuleDraft{Type: models.RuleKeyword, Matcher: "a", Replacement: "b"})

	require.NoError(t, svc.SetEnabled(ctx, false))
	assert.False(t, svc.Enabled())
	assert.Equal(t, "a", svc.Transform("a", anywhere))

	require.NoError(t, svc.SetEnabled(ctx, true))
	require.NoError(t, svc.SetRuleEnabled(ctx, rule.ID, false))
	assert.Equal(t, "a", svc.Transform("a", anywhere))
}

func TestTransform_EmptyInput(t *testing.T) {
	svc, _ := newTestTransform(t)
	mustAdd(t, svc, models.RuleDraft{Type: models.RuleLocation, Matcher: "course/name", Replacement: "X"})

	assert.Equal(t, "", svc.Transform("", models.NewTextContext("course/name")))
}

func TestTransform_UncompilableStoredPatternIsSkipped(t *testing.T) {
	svc, repo := newTestTransform(t)
	require.NoError(t, repo.ReplaceAll(context.Background(), []models.TextTransformRule{
		{ID: "bad", Type: models.RuleRegex, Matcher: "[", Replacement: "x", Enabled: true},
		{ID: "good", Type: models.RuleKeyword, Matcher: "cat", Replacement: "dog", Enabled: true},
	}))

	assert.Equal(t, "dog[", svc.Transform("cat[", anywhere))
}

// ── GetEffectiveRules ─────────────────────────────────────────────────────────

func TestGetEffectiveRules(t *testing.T) {
	svc, _ := newTestTransform(t)
	hit := mustAdd(t, svc, models.RuleDraft{Type: models.RuleKeyword, Matcher: "Quiz", Replacement: "Test"})
	mustAdd(t, svc, models.RuleDraft{Type: models.RuleRegex, Matcher: `\d{4}`, Replacement: "YEAR"})

	fired := svc.GetEffectiveRules("Quiz one", anywhere)
	require.Len(t, fired, 1)
	assert.Equal(t, hit.ID, fired[0].ID)

	loc := mustAdd(t, svc, models.RuleDraft{Type: models.RuleLocation, Matcher: "course/name", Replacement: "X"})
	fired = svc.GetEffectiveRules("Quiz 2024", models.NewTextContext("course/name"))
	require.Len(t, fired, 1)
	assert.Equal(t, loc.ID, fired[0].ID)

	assert.Empty(t, svc.GetEffectiveRules("", anywhere))
}

func TestGetEffectiveRules_SeesEarlierRewrites(t *testing.T) {
	svc, _ := newTestTransform(t)
	ctx := context.Background()
	catToDog := mustAdd(t, svc, models.RuleDraft{Type: models.RuleKeyword, Matcher: "cat", Replacement: "dog"})
	dogToWolf := mustAdd(t, svc, models.RuleDraft{Type: models.RuleKeyword, Matcher: "dog", Replacement: "wolf"})
	mustAdd(t, svc, models.RuleDraft{Type: models.RuleRegex, Matcher: "cat", Replacement: "lion"})

	// dog→wolf fires only after the rewrite; the regex lost its match to it
	fired := svc.GetEffectiveRules("a cat", anywhere)
	assert.Equal(t, []models.TextTransformRule{catToDog, dogToWolf}, fired)
	assert.Equal(t, "a wolf", svc.Transform("a cat", anywhere))

	require.NoError(t, svc.SetRuleEnabled(ctx, catToDog.ID, false))
	fired = svc.GetEffectiveRules("a cat", anywhere)
	require.Len(t, fired, 1)
	assert.Equal(t, models.RuleRegex, fired[0].Type)
	assert.Equal(t, "a lion", svc.Transform("a cat", anywhere))

	require.NoError(t, svc.SetEnabled(ctx, false))
	assert.Empty(t, svc.GetEffectiveRules("a cat", anywhere))
	assert.Empty(t, svc.GetEffectiveRules("Math", models.NewTextContext("course/name")))
}

// ── rule edits ────────────────────────────────────────────────────────────────

func TestAddRule_InvalidRegexNotPersisted(t *testing.T) {
	svc, _ := newTestTransform(t)

	_, err := svc.AddRule(context.Background(), models.RuleDraft{Type: models.RuleRegex, Matcher: "[", Replacement: "x"})

	assert.ErrorIs(t, err, ErrValidation)
	assert.ErrorIs(t, err, validators.ErrInvalidRegex)
	assert.Empty(t, svc.Rules())
}

func TestAddRule_Defaults(t *testing.T) {
	svc, _ := newTestTransform(t)

	rule := mustAdd(t, svc, models.RuleDraft{Type: models.RuleKeyword, Matcher: "  Quiz ", Replacement: "Test", Note: " rename "})

	assert.NotEmpty(t, rule.ID)
	assert.True(t, rule.Enabled)
	assert.Equal(t, "Quiz", rule.Matcher)
	assert.Equal(t, "rename", rule.Note)
	assert.NotZero(t, rule.CreatedAtEpochMs)
	assert.Equal(t, []models.TextTransformRule{rule}, svc.Rules())
}

func TestUpdateRule_KeepsIdentity(t *testing.T) {
	svc, _ := newTestTransform(t)
	ctx := context.Background()
	rule := mustAdd(t, svc, models.RuleDraft{Type: models.RuleKeyword, Matcher: "a", Replacement: "b"})
	require.NoError(t, svc.SetRuleEnabled(ctx, rule.ID, false))

	require.NoError(t, svc.UpdateRule(ctx, rule.ID, models.RuleDraft{Type: models.RuleRegex, Matcher: "c+", Replacement: "d"}))

	got := svc.Rules()
	require.Len(t, got, 1)
	assert.Equal(t, rule.ID, got[0].ID)
	assert.Equal(t, rule.CreatedAtEpochMs, got[0].CreatedAtEpochMs)
	assert.False(t, got[0].Enabled)
	assert.Equal(t, models.RuleRegex, got[0].Type)
	assert.Equal(t, "c+", got[0].Matcher)
}

func TestRuleEdits_UnknownID(t *testing.T) {
	svc, _ := newTestTransform(t)
	ctx := context.Background()

	assert.ErrorIs(t, svc.UpdateRule(ctx, "missing", models.RuleDraft{Type: models.RuleKeyword, Matcher: "a"}), ErrRuleNotFound)
	assert.ErrorIs(t, svc.SetRuleEnabled(ctx, "missing", true), ErrRuleNotFound)
	assert.NoError(t, svc.DeleteRule(ctx, "missing"))
}

func TestDeleteRule(t *testing.T) {
	svc, _ := newTestTransform(t)
	ctx := context.Background()
	first := mustAdd(t, svc, models.RuleDraft{Type: models.RuleKeyword, Matcher: "a", Replacement: "b"})
	second := mustAdd(t, svc, models.RuleDraft{Type: models.RuleKeyword, Matcher: "c", Replacement: "d"})

	require.NoError(t, svc.DeleteRule(ctx, first.ID))

	assert.Equal(t, []models.TextTransformRule{second}, svc.Rules())
}

func TestBuildDraftFromRule(t *testing.T) {
	svc, _ := newTestTransform(t)
	rule := mustAdd(t, svc, models.RuleDraft{Type: models.RuleRegex, Matcher: "x+", Replacement: "y", IgnoreCase: true, Note: "n"})

	assert.Equal(t, models.RuleDraft{Type: models.RuleRegex, Matcher: "x+", Replacement: "y", IgnoreCase: true, Note: "n"}, svc.BuildDraftFromRule(rule))
}

// ── import / export ───────────────────────────────────────────────────────────

func TestExportRulesJSON_Empty(t *testing.T) {
	svc, _ := newTestTransform(t)

	out, err := svc.ExportRulesJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":1,"rules":[]}`, out)
}

func TestExportImport_RoundTrip(t *testing.T) {
	src, _ := newTestTransform(t)
	mustAdd(t, src, models.RuleDraft{Type: models.RuleKeyword, Matcher: "Quiz", Replacement: "Test"})
	mustAdd(t, src, models.RuleDraft{Type: models.RuleLocation, Matcher: "course/name", Replacement: "X", Note: "hide"})

	exported, err := src.ExportRulesJSON()
	require.NoError(t, err)

	dst, _ := newTestTransform(t)
	mustAdd(t, dst, models.RuleDraft{Type: models.RuleKeyword, Matcher: "old", Replacement: "gone"})

	n, err := dst.ImportRulesJSON(context.Background(), exported)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, src.Rules(), dst.Rules())
}

func TestImportRulesJSON_LegacyBareList(t *testing.T) {
	svc, _ := newTestTransform(t)

	n, err := svc.ImportRulesJSON(context.Background(), `[{"id":"r1","type":"KEYWORD","matcher":"a","replacement":"b"}]`)

	require.NoError(t, err)
	assert.Equal(t, 1, n)
	got := svc.Rules()
	require.Len(t, got, 1)
	assert.True(t, got[0].Enabled)
	assert.True(t, got[0].IgnoreCase)
	assert.Equal(t, "", got[0].Note)
}

func TestImportRulesJSON_EmptyEnvelopeClearsRules(t *testing.T) {
	svc, _ := newTestTransform(t)
	mustAdd(t, svc, models.RuleDraft{Type: models.RuleKeyword, Matcher: "a", Replacement: "b"})

	n, err := svc.ImportRulesJSON(context.Background(), `{"version":1,"rules":[]}`)

	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Empty(t, svc.Rules())
}

func TestImportRulesJSON_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr error
	}{
		{name: "blank", raw: "  \n", wantErr: ErrImportEmpty},
		{name: "not json", raw: "hello", wantErr: ErrImportFormat},
		{name: "envelope without rules", raw: `{"version":1}`, wantErr: ErrImportFormat},
		{name: "missing matcher", raw: `[{"id":"r1","type":"KEYWORD","replacement":"b"}]`, wantErr: ErrImportFormat},
		{name: "unknown type", raw: `[{"id":"r1","type":"GLOB","matcher":"a","replacement":"b"}]`, wantErr: ErrImportFormat},
		{name: "duplicate ids", raw: `{"version":1,"rules":[
			{"id":"r1","type":"KEYWORD","matcher":"a","replacement":"b"},
			{"id":"r1","type":"KEYWORD","matcher":"c","replacement":"d"}]}`, wantErr: ErrImportFormat},
		{name: "blank id", raw: `[{"id":" ","type":"KEYWORD","matcher":"a","replacement":"b"}]`, wantErr: ErrImportFormat},
		{name: "null list", raw: `null`, wantErr: ErrImportFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestTransform(t)
			kept := mustAdd(t, svc, models.RuleDraft{Type: models.RuleKeyword, Matcher: "keep", Replacement: "me"})

			n, err := svc.ImportRulesJSON(context.Background(), tt.raw)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, n)
			assert.Equal(t, []models.TextTransformRule{kept}, svc.Rules(), "rules unchanged on failure")
		})
	}
}

func TestExportRulesJSON_IsIndentedEnvelope(t *testing.T) {
	svc, _ := newTestTransform(t)
	mustAdd(t, svc, models.RuleDraft{Type: models.RuleKeyword, Matcher: "a", Replacement: "b"})

	out, err := svc.ExportRulesJSON()
	require.NoError(t, err)

	var bundle models.RuleBundle
	require.NoError(t, json.Unmarshal([]byte(out), &bundle))
	assert.Equal(t, models.RuleBundleVersion, bundle.Version)
	assert.Len(t, bundle.Rules, 1)
	assert.Contains(t, out, "\n  \"rules\": [")
}

// ── observable state ──────────────────────────────────────────────────────────

func TestRulesState_PublishesMutations(t *testing.T) {
	svc, _ := newTestTransform(t)
	ch, cancel := svc.RulesState().Subscribe()
	defer cancel()

	assert.Empty(t, <-ch)

	rule := mustAdd(t, svc, models.RuleDraft{Type: models.RuleKeyword, Matcher: "a", Replacement: "b"})
	assert.Equal(t, []models.TextTransformRule{rule}, <-ch)

	require.NoError(t, svc.SetEnabled(context.Background(), false))
	assert.False(t, svc.EnabledState().Get())
}
