// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-markdo/internal/service"
	"github.com/MKhiriev/go-markdo/models"
)

// fakeTransform records rule edits. Methods it does not override panic.
type fakeTransform struct {
	service.TextTransformService

	rules   []models.TextTransformRule
	enabled bool

	toggled map[string]bool
	deleted []string
	global  []bool
	added   []models.RuleDraft
	updated map[string]models.RuleDraft
	saveErr error
}

func newFakeTransform(rules ...models.TextTransformRule) *fakeTransform {
	return &fakeTransform{
		rules:   rules,
		enabled: true,
		toggled: map[string]bool{},
		updated: map[string]models.RuleDraft{},
	}
}

func (f *fakeTransform) Rules() []models.TextTransformRule { return f.rules }
func (f *fakeTransform) Enabled() bool                     { return f.enabled }

func (f *fakeTransform) SetRuleEnabled(_ context.Context, id string, enabled bool) error {
	f.toggled[id] = enabled
	return nil
}

func (f *fakeTransform) DeleteRule(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeTransform) SetEnabled(_ context.Context, enabled bool) error {
	f.global = append(f.global, enabled)
	return nil
}

func (f *fakeTransform) AddRule(_ context.Context, d models.RuleDraft) (models.TextTransformRule, error) {
	f.added = append(f.added, d)
	return models.TextTransformRule{}, f.saveErr
}

func (f *fakeTransform) UpdateRule(_ context.Context, id string, d models.RuleDraft) error {
	f.updated[id] = d
	return f.saveErr
}

func (f *fakeTransform) BuildDraftFromRule(rule models.TextTransformRule) models.RuleDraft {
	return models.DraftFromRule(rule)
}

var (
	ruleA = models.TextTransformRule{ID: "a", Type: models.RuleKeyword, Matcher: "Week", Replacement: "W", Enabled: true, Note: "weeks"}
	ruleB = models.TextTransformRule{ID: "b", Type: models.RuleRegex, Matcher: `\d+`, Replacement: "#", IgnoreCase: true}
)

func press(t *testing.T, m tea.Model, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	t.Helper()
	return m.Update(msg)
}

// ── rules page ────────────────────────────────────────────────────────────────

func TestRules_ToggleSelected(t *testing.T) {
	f := newFakeTransform(ruleA, ruleB)
	m := NewRulesModel(context.Background(), f)

	_, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	_, cmd := press(t, m, tea.KeyMsg{Type: tea.KeySpace})
	require.NotNil(t, cmd)
	assert.Equal(t, ruleSavedMsg{}, cmd())

	assert.Equal(t, map[string]bool{"b": true}, f.toggled)
}

func TestRules_DeleteNeedsConfirmation(t *testing.T) {
	f := newFakeTransform(ruleA)
	m := NewRulesModel(context.Background(), f)

	_, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlD})
	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "weeks")

	_, cmd = press(t, m, runeKey("y"))
	require.NotNil(t, cmd)
	cmd()
	assert.Equal(t, []string{"a"}, f.deleted)
}

func TestRules_DeleteDeclined(t *testing.T) {
	f := newFakeTransform(ruleA)
	m := NewRulesModel(context.Background(), f)

	_, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlD})
	_, cmd := press(t, m, runeKey("n"))

	assert.Nil(t, cmd)
	assert.Nil(t, m.confirm)
	assert.Empty(t, f.deleted)
}

func TestRules_GlobalToggle(t *testing.T) {
	f := newFakeTransform(ruleA)
	m := NewRulesModel(context.Background(), f)

	_, cmd := press(t, m, runeKey("g"))
	cmd()

	assert.Equal(t, []bool{false}, f.global)
}

func TestRules_StreamUpdatesClampCursor(t *testing.T) {
	m := NewRulesModel(context.Background(), newFakeTransform(ruleA, ruleB))
	_, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})

	_, _ = m.Update(update[[]models.TextTransformRule]{value: []models.TextTransformRule{ruleA}})
	_, _ = m.Update(update[bool]{value: false})

	assert.Equal(t, 0, m.cursor.idx)
	assert.Contains(t, m.View(), "Transforms: off")
}

func TestRules_EditOpensForm(t *testing.T) {
	m := NewRulesModel(context.Background(), newFakeTransform(ruleA))

	_, cmd := press(t, m, runeKey("e"))
	require.NotNil(t, cmd)

	nav, ok := cmd().(NavigateTo)
	require.True(t, ok)
	assert.Equal(t, pageRuleForm, nav.Page)
	edit, ok := nav.Payload.(editRuleMsg)
	require.True(t, ok)
	require.NotNil(t, edit.rule)
	assert.Equal(t, "a", edit.rule.ID)
}

func TestRules_ErrorShowsOverlay(t *testing.T) {
	m := NewRulesModel(context.Background(), newFakeTransform())

	_, _ = m.Update(rulesImportedMsg{err: service.ErrImportEmpty})
	assert.NotNil(t, m.failure)

	_, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, m.failure)
}

func TestRuleLabel(t *testing.T) {
	assert.Equal(t, "weeks", ruleLabel(ruleA))
	assert.Equal(t, `\d+`, ruleLabel(ruleB))
}

// ── rule form ─────────────────────────────────────────────────────────────────

func TestRuleForm_EditSavesUpdate(t *testing.T) {
	f := newFakeTransform()
	m := NewRuleFormModel(context.Background(), f)

	_, _ = m.Update(editRuleMsg{rule: &ruleB})
	assert.Contains(t, m.View(), "EDIT RULE")

	_, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlO})
	_, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	cmd()

	require.Contains(t, f.updated, "b")
	got := f.updated["b"]
	assert.Equal(t, models.RuleRegex, got.Type)
	assert.Equal(t, `\d+`, got.Matcher)
	assert.False(t, got.IgnoreCase)
}

func TestRuleForm_NewRuleAdds(t *testing.T) {
	f := newFakeTransform()
	m := NewRuleFormModel(context.Background(), f)

	_, _ = m.Update(editRuleMsg{})
	_, _ = press(t, m, runeKey("Quiz"))
	_, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	_, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	cmd()

	require.Len(t, f.added, 1)
	assert.Equal(t, "Quiz", f.added[0].Matcher)
	assert.Equal(t, models.RuleRegex, f.added[0].Type)
}

func TestRuleForm_SaveErrorStays(t *testing.T) {
	m := NewRuleFormModel(context.Background(), newFakeTransform())
	_, _ = m.Update(editRuleMsg{})

	_, cmd := m.Update(ruleSavedMsg{err: service.ErrRuleNotFound})

	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "Error:")
}

func TestRuleForm_SavedReturnsToList(t *testing.T) {
	m := NewRuleFormModel(context.Background(), newFakeTransform())

	_, cmd := m.Update(ruleSavedMsg{})
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Page: pageRules}, cmd())
}
