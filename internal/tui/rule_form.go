// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-markdo/internal/service"
	"github.com/MKhiriev/go-markdo/models"
)

var ruleTypes = []models.RuleType{models.RuleKeyword, models.RuleRegex, models.RuleLocation}

const (
	fieldMatcher = iota
	fieldReplacement
	fieldNote
)

// RuleFormModel creates or edits one rule.
type RuleFormModel struct {
	ctx       context.Context
	transform service.TextTransformService

	ruleID     string
	typeIdx    int
	ignoreCase bool
	inputs     []textinput.Model
	focus      int
	saving     bool
	errMsg     string
}

func NewRuleFormModel(ctx context.Context, transform service.TextTransformService) *RuleFormModel {
	inputs := make([]textinput.Model, 3)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 50
	}
	inputs[fieldMatcher].Placeholder = "text, pattern or location"
	inputs[fieldReplacement].Placeholder = "replacement"
	inputs[fieldNote].Placeholder = "note"

	return &RuleFormModel{ctx: ctx, transform: transform, inputs: inputs}
}

func (m *RuleFormModel) Init() tea.Cmd { return textinput.Blink }

// load resets the form for rule, or for a new rule when rule is nil.
func (m *RuleFormModel) load(rule *models.TextTransformRule) {
	m.ruleID = ""
	m.typeIdx = 0
	m.ignoreCase = false
	m.errMsg = ""
	m.saving = false
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.focus = fieldMatcher
	m.inputs[m.focus].Focus()

	if rule == nil {
		return
	}

	draft := m.transform.BuildDraftFromRule(*rule)
	m.ruleID = rule.ID
	for i, t := range ruleTypes {
		if t == draft.Type {
			m.typeIdx = i
		}
	}
	m.ignoreCase = draft.IgnoreCase
	m.inputs[fieldMatcher].SetValue(draft.Matcher)
	m.inputs[fieldReplacement].SetValue(draft.Replacement)
	m.inputs[fieldNote].SetValue(draft.Note)
}

func (m *RuleFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case editRuleMsg:
		m.load(msg.rule)
		return m, textinput.Blink
	case ruleSavedMsg:
		m.saving = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		return m, navigate(pageRules)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return m, navigate(pageRules)
		case key.Matches(keyMsg, keys.tab):
			m.move(1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.move(-1)
			return m, nil
		case key.Matches(keyMsg, keys.kind):
			m.typeIdx = (m.typeIdx + 1) % len(ruleTypes)
			return m, nil
		case key.Matches(keyMsg, keys.caseFlag):
			m.ignoreCase = !m.ignoreCase
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.saving {
				return m, nil
			}
			m.saving = true
			m.errMsg = ""
			return m, m.cmdSave(m.draft())
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *RuleFormModel) View() string {
	var b strings.Builder

	title := "NEW RULE"
	if m.ruleID != "" {
		title = "EDIT RULE"
	}

	b.WriteString("Type:        ")
	b.WriteString(string(ruleTypes[m.typeIdx]))
	b.WriteString("\nIgnore case: ")
	if m.ignoreCase {
		b.WriteString("yes")
	} else {
		b.WriteString("no")
	}
	b.WriteString("\n\nMatcher:     [")
	b.WriteString(m.inputs[fieldMatcher].View())
	b.WriteString("]\nReplacement: [")
	b.WriteString(m.inputs[fieldReplacement].View())
	b.WriteString("]\nNote:        [")
	b.WriteString(m.inputs[fieldNote].View())
	b.WriteString("]")

	if m.saving {
		b.WriteString("\n\nSaving...")
	}
	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
	}

	return renderPage(title, b.String(), "tab: next field │ ctrl+t: type │ ctrl+o: ignore case │ enter: save │ esc: cancel")
}

func (m *RuleFormModel) draft() models.RuleDraft {
	return models.RuleDraft{
		Type:        ruleTypes[m.typeIdx],
		Matcher:     m.inputs[fieldMatcher].Value(),
		Replacement: m.inputs[fieldReplacement].Value(),
		IgnoreCase:  m.ignoreCase,
		Note:        m.inputs[fieldNote].Value(),
	}
}

func (m *RuleFormModel) move(delta int) {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *RuleFormModel) cmdSave(draft models.RuleDraft) tea.Cmd {
	ctx, transform, ruleID := m.ctx, m.transform, m.ruleID
	return func() tea.Msg {
		if ruleID == "" {
			_, err := transform.AddRule(ctx, draft)
			return ruleSavedMsg{err: err}
		}
		return ruleSavedMsg{err: transform.UpdateRule(ctx, ruleID, draft)}
	}
}
