// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-markdo/internal/app"
	"github.com/MKhiriev/go-markdo/internal/service"
	"github.com/MKhiriev/go-markdo/internal/toast"
	"github.com/MKhiriev/go-markdo/models"
)

// RulesModel lists the text transform rules in evaluation order.
type RulesModel struct {
	ctx       context.Context
	transform service.TextTransformService

	rules   []models.TextTransformRule
	enabled bool
	cursor  listCursor

	confirm *confirmModel
	onYes   tea.Cmd
	failure *errorOverlayModel
}

func NewRulesModel(ctx context.Context, transform service.TextTransformService) *RulesModel {
	return &RulesModel{
		ctx:       ctx,
		transform: transform,
		rules:     transform.Rules(),
		enabled:   transform.Enabled(),
	}
}

func (m *RulesModel) Init() tea.Cmd { return nil }

func (m *RulesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case update[[]models.TextTransformRule]:
		m.rules = msg.value
		m.cursor.clamp(len(m.rules))
		return m, nil
	case update[bool]:
		m.enabled = msg.value
		return m, nil
	case ruleSavedMsg:
		return m, m.report(msg.err, "")
	case ruleDeletedMsg:
		return m, m.report(msg.err, "Rule deleted")
	case rulesCopiedMsg:
		return m, m.report(msg.err, app.MsgRulesCopied)
	case rulesImportedMsg:
		return m, m.report(msg.err, fmt.Sprintf("Imported %d rules", msg.count))
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.failure != nil {
		if key.Matches(keyMsg, keys.enter) || key.Matches(keyMsg, keys.esc) {
			m.failure = nil
		}
		return m, nil
	}

	if m.confirm != nil {
		switch {
		case key.Matches(keyMsg, keys.yes):
			cmd := m.onYes
			m.confirm, m.onYes = nil, nil
			return m, cmd
		case key.Matches(keyMsg, keys.no):
			m.confirm, m.onYes = nil, nil
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		return m, navigate(pageMain)
	case key.Matches(keyMsg, keys.up):
		m.cursor.up()
	case key.Matches(keyMsg, keys.down):
		m.cursor.down(len(m.rules))
	case key.Matches(keyMsg, keys.newItem):
		return m, func() tea.Msg { return NavigateTo{Page: pageRuleForm, Payload: editRuleMsg{}} }
	case key.Matches(keyMsg, keys.edit), key.Matches(keyMsg, keys.enter):
		rule, ok := pick(m.cursor, m.rules)
		if !ok {
			return m, nil
		}
		return m, func() tea.Msg { return NavigateTo{Page: pageRuleForm, Payload: editRuleMsg{rule: &rule}} }
	case key.Matches(keyMsg, keys.toggle):
		rule, ok := pick(m.cursor, m.rules)
		if !ok {
			return m, nil
		}
		return m, m.cmdSetRuleEnabled(rule.ID, !rule.Enabled)
	case key.Matches(keyMsg, keys.delete):
		rule, ok := pick(m.cursor, m.rules)
		if !ok {
			return m, nil
		}
		m.confirm = &confirmModel{question: fmt.Sprintf("Delete rule %q?", ruleLabel(rule))}
		m.onYes = m.cmdDelete(rule.ID)
	case key.Matches(keyMsg, keys.global):
		return m, m.cmdSetEnabled(!m.enabled)
	case key.Matches(keyMsg, keys.copy):
		return m, m.cmdCopyExport()
	case key.Matches(keyMsg, keys.paste):
		m.confirm = &confirmModel{question: "Replace all rules with the clipboard contents?"}
		m.onYes = m.cmdImportClipboard()
	}
	return m, nil
}

func (m *RulesModel) View() string {
	if m.failure != nil {
		return m.failure.View()
	}
	if m.confirm != nil {
		return m.confirm.View()
	}

	var b strings.Builder
	state := "on"
	if !m.enabled {
		state = "off"
	}
	b.WriteString("Transforms: " + state + "\n\n")

	if len(m.rules) == 0 {
		b.WriteString("No rules\n")
	}
	for i, rule := range m.rules {
		b.WriteString(cursorMark(i == m.cursor.idx))
		if rule.Enabled {
			b.WriteString("[x] ")
		} else {
			b.WriteString("[ ] ")
		}
		b.WriteString(fmt.Sprintf("%-8s %s → %s", rule.Type, fitText(rule.Matcher, 30), fitText(rule.Replacement, 30)))
		if rule.Note != "" {
			b.WriteString("  ")
			b.WriteString(helpStyle.Render(fitText(rule.Note, 24)))
		}
		b.WriteString("\n")
	}

	return renderPage("TEXT RULES", strings.TrimRight(b.String(), "\n"),
		"n: new │ e: edit │ space: on/off │ ctrl+d: delete │ g: all on/off │ c: copy export │ p: import clipboard │ esc: back")
}

// report shows err in an overlay, or ok as a toast.
func (m *RulesModel) report(err error, ok string) tea.Cmd {
	if err != nil {
		m.failure = &errorOverlayModel{message: humanizeError(err)}
		return nil
	}
	if ok == "" {
		return nil
	}
	return notify(ok, toast.Short)
}

// ruleLabel is the short name of a rule in messages.
func ruleLabel(rule models.TextTransformRule) string {
	if rule.Note != "" {
		return rule.Note
	}
	return fitText(rule.Matcher, 24)
}

func (m *RulesModel) cmdSetRuleEnabled(ruleID string, enabled bool) tea.Cmd {
	ctx, transform := m.ctx, m.transform
	return func() tea.Msg {
		return ruleSavedMsg{err: transform.SetRuleEnabled(ctx, ruleID, enabled)}
	}
}

func (m *RulesModel) cmdDelete(ruleID string) tea.Cmd {
	ctx, transform := m.ctx, m.transform
	return func() tea.Msg {
		return ruleDeletedMsg{err: transform.DeleteRule(ctx, ruleID)}
	}
}

func (m *RulesModel) cmdSetEnabled(enabled bool) tea.Cmd {
	ctx, transform := m.ctx, m.transform
	return func() tea.Msg {
		return ruleSavedMsg{err: transform.SetEnabled(ctx, enabled)}
	}
}

func (m *RulesModel) cmdCopyExport() tea.Cmd {
	transform := m.transform
	return func() tea.Msg {
		out, err := transform.ExportRulesJSON()
		if err != nil {
			return rulesCopiedMsg{err: err}
		}
		return rulesCopiedMsg{err: clipboard.WriteAll(out)}
	}
}

func (m *RulesModel) cmdImportClipboard() tea.Cmd {
	ctx, transform := m.ctx, m.transform
	return func() tea.Msg {
		raw, err := clipboard.ReadAll()
		if err != nil {
			return rulesImportedMsg{err: err}
		}
		n, err := transform.ImportRulesJSON(ctx, raw)
		return rulesImportedMsg{count: n, err: err}
	}
}
