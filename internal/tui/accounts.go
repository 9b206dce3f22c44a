// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-markdo/internal/service"
	"github.com/MKhiriev/go-markdo/internal/toast"
	"github.com/MKhiriev/go-markdo/models"
)

// AccountsModel lists remembered accounts. Enter switches to the selected
// account, f copies it into the login form and ctrl+d forgets it.
type AccountsModel struct {
	ctx     context.Context
	session service.SessionService

	accounts []models.Account
	cursor   listCursor
	confirm  *confirmModel
	pending  models.Account
	errMsg   string
}

func NewAccountsModel(ctx context.Context, session service.SessionService) *AccountsModel {
	return &AccountsModel{ctx: ctx, session: session}
}

func (m *AccountsModel) Init() tea.Cmd {
	m.errMsg = ""
	m.confirm = nil
	return nil
}

func (m *AccountsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case update[[]models.Account]:
		m.accounts = msg.value
		m.cursor.clamp(len(m.accounts))
		return m, nil
	case accountRemovedMsg:
		switch {
		case msg.err != nil:
			m.errMsg = msg.err.Error()
		case !msg.removed:
			m.errMsg = "the active account cannot be removed"
		default:
			return m, notify("Forgot "+msg.username, toast.Short)
		}
		return m, nil
	case draftLoadedMsg:
		// the login page owns the form; forward there
		return m, func() tea.Msg { return NavigateTo{Page: pageLogin, Payload: msg} }
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.confirm != nil {
		switch {
		case key.Matches(keyMsg, keys.yes):
			m.confirm = nil
			return m, m.cmdRemove(m.pending)
		case key.Matches(keyMsg, keys.no):
			m.confirm = nil
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		return m, m.back()
	case key.Matches(keyMsg, keys.up):
		m.cursor.up()
	case key.Matches(keyMsg, keys.down):
		m.cursor.down(len(m.accounts))
	case key.Matches(keyMsg, keys.enter):
		acc, ok := pick(m.cursor, m.accounts)
		if !ok {
			return m, nil
		}
		return m, m.cmdSwitch(acc.AccountKey)
	case key.Matches(keyMsg, keys.fill):
		acc, ok := pick(m.cursor, m.accounts)
		if !ok {
			return m, nil
		}
		return m, m.cmdFill(acc.AccountKey)
	case key.Matches(keyMsg, keys.delete):
		acc, ok := pick(m.cursor, m.accounts)
		if !ok {
			return m, nil
		}
		if acc.IsActive {
			m.errMsg = "the active account cannot be removed"
			return m, nil
		}
		m.pending = acc
		m.confirm = &confirmModel{question: fmt.Sprintf("Forget %s on %s?", acc.Username, acc.BaseSite)}
	}
	return m, nil
}

func (m *AccountsModel) View() string {
	if m.confirm != nil {
		return m.confirm.View()
	}

	var b strings.Builder
	if len(m.accounts) == 0 {
		b.WriteString("No remembered accounts\n")
	}
	for i, acc := range m.accounts {
		b.WriteString(cursorMark(i == m.cursor.idx))
		b.WriteString(acc.Username)
		b.WriteString(" @ ")
		b.WriteString(acc.BaseSite)
		if acc.IsActive {
			b.WriteString("  (active)")
		}
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
	}

	return renderPage("ACCOUNTS", strings.TrimRight(b.String(), "\n"),
		"enter: switch │ f: fill login form │ ctrl+d: forget │ esc: back")
}

// back returns to the page that fits the session state.
func (m *AccountsModel) back() tea.Cmd {
	if m.session.AuthState().Get().Status == models.AuthAuthed {
		return navigate(pageMain)
	}
	return navigate(pageLogin)
}

func (m *AccountsModel) cmdSwitch(accountKey string) tea.Cmd {
	ctx := m.ctx
	session := m.session

	return func() tea.Msg {
		session.SwitchAccount(ctx, accountKey)
		return nil
	}
}

func (m *AccountsModel) cmdFill(accountKey string) tea.Cmd {
	ctx := m.ctx
	session := m.session

	return func() tea.Msg {
		draft, ok, err := session.GetLoginDraftByAccountKey(ctx, accountKey)
		if err == nil && !ok {
			err = fmt.Errorf("account %s is no longer remembered", accountKey)
		}
		return draftLoadedMsg{draft: draft, err: err}
	}
}

func (m *AccountsModel) cmdRemove(acc models.Account) tea.Cmd {
	ctx := m.ctx
	session := m.session

	return func() tea.Msg {
		removed, err := session.RemoveRememberedAccount(ctx, acc.AccountKey)
		return accountRemovedMsg{username: acc.Username, removed: removed, err: err}
	}
}
