// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-markdo/internal/app"
	"github.com/MKhiriev/go-markdo/internal/service"
	"github.com/MKhiriev/go-markdo/models"
)

const (
	inputSite = iota
	inputUsername
	inputPassword
)

// LoginModel is the Bubble Tea model for the login screen. It renders the
// site, username and password inputs and dispatches a manual login on
// submission. The outcome arrives through the auth stream.
type LoginModel struct {
	ctx     context.Context
	session service.SessionService

	inputs []textinput.Model
	focus  int
	busy   bool
	errMsg string
}

// NewLoginModel creates a [LoginModel]. The form is filled from the
// preferred login draft when the page opens.
func NewLoginModel(ctx context.Context, session service.SessionService) *LoginModel {
	siteInput := textinput.New()
	siteInput.Placeholder = "moodle.example.edu"
	siteInput.CharLimit = 256
	siteInput.Width = 40
	siteInput.Focus()

	usernameInput := textinput.New()
	usernameInput.Placeholder = "username"
	usernameInput.CharLimit = 128
	usernameInput.Width = 40

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return &LoginModel{
		ctx:     ctx,
		session: session,
		inputs:  []textinput.Model{siteInput, usernameInput, passwordInput},
	}
}

// Init implements [tea.Model]. Starts the cursor blink and loads the draft.
func (m *LoginModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.cmdLoadDraft())
}

// Update implements [tea.Model]. Handled messages:
//   - auth updates: track Busy and show the Unauthed reason;
//   - draft messages: fill the form;
//   - tab / shift+tab: move focus;
//   - ctrl+a: open remembered accounts;
//   - enter: submit.
//
// All other key events are forwarded to the focused input widget.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case authUpdate:
		m.busy = msg.value.Status == models.AuthBusy
		if msg.value.Status == models.AuthUnauthed && msg.value.Reason != app.MsgUserLoggedOut {
			m.errMsg = msg.value.Reason
		}
		if msg.value.Status == models.AuthAuthed {
			m.errMsg = ""
			m.inputs[inputPassword].SetValue("")
		}
		return m, nil

	case draftLoadedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.fill(msg.draft)
		return m, nil

	case resetDraftMsg:
		m.errMsg = ""
		return m, m.cmdLoadDraft()
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.tab):
			m.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.focusPrev()
			return m, nil
		case keyMsg.String() == "ctrl+a":
			return m, navigate(pageAccounts)
		case key.Matches(keyMsg, keys.enter):
			if m.busy {
				return m, nil
			}
			m.errMsg = ""
			m.busy = true
			return m, m.cmdLogin(
				m.inputs[inputSite].Value(),
				m.inputs[inputUsername].Value(),
				m.inputs[inputPassword].Value(),
			)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString("Field    │ Value\n")
	b.WriteString("─────────┼────────────────────────────────────────────\n")
	b.WriteString("Site     │ [")
	b.WriteString(m.inputs[inputSite].View())
	b.WriteString("]\n")
	b.WriteString("Username │ [")
	b.WriteString(m.inputs[inputUsername].View())
	b.WriteString("]\n")
	b.WriteString("Password │ [")
	b.WriteString(m.inputs[inputPassword].View())
	b.WriteString("]\n")

	if m.busy {
		b.WriteString("\n[Signing in...]\n")
	} else {
		b.WriteString("\n[Sign in]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("SIGN IN", strings.TrimRight(b.String(), "\n"), "tab: next field │ enter: sign in │ ctrl+a: accounts")
}

// fill replaces the form values. An empty draft site keeps what was typed.
func (m *LoginModel) fill(draft models.LoginDraft) {
	if draft.BaseSite != "" {
		m.inputs[inputSite].SetValue(draft.BaseSite)
	}
	m.inputs[inputUsername].SetValue(draft.Username)
	m.inputs[inputPassword].SetValue(draft.Password)
}

func (m *LoginModel) cmdLoadDraft() tea.Cmd {
	ctx := m.ctx
	session := m.session

	return func() tea.Msg {
		draft, err := session.GetPreferredLoginDraft(ctx)
		return draftLoadedMsg{draft: draft, err: err}
	}
}

func (m *LoginModel) cmdLogin(site, username, password string) tea.Cmd {
	ctx := m.ctx
	session := m.session

	return func() tea.Msg {
		session.ManualLogin(ctx, site, username, password)
		return nil
	}
}

func (m *LoginModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *LoginModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
