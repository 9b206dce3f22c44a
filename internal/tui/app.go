// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-markdo/internal/app"
	"github.com/MKhiriev/go-markdo/internal/toast"
	"github.com/MKhiriev/go-markdo/models"
)

// RootModel is a TUI router:
// 1) keeps the active page
// 2) handles global Ctrl+C quit
// 3) follows the auth stream to pick the page
// 4) handles NavigateTo and toast messages
// 5) broadcasts stream updates to every page and delegates keys to the active one
type RootModel struct {
	pages       map[string]tea.Model
	currentName string

	toasts    *toast.Queue
	toastText string

	startup   []tea.Cmd
	buildInfo models.AppBuildInfo

	quitByUser    bool
	showBuildInfo bool
}

// NewRootModel registers all pages and opens startPage. startup commands run
// once from Init.
func NewRootModel(pages map[string]tea.Model, startPage string, toasts *toast.Queue, buildInfo models.AppBuildInfo, startup ...tea.Cmd) RootModel {
	return RootModel{
		pages:       pages,
		currentName: startPage,
		toasts:      toasts,
		startup:     startup,
		buildInfo:   buildInfo,
	}
}

func (r RootModel) current() tea.Model { return r.pages[r.currentName] }

func (r RootModel) Init() tea.Cmd {
	cmds := append([]tea.Cmd(nil), r.startup...)
	if cur := r.current(); cur != nil {
		cmds = append(cmds, cur.Init())
	}
	return tea.Batch(cmds...)
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkeys for every page.
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			r.quitByUser = true
			return r, tea.Quit
		case "f1":
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		case "esc":
			if r.showBuildInfo {
				r.showBuildInfo = false
				return r, nil
			}
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	switch m := msg.(type) {
	case NavigateTo:
		return r.navigate(m)

	case toastMsg:
		if r.toasts != nil {
			r.toasts.Show(m.text, m.length)
		}
		return r, nil

	case toastUpdate:
		r.toastText = m.value
		return r, m.next

	case authUpdate:
		// pages see the new state before the router moves
		cmds := r.broadcast(msg)
		var nav tea.Cmd
		r, nav = r.onAuthState(m.value)
		return r, tea.Batch(append(cmds, nav, m.next)...)
	}

	if c, ok := msg.(continued); ok {
		cmds := r.broadcast(msg)
		return r, tea.Batch(append(cmds, c.continuation())...)
	}

	cur := r.current()
	if cur == nil {
		return r, nil
	}
	updated, cmd := cur.Update(msg)
	r.pages[r.currentName] = updated
	return r, cmd
}

// onAuthState is the navigation glue. Authed leaves the login flow for the
// main page; Unauthed returns to the login page, with a toast when the login
// page was not already shown.
func (r RootModel) onAuthState(s models.AuthState) (RootModel, tea.Cmd) {
	switch s.Status {
	case models.AuthAuthed:
		switch r.currentName {
		case pageLogin, pageSplash, pageAccounts:
			return r.switchTo(pageMain, nil)
		}

	case models.AuthUnauthed:
		var cmds []tea.Cmd
		if strings.TrimSpace(s.Reason) != "" && r.currentName != pageLogin {
			cmds = append(cmds, notify(s.Reason, toast.Long))
		}
		if s.Reason == app.MsgUserLoggedOut {
			cmds = append(cmds, r.deliver(pageLogin, resetDraftMsg{}))
		}
		if r.currentName != pageLogin {
			var nav tea.Cmd
			r, nav = r.switchTo(pageLogin, nil)
			cmds = append(cmds, nav)
		}
		return r, tea.Batch(cmds...)
	}
	return r, nil
}

func (r RootModel) navigate(nav NavigateTo) (tea.Model, tea.Cmd) {
	if _, exists := r.pages[nav.Page]; !exists {
		return r, nil
	}
	r.showBuildInfo = false
	return r.switchTo(nav.Page, nav.Payload)
}

func (r RootModel) switchTo(page string, payload tea.Msg) (RootModel, tea.Cmd) {
	r.currentName = page
	if payload != nil {
		return r, func() tea.Msg { return payload }
	}
	return r, r.current().Init()
}

// deliver hands msg to one page regardless of which page is active.
func (r RootModel) deliver(page string, msg tea.Msg) tea.Cmd {
	p, ok := r.pages[page]
	if !ok {
		return nil
	}
	updated, cmd := p.Update(msg)
	r.pages[page] = updated
	return cmd
}

func (r RootModel) broadcast(msg tea.Msg) []tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(r.pages))
	for name := range r.pages {
		if cmd := r.deliver(name, msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}

	var view string
	if cur := r.current(); cur != nil {
		view = cur.View()
	} else {
		view = renderPage("MARKDO", "", "")
	}

	if r.toastText != "" {
		view += "\n\n" + toastStyle.Render(r.toastText)
	}
	return view
}
