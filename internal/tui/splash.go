// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// SplashModel is shown while a blocking auto-login runs.
type SplashModel struct {
	spinner spinner.Model
}

func NewSplashModel() *SplashModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return &SplashModel{spinner: s}
}

func (m *SplashModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m *SplashModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if tick, ok := msg.(spinner.TickMsg); ok {
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(tick)
		return m, cmd
	}
	return m, nil
}

func (m *SplashModel) View() string {
	return renderPage("MARKDO", m.spinner.View()+" signing in...", "")
}
