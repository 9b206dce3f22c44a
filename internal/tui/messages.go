// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-markdo/internal/service"
	"github.com/MKhiriev/go-markdo/internal/toast"
	"github.com/MKhiriev/go-markdo/models"
)

const (
	pageSplash   = "splash"
	pageLogin    = "login"
	pageMain     = "main"
	pageAccounts = "accounts"
	pageRules    = "rules"
	pageRuleForm = "rule-form"
	pageGrades   = "grades"
	pageCourse   = "course"
)

// NavigateTo switches the active page. Payload, when set, is delivered to the
// new page instead of calling its Init.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// toastMsg asks the root to enqueue a toast.
type toastMsg struct {
	text   string
	length toast.Length
}

type draftLoadedMsg struct {
	draft models.LoginDraft
	err   error
}

// resetDraftMsg reloads the login form from the preferred draft.
type resetDraftMsg struct{}

type refreshDoneMsg struct {
	err error
}

type accountRemovedMsg struct {
	username string
	removed  bool
	err      error
}

type ruleSavedMsg struct {
	err error
}

type ruleDeletedMsg struct {
	err error
}

type rulesImportedMsg struct {
	count int
	err   error
}

type rulesCopiedMsg struct {
	err error
}

// editRuleMsg opens the rule form; a nil rule starts a new one.
type editRuleMsg struct {
	rule *models.TextTransformRule
}

// openCourseMsg loads one course on the course page.
type openCourseMsg struct {
	courseID int
}

type courseLoadedMsg struct {
	courseID int
	state    models.DataState[models.Course]
}

type gradesLoadedMsg struct {
	seq   int
	state models.DataState[[]models.CourseGrade]
}

func navigate(page string) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Page: page} }
}

func notify(text string, length toast.Length) tea.Cmd {
	return func() tea.Msg { return toastMsg{text: text, length: length} }
}

// cmdAutoLogin runs a login with the stored credentials. The outcome arrives
// through the auth stream.
func cmdAutoLogin(ctx context.Context, session service.SessionService, allowOfflineFallback bool) tea.Cmd {
	return func() tea.Msg {
		session.AutoLogin(ctx, allowOfflineFallback)
		return nil
	}
}
