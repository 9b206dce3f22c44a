// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-markdo/internal/state"
	"github.com/MKhiriev/go-markdo/models"
)

// SessionService owns the authentication state machine and the four remote
// data streams of the active account.
//
// Auth entry points (AutoLogin, ManualLogin, Logout, SwitchAccount) are
// serialized by a single operation lock. A call made while another one is in
// flight returns immediately without doing anything.
type SessionService interface {
	// AuthState is written only by this service.
	AuthState() *state.Value[models.AuthState]
	UserProfile() *state.Value[models.DataState[models.UserProfile]]
	Timeline() *state.Value[models.DataState[[]models.TimelineEvent]]
	RecentItems() *state.Value[models.DataState[[]models.RecentItem]]
	Courses() *state.Value[models.DataState[[]models.CourseInfo]]
	RememberedAccounts() *state.Value[[]models.Account]
	// ActiveAccountKey is "" when no account is active.
	ActiveAccountKey() *state.Value[string]

	// Bootstrap restores the last session from local storage and tells the
	// caller which screen to open. After RouteMain the caller runs
	// AutoLogin(ctx, true); after RouteSplash, AutoLogin(ctx, false).
	Bootstrap(ctx context.Context) models.BootstrapRoute

	// AutoLogin logs in with the stored credentials of the active account.
	AutoLogin(ctx context.Context, allowOfflineFallback bool)
	// ManualLogin logs in with form input and remembers the account on
	// success.
	ManualLogin(ctx context.Context, site, username, password string)
	// Logout ends the session. The account stays remembered.
	Logout(ctx context.Context)
	// SwitchAccount activates a remembered account. Unknown keys are ignored.
	// Cached data and Authed are published first; the call then blocks for
	// the remote login and refresh, so UI callers run it off their loop.
	SwitchAccount(ctx context.Context, accountKey string)
	// RemoveRememberedAccount reports false when accountKey is active or
	// unknown.
	RemoveRememberedAccount(ctx context.Context, accountKey string) (bool, error)
	// ForgetAllAccounts drops every remembered account and all cached data,
	// ending any session. It reports false when nothing was remembered.
	ForgetAllAccounts(ctx context.Context) (bool, error)

	GetRememberedAccounts(ctx context.Context) ([]models.Account, error)
	// GetPreferredLoginDraft returns the active account, else the most
	// recently used one, else an empty draft for the default site.
	GetPreferredLoginDraft(ctx context.Context) (models.LoginDraft, error)
	// GetLoginDraftByAccountKey reports false for an unknown key.
	GetLoginDraftByAccountKey(ctx context.Context, accountKey string) (models.LoginDraft, bool, error)

	// Refresh* fetch one entity, persist it and publish it. The returned
	// error is the fetch error; the stream has already been settled.
	RefreshUserProfile(ctx context.Context) error
	RefreshTimeline(ctx context.Context) error
	RefreshRecentItems(ctx context.Context) error
	RefreshCourses(ctx context.Context) error
	// RefreshAll runs the four refreshes in parallel and joins their errors.
	RefreshAll(ctx context.Context) error
}

// TextTransformService applies the user's text transform rules to displayed
// strings and manages the rule collection.
type TextTransformService interface {
	// Transform returns raw rewritten by the enabled rules. A LOCATION rule
	// matching tc wins outright; otherwise KEYWORD and REGEX rules apply
	// cumulatively in stored order.
	Transform(raw string, tc models.TextContext) string
	// GetEffectiveRules returns the rules Transform would fire, in order.
	GetEffectiveRules(raw string, tc models.TextContext) []models.TextTransformRule

	AddRule(ctx context.Context, draft models.RuleDraft) (models.TextTransformRule, error)
	UpdateRule(ctx context.Context, ruleID string, draft models.RuleDraft) error
	SetRuleEnabled(ctx context.Context, ruleID string, enabled bool) error
	DeleteRule(ctx context.Context, ruleID string) error

	// ExportRulesJSON returns the pretty-printed versioned envelope.
	ExportRulesJSON() (string, error)
	// ImportRulesJSON replaces the whole collection. Callers must confirm
	// with the user first.
	ImportRulesJSON(ctx context.Context, raw string) (int, error)

	SetEnabled(ctx context.Context, enabled bool) error
	Enabled() bool
	Rules() []models.TextTransformRule
	RulesState() *state.Value[[]models.TextTransformRule]
	EnabledState() *state.Value[bool]

	BuildDraftFromRule(rule models.TextTransformRule) models.RuleDraft
}

// CourseService loads views that are fetched on demand and never cached:
// the grade overview and a single course page.
type CourseService interface {
	LoadGrades(ctx context.Context) models.DataState[[]models.CourseGrade]
	LoadCourse(ctx context.Context, courseID int) models.DataState[models.Course]
}

// ClientRefreshJob periodically refreshes remote data while the session is
// authenticated.
type ClientRefreshJob interface {
	// Start launches the background goroutine. It refreshes every interval,
	// defaulting to 10 minutes if interval is zero or negative. Any previously
	// running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()

	// Run starts the job and blocks until ctx is done.
	Run(ctx context.Context) error
}
