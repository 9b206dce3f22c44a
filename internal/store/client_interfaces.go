// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-markdo/internal/state"
	"github.com/MKhiriev/go-markdo/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// AccountRepository persists remembered logins. At most one account is
// active at any time.
type AccountRepository interface {
	// ListAccounts returns every account, active first, then by most recent
	// login.
	ListAccounts(ctx context.Context) ([]models.Account, error)
	// GetByKey returns ErrAccountNotFound when key is unknown.
	GetByKey(ctx context.Context, accountKey string) (models.Account, error)
	// GetActive returns ErrAccountNotFound when no account is active.
	GetActive(ctx context.Context) (models.Account, error)
	HasAny(ctx context.Context) (bool, error)
	// SaveSuccessfulLogin upserts the account for site and username and makes
	// it the only active one.
	SaveSuccessfulLogin(ctx context.Context, site, username, password string) (models.Account, error)
	// SetActive reports false when accountKey does not exist; the previous
	// active account is cleared either way.
	SetActive(ctx context.Context, accountKey string) (bool, error)
	ClearActive(ctx context.Context) error
	// Remove deletes an inactive account. It reports false and changes nothing
	// when accountKey is active or unknown.
	Remove(ctx context.Context, accountKey string) (bool, error)
	ClearAll(ctx context.Context) error
}

// CacheRepository keeps the last successful snapshot of remote data per
// account.
type CacheRepository interface {
	// ReadUserProfile returns nil when no profile is cached.
	ReadUserProfile(ctx context.Context, accountKey string) (*models.UserProfile, error)
	ReadTimeline(ctx context.Context, accountKey string) ([]models.TimelineEvent, error)
	ReadRecentItems(ctx context.Context, accountKey string) ([]models.RecentItem, error)
	ReadCourses(ctx context.Context, accountKey string) ([]models.CourseInfo, error)

	ReplaceUserProfile(ctx context.Context, accountKey string, profile models.UserProfile) error
	ReplaceTimeline(ctx context.Context, accountKey string, events []models.TimelineEvent) error
	ReplaceRecentItems(ctx context.Context, accountKey string, items []models.RecentItem) error
	ReplaceCourses(ctx context.Context, accountKey string, courses []models.CourseInfo) error

	HasAnyCache(ctx context.Context) (bool, error)
	HasAnyCacheForAccount(ctx context.Context, accountKey string) (bool, error)
	ClearAccountCaches(ctx context.Context, accountKey string) error
	ClearAllCaches(ctx context.Context) error
}

// PreferenceRepository is a string key/value store.
type PreferenceRepository interface {
	// Get reports false when key is unset.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// RuleRepository stores the ordered text transform rule collection and the
// global enable flag. Every mutation republishes the full collection.
type RuleRepository interface {
	// Rules is the observable rule collection in stored order.
	Rules() *state.Value[[]models.TextTransformRule]
	// Enabled is the observable global enable flag.
	Enabled() *state.Value[bool]

	// Reload re-reads both preferences and republishes them.
	Reload(ctx context.Context) error
	// Upsert replaces the rule with the same id in place, or appends it.
	Upsert(ctx context.Context, rule models.TextTransformRule) error
	// Delete is a no-op for an unknown id.
	Delete(ctx context.Context, ruleID string) error
	ReplaceAll(ctx context.Context, rules []models.TextTransformRule) error
	SetEnabled(ctx context.Context, enabled bool) error
}

// PasswordSealer protects account passwords at rest.
type PasswordSealer interface {
	Seal(plain string) (string, error)
	Open(stored string) (string, error)
}
