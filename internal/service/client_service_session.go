// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/go-markdo/internal/adapter"
	"github.com/MKhiriev/go-markdo/internal/app"
	"github.com/MKhiriev/go-markdo/internal/config"
	"github.com/MKhiriev/go-markdo/internal/logger"
	"github.com/MKhiriev/go-markdo/internal/state"
	"github.com/MKhiriev/go-markdo/internal/store"
	"github.com/MKhiriev/go-markdo/internal/validators"
	"github.com/MKhiriev/go-markdo/models"
)

type sessionService struct {
	accounts  store.AccountRepository
	caches    store.CacheRepository
	remote    adapter.MoodleAdapter
	validator validators.Validator

	defaultSite string

	// op serializes the auth entry points.
	op sync.Mutex

	// keyMu guards currentKey and generation. generation moves on every
	// account change or stream reset; refresh results of an older
	// generation are not published.
	keyMu      sync.RWMutex
	currentKey string
	generation uint64

	authState  *state.Value[models.AuthState]
	remembered *state.Value[[]models.Account]
	activeKey  *state.Value[string]

	profile     entity[models.UserProfile]
	timeline    entity[[]models.TimelineEvent]
	recentItems entity[[]models.RecentItem]
	courses     entity[[]models.CourseInfo]

	logger *logger.Logger
}

// NewSessionService wires the session state machine to the local stores and
// the remote client. All streams start empty and AuthState starts Initial.
func NewSessionService(storages *store.ClientStorages, remote adapter.MoodleAdapter, cfg config.ClientAdapter, logger *logger.Logger) SessionService {
	s := &sessionService{
		accounts:    storages.AccountRepository,
		caches:      storages.CacheRepository,
		remote:      remote,
		validator:   validators.NewRuleValidator(),
		defaultSite: models.NormalizeSite(cfg.DefaultSite),
		authState:   state.New(models.Initial()),
		remembered:  state.New[[]models.Account](nil),
		activeKey:   state.New(""),
		logger:      logger,
	}

	s.profile = entity[models.UserProfile]{
		name:    "user profile",
		stream:  state.New(models.Loading[models.UserProfile]()),
		fetch:   remote.GetUserProfile,
		persist: s.caches.ReplaceUserProfile,
		cached: func(ctx context.Context, key string) (models.UserProfile, bool, error) {
			p, err := s.caches.ReadUserProfile(ctx, key)
			if err != nil || p == nil {
				return models.UserProfile{}, false, err
			}
			return *p, true, nil
		},
	}
	s.timeline = entity[[]models.TimelineEvent]{
		name:    "timeline",
		stream:  state.New(models.Loading[[]models.TimelineEvent]()),
		fetch:   remote.GetTimeline,
		persist: s.caches.ReplaceTimeline,
		cached:  nonEmpty(s.caches.ReadTimeline),
	}
	s.recentItems = entity[[]models.RecentItem]{
		name:    "recent items",
		stream:  state.New(models.Loading[[]models.RecentItem]()),
		fetch:   remote.GetRecentItems,
		persist: s.caches.ReplaceRecentItems,
		cached:  nonEmpty(s.caches.ReadRecentItems),
	}
	s.courses = entity[[]models.CourseInfo]{
		name:    "courses",
		stream:  state.New(models.Loading[[]models.CourseInfo]()),
		fetch:   remote.GetCourses,
		persist: s.caches.ReplaceCourses,
		cached:  nonEmpty(s.caches.ReadCourses),
	}

	return s
}

func (s *sessionService) AuthState() *state.Value[models.AuthState] { return s.authState }

func (s *sessionService) UserProfile() *state.Value[models.DataState[models.UserProfile]] {
	return s.profile.stream
}

func (s *sessionService) Timeline() *state.Value[models.DataState[[]models.TimelineEvent]] {
	return s.timeline.stream
}

func (s *sessionService) RecentItems() *state.Value[models.DataState[[]models.RecentItem]] {
	return s.recentItems.stream
}

func (s *sessionService) Courses() *state.Value[models.DataState[[]models.CourseInfo]] {
	return s.courses.stream
}

func (s *sessionService) RememberedAccounts() *state.Value[[]models.Account] { return s.remembered }

func (s *sessionService) ActiveAccountKey() *state.Value[string] { return s.activeKey }

// Bootstrap implements [SessionService]. It waits for any running auth
// operation instead of skipping.
func (s *sessionService) Bootstrap(ctx context.Context) models.BootstrapRoute {
	log := logger.FromContext(ctx)

	s.op.Lock()
	defer s.op.Unlock()

	accounts, err := s.refreshRemembered(ctx)
	if err != nil {
		log.Err(err).Str("func", "sessionService.Bootstrap").Msg("failed to list remembered accounts")
		return s.resetToLogin(ctx, false)
	}
	if len(accounts) == 0 {
		return s.resetToLogin(ctx, true)
	}

	active, err := s.accounts.GetActive(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrAccountNotFound) {
			log.Err(err).Str("func", "sessionService.Bootstrap").Msg("failed to read active account")
			return s.resetToLogin(ctx, false)
		}
		return s.resetToLogin(ctx, true)
	}

	s.setCurrentKey(active.AccountKey)
	s.activeKey.Set(active.AccountKey)

	if s.hasCacheFor(ctx, active.AccountKey) {
		s.loadFromCache(ctx, active.AccountKey)
		s.settleForOfflineView()
		log.Debug().Str("func", "sessionService.Bootstrap").Str("account", active.AccountKey).Msg("restored cached session")
		return models.RouteMain
	}

	s.clearData()
	return models.RouteSplash
}

// resetToLogin clears the streams. With purge it also drops every cache;
// a failed account read keeps them for the next start.
func (s *sessionService) resetToLogin(ctx context.Context, purge bool) models.BootstrapRoute {
	if purge {
		s.purgeCaches(ctx)
	}

	s.clearData()
	s.setCurrentKey("")
	s.activeKey.Set("")
	return models.RouteLogin
}

func (s *sessionService) purgeCaches(ctx context.Context) {
	log := logger.FromContext(ctx)

	hasCache, err := s.caches.HasAnyCache(ctx)
	if err != nil {
		log.Err(err).Str("func", "sessionService.purgeCaches").Msg("failed to check caches")
		return
	}
	if !hasCache {
		return
	}
	if err = s.caches.ClearAllCaches(ctx); err != nil {
		log.Err(err).Str("func", "sessionService.purgeCaches").Msg("failed to clear stale caches")
	}
}

// AutoLogin implements [SessionService].
func (s *sessionService) AutoLogin(ctx context.Context, allowOfflineFallback bool) {
	if !s.op.TryLock() {
		return
	}
	defer s.op.Unlock()

	s.autoLogin(ctx, allowOfflineFallback)
}

// autoLogin runs with op held.
func (s *sessionService) autoLogin(ctx context.Context, allowOfflineFallback bool) {
	log := logger.FromContext(ctx)

	if _, err := s.refreshRemembered(ctx); err != nil {
		log.Err(err).Str("func", "sessionService.autoLogin").Msg("failed to list remembered accounts")
	}

	active, err := s.accounts.GetActive(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrAccountNotFound) {
			log.Err(err).Str("func", "sessionService.autoLogin").Msg("failed to read active account")
			s.clearData()
			s.authState.Set(models.Unauthed(app.MsgLoginFailedUnknown))
			return
		}

		s.remote.ClearSession()
		s.setCurrentKey("")
		s.activeKey.Set("")
		s.clearData()
		s.authState.Set(models.Unauthed(app.MsgNoLoginInfo))
		return
	}

	s.authState.Set(models.Busy())
	key := active.AccountKey
	s.setCurrentKey(key)
	hasCache := s.hasCacheFor(ctx, key)

	if err = s.remote.Login(ctx, active.BaseSite, active.Username, active.Password); err != nil {
		s.onAutoLoginFailed(ctx, key, hasCache && allowOfflineFallback, err)
		return
	}

	s.onLoggedIn(ctx, key, true)
	s.authState.Set(models.Authed())
}

func (s *sessionService) onAutoLoginFailed(ctx context.Context, key string, offlineAllowed bool, err error) {
	log := logger.FromContext(ctx)
	failure := classifyLoginError(err)

	switch failure.kind {
	case failureInvalidCredentials:
		log.Warn().Err(err).Str("func", "sessionService.autoLogin").Str("account", key).Msg("stored credentials rejected")
		s.remote.ClearSession()
		if err = s.caches.ClearAccountCaches(ctx, key); err != nil {
			log.Err(err).Str("func", "sessionService.autoLogin").Msg("failed to purge account cache")
		}
		if err = s.accounts.ClearActive(ctx); err != nil {
			log.Err(err).Str("func", "sessionService.autoLogin").Msg("failed to clear active account")
		}
		s.setCurrentKey("")
		s.activeKey.Set("")
		if _, err = s.refreshRemembered(ctx); err != nil {
			log.Err(err).Str("func", "sessionService.autoLogin").Msg("failed to list remembered accounts")
		}

	case failureNetwork:
		if offlineAllowed {
			log.Warn().Err(err).Str("func", "sessionService.autoLogin").Str("account", key).Msg("network failure, falling back to cache")
			s.onLoggedIn(ctx, key, false)
			s.authState.Set(models.Authed())
			return
		}
		log.Warn().Err(err).Str("func", "sessionService.autoLogin").Msg("network failure")

	default:
		log.Err(err).Str("func", "sessionService.autoLogin").Msg("login failed")
	}

	s.clearData()
	s.authState.Set(models.Unauthed(failure.message))
}

// ManualLogin implements [SessionService]. Blank input ends in
// Unauthed(missing login info) rather than leaving the state Busy.
func (s *sessionService) ManualLogin(ctx context.Context, site, username, password string) {
	log := logger.FromContext(ctx)

	if !s.op.TryLock() {
		return
	}
	defer s.op.Unlock()

	s.authState.Set(models.Busy())

	draft := models.LoginDraft{
		BaseSite: models.NormalizeSite(site),
		Username: strings.TrimSpace(username),
		Password: password,
	}
	if err := s.validator.Validate(ctx, draft); err != nil {
		s.authState.Set(models.Unauthed(app.MsgMissingLoginInfo))
		return
	}

	if err := s.remote.Login(ctx, draft.BaseSite, draft.Username, draft.Password); err != nil {
		failure := classifyLoginError(err)
		log.Warn().Err(err).Str("func", "sessionService.ManualLogin").Str("site", draft.BaseSite).Msg("login failed")
		s.authState.Set(models.Unauthed(failure.message))
		return
	}

	account, err := s.accounts.SaveSuccessfulLogin(ctx, draft.BaseSite, draft.Username, draft.Password)
	if err != nil {
		log.Err(err).Str("func", "sessionService.ManualLogin").Msg("failed to remember account")
		s.remote.ClearSession()
		s.authState.Set(models.Unauthed(app.MsgLoginFailedUnknown))
		return
	}

	if s.getCurrentKey() != account.AccountKey {
		s.clearData()
	}
	s.setCurrentKey(account.AccountKey)
	s.invalidate()
	if _, err = s.refreshRemembered(ctx); err != nil {
		log.Err(err).Str("func", "sessionService.ManualLogin").Msg("failed to list remembered accounts")
	}

	s.onLoggedIn(ctx, account.AccountKey, true)
	s.authState.Set(models.Authed())
}

// Logout implements [SessionService].
func (s *sessionService) Logout(ctx context.Context) {
	log := logger.FromContext(ctx)

	if !s.op.TryLock() {
		return
	}
	defer s.op.Unlock()

	s.authState.Set(models.Busy())

	s.remote.ClearSession()
	if err := s.accounts.ClearActive(ctx); err != nil {
		log.Err(err).Str("func", "sessionService.Logout").Msg("failed to clear active account")
	}
	s.setCurrentKey("")
	s.activeKey.Set("")
	if _, err := s.refreshRemembered(ctx); err != nil {
		log.Err(err).Str("func", "sessionService.Logout").Msg("failed to list remembered accounts")
	}

	s.clearData()
	s.authState.Set(models.Unauthed(app.MsgUserLoggedOut))
}

// SwitchAccount implements [SessionService]. With a local cache the target's
// data is published and AuthState becomes Authed before the remote login is
// attempted. The reconcile runs on the caller's goroutine with op held.
func (s *sessionService) SwitchAccount(ctx context.Context, accountKey string) {
	log := logger.FromContext(ctx)

	if !s.op.TryLock() {
		return
	}
	defer s.op.Unlock()

	account, err := s.accounts.GetByKey(ctx, accountKey)
	if err != nil {
		if !errors.Is(err, store.ErrAccountNotFound) {
			log.Err(err).Str("func", "sessionService.SwitchAccount").Msg("failed to read account")
		}
		return
	}

	if _, err = s.accounts.SetActive(ctx, account.AccountKey); err != nil {
		log.Err(err).Str("func", "sessionService.SwitchAccount").Msg("failed to activate account")
		return
	}
	s.remote.ClearSession()
	s.setCurrentKey(account.AccountKey)
	if _, err = s.refreshRemembered(ctx); err != nil {
		log.Err(err).Str("func", "sessionService.SwitchAccount").Msg("failed to list remembered accounts")
	}

	hasCache := s.hasCacheFor(ctx, account.AccountKey)
	s.clearData()
	if hasCache {
		s.loadFromCache(ctx, account.AccountKey)
		s.settleForOfflineView()
		s.authState.Set(models.Authed())
	}

	s.autoLogin(ctx, hasCache)
}

// RemoveRememberedAccount implements [SessionService].
func (s *sessionService) RemoveRememberedAccount(ctx context.Context, accountKey string) (bool, error) {
	log := logger.FromContext(ctx)

	removed, err := s.accounts.Remove(ctx, accountKey)
	if err != nil {
		return false, fmt.Errorf("remove account: %w", err)
	}
	if !removed {
		return false, nil
	}

	if err = s.caches.ClearAccountCaches(ctx, accountKey); err != nil {
		log.Err(err).Str("func", "sessionService.RemoveRememberedAccount").Msg("failed to purge account cache")
	}
	if _, err = s.refreshRemembered(ctx); err != nil {
		log.Err(err).Str("func", "sessionService.RemoveRememberedAccount").Msg("failed to list remembered accounts")
	}

	return true, nil
}

// ForgetAllAccounts implements [SessionService]. It waits for a running auth
// operation.
func (s *sessionService) ForgetAllAccounts(ctx context.Context) (bool, error) {
	s.op.Lock()
	defer s.op.Unlock()

	has, err := s.accounts.HasAny(ctx)
	if err != nil {
		return false, fmt.Errorf("check accounts: %w", err)
	}
	if !has {
		return false, nil
	}

	s.remote.ClearSession()
	if err = s.accounts.ClearAll(ctx); err != nil {
		return false, fmt.Errorf("clear accounts: %w", err)
	}
	if err = s.caches.ClearAllCaches(ctx); err != nil {
		return false, fmt.Errorf("clear caches: %w", err)
	}

	s.setCurrentKey("")
	s.clearData()
	s.remembered.Set(nil)
	s.activeKey.Set("")
	s.authState.Set(models.Unauthed(app.MsgNoLoginInfo))
	return true, nil
}

func (s *sessionService) GetRememberedAccounts(ctx context.Context) ([]models.Account, error) {
	return s.refreshRemembered(ctx)
}

func (s *sessionService) GetPreferredLoginDraft(ctx context.Context) (models.LoginDraft, error) {
	active, err := s.accounts.GetActive(ctx)
	if err == nil {
		return active.Draft(), nil
	}
	if !errors.Is(err, store.ErrAccountNotFound) {
		return models.LoginDraft{}, fmt.Errorf("read active account: %w", err)
	}

	// no active account, so the list is ordered by last login
	accounts, err := s.accounts.ListAccounts(ctx)
	if err != nil {
		return models.LoginDraft{}, fmt.Errorf("list accounts: %w", err)
	}
	if len(accounts) > 0 {
		return accounts[0].Draft(), nil
	}

	return models.LoginDraft{BaseSite: s.defaultSite}, nil
}

func (s *sessionService) GetLoginDraftByAccountKey(ctx context.Context, accountKey string) (models.LoginDraft, bool, error) {
	account, err := s.accounts.GetByKey(ctx, accountKey)
	if errors.Is(err, store.ErrAccountNotFound) {
		return models.LoginDraft{}, false, nil
	}
	if err != nil {
		return models.LoginDraft{}, false, fmt.Errorf("read account: %w", err)
	}
	return account.Draft(), true, nil
}

// refreshRemembered republishes the account list and the active key.
func (s *sessionService) refreshRemembered(ctx context.Context) ([]models.Account, error) {
	accounts, err := s.accounts.ListAccounts(ctx)
	if err != nil {
		return nil, err
	}

	active := ""
	for _, a := range accounts {
		if a.IsActive {
			active = a.AccountKey
			break
		}
	}

	s.remembered.Set(accounts)
	s.activeKey.Set(active)
	return accounts, nil
}

func (s *sessionService) hasCacheFor(ctx context.Context, key string) bool {
	ok, err := s.caches.HasAnyCacheForAccount(ctx, key)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "sessionService.hasCacheFor").Msg("failed to check account cache")
		return false
	}
	return ok
}

func (s *sessionService) getCurrentKey() string {
	s.keyMu.RLock()
	defer s.keyMu.RUnlock()
	return s.currentKey
}

func (s *sessionService) snapshot() (string, uint64) {
	s.keyMu.RLock()
	defer s.keyMu.RUnlock()
	return s.currentKey, s.generation
}

func (s *sessionService) setCurrentKey(key string) {
	s.keyMu.Lock()
	defer s.keyMu.Unlock()
	if s.currentKey != key {
		s.generation++
	}
	s.currentKey = key
}

func (s *sessionService) invalidate() {
	s.keyMu.Lock()
	defer s.keyMu.Unlock()
	s.generation++
}

// publish runs set only while gen is still current. Streams written here
// have no observers that touch the session, so set runs under the read lock.
func (s *sessionService) publish(gen uint64, set func()) bool {
	s.keyMu.RLock()
	defer s.keyMu.RUnlock()
	if s.generation != gen {
		return false
	}
	set()
	return true
}
