// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-markdo/internal/logger"
	"github.com/MKhiriev/go-markdo/internal/state"
	"github.com/MKhiriev/go-markdo/models"
)

// entity ties one remote data stream to its fetch call and its cache.
type entity[T any] struct {
	name    string
	stream  *state.Value[models.DataState[T]]
	fetch   func(ctx context.Context) (T, error)
	persist func(ctx context.Context, accountKey string, data T) error
	// cached reports false when nothing usable is cached.
	cached func(ctx context.Context, accountKey string) (T, bool, error)
}

func nonEmpty[E any](read func(context.Context, string) ([]E, error)) func(context.Context, string) ([]E, bool, error) {
	return func(ctx context.Context, key string) ([]E, bool, error) {
		rows, err := read(ctx, key)
		if err != nil {
			return nil, false, err
		}
		return rows, len(rows) > 0, nil
	}
}

// refresh fetches the entity. On failure a held Success is kept; otherwise
// the cache is tried before publishing Error. Fetched data is always cached
// under key, but the stream is left alone once session moves past gen.
func (e entity[T]) refresh(ctx context.Context, s *sessionService, key string, gen uint64) error {
	log := logger.FromContext(ctx)

	data, err := e.fetch(ctx)
	if err == nil {
		if perr := e.persist(ctx, key, data); perr != nil {
			log.Err(perr).Str("func", "entity.refresh").Str("entity", e.name).Msg("failed to cache fetched data")
		}
		if !s.publish(gen, func() { e.stream.Set(models.Success(data)) }) {
			log.Debug().Str("func", "entity.refresh").Str("entity", e.name).Str("account", key).Msg("session changed, result dropped")
		}
		return nil
	}

	log.Warn().Err(err).Str("func", "entity.refresh").Str("entity", e.name).Msg("fetch failed")

	if e.stream.Get().IsSuccess() {
		return err
	}

	local, ok, cerr := e.cached(ctx, key)
	if cerr != nil {
		log.Err(cerr).Str("func", "entity.refresh").Str("entity", e.name).Msg("failed to read cache")
	}
	s.publish(gen, func() {
		if ok {
			e.stream.Set(models.Success(local))
			return
		}
		e.stream.Set(models.Failed[T](fetchErrorMessage(err)))
	})
	return err
}

// load publishes the cached data, if any.
func (e entity[T]) load(ctx context.Context, key string) {
	data, ok, err := e.cached(ctx, key)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "entity.load").Str("entity", e.name).Msg("failed to read cache")
		return
	}
	if ok {
		e.stream.Set(models.Success(data))
	}
}

// settle turns a still-Loading stream into an empty Success.
func (e entity[T]) settle() {
	e.stream.Update(func(cur models.DataState[T]) (models.DataState[T], bool) {
		if !cur.IsLoading() {
			return cur, false
		}
		var empty T
		return models.Success(empty), true
	})
}

func (e entity[T]) clear() {
	e.stream.Set(models.Loading[T]())
}

func (s *sessionService) loadFromCache(ctx context.Context, key string) {
	s.profile.load(ctx, key)
	s.timeline.load(ctx, key)
	s.recentItems.load(ctx, key)
	s.courses.load(ctx, key)
}

// settleForOfflineView settles the list streams. The profile stays Loading
// when none is cached.
func (s *sessionService) settleForOfflineView() {
	s.timeline.settle()
	s.recentItems.settle()
	s.courses.settle()
}

func (s *sessionService) clearData() {
	s.invalidate()
	s.profile.clear()
	s.timeline.clear()
	s.recentItems.clear()
	s.courses.clear()
}

// onLoggedIn publishes the cache of key and then either refreshes from
// remote or settles the streams for an offline view.
func (s *sessionService) onLoggedIn(ctx context.Context, key string, refreshRemote bool) {
	s.setCurrentKey(key)
	s.loadFromCache(ctx, key)

	if !refreshRemote {
		s.settleForOfflineView()
		return
	}

	if err := s.RefreshAll(ctx); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "sessionService.onLoggedIn").Msg("some entities failed to refresh")
	}
}

// resolveKey returns the in-memory account key, else the active account's,
// together with the session generation it belongs to.
func (s *sessionService) resolveKey(ctx context.Context) (string, uint64, error) {
	if key, gen := s.snapshot(); key != "" {
		return key, gen, nil
	}

	active, err := s.accounts.GetActive(ctx)
	if err != nil {
		return "", 0, errors.Join(ErrNoActiveAccount, err)
	}
	s.setCurrentKey(active.AccountKey)
	key, gen := s.snapshot()
	if key != active.AccountKey {
		return "", 0, ErrNoActiveAccount
	}
	return key, gen, nil
}

func refreshWithKey[T any](ctx context.Context, s *sessionService, e entity[T]) error {
	key, gen, err := s.resolveKey(ctx)
	if err != nil {
		return err
	}
	return e.refresh(ctx, s, key, gen)
}

func (s *sessionService) RefreshUserProfile(ctx context.Context) error {
	return refreshWithKey(ctx, s, s.profile)
}

func (s *sessionService) RefreshTimeline(ctx context.Context) error {
	return refreshWithKey(ctx, s, s.timeline)
}

func (s *sessionService) RefreshRecentItems(ctx context.Context) error {
	return refreshWithKey(ctx, s, s.recentItems)
}

func (s *sessionService) RefreshCourses(ctx context.Context) error {
	return refreshWithKey(ctx, s, s.courses)
}

// RefreshAll implements [SessionService]. The refreshes do not cancel each
// other.
func (s *sessionService) RefreshAll(ctx context.Context) error {
	refreshers := []func(context.Context) error{
		s.RefreshUserProfile,
		s.RefreshTimeline,
		s.RefreshRecentItems,
		s.RefreshCourses,
	}

	var g errgroup.Group
	errs := make([]error, len(refreshers))
	for i, refresh := range refreshers {
		g.Go(func() error {
			errs[i] = refresh(ctx)
			return nil
		})
	}
	_ = g.Wait()

	return errors.Join(errs...)
}
