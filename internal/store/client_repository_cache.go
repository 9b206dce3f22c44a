// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-markdo/internal/logger"
	"github.com/MKhiriev/go-markdo/models"
)

// cacheRepository is the sqlite-backed implementation of [CacheRepository].
// Multi-row snapshots are replaced wholesale inside one transaction, so a
// reader never observes a half-written list.
type cacheRepository struct {
	*DB
	logger *logger.Logger
}

// NewCacheRepository constructs a [CacheRepository].
func NewCacheRepository(db *DB, logger *logger.Logger) CacheRepository {
	return &cacheRepository{
		DB:     db,
		logger: logger,
	}
}

func (c *cacheRepository) ReadUserProfile(ctx context.Context, accountKey string) (*models.UserProfile, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCacheQuery(tableUserProfile, userProfileColumns, accountKey)
	if err != nil {
		log.Err(err).Str("func", "cacheRepository.ReadUserProfile").Msg("failed to create query")
		return nil, err
	}

	var (
		profile models.UserProfile
		avatar  sql.NullString
	)
	err = c.DB.QueryRowContext(ctx, query, args...).Scan(&profile.Name, &avatar)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "cacheRepository.ReadUserProfile").
			Str("account_key", accountKey).
			Msg("failed to scan profile row")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	if avatar.Valid {
		profile.AvatarURL = &avatar.String
	}

	return &profile, nil
}

func (c *cacheRepository) ReadTimeline(ctx context.Context, accountKey string) ([]models.TimelineEvent, error) {
	return readCacheRows(ctx, c.DB, "cacheRepository.ReadTimeline", tableTimeline, timelineColumns, accountKey,
		func(rows *sql.Rows) (models.TimelineEvent, error) {
			var (
				e     models.TimelineEvent
				order int
			)
			err := rows.Scan(&e.ID, &e.Title, &e.Name, &e.Type, &e.Description, &e.Deadline, &e.Overdue,
				&e.CourseID, &e.CourseName, &e.IconURL, &e.ActionName, &e.ActionURL, &order)
			return e, err
		})
}

func (c *cacheRepository) ReadRecentItems(ctx context.Context, accountKey string) ([]models.RecentItem, error) {
	return readCacheRows(ctx, c.DB, "cacheRepository.ReadRecentItems", tableRecentItems, recentItemColumns, accountKey,
		func(rows *sql.Rows) (models.RecentItem, error) {
			var (
				it    models.RecentItem
				order int
			)
			err := rows.Scan(&it.ID, &it.Type, &it.Name, &it.CourseID, &it.CourseName, &it.CourseModuleID,
				&it.TimeAccess, &it.ViewURL, &it.RawIconHTML, &order)
			return it, err
		})
}

func (c *cacheRepository) ReadCourses(ctx context.Context, accountKey string) ([]models.CourseInfo, error) {
	return readCacheRows(ctx, c.DB, "cacheRepository.ReadCourses", tableCourses, courseColumns, accountKey,
		func(rows *sql.Rows) (models.CourseInfo, error) {
			var (
				course models.CourseInfo
				order  int
			)
			err := rows.Scan(&course.ID, &course.Name, &course.Category, &course.URL, &order)
			return course, err
		})
}

// readCacheRows runs the display-ordered select for one table and scans
// every row with scan.
func readCacheRows[T any](ctx context.Context, db *DB, funcName, table string, columns []string, accountKey string,
	scan func(*sql.Rows) (T, error)) ([]T, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCacheQuery(table, columns, accountKey)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to create query")
		return nil, err
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Str("account_key", accountKey).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]T, 0, 16)
	for rows.Next() {
		item, scanErr := scan(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", funcName).Str("account_key", accountKey).Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		results = append(results, item)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return results, nil
}

func (c *cacheRepository) ReplaceUserProfile(ctx context.Context, accountKey string, profile models.UserProfile) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertUserProfileQuery(accountKey, profile)
	if err != nil {
		log.Err(err).Str("func", "cacheRepository.ReplaceUserProfile").Msg("failed to create query")
		return err
	}

	if _, err = c.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "cacheRepository.ReplaceUserProfile").
			Str("account_key", accountKey).
			Msg("failed to upsert profile")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (c *cacheRepository) ReplaceTimeline(ctx context.Context, accountKey string, events []models.TimelineEvent) error {
	return c.replaceRows(ctx, "cacheRepository.ReplaceTimeline", tableTimeline, accountKey, len(events),
		func() (string, []any, error) { return buildInsertTimelineQuery(accountKey, events) })
}

func (c *cacheRepository) ReplaceRecentItems(ctx context.Context, accountKey string, items []models.RecentItem) error {
	return c.replaceRows(ctx, "cacheRepository.ReplaceRecentItems", tableRecentItems, accountKey, len(items),
		func() (string, []any, error) { return buildInsertRecentItemsQuery(accountKey, items) })
}

func (c *cacheRepository) ReplaceCourses(ctx context.Context, accountKey string, courses []models.CourseInfo) error {
	return c.replaceRows(ctx, "cacheRepository.ReplaceCourses", tableCourses, accountKey, len(courses),
		func() (string, []any, error) { return buildInsertCoursesQuery(accountKey, courses) })
}

// replaceRows deletes the account's rows in table and inserts count new ones
// built by insert, all in one transaction.
func (c *cacheRepository) replaceRows(ctx context.Context, funcName, table, accountKey string, count int,
	insert func() (string, []any, error)) error {
	log := logger.FromContext(ctx)

	deleteQuery, deleteArgs, err := buildDeleteCacheQuery(table, accountKey)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to create delete query")
		return err
	}

	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		log.Err(err).Str("func", funcName).Str("account_key", accountKey).Msg("failed to clear cached rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if count > 0 {
		insertQuery, insertArgs, buildErr := insert()
		if buildErr != nil {
			log.Err(buildErr).Str("func", funcName).Msg("failed to create insert query")
			return buildErr
		}

		if _, err = tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			log.Err(err).
				Str("func", funcName).
				Str("account_key", accountKey).
				Int("count", count).
				Msg("failed to insert cached rows")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (c *cacheRepository) HasAnyCache(ctx context.Context) (bool, error) {
	var exists bool
	if err := c.DB.QueryRowContext(ctx, hasAnyCache).Scan(&exists); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "cacheRepository.HasAnyCache").Msg("failed to query caches")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return exists, nil
}

func (c *cacheRepository) HasAnyCacheForAccount(ctx context.Context, accountKey string) (bool, error) {
	var exists bool
	if err := c.DB.QueryRowContext(ctx, hasAnyCacheForAccount, accountKey).Scan(&exists); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "cacheRepository.HasAnyCacheForAccount").
			Str("account_key", accountKey).
			Msg("failed to query caches")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return exists, nil
}

func (c *cacheRepository) ClearAccountCaches(ctx context.Context, accountKey string) error {
	return c.clearTables(ctx, "cacheRepository.ClearAccountCaches", accountKey)
}

func (c *cacheRepository) ClearAllCaches(ctx context.Context) error {
	return c.clearTables(ctx, "cacheRepository.ClearAllCaches", "")
}

func (c *cacheRepository) clearTables(ctx context.Context, funcName, accountKey string) error {
	log := logger.FromContext(ctx)

	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for _, table := range cacheTables {
		query, args, buildErr := buildDeleteCacheQuery(table, accountKey)
		if buildErr != nil {
			log.Err(buildErr).Str("func", funcName).Str("table", table).Msg("failed to create query")
			return buildErr
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).Str("func", funcName).Str("table", table).Msg("failed to clear cache table")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
