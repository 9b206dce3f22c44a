// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-markdo/models"
)

// Cache table names.
const (
	tableUserProfile = "cache_user_profile"
	tableTimeline    = "cache_timeline"
	tableRecentItems = "cache_recent_items"
	tableCourses     = "cache_courses"
)

// cacheTables lists every per-account cache table.
var cacheTables = []string{tableUserProfile, tableTimeline, tableRecentItems, tableCourses}

var (
	userProfileColumns = []string{"account_key", "name", "avatar_url"}

	timelineColumns = []string{
		"account_key", "id", "title", "name", "type", "description", "deadline", "overdue",
		"course_id", "course_name", "icon_url", "action_name", "action_url", "display_order",
	}

	recentItemColumns = []string{
		"account_key", "id", "type", "name", "course_id", "course_name", "course_module_id",
		"time_access", "view_url", "raw_icon_html", "display_order",
	}

	courseColumns = []string{"account_key", "id", "name", "category", "url", "display_order"}
)

// psql is the statement builder shared by the cache queries; sqlite uses "?"
// placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// buildSelectCacheQuery selects the given columns (account_key excluded) of
// one account in display order.
func buildSelectCacheQuery(table string, columns []string, accountKey string) (string, []any, error) {
	query := psql.
		Select(columns[1:]...).
		From(table).
		Where(sq.Eq{"account_key": accountKey})

	if table != tableUserProfile {
		query = query.OrderBy("display_order ASC")
	} else {
		query = query.Limit(1)
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return sqlStr, args, nil
}

// buildDeleteCacheQuery deletes the rows of one account, or of every account
// when accountKey is empty.
func buildDeleteCacheQuery(table, accountKey string) (string, []any, error) {
	query := psql.Delete(table)
	if accountKey != "" {
		query = query.Where(sq.Eq{"account_key": accountKey})
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return sqlStr, args, nil
}

func buildUpsertUserProfileQuery(accountKey string, profile models.UserProfile) (string, []any, error) {
	sqlStr, args, err := psql.
		Insert(tableUserProfile).
		Options("OR REPLACE").
		Columns(userProfileColumns...).
		Values(accountKey, profile.Name, profile.AvatarURL).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return sqlStr, args, nil
}

// buildInsertTimelineQuery inserts events with display_order equal to their
// position in the slice.
func buildInsertTimelineQuery(accountKey string, events []models.TimelineEvent) (string, []any, error) {
	query := psql.Insert(tableTimeline).Options("OR REPLACE").Columns(timelineColumns...)
	for order, e := range events {
		query = query.Values(accountKey, e.ID, e.Title, e.Name, e.Type, e.Description, e.Deadline, e.Overdue,
			e.CourseID, e.CourseName, e.IconURL, e.ActionName, e.ActionURL, order)
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return sqlStr, args, nil
}

func buildInsertRecentItemsQuery(accountKey string, items []models.RecentItem) (string, []any, error) {
	query := psql.Insert(tableRecentItems).Options("OR REPLACE").Columns(recentItemColumns...)
	for order, it := range items {
		query = query.Values(accountKey, it.ID, it.Type, it.Name, it.CourseID, it.CourseName, it.CourseModuleID,
			it.TimeAccess, it.ViewURL, it.RawIconHTML, order)
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return sqlStr, args, nil
}

func buildInsertCoursesQuery(accountKey string, courses []models.CourseInfo) (string, []any, error) {
	query := psql.Insert(tableCourses).Options("OR REPLACE").Columns(courseColumns...)
	for order, c := range courses {
		query = query.Values(accountKey, c.ID, c.Name, c.Category, c.URL, order)
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return sqlStr, args, nil
}
