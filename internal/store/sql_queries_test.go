// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-markdo/models"
)

func Test_buildSelectCacheQuery_ListTable(t *testing.T) {
	query, args, err := buildSelectCacheQuery(tableCourses, courseColumns, "site|bob")
	require.NoError(t, err)

	require.Equal(t, []any{"site|bob"}, args)

	q := strings.ToLower(query)
	assert.Contains(t, q, "from cache_courses")
	assert.Contains(t, q, "where account_key = ?")
	assert.Contains(t, q, "order by display_order asc")
	// account_key is a filter, not a projected column
	assert.NotContains(t, q, "select account_key")
}

func Test_buildSelectCacheQuery_Profile(t *testing.T) {
	query, _, err := buildSelectCacheQuery(tableUserProfile, userProfileColumns, "k")
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "select name, avatar_url from cache_user_profile")
	assert.Contains(t, q, "limit 1")
	assert.NotContains(t, q, "order by")
}

func Test_buildDeleteCacheQuery(t *testing.T) {
	t.Run("one account", func(t *testing.T) {
		query, args, err := buildDeleteCacheQuery(tableTimeline, "k")
		require.NoError(t, err)
		assert.Equal(t, "DELETE FROM cache_timeline WHERE account_key = ?", query)
		assert.Equal(t, []any{"k"}, args)
	})

	t.Run("all accounts", func(t *testing.T) {
		query, args, err := buildDeleteCacheQuery(tableTimeline, "")
		require.NoError(t, err)
		assert.Equal(t, "DELETE FROM cache_timeline", query)
		assert.Empty(t, args)
	})
}

func Test_buildInsertTimelineQuery_DisplayOrder(t *testing.T) {
	events := []models.TimelineEvent{{ID: 7, Name: "first"}, {ID: 3, Name: "second"}}

	query, args, err := buildInsertTimelineQuery("k", events)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(query, "INSERT OR REPLACE INTO cache_timeline"))
	require.Len(t, args, len(timelineColumns)*len(events))

	// last value of each row is display_order
	assert.Equal(t, 0, args[len(timelineColumns)-1])
	assert.Equal(t, 1, args[2*len(timelineColumns)-1])
	assert.Equal(t, 7, args[1])
	assert.Equal(t, 3, args[len(timelineColumns)+1])
}

func Test_buildInsertCoursesQuery(t *testing.T) {
	query, args, err := buildInsertCoursesQuery("k", []models.CourseInfo{{ID: 1, Name: "Algebra"}})
	require.NoError(t, err)

	assert.Equal(t, strings.Count(query, "?"), len(args))
	assert.Equal(t, []any{"k", 1, "Algebra", "", "", 0}, args)
}

func Test_buildInsertRecentItemsQuery(t *testing.T) {
	query, args, err := buildInsertRecentItemsQuery("k", []models.RecentItem{{ID: 5, CourseModuleID: 9}})
	require.NoError(t, err)

	assert.Contains(t, query, "cache_recent_items")
	assert.Len(t, args, len(recentItemColumns))
}

func Test_buildUpsertUserProfileQuery(t *testing.T) {
	avatar := "https://m.example.edu/pic.png"
	query, args, err := buildUpsertUserProfileQuery("k", models.UserProfile{Name: "Bob", AvatarURL: &avatar})
	require.NoError(t, err)

	assert.Equal(t, "INSERT OR REPLACE INTO cache_user_profile (account_key,name,avatar_url) VALUES (?,?,?)", query)
	assert.Equal(t, "k", args[0])
	assert.Equal(t, "Bob", args[1])
}
