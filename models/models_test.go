// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Account key ─────────────────────────────────────────────────────────────

func TestNormalizeSite(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"moodle.example.edu", "moodle.example.edu"},
		{"  https://moodle.example.edu/  ", "moodle.example.edu"},
		{"http://moodle.example.edu//", "moodle.example.edu"},
		{"https://host/moodle/", "host/moodle"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeSite(tt.in))
		})
	}
}

func TestBuildAccountKey_Idempotent(t *testing.T) {
	variants := [][2]string{
		{"moodle.example.edu", "alice"},
		{"https://Moodle.Example.edu/", " Alice "},
		{"  http://MOODLE.example.EDU", "ALICE"},
	}

	want := "moodle.example.edu|alice"
	for _, v := range variants {
		key := BuildAccountKey(v[0], v[1])
		assert.Equal(t, want, key)
		assert.Equal(t, key, BuildAccountKey(v[0], v[1]))
	}
}

// ── Location keys ───────────────────────────────────────────────────────────

func TestCanonicalLocation(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"all alias", "course/all/course:42/name", "course/course:42/name"},
		{"detail alias with title", "course/detail/course:42/title", "course/course:42/name"},
		{"already canonical", "course/course:42/name", "course/course:42/name"},
		{"whitespace and empty segments", " dashboard // timeline / event:7 /name ", "dashboard/timeline/event:7/name"},
		{"all not after course", "dashboard/all/name", "dashboard/all/name"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanonicalLocation(tt.in))
		})
	}
}

func TestLocationKeyAndSeg(t *testing.T) {
	assert.Equal(t, "course/all/course:42/name", LocationKey("course", "all", LocationSeg("course", 42), "", "name"))
	assert.Equal(t, "course", LocationSeg("course", nil))
	assert.Equal(t, "course", LocationSeg("course", ""))
	assert.Equal(t, "item:a_b", LocationSeg("item", "a/b"))
	assert.Equal(t, "item:_", LocationSeg("item", "///"))
	assert.Equal(t, "item:ab-c_d", LocationSeg("item", " ab-c d "))
}

func TestLocationHash_Stable(t *testing.T) {
	a := LocationHash("https://moodle.example.edu/grade/report.php?id=42")
	b := LocationHash("https://moodle.example.edu/grade/report.php?id=42")
	c := LocationHash("https://moodle.example.edu/grade/report.php?id=43")
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.NotContains(t, a, "/")
}

// ── Rule JSON ───────────────────────────────────────────────────────────────

func TestTextTransformRule_UnmarshalDefaults(t *testing.T) {
	before := time.Now().UnixMilli()

	var r TextTransformRule
	require.NoError(t, json.Unmarshal([]byte(`{"id":"r1","type":"KEYWORD","matcher":"a","replacement":"b"}`), &r))

	assert.Equal(t, "r1", r.ID)
	assert.Equal(t, RuleKeyword, r.Type)
	assert.True(t, r.Enabled)
	assert.True(t, r.IgnoreCase)
	assert.Empty(t, r.Note)
	assert.GreaterOrEqual(t, r.CreatedAtEpochMs, before)
}

func TestTextTransformRule_UnmarshalExplicitValues(t *testing.T) {
	var r TextTransformRule
	raw := `{"id":"r1","type":"REGEX","matcher":"a+","replacement":"b","enabled":false,"ignoreCase":false,"note":"n","createdAtEpochMs":5}`
	require.NoError(t, json.Unmarshal([]byte(raw), &r))

	assert.Equal(t, TextTransformRule{
		ID: "r1", Type: RuleRegex, Matcher: "a+", Replacement: "b",
		Enabled: false, IgnoreCase: false, Note: "n", CreatedAtEpochMs: 5,
	}, r)
}

func TestTextTransformRule_UnmarshalErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"missing id", `{"type":"KEYWORD","matcher":"a","replacement":"b"}`},
		{"missing type", `{"id":"x","matcher":"a","replacement":"b"}`},
		{"unknown type", `{"id":"x","type":"FUZZY","matcher":"a","replacement":"b"}`},
		{"missing matcher", `{"id":"x","type":"KEYWORD","replacement":"b"}`},
		{"missing replacement", `{"id":"x","type":"KEYWORD","matcher":"a"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r TextTransformRule
			err := json.Unmarshal([]byte(tt.raw), &r)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedRule)
		})
	}
}

// ── State helpers ───────────────────────────────────────────────────────────

func TestDataState_Constructors(t *testing.T) {
	assert.True(t, Loading[[]CourseInfo]().IsLoading())

	s := Success([]CourseInfo{{ID: 1}})
	assert.True(t, s.IsSuccess())
	assert.Len(t, s.Data, 1)

	f := Failed[[]CourseInfo]("boom")
	assert.Equal(t, DataError, f.Status)
	assert.Equal(t, "boom", f.Message)
}

func TestAuthState_Constructors(t *testing.T) {
	assert.Equal(t, AuthUnauthed, Unauthed("x").Status)
	assert.Equal(t, "x", Unauthed("x").Reason)
	assert.Equal(t, "authed", Authed().Status.String())
	assert.Equal(t, "main", RouteMain.String())
}

// ── Build info ──────────────────────────────────────────────────────────────

func TestAppBuildInfo_Fields(t *testing.T) {
	info := NewAppBuildInfo(" 1.0.0 ", "", "abc")

	assert.Equal(t, "1.0.0", info.BuildVersion())
	assert.Equal(t, [][2]string{{"version", "1.0.0"}, {"date", "N/A"}, {"commit", "abc"}}, info.Fields())
	assert.Equal(t, "N/A", AppBuildInfo{}.Fields()[0][1])
}
