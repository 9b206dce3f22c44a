// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-markdo/internal/service"
	"github.com/MKhiriev/go-markdo/models"
)

// locationTransform replaces whole strings whose canonical location is
// listed, the way a LOCATION rule does.
type locationTransform struct {
	service.TextTransformService

	replace map[string]string
}

func (f locationTransform) Transform(raw string, tc models.TextContext) string {
	if out, ok := f.replace[models.CanonicalLocation(tc.LocationKey)]; ok {
		return out
	}
	return raw
}

type fakeCourses struct {
	grades  []models.DataState[[]models.CourseGrade]
	courses map[int]models.DataState[models.Course]
	loaded  []int
}

func (f *fakeCourses) LoadGrades(context.Context) models.DataState[[]models.CourseGrade] {
	next := f.grades[0]
	f.grades = f.grades[1:]
	return next
}

func (f *fakeCourses) LoadCourse(_ context.Context, courseID int) models.DataState[models.Course] {
	f.loaded = append(f.loaded, courseID)
	return f.courses[courseID]
}

var history = models.Course{
	ID:   3,
	Name: "History",
	Sections: []models.CourseSection{{
		ID:      10,
		Name:    "General",
		Summary: "<p>Welcome &amp; read\n the <b>rules</b></p>",
		Modules: []models.CourseModule{{ID: 100, Name: "Announcements", Type: "forum"}},
	}},
}

// ── grades ────────────────────────────────────────────────────────────────────

func TestGrades_LoadAndRender(t *testing.T) {
	grade := models.CourseGrade{CourseID: 3, Name: "History", Grade: "87.50", URL: "https://m/grade/report/user/index.php?id=3"}
	courses := &fakeCourses{grades: []models.DataState[[]models.CourseGrade]{models.Success([]models.CourseGrade{grade})}}
	tr := locationTransform{replace: map[string]string{gradeLocation(grade) + "/grade": "A"}}
	m := NewGradesModel(context.Background(), courses, tr)

	cmd := m.Init()
	assert.Contains(t, m.View(), "Loading grades")
	m.Update(cmd())

	view := m.View()
	assert.Contains(t, view, "History")
	assert.Contains(t, view, "A")
	assert.NotContains(t, view, "87.50")

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Page: pageCourse, Payload: openCourseMsg{courseID: 3}}, cmd())
}

func TestGrades_StaleLoadDropped(t *testing.T) {
	courses := &fakeCourses{grades: []models.DataState[[]models.CourseGrade]{
		models.Failed[[]models.CourseGrade]("network error"),
		models.Success([]models.CourseGrade{}),
	}}
	m := NewGradesModel(context.Background(), courses, locationTransform{})

	first := m.Init()
	_, second := m.Update(runeKey("r"))
	require.NotNil(t, second)

	m.Update(first())
	assert.Contains(t, m.View(), "Loading grades")

	m.Update(second())
	assert.Contains(t, m.View(), "No grades yet")
}

func TestGrades_ErrorOffersRetry(t *testing.T) {
	courses := &fakeCourses{grades: []models.DataState[[]models.CourseGrade]{models.Failed[[]models.CourseGrade]("network error")}}
	m := NewGradesModel(context.Background(), courses, locationTransform{})

	m.Update(m.Init()())

	assert.Contains(t, m.View(), "Error: network error")
	assert.Contains(t, m.View(), "r: retry")
}

// ── course ────────────────────────────────────────────────────────────────────

func TestCourse_OpenLoadsAndRenders(t *testing.T) {
	courses := &fakeCourses{courses: map[int]models.DataState[models.Course]{3: models.Success(history)}}
	// one rule addresses the course name on both the list and the detail page
	tr := locationTransform{replace: map[string]string{
		"course/course:3/name":                        "World History",
		"course/course:3/section:10/module:100/name": "News",
	}}
	m := NewCourseModel(context.Background(), courses, tr)

	_, cmd := m.Update(openCourseMsg{courseID: 3})
	require.NotNil(t, cmd)
	assert.Contains(t, m.View(), "Loading course")
	m.Update(cmd())

	view := m.View()
	assert.Equal(t, []int{3}, courses.loaded)
	assert.Contains(t, view, "WORLD HISTORY")
	assert.Contains(t, view, "General")
	assert.Contains(t, view, "Welcome & read the rules")
	assert.Contains(t, view, "News")
	assert.NotContains(t, view, "Announcements")
}

func TestCourse_IgnoresOtherCourseResult(t *testing.T) {
	courses := &fakeCourses{courses: map[int]models.DataState[models.Course]{3: models.Success(history)}}
	m := NewCourseModel(context.Background(), courses, locationTransform{})

	m.Update(openCourseMsg{courseID: 4})
	m.Update(courseLoadedMsg{courseID: 3, state: models.Success(history)})

	assert.Contains(t, m.View(), "Loading course")
}

func TestCourse_EscReturnsToMain(t *testing.T) {
	m := NewCourseModel(context.Background(), &fakeCourses{}, locationTransform{})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Page: pageMain}, cmd())
}

func TestPlainText(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "", want: ""},
		{raw: "plain", want: "plain"},
		{raw: "<p>a</p><p>b</p>", want: "a b"},
		{raw: "x &lt; y", want: "x < y"},
		{raw: "<br/>  ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, plainText(tt.raw))
		})
	}
}

// ── main page links ───────────────────────────────────────────────────────────

func TestMain_EnterOpensCourse(t *testing.T) {
	m := NewMainModel(context.Background(), nil, locationTransform{})
	m.Update(update[models.DataState[[]models.CourseInfo]]{value: models.Success([]models.CourseInfo{{ID: 7, Name: "Algebra"}})})
	m.section = sectionCourses

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Page: pageCourse, Payload: openCourseMsg{courseID: 7}}, cmd())

	_, cmd = m.Update(runeKey("g"))
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Page: pageGrades}, cmd())
}

func TestMain_EnterWithoutCourseDoesNothing(t *testing.T) {
	m := NewMainModel(context.Background(), nil, locationTransform{})
	m.Update(update[models.DataState[[]models.TimelineEvent]]{value: models.Success([]models.TimelineEvent{{ID: 1, Name: "Site event"}})})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
}
