// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-markdo/internal/service"
	"github.com/MKhiriev/go-markdo/internal/toast"
	"github.com/MKhiriev/go-markdo/models"
)

type section int

const (
	sectionTimeline section = iota
	sectionRecent
	sectionCourses
	sectionCount
)

func (s section) String() string {
	switch s {
	case sectionTimeline:
		return "Timeline"
	case sectionRecent:
		return "Recent"
	case sectionCourses:
		return "Courses"
	default:
		return "?"
	}
}

// row is one displayed line. Texts are raw; they are transformed at render
// time with their location.
type row struct {
	title     string
	titleLoc  string
	detail    string
	detailLoc string
	meta      string
	// courseID opens the course page on enter; zero when there is none.
	courseID int
}

// MainModel is the dashboard: the profile header and the timeline, recent
// items and courses sections.
type MainModel struct {
	ctx       context.Context
	session   service.SessionService
	transform service.TextTransformService

	profile  models.DataState[models.UserProfile]
	timeline models.DataState[[]models.TimelineEvent]
	recent   models.DataState[[]models.RecentItem]
	courses  models.DataState[[]models.CourseInfo]

	section    section
	cursor     listCursor
	refreshing bool
	status     string
}

func NewMainModel(ctx context.Context, session service.SessionService, transform service.TextTransformService) *MainModel {
	return &MainModel{
		ctx:       ctx,
		session:   session,
		transform: transform,
		profile:   models.Loading[models.UserProfile](),
		timeline:  models.Loading[[]models.TimelineEvent](),
		recent:    models.Loading[[]models.RecentItem](),
		courses:   models.Loading[[]models.CourseInfo](),
	}
}

func (m *MainModel) Init() tea.Cmd { return nil }

func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case update[models.DataState[models.UserProfile]]:
		m.profile = msg.value
		return m, nil
	case update[models.DataState[[]models.TimelineEvent]]:
		m.timeline = msg.value
		m.cursor.clamp(len(m.rows()))
		return m, nil
	case update[models.DataState[[]models.RecentItem]]:
		m.recent = msg.value
		m.cursor.clamp(len(m.rows()))
		return m, nil
	case update[models.DataState[[]models.CourseInfo]]:
		m.courses = msg.value
		m.cursor.clamp(len(m.rows()))
		return m, nil
	case refreshDoneMsg:
		m.refreshing = false
		if msg.err != nil {
			m.status = ""
			return m, notify("some data could not be refreshed", toast.Short)
		}
		m.status = "Up to date"
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.right):
		m.section = (m.section + 1) % sectionCount
		m.cursor = listCursor{}
	case key.Matches(keyMsg, keys.backtab), key.Matches(keyMsg, keys.left):
		m.section = (m.section + sectionCount - 1) % sectionCount
		m.cursor = listCursor{}
	case key.Matches(keyMsg, keys.up):
		m.cursor.up()
	case key.Matches(keyMsg, keys.down):
		m.cursor.down(len(m.rows()))
	case key.Matches(keyMsg, keys.refresh):
		if m.refreshing {
			return m, nil
		}
		m.refreshing = true
		m.status = "Refreshing..."
		return m, m.cmdRefresh()
	case key.Matches(keyMsg, keys.explain):
		m.status = m.explain()
	case key.Matches(keyMsg, keys.enter):
		if r, ok := pick(m.cursor, m.rows()); ok {
			return m, openCourse(r.courseID)
		}
	case key.Matches(keyMsg, keys.grades):
		return m, navigate(pageGrades)
	case key.Matches(keyMsg, keys.accounts):
		return m, navigate(pageAccounts)
	case key.Matches(keyMsg, keys.rules):
		return m, navigate(pageRules)
	case key.Matches(keyMsg, keys.logout):
		return m, m.cmdLogout()
	}
	return m, nil
}

func (m *MainModel) View() string {
	var b strings.Builder

	b.WriteString(m.header())
	b.WriteString("\n\n")
	for s := section(0); s < sectionCount; s++ {
		label := s.String()
		if s == m.section {
			label = activeTabStyle.Render(label)
		}
		b.WriteString(label)
		b.WriteString("   ")
	}
	b.WriteString("\n\n")
	b.WriteString(m.body())

	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(m.status)
	}

	return renderPage("MARKDO", b.String(),
		"tab: section │ enter: course │ g: grades │ r: refresh │ i: applied rules │ a: accounts │ t: rules │ ctrl+l: log out")
}

func (m *MainModel) header() string {
	switch m.profile.Status {
	case models.DataSuccess:
		name := m.text(m.profile.Data.Name, models.LocationKey("profile", "name"))
		return "Signed in as " + valueOrDash(name)
	case models.DataError:
		return errorStyle.Render("Profile: " + m.profile.Message)
	default:
		return "Loading profile..."
	}
}

func (m *MainModel) body() string {
	status, message := m.sectionState()
	switch status {
	case models.DataLoading:
		return "Loading..."
	case models.DataError:
		return errorStyle.Render("Error: " + message)
	}

	rows := m.rows()
	if len(rows) == 0 {
		return "Nothing here"
	}

	var b strings.Builder
	for i, r := range rows {
		b.WriteString(cursorMark(i == m.cursor.idx))
		b.WriteString(fitText(m.text(r.title, r.titleLoc), 48))
		if r.detail != "" {
			b.WriteString("  · ")
			b.WriteString(fitText(m.text(r.detail, r.detailLoc), 32))
		}
		if r.meta != "" {
			b.WriteString("  ")
			b.WriteString(helpStyle.Render(r.meta))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *MainModel) sectionState() (models.DataStatus, string) {
	switch m.section {
	case sectionTimeline:
		return m.timeline.Status, m.timeline.Message
	case sectionRecent:
		return m.recent.Status, m.recent.Message
	default:
		return m.courses.Status, m.courses.Message
	}
}

// rows returns the lines of the current section, empty unless it holds data.
func (m *MainModel) rows() []row {
	switch m.section {
	case sectionTimeline:
		return timelineRows(m.timeline.Data)
	case sectionRecent:
		return recentRows(m.recent.Data)
	default:
		return courseRows(m.courses.Data)
	}
}

func timelineRows(events []models.TimelineEvent) []row {
	rows := make([]row, 0, len(events))
	for _, e := range events {
		title := e.Name
		if title == "" {
			title = e.Title
		}
		meta := "due " + formatEpoch(e.Deadline)
		if e.Overdue {
			meta = "overdue " + formatEpoch(e.Deadline)
		}
		rows = append(rows, row{
			title:     title,
			titleLoc:  models.LocationKey("timeline", models.LocationSeg("event", e.ID), "name"),
			detail:    e.CourseName,
			detailLoc: courseNameLoc(e.CourseID),
			meta:      meta,
			courseID:  e.CourseID,
		})
	}
	return rows
}

func recentRows(items []models.RecentItem) []row {
	rows := make([]row, 0, len(items))
	for _, it := range items {
		rows = append(rows, row{
			title:     it.Name,
			titleLoc:  models.LocationKey("recent", models.LocationSeg("item", it.ID), "name"),
			detail:    it.CourseName,
			detailLoc: courseNameLoc(it.CourseID),
			meta:      formatEpoch(it.TimeAccess),
			courseID:  it.CourseID,
		})
	}
	return rows
}

func courseRows(courses []models.CourseInfo) []row {
	rows := make([]row, 0, len(courses))
	for _, c := range courses {
		rows = append(rows, row{
			title:     c.Name,
			titleLoc:  models.LocationKey("course", "all", models.LocationSeg("course", c.ID), "name"),
			detail:    c.Category,
			detailLoc: models.LocationKey("course", "all", models.LocationSeg("course", c.ID), "category"),
			courseID:  c.ID,
		})
	}
	return rows
}

func courseNameLoc(courseID int) string {
	return models.LocationKey("course", models.LocationSeg("course", courseID), "name")
}

func (m *MainModel) text(raw, loc string) string {
	return m.transform.Transform(raw, models.NewTextContext(loc))
}

// explain lists the rules that rewrite the selected title.
func (m *MainModel) explain() string {
	r, ok := pick(m.cursor, m.rows())
	if !ok {
		return "Nothing selected"
	}

	fired := m.transform.GetEffectiveRules(r.title, models.NewTextContext(r.titleLoc))
	if len(fired) == 0 {
		return "No rules apply to " + r.titleLoc
	}

	names := make([]string, 0, len(fired))
	for _, rule := range fired {
		names = append(names, ruleLabel(rule))
	}
	return fmt.Sprintf("%s: %s", r.titleLoc, strings.Join(names, ", "))
}

func (m *MainModel) cmdRefresh() tea.Cmd {
	ctx := m.ctx
	session := m.session

	return func() tea.Msg {
		return refreshDoneMsg{err: session.RefreshAll(ctx)}
	}
}

func (m *MainModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	session := m.session

	return func() tea.Msg {
		session.Logout(ctx)
		return nil
	}
}
