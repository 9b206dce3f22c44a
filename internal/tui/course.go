// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-markdo/internal/service"
	"github.com/MKhiriev/go-markdo/models"
)

const (
	courseViewWidth  = 80
	courseViewHeight = 20
)

// CourseModel shows one course page: its sections and their modules in a
// scrollable view.
type CourseModel struct {
	ctx       context.Context
	courses   service.CourseService
	transform service.TextTransformService

	courseID int
	course   models.DataState[models.Course]
	view     viewport.Model
}

func NewCourseModel(ctx context.Context, courses service.CourseService, transform service.TextTransformService) *CourseModel {
	return &CourseModel{
		ctx:       ctx,
		courses:   courses,
		transform: transform,
		course:    models.Loading[models.Course](),
		view:      viewport.New(courseViewWidth, courseViewHeight),
	}
}

func (m *CourseModel) Init() tea.Cmd { return nil }

func (m *CourseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case openCourseMsg:
		m.courseID = msg.courseID
		return m, m.reload()
	case courseLoadedMsg:
		if msg.courseID != m.courseID {
			return m, nil
		}
		m.course = msg.state
		m.view.SetContent(m.content())
		m.view.GotoTop()
		return m, nil
	case tea.WindowSizeMsg:
		m.view.Width = msg.Width
		m.view.Height = max(msg.Height-8, 3)
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		return m, navigate(pageMain)
	case key.Matches(keyMsg, keys.refresh):
		return m, m.reload()
	}

	var cmd tea.Cmd
	m.view, cmd = m.view.Update(msg)
	return m, cmd
}

func (m *CourseModel) View() string {
	hotKeys := "↑/↓: scroll │ r: reload │ esc: back"
	switch m.course.Status {
	case models.DataLoading:
		return renderPage("COURSE", "Loading course...", hotKeys)
	case models.DataError:
		return renderPage("COURSE", errorStyle.Render("Error: "+m.course.Message)+"\n\nr: retry", hotKeys)
	}

	title := m.text(m.course.Data.Name, models.LocationKey(courseDetailKey(m.courseID), "title"))
	return renderPage(strings.ToUpper(valueOrDash(title)), m.view.View(), hotKeys)
}

// content renders the loaded course into the viewport text.
func (m *CourseModel) content() string {
	sections := m.course.Data.Sections
	if len(sections) == 0 {
		return "This course has no visible content"
	}

	var b strings.Builder
	for _, s := range sections {
		sectionKey := models.LocationKey(courseDetailKey(m.courseID), models.LocationSeg("section", s.ID))

		b.WriteString(titleStyle.Render(valueOrDash(m.text(s.Name, sectionKey+"/name"))))
		b.WriteString("\n")
		if summary := plainText(s.Summary); summary != "" {
			b.WriteString(helpStyle.Render(m.text(summary, sectionKey+"/summary")))
			b.WriteString("\n")
		}
		for _, mod := range s.Modules {
			moduleKey := models.LocationKey(sectionKey, models.LocationSeg("module", mod.ID))
			fmt.Fprintf(&b, "  • %s  %s\n",
				m.text(mod.Name, moduleKey+"/name"),
				helpStyle.Render(mod.Type))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func courseDetailKey(courseID int) string {
	return models.LocationKey("course", "detail", models.LocationSeg("course", courseID))
}

func (m *CourseModel) text(raw, loc string) string {
	return m.transform.Transform(raw, models.NewTextContext(loc))
}

func (m *CourseModel) reload() tea.Cmd {
	m.course = models.Loading[models.Course]()
	courseID := m.courseID
	ctx := m.ctx
	courses := m.courses

	return func() tea.Msg {
		return courseLoadedMsg{courseID: courseID, state: courses.LoadCourse(ctx, courseID)}
	}
}

// plainText drops markup from a section summary and collapses whitespace.
func plainText(raw string) string {
	var b strings.Builder
	inTag := false
	for _, r := range raw {
		switch {
		case r == '<':
			inTag = true
			b.WriteByte(' ')
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(html.UnescapeString(b.String())), " ")
}

// openCourse navigates to the course page and loads courseID there.
func openCourse(courseID int) tea.Cmd {
	if courseID <= 0 {
		return nil
	}
	return func() tea.Msg {
		return NavigateTo{Page: pageCourse, Payload: openCourseMsg{courseID: courseID}}
	}
}
