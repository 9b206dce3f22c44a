// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-markdo/internal/service"
	"github.com/MKhiriev/go-markdo/models"
)

// GradesModel lists the overall grade of every enrolled course. Grades are
// loaded each time the page opens and are never cached.
type GradesModel struct {
	ctx       context.Context
	courses   service.CourseService
	transform service.TextTransformService

	grades  models.DataState[[]models.CourseGrade]
	cursor  listCursor
	loadSeq int
}

func NewGradesModel(ctx context.Context, courses service.CourseService, transform service.TextTransformService) *GradesModel {
	return &GradesModel{
		ctx:       ctx,
		courses:   courses,
		transform: transform,
		grades:    models.Loading[[]models.CourseGrade](),
	}
}

func (m *GradesModel) Init() tea.Cmd { return m.reload() }

func (m *GradesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case gradesLoadedMsg:
		if msg.seq != m.loadSeq {
			return m, nil
		}
		m.grades = msg.state
		m.cursor.clamp(len(m.grades.Data))
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		return m, navigate(pageMain)
	case key.Matches(keyMsg, keys.up):
		m.cursor.up()
	case key.Matches(keyMsg, keys.down):
		m.cursor.down(len(m.grades.Data))
	case key.Matches(keyMsg, keys.refresh):
		return m, m.reload()
	case key.Matches(keyMsg, keys.enter):
		if g, ok := pick(m.cursor, m.grades.Data); ok {
			return m, openCourse(g.CourseID)
		}
	}
	return m, nil
}

func (m *GradesModel) View() string {
	var body string
	switch m.grades.Status {
	case models.DataLoading:
		body = "Loading grades..."
	case models.DataError:
		body = errorStyle.Render("Error: "+m.grades.Message) + "\n\nr: retry"
	default:
		body = m.list()
	}
	return renderPage("GRADES", body, "enter: open course │ r: reload │ esc: back")
}

func (m *GradesModel) list() string {
	if len(m.grades.Data) == 0 {
		return "No grades yet"
	}

	var b strings.Builder
	for i, g := range m.grades.Data {
		loc := gradeLocation(g)
		b.WriteString(cursorMark(i == m.cursor.idx))
		b.WriteString(fitText(m.text(g.Name, loc+"/name"), 48))
		b.WriteString("  ")
		b.WriteString(activeTabStyle.Render(fitText(m.text(g.Grade, loc+"/grade"), 16)))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// gradeLocation keys a grade row by its report URL.
func gradeLocation(g models.CourseGrade) string {
	return models.LocationKey("grades", models.LocationSeg("item", models.LocationHash(g.URL)))
}

func (m *GradesModel) text(raw, loc string) string {
	return m.transform.Transform(raw, models.NewTextContext(loc))
}

// reload marks the list Loading; results of an earlier load are dropped.
func (m *GradesModel) reload() tea.Cmd {
	m.loadSeq++
	m.grades = models.Loading[[]models.CourseGrade]()
	seq := m.loadSeq
	ctx := m.ctx
	courses := m.courses

	return func() tea.Msg {
		return gradesLoadedMsg{seq: seq, state: courses.LoadGrades(ctx)}
	}
}
