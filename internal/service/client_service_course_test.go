// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-markdo/internal/adapter"
	"github.com/MKhiriev/go-markdo/internal/app"
	"github.com/MKhiriev/go-markdo/internal/logger"
	"github.com/MKhiriev/go-markdo/internal/mock"
	"github.com/MKhiriev/go-markdo/models"
)

func TestCourseService_LoadGrades(t *testing.T) {
	grades := []models.CourseGrade{{CourseID: 3, Name: "History", Grade: "87.50", URL: "https://m/grade/report/user/index.php?id=3"}}

	tests := []struct {
		name   string
		grades []models.CourseGrade
		err    error
		want   models.DataState[[]models.CourseGrade]
	}{
		{name: "success", grades: grades, want: models.Success(grades)},
		{name: "network", err: errNetwork, want: models.Failed[[]models.CourseGrade](app.MsgNetworkError)},
		{name: "no session", err: adapter.ErrNoSession, want: models.Failed[[]models.CourseGrade]("no active session")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			remote := mock.NewMockMoodleAdapter(gomock.NewController(t))
			remote.EXPECT().GetGrades(gomock.Any()).Return(tt.grades, tt.err)

			got := NewCourseService(remote, logger.Nop()).LoadGrades(context.Background())

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCourseService_LoadCourse(t *testing.T) {
	remote := mock.NewMockMoodleAdapter(gomock.NewController(t))
	course := models.Course{ID: 3, Name: "History", Sections: []models.CourseSection{{ID: 10, Name: "General"}}}
	gomock.InOrder(
		remote.EXPECT().GetCourse(gomock.Any(), 3).Return(course, nil),
		remote.EXPECT().GetCourse(gomock.Any(), 4).Return(models.Course{}, errNetwork),
	)
	svc := NewCourseService(remote, logger.Nop())

	assert.Equal(t, models.Success(course), svc.LoadCourse(context.Background(), 3))
	assert.Equal(t, models.Failed[models.Course](app.MsgNetworkError), svc.LoadCourse(context.Background(), 4))
}
