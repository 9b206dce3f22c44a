// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-markdo/internal/adapter"
	"github.com/MKhiriev/go-markdo/internal/logger"
	"github.com/MKhiriev/go-markdo/models"
)

type courseService struct {
	remote adapter.MoodleAdapter
	logger *logger.Logger
}

// NewCourseService returns the on-demand loader for grades and course pages.
func NewCourseService(remote adapter.MoodleAdapter, logger *logger.Logger) CourseService {
	return &courseService{remote: remote, logger: logger}
}

func (s *courseService) LoadGrades(ctx context.Context) models.DataState[[]models.CourseGrade] {
	grades, err := s.remote.GetGrades(ctx)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "courseService.LoadGrades").Msg("failed to load grades")
		return models.Failed[[]models.CourseGrade](fetchErrorMessage(err))
	}
	return models.Success(grades)
}

func (s *courseService) LoadCourse(ctx context.Context, courseID int) models.DataState[models.Course] {
	course, err := s.remote.GetCourse(ctx, courseID)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "courseService.LoadCourse").Int("course", courseID).Msg("failed to load course")
		return models.Failed[models.Course](fetchErrorMessage(err))
	}
	return models.Success(course)
}
