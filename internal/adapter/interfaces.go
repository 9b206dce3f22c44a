// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for talking to a Moodle site.
//
// The primary abstraction is [MoodleAdapter], which decouples the session
// service from the Moodle web-service protocol. The package ships a resty
// implementation ([NewMoodleHTTPAdapter]) that authenticates against
// login/token.php and calls webservice/rest/server.php with the issued token.
//
// Transport failures and Moodle error objects are mapped to the sentinels in
// errors.go so that callers can classify failures with [errors.Is] (for
// example [ErrInvalidCredentials] or [ErrNetwork]).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-markdo/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/moodle_adapter_mock.go -package=mock

// MoodleAdapter is the remote fetch client. A successful Login opens a
// session that every data call uses until ClearSession or the next Login.
type MoodleAdapter interface {
	// Login requests a web-service token for username on site. site may carry
	// a scheme and trailing slashes; it is normalized first. Wrong credentials
	// yield [ErrInvalidCredentials], unreachable sites [ErrNetwork].
	Login(ctx context.Context, site, username, password string) error

	// ClearSession forgets the current token. It is safe to call without a
	// session.
	ClearSession()

	// GetUserProfile returns the signed-in user's name and avatar.
	GetUserProfile(ctx context.Context) (models.UserProfile, error)

	// GetTimeline returns upcoming action events in remote order.
	GetTimeline(ctx context.Context) ([]models.TimelineEvent, error)

	// GetRecentItems returns recently accessed course modules in remote order.
	GetRecentItems(ctx context.Context) ([]models.RecentItem, error)

	// GetCourses returns all enrolled courses in remote order.
	GetCourses(ctx context.Context) ([]models.CourseInfo, error)

	// GetGrades returns the user's overall grade per course. Courses without
	// a grade report "-".
	GetGrades(ctx context.Context) ([]models.CourseGrade, error)

	// GetCourse returns one course with its visible sections and modules.
	GetCourse(ctx context.Context, courseID int) (models.Course, error)
}
