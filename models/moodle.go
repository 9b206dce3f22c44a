// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// UserProfile is the signed-in user's display identity.
type UserProfile struct {
	Name      string  `json:"name"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

// TimelineEvent is an upcoming action event from the dashboard timeline.
type TimelineEvent struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
	// Deadline is a unix timestamp in seconds.
	Deadline   int64  `json:"deadline"`
	Overdue    bool   `json:"overdue"`
	CourseID   int    `json:"course_id"`
	CourseName string `json:"course_name"`
	IconURL    string `json:"icon_url"`
	ActionName string `json:"action_name"`
	ActionURL  string `json:"action_url"`
}

// RecentItem is a recently accessed course module.
type RecentItem struct {
	ID             int    `json:"id"`
	Type           string `json:"type"`
	Name           string `json:"name"`
	CourseID       int    `json:"course_id"`
	CourseName     string `json:"course_name"`
	CourseModuleID int    `json:"course_module_id"`
	// TimeAccess is a unix timestamp in seconds.
	TimeAccess  int64  `json:"time_access"`
	ViewURL     string `json:"view_url"`
	RawIconHTML string `json:"raw_icon_html"`
}

// CourseInfo is one enrolled course.
type CourseInfo struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	URL      string `json:"url"`
}

// CourseGrade is one course row of the user's grade overview.
type CourseGrade struct {
	CourseID int    `json:"course_id"`
	Name     string `json:"name"`
	Grade    string `json:"grade"`
	URL      string `json:"url"`
}

// Course is a course with its content sections.
type Course struct {
	ID       int             `json:"id"`
	Name     string          `json:"name"`
	Sections []CourseSection `json:"sections"`
}

// CourseSection is one section of a course page.
type CourseSection struct {
	ID      int            `json:"id"`
	Name    string         `json:"name"`
	Summary string         `json:"summary"`
	Modules []CourseModule `json:"modules"`
}

// CourseModule is one activity or resource inside a section.
type CourseModule struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	URL         string `json:"url"`
	Description string `json:"description"`
}
