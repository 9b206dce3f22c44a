// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strconv"
	"strings"
)

// TokenResponse is the body of a successful login/token.php call.
type TokenResponse struct {
	Token        string `json:"token"`
	PrivateToken string `json:"privatetoken,omitempty"`
}

// SiteInfoResponse is the subset of core_webservice_get_site_info the client
// reads.
type SiteInfoResponse struct {
	UserID         int    `json:"userid"`
	Username       string `json:"username"`
	FullName       string `json:"fullname"`
	UserPictureURL string `json:"userpictureurl"`
}

// Profile maps the site info to a [UserProfile]. An empty picture URL
// becomes nil.
func (r SiteInfoResponse) Profile() UserProfile {
	profile := UserProfile{Name: r.FullName}
	if profile.Name == "" {
		profile.Name = r.Username
	}
	if url := strings.TrimSpace(r.UserPictureURL); url != "" {
		profile.AvatarURL = &url
	}
	return profile
}

// ActionEventsResponse is the body of
// core_calendar_get_action_events_by_timesort.
type ActionEventsResponse struct {
	Events []ActionEvent `json:"events"`
}

// ActionEvent is one calendar action event.
type ActionEvent struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	ActivityName string `json:"activityname"`
	ModuleName   string `json:"modulename"`
	EventType    string `json:"eventtype"`
	Description  string `json:"description"`
	TimeSort     int64  `json:"timesort"`
	Overdue      bool   `json:"overdue"`
	URL          string `json:"url"`
	Course       struct {
		ID       int    `json:"id"`
		FullName string `json:"fullname"`
	} `json:"course"`
	Icon struct {
		IconURL string `json:"iconurl"`
	} `json:"icon"`
	Action struct {
		Name string `json:"name"`
		URL  string `json:"url"`
	} `json:"action"`
}

// TimelineEvent maps the wire event to the cached model.
func (e ActionEvent) TimelineEvent() TimelineEvent {
	title := e.ActivityName
	if title == "" {
		title = e.Name
	}
	eventType := e.ModuleName
	if eventType == "" {
		eventType = e.EventType
	}
	actionURL := e.Action.URL
	if actionURL == "" {
		actionURL = e.URL
	}

	return TimelineEvent{
		ID:          e.ID,
		Title:       title,
		Name:        e.Name,
		Type:        eventType,
		Description: e.Description,
		Deadline:    e.TimeSort,
		Overdue:     e.Overdue,
		CourseID:    e.Course.ID,
		CourseName:  e.Course.FullName,
		IconURL:     e.Icon.IconURL,
		ActionName:  e.Action.Name,
		ActionURL:   actionURL,
	}
}

// RecentItemResponse is one element of
// block_recentlyaccesseditems_get_recent_items.
type RecentItemResponse struct {
	ID         int    `json:"id"`
	CourseID   int    `json:"courseid"`
	CMID       int    `json:"cmid"`
	ModName    string `json:"modname"`
	Name       string `json:"name"`
	CourseName string `json:"coursename"`
	TimeAccess int64  `json:"timeaccess"`
	ViewURL    string `json:"viewurl"`
	Icon       string `json:"icon"`
}

// RecentItem maps the wire item to the cached model.
func (r RecentItemResponse) RecentItem() RecentItem {
	return RecentItem{
		ID:             r.ID,
		Type:           r.ModName,
		Name:           r.Name,
		CourseID:       r.CourseID,
		CourseName:     r.CourseName,
		CourseModuleID: r.CMID,
		TimeAccess:     r.TimeAccess,
		ViewURL:        r.ViewURL,
		RawIconHTML:    r.Icon,
	}
}

// EnrolledCoursesResponse is the body of
// core_course_get_enrolled_courses_by_timeline_classification.
type EnrolledCoursesResponse struct {
	Courses    []EnrolledCourse `json:"courses"`
	NextOffset int              `json:"nextoffset"`
}

// EnrolledCourse is one enrolled course.
type EnrolledCourse struct {
	ID             int    `json:"id"`
	FullName       string `json:"fullname"`
	ShortName      string `json:"shortname"`
	CourseCategory string `json:"coursecategory"`
	ViewURL        string `json:"viewurl"`
}

// CourseInfo maps the wire course to the cached model.
func (c EnrolledCourse) CourseInfo() CourseInfo {
	name := c.FullName
	if name == "" {
		name = c.ShortName
	}
	return CourseInfo{
		ID:       c.ID,
		Name:     name,
		Category: c.CourseCategory,
		URL:      c.ViewURL,
	}
}

// CourseGradesResponse is the body of gradereport_overview_get_course_grades.
type CourseGradesResponse struct {
	Grades []CourseGradeItem `json:"grades"`
}

// CourseGradeItem carries only the course id; the name is joined from the
// enrolled course list.
type CourseGradeItem struct {
	CourseID int    `json:"courseid"`
	Grade    string `json:"grade"`
	RawGrade string `json:"rawgrade"`
}

// CourseGrade maps the wire item to the display model. A missing grade
// becomes "-".
func (g CourseGradeItem) CourseGrade(name, siteURL string) CourseGrade {
	grade := strings.TrimSpace(g.Grade)
	if grade == "" {
		grade = "-"
	}
	return CourseGrade{
		CourseID: g.CourseID,
		Name:     name,
		Grade:    grade,
		URL:      siteURL + "/grade/report/user/index.php?id=" + strconv.Itoa(g.CourseID),
	}
}

// CoursesByFieldResponse is the body of core_course_get_courses_by_field.
type CoursesByFieldResponse struct {
	Courses []EnrolledCourse `json:"courses"`
}

// CourseContentSection is one element of core_course_get_contents.
type CourseContentSection struct {
	ID      int                   `json:"id"`
	Name    string                `json:"name"`
	Summary string                `json:"summary"`
	Visible *int                  `json:"visible,omitempty"`
	Modules []CourseContentModule `json:"modules"`
}

// CourseContentModule is one module of a content section.
type CourseContentModule struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	ModName     string `json:"modname"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Visible     *int   `json:"visible,omitempty"`
}

// CourseSection maps the wire section, dropping hidden modules.
func (s CourseContentSection) CourseSection() CourseSection {
	section := CourseSection{ID: s.ID, Name: s.Name, Summary: s.Summary}
	for _, m := range s.Modules {
		if m.Visible != nil && *m.Visible == 0 {
			continue
		}
		section.Modules = append(section.Modules, CourseModule{
			ID:          m.ID,
			Name:        m.Name,
			Type:        m.ModName,
			URL:         m.URL,
			Description: m.Description,
		})
	}
	return section
}
