// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-markdo/internal/config"
	"github.com/MKhiriev/go-markdo/internal/logger"
	"github.com/MKhiriev/go-markdo/internal/utils"
	"github.com/MKhiriev/go-markdo/models"
)

// Moodle endpoints relative to the site root.
const (
	tokenPath      = "/login/token.php"
	webServicePath = "/webservice/rest/server.php"
)

// Web-service functions used by the client.
const (
	wsGetSiteInfo      = "core_webservice_get_site_info"
	wsGetActionEvents  = "core_calendar_get_action_events_by_timesort"
	wsGetRecentItems   = "block_recentlyaccesseditems_get_recent_items"
	wsGetCoursesByTime = "core_course_get_enrolled_courses_by_timeline_classification"
	wsGetCourseGrades  = "gradereport_overview_get_course_grades"
	wsGetCourseByField = "core_course_get_courses_by_field"
	wsGetCourseContent = "core_course_get_contents"
)

const (
	// timelineLookback keeps recently overdue events on the timeline.
	timelineLookback = 14 * 24 * time.Hour
	timelineLimit    = 50
	recentItemsLimit = 20
)

type moodleHTTPAdapter struct {
	client  *utils.HTTPClient
	scheme  string
	service string

	mu      sync.RWMutex
	siteURL string
	token   string

	now    func() time.Time
	logger *logger.Logger
}

// NewMoodleHTTPAdapter constructs the resty implementation of
// [MoodleAdapter]. The scheme and service come from cfg; the site is chosen
// at Login time.
func NewMoodleHTTPAdapter(cfg config.ClientAdapter, logger *logger.Logger) MoodleAdapter {
	scheme := strings.TrimSpace(cfg.Scheme)
	if scheme == "" {
		scheme = "https"
	}

	return &moodleHTTPAdapter{
		client:  utils.NewHTTPClient(cfg.RequestTimeout, cfg.RetryCount),
		scheme:  scheme,
		service: cfg.Service,
		now:     time.Now,
		logger:  logger,
	}
}

// siteBaseURL builds "scheme://host[/path]" from a user-entered site.
func siteBaseURL(scheme, site string) (string, error) {
	normalized := models.NormalizeSite(site)
	if normalized == "" {
		return "", fmt.Errorf("%w: empty site", ErrInvalidSite)
	}

	u, err := url.Parse(scheme + "://" + normalized)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidSite, err)
	}
	if u.Host == "" {
		return "", fmt.Errorf("%w: missing host", ErrInvalidSite)
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Login implements [MoodleAdapter]. It POSTs the credentials to
// login/token.php and keeps the issued token for later calls. A failed login
// leaves the previous session untouched.
func (m *moodleHTTPAdapter) Login(ctx context.Context, site, username, password string) error {
	log := logger.FromContext(ctx)

	baseURL, err := siteBaseURL(m.scheme, site)
	if err != nil {
		return err
	}

	resp, err := m.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"username": username,
			"password": password,
			"service":  m.service,
		}).
		Post(baseURL + tokenPath)
	if err != nil {
		log.Err(err).Str("func", "moodleHTTPAdapter.Login").Str("site", baseURL).Msg("token request failed")
		return fmt.Errorf("%w: %w", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}
	if err = mapMoodleError(resp.Body()); err != nil {
		return err
	}

	var tokenResp models.TokenResponse
	if err = json.Unmarshal(resp.Body(), &tokenResp); err != nil {
		return fmt.Errorf("%w: decode token response: %w", ErrUnexpectedResponse, err)
	}
	if tokenResp.Token == "" {
		return fmt.Errorf("%w: empty token", ErrUnexpectedResponse)
	}

	m.mu.Lock()
	m.siteURL = baseURL
	m.token = tokenResp.Token
	m.mu.Unlock()

	log.Debug().Str("func", "moodleHTTPAdapter.Login").Str("site", baseURL).Msg("session opened")
	return nil
}

// ClearSession implements [MoodleAdapter].
func (m *moodleHTTPAdapter) ClearSession() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.siteURL = ""
	m.token = ""
}

func (m *moodleHTTPAdapter) session() (string, string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.token == "" {
		return "", "", ErrNoSession
	}
	return m.siteURL, m.token, nil
}

// call invokes one web-service function and decodes the JSON result into
// out.
func (m *moodleHTTPAdapter) call(ctx context.Context, function string, params map[string]string, out any) error {
	log := logger.FromContext(ctx)

	siteURL, token, err := m.session()
	if err != nil {
		return err
	}

	form := map[string]string{
		"wstoken":            token,
		"wsfunction":         function,
		"moodlewsrestformat": "json",
	}
	for k, v := range params {
		form[k] = v
	}

	resp, err := m.client.R().
		SetContext(ctx).
		SetQueryParam("wsfunction", function).
		SetFormData(form).
		Post(siteURL + webServicePath)
	if err != nil {
		log.Err(err).Str("func", "moodleHTTPAdapter.call").Str("wsfunction", function).Msg("web service request failed")
		return fmt.Errorf("%w: %w", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}
	if err = mapMoodleError(resp.Body()); err != nil {
		log.Warn().Err(err).Str("func", "moodleHTTPAdapter.call").Str("wsfunction", function).Msg("web service returned an error")
		return err
	}

	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("%w: decode %s: %w", ErrUnexpectedResponse, function, err)
	}
	return nil
}

func (m *moodleHTTPAdapter) GetUserProfile(ctx context.Context) (models.UserProfile, error) {
	var info models.SiteInfoResponse
	if err := m.call(ctx, wsGetSiteInfo, nil, &info); err != nil {
		return models.UserProfile{}, err
	}
	return info.Profile(), nil
}

func (m *moodleHTTPAdapter) GetTimeline(ctx context.Context) ([]models.TimelineEvent, error) {
	params := map[string]string{
		"timesortfrom": strconv.FormatInt(m.now().Add(-timelineLookback).Unix(), 10),
		"limitnum":     strconv.Itoa(timelineLimit),
	}

	var resp models.ActionEventsResponse
	if err := m.call(ctx, wsGetActionEvents, params, &resp); err != nil {
		return nil, err
	}

	events := make([]models.TimelineEvent, 0, len(resp.Events))
	for _, e := range resp.Events {
		events = append(events, e.TimelineEvent())
	}
	return events, nil
}

func (m *moodleHTTPAdapter) GetRecentItems(ctx context.Context) ([]models.RecentItem, error) {
	params := map[string]string{"limit": strconv.Itoa(recentItemsLimit)}

	var resp []models.RecentItemResponse
	if err := m.call(ctx, wsGetRecentItems, params, &resp); err != nil {
		return nil, err
	}

	items := make([]models.RecentItem, 0, len(resp))
	for _, it := range resp {
		items = append(items, it.RecentItem())
	}
	return items, nil
}

func (m *moodleHTTPAdapter) GetCourses(ctx context.Context) ([]models.CourseInfo, error) {
	params := map[string]string{"classification": "all"}

	var resp models.EnrolledCoursesResponse
	if err := m.call(ctx, wsGetCoursesByTime, params, &resp); err != nil {
		return nil, err
	}

	courses := make([]models.CourseInfo, 0, len(resp.Courses))
	for _, c := range resp.Courses {
		courses = append(courses, c.CourseInfo())
	}
	return courses, nil
}


// GetGrades implements [MoodleAdapter]. The overview only carries course
// ids, so the enrolled course list is fetched alongside for the names.
func (m *moodleHTTPAdapter) GetGrades(ctx context.Context) ([]models.CourseGrade, error) {
	siteURL, _, err := m.session()
	if err != nil {
		return nil, err
	}

	var (
		resp    models.CourseGradesResponse
		courses []models.CourseInfo
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return m.call(gctx, wsGetCourseGrades, nil, &resp)
	})
	g.Go(func() error {
		var err error
		courses, err = m.GetCourses(gctx)
		return err
	})
	if err = g.Wait(); err != nil {
		return nil, err
	}

	names := make(map[int]string, len(courses))
	for _, c := range courses {
		names[c.ID] = c.Name
	}

	grades := make([]models.CourseGrade, 0, len(resp.Grades))
	for _, item := range resp.Grades {
		name, ok := names[item.CourseID]
		if !ok {
			name = "course " + strconv.Itoa(item.CourseID)
		}
		grades = append(grades, item.CourseGrade(name, siteURL))
	}
	return grades, nil
}

// GetCourse implements [MoodleAdapter]. Hidden sections and modules are
// left out.
func (m *moodleHTTPAdapter) GetCourse(ctx context.Context, courseID int) (models.Course, error) {
	id := strconv.Itoa(courseID)

	var (
		byField  models.CoursesByFieldResponse
		sections []models.CourseContentSection
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return m.call(gctx, wsGetCourseByField, map[string]string{"field": "id", "value": id}, &byField)
	})
	g.Go(func() error {
		return m.call(gctx, wsGetCourseContent, map[string]string{"courseid": id}, &sections)
	})
	if err := g.Wait(); err != nil {
		return models.Course{}, err
	}
	if len(byField.Courses) == 0 {
		return models.Course{}, fmt.Errorf("%w: course %d not found", ErrWebService, courseID)
	}

	course := models.Course{
		ID:   courseID,
		Name: byField.Courses[0].CourseInfo().Name,
	}
	for _, s := range sections {
		if s.Visible != nil && *s.Visible == 0 {
			continue
		}
		course.Sections = append(course.Sections, s.CourseSection())
	}
	return course, nil
}
