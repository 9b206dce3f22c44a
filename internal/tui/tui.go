// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal front end. It renders the session and rule
// streams and turns key presses into service calls.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-markdo/internal/logger"
	"github.com/MKhiriev/go-markdo/internal/service"
	"github.com/MKhiriev/go-markdo/internal/toast"
	"github.com/MKhiriev/go-markdo/models"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	session   service.SessionService
	transform service.TextTransformService
	courses   service.CourseService
	toasts    *toast.Queue
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, toasts *toast.Queue, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil || toasts == nil {
		return nil, errors.New("tui: services and toast queue are required")
	}
	return &TUI{
		session:   services.SessionService,
		transform: services.TextTransformService,
		courses:   services.CourseService,
		toasts:    toasts,
		buildInfo: buildInfo,
		logger:    logger,
	}, nil
}

// Run opens the screen selected by route and blocks until the user quits.
// Subscriptions are released when it returns.
func (t *TUI) Run(ctx context.Context, route models.BootstrapRoute) error {
	subs := newSubscriptions(t.session, t.transform, t.toasts)
	defer subs.cancel()

	root := t.newRoot(ctx, route, subs.watchers())
	final, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}

	result, ok := final.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		t.logger.Debug().Str("func", "TUI.Run").Msg("user quit")
	}
	return nil
}

func (t *TUI) newRoot(ctx context.Context, route models.BootstrapRoute, watchers []tea.Cmd) RootModel {
	pages := map[string]tea.Model{
		pageSplash:   NewSplashModel(),
		pageLogin:    NewLoginModel(ctx, t.session),
		pageMain:     NewMainModel(ctx, t.session, t.transform),
		pageAccounts: NewAccountsModel(ctx, t.session),
		pageRules:    NewRulesModel(ctx, t.transform),
		pageRuleForm: NewRuleFormModel(ctx, t.transform),
		pageGrades:   NewGradesModel(ctx, t.courses, t.transform),
		pageCourse:   NewCourseModel(ctx, t.courses, t.transform),
	}

	start := pageLogin
	var startup []tea.Cmd
	switch route {
	case models.RouteMain:
		start = pageMain
		startup = append(startup, cmdAutoLogin(ctx, t.session, true))
	case models.RouteSplash:
		start = pageSplash
		startup = append(startup, cmdAutoLogin(ctx, t.session, false))
	}

	return NewRootModel(pages, start, t.toasts, t.buildInfo, append(watchers, startup...)...)
}
