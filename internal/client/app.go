// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-markdo/internal/adapter"
	"github.com/MKhiriev/go-markdo/internal/config"
	"github.com/MKhiriev/go-markdo/internal/crypto"
	"github.com/MKhiriev/go-markdo/internal/logger"
	"github.com/MKhiriev/go-markdo/internal/service"
	"github.com/MKhiriev/go-markdo/internal/store"
	"github.com/MKhiriev/go-markdo/internal/toast"
	"github.com/MKhiriev/go-markdo/internal/tui"
	"github.com/MKhiriev/go-markdo/internal/workers"
	"github.com/MKhiriev/go-markdo/models"
)

// App owns every long-lived component of one client process.
type App struct {
	storages *store.ClientStorages
	services *service.ClientServices
	toasts   *toast.Queue
	ui       *tui.TUI
	logger   *logger.Logger
}

// NewApp opens local storage and wires the Moodle adapter, services and
// terminal UI. The caller must Close the returned App.
func NewApp(ctx context.Context, cfg *config.ClientConfig, info models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	sealer, err := crypto.NewCredentialSealer(cfg.App.AccountSecret)
	if err != nil {
		return nil, fmt.Errorf("create credential sealer: %w", err)
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, sealer, logger)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	remote := adapter.NewMoodleHTTPAdapter(cfg.Adapter, logger)
	services := service.NewClientServices(storages, remote, cfg, logger)
	toasts := toast.NewQueue(cfg.Workers.ToastFade)

	ui, err := tui.New(services, toasts, info, logger)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create ui: %w", err)
	}

	return &App{
		storages: storages,
		services: services,
		toasts:   toasts,
		ui:       ui,
		logger:   logger,
	}, nil
}

// Services exposes the session and rule services to non-interactive
// commands.
func (a *App) Services() *service.ClientServices { return a.services }

// Run restores the last session, starts the background refresh and toast
// workers and blocks in the UI until the user quits or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	route := a.services.SessionService.Bootstrap(ctx)
	a.logger.Info().Str("func", "App.Run").Str("route", route.String()).Msg("session restored")

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	bg := workers.NewWorkers(a.services.RefreshJob, a.toasts)
	done := make(chan error, 1)
	go func() { done <- bg.Run(runCtx) }()

	uiErr := a.ui.Run(runCtx, route)
	cancel()
	bgErr := <-done

	if uiErr != nil {
		return fmt.Errorf("ui: %w", uiErr)
	}
	if bgErr != nil && !errors.Is(bgErr, context.Canceled) {
		return fmt.Errorf("background workers: %w", bgErr)
	}
	return nil
}

// Close releases the local database.
func (a *App) Close() error {
	if err := a.storages.Close(); err != nil {
		a.logger.Err(err).Str("func", "App.Close").Msg("error closing local storage")
		return err
	}
	return nil
}
