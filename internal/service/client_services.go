// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-markdo/internal/adapter"
	"github.com/MKhiriev/go-markdo/internal/config"
	"github.com/MKhiriev/go-markdo/internal/logger"
	"github.com/MKhiriev/go-markdo/internal/store"
)

// ClientServices groups the services the presentation layer drives.
type ClientServices struct {
	SessionService       SessionService
	TextTransformService TextTransformService
	CourseService        CourseService
	RefreshJob           ClientRefreshJob
}

func NewClientServices(storages *store.ClientStorages, remote adapter.MoodleAdapter, cfg *config.ClientConfig, logger *logger.Logger) *ClientServices {
	session := NewSessionService(storages, remote, cfg.Adapter, logger)

	return &ClientServices{
		SessionService:       session,
		TextTransformService: NewTextTransformService(storages.RuleRepository, logger),
		CourseService:        NewCourseService(remote, logger),
		RefreshJob:           NewClientRefreshJob(session, cfg.Workers.RefreshInterval),
	}
}
