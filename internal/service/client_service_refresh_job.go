// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-markdo/internal/logger"
	"github.com/MKhiriev/go-markdo/models"
)

const defaultRefreshInterval = 10 * time.Minute

type clientRefreshJob struct {
	session  SessionService
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientRefreshJob creates a clientRefreshJob that calls
// session.RefreshAll on a ticker while the session is Authed. The job is idle
// until Start or Run is called.
func NewClientRefreshJob(session SessionService, interval time.Duration) ClientRefreshJob {
	return &clientRefreshJob{session: session, interval: interval}
}

// Start implements ClientRefreshJob. Ticks that find the session in any
// state other than Authed are skipped.
func (j *clientRefreshJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultRefreshInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if j.session.AuthState().Get().Status != models.AuthAuthed {
					continue
				}
				if err := j.session.RefreshAll(jobCtx); err != nil {
					logger.FromContext(jobCtx).Warn().Err(err).Str("func", "clientRefreshJob").Msg("periodic refresh incomplete")
				}
			}
		}
	}()
}

// Stop implements ClientRefreshJob. Safe to call when the job is not
// running.
func (j *clientRefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

// Run implements ClientRefreshJob with the interval given at construction.
func (j *clientRefreshJob) Run(ctx context.Context) error {
	j.Start(ctx, j.interval)
	<-ctx.Done()
	j.Stop()
	return nil
}
