// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the client's background loops side by side.
package workers

import "context"

// Worker is a background loop. Run blocks until ctx is done or the worker
// fails, and returns nil on a clean shutdown.
//
// Example implementation:
//
//	type ticker struct{}
//
//	func (ticker) Run(ctx context.Context) error {
//	    <-ctx.Done()
//	    return nil
//	}
type Worker interface {
	Run(ctx context.Context) error
}
