// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package toast shows short status messages one at a time.
//
// Messages are queued without bound and never block the caller. A single
// loop started by [Queue.Run] displays each message for its duration, clears
// it, waits for the fade buffer and moves on, so messages appear in the
// order they were shown and never overlap.
package toast

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-markdo/internal/state"
)

// Length selects how long a message stays visible.
type Length int

const (
	Short Length = iota
	Long
)

const (
	DefaultShort = 2000 * time.Millisecond
	DefaultLong  = 3500 * time.Millisecond
	DefaultFade  = 300 * time.Millisecond
)

type message struct {
	text   string
	length Length
}

// Queue is an unbounded FIFO of toast messages.
type Queue struct {
	mu      sync.Mutex
	pending []message
	wake    chan struct{}

	current *state.Value[string]

	short, long, fade time.Duration
}

// Option configures a Queue.
type Option func(*Queue)

// WithDurations overrides the display time of short and long messages.
func WithDurations(short, long time.Duration) Option {
	return func(q *Queue) {
		q.short = short
		q.long = long
	}
}

// NewQueue returns an idle queue. A negative fade is treated as zero.
func NewQueue(fade time.Duration, opts ...Option) *Queue {
	q := &Queue{
		wake:    make(chan struct{}, 1),
		current: state.New(""),
		short:   DefaultShort,
		long:    DefaultLong,
		fade:    max(fade, 0),
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Current is the message on screen, or "" between messages.
func (q *Queue) Current() *state.Value[string] { return q.current }

// Show enqueues text. Blank text is ignored.
func (q *Queue) Show(text string, length Length) {
	if strings.TrimSpace(text) == "" {
		return
	}

	q.mu.Lock()
	q.pending = append(q.pending, message{text: text, length: length})
	q.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
	}
}

// Pending returns the number of queued messages not yet displayed.
func (q *Queue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Run drains the queue until ctx is done. It returns nil on cancellation.
func (q *Queue) Run(ctx context.Context) error {
	defer q.current.Set("")

	for {
		msg, ok := q.pop()
		if !ok {
			select {
			case <-ctx.Done():
				return nil
			case <-q.wake:
				continue
			}
		}

		q.current.Set(msg.text)
		if !sleep(ctx, q.duration(msg.length)) {
			return nil
		}
		q.current.Set("")
		if !sleep(ctx, q.fade) {
			return nil
		}
	}
}

func (q *Queue) pop() (message, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.pending) == 0 {
		return message{}, false
	}
	msg := q.pending[0]
	q.pending[0] = message{}
	q.pending = q.pending[1:]
	return msg, true
}

func (q *Queue) duration(l Length) time.Duration {
	if l == Long {
		return q.long
	}
	return q.short
}

// sleep reports false when ctx ended first.
func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
