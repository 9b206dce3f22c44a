// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package toast

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder collects every value published on Current.
type recorder struct {
	mu     sync.Mutex
	values []string
}

func record(q *Queue) *recorder {
	r := &recorder{}
	q.Current().OnChange(func(v string) {
		r.mu.Lock()
		r.values = append(r.values, v)
		r.mu.Unlock()
	})
	return r
}

func (r *recorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.values...)
}

func startQueue(t *testing.T, q *Queue) func() {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- q.Run(ctx) }()

	return func() {
		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(time.Second):
			t.Fatal("Run did not return after cancel")
		}
	}
}

// ── NewQueue ──────────────────────────────────────────────────────────────────

func TestNewQueue_Defaults(t *testing.T) {
	q := NewQueue(-time.Second)

	assert.Equal(t, DefaultShort, q.duration(Short))
	assert.Equal(t, DefaultLong, q.duration(Long))
	assert.Zero(t, q.fade)
	assert.Empty(t, q.Current().Get())
}

func TestNewQueue_WithDurations(t *testing.T) {
	q := NewQueue(DefaultFade, WithDurations(time.Millisecond, 2*time.Millisecond))

	assert.Equal(t, time.Millisecond, q.duration(Short))
	assert.Equal(t, 2*time.Millisecond, q.duration(Long))
	assert.Equal(t, DefaultFade, q.fade)
}

// ── Show ──────────────────────────────────────────────────────────────────────

func TestShow_NeverBlocksWithoutConsumer(t *testing.T) {
	q := NewQueue(0)

	for range 1000 {
		q.Show("network error", Short)
	}

	assert.Equal(t, 1000, q.Pending())
}

func TestShow_IgnoresBlank(t *testing.T) {
	q := NewQueue(0)

	q.Show("", Short)
	q.Show("  \t", Long)

	assert.Zero(t, q.Pending())
}

// ── Run ───────────────────────────────────────────────────────────────────────

func TestRun_ShowsInOrderWithoutOverlap(t *testing.T) {
	q := NewQueue(2*time.Millisecond, WithDurations(5*time.Millisecond, 10*time.Millisecond))
	rec := record(q)

	q.Show("first", Short)
	q.Show("second", Long)
	q.Show("third", Short)

	stop := startQueue(t, q)
	require.Eventually(t, func() bool { return len(rec.snapshot()) >= 6 }, time.Second, time.Millisecond)
	stop()

	assert.Equal(t, []string{"first", "", "second", "", "third", ""}, rec.snapshot()[:6])
	assert.Zero(t, q.Pending())
}

func TestRun_WakesOnLateShow(t *testing.T) {
	q := NewQueue(0, WithDurations(time.Millisecond, time.Millisecond))
	rec := record(q)
	stop := startQueue(t, q)
	defer stop()

	time.Sleep(10 * time.Millisecond)
	q.Show("late", Short)

	require.Eventually(t, func() bool {
		values := rec.snapshot()
		return len(values) >= 2 && values[0] == "late" && values[1] == ""
	}, time.Second, time.Millisecond)
}

func TestRun_CancelClearsCurrent(t *testing.T) {
	q := NewQueue(0, WithDurations(time.Hour, time.Hour))
	q.Show("sticky", Long)

	stop := startQueue(t, q)
	require.Eventually(t, func() bool { return q.Current().Get() == "sticky" }, time.Second, time.Millisecond)
	stop()

	assert.Empty(t, q.Current().Get())
}

func TestRun_ReturnsWhenIdle(t *testing.T) {
	q := NewQueue(0)
	stop := startQueue(t, q)
	stop()
}
