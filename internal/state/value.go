// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package state provides an observable value that replays its latest value
// to every new subscriber.
//
// Subscribers receive values on a buffered channel of capacity one. A slow
// subscriber only ever sees the most recent value; intermediate values are
// dropped. Observers registered with OnChange are called synchronously by
// the goroutine that calls Set, in registration order. Concurrent Set calls
// may reach observers in any order.
package state

import "sync"

// Value holds a value of type T and notifies subscribers on change.
// The zero Value is not usable; construct one with New.
type Value[T any] struct {
	mu        sync.Mutex
	v         T
	nextID    int
	subs      map[int]chan T
	observers []observer[T]
}

type observer[T any] struct {
	id int
	fn func(T)
}

// New returns a Value initialized to initial.
func New[T any](initial T) *Value[T] {
	return &Value[T]{
		v:         initial,
		subs: make(map[int]chan T),
	}
}

// Get returns the current value.
func (s *Value[T]) Get() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v
}

// Set stores v and publishes it.
func (s *Value[T]) Set(v T) {
	s.mu.Lock()
	s.v = v
	s.publishLocked(v)
	observers := s.snapshotObservers()
	s.mu.Unlock()

	for _, fn := range observers {
		fn(v)
	}
}

// Update applies fn to the current value under the lock. The result is
// stored and published only when fn reports a change.
func (s *Value[T]) Update(fn func(T) (T, bool)) T {
	s.mu.Lock()
	next, changed := fn(s.v)
	if !changed {
		cur := s.v
		s.mu.Unlock()
		return cur
	}
	s.v = next
	s.publishLocked(next)
	observers := s.snapshotObservers()
	s.mu.Unlock()

	for _, o := range observers {
		o(next)
	}
	return next
}

// Subscribe returns a channel that immediately holds the current value and
// then receives every later value, conflated. The cancel func closes the
// channel and must be called once the subscriber is done.
func (s *Value[T]) Subscribe() (<-chan T, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++

	ch := make(chan T, 1)
	ch <- s.v
	s.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.subs, id)
			close(ch)
		})
	}
}

// OnChange registers fn to be called with every value stored after this call.
// fn runs on the goroutine that calls Set and must not call Set on the same
// Value. The returned func removes the observer.
func (s *Value[T]) OnChange(fn func(T)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.observers = append(s.observers, observer[T]{id: id, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, o := range s.observers {
			if o.id == id {
				s.observers = append(s.observers[:i:i], s.observers[i+1:]...)
				return
			}
		}
	}
}

func (s *Value[T]) publishLocked(v T) {
	for _, ch := range s.subs {
		// drop the stale value, keep the latest
		select {
		case <-ch:
		default:
		}
		ch <- v
	}
}

func (s *Value[T]) snapshotObservers() []func(T) {
	if len(s.observers) == 0 {
		return nil
	}
	out := make([]func(T), 0, len(s.observers))
	for _, o := range s.observers {
		out = append(out, o.fn)
	}
	return out
}
