// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-markdo/internal/service"
	"github.com/MKhiriev/go-markdo/internal/state"
	"github.com/MKhiriev/go-markdo/internal/toast"
	"github.com/MKhiriev/go-markdo/models"
)

// update carries one value of a subscription together with the command that
// waits for the next value.
type update[T any] struct {
	value T
	next  tea.Cmd
}

func (u update[T]) continuation() tea.Cmd { return u.next }

type continued interface {
	continuation() tea.Cmd
}

// watch turns a subscription channel into a chain of commands. The chain ends
// when the channel is closed.
func watch[T any](ch <-chan T) tea.Cmd {
	return func() tea.Msg {
		v, ok := <-ch
		if !ok {
			return nil
		}
		return update[T]{value: v, next: watch(ch)}
	}
}

type subscriptions struct {
	cmds    []tea.Cmd
	cancels []func()
}

func subscribe[T any](s *subscriptions, v *state.Value[T]) {
	ch, cancel := v.Subscribe()
	s.cmds = append(s.cmds, watch(ch))
	s.cancels = append(s.cancels, cancel)
}

func newSubscriptions(session service.SessionService, transform service.TextTransformService, toasts *toast.Queue) *subscriptions {
	s := &subscriptions{}
	subscribe(s, session.AuthState())
	subscribe(s, session.UserProfile())
	subscribe(s, session.Timeline())
	subscribe(s, session.RecentItems())
	subscribe(s, session.Courses())
	subscribe(s, session.RememberedAccounts())
	subscribe(s, transform.RulesState())
	subscribe(s, transform.EnabledState())
	subscribe(s, toasts.Current())
	return s
}

func (s *subscriptions) watchers() []tea.Cmd { return s.cmds }

func (s *subscriptions) cancel() {
	for _, c := range s.cancels {
		c()
	}
}

// authUpdate is the auth stream message type.
type authUpdate = update[models.AuthState]

// toastUpdate is the toast stream message type.
type toastUpdate = update[string]
