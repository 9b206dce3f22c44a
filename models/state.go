// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AuthStatus is the tag of [AuthState].
type AuthStatus int

const (
	AuthInitial AuthStatus = iota
	AuthBusy
	AuthAuthed
	AuthUnauthed
)

func (s AuthStatus) String() string {
	switch s {
	case AuthInitial:
		return "initial"
	case AuthBusy:
		return "busy"
	case AuthAuthed:
		return "authed"
	case AuthUnauthed:
		return "unauthed"
	default:
		return "unknown"
	}
}

// AuthState is the session state published by the session service.
// Reason is set only for [AuthUnauthed].
type AuthState struct {
	Status AuthStatus
	Reason string
}

func Initial() AuthState { return AuthState{Status: AuthInitial} }

func Busy() AuthState { return AuthState{Status: AuthBusy} }

func Authed() AuthState { return AuthState{Status: AuthAuthed} }

func Unauthed(reason string) AuthState { return AuthState{Status: AuthUnauthed, Reason: reason} }

// BootstrapRoute tells the composition root which screen to open first.
type BootstrapRoute int

const (
	// RouteLogin shows the login form.
	RouteLogin BootstrapRoute = iota
	// RouteSplash waits for a blocking auto-login.
	RouteSplash
	// RouteMain renders cached data and refreshes in the background.
	RouteMain
)

func (r BootstrapRoute) String() string {
	switch r {
	case RouteLogin:
		return "login"
	case RouteSplash:
		return "splash"
	case RouteMain:
		return "main"
	default:
		return "unknown"
	}
}

// DataStatus is the tag of [DataState].
type DataStatus int

const (
	DataLoading DataStatus = iota
	DataSuccess
	DataError
)

// DataState is a Loading | Success(data) | Error(message) variant for one
// remotely fetched entity stream.
type DataState[T any] struct {
	Status  DataStatus
	Data    T
	Message string
}

func Loading[T any]() DataState[T] {
	return DataState[T]{Status: DataLoading}
}

func Success[T any](data T) DataState[T] {
	return DataState[T]{Status: DataSuccess, Data: data}
}

func Failed[T any](msg string) DataState[T] {
	return DataState[T]{Status: DataError, Message: msg}
}

func (s DataState[T]) IsLoading() bool { return s.Status == DataLoading }

func (s DataState[T]) IsSuccess() bool { return s.Status == DataSuccess }
