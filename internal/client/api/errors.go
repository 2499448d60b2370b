package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable means the server could not be reached at all.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized means the server rejected the presented token
	// or credentials.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrAuthRequired means no token is present locally. It is raised by
	// the service layer before any network call is made.
	ErrAuthRequired = errors.New("no access token available")
)

// Kind classifies an API failure in a machine-checkable way.
type Kind string

const (
	KindNetwork      Kind = "network"
	KindUnauthorized Kind = "unauthorized"
	KindNotFound     Kind = "not_found"
	KindValidation   Kind = "validation"
	KindServer       Kind = "server"
)

// APIError is the structured failure produced at the transport boundary.
// Detail carries the server's human-readable message (the FastAPI "detail"
// field) when one was present in the response body.
type APIError struct {
	Kind   Kind
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api error (%s): %s", e.Kind, e.Detail)
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%s): status %d", e.Kind, e.Status)
	}
	return fmt.Sprintf("api error (%s)", e.Kind)
}

// Is maps error kinds onto the package sentinels so call sites can use
// errors.Is without inspecting the struct.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Kind == KindUnauthorized
	case ErrUnavailable:
		return e.Kind == KindNetwork
	}
	return false
}

func kindForStatus(status int) Kind {
	switch {
	case status == 401 || status == 403:
		return KindUnauthorized
	case status == 404:
		return KindNotFound
	case status == 400 || status == 422:
		return KindValidation
	default:
		return KindServer
	}
}
