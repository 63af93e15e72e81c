package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrBadAuth is returned for a missing or invalid credential, a bad
	// password, or a disabled/expired user.
	ErrBadAuth = errors.New("auth failure")
	// ErrBadScopes is returned when a requested scope is not owned or not active.
	ErrBadScopes = errors.New("bad scopes")
	// ErrExpired is returned when a resolved token is past its expiration.
	ErrExpired = errors.New("expired")
	// ErrFailed is returned for any internal store, cache, or unexpected
	// error. Deliberately generic so responses never leak internal detail.
	ErrFailed = errors.New("failed")
	// ErrNotFound is returned by credential stores when no row matches.
	ErrNotFound = errors.New("not found")
)

// Response is the wire envelope shared by success and error results.
type Response struct {
	Status string      `json:"status"`
	Result interface{} `json:"result"`
}

// OK wraps a successful payload in the response envelope.
func OK(result interface{}) Response {
	return Response{Status: "ok", Result: result}
}

// MapError converts a service error into an HTTP status and error envelope.
// Internal errors intentionally answer 200 with a generic result; only the
// authorization kinds answer 401 so clients can tell "re-authenticate" apart
// from "retry won't help".
func MapError(err error) (int, Response) {
	switch err {
	case ErrBadAuth, ErrBadScopes, ErrExpired:
		return http.StatusUnauthorized, Response{Status: "error", Result: err.Error()}
	default:
		return http.StatusOK, Response{Status: "error", Result: ErrFailed.Error()}
	}
}
