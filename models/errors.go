package models

import "fmt"

// Typed workflow errors. Handlers pick the HTTP behavior (redirect, 4xx,
// flash notice) from the error type instead of letting lower layers unwind.

// ErrorUnauthorized means the session names no known user.
type ErrorUnauthorized struct {
	Message string
}

func (e ErrorUnauthorized) Error() string {
	return e.Message
}

// ErrorNotFound means a lookup by a unique field matched no record.
type ErrorNotFound struct {
	Message string
}

func (e ErrorNotFound) Error() string {
	return e.Message
}

// ErrorBadRequest means the client submitted a payload the workflow cannot
// decode, e.g. editor content that is not JSON or lacks the content key.
type ErrorBadRequest struct {
	Message string
}

func (e ErrorBadRequest) Error() string {
	return e.Message
}

// ErrorRemoteWrite means the gist API refused or failed the write. Status is
// the upstream HTTP status, or 0 when the request never got a response. The
// caller may retry; no local state was committed.
type ErrorRemoteWrite struct {
	Status int
}

func (e ErrorRemoteWrite) Error() string {
	return fmt.Sprintf("remote gist write failed with status %d", e.Status)
}

// ErrorInternalServer wraps unexpected lower-level failures.
type ErrorInternalServer struct {
	Message string
}

func (e ErrorInternalServer) Error() string {
	return e.Message
}
