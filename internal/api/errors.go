package api

import (
	"errors"
	"net/http"
)

// MsgNoScreening is the documented not-found message getScreeningStatuses
// returns for a job with no screening yet. Callers treat it as the normal
// "not started" case, not a fault.
const MsgNoScreening = "No screening exists for this job"

// Error is the uniform failure shape every gateway method returns for a
// server-side rejection.
type Error struct {
	Status  int
	Code    string
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return http.StatusText(e.Status)
}

// IsNotFound reports whether err is a server 404.
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// IsNoScreening reports whether err is the expected "no screening yet"
// rejection from getScreeningStatuses.
func IsNoScreening(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Message == MsgNoScreening
}

// IsUnauthorized reports whether err is a server 401, meaning the stored
// session token is missing or stale.
func IsUnauthorized(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}
