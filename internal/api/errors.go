package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Error is a non-2xx reply from the backend. The body is kept verbatim:
// the backend reports duplicate-field conflicts as plain text, and the
// login endpoint returns its failure reason the same way.
type Error struct {
	Status int
	Body   string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("backend returned HTTP %d", e.Status)
	}
	return fmt.Sprintf("backend returned HTTP %d: %s", e.Status, e.Body)
}

// asError extracts an *Error from an error chain.
func asError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsConflict reports whether err is an HTTP 409 duplicate-data reply.
func IsConflict(err error) bool {
	apiErr, ok := asError(err)
	return ok && apiErr.Status == http.StatusConflict
}

// IsNotFound reports whether err is an HTTP 404 reply.
func IsNotFound(err error) bool {
	apiErr, ok := asError(err)
	return ok && apiErr.Status == http.StatusNotFound
}

// IsServerError reports whether err is an HTTP 5xx reply.
func IsServerError(err error) bool {
	apiErr, ok := asError(err)
	return ok && apiErr.Status >= 500
}

// Message returns the backend-provided text of err when present, or the
// fallback for network failures and empty bodies. Views use it for banner
// text.
func Message(err error, fallback string) string {
	if apiErr, ok := asError(err); ok && apiErr.Body != "" {
		return apiErr.Body
	}
	return fallback
}

// ConflictField maps a 409 reply onto the form field it concerns by
// substring-matching the body: "email", "nickname", or "" for a generic
// duplicate. The text matching is the backend's current contract; keeping
// it in one place lets a structured error code replace it later.
func ConflictField(err error) string {
	apiErr, ok := asError(err)
	if !ok || apiErr.Status != http.StatusConflict {
		return ""
	}

	body := strings.ToLower(apiErr.Body)
	switch {
	case strings.Contains(body, "email"):
		return "email"
	case strings.Contains(body, "nickname"):
		return "nickname"
	default:
		return ""
	}
}
