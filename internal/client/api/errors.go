package api

import (
	"errors"
	"fmt"
)

// Kind classifies a failed API call. State containers and commands branch
// on this tag; the classification itself happens only in this package.
type Kind int

const (
	// KindNetwork: the request never produced an HTTP response
	// (connection refused, timeout, canceled context).
	KindNetwork Kind = iota

	// KindUnauthorized: the credential is missing, invalid or expired.
	// The session must be terminated.
	KindUnauthorized

	// KindForbidden: authenticated, but the requested resource is not
	// provisioned. For wallet endpoints this means "no wallet yet" and is
	// not a failure.
	KindForbidden

	// KindValidation: the backend rejected the submitted input.
	KindValidation

	// KindServer: any other backend failure.
	KindServer
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindValidation:
		return "validation"
	default:
		return "server"
	}
}

// Error is the structured failure returned by every Client method.
// Status is the HTTP status code, 0 for transport-level failures.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.cause != nil {
		return fmt.Sprintf("%s error: %v", e.Kind, e.cause)
	}
	return fmt.Sprintf("%s error (status %d)", e.Kind, e.Status)
}

func (e *Error) Unwrap() error { return e.cause }

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == kind
}

// IsUnauthorized reports an invalid/expired credential failure.
func IsUnauthorized(err error) bool { return IsKind(err, KindUnauthorized) }

// IsForbidden reports a resource-not-provisioned failure.
func IsForbidden(err error) bool { return IsKind(err, KindForbidden) }

// IsValidation reports a rejected-input failure.
func IsValidation(err error) bool { return IsKind(err, KindValidation) }

// Message extracts a human-readable message from err, falling back to the
// provided default when the failure carries none.
func Message(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	if err != nil && err.Error() != "" {
		return err.Error()
	}
	return fallback
}
