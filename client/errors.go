package client

import (
	"errors"

	"github.com/sohail9972/Trip-planner-EaseMyTrip/client/internal/errs"
)

// Error-kind predicates re-exported so SDK consumers can branch on failure
// class without importing internal packages.

// IsUnauthorized reports that the remote rejected the credential. The SDK
// has already torn down the session by the time this is observed.
func IsUnauthorized(err error) bool { return errs.IsUnauthorized(err) }

// IsValidation reports a local precondition failure or a remote 4xx.
func IsValidation(err error) bool { return errs.IsValidation(err) }

// IsServer reports a remote 5xx.
func IsServer(err error) bool { return errs.IsServer(err) }

// IsUnreachable reports that the remote could not be contacted at all.
func IsUnreachable(err error) bool { return errs.IsUnreachable(err) }

// IsDecode reports that a credential could not be decoded into claims.
func IsDecode(err error) bool { return errs.IsDecode(err) }

// ErrorMessage extracts the user-facing text for err: the server-provided
// detail when one exists, otherwise fallback.
func ErrorMessage(err error, fallback string) string {
	var ce *errs.Error
	if errors.As(err, &ce) {
		return ce.Message(fallback)
	}
	return fallback
}
