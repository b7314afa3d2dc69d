// Package errs provides the error taxonomy shared by every SDK operation.
// Each failure is classified so callers can branch on kind without parsing
// messages: only Unauthorized has a cross-component side effect, and only
// Unreachable may trigger degraded-mode planning.
package errs

import (
	"errors"
	"fmt"
)

// Kind partitions operation failures.
type Kind int

const (
	// KindUnauthorized means the remote rejected the credential (401).
	KindUnauthorized Kind = iota

	// KindValidation means a local precondition failed or the remote
	// returned a 4xx with a message payload. Not retried.
	KindValidation

	// KindServer means the remote returned a 5xx. Not retried.
	KindServer

	// KindUnreachable means the remote could not be contacted at all,
	// as opposed to returning an error status.
	KindUnreachable

	// KindDecode means a credential could not be decoded into valid
	// claims. Treated identically to verification failure.
	KindDecode
)

// String returns a human-readable representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindUnauthorized:
		return "unauthorized"
	case KindValidation:
		return "validation"
	case KindServer:
		return "server"
	case KindUnreachable:
		return "unreachable"
	case KindDecode:
		return "decode"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// Error wraps an operation failure with its classification, the HTTP status
// (0 for non-HTTP failures), and the server-provided detail message if any.
type Error struct {
	Kind       Kind
	Op         string
	StatusCode int
	Detail     string
	Err        error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.StatusCode > 0 && e.Detail != "":
		return fmt.Sprintf("%s: [%s] HTTP %d: %s", e.Op, e.Kind, e.StatusCode, e.Detail)
	case e.StatusCode > 0:
		return fmt.Sprintf("%s: [%s] HTTP %d", e.Op, e.Kind, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("%s: [%s] %v", e.Op, e.Kind, e.Err)
	default:
		return fmt.Sprintf("%s: [%s] %s", e.Op, e.Kind, e.Detail)
	}
}

// Unwrap returns the underlying error for error chain compatibility.
func (e *Error) Unwrap() error { return e.Err }

// Message returns the user-facing text for this failure: the server detail
// when present, otherwise the supplied fallback.
func (e *Error) Message(fallback string) string {
	if e.Detail != "" {
		return e.Detail
	}
	return fallback
}

// IsKind reports whether err is a classified error of kind k.
func IsKind(err error, k Kind) bool {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind == k
	}
	return false
}

// IsUnauthorized reports a rejected credential.
func IsUnauthorized(err error) bool { return IsKind(err, KindUnauthorized) }

// IsValidation reports a precondition or 4xx failure.
func IsValidation(err error) bool { return IsKind(err, KindValidation) }

// IsServer reports a remote 5xx failure.
func IsServer(err error) bool { return IsKind(err, KindServer) }

// IsUnreachable reports that the remote could not be contacted.
func IsUnreachable(err error) bool { return IsKind(err, KindUnreachable) }

// IsDecode reports an undecodable credential.
func IsDecode(err error) bool { return IsKind(err, KindDecode) }
