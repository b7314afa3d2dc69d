package errs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// detailBody matches the error payload shape used by the backend.
type detailBody struct {
	Detail string `json:"detail"`
}

// FromResponse classifies a non-2xx HTTP response. The body is probed for a
// {"detail": ...} payload so the server's own message can be surfaced.
func FromResponse(op string, statusCode int, body []byte) *Error {
	var db detailBody
	_ = json.Unmarshal(body, &db)

	kind := KindValidation
	switch {
	case statusCode == http.StatusUnauthorized:
		kind = KindUnauthorized
	case statusCode >= 500:
		kind = KindServer
	}
	return &Error{
		Kind:       kind,
		Op:         op,
		StatusCode: statusCode,
		Detail:     db.Detail,
		Err:        fmt.Errorf("%s failed: HTTP %d", op, statusCode),
	}
}

// FromTransport classifies a failure to contact the remote at all. A
// caller-initiated cancellation is passed through untouched so it is never
// mistaken for service unavailability.
func FromTransport(op string, err error) error {
	if errors.Is(err, context.Canceled) {
		return err
	}
	return &Error{Kind: KindUnreachable, Op: op, Err: err}
}

// Validation builds a local precondition failure with no network involvement.
func Validation(op string, err error) *Error {
	return &Error{Kind: KindValidation, Op: op, Detail: err.Error(), Err: err}
}

// Decode builds a credential decoding failure.
func Decode(op string, err error) *Error {
	return &Error{Kind: KindDecode, Op: op, Err: err}
}
