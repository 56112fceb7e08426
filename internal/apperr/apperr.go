package apperr

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned across a service boundary should match one of
// these with errors.Is, or it is treated as internal.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("not found")
	ErrQuotaExceeded   = errors.New("quota exceeded")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrConflict        = errors.New("conflict")
)

// Error is a user-facing message tagged with one of the kinds above.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func New(kind error, message string) error {
	return &Error{Kind: kind, Message: message}
}

func Newf(kind error, format string, args ...any) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Kind reports which kind err belongs to, or nil for internal errors.
func Kind(err error) error {
	for _, kind := range []error{ErrInvalidArgument, ErrNotFound, ErrQuotaExceeded, ErrUnauthenticated, ErrConflict} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}

// Message returns the safe message for err. Internal errors get a generic text so
// driver or provider details never reach the client.
func Message(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	if kind := Kind(err); kind != nil {
		return kind.Error()
	}
	return "internal server error"
}
