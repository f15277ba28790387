package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a domain failure. Both kinds are terminal for a request:
// nothing is retried, the error is surfaced to the caller unchanged.
type Kind int

const (
	KindUnknown Kind = iota
	KindInvalidData
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindInvalidData:
		return "invalid_data"
	case KindNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// Error is the typed failure returned by validators and entity services.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is matches any *Error of the same kind when the target carries no message,
// so errors.Is(err, ErrNotFound) works for every NotFound.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Message == "" {
		return t.Kind == e.Kind
	}
	return t.Kind == e.Kind && t.Message == e.Message
}

// Sentinel kinds for errors.Is
var (
	ErrInvalidData = &Error{Kind: KindInvalidData}
	ErrNotFound    = &Error{Kind: KindNotFound}
)

// InvalidData reports an input that failed a field or reference rule.
func InvalidData(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidData, Message: fmt.Sprintf(format, args...)}
}

// NotFound reports an id that does not name a stored entity.
func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// EntityNotFound builds the canonical "<Kind> with id <id> not found" message.
func EntityNotFound(kind string, id int64) *Error {
	return NotFound("%s with id %d not found", kind, id)
}

// KindOf unwraps err and returns its kind, KindUnknown for infrastructure errors.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnknown
}

// ToErrorCode converts error to API error code
func ToErrorCode(err error) string {
	switch KindOf(err) {
	case KindInvalidData:
		return "INVALID_DATA"
	case KindNotFound:
		return "NOT_FOUND"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	switch KindOf(err) {
	case KindInvalidData:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
