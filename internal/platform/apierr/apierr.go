package apierr

import (
	"fmt"
	"net/http"

	domainagg "github.com/sigc-piloto/sigc-backend/internal/domain/aggregates"
)

// Wire codes carried in the error envelope.
const (
	CodeInvalidPayload     = "invalid_payload"
	CodeInvalidParam       = "invalid_param"
	CodeNotFound           = "not_found"
	CodeConflict           = "conflict"
	CodeInvariantViolation = "invariant_violation"
	CodeInternal           = "internal"
)

type Error struct {
	Status int
	Code   string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

// Message is the client-facing text: the aggregate message when present.
func (e *Error) Message() string {
	if e == nil || e.Err == nil {
		return "unknown error"
	}
	return domainagg.MessageOf(e.Err)
}

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

// FromError maps an aggregate error code onto an HTTP status. Errors without a
// code are treated as internal failures.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	if apiErr, ok := err.(*Error); ok {
		return apiErr
	}
	switch domainagg.CodeOf(err) {
	case domainagg.CodeValidation:
		return New(http.StatusUnprocessableEntity, CodeInvalidPayload, err)
	case domainagg.CodeNotFound:
		return New(http.StatusNotFound, CodeNotFound, err)
	case domainagg.CodeConflict:
		return New(http.StatusConflict, CodeConflict, err)
	case domainagg.CodeInvariantViolation:
		return New(http.StatusInternalServerError, CodeInvariantViolation, err)
	default:
		return New(http.StatusInternalServerError, CodeInternal, err)
	}
}
