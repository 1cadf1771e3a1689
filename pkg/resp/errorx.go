package resp

import (
	"net/http"

	"github.com/pkg/errors"
)

type StatusCode interface {
	error
	Code() int
	Message() string
}

// StatusError is an error that knows the HTTP status it maps to.
type StatusError struct {
	code    int
	message string
	class   bool
}

func NewStatusError(code int, message string) *StatusError {
	return &StatusError{code: code, message: message}
}

// newClassError builds a sentinel that every error of the same code matches.
func newClassError(code int, message string) *StatusError {
	return &StatusError{code: code, message: message, class: true}
}

func (e *StatusError) Error() string {
	return e.message
}

func (e *StatusError) Code() int {
	return e.code
}

func (e *StatusError) Message() string {
	return e.message
}

// Is reports whether e matches target. A class sentinel such as
// ErrBadRequest matches any error of its code; any other target needs the
// same code and message.
func (e *StatusError) Is(target error) bool {
	t, ok := target.(*StatusError)
	if !ok || t.code != e.code {
		return false
	}
	return t.class || t.message == e.message
}

// WithMessage returns a copy of e carrying message.
func (e *StatusError) WithMessage(message string) *StatusError {
	return &StatusError{code: e.code, message: message}
}

var (
	ErrBadRequest = newClassError(http.StatusBadRequest, "bad request")
	ErrNotFound   = newClassError(http.StatusNotFound, "not found")
)

// StatusOf resolves the status code and client message of err. Errors that
// carry no status become 500 with their own text.
func StatusOf(err error) (int, string) {
	var sc StatusCode
	if errors.As(err, &sc) {
		return sc.Code(), sc.Message()
	}
	return http.StatusInternalServerError, err.Error()
}
