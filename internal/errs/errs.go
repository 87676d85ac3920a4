// Package errs carries coded errors from the notes service to the HTTP layer.
// Three codes cover every failure this API can produce: rejected input, a
// note that does not exist, and storage trouble. Handlers ask CodeOf and
// MessageOf for the response pieces; raw causes stay server-side.
package errs

import (
	"errors"
	"net/http"
)

// Code classifies an error for HTTP status mapping and logging.
type Code string

const (
	InvalidArgument Code = "invalid_argument"
	NotFound        Code = "not_found"
	Internal        Code = "internal"
)

// Error pairs a code with a client-safe message and an optional cause.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch {
	case e == nil:
		return ""
	case e.Message != "":
		return e.Message
	case e.Err != nil:
		return e.Err.Error()
	}
	return string(e.Code)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New builds a coded error with no underlying cause.
func New(code Code, message string) error {
	return Wrap(code, message, nil)
}

// Wrap builds a coded error around cause. The message is what clients see;
// cause is reachable through errors.Is and errors.As.
func Wrap(code Code, message string, cause error) error {
	return &Error{Code: code, Message: message, Err: cause}
}

// CodeOf returns the error's code. Nil, uncoded, and code-less errors all
// report Internal so anything unexpected surfaces as a 500.
func CodeOf(err error) Code {
	var coded *Error
	if errors.As(err, &coded) && coded.Code != "" {
		return coded.Code
	}
	return Internal
}

// MessageOf returns the message to put in an error response. Errors without
// a typed wrapper collapse to "internal error" so raw driver errors, file
// paths, and connection strings never reach API clients.
func MessageOf(err error) string {
	if err == nil {
		return string(Internal)
	}
	var coded *Error
	if errors.As(err, &coded) && coded.Message != "" {
		return coded.Message
	}
	return "internal error"
}

// HTTPStatus maps error code to HTTP status. Validation failures map to
// 422 Unprocessable Entity, matching the wire contract of the API.
func HTTPStatus(code Code) int {
	switch code {
	case InvalidArgument:
		return http.StatusUnprocessableEntity
	case NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
