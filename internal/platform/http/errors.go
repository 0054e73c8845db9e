// Package http holds errors that carry the HTTP status they should be
// rendered with.
package http

import (
	"errors"
	"net/http"
)

type Error struct {
	StatusCode int
	Message    string
	Err        error
}

// Error prefers the client-facing message. The wrapped cause is only shown
// when no message was given.
func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.StatusCode)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(statusCode int, message string, err error) *Error {
	return &Error{
		StatusCode: statusCode,
		Message:    message,
		Err:        err,
	}
}

// StatusOf finds the first *Error in err's chain.
func StatusOf(err error) (*Error, bool) {
	var httpErr *Error
	if errors.As(err, &httpErr) {
		return httpErr, true
	}
	return nil, false
}

func NewNotFound(message string, err error) *Error {
	return New(http.StatusNotFound, message, err)
}

func NewBadRequest(message string, err error) *Error {
	return New(http.StatusBadRequest, message, err)
}

func NewConflict(message string, err error) *Error {
	return New(http.StatusConflict, message, err)
}

func NewPayloadTooLarge(message string, err error) *Error {
	return New(http.StatusRequestEntityTooLarge, message, err)
}
