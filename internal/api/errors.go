package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is an HTTP-aware failure rendered in the response envelope.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
	Err     error  `json:"-"`
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func NewError(code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

func Wrap(err error, base *Error, message string) *Error {
	wrapped := *base
	wrapped.Err = err
	if message != "" {
		wrapped.Message = message
	}
	return &wrapped
}

var (
	ErrNotFound    = NewError("NOT_FOUND", http.StatusNotFound, "resource not found")
	ErrBadRequest  = NewError("BAD_REQUEST", http.StatusBadRequest, "bad request")
	ErrValidation  = NewError("VALIDATION_ERROR", http.StatusBadRequest, "validation failed")
	ErrUnavailable = NewError("UNAVAILABLE", http.StatusServiceUnavailable, "service unavailable")
	ErrInternal    = NewError("INTERNAL_ERROR", http.StatusInternalServerError, "internal server error")
)

// FromError normalises any error into an *Error.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(err, ErrInternal, "")
}
