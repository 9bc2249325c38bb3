package web

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is an error with an HTTP status. Handlers return it to choose the
// response status; App.OnError can render a page for it.
type Error struct {
	Status  int
	Detail  string
	Headers http.Header
	// Err is the underlying cause, if any.
	Err error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("web: %d %s: %v", e.Status, e.Detail, e.Err)
	}
	return fmt.Sprintf("web: %d %s", e.Status, e.Detail)
}

func (e *Error) Unwrap() error { return e.Err }

// ClientError reports whether the status is in the 4xx range.
func (e *Error) ClientError() bool { return e.Status >= 400 && e.Status < 500 }

// WithHeader adds a response header and returns e.
func (e *Error) WithHeader(key, value string) *Error {
	if e.Headers == nil {
		e.Headers = make(http.Header)
	}
	e.Headers.Add(key, value)
	return e
}

// Wrap records err as the cause and returns e.
func (e *Error) Wrap(err error) *Error {
	e.Err = err
	return e
}

// NewError creates an error with status. An empty detail defaults to the
// status text.
func NewError(status int, detail string) *Error {
	if detail == "" {
		detail = http.StatusText(status)
	}
	return &Error{Status: status, Detail: detail}
}

// AsError converts err to an *Error. Errors without a status become 500
// Internal Server Error with err as the cause.
func AsError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Internal("").Wrap(err)
}

// Client errors.

func BadRequest(detail string) *Error       { return NewError(http.StatusBadRequest, detail) }
func Unauthorized(detail string) *Error     { return NewError(http.StatusUnauthorized, detail) }
func PaymentRequired(detail string) *Error  { return NewError(http.StatusPaymentRequired, detail) }
func Forbidden(detail string) *Error        { return NewError(http.StatusForbidden, detail) }
func NotFound(detail string) *Error         { return NewError(http.StatusNotFound, detail) }
func MethodNotAllowed(detail string) *Error { return NewError(http.StatusMethodNotAllowed, detail) }
func TooManyRequests(detail string) *Error  { return NewError(http.StatusTooManyRequests, detail) }

// Server errors.

func Internal(detail string) *Error           { return NewError(http.StatusInternalServerError, detail) }
func NotImplemented(detail string) *Error     { return NewError(http.StatusNotImplemented, detail) }
func BadGateway(detail string) *Error         { return NewError(http.StatusBadGateway, detail) }
func ServiceUnavailable(detail string) *Error { return NewError(http.StatusServiceUnavailable, detail) }
func GatewayTimeout(detail string) *Error     { return NewError(http.StatusGatewayTimeout, detail) }
