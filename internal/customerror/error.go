package customerror

import (
	"fmt"
	"net/http"
)

type CustomError interface {
	Error() string
	GetHTTPCode() int
}

// ValidationError is raised for input rejected locally, before any request
// to the store service is issued.
type ValidationError struct {
	httpCode int
	message  string
}

func NewValidationError(msg string) *ValidationError {
	return &ValidationError{httpCode: http.StatusUnprocessableEntity, message: msg}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s", e.message)
}

func (e *ValidationError) GetHTTPCode() int {
	return e.httpCode
}

// RequestError carries a failure reported by the store service: a non-2xx
// status or a success=false envelope. The message is the server's own.
type RequestError struct {
	httpCode int
	message  string
}

func NewRequestError(httpCode int, msg string) *RequestError {
	if httpCode < http.StatusBadRequest {
		httpCode = http.StatusBadGateway
	}
	return &RequestError{httpCode: httpCode, message: msg}
}

func (e *RequestError) Error() string {
	return e.message
}

func (e *RequestError) GetHTTPCode() int {
	return e.httpCode
}

// ConflictError signals that an action was refused because an equivalent
// one is still in flight.
type ConflictError struct {
	httpCode int
	message  string
}

func NewConflictError(msg string) *ConflictError {
	return &ConflictError{httpCode: http.StatusConflict, message: msg}
}

func (e *ConflictError) Error() string {
	return e.message
}

func (e *ConflictError) GetHTTPCode() int {
	return e.httpCode
}

// TransportError covers network failures and malformed (non-JSON) responses.
// Handlers treat it the same way as RequestError for user messaging.
type TransportError struct {
	httpCode int
	message  string
}

func NewTransportError(msg string) *TransportError {
	return &TransportError{httpCode: http.StatusBadGateway, message: msg}
}

func (e *TransportError) Error() string {
	return e.message
}

func (e *TransportError) GetHTTPCode() int {
	return e.httpCode
}
