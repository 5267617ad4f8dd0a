package apiclient

import (
	"errors"
	"fmt"
	"net/http"
)

// TransportError means no usable response came back: connection failure, timeout or an unreadable body.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// APIError is a non-2xx answer. Message comes from the {"error"} or {"message"} body.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api responded %d: %s", e.Status, e.Message)
}

const transportMessage = "Could not reach the booking service. Please try again."

// Message is the text shown to the user for err.
func Message(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	var tErr *TransportError
	if errors.As(err, &tErr) {
		return transportMessage
	}
	if err == nil {
		return ""
	}
	return "Unexpected error"
}

func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}

func IsNotFound(err error) bool { return IsStatus(err, http.StatusNotFound) }

func IsUnauthorized(err error) bool { return IsStatus(err, http.StatusUnauthorized) }
