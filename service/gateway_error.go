package service

import (
	"errors"
	"fmt"
)

const (
	// ErrInternalServerError means that an internal gateway error has occurred.
	ErrInternalServerError = "internal_server_error"
	// ErrBadParameter means that a provided parameter does not match the declared shape.
	ErrBadParameter = "bad_parameter"
	// ErrUpstreamError means the backend call failed with a generic application/transport error.
	ErrUpstreamError = "upstream_error"
	// ErrAllInstancesFailed means every eligible backend instance failed (failover exhausted) or none was available.
	ErrAllInstancesFailed = "all_instances_failed"
	// ErrServiceUnavailable means the circuit breaker is open and the call was fast-failed.
	ErrServiceUnavailable = "service_unavailable"
)

// GatewayError represents an error within the context of fitgateway operations.
type GatewayError struct {
	// Code is a machine-readable code.
	Code string `json:"code,omitempty"`
	// Message is a human-readable message.
	Message string `json:"message"`
	// Inner is a wrapped error that is never shown to API consumers.
	Inner error `json:"-"`
}

// NewGatewayError creates a new GatewayError.
func NewGatewayError(code string, message string, inner error) *GatewayError {
	return &GatewayError{
		Code:    code,
		Message: message,
		Inner:   inner,
	}
}

func NewBadParameterError(message string, inner error) *GatewayError {
	if g := ToGatewayError(inner); g != nil {
		return g
	}
	return NewGatewayError(ErrBadParameter, message, inner)
}

func NewInternalServerError(message string, inner error) *GatewayError {
	if g := ToGatewayError(inner); g != nil {
		return g
	}
	return NewGatewayError(ErrInternalServerError, message, inner)
}

func (e GatewayError) Error() string {
	if e.Inner != nil {
		return fmt.Sprintf("%s %s: %v", e.Code, e.Message, e.Inner)
	}
	return fmt.Sprintf("%s %s", e.Code, e.Message)
}

// Unwrap the error returning the error's reason.
func (e GatewayError) Unwrap() error {
	return e.Inner
}

// ToGatewayError returns a pointer to a gateway error, or nil if it is not one.
func ToGatewayError(err error) *GatewayError {
	var e *GatewayError
	if errors.As(err, &e) {
		return e
	}
	return nil
}

// FromDispatchError maps a dispatcher/invoker error to a coded GatewayError per
// the resilience taxonomy: ErrCircuitOpen → service_unavailable; ErrExhausted
// and ErrNoAvailableInstance → all_instances_failed; an existing GatewayError
// (e.g. bad_parameter from validation) passes through; anything else →
// upstream_error.
//
// Parameter err — non-nil error from a Dispatcher operation.
//
// Returns: *GatewayError carrying a distinct code so clients can apply
// differentiated backoff (circuit open vs retries exhausted vs generic failure).
//
// Called from the echo HTTPErrorHandler before rendering the response.
func FromDispatchError(err error) *GatewayError {
	if g := ToGatewayError(err); g != nil {
		return g
	}
	switch {
	case errors.Is(err, ErrCircuitOpen):
		return NewGatewayError(ErrServiceUnavailable, "service unavailable", err)
	case errors.Is(err, ErrExhausted), errors.Is(err, ErrNoAvailableInstance):
		return NewGatewayError(ErrAllInstancesFailed, "all instances failed", err)
	default:
		return NewGatewayError(ErrUpstreamError, "backend request failed", err)
	}
}
