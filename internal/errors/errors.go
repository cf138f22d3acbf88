package errors

import (
	"fmt"
	"net/http"
)

type ErrorCode string

const (
	NotFound ErrorCode = "not_found"
	// AlreadyExists is part of the response contract for duplicate
	// resources. The attach paths treat an identical re-attach as a
	// non-fatal result and return the existing row instead of this code.
	AlreadyExists       ErrorCode = "already_exists"
	ConstraintViolation ErrorCode = "constraint_violation"
	Conflict            ErrorCode = "conflict"
	Timeout             ErrorCode = "timeout"
	InvalidInput        ErrorCode = "invalid_input"
	InternalError       ErrorCode = "internal_error"
)

type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

func (e AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewAppError(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

func NewAppErrorf(code ErrorCode, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

func (e *AppError) WithDetails(details string) *AppError {
	e.Details = details
	return e
}

// HTTPStatus maps the error code to a response status.
func (e *AppError) HTTPStatus() int {
	switch e.Code {
	case NotFound:
		return http.StatusNotFound
	case AlreadyExists, Conflict:
		return http.StatusConflict
	case ConstraintViolation:
		return http.StatusUnprocessableEntity
	case Timeout:
		return http.StatusGatewayTimeout
	case InvalidInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Retryable reports whether the caller may retry the operation as-is.
// Validation failures are deterministic; only lost races and timeouts are
// worth retrying.
func (e *AppError) Retryable() bool {
	return e.Code == Conflict || e.Code == Timeout
}

// Predefined errors for common cases
var (
	ErrSaleNotFound        = NewAppError(NotFound, "sale not found")
	ErrDestinationNotFound = NewAppError(NotFound, "destination not found")
	ErrTransportNotFound   = NewAppError(NotFound, "transport not found")

	ErrMissingActor         = NewAppError(ConstraintViolation, "price change requires an acting seller")
	ErrNegativeTotal        = NewAppError(ConstraintViolation, "sale total amount cannot go negative")
	ErrDuplicateOrderInTrip = NewAppError(ConstraintViolation, "order_in_trip already used for this sale")
	ErrDatesOutsideWindow   = NewAppError(ConstraintViolation, "transport dates fall outside the destination window")

	ErrConcurrentModification = NewAppError(Conflict, "sale was modified concurrently")
	ErrStoreTimeout           = NewAppError(Timeout, "store operation timed out")
)
