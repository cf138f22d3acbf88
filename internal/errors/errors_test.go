package errors

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want int
	}{
		{NotFound, http.StatusNotFound},
		{AlreadyExists, http.StatusConflict},
		{Conflict, http.StatusConflict},
		{ConstraintViolation, http.StatusUnprocessableEntity},
		{Timeout, http.StatusGatewayTimeout},
		{InvalidInput, http.StatusBadRequest},
		{InternalError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, NewAppError(tt.code, "msg").HTTPStatus())
		})
	}
}

func TestRetryable(t *testing.T) {
	assert.True(t, ErrConcurrentModification.Retryable())
	assert.True(t, ErrStoreTimeout.Retryable())

	assert.False(t, ErrSaleNotFound.Retryable())
	assert.False(t, ErrNegativeTotal.Retryable())
	assert.False(t, ErrDuplicateOrderInTrip.Retryable())
	assert.False(t, ErrDatesOutsideWindow.Retryable())
}

func TestErrorString(t *testing.T) {
	err := NewAppErrorf(NotFound, "sale %d not found", 42)
	assert.Equal(t, "not_found: sale 42 not found", err.Error())
}

func TestWithDetails(t *testing.T) {
	err := NewAppError(InternalError, "boom").WithDetails("driver said no")
	assert.Equal(t, "driver said no", err.Details)
}
