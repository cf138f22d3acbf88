package handler

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-bookings/internal/errors"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
		ok    bool
	}{
		{"integer", "100", "100", true},
		{"two fraction digits", "100.50", "100.50", true},
		{"negative two fraction digits", "-200.00", "-200.00", true},
		{"trailing zero beyond scale", "1.050", "1.05", true},
		{"three fraction digits", "0.005", "", false},
		{"sub-cent delta", "99.999", "", false},
		{"not a number", "abc", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, appErr := parseAmount(tt.value, "amount_delta")
			if !tt.ok {
				require.NotNil(t, appErr)
				assert.Equal(t, errors.InvalidInput, appErr.Code)
				return
			}
			require.Nil(t, appErr)
			assert.True(t, amount.Equal(decimal.RequireFromString(tt.want)),
				"expected %s, got %s", tt.want, amount)
		})
	}
}
