package validation

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestDateWithinWindow(t *testing.T) {
	windowStart := date("2025-06-01")
	windowEnd := date("2025-06-10")

	tests := []struct {
		name     string
		legStart string
		legEnd   string
		want     bool
	}{
		{"fully inside", "2025-06-02", "2025-06-08", true},
		{"exactly the window", "2025-06-01", "2025-06-10", true},
		{"starts on window start", "2025-06-01", "2025-06-05", true},
		{"ends on window end", "2025-06-05", "2025-06-10", true},
		{"ends after window", "2025-06-02", "2025-06-12", false},
		{"starts before window", "2025-05-30", "2025-06-05", false},
		{"entirely before", "2025-05-01", "2025-05-10", false},
		{"entirely after", "2025-07-01", "2025-07-10", false},
		{"single day inside", "2025-06-05", "2025-06-05", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DateWithinWindow(date(tt.legStart), date(tt.legEnd), windowStart, windowEnd)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsUniqueOrder(t *testing.T) {
	tests := []struct {
		name        string
		orderInTrip int
		existing    []int
		want        bool
	}{
		{"no existing orders", 1, nil, true},
		{"order not taken", 3, []int{1, 2}, true},
		{"order taken", 2, []int{1, 2}, false},
		{"only occurrence matters", 1, []int{1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsUniqueOrder(tt.orderInTrip, tt.existing))
		})
	}
}

func TestIsNonNegative(t *testing.T) {
	assert.True(t, IsNonNegative(decimal.NewFromInt(100)))
	assert.True(t, IsNonNegative(decimal.Zero))
	assert.True(t, IsNonNegative(decimal.RequireFromString("0.01")))
	assert.False(t, IsNonNegative(decimal.RequireFromString("-0.01")))
	assert.False(t, IsNonNegative(decimal.NewFromInt(-100)))
}
