// Package validation holds the pure predicates behind the mutation rules.
// Nothing here touches the store.
package validation

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateWithinWindow reports whether [legStart, legEnd] lies fully inside
// [windowStart, windowEnd]. Bounds are inclusive on both ends.
func DateWithinWindow(legStart, legEnd, windowStart, windowEnd time.Time) bool {
	return !legStart.Before(windowStart) && !legEnd.After(windowEnd)
}

// IsUniqueOrder reports whether orderInTrip is not already taken among the
// sale's existing itinerary positions for one junction type.
func IsUniqueOrder(orderInTrip int, existingOrders []int) bool {
	for _, o := range existingOrders {
		if o == orderInTrip {
			return false
		}
	}
	return true
}

// IsNonNegative reports whether amount >= 0.
func IsNonNegative(amount decimal.Decimal) bool {
	return !amount.IsNegative()
}
