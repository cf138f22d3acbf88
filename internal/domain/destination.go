package domain

import (
	"context"
	"time"
)

// Destination is a trip package with a fixed travel window. The window is
// immutable once sales reference it; attached transport legs must fall
// inside [StartDate, EndDate].
type Destination struct {
	ID        int64     `json:"destination_id"`
	Name      string    `json:"name"`
	Country   string    `json:"country"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

type DestinationRepository interface {
	GetDestination(ctx context.Context, id int64) (*Destination, error)
}
