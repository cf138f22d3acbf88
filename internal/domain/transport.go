package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type TransportType string

const (
	TransportBus   TransportType = "Bus"
	TransportTrain TransportType = "Train"
	TransportShip  TransportType = "Ship"
	TransportCar   TransportType = "Car"
	TransportOther TransportType = "Other"
)

// IsValid reports whether t is one of the known transport types.
func (t TransportType) IsValid() bool {
	switch t {
	case TransportBus, TransportTrain, TransportShip, TransportCar, TransportOther:
		return true
	}
	return false
}

// Transport is a single ground/sea leg available for attachment to a sale.
type Transport struct {
	ID            int64           `json:"transport_id"`
	Type          TransportType   `json:"type"`
	Company       string          `json:"company"`
	DepartureDate time.Time       `json:"departure_date"`
	ArrivalDate   time.Time       `json:"arrival_date"`
	Price         decimal.Decimal `json:"price"`
}

type TransportRepository interface {
	GetTransport(ctx context.Context, id int64) (*Transport, error)
}
