package domain

import (
	"context"
	"time"
)

// SaleTransport links a transport leg into a sale's itinerary. OrderInTrip is
// the leg's sequence position, unique within the sale independently of the
// hotel and flight sequences.
type SaleTransport struct {
	ID           int64     `json:"sale_transport_id"`
	SaleID       int64     `json:"sale_id"`
	TransportID  int64     `json:"transport_id"`
	OrderInTrip  int       `json:"order_in_trip"`
	AssignedDate time.Time `json:"assigned_date"`
}

type SaleHotel struct {
	ID           int64     `json:"sale_hotel_id"`
	SaleID       int64     `json:"sale_id"`
	HotelID      int64     `json:"hotel_id"`
	OrderInTrip  int       `json:"order_in_trip"`
	AssignedDate time.Time `json:"assigned_date"`
}

type SaleFlight struct {
	ID           int64     `json:"sale_flight_id"`
	SaleID       int64     `json:"sale_id"`
	FlightID     int64     `json:"flight_id"`
	OrderInTrip  int       `json:"order_in_trip"`
	AssignedDate time.Time `json:"assigned_date"`
}

// ItineraryRepository manages the three junction tables. The Get*Link methods
// return nil without an error when no link exists.
type ItineraryRepository interface {
	GetTransportLink(ctx context.Context, saleID, transportID int64) (*SaleTransport, error)
	InsertTransportLink(ctx context.Context, link *SaleTransport) error
	UpdateTransportLink(ctx context.Context, link *SaleTransport) error
	ListTransportLinks(ctx context.Context, saleID int64) ([]SaleTransport, error)
	ListTransportOrders(ctx context.Context, saleID int64) ([]int, error)

	GetHotelLink(ctx context.Context, saleID, hotelID int64) (*SaleHotel, error)
	InsertHotelLink(ctx context.Context, link *SaleHotel) error
	ListHotelOrders(ctx context.Context, saleID int64) ([]int, error)

	GetFlightLink(ctx context.Context, saleID, flightID int64) (*SaleFlight, error)
	InsertFlightLink(ctx context.Context, link *SaleFlight) error
	ListFlightOrders(ctx context.Context, saleID int64) ([]int, error)
}
