package service

import (
	"context"
	"log/slog"
	"time"

	"travel-bookings/internal/domain"
	"travel-bookings/internal/errors"
	"travel-bookings/internal/repository"
	"travel-bookings/internal/validation"
)

// ItineraryService attaches inventory to a sale's itinerary. Transport
// attachment carries the containment invariant: the leg's travel dates must
// fall inside the sale's destination window, checked on every insert and
// every update before anything is written.
type ItineraryService struct {
	store     *repository.Store
	opTimeout time.Duration
	logger    *slog.Logger
}

func NewItineraryService(store *repository.Store, opTimeout time.Duration, logger *slog.Logger) *ItineraryService {
	return &ItineraryService{
		store:     store,
		opTimeout: opTimeout,
		logger:    logger,
	}
}

type AttachRequest struct {
	SaleID       int64
	ItemID       int64
	OrderInTrip  int
	AssignedDate time.Time
}

// AttachTransport links a transport leg into the sale's itinerary, or moves
// an existing link to a new position. Re-attaching with identical values
// returns the existing row unchanged. The sale row is locked for the
// transaction so concurrent attaches for one sale serialize; the unique
// order index is the backstop for races that slip past the pre-check.
func (s *ItineraryService) AttachTransport(ctx context.Context, req *AttachRequest) (*domain.SaleTransport, error) {
	s.logger.Info("Attaching transport",
		"sale_id", req.SaleID,
		"transport_id", req.ItemID,
		"order_in_trip", req.OrderInTrip)

	if req.OrderInTrip <= 0 {
		return nil, errors.NewAppError(errors.ConstraintViolation, "order_in_trip must be positive")
	}

	ctx, cancel := context.WithTimeout(ctx, s.opTimeout)
	defer cancel()

	var result *domain.SaleTransport
	err := s.store.WithTransaction(ctx, func(txStore *repository.Store) error {
		sale, err := txStore.Sales().GetSaleForUpdate(ctx, req.SaleID)
		if err != nil {
			return err
		}

		dest, err := txStore.Destinations().GetDestination(ctx, sale.DestinationID)
		if err != nil {
			return err
		}

		leg, err := txStore.Transport().GetTransport(ctx, req.ItemID)
		if err != nil {
			return err
		}

		if !validation.DateWithinWindow(leg.DepartureDate, leg.ArrivalDate, dest.StartDate, dest.EndDate) {
			s.logger.Warn("Transport dates outside destination window",
				"sale_id", req.SaleID,
				"transport_id", req.ItemID,
				"departure_date", leg.DepartureDate,
				"arrival_date", leg.ArrivalDate,
				"window_start", dest.StartDate,
				"window_end", dest.EndDate)
			return errors.ErrDatesOutsideWindow
		}

		existing, err := txStore.Itinerary().GetTransportLink(ctx, req.SaleID, req.ItemID)
		if err != nil {
			return err
		}

		if existing != nil {
			if existing.OrderInTrip == req.OrderInTrip && existing.AssignedDate.Equal(req.AssignedDate) {
				s.logger.Info("Transport already attached, returning existing link",
					"sale_id", req.SaleID, "transport_id", req.ItemID)
				result = existing
				return nil
			}

			orders, err := txStore.Itinerary().ListTransportOrders(ctx, req.SaleID)
			if err != nil {
				return err
			}
			if existing.OrderInTrip != req.OrderInTrip && !validation.IsUniqueOrder(req.OrderInTrip, orders) {
				return errors.ErrDuplicateOrderInTrip
			}

			existing.OrderInTrip = req.OrderInTrip
			existing.AssignedDate = req.AssignedDate
			if err := txStore.Itinerary().UpdateTransportLink(ctx, existing); err != nil {
				return err
			}
			result = existing
			return nil
		}

		orders, err := txStore.Itinerary().ListTransportOrders(ctx, req.SaleID)
		if err != nil {
			return err
		}
		if !validation.IsUniqueOrder(req.OrderInTrip, orders) {
			return errors.ErrDuplicateOrderInTrip
		}

		link := &domain.SaleTransport{
			SaleID:       req.SaleID,
			TransportID:  req.ItemID,
			OrderInTrip:  req.OrderInTrip,
			AssignedDate: req.AssignedDate,
		}
		if err := txStore.Itinerary().InsertTransportLink(ctx, link); err != nil {
			return err
		}
		result = link
		return nil
	})

	if err != nil {
		s.logger.Error("Transport attachment failed",
			"sale_id", req.SaleID, "transport_id", req.ItemID, "error", err)
		return nil, err
	}

	return result, nil
}

// AttachHotel links a hotel stay into the sale's itinerary. Hotel and flight
// sequences are independent of the transport sequence; only the per-sale
// order uniqueness applies, there is no date containment rule for them.
func (s *ItineraryService) AttachHotel(ctx context.Context, req *AttachRequest) (*domain.SaleHotel, error) {
	s.logger.Info("Attaching hotel",
		"sale_id", req.SaleID, "hotel_id", req.ItemID, "order_in_trip", req.OrderInTrip)

	if req.OrderInTrip <= 0 {
		return nil, errors.NewAppError(errors.ConstraintViolation, "order_in_trip must be positive")
	}

	ctx, cancel := context.WithTimeout(ctx, s.opTimeout)
	defer cancel()

	var result *domain.SaleHotel
	err := s.store.WithTransaction(ctx, func(txStore *repository.Store) error {
		if _, err := txStore.Sales().GetSaleForUpdate(ctx, req.SaleID); err != nil {
			return err
		}

		existing, err := txStore.Itinerary().GetHotelLink(ctx, req.SaleID, req.ItemID)
		if err != nil {
			return err
		}
		if existing != nil {
			result = existing
			return nil
		}

		orders, err := txStore.Itinerary().ListHotelOrders(ctx, req.SaleID)
		if err != nil {
			return err
		}
		if !validation.IsUniqueOrder(req.OrderInTrip, orders) {
			return errors.ErrDuplicateOrderInTrip
		}

		link := &domain.SaleHotel{
			SaleID:       req.SaleID,
			HotelID:      req.ItemID,
			OrderInTrip:  req.OrderInTrip,
			AssignedDate: req.AssignedDate,
		}
		if err := txStore.Itinerary().InsertHotelLink(ctx, link); err != nil {
			return err
		}
		result = link
		return nil
	})

	if err != nil {
		s.logger.Error("Hotel attachment failed",
			"sale_id", req.SaleID, "hotel_id", req.ItemID, "error", err)
		return nil, err
	}
	return result, nil
}

// AttachFlight links a flight into the sale's itinerary. Same rules as
// AttachHotel.
func (s *ItineraryService) AttachFlight(ctx context.Context, req *AttachRequest) (*domain.SaleFlight, error) {
	s.logger.Info("Attaching flight",
		"sale_id", req.SaleID, "flight_id", req.ItemID, "order_in_trip", req.OrderInTrip)

	if req.OrderInTrip <= 0 {
		return nil, errors.NewAppError(errors.ConstraintViolation, "order_in_trip must be positive")
	}

	ctx, cancel := context.WithTimeout(ctx, s.opTimeout)
	defer cancel()

	var result *domain.SaleFlight
	err := s.store.WithTransaction(ctx, func(txStore *repository.Store) error {
		if _, err := txStore.Sales().GetSaleForUpdate(ctx, req.SaleID); err != nil {
			return err
		}

		existing, err := txStore.Itinerary().GetFlightLink(ctx, req.SaleID, req.ItemID)
		if err != nil {
			return err
		}
		if existing != nil {
			result = existing
			return nil
		}

		orders, err := txStore.Itinerary().ListFlightOrders(ctx, req.SaleID)
		if err != nil {
			return err
		}
		if !validation.IsUniqueOrder(req.OrderInTrip, orders) {
			return errors.ErrDuplicateOrderInTrip
		}

		link := &domain.SaleFlight{
			SaleID:       req.SaleID,
			FlightID:     req.ItemID,
			OrderInTrip:  req.OrderInTrip,
			AssignedDate: req.AssignedDate,
		}
		if err := txStore.Itinerary().InsertFlightLink(ctx, link); err != nil {
			return err
		}
		result = link
		return nil
	})

	if err != nil {
		s.logger.Error("Flight attachment failed",
			"sale_id", req.SaleID, "flight_id", req.ItemID, "error", err)
		return nil, err
	}
	return result, nil
}

func (s *ItineraryService) ListTransport(ctx context.Context, saleID int64) ([]domain.SaleTransport, error) {
	ctx, cancel := context.WithTimeout(ctx, s.opTimeout)
	defer cancel()

	if _, err := s.store.Sales().GetSale(ctx, saleID); err != nil {
		return nil, err
	}
	return s.store.Itinerary().ListTransportLinks(ctx, saleID)
}
