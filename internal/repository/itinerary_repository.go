package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"travel-bookings/internal/domain"
	"travel-bookings/internal/errors"
)

// itineraryRepository persists the three junction tables. The tables share
// one shape (sale_id, item_id, order_in_trip, assigned_date) so the SQL is
// built per table from a fixed descriptor; table names never come from
// caller input.
type itineraryRepository struct {
	db     SQLExecutor
	logger *slog.Logger
}

func NewItineraryRepository(db SQLExecutor, logger *slog.Logger) domain.ItineraryRepository {
	return &itineraryRepository{
		db:     db,
		logger: logger,
	}
}

type junctionTable struct {
	table           string
	itemColumn      string
	orderConstraint string
}

var (
	transportJunction = junctionTable{"sale_transport", "transport_id", "uq_sale_transport_order"}
	hotelJunction     = junctionTable{"sale_hotels", "hotel_id", "uq_sale_hotels_order"}
	flightJunction    = junctionTable{"sale_flights", "flight_id", "uq_sale_flights_order"}
)

type junctionRow struct {
	ID           int64
	SaleID       int64
	ItemID       int64
	OrderInTrip  int
	AssignedDate time.Time
}

func (r *itineraryRepository) getLink(ctx context.Context, jt junctionTable, saleID, itemID int64) (*junctionRow, error) {
	query := fmt.Sprintf(`
		SELECT id, sale_id, %s, order_in_trip, assigned_date
		FROM %s WHERE sale_id = $1 AND %s = $2
	`, jt.itemColumn, jt.table, jt.itemColumn)

	var row junctionRow
	err := r.db.QueryRowContext(ctx, query, saleID, itemID).Scan(
		&row.ID,
		&row.SaleID,
		&row.ItemID,
		&row.OrderInTrip,
		&row.AssignedDate,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		r.logger.Error("Failed to get itinerary link",
			"table", jt.table, "sale_id", saleID, "item_id", itemID, "error", err)
		return nil, classifyDBError(err, "failed to get itinerary link")
	}

	return &row, nil
}

func (r *itineraryRepository) insertLink(ctx context.Context, jt junctionTable, row *junctionRow) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (sale_id, %s, order_in_trip, assigned_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, jt.table, jt.itemColumn)

	err := r.db.QueryRowContext(ctx, query, row.SaleID, row.ItemID, row.OrderInTrip, row.AssignedDate).Scan(&row.ID)
	if err != nil {
		if isUniqueViolation(err, jt.orderConstraint) {
			r.logger.Warn("Duplicate order_in_trip",
				"table", jt.table, "sale_id", row.SaleID, "order_in_trip", row.OrderInTrip)
			return errors.ErrDuplicateOrderInTrip
		}
		r.logger.Error("Failed to insert itinerary link",
			"table", jt.table, "sale_id", row.SaleID, "item_id", row.ItemID, "error", err)
		return classifyDBError(err, "failed to insert itinerary link")
	}

	r.logger.Info("Itinerary link created",
		"table", jt.table, "sale_id", row.SaleID, "item_id", row.ItemID, "order_in_trip", row.OrderInTrip)
	return nil
}

func (r *itineraryRepository) updateLink(ctx context.Context, jt junctionTable, row *junctionRow) error {
	query := fmt.Sprintf(`
		UPDATE %s SET order_in_trip = $1, assigned_date = $2
		WHERE sale_id = $3 AND %s = $4
	`, jt.table, jt.itemColumn)

	result, err := r.db.ExecContext(ctx, query, row.OrderInTrip, row.AssignedDate, row.SaleID, row.ItemID)
	if err != nil {
		if isUniqueViolation(err, jt.orderConstraint) {
			return errors.ErrDuplicateOrderInTrip
		}
		r.logger.Error("Failed to update itinerary link",
			"table", jt.table, "sale_id", row.SaleID, "item_id", row.ItemID, "error", err)
		return classifyDBError(err, "failed to update itinerary link")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return errors.NewAppError(errors.InternalError, "failed to get rows affected").WithDetails(err.Error())
	}
	if rowsAffected == 0 {
		return errors.NewAppError(errors.NotFound, "itinerary link not found")
	}

	r.logger.Info("Itinerary link updated",
		"table", jt.table, "sale_id", row.SaleID, "item_id", row.ItemID, "order_in_trip", row.OrderInTrip)
	return nil
}

func (r *itineraryRepository) listOrders(ctx context.Context, jt junctionTable, saleID int64) ([]int, error) {
	query := fmt.Sprintf(`
		SELECT order_in_trip FROM %s WHERE sale_id = $1 ORDER BY order_in_trip
	`, jt.table)

	rows, err := r.db.QueryContext(ctx, query, saleID)
	if err != nil {
		r.logger.Error("Failed to list itinerary orders", "table", jt.table, "sale_id", saleID, "error", err)
		return nil, classifyDBError(err, "failed to list itinerary orders")
	}
	defer rows.Close()

	var orders []int
	for rows.Next() {
		var order int
		if err := rows.Scan(&order); err != nil {
			return nil, errors.NewAppError(errors.InternalError, "failed to scan order").WithDetails(err.Error())
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, classifyDBError(err, "failed to list itinerary orders")
	}
	return orders, nil
}

func (r *itineraryRepository) GetTransportLink(ctx context.Context, saleID, transportID int64) (*domain.SaleTransport, error) {
	row, err := r.getLink(ctx, transportJunction, saleID, transportID)
	if err != nil || row == nil {
		return nil, err
	}
	return &domain.SaleTransport{
		ID:           row.ID,
		SaleID:       row.SaleID,
		TransportID:  row.ItemID,
		OrderInTrip:  row.OrderInTrip,
		AssignedDate: row.AssignedDate,
	}, nil
}

func (r *itineraryRepository) InsertTransportLink(ctx context.Context, link *domain.SaleTransport) error {
	row := junctionRow{
		SaleID:       link.SaleID,
		ItemID:       link.TransportID,
		OrderInTrip:  link.OrderInTrip,
		AssignedDate: link.AssignedDate,
	}
	if err := r.insertLink(ctx, transportJunction, &row); err != nil {
		return err
	}
	link.ID = row.ID
	return nil
}

func (r *itineraryRepository) UpdateTransportLink(ctx context.Context, link *domain.SaleTransport) error {
	row := junctionRow{
		ID:           link.ID,
		SaleID:       link.SaleID,
		ItemID:       link.TransportID,
		OrderInTrip:  link.OrderInTrip,
		AssignedDate: link.AssignedDate,
	}
	return r.updateLink(ctx, transportJunction, &row)
}

func (r *itineraryRepository) ListTransportLinks(ctx context.Context, saleID int64) ([]domain.SaleTransport, error) {
	query := `
		SELECT id, sale_id, transport_id, order_in_trip, assigned_date
		FROM sale_transport WHERE sale_id = $1
		ORDER BY order_in_trip
	`

	rows, err := r.db.QueryContext(ctx, query, saleID)
	if err != nil {
		r.logger.Error("Failed to list transport links", "sale_id", saleID, "error", err)
		return nil, classifyDBError(err, "failed to list transport links")
	}
	defer rows.Close()

	var links []domain.SaleTransport
	for rows.Next() {
		var link domain.SaleTransport
		if err := rows.Scan(&link.ID, &link.SaleID, &link.TransportID, &link.OrderInTrip, &link.AssignedDate); err != nil {
			return nil, errors.NewAppError(errors.InternalError, "failed to scan transport link").WithDetails(err.Error())
		}
		links = append(links, link)
	}

	if err := rows.Err(); err != nil {
		return nil, classifyDBError(err, "failed to list transport links")
	}
	return links, nil
}

func (r *itineraryRepository) ListTransportOrders(ctx context.Context, saleID int64) ([]int, error) {
	return r.listOrders(ctx, transportJunction, saleID)
}

func (r *itineraryRepository) GetHotelLink(ctx context.Context, saleID, hotelID int64) (*domain.SaleHotel, error) {
	row, err := r.getLink(ctx, hotelJunction, saleID, hotelID)
	if err != nil || row == nil {
		return nil, err
	}
	return &domain.SaleHotel{
		ID:           row.ID,
		SaleID:       row.SaleID,
		HotelID:      row.ItemID,
		OrderInTrip:  row.OrderInTrip,
		AssignedDate: row.AssignedDate,
	}, nil
}

func (r *itineraryRepository) InsertHotelLink(ctx context.Context, link *domain.SaleHotel) error {
	row := junctionRow{
		SaleID:       link.SaleID,
		ItemID:       link.HotelID,
		OrderInTrip:  link.OrderInTrip,
		AssignedDate: link.AssignedDate,
	}
	if err := r.insertLink(ctx, hotelJunction, &row); err != nil {
		return err
	}
	link.ID = row.ID
	return nil
}

func (r *itineraryRepository) ListHotelOrders(ctx context.Context, saleID int64) ([]int, error) {
	return r.listOrders(ctx, hotelJunction, saleID)
}

func (r *itineraryRepository) GetFlightLink(ctx context.Context, saleID, flightID int64) (*domain.SaleFlight, error) {
	row, err := r.getLink(ctx, flightJunction, saleID, flightID)
	if err != nil || row == nil {
		return nil, err
	}
	return &domain.SaleFlight{
		ID:           row.ID,
		SaleID:       row.SaleID,
		FlightID:     row.ItemID,
		OrderInTrip:  row.OrderInTrip,
		AssignedDate: row.AssignedDate,
	}, nil
}

func (r *itineraryRepository) InsertFlightLink(ctx context.Context, link *domain.SaleFlight) error {
	row := junctionRow{
		SaleID:       link.SaleID,
		ItemID:       link.FlightID,
		OrderInTrip:  link.OrderInTrip,
		AssignedDate: link.AssignedDate,
	}
	if err := r.insertLink(ctx, flightJunction, &row); err != nil {
		return err
	}
	link.ID = row.ID
	return nil
}

func (r *itineraryRepository) ListFlightOrders(ctx context.Context, saleID int64) ([]int, error) {
	return r.listOrders(ctx, flightJunction, saleID)
}
