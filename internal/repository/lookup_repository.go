package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/shopspring/decimal"

	"travel-bookings/internal/domain"
	"travel-bookings/internal/errors"
)

// Read-only repositories over the passive inventory tables. The mutation
// services only ever read destinations and transport legs; both are
// immutable for their purposes.

type destinationRepository struct {
	db     SQLExecutor
	logger *slog.Logger
}

func NewDestinationRepository(db SQLExecutor, logger *slog.Logger) domain.DestinationRepository {
	return &destinationRepository{
		db:     db,
		logger: logger,
	}
}

func (r *destinationRepository) GetDestination(ctx context.Context, id int64) (*domain.Destination, error) {
	query := `
		SELECT id, name, country, start_date, end_date
		FROM destinations WHERE id = $1
	`

	var dest domain.Destination
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&dest.ID,
		&dest.Name,
		&dest.Country,
		&dest.StartDate,
		&dest.EndDate,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			r.logger.Warn("Destination not found", "destination_id", id)
			return nil, errors.ErrDestinationNotFound
		}
		r.logger.Error("Failed to get destination", "destination_id", id, "error", err)
		return nil, classifyDBError(err, "failed to get destination")
	}

	return &dest, nil
}

type transportRepository struct {
	db     SQLExecutor
	logger *slog.Logger
}

func NewTransportRepository(db SQLExecutor, logger *slog.Logger) domain.TransportRepository {
	return &transportRepository{
		db:     db,
		logger: logger,
	}
}

func (r *transportRepository) GetTransport(ctx context.Context, id int64) (*domain.Transport, error) {
	query := `
		SELECT id, type, COALESCE(company, ''), departure_date, arrival_date, price
		FROM transport WHERE id = $1
	`

	var leg domain.Transport
	var priceStr string
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&leg.ID,
		&leg.Type,
		&leg.Company,
		&leg.DepartureDate,
		&leg.ArrivalDate,
		&priceStr,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			r.logger.Warn("Transport not found", "transport_id", id)
			return nil, errors.ErrTransportNotFound
		}
		r.logger.Error("Failed to get transport", "transport_id", id, "error", err)
		return nil, classifyDBError(err, "failed to get transport")
	}

	price, err := decimal.NewFromString(priceStr)
	if err != nil {
		return nil, errors.NewAppError(errors.InternalError, "failed to parse transport price").WithDetails(err.Error())
	}
	leg.Price = price

	return &leg, nil
}

type reportRepository struct {
	db     SQLExecutor
	logger *slog.Logger
}

func NewReportRepository(db SQLExecutor, logger *slog.Logger) domain.ReportRepository {
	return &reportRepository{
		db:     db,
		logger: logger,
	}
}

func (r *reportRepository) SellerSalesSummary(ctx context.Context) ([]domain.SellerSalesSummary, error) {
	query := `
		SELECT seller_id, first_name, last_name, sales_count, total_revenue
		FROM v_sales_by_seller
		ORDER BY seller_id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("Failed to query seller sales summary", "error", err)
		return nil, classifyDBError(err, "failed to query seller sales summary")
	}
	defer rows.Close()

	var summaries []domain.SellerSalesSummary
	for rows.Next() {
		var row domain.SellerSalesSummary
		var revenueStr string

		if err := rows.Scan(&row.SellerID, &row.FirstName, &row.LastName, &row.SalesCount, &revenueStr); err != nil {
			return nil, errors.NewAppError(errors.InternalError, "failed to scan summary row").WithDetails(err.Error())
		}

		revenue, err := decimal.NewFromString(revenueStr)
		if err != nil {
			return nil, errors.NewAppError(errors.InternalError, "failed to parse revenue").WithDetails(err.Error())
		}
		row.TotalRevenue = revenue

		summaries = append(summaries, row)
	}

	if err := rows.Err(); err != nil {
		return nil, classifyDBError(err, "failed to query seller sales summary")
	}
	return summaries, nil
}
