package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"travel-bookings/internal/domain"
	"travel-bookings/internal/errors"
)

type saleRepository struct {
	db     SQLExecutor
	logger *slog.Logger
}

func NewSaleRepository(db SQLExecutor, logger *slog.Logger) domain.SaleRepository {
	return &saleRepository{
		db:     db,
		logger: logger,
	}
}

func (r *saleRepository) CreateSale(ctx context.Context, sale *domain.Sale) error {
	query := `
		INSERT INTO sales (customer_id, seller_id, destination_id, sale_date, total_amount, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	now := time.Now()
	err := r.db.QueryRowContext(
		ctx,
		query,
		sale.CustomerID,
		sale.SellerID,
		sale.DestinationID,
		sale.SaleDate,
		sale.TotalAmount.String(),
		now,
		now,
	).Scan(&sale.ID)

	if err != nil {
		r.logger.Error("Failed to create sale",
			"customer_id", sale.CustomerID,
			"seller_id", sale.SellerID,
			"destination_id", sale.DestinationID,
			"error", err)
		return classifyDBError(err, "failed to create sale")
	}

	sale.CreatedAt = now
	sale.UpdatedAt = now
	r.logger.Info("Sale created successfully", "sale_id", sale.ID)
	return nil
}

func (r *saleRepository) GetSale(ctx context.Context, id int64) (*domain.Sale, error) {
	query := `
		SELECT id, customer_id, seller_id, destination_id, sale_date, total_amount, created_at, updated_at
		FROM sales WHERE id = $1
	`

	return r.scanSale(ctx, query, id)
}

func (r *saleRepository) GetSaleForUpdate(ctx context.Context, id int64) (*domain.Sale, error) {
	query := `
		SELECT id, customer_id, seller_id, destination_id, sale_date, total_amount, created_at, updated_at
		FROM sales WHERE id = $1 FOR UPDATE
	`

	return r.scanSale(ctx, query, id)
}

func (r *saleRepository) scanSale(ctx context.Context, query string, id int64) (*domain.Sale, error) {
	var sale domain.Sale
	var amountStr string

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&sale.ID,
		&sale.CustomerID,
		&sale.SellerID,
		&sale.DestinationID,
		&sale.SaleDate,
		&amountStr,
		&sale.CreatedAt,
		&sale.UpdatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			r.logger.Warn("Sale not found", "sale_id", id)
			return nil, errors.ErrSaleNotFound
		}
		r.logger.Error("Failed to get sale", "sale_id", id, "error", err)
		return nil, classifyDBError(err, "failed to get sale")
	}

	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		r.logger.Error("Failed to parse total amount", "sale_id", id, "amount_str", amountStr, "error", err)
		return nil, errors.NewAppError(errors.InternalError, "failed to parse total amount").WithDetails(err.Error())
	}

	sale.TotalAmount = amount
	return &sale, nil
}

func (r *saleRepository) UpdateSaleAmount(ctx context.Context, id int64, newAmount decimal.Decimal) error {
	query := `
		UPDATE sales
		SET total_amount = $1, updated_at = $2
		WHERE id = $3
	`

	result, err := r.db.ExecContext(ctx, query, newAmount.String(), time.Now(), id)
	if err != nil {
		r.logger.Error("Failed to update sale amount", "sale_id", id, "error", err)
		return classifyDBError(err, "failed to update sale amount")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return errors.NewAppError(errors.InternalError, "failed to get rows affected").WithDetails(err.Error())
	}

	if rowsAffected == 0 {
		r.logger.Warn("No sale found to update", "sale_id", id)
		return errors.ErrSaleNotFound
	}

	r.logger.Info("Sale amount updated", "sale_id", id, "new_amount", newAmount)
	return nil
}

func (r *saleRepository) ListSalesByCustomer(ctx context.Context, customerID int64) ([]domain.Sale, error) {
	query := `
		SELECT id, customer_id, seller_id, destination_id, sale_date, total_amount, created_at, updated_at
		FROM sales WHERE customer_id = $1
		ORDER BY sale_date, id
	`

	rows, err := r.db.QueryContext(ctx, query, customerID)
	if err != nil {
		r.logger.Error("Failed to list sales by customer", "customer_id", customerID, "error", err)
		return nil, classifyDBError(err, "failed to list sales")
	}
	defer rows.Close()

	var sales []domain.Sale
	for rows.Next() {
		var sale domain.Sale
		var amountStr string

		if err := rows.Scan(
			&sale.ID,
			&sale.CustomerID,
			&sale.SellerID,
			&sale.DestinationID,
			&sale.SaleDate,
			&amountStr,
			&sale.CreatedAt,
			&sale.UpdatedAt,
		); err != nil {
			return nil, errors.NewAppError(errors.InternalError, "failed to scan sale").WithDetails(err.Error())
		}

		amount, err := decimal.NewFromString(amountStr)
		if err != nil {
			return nil, errors.NewAppError(errors.InternalError, "failed to parse total amount").WithDetails(err.Error())
		}
		sale.TotalAmount = amount

		sales = append(sales, sale)
	}

	if err := rows.Err(); err != nil {
		return nil, classifyDBError(err, "failed to list sales")
	}
	return sales, nil
}
