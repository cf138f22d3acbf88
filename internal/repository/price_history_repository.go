package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"travel-bookings/internal/domain"
	"travel-bookings/internal/errors"
)

type priceHistoryRepository struct {
	db     SQLExecutor
	logger *slog.Logger
}

func NewPriceHistoryRepository(db SQLExecutor, logger *slog.Logger) domain.PriceHistoryRepository {
	return &priceHistoryRepository{
		db:     db,
		logger: logger,
	}
}

// RecordPriceChange appends one audit row. The change_date is assigned here,
// not by the caller, and the row is never touched again.
func (r *priceHistoryRepository) RecordPriceChange(ctx context.Context, record *domain.SalePriceHistory) error {
	query := `
		INSERT INTO sale_price_history (sale_id, old_amount, new_amount, change_date, changed_by_seller_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	record.ChangeDate = time.Now()
	err := r.db.QueryRowContext(
		ctx,
		query,
		record.SaleID,
		record.OldAmount.String(),
		record.NewAmount.String(),
		record.ChangeDate,
		record.ChangedBySellerID,
	).Scan(&record.ID)

	if err != nil {
		r.logger.Error("Failed to record price change",
			"sale_id", record.SaleID,
			"changed_by_seller_id", record.ChangedBySellerID,
			"error", err)
		return classifyDBError(err, "failed to record price change")
	}

	r.logger.Info("Price change recorded",
		"history_id", record.ID,
		"sale_id", record.SaleID,
		"old_amount", record.OldAmount,
		"new_amount", record.NewAmount,
		"changed_by_seller_id", record.ChangedBySellerID)
	return nil
}

func (r *priceHistoryRepository) ListBySale(ctx context.Context, saleID int64) ([]domain.SalePriceHistory, error) {
	query := `
		SELECT id, sale_id, old_amount, new_amount, change_date, changed_by_seller_id
		FROM sale_price_history WHERE sale_id = $1
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, saleID)
	if err != nil {
		r.logger.Error("Failed to list price history", "sale_id", saleID, "error", err)
		return nil, classifyDBError(err, "failed to list price history")
	}
	defer rows.Close()

	var records []domain.SalePriceHistory
	for rows.Next() {
		var record domain.SalePriceHistory
		var oldStr, newStr string

		if err := rows.Scan(
			&record.ID,
			&record.SaleID,
			&oldStr,
			&newStr,
			&record.ChangeDate,
			&record.ChangedBySellerID,
		); err != nil {
			return nil, errors.NewAppError(errors.InternalError, "failed to scan history row").WithDetails(err.Error())
		}

		oldAmount, err := decimal.NewFromString(oldStr)
		if err != nil {
			return nil, errors.NewAppError(errors.InternalError, "failed to parse old amount").WithDetails(err.Error())
		}
		newAmount, err := decimal.NewFromString(newStr)
		if err != nil {
			return nil, errors.NewAppError(errors.InternalError, "failed to parse new amount").WithDetails(err.Error())
		}
		record.OldAmount = oldAmount
		record.NewAmount = newAmount

		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, classifyDBError(err, "failed to list price history")
	}
	return records, nil
}
