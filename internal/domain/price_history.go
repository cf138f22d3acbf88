package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// SalePriceHistory is one immutable audit record of a sale amount change.
// Rows are append-only, never updated or deleted, and always attributed to
// the seller who performed the change.
type SalePriceHistory struct {
	ID                int64           `json:"history_id"`
	SaleID            int64           `json:"sale_id"`
	OldAmount         decimal.Decimal `json:"old_amount"`
	NewAmount         decimal.Decimal `json:"new_amount"`
	ChangeDate        time.Time       `json:"change_date"`
	ChangedBySellerID int64           `json:"changed_by_seller_id"`
}

type PriceHistoryRepository interface {
	RecordPriceChange(ctx context.Context, record *SalePriceHistory) error
	ListBySale(ctx context.Context, saleID int64) ([]SalePriceHistory, error)
}
