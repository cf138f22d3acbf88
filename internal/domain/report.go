package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// SellerSalesSummary is one row of the per-seller sales report.
type SellerSalesSummary struct {
	SellerID     int64           `json:"seller_id"`
	FirstName    string          `json:"first_name"`
	LastName     string          `json:"last_name"`
	SalesCount   int64           `json:"sales_count"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

type ReportRepository interface {
	SellerSalesSummary(ctx context.Context) ([]SellerSalesSummary, error)
}
