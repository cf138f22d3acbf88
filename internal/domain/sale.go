package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Sale is one trip purchase: a customer buying a destination package from a
// seller. TotalAmount is the only field mutated after creation, and only
// through the price-change path so every change lands in the audit trail.
type Sale struct {
	ID            int64           `json:"sale_id"`
	CustomerID    int64           `json:"customer_id"`
	SellerID      int64           `json:"seller_id"`
	DestinationID int64           `json:"destination_id"`
	SaleDate      time.Time       `json:"sale_date"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type SaleRepository interface {
	CreateSale(ctx context.Context, sale *Sale) error
	GetSale(ctx context.Context, id int64) (*Sale, error)
	// GetSaleForUpdate locks the sale row for the enclosing transaction,
	// serializing concurrent mutations of the same sale.
	GetSaleForUpdate(ctx context.Context, id int64) (*Sale, error)
	UpdateSaleAmount(ctx context.Context, id int64, newAmount decimal.Decimal) error
	ListSalesByCustomer(ctx context.Context, customerID int64) ([]Sale, error)
}
