package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"travel-bookings/internal/domain"
	"travel-bookings/internal/errors"
	"travel-bookings/internal/repository"
	"travel-bookings/internal/validation"
)

// SaleService owns sale creation and the price-change path. ChangeSalePrice
// is the only way a sale's total amount moves after creation.
type SaleService struct {
	store     *repository.Store
	opTimeout time.Duration
	logger    *slog.Logger
}

func NewSaleService(store *repository.Store, opTimeout time.Duration, logger *slog.Logger) *SaleService {
	return &SaleService{
		store:     store,
		opTimeout: opTimeout,
		logger:    logger,
	}
}

type CreateSaleRequest struct {
	CustomerID    int64
	SellerID      int64
	DestinationID int64
	SaleDate      time.Time
	TotalAmount   decimal.Decimal
}

func (s *SaleService) CreateSale(ctx context.Context, req *CreateSaleRequest) (*domain.Sale, error) {
	s.logger.Info("Creating sale",
		"customer_id", req.CustomerID,
		"seller_id", req.SellerID,
		"destination_id", req.DestinationID,
		"total_amount", req.TotalAmount)

	if !validation.IsNonNegative(req.TotalAmount) {
		return nil, errors.ErrNegativeTotal
	}
	if req.SaleDate.After(endOfToday()) {
		return nil, errors.NewAppError(errors.ConstraintViolation, "sale date cannot be in the future")
	}

	ctx, cancel := context.WithTimeout(ctx, s.opTimeout)
	defer cancel()

	// Referential integrity for customer/seller/destination is the store's
	// foreign keys; a violation surfaces as NotFound.
	sale := &domain.Sale{
		CustomerID:    req.CustomerID,
		SellerID:      req.SellerID,
		DestinationID: req.DestinationID,
		SaleDate:      req.SaleDate,
		TotalAmount:   req.TotalAmount,
	}

	if err := s.store.Sales().CreateSale(ctx, sale); err != nil {
		return nil, err
	}

	return sale, nil
}

func (s *SaleService) GetSale(ctx context.Context, saleID int64) (*domain.Sale, error) {
	ctx, cancel := context.WithTimeout(ctx, s.opTimeout)
	defer cancel()

	return s.store.Sales().GetSale(ctx, saleID)
}

// ChangeSalePrice adds delta (possibly negative) to the sale's total amount,
// attributing the change to actingSellerID. The locked read, the
// non-negativity check, the update and the audit append are one transaction;
// any failure rolls the whole thing back. A delta that leaves the amount
// unchanged commits nothing and appends no history.
func (s *SaleService) ChangeSalePrice(ctx context.Context, saleID int64, delta decimal.Decimal, actingSellerID int64) (*domain.Sale, error) {
	s.logger.Info("Processing price change",
		"sale_id", saleID,
		"amount_delta", delta,
		"acting_seller_id", actingSellerID)

	// The audit attribution column is non-nullable; without an actor the
	// amount must not move at all.
	if actingSellerID <= 0 {
		return nil, errors.ErrMissingActor
	}

	ctx, cancel := context.WithTimeout(ctx, s.opTimeout)
	defer cancel()

	var updated *domain.Sale
	err := s.store.WithTransaction(ctx, func(txStore *repository.Store) error {
		sale, err := txStore.Sales().GetSaleForUpdate(ctx, saleID)
		if err != nil {
			return err
		}

		oldAmount := sale.TotalAmount
		newAmount := oldAmount.Add(delta)

		if !validation.IsNonNegative(newAmount) {
			s.logger.Warn("Price change would make total negative",
				"sale_id", saleID, "old_amount", oldAmount, "amount_delta", delta)
			return errors.ErrNegativeTotal
		}

		if newAmount.Equal(oldAmount) {
			updated = sale
			return nil
		}

		if err := txStore.Sales().UpdateSaleAmount(ctx, saleID, newAmount); err != nil {
			return err
		}

		record := &domain.SalePriceHistory{
			SaleID:            saleID,
			OldAmount:         oldAmount,
			NewAmount:         newAmount,
			ChangedBySellerID: actingSellerID,
		}
		if err := txStore.PriceHistory().RecordPriceChange(ctx, record); err != nil {
			return err
		}

		sale.TotalAmount = newAmount
		updated = sale
		return nil
	})

	if err != nil {
		s.logger.Error("Price change failed", "sale_id", saleID, "error", err)
		return nil, err
	}

	s.logger.Info("Price change completed",
		"sale_id", saleID, "new_amount", updated.TotalAmount)
	return updated, nil
}

func (s *SaleService) ListPriceHistory(ctx context.Context, saleID int64) ([]domain.SalePriceHistory, error) {
	ctx, cancel := context.WithTimeout(ctx, s.opTimeout)
	defer cancel()

	// Missing sales surface as NotFound rather than an empty history.
	if _, err := s.store.Sales().GetSale(ctx, saleID); err != nil {
		return nil, err
	}
	return s.store.PriceHistory().ListBySale(ctx, saleID)
}

func (s *SaleService) ListSalesByCustomer(ctx context.Context, customerID int64) ([]domain.Sale, error) {
	ctx, cancel := context.WithTimeout(ctx, s.opTimeout)
	defer cancel()

	return s.store.Sales().ListSalesByCustomer(ctx, customerID)
}

func (s *SaleService) SellerSalesSummary(ctx context.Context) ([]domain.SellerSalesSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, s.opTimeout)
	defer cancel()

	return s.store.Reports().SellerSalesSummary(ctx)
}

func endOfToday() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, now.Location())
}
