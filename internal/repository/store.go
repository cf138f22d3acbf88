package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"travel-bookings/internal/domain"
	"travel-bookings/internal/errors"
)

// Store provides a unified interface for all repository operations with transaction support
type Store struct {
	executor SQLExecutor
	logger   *slog.Logger
}

// NewStore creates a new Store instance
func NewStore(db *sql.DB, logger *slog.Logger) *Store {
	return &Store{
		executor: db,
		logger:   logger,
	}
}

// Sales returns a SaleRepository using the current executor
func (s *Store) Sales() domain.SaleRepository {
	return NewSaleRepository(s.executor, s.logger)
}

// Destinations returns a DestinationRepository using the current executor
func (s *Store) Destinations() domain.DestinationRepository {
	return NewDestinationRepository(s.executor, s.logger)
}

// Transport returns a TransportRepository using the current executor
func (s *Store) Transport() domain.TransportRepository {
	return NewTransportRepository(s.executor, s.logger)
}

// Itinerary returns an ItineraryRepository using the current executor
func (s *Store) Itinerary() domain.ItineraryRepository {
	return NewItineraryRepository(s.executor, s.logger)
}

// PriceHistory returns a PriceHistoryRepository using the current executor
func (s *Store) PriceHistory() domain.PriceHistoryRepository {
	return NewPriceHistoryRepository(s.executor, s.logger)
}

// Reports returns a ReportRepository using the current executor
func (s *Store) Reports() domain.ReportRepository {
	return NewReportRepository(s.executor, s.logger)
}

// WithTransaction executes a function within a database transaction. A
// non-nil error from fn rolls everything back; the commit is only reached
// when fn succeeds.
func (s *Store) WithTransaction(ctx context.Context, fn func(*Store) error) error {
	// Only sql.DB can begin transactions
	db, ok := s.executor.(DB)
	if !ok {
		return errors.NewAppError(errors.InternalError, "nested transactions are not supported")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return classifyDBError(err, "failed to begin transaction")
	}

	txStore := &Store{
		executor: &TxWrapper{Tx: tx},
		logger:   s.logger,
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(txStore); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return classifyDBError(err, "failed to commit transaction")
	}
	return nil
}
