// Package services holds the application layer: validation at the entry
// boundary, recording to the ledger, and best-effort event publishing.
package services

import (
	"context"
	"fmt"
	"log/slog"

	"aether/internal/core"
	"aether/internal/ledger"
)

// EventPublisher is the broker contract. A nil publisher means events
// are disabled; recording still works.
type EventPublisher interface {
	PublishTransactionCreated(ctx context.Context, txn core.Transaction) error
	Close() error
}

// TransactionService orchestrates transaction recording across the
// ledger store and the event broker.
type TransactionService struct {
	store     *ledger.Store
	publisher EventPublisher
}

func NewTransactionService(store *ledger.Store, publisher EventPublisher) *TransactionService {
	return &TransactionService{
		store:     store,
		publisher: publisher,
	}
}

// Create validates the draft, records it and publishes a created event.
// The ledger append is the source of truth; a publish failure is logged
// and never fails the request.
func (s *TransactionService) Create(ctx context.Context, d core.Draft) (core.Transaction, error) {
	if err := d.Validate(); err != nil {
		return core.Transaction{}, fmt.Errorf("validate transaction: %w", err)
	}

	txn := s.store.Append(d)

	if err := s.publishCreated(ctx, txn); err != nil {
		slog.ErrorContext(ctx, "Failed to publish transaction created event",
			"id", txn.ID, "error", err)
		// Don't fail the request - the transaction is recorded
	}

	return txn, nil
}

func (s *TransactionService) publishCreated(ctx context.Context, txn core.Transaction) error {
	if s.publisher == nil {
		return nil
	}
	return s.publisher.PublishTransactionCreated(ctx, txn)
}

// Close releases the broker connection, if any.
func (s *TransactionService) Close() error {
	if s.publisher != nil {
		if err := s.publisher.Close(); err != nil {
			return fmt.Errorf("close publisher: %w", err)
		}
	}
	return nil
}
