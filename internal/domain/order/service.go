package order

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"

	"github.com/Mazdaratti/bestbuy/internal/domain/store"
)

// ErrEmptyCart is returned when an order is placed with no lines.
var ErrEmptyCart = errors.New("cart is empty")

// Service encapsulates order placement: it commits a batch against the
// store and records a receipt for batches that went through in full.
type Service struct {
	store  *store.Store
	ledger Ledger
	now    func() time.Time
}

// NewService creates an order Service over the given store and ledger.
func NewService(s *store.Store, ledger Ledger) *Service {
	return &Service{store: s, ledger: ledger, now: time.Now}
}

// PlaceOrder commits the batch and returns its receipt.
//
// Store errors pass through unwrapped so callers can match the domain
// error types directly. The store's no-rollback contract applies: when a
// line fails, earlier lines stay bought, no receipt is recorded, and the
// first error is returned.
func (s *Service) PlaceOrder(ctx context.Context, lines []store.Line) (*Receipt, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	total, err := s.store.Order(lines)
	if err != nil {
		return nil, err
	}

	r := &Receipt{
		ID:        uuid.New().String(),
		Lines:     lines,
		Total:     total,
		CreatedAt: s.now(),
	}
	if err := s.ledger.Record(ctx, r); err != nil {
		return nil, errors.Wrap(err, "record receipt")
	}

	return r, nil
}
