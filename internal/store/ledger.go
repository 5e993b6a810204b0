package store

import (
	"context"

	"github.com/fjod/go_shop/internal/domain"
)

// OrderLedger is the append-only record of placed orders.
//
// Append allocates the next identifier and stores the order as one atomic
// step, so identifiers come out strictly increasing with no gaps: a checkout
// that never reaches Append never consumes an identifier, and an Append that
// fails must not have consumed one either.
type OrderLedger interface {
	Append(ctx context.Context, order *domain.Order) (string, error)
	List(ctx context.Context) ([]*domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Order, error)
}
