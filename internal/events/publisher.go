package events

import (
	"context"

	"github.com/fjod/go_shop/internal/domain"
)

// Publisher emits domain events for downstream consumers (fulfilment,
// notifications). Checkout never fails because of a publish error.
type Publisher interface {
	OrderPlaced(ctx context.Context, order *domain.Order) error
	Close() error
}

// NopPublisher discards all events. Used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) OrderPlaced(context.Context, *domain.Order) error { return nil }
func (NopPublisher) Close() error                                     { return nil }
