package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/fjod/go_shop/internal/domain"
	"github.com/fjod/go_shop/internal/events"
	"github.com/fjod/go_shop/internal/store"
	"github.com/shopspring/decimal"
)

var ErrEmptyCart = errors.New("cart is empty, nothing to checkout")

type OrderService struct {
	users     store.UserStore
	ledger    store.OrderLedger
	publisher events.Publisher
}

func NewOrderService(users store.UserStore, ledger store.OrderLedger, publisher events.Publisher) *OrderService {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &OrderService{
		users:     users,
		ledger:    ledger,
		publisher: publisher,
	}
}

// Checkout converts the user's cart into an order.
//
// The drain is the atomic boundary: every line added before it lands in this
// order, every line added after it stays in the cart. The ledger allocates
// the order identifier only after the empty-cart check, so rejected
// checkouts never consume one. If the ledger append fails the drained lines
// are put back, leaving the caller with an all-or-nothing outcome.
func (s *OrderService) Checkout(ctx context.Context, userID string) (*domain.Order, error) {
	lines, err := s.users.DrainCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.UnitPrice)
	}

	order := &domain.Order{
		UserID:    userID,
		Lines:     lines,
		Total:     total,
		CreatedAt: time.Now(),
	}

	id, err := s.ledger.Append(ctx, order)
	if err != nil {
		// The compensation must finish even if the caller is gone, or the
		// drained lines are lost.
		if restoreErr := s.users.RestoreCart(context.WithoutCancel(ctx), userID, lines); restoreErr != nil {
			log.Printf("restore cart for user %s failed: %v", userID, restoreErr)
		}
		return nil, fmt.Errorf("append order to ledger: %w", err)
	}
	order.ID = id

	if pubErr := s.publisher.OrderPlaced(ctx, order); pubErr != nil {
		log.Printf("publish order placed event: %v", pubErr)
	}

	return order, nil
}

// Orders returns the user's placed orders, oldest first.
func (s *OrderService) Orders(ctx context.Context, userID string) ([]*domain.Order, error) {
	if _, err := s.users.GetUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.ledger.ListByUser(ctx, userID)
}

// AllOrders returns the full ledger, oldest first.
func (s *OrderService) AllOrders(ctx context.Context) ([]*domain.Order, error) {
	return s.ledger.List(ctx)
}
