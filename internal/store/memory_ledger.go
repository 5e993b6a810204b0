package store

import (
	"context"
	"strconv"
	"sync"

	"github.com/fjod/go_shop/internal/domain"
)

// MemoryLedger implements OrderLedger with in-memory storage. Identifiers
// are decimal strings starting at "1". List returns orders oldest first.
type MemoryLedger struct {
	mu     sync.Mutex
	nextID int64
	orders []*domain.Order
}

func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{nextID: 1}
}

func (l *MemoryLedger) Append(_ context.Context, order *domain.Order) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	id := strconv.FormatInt(l.nextID, 10)
	l.nextID++

	stored := *order
	stored.ID = id
	stored.Lines = copyLines(order.Lines)
	l.orders = append(l.orders, &stored)

	return id, nil
}

func (l *MemoryLedger) List(_ context.Context) ([]*domain.Order, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	result := make([]*domain.Order, 0, len(l.orders))
	for _, o := range l.orders {
		result = append(result, copyOrder(o))
	}
	return result, nil
}

func (l *MemoryLedger) ListByUser(_ context.Context, userID string) ([]*domain.Order, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var result []*domain.Order
	for _, o := range l.orders {
		if o.UserID == userID {
			result = append(result, copyOrder(o))
		}
	}
	return result, nil
}

func copyOrder(o *domain.Order) *domain.Order {
	cp := *o
	cp.Lines = copyLines(o.Lines)
	return &cp
}
