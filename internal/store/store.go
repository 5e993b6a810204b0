package store

import (
	"context"
	"errors"

	"github.com/fjod/go_shop/internal/domain"
)

// Common errors returned by the store
var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already registered")
)

// UserStore defines the interface for user account and cart storage.
// Consumers define this interface, not the in-memory implementation.
//
// Cart operations on the same user are strictly serialized by the
// implementation; operations on different users never block each other.
type UserStore interface {
	CreateUser(ctx context.Context, user *domain.User) error
	GetUser(ctx context.Context, userID string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)

	AppendToCart(ctx context.Context, userID string, line domain.CartLine) error
	GetCart(ctx context.Context, userID string) ([]domain.CartLine, error)

	// DrainCart returns the current cart contents and empties the cart as one
	// indivisible step. A concurrent AppendToCart either lands before the
	// drain (and is returned here) or after it (and stays in the cart) —
	// never both, never neither.
	DrainCart(ctx context.Context, userID string) ([]domain.CartLine, error)

	// RestoreCart puts drained lines back at the front of the cart. Used to
	// compensate a checkout whose ledger append failed.
	RestoreCart(ctx context.Context, userID string, lines []domain.CartLine) error
}
