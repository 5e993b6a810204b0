package catalog

import (
	"context"
	"errors"

	"github.com/fjod/go_shop/internal/domain"
	"github.com/shopspring/decimal"
)

var ErrProductNotFound = errors.New("product not found")

// Catalog defines read access to the product catalog. Upsert and SetPrice
// exist for seeding and price administration; the shop core only reads.
type Catalog interface {
	Get(ctx context.Context, productID string) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
	Upsert(ctx context.Context, product domain.Product) error
	SetPrice(ctx context.Context, productID string, price decimal.Decimal) error
}
