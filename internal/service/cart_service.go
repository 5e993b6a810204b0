package service

import (
	"context"
	"time"

	"github.com/fjod/go_shop/internal/catalog"
	"github.com/fjod/go_shop/internal/domain"
	"github.com/fjod/go_shop/internal/store"
)

type CartService struct {
	users   store.UserStore
	catalog catalog.Catalog
}

func NewCartService(users store.UserStore, cat catalog.Catalog) *CartService {
	return &CartService{
		users:   users,
		catalog: cat,
	}
}

// Add puts one unit of a product into the user's cart, freezing the
// product's current name and price into the line. Nothing is mutated when
// the user or product does not exist.
func (s *CartService) Add(ctx context.Context, userID, productID string) (domain.CartLine, error) {
	product, err := s.catalog.Get(ctx, productID)
	if err != nil {
		return domain.CartLine{}, err
	}

	line := domain.CartLine{
		ProductID:   product.ID,
		ProductName: product.Name,
		UnitPrice:   product.Price,
		AddedAt:     time.Now(),
	}

	if err := s.users.AppendToCart(ctx, userID, line); err != nil {
		return domain.CartLine{}, err
	}
	return line, nil
}

func (s *CartService) Get(ctx context.Context, userID string) ([]domain.CartLine, error) {
	return s.users.GetCart(ctx, userID)
}
