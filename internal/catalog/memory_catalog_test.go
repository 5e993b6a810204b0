package catalog

import (
	"context"
	"testing"

	"github.com/fjod/go_shop/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_ReturnsProduct(t *testing.T) {
	sut := NewMemoryCatalog()
	ctx := context.Background()

	require.NoError(t, sut.Upsert(ctx, domain.Product{ID: "1", Name: "Product 1", Price: decimal.NewFromInt(10)}))

	p, err := sut.Get(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Product 1", p.Name)
	assert.True(t, p.Price.Equal(decimal.NewFromInt(10)))
}

func TestGet_NotFound(t *testing.T) {
	sut := NewMemoryCatalog()

	_, err := sut.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestList_InsertionOrder(t *testing.T) {
	sut := NewMemoryCatalog()
	ctx := context.Background()

	require.NoError(t, sut.Upsert(ctx, domain.Product{ID: "2", Name: "Product 2", Price: decimal.NewFromInt(20)}))
	require.NoError(t, sut.Upsert(ctx, domain.Product{ID: "1", Name: "Product 1", Price: decimal.NewFromInt(10)}))

	products, err := sut.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "2", products[0].ID)
	assert.Equal(t, "1", products[1].ID)
}

func TestSetPrice_UpdatesCatalogOnly(t *testing.T) {
	sut := NewMemoryCatalog()
	ctx := context.Background()

	require.NoError(t, sut.Upsert(ctx, domain.Product{ID: "1", Name: "Product 1", Price: decimal.NewFromInt(10)}))

	// Copy handed out before the price change must stay frozen
	before, err := sut.Get(ctx, "1")
	require.NoError(t, err)

	require.NoError(t, sut.SetPrice(ctx, "1", decimal.NewFromInt(20)))

	after, err := sut.Get(ctx, "1")
	require.NoError(t, err)
	assert.True(t, after.Price.Equal(decimal.NewFromInt(20)))
	assert.True(t, before.Price.Equal(decimal.NewFromInt(10)))
}

func TestSetPrice_NotFound(t *testing.T) {
	sut := NewMemoryCatalog()

	err := sut.SetPrice(context.Background(), "nope", decimal.NewFromInt(5))
	assert.ErrorIs(t, err, ErrProductNotFound)
}
