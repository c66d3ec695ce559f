package app

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwikikusuma/tamrin-store/internal/catalog/domain"
)

type fakeSource struct {
	products   []domain.Product
	categories []string

	productsErr   error
	categoriesErr error

	gotLimit int
}

func (f *fakeSource) ListProducts(ctx context.Context, limit int) ([]domain.Product, error) {
	f.gotLimit = limit
	return f.products, f.productsErr
}

func (f *fakeSource) ListCategories(ctx context.Context) ([]string, error) {
	return f.categories, f.categoriesErr
}

func TestServiceLoad(t *testing.T) {
	t.Run("returns products and categories", func(t *testing.T) {
		source := &fakeSource{
			products: []domain.Product{
				{ID: 1, Title: "Backpack", Price: decimal.RequireFromString("109.95")},
			},
			categories: []string{"electronics", "jewelery"},
		}
		svc := NewService(source, 10, nil)

		catalog, err := svc.Load(context.Background())
		require.NoError(t, err)

		assert.Len(t, catalog.Products, 1)
		assert.Equal(t, []string{"electronics", "jewelery"}, catalog.Categories)
		assert.Equal(t, 10, source.gotLimit)
	})

	t.Run("source failure classifies as catalog unavailable", func(t *testing.T) {
		source := &fakeSource{productsErr: errors.New("connection refused")}
		svc := NewService(source, 10, nil)

		_, err := svc.Load(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrCatalogUnavailable)
	})

	t.Run("category failure also fails the load", func(t *testing.T) {
		source := &fakeSource{categoriesErr: errors.New("boom")}
		svc := NewService(source, 10, nil)

		_, err := svc.Load(context.Background())
		assert.ErrorIs(t, err, ErrCatalogUnavailable)
	})

	t.Run("non-positive limit falls back to default", func(t *testing.T) {
		source := &fakeSource{}
		svc := NewService(source, 0, nil)

		_, err := svc.Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 10, source.gotLimit)
	})
}
