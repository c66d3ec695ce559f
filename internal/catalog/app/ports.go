package app

import (
	"context"

	"github.com/dwikikusuma/tamrin-store/internal/catalog/domain"
)

type ProductSource interface {
	ListProducts(ctx context.Context, limit int) ([]domain.Product, error)
	ListCategories(ctx context.Context) ([]string, error)
}
