package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dwikikusuma/tamrin-store/internal/catalog/domain"
	"golang.org/x/sync/errgroup"
)

// ErrCatalogUnavailable classifies any failure to load the catalog: transport
// errors and non-2xx responses alike. The caller displays it; there is no
// automatic retry.
var ErrCatalogUnavailable = errors.New("catalog unavailable")

type Service struct {
	source ProductSource
	limit  int
	log    *slog.Logger
}

func NewService(source ProductSource, limit int, log *slog.Logger) *Service {
	if limit <= 0 {
		limit = 10
	}
	if log == nil {
		log = slog.Default()
	}

	return &Service{
		source: source,
		limit:  limit,
		log:    log,
	}
}

// Load fetches one bounded page of products together with the category list.
// The two requests run concurrently; if either fails the whole load fails.
func (s *Service) Load(ctx context.Context) (domain.Catalog, error) {
	var (
		products   []domain.Product
		categories []string
	)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		products, err = s.source.ListProducts(ctx, s.limit)
		if err != nil {
			return fmt.Errorf("list products: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		categories, err = s.source.ListCategories(ctx)
		if err != nil {
			return fmt.Errorf("list categories: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		s.log.Warn("catalog load failed", slog.Any("err", err))
		return domain.Catalog{}, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}

	s.log.Info("catalog loaded",
		slog.Int("products", len(products)),
		slog.Int("categories", len(categories)),
	)

	return domain.Catalog{
		Products:   products,
		Categories: categories,
	}, nil
}
