package adapter

import (
	cartapp "github.com/dwikikusuma/tamrin-store/internal/cart/app"
	checkoutapp "github.com/dwikikusuma/tamrin-store/internal/checkout/app"
)

type CartServiceReader struct {
	svc *cartapp.Service
}

func NewCartServiceReader(svc *cartapp.Service) *CartServiceReader {
	return &CartServiceReader{svc: svc}
}

func (r *CartServiceReader) Items() []checkoutapp.CartLine {
	snapshot := r.svc.Snapshot()

	lines := make([]checkoutapp.CartLine, 0, len(snapshot.Items))
	for _, it := range snapshot.Items {
		lines = append(lines, checkoutapp.CartLine{
			ProductID: it.ProductID,
			Title:     it.Title,
			UnitPrice: it.Price,
			Quantity:  it.Quantity,
		})
	}
	return lines
}
