package domain

import "slices"

type SortKey int

const (
	// SortDefault keeps the catalog's insertion order.
	SortDefault SortKey = iota
	SortPriceAscending
	SortPriceDescending
	SortRatingDescending
)

func (k SortKey) String() string {
	switch k {
	case SortPriceAscending:
		return "price: low to high"
	case SortPriceDescending:
		return "price: high to low"
	case SortRatingDescending:
		return "rating"
	default:
		return "default"
	}
}

// Sort returns a reordered copy of products. The input is never mutated and
// ties keep their original relative order.
func Sort(products []Product, key SortKey) []Product {
	out := slices.Clone(products)

	switch key {
	case SortPriceAscending:
		slices.SortStableFunc(out, func(a, b Product) int {
			return a.Price.Cmp(b.Price)
		})
	case SortPriceDescending:
		slices.SortStableFunc(out, func(a, b Product) int {
			return b.Price.Cmp(a.Price)
		})
	case SortRatingDescending:
		slices.SortStableFunc(out, func(a, b Product) int {
			switch {
			case b.Rating.Rate > a.Rating.Rate:
				return 1
			case b.Rating.Rate < a.Rating.Rate:
				return -1
			default:
				return 0
			}
		})
	}

	return out
}

// FilterByCategory returns the products matching category, in their original
// order. An empty category matches everything.
func FilterByCategory(products []Product, category string) []Product {
	if category == "" {
		return slices.Clone(products)
	}

	out := make([]Product, 0, len(products))
	for _, p := range products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}
