package domain

import "github.com/shopspring/decimal"

// titleDisplayLimit is the maximum number of characters shown for a
// product title before it is truncated with an ellipsis.
const titleDisplayLimit = 50

type Rating struct {
	Rate  float64
	Count int
}

type Product struct {
	ID       int64
	Title    string
	Price    decimal.Decimal
	Image    string
	Category string
	Rating   Rating
}

// DisplayTitle returns the title truncated for grid display. Truncation is
// a presentation transform only; the stored title is never shortened.
func (p Product) DisplayTitle() string {
	r := []rune(p.Title)
	if len(r) <= titleDisplayLimit {
		return p.Title
	}
	return string(r[:titleDisplayLimit-3]) + "..."
}

// Catalog is the result of one load: a bounded page of products plus the
// category list. Read-only after load.
type Catalog struct {
	Products   []Product
	Categories []string
}
