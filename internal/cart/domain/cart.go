package domain

import (
	"slices"

	"github.com/shopspring/decimal"
)

// ProductSnapshot carries the product fields captured at add-time. The cart
// keeps its own copy; a product later vanishing from the catalog does not
// invalidate the line item.
type ProductSnapshot struct {
	ID    int64
	Title string
	Price decimal.Decimal
	Image string
}

type LineItem struct {
	ProductID int64           `json:"id"`
	Title     string          `json:"title"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image"`
	Quantity  int             `json:"quantity"`
}

// Cart is an ordered sequence of line items, unique by product id. Every
// line item has quantity >= 1: an item never decrements to zero, it is
// removed wholesale.
type Cart struct {
	Items []LineItem
}

// Add increments the quantity of an existing line item, or appends a new
// one with quantity 1 from the given snapshot.
func (c *Cart) Add(p ProductSnapshot) {
	for i := range c.Items {
		if c.Items[i].ProductID == p.ID {
			c.Items[i].Quantity++
			return
		}
	}

	c.Items = append(c.Items, LineItem{
		ProductID: p.ID,
		Title:     p.Title,
		Price:     p.Price,
		Image:     p.Image,
		Quantity:  1,
	})
}

// Remove deletes the line item for productID. Removing an absent id is a
// no-op, not an error; the return reports whether anything was deleted.
func (c *Cart) Remove(productID int64) bool {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = slices.Delete(c.Items, i, i+1)
			return true
		}
	}
	return false
}

// Subtotal is the sum of price x quantity over all line items, rounded to
// two places for display.
func (c Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total.Round(2)
}

// TotalItems is the sum of all quantities.
func (c Cart) TotalItems() int {
	var n int
	for _, item := range c.Items {
		n += item.Quantity
	}
	return n
}

func (c Cart) Empty() bool {
	return len(c.Items) == 0
}

// Snapshot is an immutable copy of the cart state, sufficient for a renderer:
// ordered line items, display subtotal, total quantity, empty flag.
type Snapshot struct {
	Items      []LineItem
	Subtotal   decimal.Decimal
	TotalItems int
	Empty      bool
}

func (c Cart) Snapshot() Snapshot {
	return Snapshot{
		Items:      slices.Clone(c.Items),
		Subtotal:   c.Subtotal(),
		TotalItems: c.TotalItems(),
		Empty:      c.Empty(),
	}
}
