package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ReceiptLine struct {
	ProductID int64
	Title     string
	UnitPrice decimal.Decimal
	Quantity  int
	LineTotal decimal.Decimal
}

// Receipt is the terminal outcome of a checkout. Nothing downstream consumes
// it; there is no payment or order system behind this storefront.
type Receipt struct {
	OrderID    string
	Lines      []ReceiptLine
	Subtotal   decimal.Decimal
	TotalItems int
	CreatedAt  time.Time
}
