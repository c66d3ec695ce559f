package app

import (
	"errors"
	"log/slog"
	"time"

	"github.com/dwikikusuma/tamrin-store/internal/checkout/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrEmptyCart = errors.New("cart is empty")

type CartReader interface {
	Items() []CartLine
}

type CartLine struct {
	ProductID int64
	Title     string
	UnitPrice decimal.Decimal
	Quantity  int
}

type Service struct {
	cart CartReader
	log  *slog.Logger
	now  func() time.Time
}

func NewService(cart CartReader, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}

	return &Service{
		cart: cart,
		log:  log,
		now:  time.Now,
	}
}

// PlaceOrder validates the cart and builds a receipt. An empty cart fails
// with ErrEmptyCart, which the caller surfaces as a blocking warning rather
// than a crash. On success nothing is submitted anywhere; the receipt is the
// whole outcome.
func (s *Service) PlaceOrder() (domain.Receipt, error) {
	items := s.cart.Items()
	if len(items) == 0 {
		return domain.Receipt{}, ErrEmptyCart
	}

	lines := make([]domain.ReceiptLine, 0, len(items))
	subtotal := decimal.Zero
	totalItems := 0

	for _, it := range items {
		lineTotal := it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
		lines = append(lines, domain.ReceiptLine{
			ProductID: it.ProductID,
			Title:     it.Title,
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
			LineTotal: lineTotal,
		})
		subtotal = subtotal.Add(lineTotal)
		totalItems += it.Quantity
	}

	receipt := domain.Receipt{
		OrderID:    uuid.NewString(),
		Lines:      lines,
		Subtotal:   subtotal.Round(2),
		TotalItems: totalItems,
		CreatedAt:  s.now(),
	}

	s.log.Info("order placed",
		slog.String("order_id", receipt.OrderID),
		slog.Int("items", receipt.TotalItems),
		slog.String("subtotal", receipt.Subtotal.StringFixed(2)),
	)

	return receipt, nil
}
