package app

import (
	"fmt"
	"log/slog"

	"github.com/dwikikusuma/tamrin-store/internal/cart/domain"
)

// Service owns the in-memory cart and is the sole writer of the persisted
// slot. Every mutation is mirrored through the Store before the resulting
// event is handed back to the caller.
type Service struct {
	store Store
	cart  domain.Cart
	log   *slog.Logger
}

// NewService restores the cart from the store. A restore failure starts an
// empty cart; losing a cart is low-severity and never blocks startup.
func NewService(store Store, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}

	cart, err := store.Restore()
	if err != nil {
		log.Warn("cart restore failed, starting empty", slog.Any("err", err))
		cart = domain.Cart{}
	}

	return &Service{
		store: store,
		cart:  cart,
		log:   log,
	}
}

// Add puts one unit of the product in the cart, incrementing the quantity
// if a line item for it already exists. The mutation stands even when the
// persistence write fails; the error is reported for diagnostics only.
func (s *Service) Add(p domain.ProductSnapshot) (domain.Event, error) {
	s.cart.Add(p)

	event := domain.Event{
		Kind:      domain.EventItemAdded,
		ProductID: p.ID,
		Cart:      s.cart.Snapshot(),
	}

	return event, s.persist()
}

// Remove deletes the line item for productID wholesale. Absent ids are a
// no-op and skip the persistence write.
func (s *Service) Remove(productID int64) (domain.Event, error) {
	removed := s.cart.Remove(productID)

	event := domain.Event{
		Kind:      domain.EventItemRemoved,
		ProductID: productID,
		Cart:      s.cart.Snapshot(),
	}

	if !removed {
		return event, nil
	}

	return event, s.persist()
}

func (s *Service) Snapshot() domain.Snapshot {
	return s.cart.Snapshot()
}

func (s *Service) persist() error {
	if err := s.store.Save(s.cart); err != nil {
		s.log.Warn("cart save failed", slog.Any("err", err))
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}
