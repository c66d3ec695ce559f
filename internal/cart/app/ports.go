package app

import "github.com/dwikikusuma/tamrin-store/internal/cart/domain"

// Store is the durable slot the cart is mirrored into on every mutation.
// Restore is forgiving: a missing or malformed slot yields an empty cart,
// never an error surfaced to the user.
type Store interface {
	Save(cart domain.Cart) error
	Restore() (domain.Cart, error)
}
