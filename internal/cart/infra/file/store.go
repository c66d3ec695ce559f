// Package file persists the cart as a single JSON document on disk, the
// terminal analogue of a browser's local-storage slot.
package file

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dwikikusuma/tamrin-store/internal/cart/domain"
)

type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Save overwrites the slot with the full line-item sequence. The write goes
// through a temp file and a rename so a reader never observes a partial
// document.
func (s *Store) Save(cart domain.Cart) error {
	data, err := json.Marshal(cart.Items)
	if err != nil {
		return fmt.Errorf("marshal cart: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), "cart-*.json")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("rename: %w", err)
	}

	return nil
}

// Restore reads the slot back. A missing file, unreadable JSON or a stored
// shape violating the cart invariants all yield an empty cart: malformed
// state is treated as no prior cart, not an error.
func (s *Store) Restore() (domain.Cart, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.Cart{}, nil
		}
		return domain.Cart{}, fmt.Errorf("read %s: %w", s.path, err)
	}

	var items []domain.LineItem
	if err := json.Unmarshal(data, &items); err != nil {
		return domain.Cart{}, nil
	}

	for _, item := range items {
		if item.ProductID == 0 || item.Quantity < 1 {
			return domain.Cart{}, nil
		}
	}

	return domain.Cart{Items: items}, nil
}
