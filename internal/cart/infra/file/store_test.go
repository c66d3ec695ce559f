package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwikikusuma/tamrin-store/internal/cart/domain"
)

// decimals compare by value, not by internal exponent representation.
var decimalComparer = cmp.Comparer(func(a, b decimal.Decimal) bool {
	return a.Equal(b)
})

func testCart() domain.Cart {
	return domain.Cart{Items: []domain.LineItem{
		{ProductID: 1, Title: "Fjallraven Backpack", Price: decimal.RequireFromString("109.95"), Image: "https://img/1.jpg", Quantity: 2},
		{ProductID: 9, Title: "WD 2TB Elements", Price: decimal.RequireFromString("64.00"), Image: "https://img/9.jpg", Quantity: 1},
	}}
}

func TestStoreRoundTrip(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "cart.json"))

	want := testCart()
	require.NoError(t, store.Save(want))

	got, err := store.Restore()
	require.NoError(t, err)

	if diff := cmp.Diff(want, got, decimalComparer); diff != "" {
		t.Fatalf("cart mismatch (-want +got):\n%s", diff)
	}
}

func TestStoreRestore(t *testing.T) {
	t.Run("missing slot yields empty cart", func(t *testing.T) {
		store := NewStore(filepath.Join(t.TempDir(), "cart.json"))

		cart, err := store.Restore()
		require.NoError(t, err)
		assert.True(t, cart.Empty())
	})

	t.Run("malformed JSON yields empty cart", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cart.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"not":"a cart"`), 0o644))

		cart, err := NewStore(path).Restore()
		require.NoError(t, err)
		assert.True(t, cart.Empty())
	})

	t.Run("wrong shape yields empty cart", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cart.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"id":1,"quantity":2}`), 0o644))

		cart, err := NewStore(path).Restore()
		require.NoError(t, err)
		assert.True(t, cart.Empty())
	})

	t.Run("invariant-violating items discard the slot", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cart.json")
		require.NoError(t, os.WriteFile(path,
			[]byte(`[{"id":1,"title":"x","price":"2.00","image":"","quantity":0}]`), 0o644))

		cart, err := NewStore(path).Restore()
		require.NoError(t, err)
		assert.True(t, cart.Empty())
	})
}

func TestStoreSaveOverwrites(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "cart.json"))

	require.NoError(t, store.Save(testCart()))
	require.NoError(t, store.Save(domain.Cart{Items: []domain.LineItem{
		{ProductID: 5, Title: "Mens Cotton Jacket", Price: decimal.RequireFromString("55.99"), Quantity: 3},
	}}))

	got, err := store.Restore()
	require.NoError(t, err)

	require.Len(t, got.Items, 1)
	assert.Equal(t, int64(5), got.Items[0].ProductID)
	assert.Equal(t, 3, got.Items[0].Quantity)
}

func TestStoreSaveCreatesDirectory(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "nested", "deeper", "cart.json"))

	require.NoError(t, store.Save(testCart()))

	_, err := store.Restore()
	require.NoError(t, err)
}
