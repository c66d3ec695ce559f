package app

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCart struct {
	items []CartLine
}

func (f fakeCart) Items() []CartLine { return f.items }

func TestPlaceOrder(t *testing.T) {
	t.Run("empty cart fails with ErrEmptyCart", func(t *testing.T) {
		svc := NewService(fakeCart{}, nil)

		_, err := svc.PlaceOrder()
		assert.ErrorIs(t, err, ErrEmptyCart)
	})

	t.Run("builds a receipt with line and order totals", func(t *testing.T) {
		svc := NewService(fakeCart{items: []CartLine{
			{ProductID: 1, Title: "Backpack", UnitPrice: decimal.RequireFromString("19.99"), Quantity: 2},
			{ProductID: 2, Title: "T-Shirt", UnitPrice: decimal.RequireFromString("5.00"), Quantity: 3},
		}}, nil)

		receipt, err := svc.PlaceOrder()
		require.NoError(t, err)

		require.Len(t, receipt.Lines, 2)
		assert.True(t, receipt.Lines[0].LineTotal.Equal(decimal.RequireFromString("39.98")))
		assert.True(t, receipt.Lines[1].LineTotal.Equal(decimal.RequireFromString("15.00")))
		assert.True(t, receipt.Subtotal.Equal(decimal.RequireFromString("54.98")),
			"got %s", receipt.Subtotal)
		assert.Equal(t, 5, receipt.TotalItems)
		assert.False(t, receipt.CreatedAt.IsZero())
	})

	t.Run("order id is a valid uuid, fresh per order", func(t *testing.T) {
		svc := NewService(fakeCart{items: []CartLine{
			{ProductID: 1, Title: "x", UnitPrice: decimal.RequireFromString("1.00"), Quantity: 1},
		}}, nil)

		first, err := svc.PlaceOrder()
		require.NoError(t, err)
		second, err := svc.PlaceOrder()
		require.NoError(t, err)

		_, err = uuid.Parse(first.OrderID)
		require.NoError(t, err)
		assert.NotEqual(t, first.OrderID, second.OrderID)
	})
}
