package order_test

import (
	"testing"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	t.Run("valid_item", func(t *testing.T) {
		item, err := order.NewItem("Pizza", 2, 12.5)

		require.NoError(t, err)
		assert.Equal(t, "Pizza", item.Description())
		assert.Equal(t, 2, item.Quantity())
		assert.InEpsilon(t, 12.5, item.UnitPrice(), 1e-9)
		assert.Zero(t, item.ID())
		assert.Zero(t, item.OrderID())
		require.NoError(t, item.Validate())
	})

	t.Run("minimum_unit_price_is_accepted", func(t *testing.T) {
		item, err := order.NewItem("Napkin", 1, order.MinUnitPrice)
		require.NoError(t, err)
		assert.InEpsilon(t, order.MinUnitPrice, item.UnitPrice(), 1e-9)
	})

	testCases := []struct {
		name        string
		description string
		quantity    int
		unitPrice   float64
		wantErr     error
	}{
		{"empty_description", "", 1, 1.0, errs.ErrValueIsRequired},
		{"zero_quantity", "Pizza", 0, 1.0, errs.ErrValueIsInvalid},
		{"negative_quantity", "Pizza", -3, 1.0, errs.ErrValueIsInvalid},
		{"zero_unit_price", "Pizza", 1, 0, errs.ErrValueIsInvalid},
		{"unit_price_below_minimum", "Pizza", 1, 0.009, errs.ErrValueIsInvalid},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := order.NewItem(tc.description, tc.quantity, tc.unitPrice)
			require.Error(t, err)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestRestoreItem(t *testing.T) {
	t.Run("restores_identifiers", func(t *testing.T) {
		item, err := order.RestoreItem(7, 3, "Pizza", 2, 12.5)

		require.NoError(t, err)
		assert.Equal(t, int64(7), item.ID())
		assert.Equal(t, int64(3), item.OrderID())
	})

	t.Run("applies_business_rules", func(t *testing.T) {
		_, err := order.RestoreItem(7, 3, "", 2, 12.5)
		require.Error(t, err)
	})
}

func TestItem_Validate_ZeroValue(t *testing.T) {
	var item order.Item
	require.ErrorIs(t, item.Validate(), order.ErrItemIsNotConstructed)
}
