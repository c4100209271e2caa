package commands_test

import (
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	item, err := order.NewItem("Pizza", 2, 12.5)
	require.NoError(t, err)

	t.Run("valid_command", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand("Ana", []order.Item{item})

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "Ana", cmd.ClientName())
		assert.Len(t, cmd.Items(), 1)
	})

	t.Run("empty_client_name_is_rejected", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand("", []order.Item{item})
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("empty_items_are_rejected", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand("Ana", nil)
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("unconstructed_item_is_rejected", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand("Ana", []order.Item{{}})
		require.Error(t, err)
	})

	t.Run("zero_value_command_fails_validation", func(t *testing.T) {
		var cmd commands.CreateOrderCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
