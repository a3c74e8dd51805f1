package commands_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validOrderBody() json.RawMessage {
	return json.RawMessage(`{
		"products": [
			{
				"productId": "PRODUCT-1",
				"name": "Coffee beans",
				"package": {"width": 10, "length": 10, "height": 10, "weight": 500},
				"price": 12.5,
				"quantity": 2
			},
			{
				"productId": "PRODUCT-2",
				"name": "Grinder",
				"package": {"width": 20, "length": 20, "height": 20, "weight": 1500},
				"price": 40
			}
		],
		"deliveryPrice": 5,
		"address": {"name": "John Doe", "streetAddress": "1 Main St", "city": "Springfield", "country": "US"}
	}`)
}

func TestNewCreateOrderCommand(t *testing.T) {
	t.Run("builds typed command from a valid submission", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand("user-1", validOrderBody())

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "user-1", cmd.UserID())
		assert.InDelta(t, 5.0, cmd.DeliveryPrice(), 0)

		require.Len(t, cmd.Products(), 2)
		assert.Equal(t, "PRODUCT-1", cmd.Products()[0].ProductID)
		require.NotNil(t, cmd.Products()[0].Quantity)
		assert.Equal(t, 2, *cmd.Products()[0].Quantity)
		assert.Nil(t, cmd.Products()[1].Quantity)
	})

	t.Run("fails with missing userId", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand("", validOrderBody())

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "userId")
	})

	t.Run("fails with missing order body", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand("user-1", nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "order")
	})

	t.Run("fails when products are missing", func(t *testing.T) {
		body := json.RawMessage(`{"deliveryPrice": 5, "address": {"city": "Springfield"}}`)

		_, err := commands.NewCreateOrderCommand("user-1", body)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "products")
	})

	t.Run("fails when products are empty", func(t *testing.T) {
		body := json.RawMessage(`{
			"products": [],
			"deliveryPrice": 5,
			"address": {"city": "Springfield"}
		}`)

		_, err := commands.NewCreateOrderCommand("user-1", body)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("fails when a product entry misses its price", func(t *testing.T) {
		body := json.RawMessage(`{
			"products": [{"productId": "PRODUCT-1", "name": "Coffee beans", "package": {}}],
			"deliveryPrice": 5,
			"address": {"city": "Springfield"}
		}`)

		_, err := commands.NewCreateOrderCommand("user-1", body)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "price")
	})

	t.Run("fails when deliveryPrice has the wrong type", func(t *testing.T) {
		body := json.RawMessage(`{
			"products": [],
			"deliveryPrice": "free",
			"address": {"city": "Springfield"}
		}`)

		_, err := commands.NewCreateOrderCommand("user-1", body)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("fails when address is not an object", func(t *testing.T) {
		body := json.RawMessage(`{
			"products": [],
			"deliveryPrice": 5,
			"address": "1 Main St"
		}`)

		_, err := commands.NewCreateOrderCommand("user-1", body)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("fails on malformed JSON", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand("user-1", json.RawMessage(`{broken`))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("fails with a non-positive quantity", func(t *testing.T) {
		body := json.RawMessage(fmt.Sprintf(`{
			"products": [{"productId": "P", "name": "N", "package": {}, "price": 1, "quantity": %d}],
			"deliveryPrice": 5,
			"address": {"city": "Springfield"}
		}`, 0))

		_, err := commands.NewCreateOrderCommand("user-1", body)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestCreateOrderCommand_Validate(t *testing.T) {
	t.Run("zero value command is not constructed", func(t *testing.T) {
		var cmd commands.CreateOrderCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
