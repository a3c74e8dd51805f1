package deliverysvc_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"orders/internal/adapters/out/deliverysvc"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func orderWithDeliveryPrice(t *testing.T, deliveryPrice float64) *order.Order {
	t.Helper()

	pkg := json.RawMessage(`{"width":10,"length":10,"height":10,"weight":100}`)
	line, err := order.NewProductLine("PRODUCT-1", "Coffee beans", pkg, 10, nil)
	require.NoError(t, err)

	address, err := order.NewAddress(json.RawMessage(`{"streetAddress":"1 Main St","city":"Springfield"}`))
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), "user-1", []order.ProductLine{line}, deliveryPrice, address, time.Now())
	require.NoError(t, err)
	return o
}

func TestClient_Validate(t *testing.T) {
	t.Run("accepts when the computed price matches exactly", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/backend/pricing", r.URL.Path)

			var request struct {
				Products []map[string]any `json:"products"`
				Address  map[string]any   `json:"address"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&request))
			assert.Len(t, request.Products, 1)
			assert.Equal(t, "Springfield", request.Address["city"])

			_ = json.NewEncoder(w).Encode(map[string]any{"pricing": 10})
		}))
		defer server.Close()

		client := deliverysvc.NewClient(server.URL, server.Client(), discardLogger())
		result := client.Validate(t.Context(), orderWithDeliveryPrice(t, 10))

		assert.True(t, result.Accepted)
		assert.Equal(t, "The delivery price is valid", result.Message)
	})

	t.Run("rejects a mismatched price naming both values", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{"pricing": 12})
		}))
		defer server.Close()

		client := deliverysvc.NewClient(server.URL, server.Client(), discardLogger())
		result := client.Validate(t.Context(), orderWithDeliveryPrice(t, 10))

		assert.False(t, result.Accepted)
		assert.Equal(t, "Wrong delivery price: got 10, expected 12", result.Message)
	})

	t.Run("rejects with generic message on non-200 response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_ = json.NewEncoder(w).Encode(map[string]any{"pricing": 10})
		}))
		defer server.Close()

		client := deliverysvc.NewClient(server.URL, server.Client(), discardLogger())
		result := client.Validate(t.Context(), orderWithDeliveryPrice(t, 10))

		assert.False(t, result.Accepted)
		assert.Equal(t, "Failure to contact the delivery service", result.Message)
	})

	t.Run("rejects with generic message when pricing is missing", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{"message": "no pricing today"})
		}))
		defer server.Close()

		client := deliverysvc.NewClient(server.URL, server.Client(), discardLogger())
		result := client.Validate(t.Context(), orderWithDeliveryPrice(t, 10))

		assert.False(t, result.Accepted)
		assert.Equal(t, "Failure to contact the delivery service", result.Message)
	})

	t.Run("rejects with generic message on malformed body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("not json"))
		}))
		defer server.Close()

		client := deliverysvc.NewClient(server.URL, server.Client(), discardLogger())
		result := client.Validate(t.Context(), orderWithDeliveryPrice(t, 10))

		assert.False(t, result.Accepted)
		assert.Equal(t, "Failure to contact the delivery service", result.Message)
	})

	t.Run("rejects with generic message when the service is unreachable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
		server.Close() // connection refused from here on

		client := deliverysvc.NewClient(server.URL, http.DefaultClient, discardLogger())
		result := client.Validate(t.Context(), orderWithDeliveryPrice(t, 10))

		assert.False(t, result.Accepted)
		assert.Equal(t, "Failure to contact the delivery service", result.Message)
	})
}
