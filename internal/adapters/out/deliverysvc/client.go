// Package deliverysvc implements the delivery business-rule validator
// against the remote delivery-pricing service.
package deliverysvc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/services"

	"github.com/samber/lo"
)

// rejectMessage is the generic reason used for any transport or protocol
// failure against the delivery service. Expected business failures never
// escalate to errors.
const rejectMessage = "Failure to contact the delivery service"

// Client validates an order's declared delivery price against the
// delivery-pricing service. The order is accepted iff the service responds
// with a well-formed price exactly equal to the declared one; there is no
// tolerance or rounding.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a delivery validator calling the service at baseURL.
// Transport concerns such as timeouts belong to the injected http.Client.
func NewClient(baseURL string, httpClient *http.Client, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     logger.With("component", "delivery_validator"),
	}
}

type productPayload struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Package   json.RawMessage `json:"package"`
	Price     float64         `json:"price"`
	Quantity  int             `json:"quantity"`
}

type pricingRequest struct {
	Products []productPayload `json:"products"`
	Address  json.RawMessage  `json:"address"`
}

type pricingResponse struct {
	// Pricing is a pointer so a missing field is distinguishable from zero.
	Pricing *float64 `json:"pricing"`
}

// Validate implements services.OrderValidator.
func (c *Client) Validate(ctx context.Context, o *order.Order) services.ValidationResult {
	request := pricingRequest{
		Products: lo.Map(o.Products(), func(p order.ProductLine, _ int) productPayload {
			return productPayload{
				ProductID: p.ProductID(),
				Name:      p.Name(),
				Package:   p.Package(),
				Price:     p.Price(),
				Quantity:  p.Quantity(),
			}
		}),
		Address: o.Address().Raw(),
	}

	body, err := json.Marshal(request)
	if err != nil {
		c.logger.WarnContext(ctx, "Failed to encode pricing request",
			"orderId", o.ID().String(), "error", err)
		return services.Reject(rejectMessage)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/backend/pricing", bytes.NewReader(body))
	if err != nil {
		return services.Reject(rejectMessage)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "Failure to contact the delivery service",
			"orderId", o.ID().String(), "error", err)
		return services.Reject(rejectMessage)
	}
	defer resp.Body.Close()

	var pricing pricingResponse
	if err = json.NewDecoder(resp.Body).Decode(&pricing); err != nil {
		c.logger.WarnContext(ctx, "Malformed response from the delivery service",
			"orderId", o.ID().String(), "error", err)
		return services.Reject(rejectMessage)
	}

	c.logger.DebugContext(ctx, "Response received from delivery",
		"orderId", o.ID().String(), "statusCode", resp.StatusCode)

	if resp.StatusCode != http.StatusOK || pricing.Pricing == nil {
		c.logger.WarnContext(ctx, "Failure to contact the delivery service",
			"orderId", o.ID().String(), "statusCode", resp.StatusCode)
		return services.Reject(rejectMessage)
	}

	if *pricing.Pricing != o.DeliveryPrice() {
		message := fmt.Sprintf("Wrong delivery price: got %v, expected %v", o.DeliveryPrice(), *pricing.Pricing)
		c.logger.InfoContext(ctx, message,
			"orderId", o.ID().String(),
			"orderPrice", o.DeliveryPrice(),
			"deliveryPrice", *pricing.Pricing)
		return services.Reject(message)
	}

	return services.Accept("The delivery price is valid")
}
