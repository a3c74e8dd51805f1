// Package productsvc implements the product business-rule validator
// against the remote product-catalog service.
package productsvc

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/services"

	"github.com/samber/lo"
)

// rejectMessage is the generic reason used for any transport or protocol
// failure against the catalog service.
const rejectMessage = "Failure to contact the products service"

// Client validates an order's product list against the catalog service.
// The service replies with the subset of products it considers invalid;
// the order is accepted iff that subset is empty.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a product validator calling the service at baseURL.
func NewClient(baseURL string, httpClient *http.Client, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     logger.With("component", "product_validator"),
	}
}

type productPayload struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Package   json.RawMessage `json:"package"`
	Price     float64         `json:"price"`
	Quantity  int             `json:"quantity"`
}

type validateRequest struct {
	Products []productPayload `json:"products"`
}

type validateResponse struct {
	// Products carries the invalid entries, empty when all are valid.
	Products []json.RawMessage `json:"products"`
	Message  string            `json:"message"`
}

// Validate implements services.OrderValidator.
func (c *Client) Validate(ctx context.Context, o *order.Order) services.ValidationResult {
	request := validateRequest{
		Products: lo.Map(o.Products(), func(p order.ProductLine, _ int) productPayload {
			return productPayload{
				ProductID: p.ProductID(),
				Name:      p.Name(),
				Package:   p.Package(),
				Price:     p.Price(),
				Quantity:  p.Quantity(),
			}
		}),
	}

	body, err := json.Marshal(request)
	if err != nil {
		c.logger.WarnContext(ctx, "Failed to encode validate request",
			"orderId", o.ID().String(), "error", err)
		return services.Reject(rejectMessage)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/backend/validate", bytes.NewReader(body))
	if err != nil {
		return services.Reject(rejectMessage)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "Failure to contact the products service",
			"orderId", o.ID().String(), "error", err)
		return services.Reject(rejectMessage)
	}
	defer resp.Body.Close()

	var validation validateResponse
	if err = json.NewDecoder(resp.Body).Decode(&validation); err != nil {
		c.logger.WarnContext(ctx, "Malformed response from the products service",
			"orderId", o.ID().String(), "error", err)
		return services.Reject(rejectMessage)
	}

	c.logger.DebugContext(ctx, "Response received from products",
		"orderId", o.ID().String(), "statusCode", resp.StatusCode)

	if resp.StatusCode != http.StatusOK {
		c.logger.WarnContext(ctx, "Failure to contact the products service",
			"orderId", o.ID().String(), "statusCode", resp.StatusCode)
		return services.Reject(rejectMessage)
	}

	if len(validation.Products) > 0 {
		return services.Reject(validation.Message)
	}

	return services.Accept(validation.Message)
}
