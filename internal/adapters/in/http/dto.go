package http

import (
	"encoding/json"
	"time"

	"orders/internal/core/domain/model/order"

	"github.com/samber/lo"
)

// CreateOrderRequest is the transport shape of one creation attempt.
// Order stays raw here; shape and contract checks belong to the command
// constructor, not the transport layer.
type CreateOrderRequest struct {
	UserID string          `json:"userId"`
	Order  json.RawMessage `json:"order"`
}

// ProductResponse is one normalized product line as returned to the caller.
type ProductResponse struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Package   json.RawMessage `json:"package"`
	Price     float64         `json:"price"`
	Quantity  int             `json:"quantity"`
}

// OrderResponse is the full representation of a created order, including
// every injected field.
type OrderResponse struct {
	OrderID       string            `json:"orderId"`
	UserID        string            `json:"userId"`
	Status        string            `json:"status"`
	CreatedDate   time.Time         `json:"createdDate"`
	ModifiedDate  time.Time         `json:"modifiedDate"`
	Products      []ProductResponse `json:"products"`
	DeliveryPrice float64           `json:"deliveryPrice"`
	Total         float64           `json:"total"`
	Address       json.RawMessage   `json:"address"`
}

// CreateOrderResponse is the success envelope for POST /api/v1/orders.
type CreateOrderResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Order   OrderResponse `json:"order"`
}

// ErrorResponse is the failure envelope. Errors carries the individual
// failure messages: field names for shape errors, schema violations for
// contract errors, validator messages for business-rule rejections.
type ErrorResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

// orderToResponse projects the aggregate onto its transport representation.
func orderToResponse(o *order.Order) OrderResponse {
	products := lo.Map(o.Products(), func(p order.ProductLine, _ int) ProductResponse {
		return ProductResponse{
			ProductID: p.ProductID(),
			Name:      p.Name(),
			Package:   p.Package(),
			Price:     p.Price(),
			Quantity:  p.Quantity(),
		}
	})

	return OrderResponse{
		OrderID:       o.ID().String(),
		UserID:        o.UserID(),
		Status:        o.Status().String(),
		CreatedDate:   o.CreatedDate(),
		ModifiedDate:  o.ModifiedDate(),
		Products:      products,
		DeliveryPrice: o.DeliveryPrice(),
		Total:         o.Total(),
		Address:       o.Address().Raw(),
	}
}
