// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, handling the conversion between domain entities and database
// representations.
package orderrepo

import (
	"encoding/json"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"gorm.io/datatypes"
)

// OrderDTO represents the database structure for persisting orders.
// The row is keyed by the order identifier; products and address are stored
// as JSONB documents since neither is queried relationally by this service.
type OrderDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID        string    `gorm:"index"`
	Status        string
	CreatedDate   time.Time
	ModifiedDate  time.Time
	Products      datatypes.JSON `gorm:"type:jsonb"`
	DeliveryPrice float64
	Address       datatypes.JSON `gorm:"type:jsonb"`
	Total         float64
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// productLineDTO is the JSONB representation of one normalized product line.
type productLineDTO struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Package   json.RawMessage `json:"package"`
	Price     float64         `json:"price"`
	Quantity  int             `json:"quantity"`
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(o *order.Order) (OrderDTO, error) {
	lines := lo.Map(o.Products(), func(p order.ProductLine, _ int) productLineDTO {
		return productLineDTO{
			ProductID: p.ProductID(),
			Name:      p.Name(),
			Package:   p.Package(),
			Price:     p.Price(),
			Quantity:  p.Quantity(),
		}
	})

	products, err := json.Marshal(lines)
	if err != nil {
		return OrderDTO{}, err
	}

	return OrderDTO{
		ID:            o.ID().Bytes(),
		UserID:        o.UserID(),
		Status:        o.Status().String(),
		CreatedDate:   o.CreatedDate(),
		ModifiedDate:  o.ModifiedDate(),
		Products:      datatypes.JSON(products),
		DeliveryPrice: o.DeliveryPrice(),
		Address:       datatypes.JSON(o.Address().Raw()),
		Total:         o.Total(),
	}, nil
}

// toDomain converts a database row back into an order aggregate.
// RestoreOrder re-checks the total invariant, so a drifted row fails here
// instead of leaking into the application.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromString(dto.ID.String())
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var lines []productLineDTO
	if err = json.Unmarshal(dto.Products, &lines); err != nil {
		return nil, err
	}

	products := make([]order.ProductLine, 0, len(lines))
	for _, line := range lines {
		quantity := line.Quantity
		product, lineErr := order.NewProductLine(line.ProductID, line.Name, line.Package, line.Price, &quantity)
		if lineErr != nil {
			return nil, lineErr
		}
		products = append(products, product)
	}

	address, err := order.NewAddress(json.RawMessage(dto.Address))
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.UserID,
		products,
		dto.DeliveryPrice,
		address,
		status,
		dto.CreatedDate,
		dto.ModifiedDate,
		dto.Total,
	)
}
