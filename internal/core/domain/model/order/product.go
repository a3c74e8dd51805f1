package order

import (
	"encoding/json"
	"fmt"

	"orders/internal/pkg/errs"
)

// DefaultQuantity is applied when a submitted product line omits the quantity.
const DefaultQuantity = 1

// ProductLine is a normalized entry within an order's product list.
// It is owned exclusively by its Order and has no identity outside of it.
//
// Normalization is a projection onto the canonical field set: productId,
// name, package, and price are copied verbatim from the input, quantity
// defaults to DefaultQuantity when absent, and any other input fields are
// dropped.
type ProductLine struct {
	// productID identifies the catalog product this line refers to
	productID string

	// name is the display name copied from the submission
	name string

	// pkg is the opaque package description (dimensions, weight) forwarded as-is
	pkg json.RawMessage

	// price is the unit price
	price float64

	// quantity is the number of units, always >= 1 after normalization
	quantity int
}

// NewProductLine projects a submitted product entry onto the canonical field
// set. A nil quantity means the field was absent and defaults to
// DefaultQuantity. All other fields are required.
func NewProductLine(productID, name string, pkg json.RawMessage, price float64, quantity *int) (ProductLine, error) {
	if productID == "" {
		return ProductLine{}, errs.NewValueIsRequiredError("productId")
	}
	if name == "" {
		return ProductLine{}, errs.NewValueIsRequiredError("name")
	}
	if len(pkg) == 0 || !json.Valid(pkg) {
		return ProductLine{}, errs.NewValueIsInvalidError("package")
	}
	if price < 0 {
		return ProductLine{}, errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%v is negative", price))
	}

	qty := DefaultQuantity
	if quantity != nil {
		if *quantity < 1 {
			return ProductLine{}, errs.NewValueIsInvalidErrorWithCause("quantity",
				fmt.Errorf("%d is not greater than 0", *quantity))
		}
		qty = *quantity
	}

	return ProductLine{
		productID: productID,
		name:      name,
		pkg:       pkg,
		price:     price,
		quantity:  qty,
	}, nil
}

// ProductID returns the catalog identifier of the line.
func (p ProductLine) ProductID() string {
	return p.productID
}

// Name returns the product display name.
func (p ProductLine) Name() string {
	return p.name
}

// Package returns the opaque package description.
func (p ProductLine) Package() json.RawMessage {
	return p.pkg
}

// Price returns the unit price.
func (p ProductLine) Price() float64 {
	return p.price
}

// Quantity returns the normalized number of units.
func (p ProductLine) Quantity() int {
	return p.quantity
}

// Subtotal returns price multiplied by quantity.
func (p ProductLine) Subtotal() float64 {
	return p.price * float64(p.quantity)
}
