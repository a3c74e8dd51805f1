package order

import (
	"errors"
	"fmt"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"

	"github.com/samber/lo"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the unit of work created by the validation-and-creation pipeline.
//
// Order follows these invariants:
//   - The identifier is assigned exactly once per creation attempt and never reused
//   - createdDate and modifiedDate are set to the same instant at creation
//   - total always equals the sum over products of (price x quantity) plus
//     the delivery price and never drifts
//   - The only status produced at creation is New
//   - Can only be created through NewOrder or RestoreOrder
//
// An Order value is constructed fresh per request and either persisted on
// full acceptance or discarded; there is no in-place update of stored orders.
type Order struct {
	// id is the unique identifier for the order, generated once
	id kernel.UUID

	// userID identifies the submitting actor, supplied by the caller
	userID string

	// status is the lifecycle state; creation only produces New
	status Status

	// createdDate and modifiedDate both hold the creation instant
	createdDate  time.Time
	modifiedDate time.Time

	// products is the order-preserving normalized product list
	products []ProductLine

	// deliveryPrice is asserted, not computed, by this service
	deliveryPrice float64

	// address is forwarded to the delivery service, never interpreted
	address Address

	// total is derived from the products and the delivery price
	total float64

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order, performing field injection on a schema-valid,
// normalized submission: it assigns the identifier, sets the status to New,
// stamps createdDate and modifiedDate with the same instant, and derives the
// total from the invariant formula. For valid inputs this stage has no
// failure path.
//
// The identifier is injected before any remote validation runs so that every
// downstream log line and validator message can reference a stable order id,
// even for an order that is ultimately rejected.
func NewOrder(
	id kernel.UUID,
	userID string,
	products []ProductLine,
	deliveryPrice float64,
	address Address,
	createdAt time.Time,
) (*Order, error) {
	newOrder := &Order{
		status:        New,
		isConstructed: true,
	}

	if err := errors.Join(
		newOrder.setID(id),
		newOrder.setUserID(userID),
		newOrder.setProducts(products),
		newOrder.setDeliveryPrice(deliveryPrice),
		newOrder.setAddress(address),
		newOrder.setDates(createdAt, createdAt),
	); err != nil {
		return nil, err
	}

	newOrder.total = deriveTotal(products, deliveryPrice)
	return newOrder, nil
}

// RestoreOrder reconstructs a persisted Order. Unlike NewOrder it takes the
// stored status, dates, and total, and re-checks the total invariant so a
// drifted row is rejected instead of rehydrated.
func RestoreOrder(
	id kernel.UUID,
	userID string,
	products []ProductLine,
	deliveryPrice float64,
	address Address,
	status Status,
	createdDate time.Time,
	modifiedDate time.Time,
	total float64,
) (*Order, error) {
	restored := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		restored.setID(id),
		restored.setUserID(userID),
		restored.setProducts(products),
		restored.setDeliveryPrice(deliveryPrice),
		restored.setAddress(address),
		restored.setStatus(status),
		restored.setDates(createdDate, modifiedDate),
	); err != nil {
		return nil, err
	}

	if derived := deriveTotal(products, deliveryPrice); total != derived {
		return nil, errs.NewValueIsInvalidErrorWithCause("total",
			fmt.Errorf("stored total %v does not match derived total %v", total, derived))
	}

	restored.total = total
	return restored, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// UserID returns the identifier of the submitting actor.
func (o *Order) UserID() string {
	return o.userID
}

// Status returns the lifecycle state of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedDate returns the creation instant.
func (o *Order) CreatedDate() time.Time {
	return o.createdDate
}

// ModifiedDate returns the last modification instant.
// At creation this equals CreatedDate.
func (o *Order) ModifiedDate() time.Time {
	return o.modifiedDate
}

// Products returns the normalized product lines in submission order.
func (o *Order) Products() []ProductLine {
	return o.products
}

// DeliveryPrice returns the delivery price declared by the caller.
func (o *Order) DeliveryPrice() float64 {
	return o.deliveryPrice
}

// Address returns the opaque delivery destination.
func (o *Order) Address() Address {
	return o.address
}

// Total returns the derived order total.
func (o *Order) Total() float64 {
	return o.total
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setUserID(userID string) error {
	if userID == "" {
		return errs.NewValueIsRequiredError("userId")
	}
	o.userID = userID
	return nil
}

func (o *Order) setProducts(products []ProductLine) error {
	if len(products) == 0 {
		return errs.NewValueIsRequiredError("products")
	}
	o.products = products
	return nil
}

func (o *Order) setDeliveryPrice(deliveryPrice float64) error {
	if deliveryPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause("deliveryPrice",
			fmt.Errorf("%v is negative", deliveryPrice))
	}
	o.deliveryPrice = deliveryPrice
	return nil
}

func (o *Order) setAddress(address Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	o.address = address
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setDates(createdDate, modifiedDate time.Time) error {
	if createdDate.IsZero() || modifiedDate.IsZero() {
		return errs.NewValueIsRequiredError("createdDate")
	}
	o.createdDate = createdDate
	o.modifiedDate = modifiedDate
	return nil
}

// deriveTotal implements the total invariant:
// sum over products of (price x quantity) plus the delivery price.
func deriveTotal(products []ProductLine, deliveryPrice float64) float64 {
	return lo.SumBy(products, ProductLine.Subtotal) + deliveryPrice
}
