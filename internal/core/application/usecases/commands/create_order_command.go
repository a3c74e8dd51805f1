package commands

import (
	"encoding/json"
	"errors"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// ProductDraft is a schema-valid product entry as submitted by the caller,
// before normalization. Quantity is a pointer so that an absent field can be
// distinguished from an explicit value and defaulted downstream.
type ProductDraft struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Package   json.RawMessage `json:"package"`
	Price     float64         `json:"price"`
	Quantity  *int            `json:"quantity,omitempty"`
}

// orderDraft is the typed projection of a schema-valid order body.
type orderDraft struct {
	Products      []ProductDraft  `json:"products"`
	DeliveryPrice float64         `json:"deliveryPrice"`
	Address       json.RawMessage `json:"address"`
}

// CreateOrderCommand represents a request to create a new order.
//
// The constructor is the structural boundary of the pipeline: it checks the
// input shape (userId and order must be present) and validates the raw order
// body against the fixed contract before decoding it into typed drafts. All
// downstream stages consume the typed values and never re-validate shape.
//
// Failure here aborts the pipeline with no side effects; in particular no
// order identifier is generated.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(userID, rawOrderBody)
//	if err != nil {
//	    // errs.ErrValueIsRequired: missing top-level field
//	    // errs.ErrValueIsInvalid: order body violates the contract
//	    return err
//	}
//	result, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	userID string
	draft  orderDraft

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the input shape and the structural
// contract of the order body, then builds the typed command.
//
// Returned errors unwrap to errs.ErrValueIsRequired for a missing userId or
// order, and to errs.ErrValueIsInvalid for a contract violation.
func NewCreateOrderCommand(userID string, rawOrder json.RawMessage) (CreateOrderCommand, error) {
	if userID == "" {
		return CreateOrderCommand{}, errs.NewValueIsRequiredError("userId")
	}
	if len(rawOrder) == 0 {
		return CreateOrderCommand{}, errs.NewValueIsRequiredError("order")
	}

	if err := validateOrderContract(rawOrder); err != nil {
		return CreateOrderCommand{}, errs.NewValueIsInvalidErrorWithCause("order", err)
	}

	var draft orderDraft
	if err := json.Unmarshal(rawOrder, &draft); err != nil {
		return CreateOrderCommand{}, errs.NewValueIsInvalidErrorWithCause("order", err)
	}

	return CreateOrderCommand{
		userID: userID,
		draft:  draft,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// UserID returns the identifier of the submitting actor.
func (c CreateOrderCommand) UserID() string {
	return c.userID
}

// Products returns the submitted product entries in submission order.
func (c CreateOrderCommand) Products() []ProductDraft {
	return c.draft.Products
}

// DeliveryPrice returns the delivery price declared by the caller.
func (c CreateOrderCommand) DeliveryPrice() float64 {
	return c.draft.DeliveryPrice
}

// Address returns the opaque address document.
func (c CreateOrderCommand) Address() json.RawMessage {
	return c.draft.Address
}
