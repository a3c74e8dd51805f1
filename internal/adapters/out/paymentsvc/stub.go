// Package paymentsvc holds the payment business-rule validator.
package paymentsvc

import (
	"context"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/services"
)

// Stub is the placeholder payment validator: it accepts every order
// unconditionally with no message. The real payment contract is not yet
// defined; keeping the stub behind the same validator interface means a
// real gateway can replace it without touching the orchestration.
//
// TODO: replace with a validator against the payment service once its
// token-verification contract is settled.
type Stub struct{}

// NewStub creates the pass-through payment validator.
func NewStub() Stub {
	return Stub{}
}

// Validate implements services.OrderValidator. It always accepts.
func (Stub) Validate(_ context.Context, _ *order.Order) services.ValidationResult {
	return services.Accept("")
}
