// Package commands contains business operations that modify system state.
// All commands follow a consistent pattern: boundary validation in the
// command constructor, then a handler that runs the pipeline stages against
// injected collaborators.
package commands

import (
	"context"

	"orders/internal/core/domain/model/order"
)

// OrderValidationService aggregates the independent business-rule checks for
// one order. It returns the messages of every rejecting validator in fixed
// registration order; an empty slice means full acceptance. The error return
// is reserved for truly unexpected conditions, never for business failures.
type OrderValidationService interface {
	Validate(ctx context.Context, o *order.Order) ([]string, error)
}
