// Package ports defines the outbound interfaces of the core.
// Adapters implement these interfaces; the application layer depends on them.
package ports

import (
	"context"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
)

// OrderRepository persists finalized orders keyed by their identifier.
type OrderRepository interface {
	// Put writes the order unconditionally: the first write for an
	// identifier succeeds and a second write silently overwrites. It is
	// invoked only after all business-rule validators accepted the order.
	Put(ctx context.Context, o *order.Order) error

	// Get retrieves a persisted order by identifier. The creation pipeline
	// itself never reads; this exists for restore and verification.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
