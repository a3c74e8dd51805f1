package ports

// Metrics receives one event per successful order creation.
// Emission is a side effect only and never participates in the
// pass/fail decision of the pipeline.
type Metrics interface {
	// OrderCreated records one creation event carrying the order's total value.
	OrderCreated(total float64)
}
