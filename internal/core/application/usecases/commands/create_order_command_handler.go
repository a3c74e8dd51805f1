package commands

import (
	"context"
	"log/slog"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
)

// CreateOrderResult is the terminal outcome of one creation attempt.
//
// A non-empty Failures list means the order was rejected by business-rule
// validation; Order still carries the field-injected value so callers can
// reference its identifier. On acceptance Failures is empty and Order holds
// the persisted aggregate.
type CreateOrderResult struct {
	Order    *order.Order
	Failures []string
}

// Accepted reports whether the order passed every business-rule check.
func (r CreateOrderResult) Accepted() bool {
	return len(r.Failures) == 0
}

// CreateOrderCommandHandler runs the order-creation pipeline:
// normalize products, inject derived fields, fan out to the business-rule
// validators, and persist the order iff all of them accepted.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(repo, orchestrator, metrics, logger)
//	cmd, _ := NewCreateOrderCommand(userID, rawOrderBody)
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err // persistence or internal failure
//	}
//	if !result.Accepted() {
//	    // result.Failures lists every rejecting validator, in order
//	}
type CreateOrderCommandHandler struct {
	repo      ports.OrderRepository
	validator OrderValidationService
	metrics   ports.Metrics
	logger    *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler with its injected
// collaborators: the order store, the validation orchestrator, and the
// metrics sink.
func NewCreateOrderCommandHandler(
	repo ports.OrderRepository,
	validator OrderValidationService,
	metrics ports.Metrics,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		repo:      repo,
		validator: validator,
		metrics:   metrics,
		logger:    logger.With("component", "create_order"),
	}
}

// Handle processes one creation attempt.
//
// The identifier and total are injected before remote validation runs, so a
// rejected submission still consumes an identifier that is never persisted;
// every validator failure can then reference a stable order id. Validation
// failures are returned in the result, not as errors; only persistence and
// internal failures surface through the error return.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	products, err := normalizeProducts(cmd.Products())
	if err != nil {
		return CreateOrderResult{}, err
	}

	address, err := order.NewAddress(cmd.Address())
	if err != nil {
		return CreateOrderResult{}, err
	}

	newOrder, err := order.NewOrder(
		kernel.NewUUID(),
		cmd.UserID(),
		products,
		cmd.DeliveryPrice(),
		address,
		time.Now(),
	)
	if err != nil {
		return CreateOrderResult{}, err
	}

	failures, err := h.validator.Validate(ctx, newOrder)
	if err != nil {
		return CreateOrderResult{}, err
	}

	if len(failures) > 0 {
		h.logger.InfoContext(ctx, "Validation errors for order",
			"orderId", newOrder.ID().String(),
			"errors", failures)
		return CreateOrderResult{Order: newOrder, Failures: failures}, nil
	}

	if err = h.repo.Put(ctx, newOrder); err != nil {
		return CreateOrderResult{}, err
	}

	h.metrics.OrderCreated(newOrder.Total())
	h.logger.InfoContext(ctx, "Order created",
		"orderId", newOrder.ID().String(),
		"total", newOrder.Total())

	return CreateOrderResult{Order: newOrder}, nil
}

// normalizeProducts projects the submitted entries onto the canonical field
// set, defaulting absent quantities. Input has already passed the structural
// contract, so for well-formed drafts this cannot fail.
func normalizeProducts(drafts []ProductDraft) ([]order.ProductLine, error) {
	lines := make([]order.ProductLine, 0, len(drafts))
	for _, draft := range drafts {
		line, err := order.NewProductLine(draft.ProductID, draft.Name, draft.Package, draft.Price, draft.Quantity)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return lines, nil
}
