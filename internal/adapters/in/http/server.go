package http

import (
	"errors"
	"fmt"
	"net/http"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server implements the HTTP surface of the order creation pipeline.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler commands.CreateOrderCommandHandler
}

// NewServer creates a new HTTP server with the required command handlers.
func NewServer(createOrderHandler commands.CreateOrderCommandHandler) *Server {
	return &Server{
		createOrderHandler: createOrderHandler,
	}
}

// RegisterRoutes attaches the server's handlers to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/v1/orders", s.CreateOrder)
	e.GET("/health", s.Health)
}

// CreateOrder handles POST /api/v1/orders - runs one creation attempt.
//
// Status codes follow the pipeline's failure categories: 400 for input shape,
// contract, and business-rule failures, 500 for persistence and internal
// failures, 201 with the full order on success.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewCreateOrderCommand(request.UserID, request.Order)
	if err != nil {
		return s.rejectInvalidInput(ctx, err)
	}

	result, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: "Failed to create order",
		})
	}

	if !result.Accepted() {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Validation errors",
			Errors:  result.Failures,
		})
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{
		Success: true,
		Message: "Order created",
		Order:   orderToResponse(result.Order),
	})
}

// rejectInvalidInput maps command construction failures onto the transport
// contract: a missing top-level field names the field, a contract violation
// reports a schema error with the violation detail.
func (s *Server) rejectInvalidInput(ctx echo.Context, err error) error {
	var required *errs.ValueIsRequiredError
	if errors.As(err, &required) {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request",
			Errors:  []string{fmt.Sprintf("Missing %s in request", required.ParamName)},
		})
	}

	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Message: "JSON Schema validation error",
		Errors:  []string{err.Error()},
	})
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
