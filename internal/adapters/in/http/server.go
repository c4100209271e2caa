// Package http provides the inbound REST adapter. It binds request bodies,
// builds commands and queries, and maps application errors onto HTTP status
// codes.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler  commands.CreateOrderCommandHandler
	advanceOrderHandler commands.AdvanceOrderCommandHandler
	restoreOrderHandler commands.RestoreOrderCommandHandler

	// Query handlers
	listActiveOrdersHandler queries.ListActiveOrdersQueryHandler
	getOrderHandler         queries.GetOrderQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	advanceOrderHandler commands.AdvanceOrderCommandHandler,
	restoreOrderHandler commands.RestoreOrderCommandHandler,
	listActiveOrdersHandler queries.ListActiveOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:      createOrderHandler,
		advanceOrderHandler:     advanceOrderHandler,
		restoreOrderHandler:     restoreOrderHandler,
		listActiveOrdersHandler: listActiveOrdersHandler,
		getOrderHandler:         getOrderHandler,
	}
}

// RegisterRoutes attaches all order endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/orders", s.ListOrders)
	e.POST("/orders", s.CreateOrder)
	e.GET("/orders/:orderId", s.GetOrder)
	e.POST("/orders/:orderId/advance", s.AdvanceOrder)
	e.POST("/orders/:orderId/restore", s.RestoreOrder)
}

// ListOrders handles GET /orders - retrieves all active orders.
func (s *Server) ListOrders(ctx echo.Context) error {
	query := queries.NewListActiveOrdersQuery()

	orders, err := s.listActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// CreateOrder handles POST /orders - creates an order with its line items.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if msg := req.validate(); msg != "" {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: msg,
		})
	}

	items := make([]order.Item, 0, len(req.Items))
	for _, itemReq := range req.Items {
		item, err := order.NewItem(itemReq.Description, itemReq.Quantity, itemReq.UnitPrice)
		if err != nil {
			return s.renderError(ctx, err)
		}
		items = append(items, item)
	}

	cmd, err := commands.NewCreateOrderCommand(req.ClientName, items)
	if err != nil {
		return s.renderError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderToResponse(created))
}

// GetOrder handles GET /orders/:orderId - retrieves a single active order.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := bindOrderID(ctx)
	if err != nil {
		return s.renderError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.renderError(ctx, err)
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, resp)
}

// AdvanceOrder handles POST /orders/:orderId/advance - moves the order to its
// next lifecycle status. Terminal transitions respond with a summary instead
// of the order body, since the order leaves the active scope.
func (s *Server) AdvanceOrder(ctx echo.Context) error {
	orderID, err := bindOrderID(ctx)
	if err != nil {
		return s.renderError(ctx, err)
	}

	cmd, err := commands.NewAdvanceOrderCommand(orderID)
	if err != nil {
		return s.renderError(ctx, err)
	}

	result, err := s.advanceOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.renderError(ctx, err)
	}

	if result.SoftDeleted {
		summary := AdvanceSummary{
			SoftDeleted:   true,
			CurrentStatus: result.CurrentStatus.String(),
		}
		if result.PreviousStatus != order.Unknown {
			previous := result.PreviousStatus.String()
			summary.PreviousStatus = &previous
		}
		return ctx.JSON(http.StatusOK, summary)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(result.Order))
}

// RestoreOrder handles POST /orders/:orderId/restore - brings a soft-deleted
// order back into the active scope in Initiated status.
func (s *Server) RestoreOrder(ctx echo.Context) error {
	orderID, err := bindOrderID(ctx)
	if err != nil {
		return s.renderError(ctx, err)
	}

	cmd, err := commands.NewRestoreOrderCommand(orderID)
	if err != nil {
		return s.renderError(ctx, err)
	}

	restored, err := s.restoreOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(restored))
}

// renderError maps application errors to HTTP responses. Validation and
// invalid-state errors are client mistakes, missing objects are 404, and
// everything else is an internal error with the detail kept out of the body.
func (s *Server) renderError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrInvalidState):
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}

func bindOrderID(ctx echo.Context) (int64, error) {
	orderID, err := strconv.ParseInt(ctx.Param("orderId"), 10, 64)
	if err != nil || orderID <= 0 {
		return 0, errs.NewValueIsInvalidError("orderId")
	}

	return orderID, nil
}

func orderToResponse(aggregate *order.Order) queries.OrderResponse {
	items := make([]queries.OrderItemResponse, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, queries.OrderItemResponse{
			ItemID:      item.ID(),
			OrderID:     item.OrderID(),
			Description: item.Description(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice(),
		})
	}

	return queries.OrderResponse{
		OrderID:    aggregate.ID(),
		ClientName: aggregate.ClientName(),
		Status:     aggregate.Status().String(),
		Items:      items,
		CreatedAt:  aggregate.CreatedAt(),
		UpdatedAt:  aggregate.UpdatedAt(),
	}
}
