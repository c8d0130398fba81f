// Package http exposes the order lifecycle over a JSON API built on echo.
package http

import (
	"context"
	"errors"
	"net/http"

	"fulfillment/internal/core/application/orderstate"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type (
	// OrderCreator handles CreateOrderCommand.
	OrderCreator interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) error
	}

	// OrderStatusChanger handles ChangeOrderStatusCommand.
	OrderStatusChanger interface {
		Handle(ctx context.Context, cmd commands.ChangeOrderStatusCommand) (orderstate.Result, error)
	}

	// OrderReader handles GetOrderQuery.
	OrderReader interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.GetOrderQueryResponse, error)
	}

	// ActiveOrdersReader handles GetActiveOrdersQuery.
	ActiveOrdersReader interface {
		Handle(ctx context.Context, query queries.GetActiveOrdersQuery) ([]queries.GetActiveOrdersQueryResponse, error)
	}
)

// Server handles HTTP requests by delegating to command and query handlers.
type Server struct {
	// Command handlers
	createOrderHandler  OrderCreator
	changeStatusHandler OrderStatusChanger

	// Query handlers
	getOrderHandler        OrderReader
	getActiveOrdersHandler ActiveOrdersReader
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler OrderCreator,
	changeStatusHandler OrderStatusChanger,
	getOrderHandler OrderReader,
	getActiveOrdersHandler ActiveOrdersReader,
) *Server {
	return &Server{
		createOrderHandler:     createOrderHandler,
		changeStatusHandler:    changeStatusHandler,
		getOrderHandler:        getOrderHandler,
		getActiveOrdersHandler: getActiveOrdersHandler,
	}
}

// Register mounts the order routes on e.
func (s *Server) Register(e *echo.Echo) {
	g := e.Group("/api/v1/orders")
	g.POST("", s.CreateOrder)
	g.GET("/active", s.GetActiveOrders)
	g.GET("/:id", s.GetOrder)
	g.POST("/:id/confirm", s.transition(order.OperationConfirm))
	g.POST("/:id/ready-to-ship", s.transition(order.OperationReadyToShip))
	g.POST("/:id/ship", s.transition(order.OperationShip))
	g.POST("/:id/deliver", s.transition(order.OperationDeliver))
	g.POST("/:id/cancel", s.transition(order.OperationCancel))
}

// CreateOrder handles POST /api/v1/orders - creates a new Pending order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var newOrder NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	orderID := kernel.NewUUID()
	if newOrder.ID != "" {
		parsed, err := kernel.UUIDFromString(newOrder.ID)
		if err != nil {
			return errorJSON(ctx, http.StatusBadRequest, "Invalid order id: "+err.Error())
		}
		orderID = parsed
	}

	cmd, err := commands.NewCreateOrderCommand(orderID, newOrder.PaymentStatus, newOrder.OrderNotes)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to create order")
	}

	return ctx.JSON(http.StatusCreated, CreatedOrder{ID: orderID.String()})
}

// GetActiveOrders handles GET /api/v1/orders/active - lists non-terminal orders.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	orders, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetActiveOrdersQuery())
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve orders")
	}

	response := make([]ActiveOrder, len(orders))
	for i, o := range orders {
		response[i] = ActiveOrder{
			ID:        o.ID.String(),
			Status:    toStatus(o.Status),
			CreatedAt: o.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:id - returns one order with its guards.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id")
	}

	o, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return errorJSON(ctx, http.StatusNotFound, "Order not found")
	}
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve order")
	}

	return ctx.JSON(http.StatusOK, Order{
		ID:            o.ID.String(),
		Status:        toStatus(o.Status),
		PaymentStatus: o.PaymentStatus,
		OrderNotes:    o.OrderNotes,
		Version:       o.Version,
		Guards: Guards{
			CanConfirm:     o.Guards.CanConfirm,
			CanReadyToShip: o.Guards.CanReadyToShip,
			CanShip:        o.Guards.CanShip,
			CanDeliver:     o.Guards.CanDeliver,
			CanCancel:      o.Guards.CanCancel,
		},
	})
}

// transition builds the handler of POST /api/v1/orders/:id/<operation>.
func (s *Server) transition(op order.Operation) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		orderID, err := kernel.UUIDFromString(ctx.Param("id"))
		if err != nil {
			return errorJSON(ctx, http.StatusBadRequest, "Invalid order id")
		}

		var reason string
		if op == order.OperationCancel {
			var body CancelOrder
			if err = ctx.Bind(&body); err != nil {
				return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
			}
			reason = body.Reason
		}

		cmd, err := commands.NewChangeOrderStatusCommand(orderID, op, reason)
		if err != nil {
			return errorJSON(ctx, http.StatusBadRequest, "Invalid request: "+err.Error())
		}

		result, err := s.changeStatusHandler.Handle(ctx.Request().Context(), cmd)
		if err != nil {
			code, message := transitionError(err)
			return errorJSON(ctx, code, message)
		}

		return ctx.JSON(http.StatusOK, Transition{
			ID:        orderID.String(),
			Operation: string(result.Operation),
			Outcome:   string(result.Outcome),
			From:      toStatus(result.From),
			To:        toStatus(result.To),
		})
	}
}

func transitionError(err error) (int, string) {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, "Order not found"
	case errors.Is(err, commands.ErrTransitionRejected):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, commands.ErrOrderConflict):
		return http.StatusConflict, "Order was changed by another request, reload and retry"
	default:
		return http.StatusInternalServerError, "Failed to change order status"
	}
}

func toStatus(s order.Status) Status {
	return Status{Code: s.String(), Label: s.Label()}
}

func errorJSON(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, Error{Code: code, Message: message})
}
