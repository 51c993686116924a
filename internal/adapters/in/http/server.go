// Package http exposes the storefront API over HTTP.
// User identity comes from the X-User-Id header set by the authentication
// layer in front of this service; the handlers trust it as-is.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"grocery/internal/core/application/usecases/commands"
	"grocery/internal/core/application/usecases/queries"
	"grocery/internal/core/domain/model/cart"
	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
	"grocery/internal/core/ports"
	"grocery/internal/pkg/errs"
	"grocery/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the error body shared by all endpoints.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CartItemResponse is one cart line as presented to the storefront.
type CartItemResponse struct {
	ItemID   int `json:"itemId"`
	Quantity int `json:"quantity"`
}

// CartResponse is the current cart contents in insertion order.
type CartResponse struct {
	Items []CartItemResponse `json:"items"`
}

// CartItemRequest carries the desired quantity for one cart line.
type CartItemRequest struct {
	Quantity int `json:"quantity"`
}

// CheckoutRequest carries everything checkout needs besides the stored cart.
type CheckoutRequest struct {
	Street              string  `json:"street"`
	City                string  `json:"city"`
	State               string  `json:"state"`
	ZipCode             string  `json:"zipCode"`
	Latitude            float64 `json:"latitude"`
	Longitude           float64 `json:"longitude"`
	PaymentMethod       string  `json:"paymentMethod"`
	SpecialInstructions string  `json:"specialInstructions"`
}

// CheckoutResponse returns the identifier of the created order.
type CheckoutResponse struct {
	OrderID string `json:"orderId"`
}

// UpdateStatusRequest carries the requested order status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// UpdatePaymentStatusRequest carries the payment outcome reported by the
// payment collaborator.
type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"paymentStatus"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	checkoutHandler            commands.CheckoutCommandHandler
	updateOrderStatusHandler   commands.UpdateOrderStatusCommandHandler
	updatePaymentStatusHandler commands.UpdatePaymentStatusCommandHandler

	// Query handlers
	getUserOrdersHandler queries.GetUserOrdersQueryHandler
	getOrderByIDHandler  queries.GetOrderByIDQueryHandler

	// Cart endpoints talk to the session store directly
	cartStore ports.CartStore
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	checkoutHandler commands.CheckoutCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	updatePaymentStatusHandler commands.UpdatePaymentStatusCommandHandler,
	getUserOrdersHandler queries.GetUserOrdersQueryHandler,
	getOrderByIDHandler queries.GetOrderByIDQueryHandler,
	cartStore ports.CartStore,
) *Server {
	return &Server{
		checkoutHandler:            checkoutHandler,
		updateOrderStatusHandler:   updateOrderStatusHandler,
		updatePaymentStatusHandler: updatePaymentStatusHandler,
		getUserOrdersHandler:       getUserOrdersHandler,
		getOrderByIDHandler:        getOrderByIDHandler,
		cartStore:                  cartStore,
	}
}

// RegisterRoutes wires all storefront endpoints onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.GET("/cart", s.GetCart)
	api.PUT("/cart/items/:itemId", s.PutCartItem)
	api.DELETE("/cart/items/:itemId", s.DeleteCartItem)
	api.DELETE("/cart", s.ClearCart)
	api.POST("/checkout", s.Checkout)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:id", s.GetOrderByID)
	api.POST("/orders/:id/status", s.UpdateOrderStatus)
	api.POST("/orders/:id/payment", s.UpdatePaymentStatus)

	e.GET("/health", s.Health)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
}

// GetCart handles GET /api/v1/cart - retrieves the user's current cart.
func (s *Server) GetCart(ctx echo.Context) error {
	userID, err := requestUserID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	userCart, err := s.cartStore.Get(ctx.Request().Context(), userID)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, cartResponse(userCart))
}

// PutCartItem handles PUT /api/v1/cart/items/:itemId - sets the quantity for
// one item, adding it to the cart if absent.
func (s *Server) PutCartItem(ctx echo.Context) error {
	userID, err := requestUserID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	itemID, err := strconv.Atoi(ctx.Param("itemId"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("itemId", err))
	}

	var req CartItemRequest
	if err = ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	requestCtx := ctx.Request().Context()
	userCart, err := s.cartStore.Get(requestCtx, userID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = userCart.SetQuantity(itemID, req.Quantity); err != nil {
		return respondError(ctx, err)
	}
	if err = s.cartStore.Save(requestCtx, userID, userCart); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, cartResponse(userCart))
}

// DeleteCartItem handles DELETE /api/v1/cart/items/:itemId - removes one item.
// Removing an absent item succeeds.
func (s *Server) DeleteCartItem(ctx echo.Context) error {
	userID, err := requestUserID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	itemID, err := strconv.Atoi(ctx.Param("itemId"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("itemId", err))
	}

	requestCtx := ctx.Request().Context()
	userCart, err := s.cartStore.Get(requestCtx, userID)
	if err != nil {
		return respondError(ctx, err)
	}

	userCart.RemoveItem(itemID)
	if err = s.cartStore.Save(requestCtx, userID, userCart); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, cartResponse(userCart))
}

// ClearCart handles DELETE /api/v1/cart - drops the user's cart.
func (s *Server) ClearCart(ctx echo.Context) error {
	userID, err := requestUserID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.cartStore.Delete(ctx.Request().Context(), userID); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// Checkout handles POST /api/v1/checkout - turns the stored cart into an order.
func (s *Server) Checkout(ctx echo.Context) error {
	userID, err := requestUserID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req CheckoutRequest
	if err = ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	cmd, err := commands.NewCheckoutCommand(
		userID,
		req.Street, req.City, req.State, req.ZipCode,
		req.Latitude, req.Longitude,
		req.PaymentMethod, req.SpecialInstructions,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := s.checkoutHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CheckoutResponse{OrderID: orderID.String()})
}

// GetOrders handles GET /api/v1/orders - retrieves the user's order history.
func (s *Server) GetOrders(ctx echo.Context) error {
	userID, err := requestUserID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetUserOrdersQuery(userID)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.getUserOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// GetOrderByID handles GET /api/v1/orders/:id - retrieves one order of the user.
func (s *Server) GetOrderByID(ctx echo.Context) error {
	userID, err := requestUserID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("orderId", err))
	}

	query, err := queries.NewGetOrderByIDQuery(orderID, userID)
	if err != nil {
		return respondError(ctx, err)
	}

	resp, err := s.getOrderByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, resp)
}

// UpdateOrderStatus handles POST /api/v1/orders/:id/status - requests a status
// transition. Whether the move is legal is decided by the order state machine.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("orderId", err))
	}

	var req UpdateStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdatePaymentStatus handles POST /api/v1/orders/:id/payment - records a
// payment outcome reported by the payment collaborator.
func (s *Server) UpdatePaymentStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("orderId", err))
	}

	var req UpdatePaymentStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	paymentStatus, err := order.PaymentStatusFromString(req.PaymentStatus)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdatePaymentStatusCommand(orderID, paymentStatus)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.updatePaymentStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// requestUserID extracts the authenticated user from the X-User-Id header.
func requestUserID(ctx echo.Context) (string, error) {
	userID := ctx.Request().Header.Get("X-User-Id")
	if userID == "" {
		return "", errs.NewValueIsRequiredError("X-User-Id header")
	}
	return userID, nil
}

func cartResponse(userCart *cart.Cart) CartResponse {
	entries := userCart.Entries()
	items := make([]CartItemResponse, 0, len(entries))
	for _, entry := range entries {
		items = append(items, CartItemResponse{
			ItemID:   entry.ItemID,
			Quantity: entry.Quantity,
		})
	}
	return CartResponse{Items: items}
}

// respondError maps domain error kinds onto HTTP status codes.
func respondError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrIllegalTransition):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrStoreUnavailable):
		code = http.StatusServiceUnavailable
	}

	return ctx.JSON(code, ErrorResponse{Code: code, Message: err.Error()})
}
