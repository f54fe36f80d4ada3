package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/labcel/storefront/internal/api/metrics"
	"github.com/labcel/storefront/internal/api/middleware"
	"github.com/labcel/storefront/internal/core/ports"
)

// OrderHandler handles HTTP requests for the order workflow.
type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// Create handles POST /orders. Guests may check out; a valid session links
// the order to the account.
//
// @Summary      Place an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body      createOrderRequest  true  "Cart and customer details"
// @Success      200   {object}  createOrderResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	var req createOrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user := middleware.CurrentUser(c)
	result, err := h.service.CreateOrder(c.Request().Context(), toCreateOrderInput(req, user))
	if err != nil {
		return err
	}

	checkout := "guest"
	if user != nil {
		checkout = "account"
	}
	metrics.OrdersCreatedTotal.WithLabelValues(checkout).Inc()

	return c.JSON(http.StatusOK, createOrderResponse{
		OrderID: result.OrderID,
		Total:   result.Total,
		Status:  result.Status,
	})
}

// List handles GET /orders?status=. Admins see every order, customers their own.
//
// @Summary      List orders
// @Tags         orders
// @Produce      json
// @Security     SessionCookie
// @Param        status  query     string  false  "Filter by status"
// @Success      200     {array}   domain.Order
// @Failure      401     {object}  errorResponse
// @Router       /orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	user, err := requireUser(c)
	if err != nil {
		return err
	}
	orders, err := h.service.ListOrders(c.Request().Context(), ports.ListOrdersInput{
		Viewer: user,
		Status: c.QueryParam("status"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

// Get handles GET /orders/:order_id.
//
// @Summary      Get an order
// @Tags         orders
// @Produce      json
// @Security     SessionCookie
// @Param        order_id  path      string  true  "Order id (e.g. ORD-20250101-A1B2C3)"
// @Success      200       {object}  domain.Order
// @Failure      401       {object}  errorResponse
// @Failure      403       {object}  errorResponse
// @Failure      404       {object}  errorResponse
// @Router       /orders/{order_id} [get]
func (h *OrderHandler) Get(c echo.Context) error {
	user, err := requireUser(c)
	if err != nil {
		return err
	}
	order, err := h.service.GetOrder(c.Request().Context(), user, c.Param("order_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, order)
}

// Track handles GET /orders/track/:order_id. Public, narrowed view.
//
// @Summary      Track an order
// @Tags         orders
// @Produce      json
// @Param        order_id  path      string  true  "Order id"
// @Success      200       {object}  trackOrderResponse
// @Failure      404       {object}  errorResponse
// @Router       /orders/track/{order_id} [get]
func (h *OrderHandler) Track(c echo.Context) error {
	tracking, err := h.service.TrackOrder(c.Request().Context(), c.Param("order_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTrackOrderResponse(tracking))
}

// UpdateStatus handles PUT /orders/:order_id/status.
//
// @Summary      Update order status
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     SessionCookie
// @Param        order_id  path      string               true  "Order id"
// @Param        body      body      updateStatusRequest  true  "New status"
// @Success      200       {object}  updateStatusResponse
// @Failure      403       {object}  errorResponse
// @Failure      404       {object}  errorResponse
// @Failure      422       {object}  errorResponse
// @Router       /orders/{order_id}/status [put]
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	var req updateStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	err := h.service.UpdateStatus(c.Request().Context(), ports.UpdateStatusInput{
		OrderID: c.Param("order_id"),
		Status:  req.Status,
		Notes:   req.Notes,
	})
	if err != nil {
		return err
	}
	metrics.OrderStatusChangesTotal.WithLabelValues(req.Status).Inc()

	return c.JSON(http.StatusOK, updateStatusResponse{Message: "Estado actualizado", Status: req.Status})
}

// SendDesignProposal handles POST /orders/:order_id/design-proposal.
//
// @Summary      Send a design proposal
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     SessionCookie
// @Param        order_id  path      string                 true  "Order id"
// @Param        body      body      designProposalRequest  true  "Proposal"
// @Success      200       {object}  messageResponse
// @Failure      403       {object}  errorResponse
// @Failure      404       {object}  errorResponse
// @Failure      422       {object}  errorResponse
// @Router       /orders/{order_id}/design-proposal [post]
func (h *OrderHandler) SendDesignProposal(c echo.Context) error {
	var req designProposalRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	// The path wins over the body's order_id.
	input := toDesignProposalInput(c.Param("order_id"), req)
	if err := h.service.SendDesignProposal(c.Request().Context(), input); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Propuesta de diseño enviada"})
}

// ApproveDesign handles PUT /orders/:order_id/approve-design.
//
// @Summary      Approve an order's design
// @Tags         orders
// @Produce      json
// @Security     SessionCookie
// @Param        order_id  path      string  true  "Order id"
// @Success      200       {object}  messageResponse
// @Failure      403       {object}  errorResponse
// @Failure      404       {object}  errorResponse
// @Router       /orders/{order_id}/approve-design [put]
func (h *OrderHandler) ApproveDesign(c echo.Context) error {
	if err := h.service.ApproveDesign(c.Request().Context(), c.Param("order_id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Diseño aprobado"})
}
