package handler

import (
	tradeapp "github.com/farmcore/backend/internal/application/trade"
	"github.com/gin-gonic/gin"
)

// OrderHandler handles sales order, status, and payment endpoints
type OrderHandler struct {
	BaseHandler
	orderService *tradeapp.OrderService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderService *tradeapp.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// RegisterRoutes registers order routes on a farm-scoped group
func (h *OrderHandler) RegisterRoutes(scoped *gin.RouterGroup) {
	orders := scoped.Group("/orders")
	orders.POST("", h.Create)
	orders.GET("", h.List)
	orders.GET("/:id", h.Get)
	orders.PUT("/:id/status", h.UpdateStatus)
	orders.GET("/:id/history", h.History)
	orders.POST("/:id/payments", h.RecordPayment)
	orders.GET("/:id/payments", h.ListPayments)
}

// Create creates an order with its items in one transaction
func (h *OrderHandler) Create(c *gin.Context) {
	farmID, err := getFarmID(c)
	if err != nil {
		h.BadRequest(c, "Invalid farm ID format")
		return
	}

	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req tradeapp.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.orderService.Create(c.Request.Context(), farmID, userID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, "Order created successfully", resp)
}

// List returns the farm's orders
func (h *OrderHandler) List(c *gin.Context) {
	farmID, err := getFarmID(c)
	if err != nil {
		h.BadRequest(c, "Invalid farm ID format")
		return
	}

	var req tradeapp.ListOrdersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	orders, total, err := h.orderService.List(c.Request.Context(), farmID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, "Orders retrieved successfully", orders, total, req.Page, req.PageSize)
}

// Get returns one order joined with its customer
func (h *OrderHandler) Get(c *gin.Context) {
	farmID, err := getFarmID(c)
	if err != nil {
		h.BadRequest(c, "Invalid farm ID format")
		return
	}

	orderID, err := pathID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	resp, err := h.orderService.Get(c.Request.Context(), farmID, orderID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, "Order retrieved successfully", resp)
}

// UpdateStatus advances an order along the status lifecycle
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	farmID, err := getFarmID(c)
	if err != nil {
		h.BadRequest(c, "Invalid farm ID format")
		return
	}

	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	orderID, err := pathID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	var req tradeapp.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.orderService.UpdateStatus(c.Request.Context(), farmID, orderID, userID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, "Order status updated successfully", resp)
}

// History returns an order's status transition trail
func (h *OrderHandler) History(c *gin.Context) {
	farmID, err := getFarmID(c)
	if err != nil {
		h.BadRequest(c, "Invalid farm ID format")
		return
	}

	orderID, err := pathID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	history, err := h.orderService.History(c.Request.Context(), farmID, orderID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, "Order history retrieved successfully", history)
}

// RecordPayment records a payment and rederives the payment status
func (h *OrderHandler) RecordPayment(c *gin.Context) {
	farmID, err := getFarmID(c)
	if err != nil {
		h.BadRequest(c, "Invalid farm ID format")
		return
	}

	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	orderID, err := pathID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	var req tradeapp.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.orderService.RecordPayment(c.Request.Context(), farmID, orderID, userID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, "Payment recorded successfully", resp)
}

// ListPayments returns an order's payments with derived totals
func (h *OrderHandler) ListPayments(c *gin.Context) {
	farmID, err := getFarmID(c)
	if err != nil {
		h.BadRequest(c, "Invalid farm ID format")
		return
	}

	orderID, err := pathID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	resp, err := h.orderService.ListPayments(c.Request.Context(), farmID, orderID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, "Payments retrieved successfully", resp)
}
