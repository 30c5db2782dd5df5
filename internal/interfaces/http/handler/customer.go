package handler

import (
	"strconv"

	partnerapp "github.com/farmcore/backend/internal/application/partner"
	"github.com/gin-gonic/gin"
)

// defaultTopCustomersLimit bounds the top-customers report when the
// caller does not supply a limit
const defaultTopCustomersLimit = 5

// CustomerHandler handles customer CRUD and ranking endpoints
type CustomerHandler struct {
	BaseHandler
	customerService *partnerapp.CustomerService
}

// NewCustomerHandler creates a new CustomerHandler
func NewCustomerHandler(customerService *partnerapp.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// RegisterRoutes registers customer routes on a farm-scoped group
func (h *CustomerHandler) RegisterRoutes(scoped *gin.RouterGroup) {
	customers := scoped.Group("/customers")
	customers.POST("", h.Create)
	customers.GET("", h.List)
	customers.GET("/top", h.Top)
	customers.GET("/:id", h.Get)
	customers.PUT("/:id", h.Update)
	customers.DELETE("/:id", h.Delete)
}

// Create adds a customer to the farm
func (h *CustomerHandler) Create(c *gin.Context) {
	farmID, err := getFarmID(c)
	if err != nil {
		h.BadRequest(c, "Invalid farm ID format")
		return
	}

	var req partnerapp.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.customerService.Create(c.Request.Context(), farmID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, "Customer created successfully", resp)
}

// List returns the farm's customers
func (h *CustomerHandler) List(c *gin.Context) {
	farmID, err := getFarmID(c)
	if err != nil {
		h.BadRequest(c, "Invalid farm ID format")
		return
	}

	var req partnerapp.ListCustomersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	customers, total, err := h.customerService.List(c.Request.Context(), farmID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, "Customers retrieved successfully", customers, total, req.Page, req.PageSize)
}

// Top returns the farm's highest-revenue customers
func (h *CustomerHandler) Top(c *gin.Context) {
	farmID, err := getFarmID(c)
	if err != nil {
		h.BadRequest(c, "Invalid farm ID format")
		return
	}

	limit := defaultTopCustomersLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 100 {
			h.BadRequest(c, "Limit must be an integer between 1 and 100")
			return
		}
		limit = parsed
	}

	customers, err := h.customerService.TopCustomers(c.Request.Context(), farmID, limit)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, "Top customers retrieved successfully", customers)
}

// Get returns one customer with order statistics
func (h *CustomerHandler) Get(c *gin.Context) {
	farmID, err := getFarmID(c)
	if err != nil {
		h.BadRequest(c, "Invalid farm ID format")
		return
	}

	customerID, err := pathID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid customer ID format")
		return
	}

	resp, err := h.customerService.Get(c.Request.Context(), farmID, customerID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, "Customer retrieved successfully", resp)
}

// Update modifies a customer
func (h *CustomerHandler) Update(c *gin.Context) {
	farmID, err := getFarmID(c)
	if err != nil {
		h.BadRequest(c, "Invalid farm ID format")
		return
	}

	customerID, err := pathID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid customer ID format")
		return
	}

	var req partnerapp.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.customerService.Update(c.Request.Context(), farmID, customerID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, "Customer updated successfully", resp)
}

// Delete soft-deletes a customer with no in-flight orders
func (h *CustomerHandler) Delete(c *gin.Context) {
	farmID, err := getFarmID(c)
	if err != nil {
		h.BadRequest(c, "Invalid farm ID format")
		return
	}

	customerID, err := pathID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid customer ID format")
		return
	}

	if err := h.customerService.Delete(c.Request.Context(), farmID, customerID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, "Customer deleted successfully", nil)
}
