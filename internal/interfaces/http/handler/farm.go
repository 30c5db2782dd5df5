package handler

import (
	farmapp "github.com/farmcore/backend/internal/application/farm"
	"github.com/farmcore/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// FarmHandler handles farm CRUD and dashboard endpoints
type FarmHandler struct {
	BaseHandler
	farmService *farmapp.FarmService
}

// NewFarmHandler creates a new FarmHandler
func NewFarmHandler(farmService *farmapp.FarmService) *FarmHandler {
	return &FarmHandler{farmService: farmService}
}

// RegisterRoutes registers farm routes on the given group. The ownership
// guard applies to everything below /farms/:farmId; creation and listing
// are scoped to the caller instead.
func (h *FarmHandler) RegisterRoutes(rg *gin.RouterGroup, ownership gin.HandlerFunc) {
	rg.POST("/farms", h.Create)
	rg.GET("/farms", h.List)

	scoped := rg.Group("/farms/:farmId", ownership)
	scoped.GET("", h.Get)
	scoped.PUT("", h.Update)
	scoped.DELETE("", h.Delete)
	scoped.GET("/dashboard", h.Dashboard)
}

// Create registers a new farm owned by the caller
func (h *FarmHandler) Create(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req farmapp.CreateFarmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.farmService.Create(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, "Farm created successfully", resp)
}

// List returns the caller's farms; admins see every farm
func (h *FarmHandler) List(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req farmapp.ListFarmsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	farms, total, err := h.farmService.List(c.Request.Context(), userID, middleware.IsAdmin(c), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, "Farms retrieved successfully", farms, total, req.Page, req.PageSize)
}

// Get returns one farm
func (h *FarmHandler) Get(c *gin.Context) {
	farmID, err := getFarmID(c)
	if err != nil {
		h.BadRequest(c, "Invalid farm ID format")
		return
	}

	resp, err := h.farmService.Get(c.Request.Context(), farmID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, "Farm retrieved successfully", resp)
}

// Update modifies a farm
func (h *FarmHandler) Update(c *gin.Context) {
	farmID, err := getFarmID(c)
	if err != nil {
		h.BadRequest(c, "Invalid farm ID format")
		return
	}

	var req farmapp.UpdateFarmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.farmService.Update(c.Request.Context(), farmID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, "Farm updated successfully", resp)
}

// Delete soft-deletes a farm with no active batches
func (h *FarmHandler) Delete(c *gin.Context) {
	farmID, err := getFarmID(c)
	if err != nil {
		h.BadRequest(c, "Invalid farm ID format")
		return
	}

	if err := h.farmService.Delete(c.Request.Context(), farmID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, "Farm deleted successfully", nil)
}

// Dashboard returns aggregate statistics for a farm
func (h *FarmHandler) Dashboard(c *gin.Context) {
	farmID, err := getFarmID(c)
	if err != nil {
		h.BadRequest(c, "Invalid farm ID format")
		return
	}

	resp, err := h.farmService.Dashboard(c.Request.Context(), farmID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, "Dashboard retrieved successfully", resp)
}
