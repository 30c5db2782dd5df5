package handler

import (
	farmapp "github.com/farmcore/backend/internal/application/farm"
	"github.com/gin-gonic/gin"
)

// HouseHandler handles house CRUD endpoints
type HouseHandler struct {
	BaseHandler
	houseService *farmapp.HouseService
}

// NewHouseHandler creates a new HouseHandler
func NewHouseHandler(houseService *farmapp.HouseService) *HouseHandler {
	return &HouseHandler{houseService: houseService}
}

// RegisterRoutes registers house routes on a farm-scoped group
func (h *HouseHandler) RegisterRoutes(scoped *gin.RouterGroup) {
	houses := scoped.Group("/houses")
	houses.POST("", h.Create)
	houses.GET("", h.List)
	houses.GET("/:id", h.Get)
	houses.PUT("/:id", h.Update)
	houses.DELETE("/:id", h.Delete)
}

// Create adds a house to the farm
func (h *HouseHandler) Create(c *gin.Context) {
	farmID, err := getFarmID(c)
	if err != nil {
		h.BadRequest(c, "Invalid farm ID format")
		return
	}

	var req farmapp.CreateHouseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.houseService.Create(c.Request.Context(), farmID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, "House created successfully", resp)
}

// List returns the farm's houses with current occupancy
func (h *HouseHandler) List(c *gin.Context) {
	farmID, err := getFarmID(c)
	if err != nil {
		h.BadRequest(c, "Invalid farm ID format")
		return
	}

	var req farmapp.ListHousesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	houses, total, err := h.houseService.List(c.Request.Context(), farmID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, "Houses retrieved successfully", houses, total, req.Page, req.PageSize)
}

// Get returns one house with current occupancy
func (h *HouseHandler) Get(c *gin.Context) {
	farmID, err := getFarmID(c)
	if err != nil {
		h.BadRequest(c, "Invalid farm ID format")
		return
	}

	houseID, err := pathID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid house ID format")
		return
	}

	resp, err := h.houseService.Get(c.Request.Context(), farmID, houseID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, "House retrieved successfully", resp)
}

// Update modifies a house
func (h *HouseHandler) Update(c *gin.Context) {
	farmID, err := getFarmID(c)
	if err != nil {
		h.BadRequest(c, "Invalid farm ID format")
		return
	}

	houseID, err := pathID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid house ID format")
		return
	}

	var req farmapp.UpdateHouseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.houseService.Update(c.Request.Context(), farmID, houseID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, "House updated successfully", resp)
}

// Delete soft-deletes a vacant house
func (h *HouseHandler) Delete(c *gin.Context) {
	farmID, err := getFarmID(c)
	if err != nil {
		h.BadRequest(c, "Invalid farm ID format")
		return
	}

	houseID, err := pathID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid house ID format")
		return
	}

	if err := h.houseService.Delete(c.Request.Context(), farmID, houseID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, "House deleted successfully", nil)
}
