package handler

import (
	flockapp "github.com/farmcore/backend/internal/application/flock"
	"github.com/gin-gonic/gin"
)

// ProductionHandler handles daily production and egg production endpoints
type ProductionHandler struct {
	BaseHandler
	productionService *flockapp.ProductionService
}

// NewProductionHandler creates a new ProductionHandler
func NewProductionHandler(productionService *flockapp.ProductionService) *ProductionHandler {
	return &ProductionHandler{productionService: productionService}
}

// RegisterRoutes registers production record routes on a farm-scoped group
func (h *ProductionHandler) RegisterRoutes(scoped *gin.RouterGroup) {
	batches := scoped.Group("/batches/:id")
	batches.POST("/daily-records", h.CreateDailyRecord)
	batches.GET("/daily-records", h.ListDailyRecords)
	batches.POST("/egg-production", h.CreateEggProduction)
	batches.GET("/egg-production", h.ListEggProduction)
}

// CreateDailyRecord records one day of mortality, feed, and environment
func (h *ProductionHandler) CreateDailyRecord(c *gin.Context) {
	farmID, err := getFarmID(c)
	if err != nil {
		h.BadRequest(c, "Invalid farm ID format")
		return
	}

	batchID, err := pathID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid batch ID format")
		return
	}

	var req flockapp.CreateDailyRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.productionService.CreateDailyRecord(c.Request.Context(), farmID, batchID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, "Daily record created successfully", resp)
}

// ListDailyRecords returns a batch's daily records, optionally date-bounded
func (h *ProductionHandler) ListDailyRecords(c *gin.Context) {
	farmID, err := getFarmID(c)
	if err != nil {
		h.BadRequest(c, "Invalid farm ID format")
		return
	}

	batchID, err := pathID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid batch ID format")
		return
	}

	var req flockapp.ListRecordsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	records, total, err := h.productionService.ListDailyRecords(c.Request.Context(), farmID, batchID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, "Daily records retrieved successfully", records, total, req.Page, req.PageSize)
}

// CreateEggProduction records graded egg output for a layer batch
func (h *ProductionHandler) CreateEggProduction(c *gin.Context) {
	farmID, err := getFarmID(c)
	if err != nil {
		h.BadRequest(c, "Invalid farm ID format")
		return
	}

	batchID, err := pathID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid batch ID format")
		return
	}

	var req flockapp.CreateEggProductionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.productionService.CreateEggProduction(c.Request.Context(), farmID, batchID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, "Egg production recorded successfully", resp)
}

// ListEggProduction returns a layer batch's egg production records
func (h *ProductionHandler) ListEggProduction(c *gin.Context) {
	farmID, err := getFarmID(c)
	if err != nil {
		h.BadRequest(c, "Invalid farm ID format")
		return
	}

	batchID, err := pathID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid batch ID format")
		return
	}

	var req flockapp.ListRecordsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	records, total, err := h.productionService.ListEggProduction(c.Request.Context(), farmID, batchID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, "Egg production retrieved successfully", records, total, req.Page, req.PageSize)
}
