package handler

import (
	flockapp "github.com/farmcore/backend/internal/application/flock"
	"github.com/gin-gonic/gin"
)

// BatchHandler handles production batch endpoints
type BatchHandler struct {
	BaseHandler
	batchService *flockapp.BatchService
}

// NewBatchHandler creates a new BatchHandler
func NewBatchHandler(batchService *flockapp.BatchService) *BatchHandler {
	return &BatchHandler{batchService: batchService}
}

// RegisterRoutes registers batch routes on a farm-scoped group
func (h *BatchHandler) RegisterRoutes(scoped *gin.RouterGroup) {
	batches := scoped.Group("/batches")
	batches.POST("", h.Create)
	batches.GET("", h.List)
	batches.GET("/:id", h.Get)
	batches.PUT("/:id", h.Update)
	batches.POST("/:id/complete", h.Complete)
	batches.GET("/:id/statistics", h.Statistics)
}

// Create places a new batch into a vacant house
func (h *BatchHandler) Create(c *gin.Context) {
	farmID, err := getFarmID(c)
	if err != nil {
		h.BadRequest(c, "Invalid farm ID format")
		return
	}

	var req flockapp.CreateBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.batchService.Create(c.Request.Context(), farmID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, "Batch created successfully", resp)
}

// List returns the farm's batches
func (h *BatchHandler) List(c *gin.Context) {
	farmID, err := getFarmID(c)
	if err != nil {
		h.BadRequest(c, "Invalid farm ID format")
		return
	}

	var req flockapp.ListBatchesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	batches, total, err := h.batchService.List(c.Request.Context(), farmID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, "Batches retrieved successfully", batches, total, req.Page, req.PageSize)
}

// Get returns one batch with its production statistics
func (h *BatchHandler) Get(c *gin.Context) {
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

	resp, err := h.batchService.Get(c.Request.Context(), farmID, batchID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, "Batch retrieved successfully", resp)
}

// Update modifies an active batch
func (h *BatchHandler) Update(c *gin.Context) {
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

	var req flockapp.UpdateBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.batchService.Update(c.Request.Context(), farmID, batchID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, "Batch updated successfully", resp)
}

// Complete closes out a batch and frees its house
func (h *BatchHandler) Complete(c *gin.Context) {
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

	// The harvest date is optional, and so is the body carrying it
	var req flockapp.CompleteBatchRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.BindingError(c, err)
			return
		}
	}

	resp, err := h.batchService.Complete(c.Request.Context(), farmID, batchID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, "Batch completed successfully", resp)
}

// Statistics returns derived production statistics for a batch
func (h *BatchHandler) Statistics(c *gin.Context) {
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

	resp, err := h.batchService.Get(c.Request.Context(), farmID, batchID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, "Batch statistics retrieved successfully", resp.Statistics)
}
