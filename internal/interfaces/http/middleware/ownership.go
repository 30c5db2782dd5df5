package middleware

import (
	"errors"
	"net/http"

	"github.com/farmcore/backend/internal/domain/farm"
	"github.com/farmcore/backend/internal/domain/shared"
	"github.com/farmcore/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// FarmIDKey is the context key for the resolved farm ID
const FarmIDKey = "farm_id"

// FarmOwnership returns a middleware guarding every farm-scoped route.
// It resolves the :farmId path parameter, verifies the farm exists, and
// rejects callers who neither own the farm nor hold the admin role.
func FarmOwnership(farmRepo farm.FarmRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		farmID, err := uuid.Parse(c.Param("farmId"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest,
				dto.NewErrorResponse(dto.ErrCodeBadRequest, "Invalid farm ID format"))
			return
		}

		f, err := farmRepo.FindByID(c.Request.Context(), farmID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				// Non-admins get the same 403 whether the farm is
				// missing or someone else's, so responses do not
				// reveal which farm IDs exist
				if !IsAdmin(c) {
					c.AbortWithStatusJSON(http.StatusForbidden,
						dto.NewErrorResponse(dto.ErrCodeForbidden, "You do not have access to this farm"))
					return
				}
				c.AbortWithStatusJSON(http.StatusNotFound,
					dto.NewErrorResponse(dto.ErrCodeNotFound, "Farm not found"))
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError,
				dto.NewErrorResponse(dto.ErrCodeInternal, "An unexpected error occurred"))
			return
		}

		if !IsAdmin(c) {
			callerID, err := uuid.Parse(GetJWTUserID(c))
			if err != nil || !f.IsOwnedBy(callerID) {
				c.AbortWithStatusJSON(http.StatusForbidden,
					dto.NewErrorResponse(dto.ErrCodeForbidden, "You do not have access to this farm"))
				return
			}
		}

		c.Set(FarmIDKey, farmID)
		c.Next()
	}
}

// GetFarmID retrieves the farm ID resolved by the ownership middleware
func GetFarmID(c *gin.Context) (uuid.UUID, bool) {
	if v, exists := c.Get(FarmIDKey); exists {
		if id, ok := v.(uuid.UUID); ok {
			return id, true
		}
	}
	return uuid.Nil, false
}
