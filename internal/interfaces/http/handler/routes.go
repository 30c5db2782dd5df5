package handler

import (
	"github.com/gin-gonic/gin"
)

// FarmScopedRoutes bundles every endpoint living under /farms/:farmId
// behind the farm ownership check, plus the unscoped farm collection
// endpoints.
type FarmScopedRoutes struct {
	Ownership  gin.HandlerFunc
	Farms      *FarmHandler
	Houses     *HouseHandler
	Batches    *BatchHandler
	Production *ProductionHandler
	Customers  *CustomerHandler
	Orders     *OrderHandler
}

// RegisterRoutes registers the farm routes and all farm-scoped resources
func (r *FarmScopedRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	r.Farms.RegisterRoutes(rg, r.Ownership)

	scoped := rg.Group("/farms/:farmId", r.Ownership)
	r.Houses.RegisterRoutes(scoped)
	r.Batches.RegisterRoutes(scoped)
	r.Production.RegisterRoutes(scoped)
	r.Customers.RegisterRoutes(scoped)
	r.Orders.RegisterRoutes(scoped)
}
