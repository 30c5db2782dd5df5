package partner

import (
	"context"
	"time"

	"github.com/farmcore/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CustomerStats aggregates order figures for one customer, computed at
// query time from the orders table.
type CustomerStats struct {
	OrderCount    int64
	LifetimeValue decimal.Decimal
	LastOrderDate *time.Time
}

// TopCustomer pairs a customer with their total revenue for ranking.
type TopCustomer struct {
	Customer Customer
	Revenue  decimal.Decimal
}

// CustomerRepository defines the interface for customer persistence
type CustomerRepository interface {
	Save(ctx context.Context, c *Customer) error
	FindByID(ctx context.Context, id uuid.UUID) (*Customer, error)
	FindByIDForFarm(ctx context.Context, farmID, id uuid.UUID) (*Customer, error)
	FindAllForFarm(ctx context.Context, farmID uuid.UUID, filter shared.Filter) ([]Customer, error)
	CountForFarm(ctx context.Context, farmID uuid.UUID, filter shared.Filter) (int64, error)
	// ExistsActiveCode reports whether an active customer in the farm
	// already uses the code, excluding the given ID (uuid.Nil for creates).
	ExistsActiveCode(ctx context.Context, farmID uuid.UUID, code string, excludeID uuid.UUID) (bool, error)
	Stats(ctx context.Context, customerID uuid.UUID) (*CustomerStats, error)
	TopByRevenue(ctx context.Context, farmID uuid.UUID, limit int) ([]TopCustomer, error)
}
