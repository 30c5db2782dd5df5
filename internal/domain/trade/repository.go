package trade

import (
	"context"

	"github.com/farmcore/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderRepository defines the interface for order persistence
type OrderRepository interface {
	// Save persists the order header and all of its items in one
	// transaction: either every row is committed or none are.
	Save(ctx context.Context, o *Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)
	FindByIDForFarm(ctx context.Context, farmID, id uuid.UUID) (*Order, error)
	FindAllForFarm(ctx context.Context, farmID uuid.UUID, filter shared.Filter) ([]Order, error)
	CountForFarm(ctx context.Context, farmID uuid.UUID, filter shared.Filter) (int64, error)
	ExistsNumber(ctx context.Context, farmID uuid.UUID, orderNumber string) (bool, error)
	// CountInFlightForCustomer counts the customer's orders whose status
	// is outside the terminal set, for soft-delete guards.
	CountInFlightForCustomer(ctx context.Context, customerID uuid.UUID) (int64, error)
	// SaveWithHistory persists the order header update and appends a
	// status history row in the same transaction.
	SaveWithHistory(ctx context.Context, o *Order, h *StatusHistory) error
	FindHistory(ctx context.Context, orderID uuid.UUID) ([]StatusHistory, error)
	CountByStatusForFarm(ctx context.Context, farmID uuid.UUID) (map[OrderStatus]int64, error)
	RevenueForFarm(ctx context.Context, farmID uuid.UUID) (decimal.Decimal, error)
}

// PaymentRepository defines the interface for payment persistence
type PaymentRepository interface {
	Save(ctx context.Context, p *Payment) error
	FindByOrder(ctx context.Context, orderID uuid.UUID) ([]Payment, error)
	// SumByOrder recomputes the total paid from the full set of recorded
	// payments for the order.
	SumByOrder(ctx context.Context, orderID uuid.UUID) (decimal.Decimal, error)
	ExistsNumber(ctx context.Context, farmID uuid.UUID, paymentNumber string) (bool, error)
}
