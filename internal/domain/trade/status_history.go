package trade

import (
	"github.com/farmcore/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// StatusHistory is an append-only record of one order status change. The
// trail replaces free-text note concatenation: each transition is its own
// row with its own timestamp and author.
type StatusHistory struct {
	shared.BaseEntity
	OrderID    uuid.UUID
	FromStatus OrderStatus
	ToStatus   OrderStatus
	Note       string
	ChangedBy  uuid.UUID
}

// NewStatusHistory records a single status transition
func NewStatusHistory(orderID uuid.UUID, from, to OrderStatus, note string, changedBy uuid.UUID) *StatusHistory {
	return &StatusHistory{
		BaseEntity: shared.NewBaseEntity(),
		OrderID:    orderID,
		FromStatus: from,
		ToStatus:   to,
		Note:       note,
		ChangedBy:  changedBy,
	}
}
