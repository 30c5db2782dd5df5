package farm

import (
	"context"

	"github.com/farmcore/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// FarmRepository defines the interface for farm persistence
type FarmRepository interface {
	Save(ctx context.Context, f *Farm) error
	FindByID(ctx context.Context, id uuid.UUID) (*Farm, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]Farm, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Farm, error)
	CountByOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) (int64, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// HouseRepository defines the interface for house persistence
type HouseRepository interface {
	Save(ctx context.Context, h *House) error
	FindByID(ctx context.Context, id uuid.UUID) (*House, error)
	FindByIDForFarm(ctx context.Context, farmID, id uuid.UUID) (*House, error)
	FindAllForFarm(ctx context.Context, farmID uuid.UUID, filter shared.Filter) ([]House, error)
	CountForFarm(ctx context.Context, farmID uuid.UUID, filter shared.Filter) (int64, error)
	// ExistsActiveCode reports whether an active house in the farm already
	// uses the code, excluding the given house ID (uuid.Nil for creates).
	ExistsActiveCode(ctx context.Context, farmID uuid.UUID, code string, excludeID uuid.UUID) (bool, error)
}
