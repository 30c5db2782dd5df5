package flock

import (
	"time"

	"github.com/farmcore/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// EggProduction captures one day of egg collection for a layer batch. At
// most one entry exists per batch per date.
type EggProduction struct {
	shared.FarmAggregateRoot
	BatchID         uuid.UUID
	ProductionDate  time.Time
	TotalEggs       int
	GradeA          int
	GradeB          int
	GradeC          int
	BrokenCount     int
	DoubleYolkCount int
	Notes           string
}

// NewEggProduction creates an egg production entry for a layer batch
func NewEggProduction(farmID, batchID uuid.UUID, productionDate time.Time, totalEggs, gradeA, gradeB, gradeC, broken, doubleYolk int) (*EggProduction, error) {
	if batchID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_BATCH", "Batch ID cannot be empty")
	}
	if productionDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_DATE", "Production date is required")
	}
	if totalEggs < 0 || gradeA < 0 || gradeB < 0 || gradeC < 0 || broken < 0 || doubleYolk < 0 {
		return nil, shared.NewDomainError("INVALID_COUNT", "Egg counts cannot be negative")
	}
	if gradeA+gradeB+gradeC+broken > totalEggs {
		return nil, shared.NewDomainError("INVALID_GRADING", "Graded and broken eggs cannot exceed total eggs")
	}

	return &EggProduction{
		FarmAggregateRoot: shared.NewFarmAggregateRoot(farmID),
		BatchID:           batchID,
		ProductionDate:    productionDate.Truncate(24 * time.Hour),
		TotalEggs:         totalEggs,
		GradeA:            gradeA,
		GradeB:            gradeB,
		GradeC:            gradeC,
		BrokenCount:       broken,
		DoubleYolkCount:   doubleYolk,
	}, nil
}

// SellableEggs is the count of intact eggs available for sale
func (e *EggProduction) SellableEggs() int {
	return e.TotalEggs - e.BrokenCount
}
