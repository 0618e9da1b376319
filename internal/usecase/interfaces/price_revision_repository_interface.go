package interfaces

import (
	"context"
	"treatment_planner/internal/domain/entities"
)

// IPriceRevisionRepository persists per-item price changes of committed batches.

type IPriceRevisionRepository interface {
	CreateBatch(ctx context.Context, revisions []entities.PriceRevision) error
	ListByPlanCode(ctx context.Context, planCode string) ([]entities.PriceRevision, error)
}
