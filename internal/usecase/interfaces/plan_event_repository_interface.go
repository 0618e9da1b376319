package interfaces

import (
	"context"
	"treatment_planner/internal/domain/entities"
)

// IPlanEventRepository persists the audit trail of plan mutations.

type IPlanEventRepository interface {
	Create(ctx context.Context, e entities.PlanEvent) (entities.PlanEvent, error)
	ListByPlanCode(ctx context.Context, planCode string) ([]entities.PlanEvent, error)
}
