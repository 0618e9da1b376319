package interfaces

import (
	"context"
	"treatment_planner/internal/domain/entities"
)

// IPlanService abstracts the remote plan service, the only writer of plans.
//
// Every method returns plans already normalized (closed enums, no raw strings).
// Failures carry a *pkg.AppError with the service's machine code and HTTP status.

type IPlanService interface {
	GetPlan(ctx context.Context, planCode string) (entities.Plan, error)
	SubmitForReview(ctx context.Context, planCode string, notes string) (entities.Plan, error)
	ApproveOrReject(ctx context.Context, planCode string, status entities.ApprovalStatus, notes string) (entities.Plan, error)
	AddItemsToPhase(ctx context.Context, phaseID string, items []entities.NewItem, autoSubmit bool) (entities.AddItemsResult, error)
	ReorderItems(ctx context.Context, phaseID string, itemIDs []string) (entities.ReorderResult, error)
	UpdatePrices(ctx context.Context, planCode string, changes []entities.PriceChange) (entities.PriceUpdateResult, error)
	GenerateSchedule(ctx context.Context, scope entities.ScheduleScope, req entities.AutoScheduleRequest) (entities.ScheduleResult, error)
}
