package usecase

import (
	"context"
	"log"
	"strings"

	"treatment_planner/internal/domain/entities"
	"treatment_planner/internal/usecase/interfaces"
)

// ItemsUseCase adds items to an existing phase. Items added to an approved plan
// are emergent: they are auto-submitted and send the plan back to review.
type ItemsUseCase struct {
	service  interfaces.IPlanService
	notifier interfaces.INotifier
	audit    *AuditRecorder
	guard    *OperationGuard
}

func NewItemsUseCase(service interfaces.IPlanService, notifier interfaces.INotifier, audit *AuditRecorder) *ItemsUseCase {
	return &ItemsUseCase{service: service, notifier: notifier, audit: audit, guard: NewOperationGuard()}
}

func (u *ItemsUseCase) AddItems(ctx context.Context, plan entities.Plan, phaseID string, items []entities.NewItem, caps entities.Capabilities) (entities.AddItemsResult, error) {
	release, ok := u.guard.TryAcquire(OpAddItems)
	if !ok {
		return entities.AddItemsResult{}, ErrOperationInProgress
	}
	defer release()

	phaseID = strings.TrimSpace(phaseID)
	if phaseID == "" {
		return entities.AddItemsResult{}, ErrInvalidPhaseID
	}
	if !caps.Edit {
		return entities.AddItemsResult{}, ErrPermissionDenied
	}
	if plan.ApprovalStatus == entities.ApprovalStatusPendingReview {
		return entities.AddItemsResult{}, ErrInvalidApprovalState
	}
	if _, ok := plan.PhaseByID(phaseID); !ok {
		return entities.AddItemsResult{}, ErrPhaseNotFound
	}
	if len(items) == 0 {
		return entities.AddItemsResult{}, ErrNoItemsToAdd
	}
	clean := make([]entities.NewItem, 0, len(items))
	for _, it := range items {
		it.ServiceCode = strings.TrimSpace(it.ServiceCode)
		it.Name = strings.TrimSpace(it.Name)
		if it.ServiceCode == "" && it.Name == "" {
			return entities.AddItemsResult{}, ErrInvalidNewItem
		}
		if !validPrice(it.Price) || it.EstimatedMinutes < 0 || it.Quantity < 0 {
			return entities.AddItemsResult{}, ErrInvalidNewItem
		}
		if it.Quantity == 0 {
			it.Quantity = 1
		}
		clean = append(clean, it)
	}

	autoSubmit := plan.ApprovalStatus == entities.ApprovalStatusApproved
	log.Printf("[plan][items] add start plan_code=%s phase_id=%s items=%d auto_submit=%t", plan.Code, phaseID, len(clean), autoSubmit)
	res, err := u.service.AddItemsToPhase(ctx, phaseID, clean, autoSubmit)
	if err != nil {
		log.Printf("[plan][items] add failed plan_code=%s phase_id=%s err=%v", plan.Code, phaseID, err)
		notifyFailure(ctx, u.notifier, "Could not add items", err)
		return entities.AddItemsResult{}, err
	}
	log.Printf("[plan][items] add success plan_code=%s phase_id=%s added=%d approval_required=%t", plan.Code, phaseID, len(res.Items), res.ApprovalRequired)

	if res.ApprovalRequired {
		u.notifier.Warning(ctx, "Items added; the plan was sent back for review", res.Message)
	} else {
		u.notifier.Success(ctx, "Items added", res.Message)
	}
	u.audit.Record(ctx, plan, entities.PlanEventItemsAdded, caps, "", map[string]any{
		"phase_id":    phaseID,
		"items":       clean,
		"auto_submit": autoSubmit,
	})
	return res, nil
}
