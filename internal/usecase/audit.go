package usecase

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"treatment_planner/internal/domain/entities"
	"treatment_planner/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// AuditRecorder appends plan mutations to the audit stores. Failures are logged and
// never surface to the caller; a nil recorder or nil repositories record nothing.
type AuditRecorder struct {
	events interfaces.IPlanEventRepository
	prices interfaces.IPriceRevisionRepository
}

func NewAuditRecorder(events interfaces.IPlanEventRepository, prices interfaces.IPriceRevisionRepository) *AuditRecorder {
	return &AuditRecorder{events: events, prices: prices}
}

func (a *AuditRecorder) Record(ctx context.Context, plan entities.Plan, kind entities.PlanEventKind, caps entities.Capabilities, notes string, payload any) {
	if a == nil || a.events == nil {
		return
	}
	var raw json.RawMessage
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			log.Printf("[plan][audit] payload marshal failed plan_code=%s kind=%s err=%v", plan.Code, kind, err)
		} else {
			raw = b
		}
	}
	e := entities.PlanEvent{
		ID:             uuid.NewString(),
		PlanCode:       plan.Code,
		Kind:           kind,
		ApprovalStatus: plan.ApprovalStatus,
		Capabilities:   caps,
		Notes:          notes,
		Payload:        raw,
		CreatedAt:      time.Now().UTC(),
	}
	if _, err := a.events.Create(ctx, e); err != nil {
		log.Printf("[plan][audit] event create failed plan_code=%s kind=%s err=%v", plan.Code, kind, err)
	}
}

// RecordPrices stores one revision per changed item, sharing a batch id.
func (a *AuditRecorder) RecordPrices(ctx context.Context, planCode string, lines []PriceLine) {
	if a == nil || a.prices == nil || len(lines) == 0 {
		return
	}
	batchID := uuid.NewString()
	now := time.Now().UTC()
	revs := make([]entities.PriceRevision, 0, len(lines))
	for _, l := range lines {
		revs = append(revs, entities.PriceRevision{
			ID:        uuid.NewString(),
			BatchID:   batchID,
			PlanCode:  planCode,
			ItemID:    l.ItemID,
			OldPrice:  l.CurrentPrice,
			NewPrice:  l.NewPrice,
			Note:      l.Note,
			CreatedAt: now,
		})
	}
	if err := a.prices.CreateBatch(ctx, revs); err != nil {
		log.Printf("[plan][audit] price revisions create failed plan_code=%s batch_id=%s err=%v", planCode, batchID, err)
	}
}

// Events lists the audit trail of a plan.
func (a *AuditRecorder) Events(ctx context.Context, planCode string) ([]entities.PlanEvent, error) {
	if a == nil || a.events == nil {
		return []entities.PlanEvent{}, nil
	}
	return a.events.ListByPlanCode(ctx, planCode)
}

// PriceRevisions lists the recorded price changes of a plan, oldest first.
func (a *AuditRecorder) PriceRevisions(ctx context.Context, planCode string) ([]entities.PriceRevision, error) {
	if a == nil || a.prices == nil {
		return []entities.PriceRevision{}, nil
	}
	return a.prices.ListByPlanCode(ctx, planCode)
}
