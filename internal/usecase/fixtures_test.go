package usecase

import (
	"net/http"

	"treatment_planner/internal/domain/entities"
	"treatment_planner/pkg"
)

var (
	capsAll     = entities.Capabilities{Edit: true, Approve: true, EditPricing: true, Book: true}
	capsEditor  = entities.Capabilities{Edit: true}
	capsBooker  = entities.Capabilities{Book: true}
	capsPricing = entities.Capabilities{EditPricing: true}
)

func item(id string, status entities.ItemStatus) entities.Item {
	return entities.Item{ID: id, Name: "Item " + id, Status: status, Price: 100, EstimatedMinutes: 30}
}

func testPlan(approval entities.ApprovalStatus, items ...entities.Item) entities.Plan {
	return entities.Plan{
		ID:             "plan-id-1",
		Code:           "PLAN-1",
		Name:           "Orthodontic plan",
		Status:         entities.PlanStatusInProgress,
		ApprovalStatus: approval,
		Phases: []entities.Phase{
			{ID: "ph-1", Sequence: 1, Name: "Phase 1", Status: entities.PhaseStatusInProgress, StatusReported: true, Items: items},
		},
	}
}

func conflictErr() error {
	return pkg.NewDomainErrorSimple(CodeConcurrentModification, "Phase was modified", http.StatusConflict)
}

func notFoundErr() error {
	return pkg.NewDomainErrorSimple(CodePlanNotFound, "Plan not found", http.StatusNotFound)
}
