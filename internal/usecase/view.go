package usecase

import "treatment_planner/internal/domain/entities"

type ItemView struct {
	entities.Item
	Bookable   bool                         `json:"bookable"`
	Locked     bool                         `json:"locked"`
	LockReason string                       `json:"lock_reason,omitempty"`
	Done       bool                         `json:"done"`
	Selected   bool                         `json:"selected"`
	Suggestion *entities.ScheduleSuggestion `json:"suggestion,omitempty"`
}

type PhaseView struct {
	ID            string               `json:"id"`
	Sequence      int                  `json:"sequence"`
	Name          string               `json:"name"`
	Status        entities.PhaseStatus `json:"status"`
	StatusDerived bool                 `json:"status_derived"`
	Progress
	Items []ItemView    `json:"items"`
	Order *ReorderState `json:"order,omitempty"`
}

// PlanView is everything the UI needs to render one plan for one caller.
type PlanView struct {
	ID             string                    `json:"id"`
	Code           string                    `json:"code"`
	Name           string                    `json:"name"`
	Status         entities.PlanStatus       `json:"status"`
	ApprovalStatus entities.ApprovalStatus   `json:"approval_status"`
	TotalPrice     float64                   `json:"total_price"`
	Discount       float64                   `json:"discount"`
	FinalCost      float64                   `json:"final_cost"`
	Approval       entities.ApprovalMetadata `json:"approval"`
	Progress
	Banner          Banner                   `json:"banner"`
	Actions         Actions                  `json:"actions"`
	Phases          []PhaseView              `json:"phases"`
	Selection       SelectionView            `json:"selection"`
	ScheduleSummary entities.ScheduleSummary `json:"schedule_summary"`
}

// BuildPlanView combines the rollup, the workflow state and the local selection,
// order and suggestion state into one view.
func BuildPlanView(
	plan entities.Plan,
	caps entities.Capabilities,
	selection *SelectionCoordinator,
	suggestions *SuggestionMapper,
	orders map[string]ReorderState,
) PlanView {
	rollup := Rollup(plan)
	v := PlanView{
		ID:             plan.ID,
		Code:           plan.Code,
		Name:           plan.Name,
		Status:         plan.Status,
		ApprovalStatus: plan.ApprovalStatus,
		TotalPrice:     plan.TotalPrice,
		Discount:       plan.Discount,
		FinalCost:      plan.FinalCost,
		Approval:       plan.Approval,
		Progress:       rollup.Plan,
		Banner:         DeriveBanner(plan.ApprovalStatus, plan.Approval.Notes != "", caps),
		Actions:        DeriveActions(plan, caps),
		Phases:         make([]PhaseView, 0, len(plan.Phases)),
		Selection:      selection.View(plan),
	}
	if suggestions != nil {
		v.ScheduleSummary = suggestions.Summary()
	}

	for i, ph := range plan.Phases {
		r := rollup.Phases[i]
		pv := PhaseView{
			ID:            ph.ID,
			Sequence:      ph.Sequence,
			Name:          ph.Name,
			Status:        r.Status,
			StatusDerived: r.StatusDerived,
			Progress:      r.Progress,
			Items:         make([]ItemView, 0, len(ph.Items)),
		}
		if st, ok := orders[ph.ID]; ok {
			st := st
			pv.Order = &st
		}
		for _, it := range ph.Items {
			iv := ItemView{
				Item:       it,
				Bookable:   CanBook(it, plan.ApprovalStatus, caps),
				Locked:     IsLocked(it),
				LockReason: LockReason(it),
				Done:       IsDone(it),
				Selected:   selection.IsSelected(it.ID),
			}
			if suggestions != nil {
				if s, ok := suggestions.Lookup(it.ID); ok {
					iv.Suggestion = &s
				}
			}
			pv.Items = append(pv.Items, iv)
		}
		v.Phases = append(v.Phases, pv)
	}
	return v
}
