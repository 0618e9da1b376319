package usecase

import (
	"math"
	"treatment_planner/internal/domain/entities"
)

// Progress is the completion ratio of a set of items.
type Progress struct {
	CompletedItems  int     `json:"completed_items"`
	TotalItems      int     `json:"total_items"`
	ProgressPercent float64 `json:"progress_percent"`
}

// PhaseProgress computes completed-or-skipped / total * 100, rounded to one decimal.
// An empty item list yields 0.
func PhaseProgress(items []entities.Item) Progress {
	p := Progress{TotalItems: len(items)}
	for _, it := range items {
		if IsDone(it) {
			p.CompletedItems++
		}
	}
	p.ProgressPercent = percent(p.CompletedItems, p.TotalItems)
	return p
}

// PlanProgress aggregates the same ratio over every item of every phase.
func PlanProgress(phases []entities.Phase) Progress {
	var p Progress
	for _, ph := range phases {
		pp := PhaseProgress(ph.Items)
		p.CompletedItems += pp.CompletedItems
		p.TotalItems += pp.TotalItems
	}
	p.ProgressPercent = percent(p.CompletedItems, p.TotalItems)
	return p
}

// PhaseRollup pairs the server phase status with the item-derived percentage.
type PhaseRollup struct {
	PhaseID       string               `json:"phase_id"`
	Status        entities.PhaseStatus `json:"status"`
	StatusDerived bool                 `json:"status_derived"`
	Progress
}

// Rollup fills the percentage for each phase and the plan. A reported phase status
// is kept as-is; a missing one is shown as PENDING and flagged as derived.
func Rollup(plan entities.Plan) PlanRollupResult {
	out := PlanRollupResult{
		Plan:   PlanProgress(plan.Phases),
		Phases: make([]PhaseRollup, 0, len(plan.Phases)),
	}
	for _, ph := range plan.Phases {
		status := ph.Status
		if !ph.StatusReported || status == "" {
			status = entities.PhaseStatusPending
		}
		out.Phases = append(out.Phases, PhaseRollup{
			PhaseID:       ph.ID,
			Status:        status,
			StatusDerived: !ph.StatusReported,
			Progress:      PhaseProgress(ph.Items),
		})
	}
	return out
}

type PlanRollupResult struct {
	Plan   Progress      `json:"plan"`
	Phases []PhaseRollup `json:"phases"`
}

func percent(done, total int) float64 {
	if total <= 0 {
		return 0
	}
	v := float64(done) / float64(total) * 100
	v = math.Round(v*10) / 10
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
