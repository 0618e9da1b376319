package usecase

import (
	"testing"

	"treatment_planner/internal/domain/entities"
)

func TestPhaseProgress(t *testing.T) {
	t.Run("two of three completed", func(t *testing.T) {
		p := PhaseProgress([]entities.Item{
			item("a", entities.ItemStatusCompleted),
			item("b", entities.ItemStatusCompleted),
			item("c", entities.ItemStatusReadyForBooking),
		})
		if p.CompletedItems != 2 || p.TotalItems != 3 {
			t.Fatalf("unexpected counts: %+v", p)
		}
		if p.ProgressPercent != 66.7 {
			t.Fatalf("expected 66.7, got %v", p.ProgressPercent)
		}
	})

	t.Run("skipped counts as done", func(t *testing.T) {
		p := PhaseProgress([]entities.Item{item("a", entities.ItemStatusSkipped), item("b", entities.ItemStatusPending)})
		if p.CompletedItems != 1 || p.ProgressPercent != 50 {
			t.Fatalf("unexpected progress: %+v", p)
		}
	})

	t.Run("empty phase", func(t *testing.T) {
		if p := PhaseProgress(nil); p.ProgressPercent != 0 || p.TotalItems != 0 {
			t.Fatalf("expected zero progress, got %+v", p)
		}
	})
}

func TestPhaseProgress_Bounds(t *testing.T) {
	statuses := []entities.ItemStatus{
		entities.ItemStatusPending,
		entities.ItemStatusWaitingForPrerequisite,
		entities.ItemStatusReadyForBooking,
		entities.ItemStatusCompleted,
		entities.ItemStatusSkipped,
	}
	for n := 0; n <= 12; n++ {
		items := make([]entities.Item, 0, n)
		for i := 0; i < n; i++ {
			items = append(items, item(string(rune('a'+i)), statuses[(i*7+n)%len(statuses)]))
		}
		p := PhaseProgress(items)
		if p.ProgressPercent < 0 || p.ProgressPercent > 100 {
			t.Fatalf("progress out of bounds for n=%d: %v", n, p.ProgressPercent)
		}
	}
}

func TestRollup(t *testing.T) {
	plan := entities.Plan{Phases: []entities.Phase{
		{ID: "ph-1", Status: entities.PhaseStatusCompleted, StatusReported: true, Items: []entities.Item{
			item("a", entities.ItemStatusCompleted),
			item("b", entities.ItemStatusCompleted),
		}},
		{ID: "ph-2", Items: []entities.Item{
			item("c", entities.ItemStatusCompleted),
			item("d", entities.ItemStatusReadyForBooking),
		}},
		{ID: "ph-3"},
	}}

	r := Rollup(plan)
	if r.Plan.CompletedItems != 3 || r.Plan.TotalItems != 4 || r.Plan.ProgressPercent != 75 {
		t.Fatalf("unexpected plan progress: %+v", r.Plan)
	}
	if r.Phases[0].Status != entities.PhaseStatusCompleted || r.Phases[0].StatusDerived {
		t.Fatalf("reported status must be kept: %+v", r.Phases[0])
	}
	// A missing status is not re-derived from items even when some are done.
	if r.Phases[1].Status != entities.PhaseStatusPending || !r.Phases[1].StatusDerived {
		t.Fatalf("missing status must fall back to PENDING: %+v", r.Phases[1])
	}
	if r.Phases[1].ProgressPercent != 50 {
		t.Fatalf("expected 50, got %v", r.Phases[1].ProgressPercent)
	}
	if r.Phases[2].ProgressPercent != 0 {
		t.Fatalf("empty phase must be 0")
	}
}

func TestReadiness(t *testing.T) {
	ready := item("a", entities.ItemStatusReadyForBooking)
	if !CanBook(ready, entities.ApprovalStatusApproved, capsBooker) {
		t.Fatalf("ready item on approved plan must be bookable")
	}
	if CanBook(ready, entities.ApprovalStatusPendingReview, capsBooker) {
		t.Fatalf("plan must be approved")
	}
	if CanBook(ready, entities.ApprovalStatusApproved, capsEditor) {
		t.Fatalf("booking capability required")
	}

	locked := entities.Item{ID: "b", Status: entities.ItemStatusWaitingForPrerequisite, PrerequisiteID: "svc-9", PrerequisiteName: "Extraction"}
	if CanBook(locked, entities.ApprovalStatusApproved, capsAll) {
		t.Fatalf("locked item must never be bookable")
	}
	if !IsLocked(locked) || LockReason(locked) != "Extraction" {
		t.Fatalf("expected lock with reason")
	}
	locked.PrerequisiteName = ""
	if LockReason(locked) != "svc-9" {
		t.Fatalf("expected prerequisite id fallback")
	}
	if LockReason(ready) != "" {
		t.Fatalf("unlocked item has no lock reason")
	}
}
