package usecase

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"treatment_planner/internal/domain/entities"
	mock_interfaces "treatment_planner/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func pricedPlan() entities.Plan {
	a := item("a", entities.ItemStatusPending)
	a.Price = 200000
	b := item("b", entities.ItemStatusPending)
	b.Price = 80000
	return testPlan(entities.ApprovalStatusApproved, a, b)
}

func TestPriceReconciler_Preview(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := NewPriceReconciler(mock_interfaces.NewMockIPlanService(ctrl), mock_interfaces.NewMockINotifier(ctrl), nil)
	r.Rebase(pricedPlan())

	t.Run("single decrease", func(t *testing.T) {
		if err := r.Stage("a", 150000, ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		p := r.Preview()
		if p.Lines[0].Delta != -50000 || !p.Lines[0].Changed {
			t.Fatalf("unexpected line: %+v", p.Lines[0])
		}
		if p.AggregateDelta != -50000 || p.CurrentTotal != 200000 || p.NewTotal != 150000 {
			t.Fatalf("unexpected totals: %+v", p)
		}
		if !p.CanSubmit || len(p.ChangedItemIDs) != 1 || p.ChangedItemIDs[0] != "a" {
			t.Fatalf("expected a submittable single change: %+v", p)
		}
	})

	t.Run("identity change is not a change", func(t *testing.T) {
		r.Reset()
		r.Stage("b", 80000, "same")
		p := r.Preview()
		if p.CanSubmit || len(p.ChangedItemIDs) != 0 || p.AggregateDelta != 0 {
			t.Fatalf("expected no changes: %+v", p)
		}
	})

	t.Run("long note on an unchanged line does not block", func(t *testing.T) {
		r.Reset()
		r.Stage("a", 150000, "")
		r.Stage("b", 80000, strings.Repeat("n", MaxPriceNoteLength+1))
		p := r.Preview()
		if !p.Lines[1].NoteTooLong || p.Lines[1].Changed {
			t.Fatalf("unexpected line: %+v", p.Lines[1])
		}
		if !p.CanSubmit {
			t.Fatalf("expected the change on a to stay submittable: %+v", p)
		}

		r.Stage("b", 90000, strings.Repeat("n", MaxPriceNoteLength+1))
		if r.Preview().CanSubmit {
			t.Fatalf("expected a long note on a changed line to block")
		}
	})

	t.Run("invalid candidates block submission", func(t *testing.T) {
		for _, bad := range []float64{-1, math.NaN(), math.Inf(1)} {
			r.Reset()
			r.Stage("a", 150000, "")
			r.Stage("b", bad, "")
			p := r.Preview()
			if p.CanSubmit || len(p.InvalidItemIDs) != 1 || p.InvalidItemIDs[0] != "b" {
				t.Fatalf("price %v: expected b invalid: %+v", bad, p)
			}
			if p.AggregateDelta != -50000 {
				t.Fatalf("invalid lines must not count towards the aggregate: %+v", p)
			}
		}
	})

	t.Run("unknown item", func(t *testing.T) {
		if err := r.Stage("zzz", 1, ""); !errors.Is(err, ErrItemNotFound) {
			t.Fatalf("expected ErrItemNotFound, got %v", err)
		}
	})

	t.Run("rebase drops vanished items", func(t *testing.T) {
		r.Reset()
		r.Stage("b", 1, "")
		plan := pricedPlan()
		plan.Phases[0].Items = plan.Phases[0].Items[:1]
		r.Rebase(plan)
		if p := r.Preview(); len(p.Lines) != 1 || len(p.ChangedItemIDs) != 0 {
			t.Fatalf("expected only item a without changes: %+v", p)
		}
	})
}

func TestPriceReconciler_Commit(t *testing.T) {
	ctx := context.Background()

	t.Run("local rejections never reach the service", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		r := NewPriceReconciler(mock_interfaces.NewMockIPlanService(ctrl), mock_interfaces.NewMockINotifier(ctrl), nil)
		r.Rebase(pricedPlan())

		if _, err := r.Commit(ctx, "PLAN-1", capsPricing); !errors.Is(err, ErrNoPriceChanges) {
			t.Fatalf("expected ErrNoPriceChanges, got %v", err)
		}
		r.Stage("a", -5, "")
		if _, err := r.Commit(ctx, "PLAN-1", capsPricing); !errors.Is(err, ErrInvalidPrice) {
			t.Fatalf("expected ErrInvalidPrice, got %v", err)
		}
		r.Stage("a", 10, strings.Repeat("n", MaxPriceNoteLength+1))
		if _, err := r.Commit(ctx, "PLAN-1", capsPricing); !errors.Is(err, ErrNotesTooLong) {
			t.Fatalf("expected ErrNotesTooLong, got %v", err)
		}
		if _, err := r.Commit(ctx, "PLAN-1", capsEditor); !errors.Is(err, ErrPermissionDenied) {
			t.Fatalf("expected ErrPermissionDenied, got %v", err)
		}
	})

	t.Run("long note on an unchanged line is not sent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock_interfaces.NewMockIPlanService(ctrl)
		n := mock_interfaces.NewMockINotifier(ctrl)
		r := NewPriceReconciler(svc, n, nil)
		r.Rebase(pricedPlan())
		r.Stage("a", 150000, "")
		r.Stage("b", 80000, strings.Repeat("n", MaxPriceNoteLength+1))

		svc.EXPECT().UpdatePrices(gomock.Any(), "PLAN-1", []entities.PriceChange{{ItemID: "a", NewPrice: 150000}}).
			Return(entities.PriceUpdateResult{ItemsUpdated: 1, TotalCostBefore: 280000, TotalCostAfter: 230000}, nil)
		n.EXPECT().Success(gomock.Any(), "Prices updated", gomock.Any())

		if _, err := r.Commit(ctx, "PLAN-1", capsPricing); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("only changed items are sent and server totals win", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock_interfaces.NewMockIPlanService(ctrl)
		n := mock_interfaces.NewMockINotifier(ctrl)
		prices := mock_interfaces.NewMockIPriceRevisionRepository(ctrl)
		r := NewPriceReconciler(svc, n, NewAuditRecorder(nil, prices))
		r.Rebase(pricedPlan())
		r.Stage("a", 150000, "discount")
		r.Stage("b", 80000, "")

		server := entities.PriceUpdateResult{ItemsUpdated: 1, TotalCostBefore: 280000, TotalCostAfter: 229000}
		svc.EXPECT().UpdatePrices(gomock.Any(), "PLAN-1", []entities.PriceChange{{ItemID: "a", NewPrice: 150000, Note: "discount"}}).Return(server, nil)
		n.EXPECT().Success(gomock.Any(), "Prices updated", "Total 280000.00 -> 229000.00")
		prices.EXPECT().CreateBatch(gomock.Any(), gomock.Len(1)).DoAndReturn(
			func(_ context.Context, revs []entities.PriceRevision) error {
				if revs[0].OldPrice != 200000 || revs[0].NewPrice != 150000 || revs[0].BatchID == "" {
					t.Fatalf("unexpected revision: %+v", revs[0])
				}
				return nil
			},
		)

		res, err := r.Commit(ctx, "PLAN-1", capsPricing)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Result != server || res.LocalDelta != -50000 {
			t.Fatalf("unexpected result: %+v", res)
		}
		if p := r.Preview(); len(p.ChangedItemIDs) != 0 {
			t.Fatalf("working set must be cleared after commit: %+v", p)
		}
	})

	t.Run("remote failure keeps the working set", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock_interfaces.NewMockIPlanService(ctrl)
		n := mock_interfaces.NewMockINotifier(ctrl)
		r := NewPriceReconciler(svc, n, nil)
		r.Rebase(pricedPlan())
		r.Stage("a", 1000, "")

		svc.EXPECT().UpdatePrices(gomock.Any(), "PLAN-1", gomock.Any()).Return(entities.PriceUpdateResult{}, conflictErr())
		n.EXPECT().Warning(gomock.Any(), gomock.Any(), gomock.Any())

		if _, err := r.Commit(ctx, "PLAN-1", capsPricing); ClassifyError(err) != KindConflict {
			t.Fatalf("expected conflict, got %v", err)
		}
		if p := r.Preview(); len(p.ChangedItemIDs) != 1 {
			t.Fatalf("staged prices must survive a failed commit: %+v", p)
		}
	})
}
