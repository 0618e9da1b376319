package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"treatment_planner/internal/domain/entities"
	mock_interfaces "treatment_planner/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestDeriveBanner_Exhaustive(t *testing.T) {
	type key struct {
		status  entities.ApprovalStatus
		edit    bool
		approve bool
	}
	expected := map[key]Banner{}
	for _, edit := range []bool{false, true} {
		for _, approve := range []bool{false, true} {
			expected[key{entities.ApprovalStatusDraft, edit, approve}] = BannerEditableDraft
			expected[key{entities.ApprovalStatusRejected, edit, approve}] = BannerReturnedForEdit
			expected[key{entities.ApprovalStatusApproved, edit, approve}] = BannerNone
			if approve {
				expected[key{entities.ApprovalStatusPendingReview, edit, approve}] = BannerAwaitingYourApproval
			} else {
				expected[key{entities.ApprovalStatusPendingReview, edit, approve}] = BannerAwaitingOtherApproval
			}
		}
	}
	for k, want := range expected {
		caps := entities.Capabilities{Edit: k.edit, Approve: k.approve}
		if got := DeriveBanner(k.status, false, caps); got != want {
			t.Fatalf("%+v: expected %q got %q", k, want, got)
		}
	}

	if got := DeriveBanner(entities.ApprovalStatusDraft, true, capsEditor); got != BannerReturnedForEdit {
		t.Fatalf("draft with review notes must show returned banner, got %q", got)
	}
	if got := DeriveBanner(entities.NormalizeApprovalStatus("garbage"), false, capsEditor); got != BannerEditableDraft {
		t.Fatalf("unknown status must behave as draft, got %q", got)
	}
}

func TestDeriveActions(t *testing.T) {
	t.Run("pending review without approval capability", func(t *testing.T) {
		plan := testPlan(entities.ApprovalStatusPendingReview, item("a", entities.ItemStatusPending))
		caps := entities.Capabilities{Edit: true, Book: true, EditPricing: true}
		a := DeriveActions(plan, caps)
		if a.CanApprove || a.CanReject {
			t.Fatalf("approve/reject must not be offered: %+v", a)
		}
		if DeriveBanner(plan.ApprovalStatus, false, caps) != BannerAwaitingOtherApproval {
			t.Fatalf("expected awaiting-other banner")
		}
		if a.CanSubmit || a.CanReorder || a.CanAddItems || a.CanEditPricing {
			t.Fatalf("plan under review is frozen: %+v", a)
		}
	})

	t.Run("draft from null status", func(t *testing.T) {
		plan := testPlan(entities.NormalizeApprovalStatus(nil), item("a", entities.ItemStatusPending))
		if !DeriveActions(plan, capsEditor).CanSubmit {
			t.Fatalf("draft with items must be submittable")
		}
		empty := testPlan(entities.NormalizeApprovalStatus(nil))
		if DeriveActions(empty, capsEditor).CanSubmit {
			t.Fatalf("draft without items must not be submittable")
		}
		empty.Phases = nil
		if DeriveActions(empty, capsEditor).CanSubmit {
			t.Fatalf("draft without phases must not be submittable")
		}
	})

	t.Run("approved plan", func(t *testing.T) {
		a := DeriveActions(testPlan(entities.ApprovalStatusApproved, item("a", entities.ItemStatusReadyForBooking)), capsAll)
		if !a.CanBook || a.CanSubmit || a.CanApprove {
			t.Fatalf("unexpected actions: %+v", a)
		}
	})
}

func TestApprovalController_SubmitForReview(t *testing.T) {
	ctx := context.Background()

	t.Run("local validations never call the service", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock_interfaces.NewMockIPlanService(ctrl)
		n := mock_interfaces.NewMockINotifier(ctrl)
		c := NewApprovalController(svc, n, nil)

		draft := testPlan(entities.ApprovalStatusDraft, item("a", entities.ItemStatusPending))
		if _, err := c.SubmitForReview(ctx, draft, entities.Capabilities{}, ""); !errors.Is(err, ErrPermissionDenied) {
			t.Fatalf("expected ErrPermissionDenied, got %v", err)
		}
		if _, err := c.SubmitForReview(ctx, testPlan(entities.ApprovalStatusDraft), capsEditor, ""); !errors.Is(err, ErrEmptyPlan) {
			t.Fatalf("expected ErrEmptyPlan, got %v", err)
		}
		pending := testPlan(entities.ApprovalStatusPendingReview, item("a", entities.ItemStatusPending))
		if _, err := c.SubmitForReview(ctx, pending, capsEditor, ""); !errors.Is(err, ErrInvalidApprovalState) {
			t.Fatalf("expected ErrInvalidApprovalState, got %v", err)
		}
		if _, err := c.SubmitForReview(ctx, draft, capsEditor, strings.Repeat("x", MaxNotesLength+1)); !errors.Is(err, ErrNotesTooLong) {
			t.Fatalf("expected ErrNotesTooLong, got %v", err)
		}
	})

	t.Run("success re-fetches the plan", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock_interfaces.NewMockIPlanService(ctrl)
		n := mock_interfaces.NewMockINotifier(ctrl)
		events := mock_interfaces.NewMockIPlanEventRepository(ctrl)
		c := NewApprovalController(svc, n, NewAuditRecorder(events, nil))

		draft := testPlan(entities.ApprovalStatusRejected, item("a", entities.ItemStatusPending))
		fresh := draft
		fresh.ApprovalStatus = entities.ApprovalStatusPendingReview
		fresh.TotalPrice = 999

		gomock.InOrder(
			svc.EXPECT().SubmitForReview(gomock.Any(), "PLAN-1", "please review").Return(fresh, nil),
			svc.EXPECT().GetPlan(gomock.Any(), "PLAN-1").Return(fresh, nil),
		)
		n.EXPECT().Success(gomock.Any(), "Plan submitted for review", "")
		events.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.PlanEvent{})).DoAndReturn(
			func(_ context.Context, e entities.PlanEvent) (entities.PlanEvent, error) {
				if e.Kind != entities.PlanEventSubmitted || e.PlanCode != "PLAN-1" || e.ID == "" {
					t.Fatalf("unexpected event: %+v", e)
				}
				return e, nil
			},
		)

		got, err := c.SubmitForReview(ctx, draft, capsEditor, "  please review ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ApprovalStatus != entities.ApprovalStatusPendingReview || got.TotalPrice != 999 {
			t.Fatalf("expected fresh plan, got %+v", got)
		}
	})

	t.Run("remote conflict is surfaced", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock_interfaces.NewMockIPlanService(ctrl)
		n := mock_interfaces.NewMockINotifier(ctrl)
		c := NewApprovalController(svc, n, nil)

		svc.EXPECT().SubmitForReview(gomock.Any(), "PLAN-1", "").Return(entities.Plan{}, conflictErr())
		n.EXPECT().Warning(gomock.Any(), gomock.Any(), gomock.Any())

		_, err := c.SubmitForReview(ctx, testPlan(entities.ApprovalStatusDraft, item("a", entities.ItemStatusPending)), capsEditor, "")
		if ClassifyError(err) != KindConflict {
			t.Fatalf("expected conflict, got %v", err)
		}
	})

	t.Run("second submit while in flight is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock_interfaces.NewMockIPlanService(ctrl)
		n := mock_interfaces.NewMockINotifier(ctrl)
		c := NewApprovalController(svc, n, nil)
		draft := testPlan(entities.ApprovalStatusDraft, item("a", entities.ItemStatusPending))

		started := make(chan struct{})
		proceed := make(chan struct{})
		svc.EXPECT().SubmitForReview(gomock.Any(), "PLAN-1", "").DoAndReturn(
			func(_ context.Context, _ string, _ string) (entities.Plan, error) {
				close(started)
				<-proceed
				return draft, nil
			},
		).Times(1)
		svc.EXPECT().GetPlan(gomock.Any(), "PLAN-1").Return(draft, nil)
		n.EXPECT().Success(gomock.Any(), gomock.Any(), gomock.Any())

		var wg sync.WaitGroup
		wg.Add(1)
		var firstErr error
		go func() {
			defer wg.Done()
			_, firstErr = c.SubmitForReview(ctx, draft, capsEditor, "")
		}()
		<-started
		if _, err := c.SubmitForReview(ctx, draft, capsEditor, ""); !errors.Is(err, ErrOperationInProgress) {
			t.Fatalf("expected ErrOperationInProgress, got %v", err)
		}
		close(proceed)
		wg.Wait()
		if firstErr != nil {
			t.Fatalf("unexpected error: %v", firstErr)
		}
	})
}

func TestApprovalController_ApproveReject(t *testing.T) {
	ctx := context.Background()
	pending := testPlan(entities.ApprovalStatusPendingReview, item("a", entities.ItemStatusPending))

	t.Run("reject requires notes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		c := NewApprovalController(mock_interfaces.NewMockIPlanService(ctrl), mock_interfaces.NewMockINotifier(ctrl), nil)
		if _, err := c.Reject(ctx, pending, capsAll, "   "); !errors.Is(err, ErrNotesRequired) {
			t.Fatalf("expected ErrNotesRequired, got %v", err)
		}
	})

	t.Run("approval capability required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		c := NewApprovalController(mock_interfaces.NewMockIPlanService(ctrl), mock_interfaces.NewMockINotifier(ctrl), nil)
		if _, err := c.Approve(ctx, pending, capsEditor, ""); !errors.Is(err, ErrPermissionDenied) {
			t.Fatalf("expected ErrPermissionDenied, got %v", err)
		}
	})

	t.Run("only pending plans can be reviewed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		c := NewApprovalController(mock_interfaces.NewMockIPlanService(ctrl), mock_interfaces.NewMockINotifier(ctrl), nil)
		if _, err := c.Approve(ctx, testPlan(entities.ApprovalStatusDraft), capsAll, ""); !errors.Is(err, ErrInvalidApprovalState) {
			t.Fatalf("expected ErrInvalidApprovalState, got %v", err)
		}
	})

	cases := []struct {
		name     string
		call     func(c *ApprovalController) (entities.Plan, error)
		decision entities.ApprovalStatus
		notes    string
	}{
		{
			name:     "approve without notes",
			call:     func(c *ApprovalController) (entities.Plan, error) { return c.Approve(ctx, pending, capsAll, "") },
			decision: entities.ApprovalStatusApproved,
		},
		{
			name:     "reject with notes",
			call:     func(c *ApprovalController) (entities.Plan, error) { return c.Reject(ctx, pending, capsAll, "missing x-ray") },
			decision: entities.ApprovalStatusRejected,
			notes:    "missing x-ray",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := mock_interfaces.NewMockIPlanService(ctrl)
			n := mock_interfaces.NewMockINotifier(ctrl)
			c := NewApprovalController(svc, n, nil)

			server := pending
			server.ApprovalStatus = tc.decision
			server.Approval = entities.ApprovalMetadata{ReviewedBy: "dr-house", Notes: tc.notes}
			svc.EXPECT().ApproveOrReject(gomock.Any(), "PLAN-1", tc.decision, tc.notes).Return(server, nil)
			n.EXPECT().Success(gomock.Any(), gomock.Any(), "")

			got, err := tc.call(c)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.ApprovalStatus != tc.decision || got.Approval.ReviewedBy != "dr-house" {
				t.Fatalf("local state must be replaced by the server response: %+v", got)
			}
		})
	}
}
