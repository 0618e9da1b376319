package usecase

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"treatment_planner/internal/domain/entities"
	"treatment_planner/internal/infrastructure/notify"
	mock_interfaces "treatment_planner/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type workspaceMocks struct {
	svc      *mock_interfaces.MockIPlanService
	notifier *mock_interfaces.MockINotifier
	booking  *mock_interfaces.MockIBookingFlow
	timer    *capturedTimer
}

func newTestWorkspace(t *testing.T) (*PlanWorkspace, workspaceMocks) {
	ctrl := gomock.NewController(t)
	m := workspaceMocks{
		svc:      mock_interfaces.NewMockIPlanService(ctrl),
		notifier: mock_interfaces.NewMockINotifier(ctrl),
		booking:  mock_interfaces.NewMockIBookingFlow(ctrl),
		timer:    &capturedTimer{},
	}
	w := NewPlanWorkspace("PLAN-1", WorkspaceDeps{
		Service:  m.svc,
		Notifier: m.notifier,
		Booking:  m.booking,
		AfterFunc: func(d time.Duration, f func()) *time.Timer {
			m.timer.delay = d
			m.timer.fn = f
			return time.NewTimer(time.Hour)
		},
	})
	t.Cleanup(w.Close)
	return w, m
}

func TestPlanWorkspace_StaleResponseIsDiscarded(t *testing.T) {
	w, _ := newTestWorkspace(t)

	older := w.issue()
	newer := w.issue()
	fresh := testPlan(entities.ApprovalStatusApproved)
	stale := testPlan(entities.ApprovalStatusDraft)

	if !w.apply(newer, fresh) {
		t.Fatalf("newer response must be applied")
	}
	if w.apply(older, stale) {
		t.Fatalf("older response must be discarded")
	}
	if p, _ := w.current(); p.ApprovalStatus != entities.ApprovalStatusApproved {
		t.Fatalf("stale response overwrote fresher data: %s", p.ApprovalStatus)
	}
}

func TestPlanWorkspace_SlowFetchDoesNotOverwrite(t *testing.T) {
	w, m := newTestWorkspace(t)
	ctx := context.Background()

	started := make(chan struct{})
	release := make(chan struct{})
	m.svc.EXPECT().GetPlan(gomock.Any(), "PLAN-1").DoAndReturn(
		func(context.Context, string) (entities.Plan, error) {
			close(started)
			<-release
			return testPlan(entities.ApprovalStatusDraft), nil
		},
	)
	m.svc.EXPECT().GetPlan(gomock.Any(), "PLAN-1").Return(testPlan(entities.ApprovalStatusApproved), nil)

	done := make(chan entities.Plan)
	go func() {
		p, _ := w.Refresh(ctx)
		done <- p
	}()
	<-started
	if _, err := w.Refresh(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	close(release)

	if p := <-done; p.ApprovalStatus != entities.ApprovalStatusApproved {
		t.Fatalf("slow response must not win, got %s", p.ApprovalStatus)
	}
}

func TestPlanWorkspace_SelectionReconciledOnRefresh(t *testing.T) {
	w, m := newTestWorkspace(t)
	ctx := context.Background()

	before := testPlan(entities.ApprovalStatusApproved, item("a", entities.ItemStatusReadyForBooking), item("b", entities.ItemStatusReadyForBooking))
	after := testPlan(entities.ApprovalStatusApproved, item("a", entities.ItemStatusCompleted), item("b", entities.ItemStatusReadyForBooking))
	gomock.InOrder(
		m.svc.EXPECT().GetPlan(gomock.Any(), "PLAN-1").Return(before, nil),
		m.svc.EXPECT().GetPlan(gomock.Any(), "PLAN-1").Return(after, nil),
	)

	w.ToggleSelection(ctx, "a", capsBooker)
	sel, _ := w.ToggleSelection(ctx, "b", capsBooker)
	if len(sel.ItemIDs) != 2 {
		t.Fatalf("expected two selected, got %v", sel.ItemIDs)
	}
	if _, err := w.Refresh(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := w.Selection().ItemIDs; !slices.Equal(got, []string{"b"}) {
		t.Fatalf("expected only b selected, got %v", got)
	}
}

func TestPlanWorkspace_SubmitForReview(t *testing.T) {
	w, m := newTestWorkspace(t)
	ctx := context.Background()

	draft := testPlan(entities.ApprovalStatusDraft, item("a", entities.ItemStatusPending))
	pending := testPlan(entities.ApprovalStatusPendingReview, item("a", entities.ItemStatusPending))
	gomock.InOrder(
		m.svc.EXPECT().GetPlan(gomock.Any(), "PLAN-1").Return(draft, nil),
		m.svc.EXPECT().SubmitForReview(gomock.Any(), "PLAN-1", "").Return(pending, nil),
		m.svc.EXPECT().GetPlan(gomock.Any(), "PLAN-1").Return(pending, nil),
	)
	m.notifier.EXPECT().Success(gomock.Any(), gomock.Any(), gomock.Any())

	view, err := w.SubmitForReview(ctx, capsEditor, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.ApprovalStatus != entities.ApprovalStatusPendingReview || view.Banner != BannerAwaitingOtherApproval {
		t.Fatalf("unexpected view: status=%s banner=%s", view.ApprovalStatus, view.Banner)
	}
	if view.Actions.CanSubmit || view.Actions.CanReorder {
		t.Fatalf("plan under review must be frozen: %+v", view.Actions)
	}
}

func TestPlanWorkspace_ReadDuringSubmitDoesNotSupersedeIt(t *testing.T) {
	w, m := newTestWorkspace(t)
	ctx := context.Background()

	draft := testPlan(entities.ApprovalStatusDraft, item("a", entities.ItemStatusPending))
	pending := testPlan(entities.ApprovalStatusPendingReview, item("a", entities.ItemStatusPending))
	started := make(chan struct{})
	release := make(chan struct{})
	gomock.InOrder(
		m.svc.EXPECT().GetPlan(gomock.Any(), "PLAN-1").Return(draft, nil).Times(2),
		m.svc.EXPECT().GetPlan(gomock.Any(), "PLAN-1").Return(pending, nil),
	)
	m.svc.EXPECT().SubmitForReview(gomock.Any(), "PLAN-1", "").DoAndReturn(
		func(context.Context, string, string) (entities.Plan, error) {
			close(started)
			<-release
			return pending, nil
		},
	)
	m.notifier.EXPECT().Success(gomock.Any(), gomock.Any(), gomock.Any())

	if _, err := w.Load(ctx, capsEditor); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	type result struct {
		view PlanView
		err  error
	}
	done := make(chan result)
	go func() {
		v, err := w.SubmitForReview(ctx, capsEditor, "")
		done <- result{v, err}
	}()
	<-started
	if _, err := w.Load(ctx, capsEditor); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	close(release)

	res := <-done
	if res.err != nil {
		t.Fatalf("unexpected error: %v", res.err)
	}
	if res.view.ApprovalStatus != entities.ApprovalStatusPendingReview {
		t.Fatalf("submit result was discarded, view status %s", res.view.ApprovalStatus)
	}
	if p, _ := w.current(); p.ApprovalStatus != entities.ApprovalStatusPendingReview {
		t.Fatalf("workspace kept pre-submit state %s", p.ApprovalStatus)
	}
}

func TestPlanWorkspace_ReadDuringApproveDoesNotSupersedeIt(t *testing.T) {
	w, m := newTestWorkspace(t)
	ctx := context.Background()

	pending := testPlan(entities.ApprovalStatusPendingReview, item("a", entities.ItemStatusPending))
	approved := testPlan(entities.ApprovalStatusApproved, item("a", entities.ItemStatusReadyForBooking))
	started := make(chan struct{})
	release := make(chan struct{})
	m.svc.EXPECT().GetPlan(gomock.Any(), "PLAN-1").Return(pending, nil).Times(2)
	m.svc.EXPECT().ApproveOrReject(gomock.Any(), "PLAN-1", entities.ApprovalStatusApproved, "ok").DoAndReturn(
		func(context.Context, string, entities.ApprovalStatus, string) (entities.Plan, error) {
			close(started)
			<-release
			return approved, nil
		},
	)
	m.notifier.EXPECT().Success(gomock.Any(), gomock.Any(), gomock.Any())

	if _, err := w.Load(ctx, capsAll); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	done := make(chan PlanView)
	go func() {
		v, _ := w.Approve(ctx, capsAll, "ok")
		done <- v
	}()
	<-started
	if _, err := w.Load(ctx, capsAll); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	close(release)

	if v := <-done; v.ApprovalStatus != entities.ApprovalStatusApproved {
		t.Fatalf("approve result was discarded, view status %s", v.ApprovalStatus)
	}
	if p, _ := w.current(); p.ApprovalStatus != entities.ApprovalStatusApproved {
		t.Fatalf("workspace kept pre-approval state %s", p.ApprovalStatus)
	}
}

func TestPlanWorkspace_ConflictTriggersResync(t *testing.T) {
	w, m := newTestWorkspace(t)
	ctx := context.Background()

	pending := testPlan(entities.ApprovalStatusPendingReview, item("a", entities.ItemStatusPending))
	approved := testPlan(entities.ApprovalStatusApproved, item("a", entities.ItemStatusReadyForBooking))
	gomock.InOrder(
		m.svc.EXPECT().GetPlan(gomock.Any(), "PLAN-1").Return(pending, nil),
		m.svc.EXPECT().ApproveOrReject(gomock.Any(), "PLAN-1", entities.ApprovalStatusApproved, "").Return(entities.Plan{}, conflictErr()),
		m.svc.EXPECT().GetPlan(gomock.Any(), "PLAN-1").Return(approved, nil),
	)
	m.notifier.EXPECT().Warning(gomock.Any(), gomock.Any(), gomock.Any())

	if _, err := w.Approve(ctx, capsAll, ""); ClassifyError(err) != KindConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
	if v := w.View(capsAll); v.ApprovalStatus != entities.ApprovalStatusApproved {
		t.Fatalf("expected plan reloaded after conflict, got %s", v.ApprovalStatus)
	}
}

func TestPlanWorkspace_LocalFailureDoesNotResync(t *testing.T) {
	w, m := newTestWorkspace(t)
	ctx := context.Background()

	m.svc.EXPECT().GetPlan(gomock.Any(), "PLAN-1").Return(testPlan(entities.ApprovalStatusDraft), nil).Times(1)

	if _, err := w.SubmitForReview(ctx, capsEditor, ""); !errors.Is(err, ErrEmptyPlan) {
		t.Fatalf("expected ErrEmptyPlan, got %v", err)
	}
}

func TestPlanWorkspace_ReorderConflict(t *testing.T) {
	w, m := newTestWorkspace(t)
	ctx := context.Background()

	plan := testPlan(entities.ApprovalStatusDraft,
		item("A", entities.ItemStatusPending),
		item("B", entities.ItemStatusPending),
		item("C", entities.ItemStatusPending),
	)
	theirs := testPlan(entities.ApprovalStatusDraft,
		item("B", entities.ItemStatusPending),
		item("A", entities.ItemStatusPending),
		item("C", entities.ItemStatusPending),
	)
	gomock.InOrder(
		m.svc.EXPECT().GetPlan(gomock.Any(), "PLAN-1").Return(plan, nil),
		m.svc.EXPECT().ReorderItems(gomock.Any(), "ph-1", []string{"C", "A", "B"}).Return(entities.ReorderResult{}, conflictErr()),
		m.svc.EXPECT().GetPlan(gomock.Any(), "PLAN-1").DoAndReturn(
			func(ctx context.Context, _ string) (entities.Plan, error) {
				if got := notify.PlanCodeFrom(ctx); got != "PLAN-1" {
					t.Errorf("expected reload context tagged with PLAN-1, got %q", got)
				}
				return theirs, nil
			},
		),
	)
	m.notifier.EXPECT().Warning(gomock.Any(), gomock.Any(), gomock.Any())

	state, err := w.MoveItem(ctx, "ph-1", capsEditor, ItemMove{ItemID: "C", BeforeID: "A"})
	if err != nil || !slices.Equal(state.ItemIDs, []string{"C", "A", "B"}) {
		t.Fatalf("unexpected move result: %+v %v", state, err)
	}

	state, err = w.SaveOrder(ctx, "ph-1", capsEditor)
	if ClassifyError(err) != KindConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
	if !slices.Equal(state.ItemIDs, []string{"A", "B", "C"}) || !state.ReloadScheduled {
		t.Fatalf("expected rollback with scheduled reload: %+v", state)
	}
	if m.timer.delay != DefaultReloadDelay {
		t.Fatalf("expected default delay, got %s", m.timer.delay)
	}

	m.timer.fn()
	order := w.View(capsEditor).Phases[0].Order
	if order == nil || !slices.Equal(order.ItemIDs, []string{"B", "A", "C"}) {
		t.Fatalf("expected server order after reload, got %+v", order)
	}
}

func TestPlanWorkspace_ReorderRequiresEditableState(t *testing.T) {
	w, m := newTestWorkspace(t)
	ctx := context.Background()
	m.svc.EXPECT().GetPlan(gomock.Any(), "PLAN-1").Return(testPlan(entities.ApprovalStatusPendingReview, item("A", entities.ItemStatusPending)), nil)

	if _, err := w.MoveItem(ctx, "ph-1", capsBooker, ItemMove{From: 0, To: 0}); !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied, got %v", err)
	}
	if _, err := w.MoveItem(ctx, "ph-1", capsEditor, ItemMove{From: 0, To: 0}); !errors.Is(err, ErrInvalidApprovalState) {
		t.Fatalf("expected ErrInvalidApprovalState, got %v", err)
	}
}

func TestPlanWorkspace_ResetOrderChecksCapabilities(t *testing.T) {
	w, m := newTestWorkspace(t)
	ctx := context.Background()
	m.svc.EXPECT().GetPlan(gomock.Any(), "PLAN-1").Return(testPlan(entities.ApprovalStatusDraft,
		item("A", entities.ItemStatusPending),
		item("B", entities.ItemStatusPending),
	), nil)

	if _, err := w.ResetOrder(ctx, "ph-1", capsBooker); !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied, got %v", err)
	}
	if _, err := w.MoveItem(ctx, "ph-1", capsEditor, ItemMove{From: 1, To: 0}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	state, err := w.ResetOrder(ctx, "ph-1", capsEditor)
	if err != nil || !slices.Equal(state.ItemIDs, []string{"A", "B"}) {
		t.Fatalf("expected server order restored, got %+v %v", state, err)
	}
}

func TestPlanWorkspace_ResetOrderRequiresEditableState(t *testing.T) {
	w, m := newTestWorkspace(t)
	m.svc.EXPECT().GetPlan(gomock.Any(), "PLAN-1").Return(testPlan(entities.ApprovalStatusPendingReview, item("A", entities.ItemStatusPending)), nil)

	if _, err := w.ResetOrder(context.Background(), "ph-1", capsEditor); !errors.Is(err, ErrInvalidApprovalState) {
		t.Fatalf("expected ErrInvalidApprovalState, got %v", err)
	}
}

func TestPlanWorkspace_GenerateScheduleScope(t *testing.T) {
	w, m := newTestWorkspace(t)
	ctx := context.Background()
	m.svc.EXPECT().GetPlan(gomock.Any(), "PLAN-1").Return(scheduledPlan(), nil)

	if _, err := w.GenerateSchedule(ctx, "", capsEditor, entities.AutoScheduleRequest{}); !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied, got %v", err)
	}
	if _, err := w.GenerateSchedule(ctx, "ph-9", capsBooker, entities.AutoScheduleRequest{}); !errors.Is(err, ErrPhaseNotFound) {
		t.Fatalf("expected ErrPhaseNotFound, got %v", err)
	}

	m.svc.EXPECT().GenerateSchedule(gomock.Any(), entities.ScheduleScope{PlanID: "plan-id-1"}, gomock.Any()).
		Return(entities.ScheduleResult{Suggestions: suggestions()}, nil)
	if _, err := w.GenerateSchedule(ctx, "", capsBooker, entities.AutoScheduleRequest{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	view := w.View(capsBooker)
	if view.Phases[0].Items[0].Suggestion == nil {
		t.Fatalf("expected suggestion attached to item a")
	}
}

func TestPlanUseCase_Workspace(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock_interfaces.NewMockIPlanService(ctrl)
	u := NewPlanUseCase(WorkspaceDeps{Service: svc, Notifier: mock_interfaces.NewMockINotifier(ctrl)})
	defer u.Close()

	if _, err := u.Workspace("  "); !errors.Is(err, ErrInvalidPlanCode) {
		t.Fatalf("expected ErrInvalidPlanCode, got %v", err)
	}
	a, _ := u.Workspace("PLAN-1")
	b, _ := u.Workspace(" PLAN-1 ")
	if a != b {
		t.Fatalf("expected one workspace per plan code")
	}

	svc.EXPECT().GetPlan(gomock.Any(), "PLAN-1").Return(testPlan(entities.ApprovalStatusDraft, item("a", entities.ItemStatusPending)), nil)
	view, err := u.GetPlan(context.Background(), "PLAN-1", capsEditor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.Banner != BannerEditableDraft || !view.Actions.CanSubmit || view.TotalItems != 1 {
		t.Fatalf("unexpected view: %+v", view)
	}

	events, err := u.ListEvents(context.Background(), "PLAN-1")
	if err != nil || len(events) != 0 {
		t.Fatalf("expected no events without an audit store, got %v %v", events, err)
	}
}

func TestPlanUseCase_UnknownPlanIsForgotten(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock_interfaces.NewMockIPlanService(ctrl)
	u := NewPlanUseCase(WorkspaceDeps{Service: svc, Notifier: mock_interfaces.NewMockINotifier(ctrl)})
	defer u.Close()

	svc.EXPECT().GetPlan(gomock.Any(), "NOPE").Return(entities.Plan{}, notFoundErr())
	if _, err := u.GetPlan(context.Background(), "NOPE", capsEditor); ClassifyError(err) != KindNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, ok := u.workspaces["NOPE"]; ok {
		t.Fatalf("expected the unknown plan's workspace to be dropped")
	}

	plan := testPlan(entities.ApprovalStatusDraft, item("a", entities.ItemStatusPending))
	svc.EXPECT().GetPlan(gomock.Any(), "PLAN-1").Return(plan, nil)
	svc.EXPECT().GetPlan(gomock.Any(), "PLAN-1").Return(entities.Plan{}, notFoundErr())
	if _, err := u.GetPlan(context.Background(), "PLAN-1", capsEditor); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := u.GetPlan(context.Background(), "PLAN-1", capsEditor); err == nil {
		t.Fatalf("expected not found on the second fetch")
	}
	if _, ok := u.workspaces["PLAN-1"]; !ok {
		t.Fatalf("expected a loaded workspace to be kept")
	}
}

func TestPlanUseCase_IdleWorkspacesAreEvicted(t *testing.T) {
	ctrl := gomock.NewController(t)
	u := NewPlanUseCase(WorkspaceDeps{
		Service:  mock_interfaces.NewMockIPlanService(ctrl),
		Notifier: mock_interfaces.NewMockINotifier(ctrl),
		IdleTTL:  10 * time.Minute,
	})
	defer u.Close()

	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	u.now = func() time.Time { return now }

	old, _ := u.Workspace("PLAN-OLD")
	now = now.Add(5 * time.Minute)
	u.Workspace("PLAN-NEW")
	now = now.Add(6 * time.Minute)
	u.Workspace("PLAN-NEW")

	if _, ok := u.workspaces["PLAN-OLD"]; ok {
		t.Fatalf("expected PLAN-OLD to be evicted after the idle TTL")
	}
	if _, ok := u.workspaces["PLAN-NEW"]; !ok {
		t.Fatalf("expected PLAN-NEW to be kept")
	}
	if again, _ := u.Workspace("PLAN-OLD"); again == old {
		t.Fatalf("expected a fresh workspace after eviction")
	}
}

func TestPlanUseCase_ListPriceRevisions(t *testing.T) {
	ctrl := gomock.NewController(t)
	prices := mock_interfaces.NewMockIPriceRevisionRepository(ctrl)
	u := NewPlanUseCase(WorkspaceDeps{
		Service:  mock_interfaces.NewMockIPlanService(ctrl),
		Notifier: mock_interfaces.NewMockINotifier(ctrl),
		Audit:    NewAuditRecorder(nil, prices),
	})
	defer u.Close()

	prices.EXPECT().ListByPlanCode(gomock.Any(), "PLAN-1").Return([]entities.PriceRevision{{ID: "rev-1", ItemID: "a"}}, nil)
	revs, err := u.ListPriceRevisions(context.Background(), " PLAN-1 ")
	if err != nil || len(revs) != 1 || revs[0].ID != "rev-1" {
		t.Fatalf("unexpected revisions: %v %v", revs, err)
	}

	bare := NewPlanUseCase(WorkspaceDeps{Service: mock_interfaces.NewMockIPlanService(ctrl)})
	defer bare.Close()
	if revs, err := bare.ListPriceRevisions(context.Background(), "PLAN-1"); err != nil || len(revs) != 0 {
		t.Fatalf("expected no revisions without an audit store, got %v %v", revs, err)
	}
}
