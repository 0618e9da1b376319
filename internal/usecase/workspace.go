package usecase

import (
	"context"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"treatment_planner/internal/domain/entities"
	"treatment_planner/internal/infrastructure/notify"
	"treatment_planner/internal/usecase/interfaces"
	"treatment_planner/pkg"
)

const reloadTimeout = 10 * time.Second

// WorkspaceDeps are the collaborators shared by every plan workspace.
type WorkspaceDeps struct {
	Service     interfaces.IPlanService
	Notifier    interfaces.INotifier
	Booking     interfaces.IBookingFlow
	Audit       *AuditRecorder
	ReloadDelay time.Duration
	AfterFunc   func(time.Duration, func()) *time.Timer
	// IdleTTL bounds how long an unused workspace is kept.
	IdleTTL time.Duration
}

// ItemMove is one drag step. When ItemID is set the item is placed before
// BeforeID (or last when BeforeID is empty); otherwise From/To are indices.
type ItemMove struct {
	ItemID   string `json:"item_id,omitempty"`
	BeforeID string `json:"before_id,omitempty"`
	From     int    `json:"from"`
	To       int    `json:"to"`
}

// PlanWorkspace is the single owner of one plan's local state.
//
// Writes are serialized by writeMu. A fetch takes a sequence token when it is
// issued; a mutation result takes one when it arrives, so a read that started
// while the write was in flight can never supersede it. A response is applied only
// if no newer one has been applied already.
type PlanWorkspace struct {
	code string
	deps WorkspaceDeps

	approval    *ApprovalController
	items       *ItemsUseCase
	selection   *SelectionCoordinator
	prices      *PriceReconciler
	suggestions *SuggestionMapper

	writeMu sync.Mutex
	issued  atomic.Uint64

	mu       sync.RWMutex
	plan     entities.Plan
	loaded   bool
	applied  uint64
	reorders map[string]*ReorderSession
}

func NewPlanWorkspace(code string, deps WorkspaceDeps) *PlanWorkspace {
	return &PlanWorkspace{
		code:        code,
		deps:        deps,
		approval:    NewApprovalController(deps.Service, deps.Notifier, deps.Audit),
		items:       NewItemsUseCase(deps.Service, deps.Notifier, deps.Audit),
		selection:   NewSelectionCoordinator(),
		prices:      NewPriceReconciler(deps.Service, deps.Notifier, deps.Audit),
		suggestions: NewSuggestionMapper(deps.Service, deps.Booking),
		reorders:    make(map[string]*ReorderSession),
	}
}

func (w *PlanWorkspace) Code() string { return w.code }

func (w *PlanWorkspace) issue() uint64 {
	return w.issued.Add(1)
}

// apply installs plan if token is newer than the last applied one and brings the
// local state in line with it.
func (w *PlanWorkspace) apply(token uint64, plan entities.Plan) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if token <= w.applied {
		log.Printf("[plan][workspace] stale response discarded plan_code=%s token=%d applied=%d", w.code, token, w.applied)
		return false
	}
	w.applied = token
	w.plan = plan
	w.loaded = true

	if dropped := w.selection.Reconcile(plan); len(dropped) > 0 {
		log.Printf("[plan][workspace] selection reconciled plan_code=%s dropped=%v", w.code, dropped)
	}
	for phaseID, s := range w.reorders {
		ph, ok := plan.PhaseByID(phaseID)
		if !ok {
			s.Stop()
			delete(w.reorders, phaseID)
			continue
		}
		s.Sync(ph.ItemIDs())
	}
	w.prices.Rebase(plan)
	return true
}

// applyResult installs the plan returned by a completed mutation.
func (w *PlanWorkspace) applyResult(plan entities.Plan) {
	w.apply(w.issue(), plan)
}

func (w *PlanWorkspace) current() (entities.Plan, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.plan, w.loaded
}

// Refresh re-fetches the plan from the plan service.
func (w *PlanWorkspace) Refresh(ctx context.Context) (entities.Plan, error) {
	token := w.issue()
	plan, err := w.deps.Service.GetPlan(ctx, w.code)
	if err != nil {
		log.Printf("[plan][workspace] fetch failed plan_code=%s err=%v", w.code, err)
		return entities.Plan{}, err
	}
	w.apply(token, plan)
	p, _ := w.current()
	return p, nil
}

func (w *PlanWorkspace) ensureLoaded(ctx context.Context) (entities.Plan, error) {
	if p, ok := w.current(); ok {
		return p, nil
	}
	return w.Refresh(ctx)
}

// resync reloads the plan after remote failures that mean the local copy is
// outdated. Local validation failures never reach the plan service.
func (w *PlanWorkspace) resync(ctx context.Context, cause error) {
	if _, remote := pkg.AsAppError(cause); !remote {
		return
	}
	switch ClassifyError(cause) {
	case KindNotFound, KindConflict:
		if _, err := w.Refresh(ctx); err != nil {
			log.Printf("[plan][workspace] reload after failure failed plan_code=%s err=%v", w.code, err)
		}
	}
}

// reload is the callback reorder sessions use to resynchronize.
func (w *PlanWorkspace) reload() {
	ctx, cancel := context.WithTimeout(notify.WithPlanCode(context.Background(), w.code), reloadTimeout)
	defer cancel()
	if _, err := w.Refresh(ctx); err != nil {
		log.Printf("[plan][workspace] reload failed plan_code=%s err=%v", w.code, err)
	}
}

func (w *PlanWorkspace) View(caps entities.Capabilities) PlanView {
	plan, _ := w.current()
	w.mu.RLock()
	orders := make(map[string]ReorderState, len(w.reorders))
	for id, s := range w.reorders {
		orders[id] = s.Snapshot()
	}
	w.mu.RUnlock()
	return BuildPlanView(plan, caps, w.selection, w.suggestions, orders)
}

func (w *PlanWorkspace) Load(ctx context.Context, caps entities.Capabilities) (PlanView, error) {
	if _, err := w.Refresh(ctx); err != nil {
		return PlanView{}, err
	}
	return w.View(caps), nil
}

func (w *PlanWorkspace) SubmitForReview(ctx context.Context, caps entities.Capabilities, notes string) (PlanView, error) {
	w.writeMu.Lock()
	defer w.writeMu.Unlock()

	plan, err := w.ensureLoaded(ctx)
	if err != nil {
		return PlanView{}, err
	}
	fresh, err := w.approval.SubmitForReview(ctx, plan, caps, notes)
	if err != nil {
		w.resync(ctx, err)
		return PlanView{}, err
	}
	w.applyResult(fresh)
	return w.View(caps), nil
}

func (w *PlanWorkspace) Approve(ctx context.Context, caps entities.Capabilities, notes string) (PlanView, error) {
	return w.review(ctx, caps, notes, w.approval.Approve)
}

func (w *PlanWorkspace) Reject(ctx context.Context, caps entities.Capabilities, notes string) (PlanView, error) {
	return w.review(ctx, caps, notes, w.approval.Reject)
}

func (w *PlanWorkspace) review(
	ctx context.Context,
	caps entities.Capabilities,
	notes string,
	decide func(context.Context, entities.Plan, entities.Capabilities, string) (entities.Plan, error),
) (PlanView, error) {
	w.writeMu.Lock()
	defer w.writeMu.Unlock()

	plan, err := w.ensureLoaded(ctx)
	if err != nil {
		return PlanView{}, err
	}
	updated, err := decide(ctx, plan, caps, notes)
	if err != nil {
		w.resync(ctx, err)
		return PlanView{}, err
	}
	w.applyResult(updated)
	return w.View(caps), nil
}

func (w *PlanWorkspace) AddItems(ctx context.Context, phaseID string, caps entities.Capabilities, items []entities.NewItem) (entities.AddItemsResult, error) {
	w.writeMu.Lock()
	defer w.writeMu.Unlock()

	plan, err := w.ensureLoaded(ctx)
	if err != nil {
		return entities.AddItemsResult{}, err
	}
	res, err := w.items.AddItems(ctx, plan, phaseID, items, caps)
	if err != nil {
		w.resync(ctx, err)
		return entities.AddItemsResult{}, err
	}
	if _, err := w.Refresh(ctx); err != nil {
		log.Printf("[plan][workspace] re-fetch after add items failed plan_code=%s err=%v", w.code, err)
	}
	return res, nil
}

// session returns the reorder session of a phase, creating it from the current
// server order on first use.
func (w *PlanWorkspace) session(plan entities.Plan, phaseID string) (*ReorderSession, error) {
	ph, ok := plan.PhaseByID(phaseID)
	if !ok {
		return nil, ErrPhaseNotFound
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if s, ok := w.reorders[phaseID]; ok {
		return s, nil
	}
	opts := []ReorderOption{}
	if w.deps.ReloadDelay > 0 {
		opts = append(opts, WithReloadDelay(w.deps.ReloadDelay))
	}
	if w.deps.AfterFunc != nil {
		opts = append(opts, WithAfterFunc(w.deps.AfterFunc))
	}
	s := NewReorderSession(phaseID, ph.ItemIDs(), w.deps.Service, w.deps.Notifier, w.reload, opts...)
	w.reorders[phaseID] = s
	return s, nil
}

func (w *PlanWorkspace) reorderSession(ctx context.Context, phaseID string, caps entities.Capabilities) (*ReorderSession, entities.Plan, error) {
	plan, err := w.ensureLoaded(ctx)
	if err != nil {
		return nil, entities.Plan{}, err
	}
	if !caps.Edit {
		return nil, entities.Plan{}, ErrPermissionDenied
	}
	if !DeriveActions(plan, caps).CanReorder {
		return nil, entities.Plan{}, ErrInvalidApprovalState
	}
	s, err := w.session(plan, phaseID)
	return s, plan, err
}

func (w *PlanWorkspace) MoveItem(ctx context.Context, phaseID string, caps entities.Capabilities, move ItemMove) (ReorderState, error) {
	s, _, err := w.reorderSession(ctx, phaseID, caps)
	if err != nil {
		return ReorderState{}, err
	}
	if move.ItemID != "" {
		return s.MoveBefore(move.ItemID, move.BeforeID)
	}
	return s.Move(move.From, move.To)
}

func (w *PlanWorkspace) ResetOrder(ctx context.Context, phaseID string, caps entities.Capabilities) (ReorderState, error) {
	s, _, err := w.reorderSession(ctx, phaseID, caps)
	if err != nil {
		return ReorderState{}, err
	}
	return s.Reset(), nil
}

func (w *PlanWorkspace) SaveOrder(ctx context.Context, phaseID string, caps entities.Capabilities) (ReorderState, error) {
	w.writeMu.Lock()
	defer w.writeMu.Unlock()

	s, plan, err := w.reorderSession(ctx, phaseID, caps)
	if err != nil {
		return ReorderState{}, err
	}
	state, err := s.Save(ctx)
	if err != nil {
		return state, err
	}
	w.deps.Audit.Record(ctx, plan, entities.PlanEventReordered, caps, "", map[string]any{
		"phase_id": phaseID,
		"item_ids": state.ItemIDs,
	})
	return state, nil
}

func (w *PlanWorkspace) ToggleSelection(ctx context.Context, itemID string, caps entities.Capabilities) (SelectionView, error) {
	plan, err := w.ensureLoaded(ctx)
	if err != nil {
		return SelectionView{}, err
	}
	w.selection.Toggle(plan, itemID, caps)
	return w.selection.View(plan), nil
}

func (w *PlanWorkspace) ClearSelection() SelectionView {
	w.selection.Clear()
	plan, _ := w.current()
	return w.selection.View(plan)
}

func (w *PlanWorkspace) Selection() SelectionView {
	plan, _ := w.current()
	return w.selection.View(plan)
}

func (w *PlanWorkspace) BookSelection(ctx context.Context, caps entities.Capabilities) (SelectionView, error) {
	plan, err := w.Refresh(ctx)
	if err != nil {
		return SelectionView{}, err
	}
	return w.selection.HandOff(ctx, plan, caps, w.deps.Booking)
}

func (w *PlanWorkspace) PreviewPrices(ctx context.Context, caps entities.Capabilities, changes []entities.PriceChange) (PricePreview, error) {
	if _, err := w.ensureLoaded(ctx); err != nil {
		return PricePreview{}, err
	}
	if !caps.EditPricing {
		return PricePreview{}, ErrPermissionDenied
	}
	if err := w.prices.StageAll(changes); err != nil {
		return PricePreview{}, err
	}
	return w.prices.Preview(), nil
}

func (w *PlanWorkspace) CommitPrices(ctx context.Context, caps entities.Capabilities, changes []entities.PriceChange) (PriceCommitResult, error) {
	w.writeMu.Lock()
	defer w.writeMu.Unlock()

	plan, err := w.ensureLoaded(ctx)
	if err != nil {
		return PriceCommitResult{}, err
	}
	if !caps.EditPricing {
		return PriceCommitResult{}, ErrPermissionDenied
	}
	if !DeriveActions(plan, caps).CanEditPricing {
		return PriceCommitResult{}, ErrInvalidApprovalState
	}
	if err := w.prices.StageAll(changes); err != nil {
		return PriceCommitResult{}, err
	}
	res, err := w.prices.Commit(ctx, plan.Code, caps)
	if err != nil {
		w.resync(ctx, err)
		return PriceCommitResult{}, err
	}
	w.deps.Audit.Record(ctx, plan, entities.PlanEventPricesUpdated, caps, "", res)
	if _, err := w.Refresh(ctx); err != nil {
		log.Printf("[plan][workspace] re-fetch after price update failed plan_code=%s err=%v", w.code, err)
	}
	return res, nil
}

// GenerateSchedule asks the solver for suggestions for one phase, or for the whole
// plan when phaseID is empty.
func (w *PlanWorkspace) GenerateSchedule(ctx context.Context, phaseID string, caps entities.Capabilities, req entities.AutoScheduleRequest) (entities.ScheduleResult, error) {
	plan, err := w.ensureLoaded(ctx)
	if err != nil {
		return entities.ScheduleResult{}, err
	}
	if !caps.Book {
		return entities.ScheduleResult{}, ErrPermissionDenied
	}
	scope := entities.ScheduleScope{PlanID: plan.ID}
	if phaseID != "" {
		if _, ok := plan.PhaseByID(phaseID); !ok {
			return entities.ScheduleResult{}, ErrPhaseNotFound
		}
		scope = entities.ScheduleScope{PhaseID: phaseID}
	}
	return w.suggestions.Generate(ctx, scope, req)
}

// SelectSlot validates the pick against a freshly fetched plan before handing it
// to the booking flow.
func (w *PlanWorkspace) SelectSlot(ctx context.Context, caps entities.Capabilities, pick SlotPick) (entities.BookingRequest, error) {
	plan, err := w.Refresh(ctx)
	if err != nil {
		return entities.BookingRequest{}, err
	}
	return w.suggestions.SelectSlot(ctx, plan, caps, pick)
}

func (w *PlanWorkspace) Events(ctx context.Context) ([]entities.PlanEvent, error) {
	return w.deps.Audit.Events(ctx, w.code)
}

func (w *PlanWorkspace) PriceRevisions(ctx context.Context) ([]entities.PriceRevision, error) {
	return w.deps.Audit.PriceRevisions(ctx, w.code)
}

// Close stops pending reloads.
func (w *PlanWorkspace) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, s := range w.reorders {
		s.Stop()
	}
}
