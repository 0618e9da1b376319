package usecase

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"treatment_planner/internal/domain/entities"
	"treatment_planner/pkg"
)

// IPlanUseCase exposes the plan lifecycle operations to the HTTP layer.
//
// Every call names the plan by code; the use case routes it to that plan's
// workspace, which owns the local state between calls.

type IPlanUseCase interface {
	GetPlan(ctx context.Context, planCode string, caps entities.Capabilities) (PlanView, error)
	SubmitForReview(ctx context.Context, planCode string, caps entities.Capabilities, notes string) (PlanView, error)
	Approve(ctx context.Context, planCode string, caps entities.Capabilities, notes string) (PlanView, error)
	Reject(ctx context.Context, planCode string, caps entities.Capabilities, notes string) (PlanView, error)
	AddItems(ctx context.Context, planCode, phaseID string, caps entities.Capabilities, items []entities.NewItem) (entities.AddItemsResult, error)
	MoveItem(ctx context.Context, planCode, phaseID string, caps entities.Capabilities, move ItemMove) (ReorderState, error)
	ResetOrder(ctx context.Context, planCode, phaseID string, caps entities.Capabilities) (ReorderState, error)
	SaveOrder(ctx context.Context, planCode, phaseID string, caps entities.Capabilities) (ReorderState, error)
	ToggleSelection(ctx context.Context, planCode, itemID string, caps entities.Capabilities) (SelectionView, error)
	ClearSelection(ctx context.Context, planCode string) (SelectionView, error)
	GetSelection(ctx context.Context, planCode string) (SelectionView, error)
	BookSelection(ctx context.Context, planCode string, caps entities.Capabilities) (SelectionView, error)
	PreviewPrices(ctx context.Context, planCode string, caps entities.Capabilities, changes []entities.PriceChange) (PricePreview, error)
	CommitPrices(ctx context.Context, planCode string, caps entities.Capabilities, changes []entities.PriceChange) (PriceCommitResult, error)
	GenerateSchedule(ctx context.Context, planCode, phaseID string, caps entities.Capabilities, req entities.AutoScheduleRequest) (entities.ScheduleResult, error)
	SelectSlot(ctx context.Context, planCode string, caps entities.Capabilities, pick SlotPick) (entities.BookingRequest, error)
	ListEvents(ctx context.Context, planCode string) ([]entities.PlanEvent, error)
	ListPriceRevisions(ctx context.Context, planCode string) ([]entities.PriceRevision, error)
}

const (
	DefaultWorkspaceIdleTTL = 30 * time.Minute

	workspaceSweepTick = time.Minute
)

type workspaceEntry struct {
	w        *PlanWorkspace
	lastUsed time.Time
}

type PlanUseCase struct {
	deps    WorkspaceDeps
	idleTTL time.Duration
	now     func() time.Time

	mu         sync.Mutex
	workspaces map[string]*workspaceEntry
	lastSweep  time.Time
}

var _ IPlanUseCase = (*PlanUseCase)(nil)

func NewPlanUseCase(deps WorkspaceDeps) *PlanUseCase {
	ttl := deps.IdleTTL
	if ttl <= 0 {
		ttl = DefaultWorkspaceIdleTTL
	}
	return &PlanUseCase{
		deps:       deps,
		idleTTL:    ttl,
		now:        time.Now,
		workspaces: make(map[string]*workspaceEntry),
	}
}

// Workspace returns the workspace of a plan, creating it on first use.
// Workspaces unused for longer than the idle TTL are dropped along with any
// unsaved local state.
func (u *PlanUseCase) Workspace(planCode string) (*PlanWorkspace, error) {
	planCode = strings.TrimSpace(planCode)
	if planCode == "" {
		return nil, ErrInvalidPlanCode
	}
	u.mu.Lock()
	defer u.mu.Unlock()

	now := u.now()
	e, ok := u.workspaces[planCode]
	if !ok {
		e = &workspaceEntry{w: NewPlanWorkspace(planCode, u.deps)}
		u.workspaces[planCode] = e
	}
	e.lastUsed = now
	u.evictIdle(now)
	return e.w, nil
}

func (u *PlanUseCase) evictIdle(now time.Time) {
	if now.Sub(u.lastSweep) < workspaceSweepTick {
		return
	}
	u.lastSweep = now
	for code, e := range u.workspaces {
		if now.Sub(e.lastUsed) > u.idleTTL {
			e.w.Close()
			delete(u.workspaces, code)
			log.Printf("[plan][usecase] idle workspace evicted plan_code=%s", code)
		}
	}
}

// forgetUnknown drops a workspace whose plan the plan service does not know.
// A workspace that has loaded once is kept; later not-found errors refer to its
// phases or items.
func (u *PlanUseCase) forgetUnknown(w *PlanWorkspace, err error) {
	if _, remote := pkg.AsAppError(err); !remote || ClassifyError(err) != KindNotFound {
		return
	}
	if _, loaded := w.current(); loaded {
		return
	}
	u.mu.Lock()
	e, ok := u.workspaces[w.code]
	if ok && e.w == w {
		delete(u.workspaces, w.code)
	}
	u.mu.Unlock()
	w.Close()
	log.Printf("[plan][usecase] unknown plan workspace dropped plan_code=%s", w.code)
}

// Close stops pending reloads of every workspace.
func (u *PlanUseCase) Close() {
	u.mu.Lock()
	defer u.mu.Unlock()
	for _, e := range u.workspaces {
		e.w.Close()
	}
}

// within runs fn on the workspace of planCode.
func within[T any](u *PlanUseCase, planCode string, fn func(*PlanWorkspace) (T, error)) (T, error) {
	w, err := u.Workspace(planCode)
	if err != nil {
		var zero T
		return zero, err
	}
	res, err := fn(w)
	if err != nil {
		u.forgetUnknown(w, err)
	}
	return res, err
}

func (u *PlanUseCase) GetPlan(ctx context.Context, planCode string, caps entities.Capabilities) (PlanView, error) {
	return within(u, planCode, func(w *PlanWorkspace) (PlanView, error) {
		return w.Load(ctx, caps)
	})
}

func (u *PlanUseCase) SubmitForReview(ctx context.Context, planCode string, caps entities.Capabilities, notes string) (PlanView, error) {
	return within(u, planCode, func(w *PlanWorkspace) (PlanView, error) {
		return w.SubmitForReview(ctx, caps, notes)
	})
}

func (u *PlanUseCase) Approve(ctx context.Context, planCode string, caps entities.Capabilities, notes string) (PlanView, error) {
	return within(u, planCode, func(w *PlanWorkspace) (PlanView, error) {
		return w.Approve(ctx, caps, notes)
	})
}

func (u *PlanUseCase) Reject(ctx context.Context, planCode string, caps entities.Capabilities, notes string) (PlanView, error) {
	return within(u, planCode, func(w *PlanWorkspace) (PlanView, error) {
		return w.Reject(ctx, caps, notes)
	})
}

func (u *PlanUseCase) AddItems(ctx context.Context, planCode, phaseID string, caps entities.Capabilities, items []entities.NewItem) (entities.AddItemsResult, error) {
	return within(u, planCode, func(w *PlanWorkspace) (entities.AddItemsResult, error) {
		return w.AddItems(ctx, phaseID, caps, items)
	})
}

func (u *PlanUseCase) MoveItem(ctx context.Context, planCode, phaseID string, caps entities.Capabilities, move ItemMove) (ReorderState, error) {
	return within(u, planCode, func(w *PlanWorkspace) (ReorderState, error) {
		return w.MoveItem(ctx, phaseID, caps, move)
	})
}

func (u *PlanUseCase) ResetOrder(ctx context.Context, planCode, phaseID string, caps entities.Capabilities) (ReorderState, error) {
	return within(u, planCode, func(w *PlanWorkspace) (ReorderState, error) {
		return w.ResetOrder(ctx, phaseID, caps)
	})
}

func (u *PlanUseCase) SaveOrder(ctx context.Context, planCode, phaseID string, caps entities.Capabilities) (ReorderState, error) {
	return within(u, planCode, func(w *PlanWorkspace) (ReorderState, error) {
		return w.SaveOrder(ctx, phaseID, caps)
	})
}

func (u *PlanUseCase) ToggleSelection(ctx context.Context, planCode, itemID string, caps entities.Capabilities) (SelectionView, error) {
	return within(u, planCode, func(w *PlanWorkspace) (SelectionView, error) {
		return w.ToggleSelection(ctx, itemID, caps)
	})
}

func (u *PlanUseCase) ClearSelection(_ context.Context, planCode string) (SelectionView, error) {
	return within(u, planCode, func(w *PlanWorkspace) (SelectionView, error) {
		return w.ClearSelection(), nil
	})
}

func (u *PlanUseCase) GetSelection(_ context.Context, planCode string) (SelectionView, error) {
	return within(u, planCode, func(w *PlanWorkspace) (SelectionView, error) {
		return w.Selection(), nil
	})
}

func (u *PlanUseCase) BookSelection(ctx context.Context, planCode string, caps entities.Capabilities) (SelectionView, error) {
	return within(u, planCode, func(w *PlanWorkspace) (SelectionView, error) {
		return w.BookSelection(ctx, caps)
	})
}

func (u *PlanUseCase) PreviewPrices(ctx context.Context, planCode string, caps entities.Capabilities, changes []entities.PriceChange) (PricePreview, error) {
	return within(u, planCode, func(w *PlanWorkspace) (PricePreview, error) {
		return w.PreviewPrices(ctx, caps, changes)
	})
}

func (u *PlanUseCase) CommitPrices(ctx context.Context, planCode string, caps entities.Capabilities, changes []entities.PriceChange) (PriceCommitResult, error) {
	return within(u, planCode, func(w *PlanWorkspace) (PriceCommitResult, error) {
		return w.CommitPrices(ctx, caps, changes)
	})
}

func (u *PlanUseCase) GenerateSchedule(ctx context.Context, planCode, phaseID string, caps entities.Capabilities, req entities.AutoScheduleRequest) (entities.ScheduleResult, error) {
	return within(u, planCode, func(w *PlanWorkspace) (entities.ScheduleResult, error) {
		return w.GenerateSchedule(ctx, strings.TrimSpace(phaseID), caps, req)
	})
}

func (u *PlanUseCase) SelectSlot(ctx context.Context, planCode string, caps entities.Capabilities, pick SlotPick) (entities.BookingRequest, error) {
	return within(u, planCode, func(w *PlanWorkspace) (entities.BookingRequest, error) {
		return w.SelectSlot(ctx, caps, pick)
	})
}

func (u *PlanUseCase) ListEvents(ctx context.Context, planCode string) ([]entities.PlanEvent, error) {
	return within(u, planCode, func(w *PlanWorkspace) ([]entities.PlanEvent, error) {
		return w.Events(ctx)
	})
}

func (u *PlanUseCase) ListPriceRevisions(ctx context.Context, planCode string) ([]entities.PriceRevision, error) {
	return within(u, planCode, func(w *PlanWorkspace) ([]entities.PriceRevision, error) {
		return w.PriceRevisions(ctx)
	})
}
