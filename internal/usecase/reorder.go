package usecase

import (
	"context"
	"log"
	"slices"
	"sync"
	"time"

	"treatment_planner/internal/usecase/interfaces"
)

// DefaultReloadDelay is how long a conflicting reorder waits before reloading.
const DefaultReloadDelay = 2 * time.Second

// ReorderState is a snapshot of a phase's working order.
type ReorderState struct {
	PhaseID         string   `json:"phase_id"`
	ItemIDs         []string `json:"item_ids"`
	OriginalItemIDs []string `json:"original_item_ids"`
	Dirty           bool     `json:"dirty"`
	ReloadScheduled bool     `json:"reload_scheduled"`
}

// ReorderSession holds the optimistic order of one phase.
//
// Moves apply to the working copy at once. Saving sends the whole list; a conflict
// restores the pre-drag order and schedules a reload instead of merging.
type ReorderSession struct {
	phaseID  string
	service  interfaces.IPlanService
	notifier interfaces.INotifier
	guard    *OperationGuard

	reload      func()
	reloadDelay time.Duration
	afterFunc   func(time.Duration, func()) *time.Timer

	mu        sync.Mutex
	original  []string
	working   []string
	dirty     bool
	scheduled *time.Timer
}

type ReorderOption func(*ReorderSession)

// WithReloadDelay sets the wait between a conflict and the automatic reload.
func WithReloadDelay(d time.Duration) ReorderOption {
	return func(s *ReorderSession) {
		if d >= 0 {
			s.reloadDelay = d
		}
	}
}

// WithAfterFunc replaces time.AfterFunc, mainly for tests.
func WithAfterFunc(f func(time.Duration, func()) *time.Timer) ReorderOption {
	return func(s *ReorderSession) { s.afterFunc = f }
}

// NewReorderSession starts a session from the server order. reload is invoked after
// a successful save and, delayed, after a conflict.
func NewReorderSession(phaseID string, serverIDs []string, service interfaces.IPlanService, notifier interfaces.INotifier, reload func(), opts ...ReorderOption) *ReorderSession {
	s := &ReorderSession{
		phaseID:     phaseID,
		service:     service,
		notifier:    notifier,
		guard:       NewOperationGuard(),
		reload:      reload,
		reloadDelay: DefaultReloadDelay,
		afterFunc:   time.AfterFunc,
		original:    slices.Clone(serverIDs),
		working:     slices.Clone(serverIDs),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Sync adopts a fresh server order. Unsaved moves are discarded when the server
// order differs from the one the session started from.
func (s *ReorderSession) Sync(serverIDs []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if slices.Equal(s.original, serverIDs) {
		return
	}
	if s.dirty {
		log.Printf("[plan][reorder] server order changed; discarding unsaved order phase_id=%s", s.phaseID)
	}
	s.original = slices.Clone(serverIDs)
	s.working = slices.Clone(serverIDs)
	s.dirty = false
}

// Move relocates the item at index from so that it ends up at index to.
func (s *ReorderSession) Move(from, to int) (ReorderState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.working)
	if from < 0 || from >= n || to < 0 || to >= n {
		return s.snapshotLocked(), ErrInvalidMove
	}
	if from == to {
		return s.snapshotLocked(), nil
	}
	id := s.working[from]
	s.working = slices.Delete(s.working, from, from+1)
	s.working = slices.Insert(s.working, to, id)
	s.dirty = !slices.Equal(s.working, s.original)
	return s.snapshotLocked(), nil
}

// MoveBefore places itemID right before beforeID. An empty beforeID moves the item
// to the end.
func (s *ReorderSession) MoveBefore(itemID, beforeID string) (ReorderState, error) {
	s.mu.Lock()
	from := slices.Index(s.working, itemID)
	to := len(s.working) - 1
	if beforeID != "" {
		target := slices.Index(s.working, beforeID)
		if target < 0 || beforeID == itemID {
			from = -1
		} else if from >= 0 && from < target {
			to = target - 1
		} else {
			to = target
		}
	}
	s.mu.Unlock()

	if from < 0 {
		return s.Snapshot(), ErrInvalidMove
	}
	return s.Move(from, to)
}

// Reset discards unsaved moves.
func (s *ReorderSession) Reset() ReorderState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.working = slices.Clone(s.original)
	s.dirty = false
	return s.snapshotLocked()
}

func (s *ReorderSession) Snapshot() ReorderState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *ReorderSession) snapshotLocked() ReorderState {
	return ReorderState{
		PhaseID:         s.phaseID,
		ItemIDs:         slices.Clone(s.working),
		OriginalItemIDs: slices.Clone(s.original),
		Dirty:           s.dirty,
		ReloadScheduled: s.scheduled != nil,
	}
}

// Save sends the working order. On success the reload callback runs; on failure
// the pre-drag order is restored, and conflicts schedule a delayed reload.
func (s *ReorderSession) Save(ctx context.Context) (ReorderState, error) {
	release, ok := s.guard.TryAcquire(OpReorderSave)
	if !ok {
		return s.Snapshot(), ErrOperationInProgress
	}
	defer release()

	s.mu.Lock()
	if !s.dirty {
		state := s.snapshotLocked()
		s.mu.Unlock()
		return state, ErrNoOrderChanges
	}
	ids := slices.Clone(s.working)
	s.mu.Unlock()

	log.Printf("[plan][reorder] save start phase_id=%s items=%d", s.phaseID, len(ids))
	_, err := s.service.ReorderItems(ctx, s.phaseID, ids)
	if err != nil {
		log.Printf("[plan][reorder] save failed phase_id=%s err=%v", s.phaseID, err)
		return s.rollback(ctx, err), err
	}

	s.mu.Lock()
	s.original = ids
	s.working = slices.Clone(ids)
	s.dirty = false
	state := s.snapshotLocked()
	s.mu.Unlock()

	log.Printf("[plan][reorder] save success phase_id=%s", s.phaseID)
	s.notifier.Success(ctx, "Item order saved", "")
	if s.reload != nil {
		s.reload()
	}
	return state, nil
}

func (s *ReorderSession) rollback(ctx context.Context, cause error) ReorderState {
	s.mu.Lock()
	s.working = slices.Clone(s.original)
	s.dirty = false
	kind := ClassifyError(cause)
	if kind == KindConflict && s.reload != nil && s.scheduled == nil {
		s.scheduled = s.afterFunc(s.reloadDelay, s.runScheduledReload)
	}
	state := s.snapshotLocked()
	s.mu.Unlock()

	switch kind {
	case KindConflict:
		s.notifier.Warning(ctx, "The item order was changed by someone else", "Your changes were discarded; the plan will reload")
	case KindNotFound:
		notifyFailure(ctx, s.notifier, "Could not save item order", cause)
		if s.reload != nil {
			s.reload()
		}
	default:
		notifyFailure(ctx, s.notifier, "Could not save item order", cause)
	}
	return state
}

func (s *ReorderSession) runScheduledReload() {
	s.mu.Lock()
	s.scheduled = nil
	s.mu.Unlock()
	log.Printf("[plan][reorder] scheduled reload phase_id=%s", s.phaseID)
	s.reload()
}

// Stop cancels a pending scheduled reload.
func (s *ReorderSession) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.scheduled != nil {
		s.scheduled.Stop()
		s.scheduled = nil
	}
}
