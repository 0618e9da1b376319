package usecase

import (
	"context"
	"log"
	"math"
	"strings"
	"sync"
	"unicode/utf8"

	"treatment_planner/internal/domain/entities"
	"treatment_planner/internal/usecase/interfaces"
)

// MaxPriceNoteLength bounds the note attached to a price change, in characters.
const MaxPriceNoteLength = 500

// PriceLine is the reconciliation of one item.
type PriceLine struct {
	ItemID       string  `json:"item_id"`
	Name         string  `json:"name"`
	CurrentPrice float64 `json:"current_price"`
	NewPrice     float64 `json:"new_price"`
	Delta        float64 `json:"delta"`
	Note         string  `json:"note,omitempty"`
	Changed      bool    `json:"changed"`
	Invalid      bool    `json:"invalid"`
	NoteTooLong  bool    `json:"note_too_long"`
}

// PricePreview is computed from the working set only; it is never the final word
// on totals.
type PricePreview struct {
	Lines          []PriceLine `json:"lines"`
	ChangedItemIDs []string    `json:"changed_item_ids"`
	InvalidItemIDs []string    `json:"invalid_item_ids"`
	CurrentTotal   float64     `json:"current_total"`
	NewTotal       float64     `json:"new_total"`
	AggregateDelta float64     `json:"aggregate_delta"`
	CanSubmit      bool        `json:"can_submit"`
}

// PriceCommitResult pairs the server totals with the local estimate.
type PriceCommitResult struct {
	Result     entities.PriceUpdateResult `json:"result"`
	Changes    []entities.PriceChange     `json:"changes"`
	LocalDelta float64                    `json:"local_delta"`
}

type stagedPrice struct {
	price float64
	note  string
}

// PriceReconciler computes the effect of a batch price change before sending it.
type PriceReconciler struct {
	service  interfaces.IPlanService
	notifier interfaces.INotifier
	audit    *AuditRecorder
	guard    *OperationGuard

	mu     sync.Mutex
	items  []entities.Item
	staged map[string]stagedPrice
}

func NewPriceReconciler(service interfaces.IPlanService, notifier interfaces.INotifier, audit *AuditRecorder) *PriceReconciler {
	return &PriceReconciler{
		service:  service,
		notifier: notifier,
		audit:    audit,
		guard:    NewOperationGuard(),
		staged:   make(map[string]stagedPrice),
	}
}

// Rebase adopts the current prices of plan and forgets candidates for items that
// no longer exist.
func (r *PriceReconciler) Rebase(plan entities.Plan) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = plan.Items()
	for id := range r.staged {
		if _, ok := plan.ItemByID(id); !ok {
			delete(r.staged, id)
		}
	}
}

// Stage records a candidate price. Invalid prices are kept and flagged by Preview.
func (r *PriceReconciler) Stage(itemID string, newPrice float64, note string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.hasItemLocked(itemID) {
		return ErrItemNotFound
	}
	r.staged[itemID] = stagedPrice{price: newPrice, note: strings.TrimSpace(note)}
	return nil
}

// StageAll replaces the whole working set.
func (r *PriceReconciler) StageAll(changes []entities.PriceChange) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	next := make(map[string]stagedPrice, len(changes))
	for _, c := range changes {
		if !r.hasItemLocked(c.ItemID) {
			return ErrItemNotFound
		}
		next[c.ItemID] = stagedPrice{price: c.NewPrice, note: strings.TrimSpace(c.Note)}
	}
	r.staged = next
	return nil
}

func (r *PriceReconciler) Unstage(itemID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.staged, itemID)
}

func (r *PriceReconciler) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.staged = make(map[string]stagedPrice)
}

func (r *PriceReconciler) hasItemLocked(itemID string) bool {
	for _, it := range r.items {
		if it.ID == itemID {
			return true
		}
	}
	return false
}

func (r *PriceReconciler) Preview() PricePreview {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.previewLocked()
}

func (r *PriceReconciler) previewLocked() PricePreview {
	p := PricePreview{
		Lines:          make([]PriceLine, 0, len(r.items)),
		ChangedItemIDs: []string{},
		InvalidItemIDs: []string{},
	}
	var currentSum, newSum float64
	for _, it := range r.items {
		line := PriceLine{ItemID: it.ID, Name: it.Name, CurrentPrice: it.Price, NewPrice: it.Price}
		if st, ok := r.staged[it.ID]; ok {
			line.NewPrice = st.price
			line.Note = st.note
			line.Invalid = !validPrice(st.price)
			line.NoteTooLong = utf8.RuneCountInString(st.note) > MaxPriceNoteLength
		}
		if line.Invalid {
			p.InvalidItemIDs = append(p.InvalidItemIDs, it.ID)
		} else {
			line.Delta = roundCents(line.NewPrice - line.CurrentPrice)
			line.Changed = line.Delta != 0
		}
		if line.Changed {
			p.ChangedItemIDs = append(p.ChangedItemIDs, it.ID)
			currentSum += line.CurrentPrice
			newSum += line.NewPrice
		}
		p.Lines = append(p.Lines, line)
	}
	p.CurrentTotal = roundCents(currentSum)
	p.NewTotal = roundCents(newSum)
	p.AggregateDelta = roundCents(newSum - currentSum)
	p.CanSubmit = len(p.ChangedItemIDs) > 0 && len(p.InvalidItemIDs) == 0 && !anyNoteTooLong(p.Lines)
	return p
}

// Commit sends the changed items as one batch. It is refused locally when nothing
// changed or any candidate is invalid.
func (r *PriceReconciler) Commit(ctx context.Context, planCode string, caps entities.Capabilities) (PriceCommitResult, error) {
	release, ok := r.guard.TryAcquire(OpPriceSave)
	if !ok {
		return PriceCommitResult{}, ErrOperationInProgress
	}
	defer release()

	if !caps.EditPricing {
		return PriceCommitResult{}, ErrPermissionDenied
	}

	r.mu.Lock()
	preview := r.previewLocked()
	r.mu.Unlock()

	if len(preview.InvalidItemIDs) > 0 {
		return PriceCommitResult{}, ErrInvalidPrice
	}
	if anyNoteTooLong(preview.Lines) {
		return PriceCommitResult{}, ErrNotesTooLong
	}
	if len(preview.ChangedItemIDs) == 0 {
		return PriceCommitResult{}, ErrNoPriceChanges
	}

	var changed []PriceLine
	changes := make([]entities.PriceChange, 0, len(preview.ChangedItemIDs))
	for _, l := range preview.Lines {
		if !l.Changed {
			continue
		}
		changed = append(changed, l)
		changes = append(changes, entities.PriceChange{ItemID: l.ItemID, NewPrice: l.NewPrice, Note: l.Note})
	}

	log.Printf("[plan][price] commit start plan_code=%s items=%d local_delta=%.2f", planCode, len(changes), preview.AggregateDelta)
	res, err := r.service.UpdatePrices(ctx, planCode, changes)
	if err != nil {
		log.Printf("[plan][price] commit failed plan_code=%s err=%v", planCode, err)
		notifyFailure(ctx, r.notifier, "Could not update prices", err)
		return PriceCommitResult{}, err
	}
	log.Printf("[plan][price] commit success plan_code=%s updated=%d before=%.2f after=%.2f", planCode, res.ItemsUpdated, res.TotalCostBefore, res.TotalCostAfter)

	r.Reset()
	r.notifier.Success(ctx, "Prices updated", FormatTotals(res))
	r.audit.RecordPrices(ctx, planCode, changed)
	return PriceCommitResult{Result: res, Changes: changes, LocalDelta: preview.AggregateDelta}, nil
}

func validPrice(v float64) bool {
	return v >= 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}

// anyNoteTooLong reports an over-long note on a line that would be sent.
func anyNoteTooLong(lines []PriceLine) bool {
	for _, l := range lines {
		if l.Changed && l.NoteTooLong {
			return true
		}
	}
	return false
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
