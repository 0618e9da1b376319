package usecase

import "sync"

// Operation names one write flow against a plan.
type Operation string

const (
	OpSubmit      Operation = "submit"
	OpApprove     Operation = "approve"
	OpReject      Operation = "reject"
	OpAddItems    Operation = "add_items"
	OpReorderSave Operation = "reorder_save"
	OpPriceSave   Operation = "price_save"
	OpSchedule    Operation = "schedule"
	OpBookSlot    Operation = "book_slot"
	OpBulkBook    Operation = "bulk_book"
)

// OperationGuard tracks which operations are in flight. A second acquisition of a
// busy operation fails instead of queuing.
type OperationGuard struct {
	mu   sync.Mutex
	busy map[Operation]bool
}

func NewOperationGuard() *OperationGuard {
	return &OperationGuard{busy: make(map[Operation]bool)}
}

// TryAcquire marks op busy and returns its release func. ok is false when op is
// already in flight.
func (g *OperationGuard) TryAcquire(op Operation) (release func(), ok bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.busy[op] {
		return func() {}, false
	}
	g.busy[op] = true
	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			delete(g.busy, op)
			g.mu.Unlock()
		})
	}, true
}

func (g *OperationGuard) Busy(op Operation) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.busy[op]
}
