package usecase

import (
	"context"
	"log"
	"sync"

	"treatment_planner/internal/domain/entities"
	"treatment_planner/internal/usecase/interfaces"
)

// SelectionView is the read-only result handed to the booking flow.
type SelectionView struct {
	ItemIDs              []string        `json:"item_ids"`
	Items                []entities.Item `json:"items"`
	TotalDurationMinutes int             `json:"total_duration_minutes"`
}

// SelectionCoordinator keeps the set of items picked for grouped booking.
type SelectionCoordinator struct {
	mu       sync.Mutex
	selected map[string]struct{}
}

func NewSelectionCoordinator() *SelectionCoordinator {
	return &SelectionCoordinator{selected: make(map[string]struct{})}
}

// Toggle flips the selection of itemID and returns whether it is now selected.
// Items that are not bookable right now are left untouched.
func (s *SelectionCoordinator) Toggle(plan entities.Plan, itemID string, caps entities.Capabilities) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.selected[itemID]; ok {
		delete(s.selected, itemID)
		return false
	}
	item, ok := plan.ItemByID(itemID)
	if !ok || !CanBook(item, plan.ApprovalStatus, caps) {
		return false
	}
	s.selected[itemID] = struct{}{}
	return true
}

func (s *SelectionCoordinator) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = make(map[string]struct{})
}

func (s *SelectionCoordinator) IsSelected(itemID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.selected[itemID]
	return ok
}

// Reconcile drops ids that vanished from the plan or are no longer ready for
// booking, and returns the dropped ids.
func (s *SelectionCoordinator) Reconcile(plan entities.Plan) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var dropped []string
	for id := range s.selected {
		item, ok := plan.ItemByID(id)
		if !ok || item.Status != entities.ItemStatusReadyForBooking {
			delete(s.selected, id)
			dropped = append(dropped, id)
		}
	}
	return dropped
}

// View resolves the selection against plan, in plan order.
func (s *SelectionCoordinator) View(plan entities.Plan) SelectionView {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := SelectionView{ItemIDs: []string{}, Items: []entities.Item{}}
	for _, it := range plan.Items() {
		if _, ok := s.selected[it.ID]; !ok {
			continue
		}
		v.ItemIDs = append(v.ItemIDs, it.ID)
		v.Items = append(v.Items, it)
		v.TotalDurationMinutes += it.EstimatedMinutes
	}
	return v
}

// HandOff passes the resolved selection to the booking flow. The coordinator
// keeps the selection; it is reconciled on the next plan re-fetch.
func (s *SelectionCoordinator) HandOff(ctx context.Context, plan entities.Plan, caps entities.Capabilities, booking interfaces.IBookingFlow) (SelectionView, error) {
	if booking == nil {
		return SelectionView{}, ErrBookingNotConfigured
	}
	if !caps.Book {
		return SelectionView{}, ErrPermissionDenied
	}
	if plan.ApprovalStatus != entities.ApprovalStatusApproved {
		return SelectionView{}, ErrPlanNotApproved
	}
	v := s.View(plan)
	if len(v.Items) == 0 {
		return SelectionView{}, ErrEmptySelection
	}
	req := entities.BulkBookingRequest{
		PlanCode:             plan.Code,
		Items:                v.Items,
		TotalDurationMinutes: v.TotalDurationMinutes,
	}
	if err := booking.StartBulkBooking(ctx, req); err != nil {
		log.Printf("[plan][selection] bulk booking hand-off failed plan_code=%s items=%d err=%v", plan.Code, len(v.Items), err)
		return SelectionView{}, err
	}
	log.Printf("[plan][selection] bulk booking hand-off plan_code=%s items=%d minutes=%d", plan.Code, len(v.Items), v.TotalDurationMinutes)
	return v, nil
}
