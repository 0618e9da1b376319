package planservice

import (
	"context"
	"log"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"treatment_planner/internal/domain/entities"
	"treatment_planner/internal/usecase/interfaces"
	"treatment_planner/pkg"

	"github.com/google/uuid"
)

// Machine codes of the plan service error contract.
const (
	codeValidation             = "VALIDATION_ERROR"
	codePlanNotFound           = "PLAN_NOT_FOUND"
	codePhaseNotFound          = "PHASE_NOT_FOUND"
	codeItemNotFound           = "ITEM_NOT_FOUND"
	codeInvalidApprovalState   = "INVALID_APPROVAL_STATE"
	codeConcurrentModification = "CONCURRENT_MODIFICATION"
	codeEmptyPlan              = "PLAN_HAS_NO_ITEMS"
)

const mockReviewer = "mock-reviewer"

// MockService is an in-memory plan service used when PLAN_SERVICE_MOCK is set.
// It enforces the same preconditions as the real service so that the 400/404/409
// paths can be exercised locally.
type MockService struct {
	mu    sync.Mutex
	plans map[string]*entities.Plan
	now   func() time.Time
	newID func() string
}

var _ interfaces.IPlanService = (*MockService)(nil)

// NewMockService seeds the store with plans, or with DemoPlan when none is given.
func NewMockService(plans ...entities.Plan) *MockService {
	if len(plans) == 0 {
		plans = []entities.Plan{DemoPlan()}
	}
	s := &MockService{
		plans: make(map[string]*entities.Plan, len(plans)),
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, p := range plans {
		cp := clonePlan(p)
		recomputeTotals(&cp)
		s.plans[p.Code] = &cp
	}
	log.Printf("[plan][gateway] mock mode enabled plans=%d", len(plans))
	return s
}

// DemoPlan is the plan served by the mock service out of the box.
func DemoPlan() entities.Plan {
	return entities.Plan{
		ID:             "plan-demo-1",
		Code:           "PLAN-DEMO-1",
		Name:           "Full mouth rehabilitation",
		Status:         entities.PlanStatusPending,
		ApprovalStatus: entities.ApprovalStatusDraft,
		Discount:       100,
		Phases: []entities.Phase{
			{
				ID: "ph-demo-1", Sequence: 1, Name: "Hygiene", Status: entities.PhaseStatusPending, StatusReported: true,
				Items: []entities.Item{
					{ID: "it-demo-1", Sequence: 1, Name: "Cleaning", Price: 250, EstimatedMinutes: 45, Status: entities.ItemStatusPending},
					{ID: "it-demo-2", Sequence: 2, Name: "Panoramic x-ray", Price: 180, EstimatedMinutes: 20, Status: entities.ItemStatusPending},
				},
			},
			{
				ID: "ph-demo-2", Sequence: 2, Name: "Restoration", Status: entities.PhaseStatusPending, StatusReported: true,
				Items: []entities.Item{
					{ID: "it-demo-3", Sequence: 1, Name: "Root canal", Price: 1200, EstimatedMinutes: 90, Status: entities.ItemStatusPending},
					{
						ID: "it-demo-4", Sequence: 2, Name: "Crown", Price: 2000, EstimatedMinutes: 60,
						Status: entities.ItemStatusWaitingForPrerequisite, PrerequisiteID: "it-demo-3", PrerequisiteName: "Root canal",
					},
				},
			},
		},
	}
}

func (s *MockService) GetPlan(_ context.Context, planCode string) (entities.Plan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.plans[planCode]
	if !ok {
		return entities.Plan{}, notFound(codePlanNotFound, "plan not found")
	}
	return clonePlan(*p), nil
}

func (s *MockService) SubmitForReview(_ context.Context, planCode string, notes string) (entities.Plan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.plans[planCode]
	if !ok {
		return entities.Plan{}, notFound(codePlanNotFound, "plan not found")
	}
	if p.ApprovalStatus != entities.ApprovalStatusDraft && p.ApprovalStatus != entities.ApprovalStatusRejected {
		return entities.Plan{}, conflict(codeInvalidApprovalState, "plan is not a draft")
	}
	if !p.HasSubmittableContent() {
		return entities.Plan{}, badRequest(codeEmptyPlan, "plan has no phase with items")
	}
	p.ApprovalStatus = entities.ApprovalStatusPendingReview
	p.Approval = entities.ApprovalMetadata{}
	log.Printf("[plan][mock] submitted plan_code=%s notes_len=%d", planCode, len(notes))
	return clonePlan(*p), nil
}

func (s *MockService) ApproveOrReject(_ context.Context, planCode string, status entities.ApprovalStatus, notes string) (entities.Plan, error) {
	if status != entities.ApprovalStatusApproved && status != entities.ApprovalStatusRejected {
		return entities.Plan{}, badRequest(codeValidation, "approvalStatus must be APPROVED or REJECTED")
	}
	if status == entities.ApprovalStatusRejected && strings.TrimSpace(notes) == "" {
		return entities.Plan{}, badRequest(codeValidation, "notes are required to reject a plan")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.plans[planCode]
	if !ok {
		return entities.Plan{}, notFound(codePlanNotFound, "plan not found")
	}
	if p.ApprovalStatus != entities.ApprovalStatusPendingReview {
		return entities.Plan{}, conflict(codeInvalidApprovalState, "plan is not pending review")
	}
	at := s.now().UTC()
	p.ApprovalStatus = status
	p.Approval = entities.ApprovalMetadata{ReviewedBy: mockReviewer, ReviewedAt: &at, Notes: notes}
	if status == entities.ApprovalStatusApproved {
		p.Status = entities.PlanStatusInProgress
		releaseReadyItems(p)
	}
	return clonePlan(*p), nil
}

func (s *MockService) AddItemsToPhase(_ context.Context, phaseID string, items []entities.NewItem, autoSubmit bool) (entities.AddItemsResult, error) {
	if len(items) == 0 {
		return entities.AddItemsResult{}, badRequest(codeValidation, "items are required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	p, idx := s.phaseLocked(phaseID)
	if p == nil {
		return entities.AddItemsResult{}, notFound(codePhaseNotFound, "phase not found")
	}
	if p.ApprovalStatus == entities.ApprovalStatusPendingReview {
		return entities.AddItemsResult{}, conflict(codeInvalidApprovalState, "plan is pending review")
	}

	phase := &p.Phases[idx]
	created := make([]entities.Item, 0, len(items))
	for _, in := range items {
		if in.Price < 0 {
			return entities.AddItemsResult{}, badRequest(codeValidation, "price must not be negative")
		}
		qty := max(in.Quantity, 1)
		name := in.Name
		if name == "" {
			name = in.ServiceCode
		}
		for range qty {
			it := entities.Item{
				ID:               s.newID(),
				Sequence:         len(phase.Items) + 1,
				Name:             name,
				Price:            in.Price,
				EstimatedMinutes: in.EstimatedMinutes,
				Status:           entities.ItemStatusPending,
			}
			phase.Items = append(phase.Items, it)
			created = append(created, it)
		}
	}
	recomputeTotals(p)

	res := entities.AddItemsResult{Items: created, Message: "Items added"}
	if autoSubmit && p.ApprovalStatus == entities.ApprovalStatusApproved {
		p.ApprovalStatus = entities.ApprovalStatusPendingReview
		p.Approval = entities.ApprovalMetadata{}
		res.ApprovalRequired = true
		res.Message = "Items added; plan submitted for review"
	}
	return res, nil
}

func (s *MockService) ReorderItems(_ context.Context, phaseID string, itemIDs []string) (entities.ReorderResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, idx := s.phaseLocked(phaseID)
	if p == nil {
		return entities.ReorderResult{}, notFound(codePhaseNotFound, "phase not found")
	}
	if p.ApprovalStatus == entities.ApprovalStatusPendingReview {
		return entities.ReorderResult{}, conflict(codeInvalidApprovalState, "plan is pending review")
	}
	phase := &p.Phases[idx]
	if len(itemIDs) != len(phase.Items) {
		return entities.ReorderResult{}, conflict(codeConcurrentModification, "phase items changed")
	}

	byID := make(map[string]entities.Item, len(phase.Items))
	for _, it := range phase.Items {
		byID[it.ID] = it
	}
	reordered := make([]entities.Item, 0, len(itemIDs))
	for i, id := range itemIDs {
		it, ok := byID[id]
		if !ok {
			return entities.ReorderResult{}, notFound(codeItemNotFound, "item "+id+" not found in phase")
		}
		delete(byID, id)
		it.Sequence = i + 1
		reordered = append(reordered, it)
	}
	phase.Items = reordered
	return entities.ReorderResult{ItemsReordered: len(reordered)}, nil
}

func (s *MockService) UpdatePrices(_ context.Context, planCode string, changes []entities.PriceChange) (entities.PriceUpdateResult, error) {
	if len(changes) == 0 {
		return entities.PriceUpdateResult{}, badRequest(codeValidation, "items are required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.plans[planCode]
	if !ok {
		return entities.PriceUpdateResult{}, notFound(codePlanNotFound, "plan not found")
	}
	if p.ApprovalStatus == entities.ApprovalStatusPendingReview {
		return entities.PriceUpdateResult{}, conflict(codeInvalidApprovalState, "plan is pending review")
	}
	for _, c := range changes {
		if c.NewPrice < 0 {
			return entities.PriceUpdateResult{}, badRequest(codeValidation, "price must not be negative")
		}
		if _, ok := p.ItemByID(c.ItemID); !ok {
			return entities.PriceUpdateResult{}, notFound(codeItemNotFound, "item "+c.ItemID+" not found")
		}
	}

	before := p.TotalPrice
	for _, c := range changes {
		for pi := range p.Phases {
			for ii := range p.Phases[pi].Items {
				if p.Phases[pi].Items[ii].ID == c.ItemID {
					p.Phases[pi].Items[ii].Price = c.NewPrice
				}
			}
		}
	}
	recomputeTotals(p)
	return entities.PriceUpdateResult{ItemsUpdated: len(changes), TotalCostBefore: before, TotalCostAfter: p.TotalPrice}, nil
}

// GenerateSchedule proposes one slot set per open item, spaced two days apart and
// moved off Sundays.
func (s *MockService) GenerateSchedule(_ context.Context, scope entities.ScheduleScope, req entities.AutoScheduleRequest) (entities.ScheduleResult, error) {
	if req.LookAheadDays < 1 || req.LookAheadDays > entities.MaxLookAheadDays {
		return entities.ScheduleResult{}, badRequest(codeValidation, "lookAheadDays must be between 1 and 90")
	}

	s.mu.Lock()
	var items []entities.Item
	if scope.PhaseID != "" {
		p, idx := s.phaseLocked(scope.PhaseID)
		if p == nil {
			s.mu.Unlock()
			return entities.ScheduleResult{}, notFound(codePhaseNotFound, "phase not found")
		}
		items = slices.Clone(p.Phases[idx].Items)
	} else {
		p := s.planByIDLocked(scope.PlanID)
		if p == nil {
			s.mu.Unlock()
			return entities.ScheduleResult{}, notFound(codePlanNotFound, "plan not found")
		}
		items = p.Items()
	}
	s.mu.Unlock()

	today := s.now().UTC().Truncate(24 * time.Hour)
	limit := today.AddDate(0, 0, req.LookAheadDays)
	res := entities.ScheduleResult{Suggestions: []entities.ScheduleSuggestion{}}
	n := 0
	for _, it := range items {
		if it.Status == entities.ItemStatusCompleted || it.Status == entities.ItemStatusSkipped {
			continue
		}
		res.Summary.TotalItems++

		day := today.AddDate(0, 0, 1+2*n)
		sug := entities.ScheduleSuggestion{ItemID: it.ID, ServiceName: it.Name, SuggestedDate: day}
		if day.Weekday() == time.Sunday {
			original := day
			sug.OriginalDate = &original
			sug.SuggestedDate = day.AddDate(0, 0, 1)
			sug.HolidayAdjusted = true
			res.Summary.HolidayAdjusted++
		}
		if sug.SuggestedDate.After(limit) {
			continue
		}
		if it.Status == entities.ItemStatusWaitingForPrerequisite {
			sug.Note = "waiting for " + it.PrerequisiteName
		}
		sug.Slots = mockSlots(it, req)
		res.Suggestions = append(res.Suggestions, sug)
		res.Summary.Suggested++
		n++
	}
	return res, nil
}

var slotStarts = map[entities.TimeOfDay]string{
	entities.TimeOfDayMorning:   "09:00",
	entities.TimeOfDayAfternoon: "14:00",
	entities.TimeOfDayEvening:   "18:00",
}

func mockSlots(it entities.Item, req entities.AutoScheduleRequest) []entities.TimeSlot {
	times := req.PreferredTimes
	if len(times) == 0 {
		times = []entities.TimeOfDay{entities.TimeOfDayMorning, entities.TimeOfDayAfternoon, entities.TimeOfDayEvening}
	}
	minutes := it.EstimatedMinutes
	if minutes <= 0 {
		minutes = 30
	}
	doctor := entities.Candidate{ID: "doc-1", Name: "Dr. Demo"}
	if req.PreferredDoctorID != "" {
		doctor = entities.Candidate{ID: req.PreferredDoctorID}
	}
	room := entities.Candidate{ID: "room-1", Name: "Room 1"}
	if req.PreferredRoomID != "" {
		room = entities.Candidate{ID: req.PreferredRoomID}
	}

	slots := make([]entities.TimeSlot, 0, len(times))
	for _, t := range times {
		start, ok := slotStarts[t]
		if !ok {
			continue
		}
		st, _ := time.Parse("15:04", start)
		slots = append(slots, entities.TimeSlot{
			StartTime: start,
			EndTime:   st.Add(time.Duration(minutes) * time.Minute).Format("15:04"),
			Available: true,
			Rooms:     []entities.Candidate{room},
			Doctors:   []entities.Candidate{doctor},
		})
	}
	return slots
}

func (s *MockService) phaseLocked(phaseID string) (*entities.Plan, int) {
	for _, p := range s.plans {
		for i, ph := range p.Phases {
			if ph.ID == phaseID {
				return p, i
			}
		}
	}
	return nil, -1
}

func (s *MockService) planByIDLocked(planID string) *entities.Plan {
	for _, p := range s.plans {
		if p.ID == planID {
			return p
		}
	}
	return nil
}

// releaseReadyItems marks pending items ready for booking, or waiting when their
// prerequisite is not done yet.
func releaseReadyItems(p *entities.Plan) {
	done := map[string]bool{}
	for _, it := range p.Items() {
		done[it.ID] = it.Status == entities.ItemStatusCompleted || it.Status == entities.ItemStatusSkipped
	}
	for pi := range p.Phases {
		for ii := range p.Phases[pi].Items {
			it := &p.Phases[pi].Items[ii]
			if it.Status != entities.ItemStatusPending && it.Status != entities.ItemStatusWaitingForPrerequisite {
				continue
			}
			if it.PrerequisiteID != "" && !done[it.PrerequisiteID] {
				it.Status = entities.ItemStatusWaitingForPrerequisite
				continue
			}
			it.Status = entities.ItemStatusReadyForBooking
		}
	}
}

func recomputeTotals(p *entities.Plan) {
	var total float64
	for _, it := range p.Items() {
		total += it.Price
	}
	p.TotalPrice = total
	p.FinalCost = max(total-p.Discount, 0)
}

func clonePlan(p entities.Plan) entities.Plan {
	cp := p
	if p.Approval.ReviewedAt != nil {
		at := *p.Approval.ReviewedAt
		cp.Approval.ReviewedAt = &at
	}
	cp.Phases = make([]entities.Phase, len(p.Phases))
	for i, ph := range p.Phases {
		ph.Items = slices.Clone(ph.Items)
		for j := range ph.Items {
			ph.Items[j].Appointments = slices.Clone(ph.Items[j].Appointments)
		}
		cp.Phases[i] = ph
	}
	return cp
}

func badRequest(code, msg string) error {
	return pkg.NewDomainErrorSimple(code, msg, http.StatusBadRequest)
}

func notFound(code, msg string) error {
	return pkg.NewDomainErrorSimple(code, msg, http.StatusNotFound)
}

func conflict(code, msg string) error {
	return pkg.NewDomainErrorSimple(code, msg, http.StatusConflict)
}
