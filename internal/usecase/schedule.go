package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"treatment_planner/internal/domain/entities"
	"treatment_planner/internal/usecase/interfaces"

	"github.com/go-playground/validator/v10"
)

// SlotPick identifies the slot chosen by the user. Room and doctor are optional and
// must be among the slot's candidates when given.
type SlotPick struct {
	ItemID    string `json:"item_id"`
	SlotIndex int    `json:"slot_index"`
	RoomID    string `json:"room_id,omitempty"`
	DoctorID  string `json:"doctor_id,omitempty"`
}

// SuggestionMapper associates solver suggestions with plan items and validates a
// slot pick before handing it to the booking flow.
type SuggestionMapper struct {
	service  interfaces.IPlanService
	booking  interfaces.IBookingFlow
	validate *validator.Validate
	guard    *OperationGuard

	mu      sync.RWMutex
	byItem  map[string]entities.ScheduleSuggestion
	summary entities.ScheduleSummary
}

func NewSuggestionMapper(service interfaces.IPlanService, booking interfaces.IBookingFlow) *SuggestionMapper {
	return &SuggestionMapper{
		service:  service,
		booking:  booking,
		validate: validator.New(),
		guard:    NewOperationGuard(),
		byItem:   make(map[string]entities.ScheduleSuggestion),
	}
}

// NormalizeScheduleRequest applies defaults and validates the solver request.
func (m *SuggestionMapper) NormalizeScheduleRequest(req entities.AutoScheduleRequest) (entities.AutoScheduleRequest, error) {
	if req.LookAheadDays == 0 {
		req.LookAheadDays = entities.DefaultLookAheadDays
	}
	times := make([]entities.TimeOfDay, 0, len(req.PreferredTimes))
	for _, t := range req.PreferredTimes {
		times = append(times, entities.TimeOfDay(strings.ToUpper(strings.TrimSpace(string(t)))))
	}
	req.PreferredTimes = times
	if err := m.validate.Struct(req); err != nil {
		return req, fmt.Errorf("%w: %v", ErrInvalidScheduleRequest, err)
	}
	return req, nil
}

// Generate asks the solver for suggestions and replaces the current lookup.
// Calling it again is the retry path.
func (m *SuggestionMapper) Generate(ctx context.Context, scope entities.ScheduleScope, req entities.AutoScheduleRequest) (entities.ScheduleResult, error) {
	release, ok := m.guard.TryAcquire(OpSchedule)
	if !ok {
		return entities.ScheduleResult{}, ErrOperationInProgress
	}
	defer release()

	if scope.PlanID == "" && scope.PhaseID == "" {
		return entities.ScheduleResult{}, fmt.Errorf("%w: plan or phase scope required", ErrInvalidScheduleRequest)
	}
	req, err := m.NormalizeScheduleRequest(req)
	if err != nil {
		return entities.ScheduleResult{}, err
	}

	log.Printf("[plan][schedule] generate start plan_id=%s phase_id=%s look_ahead=%d force=%t", scope.PlanID, scope.PhaseID, req.LookAheadDays, req.Force)
	res, err := m.service.GenerateSchedule(ctx, scope, req)
	if err != nil {
		log.Printf("[plan][schedule] generate failed plan_id=%s phase_id=%s err=%v", scope.PlanID, scope.PhaseID, err)
		return entities.ScheduleResult{}, err
	}
	m.Load(res.Suggestions, res.Summary)
	log.Printf("[plan][schedule] generate success suggestions=%d", len(res.Suggestions))
	return res, nil
}

// Load indexes suggestions by item id. A later suggestion for the same item wins.
func (m *SuggestionMapper) Load(suggestions []entities.ScheduleSuggestion, summary entities.ScheduleSummary) {
	idx := make(map[string]entities.ScheduleSuggestion, len(suggestions))
	for _, s := range suggestions {
		if s.ItemID == "" {
			continue
		}
		idx[s.ItemID] = s
	}
	m.mu.Lock()
	m.byItem = idx
	m.summary = summary
	m.mu.Unlock()
}

func (m *SuggestionMapper) Lookup(itemID string) (entities.ScheduleSuggestion, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.byItem[itemID]
	return s, ok
}

func (m *SuggestionMapper) Summary() entities.ScheduleSummary {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.summary
}

func (m *SuggestionMapper) Clear() {
	m.Load(nil, entities.ScheduleSummary{})
}

// ValidatePick checks that the slot can be booked directly and builds the booking
// request. Suggestions that require a doctor reassignment are always refused.
func (m *SuggestionMapper) ValidatePick(plan entities.Plan, caps entities.Capabilities, pick SlotPick) (entities.BookingRequest, error) {
	item, ok := plan.ItemByID(pick.ItemID)
	if !ok {
		return entities.BookingRequest{}, ErrItemNotFound
	}
	if !caps.Book {
		return entities.BookingRequest{}, ErrPermissionDenied
	}
	if plan.ApprovalStatus != entities.ApprovalStatusApproved {
		return entities.BookingRequest{}, ErrPlanNotApproved
	}
	if item.Status != entities.ItemStatusReadyForBooking {
		return entities.BookingRequest{}, ErrItemNotBookable
	}
	sug, ok := m.Lookup(pick.ItemID)
	if !ok {
		return entities.BookingRequest{}, ErrSuggestionNotFound
	}
	if sug.RequiresReassign {
		return entities.BookingRequest{}, ErrDoctorReassignRequired
	}
	if pick.SlotIndex < 0 || pick.SlotIndex >= len(sug.Slots) {
		return entities.BookingRequest{}, ErrSlotNotFound
	}
	slot := sug.Slots[pick.SlotIndex]
	if !slot.Available {
		return entities.BookingRequest{}, ErrSlotUnavailable
	}

	start, err := formatClock(slot.StartTime)
	if err != nil {
		return entities.BookingRequest{}, fmt.Errorf("%w: %v", ErrSlotNotFound, err)
	}
	end, err := formatClock(slot.EndTime)
	if err != nil {
		return entities.BookingRequest{}, fmt.Errorf("%w: %v", ErrSlotNotFound, err)
	}
	roomID, err := pickCandidate(slot.Rooms, pick.RoomID)
	if err != nil {
		return entities.BookingRequest{}, err
	}
	doctorID, err := pickCandidate(slot.Doctors, pick.DoctorID)
	if err != nil {
		return entities.BookingRequest{}, err
	}

	return entities.BookingRequest{
		PlanCode:        plan.Code,
		ItemID:          item.ID,
		ItemName:        item.Name,
		Date:            sug.SuggestedDate.Format("2006-01-02"),
		StartTime:       start,
		EndTime:         end,
		RoomID:          roomID,
		DoctorID:        doctorID,
		DurationMinutes: item.EstimatedMinutes,
	}, nil
}

// SelectSlot validates the pick and forwards it to the booking flow.
func (m *SuggestionMapper) SelectSlot(ctx context.Context, plan entities.Plan, caps entities.Capabilities, pick SlotPick) (entities.BookingRequest, error) {
	release, ok := m.guard.TryAcquire(OpBookSlot)
	if !ok {
		return entities.BookingRequest{}, ErrOperationInProgress
	}
	defer release()

	if m.booking == nil {
		return entities.BookingRequest{}, ErrBookingNotConfigured
	}
	req, err := m.ValidatePick(plan, caps, pick)
	if err != nil {
		log.Printf("[plan][schedule] slot pick refused plan_code=%s item_id=%s err=%v", plan.Code, pick.ItemID, err)
		return entities.BookingRequest{}, err
	}
	if err := m.booking.StartBooking(ctx, req); err != nil {
		log.Printf("[plan][schedule] booking hand-off failed plan_code=%s item_id=%s err=%v", plan.Code, pick.ItemID, err)
		return entities.BookingRequest{}, err
	}
	log.Printf("[plan][schedule] booking hand-off plan_code=%s item_id=%s date=%s start=%s", plan.Code, req.ItemID, req.Date, req.StartTime)
	return req, nil
}

func pickCandidate(candidates []entities.Candidate, wanted string) (string, error) {
	wanted = strings.TrimSpace(wanted)
	if wanted == "" {
		if len(candidates) == 0 {
			return "", nil
		}
		return candidates[0].ID, nil
	}
	for _, c := range candidates {
		if c.ID == wanted {
			return c.ID, nil
		}
	}
	return "", fmt.Errorf("%w: candidate %s not offered for slot", ErrSlotUnavailable, wanted)
}
