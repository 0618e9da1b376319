package planservice

import (
	"strings"
	"time"

	"treatment_planner/internal/domain/entities"
)

// Wire shapes of the plan service. Status fields stay untyped until normalized:
// the service sends strings, nulls and occasionally legacy values.

type approvalDTO struct {
	ReviewedBy string     `json:"reviewedBy"`
	ReviewedAt *time.Time `json:"reviewedAt"`
	Notes      string     `json:"notes"`
}

type appointmentDTO struct {
	ID          string    `json:"id"`
	Status      string    `json:"status"`
	ScheduledAt time.Time `json:"scheduledAt"`
}

type itemDTO struct {
	ID               string           `json:"id"`
	Sequence         int              `json:"sequence"`
	Name             string           `json:"name"`
	ServiceName      string           `json:"serviceName"`
	Price            float64          `json:"price"`
	EstimatedMinutes int              `json:"estimatedMinutes"`
	Status           any              `json:"status"`
	PrerequisiteID   string           `json:"prerequisiteItemId"`
	PrerequisiteName string           `json:"prerequisiteItemName"`
	Appointments     []appointmentDTO `json:"appointments"`
}

type phaseDTO struct {
	ID       string    `json:"id"`
	Sequence int       `json:"sequence"`
	Name     string    `json:"name"`
	Status   any       `json:"status"`
	Items    []itemDTO `json:"items"`
}

type planDTO struct {
	ID             string      `json:"id"`
	Code           string      `json:"code"`
	Name           string      `json:"name"`
	Status         any         `json:"status"`
	ApprovalStatus any         `json:"approvalStatus"`
	TotalPrice     float64     `json:"totalPrice"`
	Discount       float64     `json:"discount"`
	FinalCost      float64     `json:"finalCost"`
	Approval       approvalDTO `json:"approval"`
	Phases         []phaseDTO  `json:"phases"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

type submitBody struct {
	Notes string `json:"notes,omitempty"`
}

type approvalBody struct {
	ApprovalStatus entities.ApprovalStatus `json:"approvalStatus"`
	Notes          string                  `json:"notes,omitempty"`
}

type newItemDTO struct {
	ServiceCode      string  `json:"serviceCode,omitempty"`
	Name             string  `json:"name,omitempty"`
	Price            float64 `json:"price"`
	EstimatedMinutes int     `json:"estimatedMinutes,omitempty"`
	Quantity         int     `json:"quantity"`
	Notes            string  `json:"notes,omitempty"`
}

type addItemsBody struct {
	Items      []newItemDTO `json:"items"`
	AutoSubmit bool         `json:"autoSubmit"`
}

type addItemsResponse struct {
	Items            []itemDTO `json:"items"`
	Message          string    `json:"message"`
	ApprovalWorkflow struct {
		ApprovalRequired bool `json:"approvalRequired"`
	} `json:"approvalWorkflow"`
}

type reorderBody struct {
	ItemIDs []string `json:"itemIds"`
}

type reorderResponse struct {
	ItemsReordered int `json:"itemsReordered"`
}

type priceChangeDTO struct {
	ItemID   string  `json:"itemId"`
	NewPrice float64 `json:"newPrice"`
	Note     string  `json:"note,omitempty"`
}

type pricesBody struct {
	Items []priceChangeDTO `json:"items"`
}

type pricesResponse struct {
	ItemsUpdated    int     `json:"itemsUpdated"`
	TotalCostBefore float64 `json:"totalCostBefore"`
	TotalCostAfter  float64 `json:"totalCostAfter"`
}

type scheduleBody struct {
	PreferredDoctorID string   `json:"preferredDoctorId,omitempty"`
	PreferredRoomID   string   `json:"preferredRoomId,omitempty"`
	PreferredTimes    []string `json:"preferredTimes,omitempty"`
	LookAheadDays     int      `json:"lookAheadDays"`
	Force             bool     `json:"force"`
}

type candidateDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type slotDTO struct {
	StartTime string         `json:"startTime"`
	EndTime   string         `json:"endTime"`
	Available bool           `json:"available"`
	Rooms     []candidateDTO `json:"availableRooms"`
	Doctors   []candidateDTO `json:"availableDoctors"`
}

type suggestionDTO struct {
	ItemID           string    `json:"itemId"`
	ServiceName      string    `json:"serviceName"`
	SuggestedDate    string    `json:"suggestedDate"`
	OriginalDate     string    `json:"originalDate"`
	Slots            []slotDTO `json:"availableSlots"`
	HolidayAdjusted  bool      `json:"isHolidayAdjusted"`
	SpacingAdjusted  bool      `json:"isSpacingAdjusted"`
	RequiresReassign bool      `json:"requiresDoctorReassign"`
	ReassignReason   string    `json:"reassignReason"`
	Note             string    `json:"note"`
}

type scheduleResponse struct {
	Suggestions []suggestionDTO `json:"suggestions"`
	Summary     struct {
		TotalItems       int `json:"totalItems"`
		Suggested        int `json:"suggestedItems"`
		HolidayAdjusted  int `json:"holidayAdjustedItems"`
		SpacingAdjusted  int `json:"spacingAdjustedItems"`
		ReassignRequired int `json:"reassignRequiredItems"`
	} `json:"summary"`
}

func toPlan(d planDTO) entities.Plan {
	p := entities.Plan{
		ID:             d.ID,
		Code:           d.Code,
		Name:           d.Name,
		Status:         entities.NormalizePlanStatus(d.Status),
		ApprovalStatus: entities.NormalizeApprovalStatus(d.ApprovalStatus),
		TotalPrice:     d.TotalPrice,
		Discount:       d.Discount,
		FinalCost:      d.FinalCost,
		Approval: entities.ApprovalMetadata{
			ReviewedBy: d.Approval.ReviewedBy,
			ReviewedAt: d.Approval.ReviewedAt,
			Notes:      d.Approval.Notes,
		},
		Phases: make([]entities.Phase, 0, len(d.Phases)),
	}
	for _, ph := range d.Phases {
		status, reported := entities.NormalizePhaseStatus(ph.Status)
		phase := entities.Phase{
			ID:             ph.ID,
			Sequence:       ph.Sequence,
			Name:           ph.Name,
			Status:         status,
			StatusReported: reported,
			Items:          toItems(ph.Items),
		}
		p.Phases = append(p.Phases, phase)
	}
	return p
}

func toItems(in []itemDTO) []entities.Item {
	out := make([]entities.Item, 0, len(in))
	for _, it := range in {
		name := it.Name
		if name == "" {
			name = it.ServiceName
		}
		item := entities.Item{
			ID:               it.ID,
			Sequence:         it.Sequence,
			Name:             name,
			Price:            it.Price,
			EstimatedMinutes: it.EstimatedMinutes,
			Status:           entities.NormalizeItemStatus(it.Status),
			PrerequisiteID:   it.PrerequisiteID,
			PrerequisiteName: it.PrerequisiteName,
		}
		for _, a := range it.Appointments {
			item.Appointments = append(item.Appointments, entities.AppointmentRef{ID: a.ID, Status: a.Status, ScheduledAt: a.ScheduledAt})
		}
		out = append(out, item)
	}
	return out
}

func toScheduleResult(r scheduleResponse) entities.ScheduleResult {
	res := entities.ScheduleResult{
		Suggestions: make([]entities.ScheduleSuggestion, 0, len(r.Suggestions)),
		Summary: entities.ScheduleSummary{
			TotalItems:       r.Summary.TotalItems,
			Suggested:        r.Summary.Suggested,
			HolidayAdjusted:  r.Summary.HolidayAdjusted,
			SpacingAdjusted:  r.Summary.SpacingAdjusted,
			ReassignRequired: r.Summary.ReassignRequired,
		},
	}
	for _, s := range r.Suggestions {
		sug := entities.ScheduleSuggestion{
			ItemID:           s.ItemID,
			ServiceName:      s.ServiceName,
			SuggestedDate:    parseDate(s.SuggestedDate),
			HolidayAdjusted:  s.HolidayAdjusted,
			SpacingAdjusted:  s.SpacingAdjusted,
			RequiresReassign: s.RequiresReassign,
			ReassignReason:   s.ReassignReason,
			Note:             s.Note,
			Slots:            make([]entities.TimeSlot, 0, len(s.Slots)),
		}
		if s.OriginalDate != "" {
			d := parseDate(s.OriginalDate)
			sug.OriginalDate = &d
		}
		for _, sl := range s.Slots {
			sug.Slots = append(sug.Slots, entities.TimeSlot{
				StartTime: sl.StartTime,
				EndTime:   sl.EndTime,
				Available: sl.Available,
				Rooms:     toCandidates(sl.Rooms),
				Doctors:   toCandidates(sl.Doctors),
			})
		}
		res.Suggestions = append(res.Suggestions, sug)
	}
	return res
}

func toCandidates(in []candidateDTO) []entities.Candidate {
	if len(in) == 0 {
		return nil
	}
	out := make([]entities.Candidate, 0, len(in))
	for _, c := range in {
		out = append(out, entities.Candidate{ID: c.ID, Name: c.Name})
	}
	return out
}

// parseDate accepts a calendar date or a full timestamp.
func parseDate(v string) time.Time {
	v = strings.TrimSpace(v)
	if t, err := time.Parse("2006-01-02", v); err == nil {
		return t
	}
	t, _ := time.Parse(time.RFC3339, v)
	return t
}
