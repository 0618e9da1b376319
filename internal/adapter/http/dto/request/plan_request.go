package request

import (
	"strings"

	"treatment_planner/internal/domain/entities"
	"treatment_planner/internal/usecase"
)

// NotesRequest is the body of submit, approve and reject. Approve and reject
// require notes; the use case enforces it so the rule holds for every caller.
type NotesRequest struct {
	Notes string `json:"notes"`
}

type NewItemRequest struct {
	ServiceCode      string  `json:"service_code"`
	Name             string  `json:"name" binding:"required"`
	Price            float64 `json:"price" binding:"gte=0"`
	EstimatedMinutes int     `json:"estimated_minutes" binding:"gte=0"`
	Quantity         int     `json:"quantity" binding:"gte=0"`
	Notes            string  `json:"notes"`
}

type AddItemsRequest struct {
	Items []NewItemRequest `json:"items" binding:"required,min=1,dive"`
}

func (r AddItemsRequest) ToEntities() []entities.NewItem {
	out := make([]entities.NewItem, 0, len(r.Items))
	for _, it := range r.Items {
		out = append(out, entities.NewItem{
			ServiceCode:      strings.TrimSpace(it.ServiceCode),
			Name:             strings.TrimSpace(it.Name),
			Price:            it.Price,
			EstimatedMinutes: it.EstimatedMinutes,
			Quantity:         it.Quantity,
			Notes:            it.Notes,
		})
	}
	return out
}

// MoveRequest is one drag step: either an item placed before another one (last
// when before_id is empty), or a from/to index pair.
type MoveRequest struct {
	ItemID   string `json:"item_id"`
	BeforeID string `json:"before_id"`
	From     *int   `json:"from"`
	To       *int   `json:"to"`
}

func (r MoveRequest) Valid() bool {
	if strings.TrimSpace(r.ItemID) != "" {
		return true
	}
	return r.From != nil && r.To != nil
}

func (r MoveRequest) ToMove() usecase.ItemMove {
	m := usecase.ItemMove{
		ItemID:   strings.TrimSpace(r.ItemID),
		BeforeID: strings.TrimSpace(r.BeforeID),
	}
	if r.From != nil {
		m.From = *r.From
	}
	if r.To != nil {
		m.To = *r.To
	}
	return m
}

type ToggleSelectionRequest struct {
	ItemID string `json:"item_id" binding:"required"`
}

// PriceChangeRequest carries no range check on new_price: zero is a valid price
// and negative values are reported by the preview.
type PriceChangeRequest struct {
	ItemID   string  `json:"item_id" binding:"required"`
	NewPrice float64 `json:"new_price"`
	Note     string  `json:"note"`
}

type PriceChangesRequest struct {
	Changes []PriceChangeRequest `json:"changes" binding:"required,dive"`
}

func (r PriceChangesRequest) ToEntities() []entities.PriceChange {
	out := make([]entities.PriceChange, 0, len(r.Changes))
	for _, c := range r.Changes {
		out = append(out, entities.PriceChange{
			ItemID:   strings.TrimSpace(c.ItemID),
			NewPrice: c.NewPrice,
			Note:     c.Note,
		})
	}
	return out
}

type ScheduleRequest struct {
	PhaseID           string   `json:"phase_id"`
	PreferredDoctorID string   `json:"preferred_doctor_id"`
	PreferredRoomID   string   `json:"preferred_room_id"`
	PreferredTimes    []string `json:"preferred_times"`
	LookAheadDays     int      `json:"look_ahead_days"`
	Force             bool     `json:"force"`
}

func (r ScheduleRequest) ToEntity() entities.AutoScheduleRequest {
	times := make([]entities.TimeOfDay, 0, len(r.PreferredTimes))
	for _, t := range r.PreferredTimes {
		times = append(times, entities.TimeOfDay(strings.ToUpper(strings.TrimSpace(t))))
	}
	return entities.AutoScheduleRequest{
		PreferredDoctorID: strings.TrimSpace(r.PreferredDoctorID),
		PreferredRoomID:   strings.TrimSpace(r.PreferredRoomID),
		PreferredTimes:    times,
		LookAheadDays:     r.LookAheadDays,
		Force:             r.Force,
	}
}

type SlotPickRequest struct {
	ItemID    string `json:"item_id" binding:"required"`
	SlotIndex int    `json:"slot_index" binding:"gte=0"`
	RoomID    string `json:"room_id"`
	DoctorID  string `json:"doctor_id"`
}

func (r SlotPickRequest) ToPick() usecase.SlotPick {
	return usecase.SlotPick{
		ItemID:    strings.TrimSpace(r.ItemID),
		SlotIndex: r.SlotIndex,
		RoomID:    strings.TrimSpace(r.RoomID),
		DoctorID:  strings.TrimSpace(r.DoctorID),
	}
}
