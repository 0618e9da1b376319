package entities

import "time"

// TimeOfDay is a preferred booking window for the scheduling solver.
type TimeOfDay string

const (
	TimeOfDayMorning   TimeOfDay = "MORNING"
	TimeOfDayAfternoon TimeOfDay = "AFTERNOON"
	TimeOfDayEvening   TimeOfDay = "EVENING"
)

const (
	DefaultLookAheadDays = 30
	MaxLookAheadDays     = 90
)

// AutoScheduleRequest is sent to the scheduling solver.
// LookAheadDays of zero means DefaultLookAheadDays.
type AutoScheduleRequest struct {
	PreferredDoctorID string      `json:"preferred_doctor_id,omitempty"`
	PreferredRoomID   string      `json:"preferred_room_id,omitempty"`
	PreferredTimes    []TimeOfDay `json:"preferred_times,omitempty" validate:"dive,oneof=MORNING AFTERNOON EVENING"`
	LookAheadDays     int         `json:"look_ahead_days" validate:"min=1,max=90"`
	Force             bool        `json:"force"`
}

// ScheduleScope selects what the solver plans for: a whole plan or one phase.
type ScheduleScope struct {
	PlanID  string `json:"plan_id,omitempty"`
	PhaseID string `json:"phase_id,omitempty"`
}

type Candidate struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TimeSlot times are HH:MM in the clinic's local time.
type TimeSlot struct {
	StartTime string      `json:"start_time"`
	EndTime   string      `json:"end_time"`
	Available bool        `json:"available"`
	Rooms     []Candidate `json:"rooms,omitempty"`
	Doctors   []Candidate `json:"doctors,omitempty"`
}

// ScheduleSuggestion is one solver proposal for one item.
type ScheduleSuggestion struct {
	ItemID           string     `json:"item_id"`
	ServiceName      string     `json:"service_name"`
	SuggestedDate    time.Time  `json:"suggested_date"`
	OriginalDate     *time.Time `json:"original_date,omitempty"`
	Slots            []TimeSlot `json:"slots"`
	HolidayAdjusted  bool       `json:"holiday_adjusted"`
	SpacingAdjusted  bool       `json:"spacing_adjusted"`
	RequiresReassign bool       `json:"requires_reassign"`
	ReassignReason   string     `json:"reassign_reason,omitempty"`
	Note             string     `json:"note,omitempty"`
}

type ScheduleSummary struct {
	TotalItems       int `json:"total_items"`
	Suggested        int `json:"suggested"`
	HolidayAdjusted  int `json:"holiday_adjusted"`
	SpacingAdjusted  int `json:"spacing_adjusted"`
	ReassignRequired int `json:"reassign_required"`
}

type ScheduleResult struct {
	Suggestions []ScheduleSuggestion `json:"suggestions"`
	Summary     ScheduleSummary      `json:"summary"`
}

// BookingRequest is what the booking flow receives for one item.
// Date is YYYY-MM-DD, times are HH:MM.
type BookingRequest struct {
	PlanCode        string `json:"plan_code"`
	ItemID          string `json:"item_id"`
	ItemName        string `json:"item_name"`
	Date            string `json:"date"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	RoomID          string `json:"room_id,omitempty"`
	DoctorID        string `json:"doctor_id,omitempty"`
	DurationMinutes int    `json:"duration_minutes"`
}

// BulkBookingRequest hands a set of ready items to the booking flow at once.
type BulkBookingRequest struct {
	PlanCode             string `json:"plan_code"`
	Items                []Item `json:"items"`
	TotalDurationMinutes int    `json:"total_duration_minutes"`
}
