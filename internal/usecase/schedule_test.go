package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"treatment_planner/internal/domain/entities"
	mock_interfaces "treatment_planner/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func scheduledPlan() entities.Plan {
	a := item("a", entities.ItemStatusReadyForBooking)
	a.EstimatedMinutes = 60
	return testPlan(entities.ApprovalStatusApproved, a, item("b", entities.ItemStatusReadyForBooking))
}

func suggestions() []entities.ScheduleSuggestion {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	return []entities.ScheduleSuggestion{
		{
			ItemID:        "a",
			SuggestedDate: day,
			Slots: []entities.TimeSlot{
				{StartTime: "09:00:00", EndTime: "10:00:00", Available: false},
				{
					StartTime: "14:00:00",
					EndTime:   "15:00",
					Available: true,
					Rooms:     []entities.Candidate{{ID: "room-1"}, {ID: "room-2"}},
					Doctors:   []entities.Candidate{{ID: "doc-1"}},
				},
			},
		},
		{ItemID: "b", SuggestedDate: day, RequiresReassign: true, ReassignReason: "doctor on leave",
			Slots: []entities.TimeSlot{{StartTime: "10:00", EndTime: "10:30", Available: true}}},
	}
}

func TestSuggestionMapper_NormalizeScheduleRequest(t *testing.T) {
	m := NewSuggestionMapper(nil, nil)

	cases := []struct {
		name    string
		req     entities.AutoScheduleRequest
		wantErr bool
		days    int
	}{
		{name: "zero defaults to thirty", req: entities.AutoScheduleRequest{}, days: 30},
		{name: "lower bound", req: entities.AutoScheduleRequest{LookAheadDays: 1}, days: 1},
		{name: "upper bound", req: entities.AutoScheduleRequest{LookAheadDays: 90}, days: 90},
		{name: "above bound", req: entities.AutoScheduleRequest{LookAheadDays: 91}, wantErr: true},
		{name: "negative", req: entities.AutoScheduleRequest{LookAheadDays: -3}, wantErr: true},
		{name: "lower case times", req: entities.AutoScheduleRequest{PreferredTimes: []entities.TimeOfDay{"morning", " evening"}}, days: 30},
		{name: "unknown time", req: entities.AutoScheduleRequest{PreferredTimes: []entities.TimeOfDay{"NIGHT"}}, wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := m.NormalizeScheduleRequest(tc.req)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidScheduleRequest) {
					t.Fatalf("expected ErrInvalidScheduleRequest, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.LookAheadDays != tc.days {
				t.Fatalf("expected %d days, got %d", tc.days, got.LookAheadDays)
			}
		})
	}

	original := []entities.TimeOfDay{"morning"}
	m.NormalizeScheduleRequest(entities.AutoScheduleRequest{PreferredTimes: original})
	if original[0] != "morning" {
		t.Fatalf("caller slice must not be modified")
	}
}

func TestSuggestionMapper_Generate(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock_interfaces.NewMockIPlanService(ctrl)
	m := NewSuggestionMapper(svc, nil)
	ctx := context.Background()

	if _, err := m.Generate(ctx, entities.ScheduleScope{}, entities.AutoScheduleRequest{}); !errors.Is(err, ErrInvalidScheduleRequest) {
		t.Fatalf("expected scope error, got %v", err)
	}

	scope := entities.ScheduleScope{PhaseID: "ph-1"}
	result := entities.ScheduleResult{Suggestions: suggestions(), Summary: entities.ScheduleSummary{TotalItems: 2, Suggested: 2, ReassignRequired: 1}}
	svc.EXPECT().GenerateSchedule(gomock.Any(), scope, gomock.AssignableToTypeOf(entities.AutoScheduleRequest{})).DoAndReturn(
		func(_ context.Context, _ entities.ScheduleScope, req entities.AutoScheduleRequest) (entities.ScheduleResult, error) {
			if req.LookAheadDays != entities.DefaultLookAheadDays {
				t.Fatalf("expected default look-ahead, got %d", req.LookAheadDays)
			}
			return result, nil
		},
	)

	if _, err := m.Generate(ctx, scope, entities.AutoScheduleRequest{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s, ok := m.Lookup("b"); !ok || !s.RequiresReassign {
		t.Fatalf("expected suggestion for b, got %+v %v", s, ok)
	}
	if m.Summary().ReassignRequired != 1 {
		t.Fatalf("summary not kept: %+v", m.Summary())
	}
	m.Clear()
	if _, ok := m.Lookup("a"); ok {
		t.Fatalf("expected empty lookup after clear")
	}
}

func TestSuggestionMapper_ValidatePick(t *testing.T) {
	m := NewSuggestionMapper(nil, nil)
	m.Load(suggestions(), entities.ScheduleSummary{})
	plan := scheduledPlan()

	t.Run("reassign required is refused", func(t *testing.T) {
		if _, err := m.ValidatePick(plan, capsBooker, SlotPick{ItemID: "b"}); !errors.Is(err, ErrDoctorReassignRequired) {
			t.Fatalf("expected ErrDoctorReassignRequired, got %v", err)
		}
	})

	cases := []struct {
		name string
		plan entities.Plan
		caps entities.Capabilities
		pick SlotPick
		want error
	}{
		{name: "unknown item", plan: plan, caps: capsBooker, pick: SlotPick{ItemID: "zzz"}, want: ErrItemNotFound},
		{name: "no booking capability", plan: plan, caps: capsEditor, pick: SlotPick{ItemID: "a", SlotIndex: 1}, want: ErrPermissionDenied},
		{name: "slot out of range", plan: plan, caps: capsBooker, pick: SlotPick{ItemID: "a", SlotIndex: 5}, want: ErrSlotNotFound},
		{name: "slot unavailable", plan: plan, caps: capsBooker, pick: SlotPick{ItemID: "a", SlotIndex: 0}, want: ErrSlotUnavailable},
		{name: "room not offered", plan: plan, caps: capsBooker, pick: SlotPick{ItemID: "a", SlotIndex: 1, RoomID: "room-9"}, want: ErrSlotUnavailable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := m.ValidatePick(tc.plan, tc.caps, tc.pick); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	t.Run("missing suggestion", func(t *testing.T) {
		other := NewSuggestionMapper(nil, nil)
		if _, err := other.ValidatePick(plan, capsBooker, SlotPick{ItemID: "a"}); !errors.Is(err, ErrSuggestionNotFound) {
			t.Fatalf("expected ErrSuggestionNotFound, got %v", err)
		}
	})

	t.Run("builds booking request", func(t *testing.T) {
		req, err := m.ValidatePick(plan, capsBooker, SlotPick{ItemID: "a", SlotIndex: 1, RoomID: "room-2"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := entities.BookingRequest{
			PlanCode:        "PLAN-1",
			ItemID:          "a",
			ItemName:        "Item a",
			Date:            "2026-03-10",
			StartTime:       "14:00",
			EndTime:         "15:00",
			RoomID:          "room-2",
			DoctorID:        "doc-1",
			DurationMinutes: 60,
		}
		if req != want {
			t.Fatalf("expected %+v, got %+v", want, req)
		}
	})
}

func TestSuggestionMapper_SelectSlot(t *testing.T) {
	ctx := context.Background()

	t.Run("without booking flow", func(t *testing.T) {
		m := NewSuggestionMapper(nil, nil)
		if _, err := m.SelectSlot(ctx, scheduledPlan(), capsBooker, SlotPick{ItemID: "a", SlotIndex: 1}); !errors.Is(err, ErrBookingNotConfigured) {
			t.Fatalf("expected ErrBookingNotConfigured, got %v", err)
		}
	})

	t.Run("forwards to booking flow", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		booking := mock_interfaces.NewMockIBookingFlow(ctrl)
		m := NewSuggestionMapper(nil, booking)
		m.Load(suggestions(), entities.ScheduleSummary{})

		booking.EXPECT().StartBooking(gomock.Any(), gomock.AssignableToTypeOf(entities.BookingRequest{})).Return(nil)

		req, err := m.SelectSlot(ctx, scheduledPlan(), capsBooker, SlotPick{ItemID: "a", SlotIndex: 1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if req.RoomID != "room-1" || req.StartTime != "14:00" {
			t.Fatalf("expected first room and formatted time, got %+v", req)
		}
	})

	t.Run("reassign never reaches booking flow", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		booking := mock_interfaces.NewMockIBookingFlow(ctrl)
		m := NewSuggestionMapper(nil, booking)
		m.Load(suggestions(), entities.ScheduleSummary{})

		if _, err := m.SelectSlot(ctx, scheduledPlan(), capsBooker, SlotPick{ItemID: "b"}); !errors.Is(err, ErrDoctorReassignRequired) {
			t.Fatalf("expected ErrDoctorReassignRequired, got %v", err)
		}
	})
}

func TestFormatClock(t *testing.T) {
	cases := map[string]string{"09:30": "09:30", "09:30:00": "09:30", " 17:05:59 ": "17:05"}
	for in, want := range cases {
		got, err := formatClock(in)
		if err != nil || got != want {
			t.Fatalf("%q: expected %q, got %q (%v)", in, want, got, err)
		}
	}
	if _, err := formatClock("9h30"); err == nil {
		t.Fatalf("expected error for invalid clock")
	}
}
