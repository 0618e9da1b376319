package entities

import (
	"fmt"
	"strings"
)

// ApprovalStatus is the plan-wide review gate. It is independent from PlanStatus.
type ApprovalStatus string

const (
	ApprovalStatusDraft         ApprovalStatus = "DRAFT"
	ApprovalStatusPendingReview ApprovalStatus = "PENDING_REVIEW"
	ApprovalStatusApproved      ApprovalStatus = "APPROVED"
	ApprovalStatusRejected      ApprovalStatus = "REJECTED"
)

type PlanStatus string

const (
	PlanStatusPending    PlanStatus = "PENDING"
	PlanStatusInProgress PlanStatus = "IN_PROGRESS"
	PlanStatusCompleted  PlanStatus = "COMPLETED"
	PlanStatusCancelled  PlanStatus = "CANCELLED"
)

type PhaseStatus string

const (
	PhaseStatusPending    PhaseStatus = "PENDING"
	PhaseStatusInProgress PhaseStatus = "IN_PROGRESS"
	PhaseStatusCompleted  PhaseStatus = "COMPLETED"
)

// ItemStatus is the readiness lifecycle of an item. Transitions happen on the plan
// service only.
type ItemStatus string

const (
	ItemStatusPending                ItemStatus = "PENDING"
	ItemStatusWaitingForPrerequisite ItemStatus = "WAITING_FOR_PREREQUISITE"
	ItemStatusReadyForBooking        ItemStatus = "READY_FOR_BOOKING"
	ItemStatusCompleted              ItemStatus = "COMPLETED"
	ItemStatusSkipped                ItemStatus = "SKIPPED"
)

// rawString flattens whatever the plan service sent into an upper-case token.
// ok is false for nil and for values that carry no string form.
func rawString(raw any) (string, bool) {
	var s string
	switch v := raw.(type) {
	case nil:
		return "", false
	case string:
		s = v
	case *string:
		if v == nil {
			return "", false
		}
		s = *v
	case ApprovalStatus:
		s = string(v)
	case PlanStatus:
		s = string(v)
	case PhaseStatus:
		s = string(v)
	case ItemStatus:
		s = string(v)
	case fmt.Stringer:
		str, ok := stringerValue(v)
		if !ok {
			return "", false
		}
		s = str
	default:
		return "", false
	}
	s = strings.ToUpper(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s, s != ""
}

// NormalizeApprovalStatus maps any raw value onto the four approval states.
// It never fails: anything unrecognised is treated as DRAFT.
func NormalizeApprovalStatus(raw any) ApprovalStatus {
	s, _ := rawString(raw)
	switch s {
	case "PENDING_REVIEW", "PENDING_APPROVAL":
		return ApprovalStatusPendingReview
	case "APPROVED":
		return ApprovalStatusApproved
	case "REJECTED":
		return ApprovalStatusRejected
	default:
		// DRAFT, RETURNED, RETURNED_TO_DRAFT and everything unknown.
		return ApprovalStatusDraft
	}
}

func NormalizePlanStatus(raw any) PlanStatus {
	s, _ := rawString(raw)
	switch PlanStatus(s) {
	case PlanStatusInProgress, PlanStatusCompleted:
		return PlanStatus(s)
	case "CANCELED", PlanStatusCancelled:
		return PlanStatusCancelled
	default:
		return PlanStatusPending
	}
}

// NormalizePhaseStatus returns the phase status and whether the plan service
// actually reported one.
func NormalizePhaseStatus(raw any) (PhaseStatus, bool) {
	s, ok := rawString(raw)
	if !ok {
		return PhaseStatusPending, false
	}
	switch PhaseStatus(s) {
	case PhaseStatusPending, PhaseStatusInProgress, PhaseStatusCompleted:
		return PhaseStatus(s), true
	default:
		return PhaseStatusPending, false
	}
}

// NormalizeItemStatus falls back to PENDING, which is never bookable.
func NormalizeItemStatus(raw any) ItemStatus {
	s, _ := rawString(raw)
	switch ItemStatus(s) {
	case ItemStatusWaitingForPrerequisite, ItemStatusReadyForBooking, ItemStatusCompleted, ItemStatusSkipped:
		return ItemStatus(s)
	case "WAITING_FOR_PREREQ", "LOCKED":
		return ItemStatusWaitingForPrerequisite
	default:
		return ItemStatusPending
	}
}

// stringerValue calls String, treating a panic (typically a nil receiver) as no
// value.
func stringerValue(v fmt.Stringer) (s string, ok bool) {
	defer func() {
		if recover() != nil {
			s, ok = "", false
		}
	}()
	return v.String(), true
}
