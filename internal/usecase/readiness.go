package usecase

import "treatment_planner/internal/domain/entities"

// CanBook reports whether an item may be booked: it must be ready, the plan
// approved, and the caller must hold the booking capability.
func CanBook(item entities.Item, approval entities.ApprovalStatus, caps entities.Capabilities) bool {
	return item.Status == entities.ItemStatusReadyForBooking &&
		approval == entities.ApprovalStatusApproved &&
		caps.Book
}

// IsLocked reports whether the item waits on a prerequisite. Locked items never
// allow booking, whatever the caller's capabilities.
func IsLocked(item entities.Item) bool {
	return item.Status == entities.ItemStatusWaitingForPrerequisite
}

// IsDone counts completed and skipped items as done for progress purposes.
func IsDone(item entities.Item) bool {
	return item.Status == entities.ItemStatusCompleted || item.Status == entities.ItemStatusSkipped
}

// LockReason names what a locked item is waiting for.
func LockReason(item entities.Item) string {
	if !IsLocked(item) {
		return ""
	}
	if item.PrerequisiteName != "" {
		return item.PrerequisiteName
	}
	return item.PrerequisiteID
}
