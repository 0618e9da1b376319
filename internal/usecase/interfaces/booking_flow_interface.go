package interfaces

import (
	"context"
	"treatment_planner/internal/domain/entities"
)

// IBookingFlow receives resolved booking requests. Appointment creation itself
// happens behind it.
type IBookingFlow interface {
	StartBooking(ctx context.Context, req entities.BookingRequest) error
	StartBulkBooking(ctx context.Context, req entities.BulkBookingRequest) error
}
