package planservice

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"treatment_planner/internal/domain/entities"
	"treatment_planner/internal/usecase/interfaces"
	"treatment_planner/pkg"
)

// BookingForwarder hands resolved booking requests to the appointment service. In
// mock mode requests are only logged.
type BookingForwarder struct {
	baseURL  string
	client   *http.Client
	mockMode bool
}

var _ interfaces.IBookingFlow = (*BookingForwarder)(nil)

// NewBookingForwarderFromEnv returns nil when no booking target is configured.
//
// Supported env vars:
//   - BOOKING_SERVICE_URL
//   - PLAN_SERVICE_MOCK (mock mode logs requests instead of sending them)
func NewBookingForwarderFromEnv() *BookingForwarder {
	if isPlanServiceMockEnabled(os.Getenv) {
		log.Printf("[plan][booking] mock mode enabled")
		return &BookingForwarder{mockMode: true}
	}
	baseURL := strings.TrimRight(strings.TrimSpace(os.Getenv("BOOKING_SERVICE_URL")), "/")
	if baseURL == "" {
		log.Printf("[plan][booking] BOOKING_SERVICE_URL not set; booking hand-off disabled")
		return nil
	}
	return NewBookingForwarder(baseURL, parseDuration(os.Getenv("PLAN_SERVICE_TIMEOUT")))
}

func NewBookingForwarder(baseURL string, timeout time.Duration) *BookingForwarder {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &BookingForwarder{baseURL: baseURL, client: &http.Client{Timeout: timeout}}
}

func (f *BookingForwarder) StartBooking(ctx context.Context, req entities.BookingRequest) error {
	if f.mockMode {
		log.Printf("[plan][booking] mock booking plan_code=%s item_id=%s date=%s start=%s room=%s doctor=%s",
			req.PlanCode, req.ItemID, req.Date, req.StartTime, req.RoomID, req.DoctorID)
		return nil
	}
	return f.post(ctx, "/bookings", req)
}

func (f *BookingForwarder) StartBulkBooking(ctx context.Context, req entities.BulkBookingRequest) error {
	if f.mockMode {
		log.Printf("[plan][booking] mock bulk booking plan_code=%s items=%d minutes=%d", req.PlanCode, len(req.Items), req.TotalDurationMinutes)
		return nil
	}
	return f.post(ctx, "/bookings/bulk", req)
}

func (f *BookingForwarder) post(ctx context.Context, path string, body any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.baseURL+path, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		log.Printf("[plan][booking] POST %s transport failed err=%v", path, err)
		return pkg.NewDomainError("BOOKING_SERVICE_UNAVAILABLE", "booking service unavailable", err, http.StatusBadGateway)
	}
	defer resp.Body.Close()
	log.Printf("[plan][booking] POST %s status=%d", path, resp.StatusCode)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}
	return nil
}
