package response

import (
	"fmt"
	"math"
	"time"

	"treatment_planner/internal/domain/entities"
	"treatment_planner/internal/usecase"
)

type PlanEventResponse struct {
	ID             string                `json:"id"`
	PlanCode       string                `json:"plan_code"`
	Kind           string                `json:"kind"`
	ApprovalStatus string                `json:"approval_status"`
	Capabilities   entities.Capabilities `json:"capabilities"`
	Notes          string                `json:"notes,omitempty"`
	Payload        any                   `json:"payload,omitempty"`
	CreatedAt      time.Time             `json:"created_at"`
}

func FromPlanEvent(e entities.PlanEvent) PlanEventResponse {
	res := PlanEventResponse{
		ID:             e.ID,
		PlanCode:       e.PlanCode,
		Kind:           string(e.Kind),
		ApprovalStatus: string(e.ApprovalStatus),
		Capabilities:   e.Capabilities,
		Notes:          e.Notes,
		CreatedAt:      e.CreatedAt,
	}
	if len(e.Payload) > 0 {
		res.Payload = e.Payload
	}
	return res
}

func FromPlanEvents(events []entities.PlanEvent) []PlanEventResponse {
	out := make([]PlanEventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, FromPlanEvent(e))
	}
	return out
}

type PriceRevisionResponse struct {
	ID        string    `json:"id"`
	BatchID   string    `json:"batch_id"`
	ItemID    string    `json:"item_id"`
	OldPrice  float64   `json:"old_price"`
	NewPrice  float64   `json:"new_price"`
	Delta     float64   `json:"delta"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func FromPriceRevisions(revs []entities.PriceRevision) []PriceRevisionResponse {
	out := make([]PriceRevisionResponse, 0, len(revs))
	for _, r := range revs {
		out = append(out, PriceRevisionResponse{
			ID:        r.ID,
			BatchID:   r.BatchID,
			ItemID:    r.ItemID,
			OldPrice:  r.OldPrice,
			NewPrice:  r.NewPrice,
			Delta:     math.Round((r.NewPrice-r.OldPrice)*100) / 100,
			Note:      r.Note,
			CreatedAt: r.CreatedAt,
		})
	}
	return out
}

type AddItemsResponse struct {
	Message          string          `json:"message"`
	ApprovalRequired bool            `json:"approval_required"`
	Items            []entities.Item `json:"items"`
}

func FromAddItemsResult(r entities.AddItemsResult) AddItemsResponse {
	items := r.Items
	if items == nil {
		items = []entities.Item{}
	}
	return AddItemsResponse{Message: r.Message, ApprovalRequired: r.ApprovalRequired, Items: items}
}

// PriceCommitResponse shows the server totals; the local delta is kept only for
// comparison.
type PriceCommitResponse struct {
	Message         string                 `json:"message"`
	ItemsUpdated    int                    `json:"items_updated"`
	TotalCostBefore float64                `json:"total_cost_before"`
	TotalCostAfter  float64                `json:"total_cost_after"`
	LocalDelta      float64                `json:"local_delta"`
	Changes         []entities.PriceChange `json:"changes"`
}

func FromPriceCommit(r usecase.PriceCommitResult) PriceCommitResponse {
	return PriceCommitResponse{
		Message:         usecase.FormatTotals(r.Result),
		ItemsUpdated:    r.Result.ItemsUpdated,
		TotalCostBefore: r.Result.TotalCostBefore,
		TotalCostAfter:  r.Result.TotalCostAfter,
		LocalDelta:      r.LocalDelta,
		Changes:         r.Changes,
	}
}

type SlotSelectedResponse struct {
	Message string                  `json:"message"`
	Booking entities.BookingRequest `json:"booking"`
}

func FromBookingRequest(b entities.BookingRequest) SlotSelectedResponse {
	return SlotSelectedResponse{
		Message: fmt.Sprintf("%s on %s %s-%s", b.ItemName, b.Date, b.StartTime, b.EndTime),
		Booking: b,
	}
}
