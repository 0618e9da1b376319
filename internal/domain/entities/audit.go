package entities

import (
	"encoding/json"
	"time"
)

type PlanEventKind string

const (
	PlanEventSubmitted     PlanEventKind = "submitted"
	PlanEventApproved      PlanEventKind = "approved"
	PlanEventRejected      PlanEventKind = "rejected"
	PlanEventItemsAdded    PlanEventKind = "items_added"
	PlanEventReordered     PlanEventKind = "reordered"
	PlanEventPricesUpdated PlanEventKind = "prices_updated"
)

// PlanEvent records one successful mutation issued through this service.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (plan_code-index): plan_code
type PlanEvent struct {
	ID             string          `json:"id"`
	PlanCode       string          `json:"plan_code"`
	Kind           PlanEventKind   `json:"kind"`
	ApprovalStatus ApprovalStatus  `json:"approval_status"`
	Capabilities   Capabilities    `json:"capabilities"`
	Notes          string          `json:"notes,omitempty"`
	Payload        json.RawMessage `json:"payload,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

// PriceRevision records one item price change of a committed batch.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (plan_code-index): plan_code
type PriceRevision struct {
	ID        string    `json:"id"`
	BatchID   string    `json:"batch_id"`
	PlanCode  string    `json:"plan_code"`
	ItemID    string    `json:"item_id"`
	OldPrice  float64   `json:"old_price"`
	NewPrice  float64   `json:"new_price"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
