package entities

// PriceChange is one entry of a price update batch.
type PriceChange struct {
	ItemID   string  `json:"item_id"`
	NewPrice float64 `json:"new_price"`
	Note     string  `json:"note,omitempty"`
}

// PriceUpdateResult carries the totals computed by the plan service, which are the
// ones shown as confirmation.
type PriceUpdateResult struct {
	ItemsUpdated    int     `json:"items_updated"`
	TotalCostBefore float64 `json:"total_cost_before"`
	TotalCostAfter  float64 `json:"total_cost_after"`
}
