package entities

// NewItem describes an item to be added to an existing phase.
type NewItem struct {
	ServiceCode      string  `json:"service_code"`
	Name             string  `json:"name"`
	Price            float64 `json:"price"`
	EstimatedMinutes int     `json:"estimated_minutes"`
	Quantity         int     `json:"quantity"`
	Notes            string  `json:"notes,omitempty"`
}

type AddItemsResult struct {
	Items            []Item `json:"items"`
	Message          string `json:"message"`
	ApprovalRequired bool   `json:"approval_required"`
}

type ReorderResult struct {
	ItemsReordered int `json:"items_reordered"`
}
