package entities

import "time"

// Capabilities is the authorization context of the caller. Each flag gates one
// family of plan operations.
type Capabilities struct {
	Edit        bool `json:"edit"`
	Approve     bool `json:"approve"`
	EditPricing bool `json:"edit_pricing"`
	Book        bool `json:"book"`
}

type AppointmentRef struct {
	ID          string    `json:"id"`
	Status      string    `json:"status"`
	ScheduledAt time.Time `json:"scheduled_at"`
}

// Item is a single billable and schedulable unit of treatment inside a phase.
type Item struct {
	ID               string           `json:"id"`
	Sequence         int              `json:"sequence"`
	Name             string           `json:"name"`
	Price            float64          `json:"price"`
	EstimatedMinutes int              `json:"estimated_minutes"`
	Status           ItemStatus       `json:"status"`
	PrerequisiteID   string           `json:"prerequisite_id,omitempty"`
	PrerequisiteName string           `json:"prerequisite_name,omitempty"`
	Appointments     []AppointmentRef `json:"appointments,omitempty"`
}

// Phase groups ordered items. StatusReported is false when the plan service did not
// send a status and Status holds the PENDING fallback.
type Phase struct {
	ID             string      `json:"id"`
	Sequence       int         `json:"sequence"`
	Name           string      `json:"name"`
	Status         PhaseStatus `json:"status"`
	StatusReported bool        `json:"status_reported"`
	Items          []Item      `json:"items"`
}

type ApprovalMetadata struct {
	ReviewedBy string     `json:"reviewed_by,omitempty"`
	ReviewedAt *time.Time `json:"reviewed_at,omitempty"`
	Notes      string     `json:"notes,omitempty"`
}

// Plan is the treatment plan aggregate as last returned by the plan service.
//
// The plan service is the only writer of plans. Local copies are replaced wholesale
// after every mutation.
type Plan struct {
	ID             string           `json:"id"`
	Code           string           `json:"code"`
	Name           string           `json:"name"`
	Status         PlanStatus       `json:"status"`
	ApprovalStatus ApprovalStatus   `json:"approval_status"`
	TotalPrice     float64          `json:"total_price"`
	Discount       float64          `json:"discount"`
	FinalCost      float64          `json:"final_cost"`
	Approval       ApprovalMetadata `json:"approval"`
	Phases         []Phase          `json:"phases"`
}

// HasSubmittableContent reports whether the plan has at least one phase holding at
// least one item.
func (p Plan) HasSubmittableContent() bool {
	for _, ph := range p.Phases {
		if len(ph.Items) > 0 {
			return true
		}
	}
	return false
}

func (p Plan) PhaseByID(id string) (Phase, bool) {
	for _, ph := range p.Phases {
		if ph.ID == id {
			return ph, true
		}
	}
	return Phase{}, false
}

func (p Plan) ItemByID(id string) (Item, bool) {
	for _, ph := range p.Phases {
		for _, it := range ph.Items {
			if it.ID == id {
				return it, true
			}
		}
	}
	return Item{}, false
}

// Items returns every item of the plan in phase order.
func (p Plan) Items() []Item {
	var out []Item
	for _, ph := range p.Phases {
		out = append(out, ph.Items...)
	}
	return out
}

// ItemIDs returns the ids of a phase's items in their current order.
func (ph Phase) ItemIDs() []string {
	ids := make([]string, 0, len(ph.Items))
	for _, it := range ph.Items {
		ids = append(ids, it.ID)
	}
	return ids
}
