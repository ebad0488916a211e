package leadharvest

import (
	"context"
	"time"
)

// Lead represents a business lead: a company discovered through search or
// imported from CSV, together with whatever contact data has been gathered
// for it so far.
type Lead struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Website string `json:"website"`
	PlaceID string `json:"placeId"`
	Owner   string `json:"owner"`
	Keyword string `json:"keyword"`

	// Emails holds the harvested addresses, deduplicated and sorted.
	Emails []string `json:"emails"`

	// HarvestStatus records the outcome of the last harvest run for this
	// lead ("" until harvested, then "found", "none" or "fetch_failed").
	HarvestStatus string `json:"harvestStatus"`

	// SnapshotHash is a hash of the website content at last harvest,
	// used to skip re-harvesting unchanged pages.
	SnapshotHash string `json:"snapshotHash"`

	CreatedAt   time.Time `json:"createdAt"`
	HarvestedAt time.Time `json:"harvestedAt"`
}

// Harvest status values recorded on leads.
const (
	HarvestStatusFound       = "found"
	HarvestStatusNone        = "none"
	HarvestStatusFetchFailed = "fetch_failed"
)

// Validate returns an error if the lead contains invalid fields.
func (l *Lead) Validate() error {
	if l.Name == "" {
		return Errorf(EINVALID, "lead name required")
	}
	return nil
}

// LeadService represents a service for managing leads.
type LeadService interface {
	// CreateLead creates a new lead.
	CreateLead(ctx context.Context, lead *Lead) error

	// FindLeadByID retrieves a lead by ID.
	// Returns ENOTFOUND if the lead does not exist.
	FindLeadByID(ctx context.Context, id string) (*Lead, error)

	// FindLeads retrieves leads matching the filter.
	FindLeads(ctx context.Context, filter LeadFilter) ([]*Lead, error)

	// UpdateLead updates an existing lead.
	// Returns ENOTFOUND if the lead does not exist.
	UpdateLead(ctx context.Context, id string, upd LeadUpdate) (*Lead, error)

	// DeleteLead permanently removes a lead.
	// Returns ENOTFOUND if the lead does not exist.
	DeleteLead(ctx context.Context, id string) error
}

// LeadFilter represents a filter for FindLeads.
type LeadFilter struct {
	ID            *string `json:"id"`
	Name          *string `json:"name"`
	Keyword       *string `json:"keyword"`
	PlaceID       *string `json:"placeId"`
	HarvestStatus *string `json:"harvestStatus"`

	// Unharvested selects leads that have never been through a harvest run.
	Unharvested bool `json:"unharvested"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// LeadUpdate represents fields that can be updated on a lead.
type LeadUpdate struct {
	Address       *string   `json:"address"`
	Phone         *string   `json:"phone"`
	Website       *string   `json:"website"`
	Owner         *string   `json:"owner"`
	Emails        *[]string `json:"emails"`
	HarvestStatus *string   `json:"harvestStatus"`
	SnapshotHash  *string   `json:"snapshotHash"`
}
