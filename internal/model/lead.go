package model

// Lead is the lead data carried by domain events.
type Lead struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	CampaignID   string `json:"campaignId,omitempty"`
	AssignedToID string `json:"assignedToId,omitempty"`
}

// Campaign is the subset of the campaigns table the service reads.
type Campaign struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
