package metadomain

import "encoding/json"

// AdSet é o conjunto de anúncios cru da Graph API. Targeting é mantido
// opaco e repassado como metadata.
type AdSet struct {
	ID             string          `json:"id"`
	CampaignID     string          `json:"campaign_id"`
	Name           string          `json:"name"`
	Status         string          `json:"status"`
	BidStrategy    string          `json:"bid_strategy,omitempty"`
	DailyBudget    string          `json:"daily_budget,omitempty"`
	LifetimeBudget string          `json:"lifetime_budget,omitempty"`
	StartTime      string          `json:"start_time,omitempty"`
	EndTime        string          `json:"end_time,omitempty"`
	Targeting      json.RawMessage `json:"targeting,omitempty"`
}
