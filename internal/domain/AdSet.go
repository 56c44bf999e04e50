package domain

import "time"

// BudgetType indica de onde vem o orçamento de um conjunto de anúncios
type BudgetType string

const (
	BudgetTypeDaily    BudgetType = "daily"
	BudgetTypeLifetime BudgetType = "lifetime"
	// BudgetTypeCampaign indica orçamento herdado da campanha (CBO)
	BudgetTypeCampaign BudgetType = "campaign"
)

// AdSet representa um conjunto de anúncios. Chave natural:
// (campaign_id, external_id). CampaignExternalID referencia a campanha
// remota; se ela não for resolvida na mesma execução, o conjunto é
// pulado e nunca persistido órfão.
type AdSet struct {
	ID                 string     `json:"id"`
	CampaignID         string     `json:"campaign_id"`
	CampaignExternalID string     `json:"campaign_external_id"`
	ExternalID         string     `json:"external_id"`
	Name               string     `json:"name"`
	Status             Status     `json:"status"`
	BidStrategy        string     `json:"bid_strategy"`
	BudgetType         BudgetType `json:"budget_type"`
	Budget             *float64   `json:"budget,omitempty"`
	StartDate          *time.Time `json:"start_date,omitempty"`
	EndDate            *time.Time `json:"end_date,omitempty"`
	Targeting          Metadata   `json:"targeting,omitempty"`
	LastSyncedAt       time.Time  `json:"last_synced_at"`
}
