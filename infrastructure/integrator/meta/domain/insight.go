package metadomain

// Action é o par tipo/valor usado em actions e action_values
type Action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

// Insight é a linha diária de métricas da Graph API. Valores numéricos
// chegam como strings; campanha/conjunto/anúncio preenchidos conforme o
// nível solicitado.
type Insight struct {
	AccountID    string   `json:"account_id"`
	CampaignID   string   `json:"campaign_id,omitempty"`
	AdsetID      string   `json:"adset_id,omitempty"`
	AdID         string   `json:"ad_id,omitempty"`
	DateStart    string   `json:"date_start"`
	DateStop     string   `json:"date_stop"`
	Impressions  string   `json:"impressions"`
	Clicks       string   `json:"clicks"`
	Spend        string   `json:"spend"`
	Actions      []Action `json:"actions,omitempty"`
	ActionValues []Action `json:"action_values,omitempty"`
}
