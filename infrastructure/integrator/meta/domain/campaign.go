package metadomain

// Campaign é a campanha crua retornada pela Graph API. Orçamentos vêm
// como strings em centavos.
type Campaign struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Status          string `json:"status"`
	EffectiveStatus string `json:"effective_status"`
	Objective       string `json:"objective"`
	DailyBudget     string `json:"daily_budget,omitempty"`
	LifetimeBudget  string `json:"lifetime_budget,omitempty"`
	StartTime       string `json:"start_time,omitempty"`
	StopTime        string `json:"stop_time,omitempty"`
	SpecialAdCategories []string `json:"special_ad_categories,omitempty"`
}
