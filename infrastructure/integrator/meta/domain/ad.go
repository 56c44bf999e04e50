package metadomain

// AdCreativeRef é a referência de criativo embutida em um anúncio
type AdCreativeRef struct {
	ID string `json:"id"`
}

// Ad é o anúncio cru da Graph API
type Ad struct {
	ID           string         `json:"id"`
	AdsetID      string         `json:"adset_id"`
	Name         string         `json:"name"`
	Status       string         `json:"status"`
	Creative     *AdCreativeRef `json:"creative,omitempty"`
	TrackingSpecs any           `json:"tracking_specs,omitempty"`
}
