package domain

import "time"

// Ad representa um anúncio. Chave natural: (ad_set_id, external_id).
// CreativeAssetID é opcional: um criativo que falhou ao ser resolvido
// não impede o upsert do anúncio.
type Ad struct {
	ID                 string    `json:"id"`
	AdSetID            string    `json:"ad_set_id"`
	AdSetExternalID    string    `json:"ad_set_external_id"`
	ExternalID         string    `json:"external_id"`
	Name               string    `json:"name"`
	Status             Status    `json:"status"`
	CreativeExternalID string    `json:"creative_external_id,omitempty"`
	CreativeAssetID    *string   `json:"creative_asset_id,omitempty"`
	Metadata           Metadata  `json:"metadata,omitempty"`
	LastSyncedAt       time.Time `json:"last_synced_at"`
}
