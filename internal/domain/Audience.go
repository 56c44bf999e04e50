package domain

import "time"

// Audience representa um público da conta. Chave natural:
// (account_id, external_id).
type Audience struct {
	ID           string    `json:"id"`
	AccountID    string    `json:"account_id"`
	ExternalID   string    `json:"external_id"`
	Name         string    `json:"name"`
	Kind         string    `json:"kind"`
	Status       Status    `json:"status"`
	SizeEstimate int64     `json:"size_estimate"`
	Metadata     Metadata  `json:"metadata,omitempty"`
	LastSyncedAt time.Time `json:"last_synced_at"`
}
