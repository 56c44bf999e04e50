package domain

import "time"

// PlatformAccount representa uma conta de anúncios da plataforma remota.
// Chave natural: (workspace, plataforma, external_id). O metadata é
// mesclado por união a cada sync, nunca substituído, para preservar
// campos que o motor ainda não popula.
type PlatformAccount struct {
	ID            string    `json:"id"`
	IntegrationID string    `json:"integration_id"`
	WorkspaceID   string    `json:"workspace_id"`
	ExternalID    string    `json:"external_id"`
	Name          string    `json:"name"`
	Currency      string    `json:"currency"`
	Timezone      string    `json:"timezone"`
	Status        Status    `json:"status"`
	Metadata      Metadata  `json:"metadata,omitempty"`
	LastSyncedAt  time.Time `json:"last_synced_at"`
}
