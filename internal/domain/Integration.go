package domain

import "time"

// Integration representa a conexão de um workspace com uma plataforma de
// anúncios. Uma por par (workspace, plataforma); criada ou reativada no
// início de cada sincronização e nunca removida pelo motor de sync.
type Integration struct {
	ID           string    `json:"id"`
	WorkspaceID  string    `json:"workspace_id"`
	Platform     string    `json:"platform"`
	Status       Status    `json:"status"`
	LastSyncedAt time.Time `json:"last_synced_at"`
}
