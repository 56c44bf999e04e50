package domain

import "time"

// Campaign representa uma campanha normalizada. Chave natural:
// (account_id, external_id). Budget é sempre armazenado na unidade
// principal da moeda, nunca em centavos.
type Campaign struct {
	ID           string     `json:"id"`
	AccountID    string     `json:"account_id"`
	ExternalID   string     `json:"external_id"`
	Name         string     `json:"name"`
	Status       Status     `json:"status"`
	Objective    string     `json:"objective"`
	StartDate    *time.Time `json:"start_date,omitempty"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	Budget       *float64   `json:"budget,omitempty"`
	Settings     Metadata   `json:"settings,omitempty"`
	Archived     bool       `json:"archived"`
	LastSyncedAt time.Time  `json:"last_synced_at"`
}
