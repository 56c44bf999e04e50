package domain

import "time"

// SyncRequest é o gatilho de uma execução de sincronização para um par
// (workspace, conta externa). A credencial vem da camada chamadora; o
// motor não armazena tokens.
type SyncRequest struct {
	WorkspaceID       string `json:"workspace_id"`
	AccountExternalID string `json:"account_external_id"`
	AccessToken       string `json:"-"`
	DateRangeDays     int    `json:"date_range_days"`
}

// SyncSummary é o resumo retornado ao final de uma execução. Warnings
// acumula falhas recuperáveis (criativos perdidos, filhos órfãos) que
// não abortam a execução.
type SyncSummary struct {
	CampaignsUpserted      int       `json:"campaigns_upserted"`
	AdSetsUpserted         int       `json:"ad_sets_upserted"`
	AdsUpserted            int       `json:"ads_upserted"`
	CreativesUpserted      int       `json:"creatives_upserted"`
	AudiencesUpserted      int       `json:"audiences_upserted"`
	PerformanceRowsWritten int       `json:"performance_rows_written"`
	Warnings               []string  `json:"warnings"`
	StartedAt              time.Time `json:"started_at"`
	CompletedAt            time.Time `json:"completed_at"`
}

// AddWarning registra uma falha recuperável no resumo
func (s *SyncSummary) AddWarning(msg string) {
	s.Warnings = append(s.Warnings, msg)
}
