package domain

import "time"

// Granularidade suportada pelo escritor de métricas. Hoje apenas diária;
// o valor faz parte da chave natural da linha.
const GranularityDaily = "daily"

// PerformanceMetric representa uma linha diária de métricas. Os campos
// External* chegam da plataforma; os IDs internos são resolvidos pelo
// orquestrador antes da escrita em lote. AdSetID e AdID nulos
// distinguem linhas de nível campanha/conjunto/anúncio para a mesma
// data sem colidir no índice único.
type PerformanceMetric struct {
	AccountID          string    `json:"account_id"`
	CampaignID         string    `json:"campaign_id"`
	AdSetID            *string   `json:"ad_set_id,omitempty"`
	AdID               *string   `json:"ad_id,omitempty"`
	CampaignExternalID string    `json:"campaign_external_id"`
	AdSetExternalID    string    `json:"ad_set_external_id,omitempty"`
	AdExternalID       string    `json:"ad_external_id,omitempty"`
	Granularity        string    `json:"granularity"`
	Date               time.Time `json:"date"`
	Impressions        int64     `json:"impressions"`
	Clicks             int64     `json:"clicks"`
	Spend              float64   `json:"spend"`
	CPM                float64   `json:"cpm"`
	CPC                float64   `json:"cpc"`
	CTR                float64   `json:"ctr"`
	CPA                float64   `json:"cpa"`
	ROAS               float64   `json:"roas"`
	Conversions        int64     `json:"conversions"`
	ConversionValue    float64   `json:"conversion_value"`
	ExtraMetrics       Metadata  `json:"extra_metrics,omitempty"`
}
