package repository

import (
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/ads-sync-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-sync-api/internal/domain"
)

const (
	performanceMetricsTable = "performance_metrics"

	// Tamanho máximo de cada INSERT multi-linha. Acima disso o Postgres
	// começa a sofrer com o número de placeholders
	metricBatchSize = 500
)

type PerformanceMetricRepository interface {
	SaveBatch(metrics []*domain.PerformanceMetric) (int, error)
}

type performanceMetricRepository struct {
	conn *postgres.Connection
}

func NewPerformanceMetricRepository(conn *postgres.Connection) PerformanceMetricRepository {
	return &performanceMetricRepository{
		conn: conn,
	}
}

// SaveBatch grava as linhas de métricas em lotes. A chave natural usa
// COALESCE(ad_set_id, '') e COALESCE(ad_id, '') para que linhas de
// nível campanha, conjunto e anúncio da mesma data não colidam entre
// si. Devolve o total de linhas efetivamente escritas
func (r *performanceMetricRepository) SaveBatch(metrics []*domain.PerformanceMetric) (int, error) {
	if len(metrics) == 0 {
		return 0, nil
	}

	// O Postgres rejeita duas linhas com a mesma chave no mesmo INSERT
	// ... ON CONFLICT ("cannot affect row a second time"). Deduplica
	// antes, mantendo a última ocorrência
	deduped := dedupeMetrics(metrics)

	written := 0

	for _, chunk := range chunkMetrics(deduped, metricBatchSize) {
		query := squirrel.StatementBuilder.
			Insert(performanceMetricsTable).
			Columns(
				"account_id", "campaign_id", "ad_set_id", "ad_id", "granularity", "date",
				"impressions", "clicks", "spend", "cpm", "cpc", "ctr", "cpa", "roas",
				"conversions", "conversion_value", "extra_metrics",
			).
			PlaceholderFormat(squirrel.Dollar)

		for _, m := range chunk {
			extraMetrics, err := metadataValue(m.ExtraMetrics)
			if err != nil {
				return written, fmt.Errorf("failed to serialize extra_metrics: %w", err)
			}

			query = query.Values(
				m.AccountID,
				m.CampaignID,
				m.AdSetID,
				m.AdID,
				m.Granularity,
				m.Date.Format("2006-01-02"),
				m.Impressions,
				m.Clicks,
				m.Spend,
				m.CPM,
				m.CPC,
				m.CTR,
				m.CPA,
				m.ROAS,
				m.Conversions,
				m.ConversionValue,
				extraMetrics,
			)
		}

		query = query.Suffix(`
			ON CONFLICT (account_id, campaign_id, COALESCE(ad_set_id, ''), COALESCE(ad_id, ''), granularity, date) DO UPDATE SET
				impressions = EXCLUDED.impressions,
				clicks = EXCLUDED.clicks,
				spend = EXCLUDED.spend,
				cpm = EXCLUDED.cpm,
				cpc = EXCLUDED.cpc,
				ctr = EXCLUDED.ctr,
				cpa = EXCLUDED.cpa,
				roas = EXCLUDED.roas,
				conversions = EXCLUDED.conversions,
				conversion_value = EXCLUDED.conversion_value,
				extra_metrics = EXCLUDED.extra_metrics,
				synced_at = NOW()
		`)

		sqlQuery, args, err := query.ToSql()
		if err != nil {
			return written, fmt.Errorf("failed to build query: %w", err)
		}

		if _, err := r.conn.Exec(sqlQuery, args...); err != nil {
			if pqErr, ok := err.(*pq.Error); ok {
				return written, fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
			}
			return written, fmt.Errorf("failed to execute query: %w", err)
		}

		written += len(chunk)
	}

	return written, nil
}

// dedupeMetrics remove duplicatas pela chave natural, mantendo a última
// ocorrência de cada chave e preservando a ordem relativa das linhas
// que sobram
func dedupeMetrics(metrics []*domain.PerformanceMetric) []*domain.PerformanceMetric {
	lastIdx := make(map[string]int, len(metrics))
	for i, m := range metrics {
		lastIdx[metricKey(m)] = i
	}

	deduped := make([]*domain.PerformanceMetric, 0, len(lastIdx))
	for i, m := range metrics {
		if lastIdx[metricKey(m)] == i {
			deduped = append(deduped, m)
		}
	}

	return deduped
}

func metricKey(m *domain.PerformanceMetric) string {
	adSetID := ""
	if m.AdSetID != nil {
		adSetID = *m.AdSetID
	}

	adID := ""
	if m.AdID != nil {
		adID = *m.AdID
	}

	return strings.Join([]string{
		m.AccountID,
		m.CampaignID,
		adSetID,
		adID,
		m.Granularity,
		m.Date.Format("2006-01-02"),
	}, "|")
}

func chunkMetrics(metrics []*domain.PerformanceMetric, size int) [][]*domain.PerformanceMetric {
	chunks := make([][]*domain.PerformanceMetric, 0, (len(metrics)+size-1)/size)

	for start := 0; start < len(metrics); start += size {
		end := start + size
		if end > len(metrics) {
			end = len(metrics)
		}
		chunks = append(chunks, metrics[start:end])
	}

	return chunks
}
