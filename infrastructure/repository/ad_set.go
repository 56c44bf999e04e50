package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/ads-sync-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-sync-api/internal/domain"
	"github.com/vfg2006/ads-sync-api/pkg/utils"
)

const adSetsTable = "ad_sets"

type AdSetRepository interface {
	SaveOrUpdate(adSet *domain.AdSet) (string, error)
}

type adSetRepository struct {
	conn *postgres.Connection
}

func NewAdSetRepository(conn *postgres.Connection) AdSetRepository {
	return &adSetRepository{
		conn: conn,
	}
}

// SaveOrUpdate faz o upsert do conjunto de anúncios pela chave natural
// (campaign_id, external_id). O chamador já resolveu CampaignID para o
// ID interno; conjuntos órfãos nunca chegam até aqui
func (r *adSetRepository) SaveOrUpdate(adSet *domain.AdSet) (string, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return "", err
	}

	targeting, err := metadataValue(adSet.Targeting)
	if err != nil {
		return "", fmt.Errorf("failed to serialize targeting: %w", err)
	}

	query := squirrel.StatementBuilder.
		Insert(adSetsTable).
		Columns(
			"id", "campaign_id", "external_id", "name", "status", "bid_strategy",
			"budget_type", "budget", "start_date", "end_date", "targeting", "last_synced_at",
		).
		Values(
			id,
			adSet.CampaignID,
			adSet.ExternalID,
			adSet.Name,
			adSet.Status,
			adSet.BidStrategy,
			adSet.BudgetType,
			adSet.Budget,
			adSet.StartDate,
			adSet.EndDate,
			targeting,
			adSet.LastSyncedAt,
		).
		Suffix(`
			ON CONFLICT (campaign_id, external_id) DO UPDATE SET
				name = EXCLUDED.name,
				status = EXCLUDED.status,
				bid_strategy = EXCLUDED.bid_strategy,
				budget_type = EXCLUDED.budget_type,
				budget = EXCLUDED.budget,
				start_date = EXCLUDED.start_date,
				end_date = EXCLUDED.end_date,
				targeting = EXCLUDED.targeting,
				last_synced_at = EXCLUDED.last_synced_at
			RETURNING id
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return "", fmt.Errorf("failed to build query: %w", err)
	}

	var adSetID string
	if err := r.conn.QueryRow(sqlQuery, args...).Scan(&adSetID); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return "", fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return "", fmt.Errorf("failed to execute query: %w", err)
	}

	return adSetID, nil
}
