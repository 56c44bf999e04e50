package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/ads-sync-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-sync-api/internal/domain"
	"github.com/vfg2006/ads-sync-api/pkg/utils"
)

const campaignsTable = "campaigns"

type CampaignRepository interface {
	SaveOrUpdate(campaign *domain.Campaign) (string, error)
}

type campaignRepository struct {
	conn *postgres.Connection
}

func NewCampaignRepository(conn *postgres.Connection) CampaignRepository {
	return &campaignRepository{
		conn: conn,
	}
}

// SaveOrUpdate faz o upsert da campanha pela chave natural
// (account_id, external_id) e devolve o ID interno da linha
func (r *campaignRepository) SaveOrUpdate(campaign *domain.Campaign) (string, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return "", err
	}

	settings, err := metadataValue(campaign.Settings)
	if err != nil {
		return "", fmt.Errorf("failed to serialize settings: %w", err)
	}

	query := squirrel.StatementBuilder.
		Insert(campaignsTable).
		Columns(
			"id", "account_id", "external_id", "name", "status", "objective",
			"start_date", "end_date", "budget", "settings", "archived", "last_synced_at",
		).
		Values(
			id,
			campaign.AccountID,
			campaign.ExternalID,
			campaign.Name,
			campaign.Status,
			campaign.Objective,
			campaign.StartDate,
			campaign.EndDate,
			campaign.Budget,
			settings,
			campaign.Archived,
			campaign.LastSyncedAt,
		).
		Suffix(`
			ON CONFLICT (account_id, external_id) DO UPDATE SET
				name = EXCLUDED.name,
				status = EXCLUDED.status,
				objective = EXCLUDED.objective,
				start_date = EXCLUDED.start_date,
				end_date = EXCLUDED.end_date,
				budget = EXCLUDED.budget,
				settings = EXCLUDED.settings,
				archived = EXCLUDED.archived,
				last_synced_at = EXCLUDED.last_synced_at
			RETURNING id
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return "", fmt.Errorf("failed to build query: %w", err)
	}

	var campaignID string
	if err := r.conn.QueryRow(sqlQuery, args...).Scan(&campaignID); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return "", fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return "", fmt.Errorf("failed to execute query: %w", err)
	}

	return campaignID, nil
}
