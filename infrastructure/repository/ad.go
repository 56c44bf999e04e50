package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/ads-sync-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-sync-api/internal/domain"
	"github.com/vfg2006/ads-sync-api/pkg/utils"
)

const adsTable = "ads"

type AdRepository interface {
	SaveOrUpdate(ad *domain.Ad) (string, error)
}

type adRepository struct {
	conn *postgres.Connection
}

func NewAdRepository(conn *postgres.Connection) AdRepository {
	return &adRepository{
		conn: conn,
	}
}

// SaveOrUpdate faz o upsert do anúncio pela chave natural
// (ad_set_id, external_id). Se a resolução do criativo falhou nesta
// execução, o vínculo anterior é preservado via COALESCE em vez de ser
// apagado
func (r *adRepository) SaveOrUpdate(ad *domain.Ad) (string, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return "", err
	}

	metadata, err := metadataValue(ad.Metadata)
	if err != nil {
		return "", fmt.Errorf("failed to serialize metadata: %w", err)
	}

	query := squirrel.StatementBuilder.
		Insert(adsTable).
		Columns(
			"id", "ad_set_id", "external_id", "name", "status",
			"creative_asset_id", "metadata", "last_synced_at",
		).
		Values(
			id,
			ad.AdSetID,
			ad.ExternalID,
			ad.Name,
			ad.Status,
			ad.CreativeAssetID,
			metadata,
			ad.LastSyncedAt,
		).
		Suffix(`
			ON CONFLICT (ad_set_id, external_id) DO UPDATE SET
				name = EXCLUDED.name,
				status = EXCLUDED.status,
				creative_asset_id = COALESCE(EXCLUDED.creative_asset_id, ads.creative_asset_id),
				metadata = EXCLUDED.metadata,
				last_synced_at = EXCLUDED.last_synced_at
			RETURNING id
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return "", fmt.Errorf("failed to build query: %w", err)
	}

	var adID string
	if err := r.conn.QueryRow(sqlQuery, args...).Scan(&adID); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return "", fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return "", fmt.Errorf("failed to execute query: %w", err)
	}

	return adID, nil
}
