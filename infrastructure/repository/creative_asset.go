package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/ads-sync-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-sync-api/internal/domain"
	"github.com/vfg2006/ads-sync-api/pkg/utils"
)

const creativeAssetsTable = "creative_assets"

type CreativeAssetRepository interface {
	SaveOrUpdate(asset *domain.CreativeAsset) (string, error)
}

type creativeAssetRepository struct {
	conn *postgres.Connection
}

func NewCreativeAssetRepository(conn *postgres.Connection) CreativeAssetRepository {
	return &creativeAssetRepository{
		conn: conn,
	}
}

// SaveOrUpdate deduplica o criativo por workspace. O external_id mora
// dentro do metadata, então o conflito usa o índice de expressão
// (workspace_id, metadata->>'external_id'). Uma URL de storage já
// espelhada nunca é apagada por uma execução em que o espelhamento
// falhou
func (r *creativeAssetRepository) SaveOrUpdate(asset *domain.CreativeAsset) (string, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return "", err
	}

	metadata, err := metadataValue(asset.Metadata)
	if err != nil {
		return "", fmt.Errorf("failed to serialize metadata: %w", err)
	}

	query := squirrel.StatementBuilder.
		Insert(creativeAssetsTable).
		Columns(
			"id", "workspace_id", "name", "kind", "storage_url", "thumbnail_url",
			"text_content", "content_hash", "metadata", "last_synced_at",
		).
		Values(
			id,
			asset.WorkspaceID,
			asset.Name,
			asset.Kind,
			asset.StorageURL,
			asset.ThumbnailURL,
			asset.TextContent,
			asset.ContentHash,
			metadata,
			asset.LastSyncedAt,
		).
		Suffix(`
			ON CONFLICT (workspace_id, (metadata->>'external_id')) DO UPDATE SET
				name = EXCLUDED.name,
				kind = EXCLUDED.kind,
				storage_url = COALESCE(EXCLUDED.storage_url, creative_assets.storage_url),
				thumbnail_url = EXCLUDED.thumbnail_url,
				text_content = EXCLUDED.text_content,
				content_hash = EXCLUDED.content_hash,
				metadata = EXCLUDED.metadata,
				last_synced_at = EXCLUDED.last_synced_at
			RETURNING id
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return "", fmt.Errorf("failed to build query: %w", err)
	}

	var assetID string
	if err := r.conn.QueryRow(sqlQuery, args...).Scan(&assetID); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return "", fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return "", fmt.Errorf("failed to execute query: %w", err)
	}

	return assetID, nil
}
