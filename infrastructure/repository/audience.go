package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/ads-sync-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-sync-api/internal/domain"
	"github.com/vfg2006/ads-sync-api/pkg/utils"
)

const audiencesTable = "audiences"

type AudienceRepository interface {
	SaveOrUpdate(audience *domain.Audience) (string, error)
}

type audienceRepository struct {
	conn *postgres.Connection
}

func NewAudienceRepository(conn *postgres.Connection) AudienceRepository {
	return &audienceRepository{
		conn: conn,
	}
}

// SaveOrUpdate faz o upsert do público pela chave natural
// (account_id, external_id)
func (r *audienceRepository) SaveOrUpdate(audience *domain.Audience) (string, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return "", err
	}

	metadata, err := metadataValue(audience.Metadata)
	if err != nil {
		return "", fmt.Errorf("failed to serialize metadata: %w", err)
	}

	query := squirrel.StatementBuilder.
		Insert(audiencesTable).
		Columns(
			"id", "account_id", "external_id", "name", "kind",
			"status", "size_estimate", "metadata", "last_synced_at",
		).
		Values(
			id,
			audience.AccountID,
			audience.ExternalID,
			audience.Name,
			audience.Kind,
			audience.Status,
			audience.SizeEstimate,
			metadata,
			audience.LastSyncedAt,
		).
		Suffix(`
			ON CONFLICT (account_id, external_id) DO UPDATE SET
				name = EXCLUDED.name,
				kind = EXCLUDED.kind,
				status = EXCLUDED.status,
				size_estimate = EXCLUDED.size_estimate,
				metadata = EXCLUDED.metadata,
				last_synced_at = EXCLUDED.last_synced_at
			RETURNING id
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return "", fmt.Errorf("failed to build query: %w", err)
	}

	var audienceID string
	if err := r.conn.QueryRow(sqlQuery, args...).Scan(&audienceID); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return "", fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return "", fmt.Errorf("failed to execute query: %w", err)
	}

	return audienceID, nil
}
