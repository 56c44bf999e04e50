package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/ads-sync-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-sync-api/internal/domain"
	"github.com/vfg2006/ads-sync-api/pkg/utils"
)

const integrationsTable = "integrations"

type IntegrationRepository interface {
	SaveOrUpdate(integration *domain.Integration) (string, error)
}

type integrationRepository struct {
	conn *postgres.Connection
}

func NewIntegrationRepository(conn *postgres.Connection) IntegrationRepository {
	return &integrationRepository{
		conn: conn,
	}
}

// SaveOrUpdate cria ou reativa a integração do workspace com a
// plataforma. A chave natural é (workspace_id, platform): execuções
// repetidas sempre reaproveitam a mesma linha
func (r *integrationRepository) SaveOrUpdate(integration *domain.Integration) (string, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return "", err
	}

	query := squirrel.StatementBuilder.
		Insert(integrationsTable).
		Columns("id", "workspace_id", "platform", "status", "last_synced_at").
		Values(
			id,
			integration.WorkspaceID,
			integration.Platform,
			integration.Status,
			integration.LastSyncedAt,
		).
		Suffix(`
			ON CONFLICT (workspace_id, platform) DO UPDATE SET
				status = EXCLUDED.status,
				last_synced_at = EXCLUDED.last_synced_at
			RETURNING id
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return "", fmt.Errorf("failed to build query: %w", err)
	}

	var integrationID string
	if err := r.conn.QueryRow(sqlQuery, args...).Scan(&integrationID); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return "", fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return "", fmt.Errorf("failed to execute query: %w", err)
	}

	return integrationID, nil
}
