package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/ads-sync-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-sync-api/internal/domain"
	"github.com/vfg2006/ads-sync-api/pkg/utils"
)

const accountsTable = "platform_accounts"

type AccountRepository interface {
	GetByExternalID(workspaceID, externalID string) (*domain.PlatformAccount, error)
	SaveOrUpdate(account *domain.PlatformAccount) (string, error)
}

type accountRepository struct {
	conn *postgres.Connection
}

func NewAccountRepository(conn *postgres.Connection) AccountRepository {
	return &accountRepository{
		conn: conn,
	}
}

func (r *accountRepository) GetByExternalID(workspaceID, externalID string) (*domain.PlatformAccount, error) {
	accountSQL, accountArgs, err := squirrel.
		Select("id, integration_id, workspace_id, external_id, name, currency, timezone, status, last_synced_at").
		From(accountsTable).
		Where(squirrel.Eq{"workspace_id": workspaceID, "external_id": externalID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	acc := &domain.PlatformAccount{}

	row := r.conn.QueryRow(accountSQL, accountArgs...)
	if err := row.Scan(
		&acc.ID,
		&acc.IntegrationID,
		&acc.WorkspaceID,
		&acc.ExternalID,
		&acc.Name,
		&acc.Currency,
		&acc.Timezone,
		&acc.Status,
		&acc.LastSyncedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return acc, nil
}

// SaveOrUpdate faz o upsert da conta pela chave natural
// (integration_id, external_id). O metadata é mesclado por união: o
// valor existente no banco prevalece sobre o novo para a mesma chave,
// preservando campos populados fora do motor de sync
func (r *accountRepository) SaveOrUpdate(account *domain.PlatformAccount) (string, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return "", err
	}

	metadata, err := metadataValue(account.Metadata)
	if err != nil {
		return "", fmt.Errorf("failed to serialize metadata: %w", err)
	}

	query := squirrel.StatementBuilder.
		Insert(accountsTable).
		Columns(
			"id", "integration_id", "workspace_id", "external_id",
			"name", "currency", "timezone", "status", "metadata", "last_synced_at",
		).
		Values(
			id,
			account.IntegrationID,
			account.WorkspaceID,
			account.ExternalID,
			account.Name,
			account.Currency,
			account.Timezone,
			account.Status,
			metadata,
			account.LastSyncedAt,
		).
		Suffix(`
			ON CONFLICT (integration_id, external_id) DO UPDATE SET
				name = EXCLUDED.name,
				currency = EXCLUDED.currency,
				timezone = EXCLUDED.timezone,
				status = EXCLUDED.status,
				metadata = COALESCE(EXCLUDED.metadata, '{}'::jsonb) || COALESCE(platform_accounts.metadata, '{}'::jsonb),
				last_synced_at = EXCLUDED.last_synced_at
			RETURNING id
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return "", fmt.Errorf("failed to build query: %w", err)
	}

	var accountID string
	if err := r.conn.QueryRow(sqlQuery, args...).Scan(&accountID); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return "", fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return "", fmt.Errorf("failed to execute query: %w", err)
	}

	return accountID, nil
}
