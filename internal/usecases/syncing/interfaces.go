package syncing

import (
	"context"
	"time"

	"github.com/vfg2006/ads-sync-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/integrator.go -package=mocks

// PlatformIntegrator é o contrato que cada plataforma de anúncios
// precisa cumprir para ser sincronizada. O Meta é a única implementação
// hoje; novas plataformas entram sem mudar o orquestrador
type PlatformIntegrator interface {
	Platform() string
	FetchAccount(ctx context.Context, accountExternalID string) (*domain.PlatformAccount, error)
	FetchCampaigns(ctx context.Context, accountExternalID string) ([]*domain.Campaign, error)
	FetchAdSets(ctx context.Context, accountExternalID string) ([]*domain.AdSet, error)
	FetchAds(ctx context.Context, accountExternalID string) ([]*domain.Ad, error)
	FetchAudiences(ctx context.Context, accountExternalID string) ([]*domain.Audience, error)
	FetchMetrics(ctx context.Context, accountExternalID string, since, until time.Time) ([]*domain.PerformanceMetric, error)
	ResolveCreatives(ctx context.Context, workspaceID string, creativeIDs []string) ([]*domain.CreativeAsset, []string)
}

// IntegratorFactory constrói um integrador ligado à credencial de uma
// execução específica. O token vive apenas durante a execução
type IntegratorFactory func(accessToken string) PlatformIntegrator

// Syncer executa uma sincronização completa de uma conta
type Syncer interface {
	Sync(ctx context.Context, req *domain.SyncRequest) (*domain.SyncSummary, error)
}
