package metaclient

import (
	"context"
	"net/http"
	"time"

	metadomain "github.com/vfg2006/ads-sync-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-sync-api/internal/config"
)

type Client interface {
	GetAdAccountByID(ctx context.Context, accountID string) (*metadomain.AdAccount, error)
	ListCampaignsByAccountID(ctx context.Context, accountID string) ([]metadomain.Campaign, error)
	ListAdSetsByAccountID(ctx context.Context, accountID string) ([]metadomain.AdSet, error)
	ListAdsByAccountID(ctx context.Context, accountID string) ([]metadomain.Ad, error)
	ListAudiencesByAccountID(ctx context.Context, accountID string) ([]metadomain.Audience, error)
	ListInsightsByAccountID(ctx context.Context, accountID string, level string, since, until time.Time) ([]metadomain.Insight, error)
	GetCreativeByID(ctx context.Context, creativeID string) (*metadomain.Creative, error)
}

type MetaClient struct {
	Cfg         *config.Config
	accessToken string
	httpClient  *http.Client
}

// NewClient cria um cliente da Graph API para uma credencial específica.
// A credencial vem da camada chamadora a cada sincronização; quando
// vazia, usa o token configurado na aplicação.
func NewClient(cfg *config.Config, accessToken string) Client {
	if accessToken == "" {
		accessToken = cfg.Meta.AccessToken
	}

	return &MetaClient{
		Cfg:         cfg,
		accessToken: accessToken,
		httpClient:  &http.Client{Timeout: 30 * time.Second},
	}
}
