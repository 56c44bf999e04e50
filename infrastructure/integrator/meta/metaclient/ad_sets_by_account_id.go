package metaclient

import (
	"context"
	"fmt"
	"net/url"

	metadomain "github.com/vfg2006/ads-sync-api/infrastructure/integrator/meta/domain"
)

const adSetFields = "id,campaign_id,name,status,bid_strategy,daily_budget,lifetime_budget,start_time,end_time,targeting"

// ListAdSetsByAccountID busca todos os conjuntos de anúncios da conta,
// seguindo a paginação até o fim
func (c *MetaClient) ListAdSetsByAccountID(ctx context.Context, accountID string) ([]metadomain.AdSet, error) {
	if c.accessToken == "" {
		return nil, ErrMissingCredentials
	}

	baseURL := fmt.Sprintf("%s/act_%s/adsets", c.Cfg.Meta.URL, accountID)

	params := url.Values{}
	params.Add("fields", adSetFields)
	params.Add("limit", fmt.Sprintf("%d", c.Cfg.Meta.PageSize))
	params.Add("access_token", c.accessToken)

	items, err := c.fetchAllPages(ctx, baseURL+"?"+params.Encode())
	if err != nil {
		return nil, err
	}

	return decodeItems[metadomain.AdSet](items), nil
}
