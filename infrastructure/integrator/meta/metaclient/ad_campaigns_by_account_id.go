package metaclient

import (
	"context"
	"fmt"
	"net/url"

	metadomain "github.com/vfg2006/ads-sync-api/infrastructure/integrator/meta/domain"
)

const campaignFields = "id,name,status,effective_status,objective,daily_budget,lifetime_budget,start_time,stop_time,special_ad_categories"

// ListCampaignsByAccountID busca todas as campanhas da conta, seguindo a
// paginação até o fim
func (c *MetaClient) ListCampaignsByAccountID(ctx context.Context, accountID string) ([]metadomain.Campaign, error) {
	if c.accessToken == "" {
		return nil, ErrMissingCredentials
	}

	baseURL := fmt.Sprintf("%s/act_%s/campaigns", c.Cfg.Meta.URL, accountID)

	params := url.Values{}
	params.Add("fields", campaignFields)
	params.Add("limit", fmt.Sprintf("%d", c.Cfg.Meta.PageSize))
	params.Add("access_token", c.accessToken)

	items, err := c.fetchAllPages(ctx, baseURL+"?"+params.Encode())
	if err != nil {
		return nil, err
	}

	return decodeItems[metadomain.Campaign](items), nil
}
