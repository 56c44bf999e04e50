package metaclient

import (
	"context"
	"fmt"
	"net/url"

	metadomain "github.com/vfg2006/ads-sync-api/infrastructure/integrator/meta/domain"
)

const adFields = "id,adset_id,name,status,creative"

// ListAdsByAccountID busca todos os anúncios da conta, seguindo a
// paginação até o fim
func (c *MetaClient) ListAdsByAccountID(ctx context.Context, accountID string) ([]metadomain.Ad, error) {
	if c.accessToken == "" {
		return nil, ErrMissingCredentials
	}

	baseURL := fmt.Sprintf("%s/act_%s/ads", c.Cfg.Meta.URL, accountID)

	params := url.Values{}
	params.Add("fields", adFields)
	params.Add("limit", fmt.Sprintf("%d", c.Cfg.Meta.PageSize))
	params.Add("access_token", c.accessToken)

	items, err := c.fetchAllPages(ctx, baseURL+"?"+params.Encode())
	if err != nil {
		return nil, err
	}

	return decodeItems[metadomain.Ad](items), nil
}
