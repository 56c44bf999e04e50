package metaclient

import (
	"context"
	"fmt"
	"net/url"

	metadomain "github.com/vfg2006/ads-sync-api/infrastructure/integrator/meta/domain"
)

const audienceFields = "id,name,subtype,approximate_count_lower_bound,approximate_count_upper_bound,delivery_status,operation_status"

// ListAudiencesByAccountID busca todos os públicos customizados da
// conta, seguindo a paginação até o fim
func (c *MetaClient) ListAudiencesByAccountID(ctx context.Context, accountID string) ([]metadomain.Audience, error) {
	if c.accessToken == "" {
		return nil, ErrMissingCredentials
	}

	baseURL := fmt.Sprintf("%s/act_%s/customaudiences", c.Cfg.Meta.URL, accountID)

	params := url.Values{}
	params.Add("fields", audienceFields)
	params.Add("limit", fmt.Sprintf("%d", c.Cfg.Meta.PageSize))
	params.Add("access_token", c.accessToken)

	items, err := c.fetchAllPages(ctx, baseURL+"?"+params.Encode())
	if err != nil {
		return nil, err
	}

	return decodeItems[metadomain.Audience](items), nil
}
