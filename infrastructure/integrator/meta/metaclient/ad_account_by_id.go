package metaclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-sync-api/infrastructure/integrator/meta/domain"
)

const adAccountFields = "id,account_id,name,currency,timezone_name,account_status"

// GetAdAccountByID busca os detalhes de uma conta de anúncios
func (c *MetaClient) GetAdAccountByID(ctx context.Context, accountID string) (*metadomain.AdAccount, error) {
	if c.accessToken == "" {
		return nil, ErrMissingCredentials
	}

	baseURL := fmt.Sprintf("%s/act_%s", c.Cfg.Meta.URL, accountID)

	params := url.Values{}
	params.Add("fields", adAccountFields)
	params.Add("access_token", c.accessToken)

	body, err := c.doRequest(ctx, baseURL+"?"+params.Encode())
	if err != nil {
		return nil, err
	}

	var account metadomain.AdAccount
	if err := json.Unmarshal(body, &account); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON da conta de anúncios")
		return nil, err
	}

	return &account, nil
}
