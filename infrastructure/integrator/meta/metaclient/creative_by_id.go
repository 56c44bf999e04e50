package metaclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-sync-api/infrastructure/integrator/meta/domain"
)

const creativeFields = "id,name,title,body,thumbnail_url,image_url,video_id,object_story_spec"

// GetCreativeByID busca os detalhes de um criativo. A Graph API não
// oferece busca em lote para este endpoint, então o resolvedor chama um
// por vez. O object_story_spec cru é preservado para o metadata.
func (c *MetaClient) GetCreativeByID(ctx context.Context, creativeID string) (*metadomain.Creative, error) {
	if c.accessToken == "" {
		return nil, ErrMissingCredentials
	}

	baseURL := fmt.Sprintf("%s/%s", c.Cfg.Meta.URL, creativeID)

	params := url.Values{}
	params.Add("fields", creativeFields)
	params.Add("access_token", c.accessToken)

	body, err := c.doRequest(ctx, baseURL+"?"+params.Encode())
	if err != nil {
		return nil, err
	}

	var creative metadomain.Creative
	if err := json.Unmarshal(body, &creative); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON do criativo")
		return nil, err
	}

	var shadow struct {
		Spec json.RawMessage `json:"object_story_spec"`
	}
	if err := json.Unmarshal(body, &shadow); err == nil {
		creative.RawSpec = shadow.Spec
	}

	return &creative, nil
}
