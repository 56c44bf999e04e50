package metaclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-sync-api/infrastructure/integrator/meta/domain"
)

// pageEnvelope é o envelope bruto de uma página de listagem. Os itens
// ficam crus para que cada endpoint decodifique no seu próprio tipo.
type pageEnvelope struct {
	Data   []json.RawMessage `json:"data"`
	Paging metadomain.Paging `json:"paging"`
}

// fetchAllPages segue a paginação por cursor de uma coleção até o fim e
// retorna a concatenação dos itens de todas as páginas, na ordem
// recebida. O paging.next é seguido literalmente: a URL já carrega
// cursores e filtros, nunca é reconstruída aqui. Qualquer resposta
// não-2xx aborta a coleta inteira: uma lista parcial faria o
// reconciliador tratar entidades existentes como removidas.
func (c *MetaClient) fetchAllPages(ctx context.Context, firstURL string) ([]json.RawMessage, error) {
	items := make([]json.RawMessage, 0)

	url := firstURL
	page := 0
	for url != "" {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		body, err := c.doRequest(ctx, url)
		if err != nil {
			return nil, err
		}

		var envelope pageEnvelope
		if err := json.Unmarshal(body, &envelope); err != nil {
			logrus.WithError(err).Error("Erro ao decodificar página da Graph API")
			return nil, err
		}

		items = append(items, envelope.Data...)
		page++

		url = envelope.Paging.Next
	}

	logrus.WithFields(logrus.Fields{
		"pages": page,
		"items": len(items),
	}).Debug("Paginação da Graph API concluída")

	return items, nil
}

// doRequest executa um GET e retorna o corpo em caso de 2xx. Respostas
// de erro são classificadas (reautenticação vs falha genérica).
func (c *MetaClient) doRequest(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, classifyError(resp.StatusCode, body)
	}

	return body, nil
}

// decodeItems decodifica os itens crus de uma coleção no tipo do
// endpoint. Um item malformado é ignorado com warning em vez de
// derrubar a coleção inteira.
func decodeItems[T any](items []json.RawMessage) []T {
	out := make([]T, 0, len(items))
	for _, raw := range items {
		var item T
		if err := json.Unmarshal(raw, &item); err != nil {
			logrus.WithError(err).Warn("Item ignorado: falha ao decodificar JSON da Graph API")
			continue
		}
		out = append(out, item)
	}

	return out
}
