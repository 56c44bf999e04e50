package metaclient

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-sync-api/internal/config"
)

func newTestClient(serverURL string) *MetaClient {
	cfg := &config.Config{
		Meta: config.Meta{
			URL:      serverURL,
			PageSize: 25,
		},
	}

	return NewClient(cfg, "token-de-teste").(*MetaClient)
}

func TestListCampaignsByAccountID_SegueTodasAsPaginas(t *testing.T) {
	var server *httptest.Server
	requests := make([]string, 0)

	mux := http.NewServeMux()
	mux.HandleFunc("/act_123/campaigns", func(w http.ResponseWriter, r *http.Request) {
		requests = append(requests, r.URL.String())

		if r.URL.Query().Get("after") == "" {
			// Primeira página: 3 itens e cursor para a próxima
			fmt.Fprintf(w, `{
				"data": [
					{"id": "c1", "name": "Campanha 1", "status": "ACTIVE"},
					{"id": "c2", "name": "Campanha 2", "status": "PAUSED"},
					{"id": "c3", "name": "Campanha 3", "status": "ACTIVE"}
				],
				"paging": {"cursors": {"after": "abc"}, "next": "%s/act_123/campaigns?after=abc"}
			}`, server.URL)
			return
		}

		// Segunda página: 2 itens, sem next
		fmt.Fprint(w, `{
			"data": [
				{"id": "c4", "name": "Campanha 4", "status": "ACTIVE"},
				{"id": "c5", "name": "Campanha 5", "status": "ARCHIVED"}
			],
			"paging": {"cursors": {"after": "def"}}
		}`)
	})
	server = httptest.NewServer(mux)
	defer server.Close()

	client := newTestClient(server.URL)

	campaigns, err := client.ListCampaignsByAccountID(context.Background(), "123")
	require.NoError(t, err)

	// 5 itens, na ordem original, sem duplicatas
	require.Len(t, campaigns, 5)
	assert.Equal(t, "c1", campaigns[0].ID)
	assert.Equal(t, "c5", campaigns[4].ID)
	assert.Len(t, requests, 2)

	// O cursor remoto deve ser seguido literalmente
	assert.Contains(t, requests[1], "after=abc")
}

func TestListCampaignsByAccountID_ErroAbortaColetaInteira(t *testing.T) {
	var server *httptest.Server
	mux := http.NewServeMux()
	mux.HandleFunc("/act_123/campaigns", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("after") == "" {
			fmt.Fprintf(w, `{
				"data": [{"id": "c1", "name": "Campanha 1", "status": "ACTIVE"}],
				"paging": {"next": "%s/act_123/campaigns?after=abc"}
			}`, server.URL)
			return
		}

		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"error": {"message": "erro interno", "type": "FacebookApiException", "code": 1}}`)
	})
	server = httptest.NewServer(mux)
	defer server.Close()

	client := newTestClient(server.URL)

	campaigns, err := client.ListCampaignsByAccountID(context.Background(), "123")

	// Fail-fast: nenhuma lista parcial é retornada
	require.Error(t, err)
	assert.Nil(t, campaigns)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
}

func TestListCampaignsByAccountID_TokenExpiradoViraErrReauthRequired(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error": {"message": "Error validating access token", "type": "OAuthException", "code": 190, "error_subcode": 463}}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.ListCampaignsByAccountID(context.Background(), "123")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrReauthRequired))
}

func TestListCampaignsByAccountID_SemCredencial(t *testing.T) {
	cfg := &config.Config{Meta: config.Meta{URL: "http://localhost", PageSize: 25}}
	client := NewClient(cfg, "")

	_, err := client.ListCampaignsByAccountID(context.Background(), "123")
	assert.ErrorIs(t, err, ErrMissingCredentials)
}

func TestFetchAllPages_ContextoCanceladoInterrompe(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data": [], "paging": {}}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.fetchAllPages(ctx, server.URL)
	assert.ErrorIs(t, err, context.Canceled)
}
