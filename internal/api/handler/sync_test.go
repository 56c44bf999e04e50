package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ads-sync-api/internal/config"
	"github.com/vfg2006/ads-sync-api/internal/domain"
	"github.com/vfg2006/ads-sync-api/internal/scheduler"
	syncmocks "github.com/vfg2006/ads-sync-api/internal/usecases/syncing/mocks"
	"go.uber.org/mock/gomock"
)

func newTestSyncService(ctrl *gomock.Controller, setup func(m *syncmocks.MockSyncer)) *scheduler.PlatformSyncService {
	syncer := syncmocks.NewMockSyncer(ctrl)
	if setup != nil {
		setup(syncer)
	}

	return scheduler.NewPlatformSyncService(syncer, &config.Config{
		Sync: config.Sync{CronSchedule: "0 3 * * *", CreativeWorkers: 1},
	})
}

func TestTriggerSyncHandlerValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := newTestSyncService(ctrl, nil)

	tests := []struct {
		name string
		body string
	}{
		{name: "corpo inválido", body: "{"},
		{name: "sem workspace", body: `{"account_external_id":"act_123","access_token":"tk"}`},
		{name: "sem token", body: `{"workspace_id":"ws_01","account_external_id":"act_123"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/sync", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			TriggerSync(service).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestTriggerSyncHandlerAcceptsValidRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := newTestSyncService(ctrl, func(m *syncmocks.MockSyncer) {
		m.EXPECT().Sync(gomock.Any(), gomock.Any()).
			Return(&domain.SyncSummary{}, nil).AnyTimes()
	})

	body := `{"workspace_id":"ws_01","account_external_id":"act_123","access_token":"segredo-da-meta"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/sync", strings.NewReader(body))
	rec := httptest.NewRecorder()

	TriggerSync(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Contains(t, rec.Body.String(), `"state":"running"`)
	// O token nunca volta na resposta
	assert.NotContains(t, rec.Body.String(), "segredo-da-meta")
}

func TestTriggerSyncHandlerRunSurvivesRequestContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := newTestSyncService(ctrl, func(m *syncmocks.MockSyncer) {
		// O Sync só termina depois que o 202 já foi respondido. Se a
		// execução herdasse o cancelamento de r.Context(), terminaria
		// aqui com context.Canceled em vez de concluir
		m.EXPECT().Sync(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, req *domain.SyncRequest) (*domain.SyncSummary, error) {
				time.Sleep(100 * time.Millisecond)
				if err := ctx.Err(); err != nil {
					return nil, err
				}
				return &domain.SyncSummary{CampaignsUpserted: 1}, nil
			})
	})

	srv := httptest.NewServer(TriggerSync(service))
	defer srv.Close()

	body := `{"workspace_id":"ws_01","account_external_id":"act_123","access_token":"tk"}`
	resp, err := http.Post(srv.URL+"/v1/sync", "application/json", strings.NewReader(body))
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusAccepted, resp.StatusCode)

	assert.Eventually(t, func() bool {
		runs := service.GetStatus()
		return len(runs) == 1 && runs[0].State == scheduler.RunStateCompleted
	}, 2*time.Second, 10*time.Millisecond)

	runs := service.GetStatus()
	assert.Empty(t, runs[0].Error)
	assert.Equal(t, 1, runs[0].Summary.CampaignsUpserted)
}

func TestGetSyncStatusHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := newTestSyncService(ctrl, func(m *syncmocks.MockSyncer) {
		m.EXPECT().Sync(gomock.Any(), gomock.Any()).
			Return(&domain.SyncSummary{CampaignsUpserted: 2}, nil)
	})

	_, err := service.TriggerSync(context.Background(), &domain.SyncRequest{
		WorkspaceID:       "ws_01",
		AccountExternalID: "act_123",
		AccessToken:       "tk",
	})
	assert.NoError(t, err)

	assert.Eventually(t, func() bool {
		runs := service.GetStatus()
		return len(runs) == 1 && runs[0].State == scheduler.RunStateCompleted
	}, 2*time.Second, 10*time.Millisecond)

	req := httptest.NewRequest(http.MethodGet, "/v1/sync/status", nil)
	rec := httptest.NewRecorder()

	GetSyncStatus(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"campaigns_upserted":2`)
}
