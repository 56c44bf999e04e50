package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ads-sync-api/internal/config"
	"github.com/vfg2006/ads-sync-api/internal/domain"
	syncmocks "github.com/vfg2006/ads-sync-api/internal/usecases/syncing/mocks"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		Sync: config.Sync{
			CronSchedule:    "0 3 * * *",
			CreativeWorkers: 2,
			Enabled:         false,
		},
	}
}

func testRequest() *domain.SyncRequest {
	return &domain.SyncRequest{
		WorkspaceID:       "ws_01",
		AccountExternalID: "act_123",
		AccessToken:       "token",
	}
}

func TestTriggerSyncValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewPlatformSyncService(syncmocks.NewMockSyncer(ctrl), testConfig())

	tests := []struct {
		name string
		req  *domain.SyncRequest
	}{
		{name: "request nulo", req: nil},
		{name: "sem workspace", req: &domain.SyncRequest{AccountExternalID: "act_123"}},
		{name: "sem conta externa", req: &domain.SyncRequest{WorkspaceID: "ws_01"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, err := service.TriggerSync(context.Background(), tt.req)
			assert.Error(t, err)
			assert.Nil(t, status)
		})
	}
}

func TestTriggerSyncRecordsCompletedRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	syncer := syncmocks.NewMockSyncer(ctrl)
	syncer.EXPECT().Sync(gomock.Any(), gomock.Any()).
		Return(&domain.SyncSummary{CampaignsUpserted: 3}, nil)

	service := NewPlatformSyncService(syncer, testConfig())

	status, err := service.TriggerSync(context.Background(), testRequest())

	assert.NoError(t, err)
	assert.Equal(t, RunStateRunning, status.State)

	assert.Eventually(t, func() bool {
		for _, run := range service.GetStatus() {
			if run.State == RunStateCompleted {
				return run.Summary != nil && run.Summary.CampaignsUpserted == 3
			}
		}
		return false
	}, 2*time.Second, 10*time.Millisecond)
}

func TestTriggerSyncRunOutlivesCallerContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	started := make(chan struct{})

	syncer := syncmocks.NewMockSyncer(ctrl)
	syncer.EXPECT().Sync(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req *domain.SyncRequest) (*domain.SyncSummary, error) {
			<-started
			// O contexto do disparo já foi cancelado neste ponto; a
			// execução não pode herdar esse cancelamento
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			return &domain.SyncSummary{AdsUpserted: 2}, nil
		})

	service := NewPlatformSyncService(syncer, testConfig())

	ctx, cancel := context.WithCancel(context.Background())

	_, err := service.TriggerSync(ctx, testRequest())
	assert.NoError(t, err)

	cancel()
	close(started)

	assert.Eventually(t, func() bool {
		for _, run := range service.GetStatus() {
			if run.State == RunStateCompleted {
				return run.Summary != nil && run.Summary.AdsUpserted == 2
			}
		}
		return false
	}, 2*time.Second, 10*time.Millisecond)
}

func TestTriggerSyncRecordsFailedRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	syncer := syncmocks.NewMockSyncer(ctrl)
	syncer.EXPECT().Sync(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("token expirado"))

	service := NewPlatformSyncService(syncer, testConfig())

	_, err := service.TriggerSync(context.Background(), testRequest())
	assert.NoError(t, err)

	assert.Eventually(t, func() bool {
		for _, run := range service.GetStatus() {
			if run.State == RunStateFailed {
				return run.Error == "token expirado" && run.CompletedAt != nil
			}
		}
		return false
	}, 2*time.Second, 10*time.Millisecond)
}

func TestTriggerSyncRejectsConcurrentRunForSameAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	release := make(chan struct{})

	syncer := syncmocks.NewMockSyncer(ctrl)
	syncer.EXPECT().Sync(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req *domain.SyncRequest) (*domain.SyncSummary, error) {
			<-release
			return &domain.SyncSummary{}, nil
		})

	service := NewPlatformSyncService(syncer, testConfig())

	_, err := service.TriggerSync(context.Background(), testRequest())
	assert.NoError(t, err)

	// Segundo disparo para a mesma conta enquanto a primeira execução roda
	_, err = service.TriggerSync(context.Background(), testRequest())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "já em andamento")

	close(release)

	assert.Eventually(t, func() bool {
		runs := service.GetStatus()
		return len(runs) == 1 && runs[0].State == RunStateCompleted
	}, 2*time.Second, 10*time.Millisecond)
}
