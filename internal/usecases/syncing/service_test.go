package syncing

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ads-sync-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-sync-api/internal/config"
	"github.com/vfg2006/ads-sync-api/internal/domain"
	syncmocks "github.com/vfg2006/ads-sync-api/internal/usecases/syncing/mocks"
	"go.uber.org/mock/gomock"
)

type syncMocks struct {
	integrator      *syncmocks.MockPlatformIntegrator
	integrationRepo *mocks.MockIntegrationRepository
	accountRepo     *mocks.MockAccountRepository
	campaignRepo    *mocks.MockCampaignRepository
	adSetRepo       *mocks.MockAdSetRepository
	adRepo          *mocks.MockAdRepository
	creativeRepo    *mocks.MockCreativeAssetRepository
	audienceRepo    *mocks.MockAudienceRepository
	performanceRepo *mocks.MockPerformanceMetricRepository
}

func newSyncMocks(ctrl *gomock.Controller) *syncMocks {
	return &syncMocks{
		integrator:      syncmocks.NewMockPlatformIntegrator(ctrl),
		integrationRepo: mocks.NewMockIntegrationRepository(ctrl),
		accountRepo:     mocks.NewMockAccountRepository(ctrl),
		campaignRepo:    mocks.NewMockCampaignRepository(ctrl),
		adSetRepo:       mocks.NewMockAdSetRepository(ctrl),
		adRepo:          mocks.NewMockAdRepository(ctrl),
		creativeRepo:    mocks.NewMockCreativeAssetRepository(ctrl),
		audienceRepo:    mocks.NewMockAudienceRepository(ctrl),
		performanceRepo: mocks.NewMockPerformanceMetricRepository(ctrl),
	}
}

func newServiceForTest(m *syncMocks) Syncer {
	cfg := &config.Config{
		Sync: config.Sync{LookbackDays: 7},
	}

	factory := func(accessToken string) PlatformIntegrator { return m.integrator }

	return NewService(
		cfg,
		factory,
		m.integrationRepo,
		m.accountRepo,
		m.campaignRepo,
		m.adSetRepo,
		m.adRepo,
		m.creativeRepo,
		m.audienceRepo,
		m.performanceRepo,
	)
}

func validRequest() *domain.SyncRequest {
	return &domain.SyncRequest{
		WorkspaceID:       "ws_01",
		AccountExternalID: "act_123",
		AccessToken:       "token",
	}
}

// expectBaseline monta o caminho feliz até a etapa de contas, comum à
// maioria dos cenários
func expectBaseline(m *syncMocks) {
	m.integrator.EXPECT().Platform().Return("meta").AnyTimes()
	m.integrationRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return("int_01", nil)
	m.integrator.EXPECT().FetchAccount(gomock.Any(), "act_123").
		Return(&domain.PlatformAccount{ExternalID: "act_123", Name: "Conta Teste"}, nil)
	m.accountRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return("acc_01", nil)
}

func TestSyncValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newSyncMocks(ctrl)
	service := newServiceForTest(m)

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
			summary, err := service.Sync(context.Background(), tt.req)
			assert.Error(t, err)
			assert.Nil(t, summary)
		})
	}
}

func TestSyncSkipsOrphanedChildren(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newSyncMocks(ctrl)
	expectBaseline(m)

	// Duas campanhas válidas
	m.integrator.EXPECT().FetchCampaigns(gomock.Any(), "act_123").Return([]*domain.Campaign{
		{ExternalID: "cmp_1", Name: "Campanha 1"},
		{ExternalID: "cmp_2", Name: "Campanha 2"},
	}, nil)
	m.campaignRepo.EXPECT().SaveOrUpdate(gomock.Any()).DoAndReturn(func(c *domain.Campaign) (string, error) {
		assert.Equal(t, "acc_01", c.AccountID)
		return "id_" + c.ExternalID, nil
	}).Times(2)

	// Um conjunto aponta para campanha desconhecida e deve ser pulado
	m.integrator.EXPECT().FetchAdSets(gomock.Any(), "act_123").Return([]*domain.AdSet{
		{ExternalID: "set_1", CampaignExternalID: "cmp_1"},
		{ExternalID: "set_orfao", CampaignExternalID: "cmp_inexistente"},
	}, nil)
	m.adSetRepo.EXPECT().SaveOrUpdate(gomock.Any()).DoAndReturn(func(a *domain.AdSet) (string, error) {
		assert.Equal(t, "id_cmp_1", a.CampaignID)
		return "id_" + a.ExternalID, nil
	}).Times(1)

	// Um anúncio aponta para o conjunto pulado e também deve ser pulado
	m.integrator.EXPECT().FetchAds(gomock.Any(), "act_123").Return([]*domain.Ad{
		{ExternalID: "ad_1", AdSetExternalID: "set_1"},
		{ExternalID: "ad_orfao", AdSetExternalID: "set_orfao"},
	}, nil)
	m.adRepo.EXPECT().SaveOrUpdate(gomock.Any()).DoAndReturn(func(a *domain.Ad) (string, error) {
		assert.Equal(t, "id_set_1", a.AdSetID)
		return "id_" + a.ExternalID, nil
	}).Times(1)

	m.integrator.EXPECT().FetchAudiences(gomock.Any(), "act_123").Return(nil, nil)
	m.integrator.EXPECT().FetchMetrics(gomock.Any(), "act_123", gomock.Any(), gomock.Any()).Return(nil, nil)
	m.performanceRepo.EXPECT().SaveBatch(gomock.Any()).Return(0, nil)

	service := newServiceForTest(m)

	summary, err := service.Sync(context.Background(), validRequest())

	assert.NoError(t, err)
	assert.Equal(t, 2, summary.CampaignsUpserted)
	assert.Equal(t, 1, summary.AdSetsUpserted)
	assert.Equal(t, 1, summary.AdsUpserted)
	assert.Len(t, summary.Warnings, 2)
	assert.Contains(t, summary.Warnings[0], "set_orfao")
	assert.Contains(t, summary.Warnings[1], "ad_orfao")
}

func TestSyncCreativeFailureDoesNotBlockAd(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newSyncMocks(ctrl)
	expectBaseline(m)

	m.integrator.EXPECT().FetchCampaigns(gomock.Any(), "act_123").Return([]*domain.Campaign{
		{ExternalID: "cmp_1"},
	}, nil)
	m.campaignRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return("id_cmp_1", nil)

	m.integrator.EXPECT().FetchAdSets(gomock.Any(), "act_123").Return([]*domain.AdSet{
		{ExternalID: "set_1", CampaignExternalID: "cmp_1"},
	}, nil)
	m.adSetRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return("id_set_1", nil)

	m.integrator.EXPECT().FetchAds(gomock.Any(), "act_123").Return([]*domain.Ad{
		{ExternalID: "ad_1", AdSetExternalID: "set_1", CreativeExternalID: "cr_ok"},
		{ExternalID: "ad_2", AdSetExternalID: "set_1", CreativeExternalID: "cr_falha"},
	}, nil)

	// Apenas um dos dois criativos é resolvido; a falha vira warning
	m.integrator.EXPECT().ResolveCreatives(gomock.Any(), "ws_01", []string{"cr_ok", "cr_falha"}).
		Return(
			[]*domain.CreativeAsset{{ExternalID: "cr_ok", Name: "Criativo OK"}},
			[]string{"falha ao buscar o criativo cr_falha"},
		)
	m.creativeRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return("id_cr_ok", nil)

	var savedAds []*domain.Ad
	m.adRepo.EXPECT().SaveOrUpdate(gomock.Any()).DoAndReturn(func(a *domain.Ad) (string, error) {
		savedAds = append(savedAds, a)
		return "id_" + a.ExternalID, nil
	}).Times(2)

	m.integrator.EXPECT().FetchAudiences(gomock.Any(), "act_123").Return(nil, nil)
	m.integrator.EXPECT().FetchMetrics(gomock.Any(), "act_123", gomock.Any(), gomock.Any()).Return(nil, nil)
	m.performanceRepo.EXPECT().SaveBatch(gomock.Any()).Return(0, nil)

	service := newServiceForTest(m)

	summary, err := service.Sync(context.Background(), validRequest())

	assert.NoError(t, err)
	assert.Equal(t, 2, summary.AdsUpserted)
	assert.Equal(t, 1, summary.CreativesUpserted)
	assert.Len(t, summary.Warnings, 1)

	// O anúncio com criativo resolvido ganha o vínculo; o outro fica nulo
	assert.NotNil(t, savedAds[0].CreativeAssetID)
	assert.Equal(t, "id_cr_ok", *savedAds[0].CreativeAssetID)
	assert.Nil(t, savedAds[1].CreativeAssetID)
}

func TestSyncDeduplicatesRepeatedPageItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newSyncMocks(ctrl)
	expectBaseline(m)

	// A mesma campanha repetida na fronteira do cursor gera um único upsert
	m.integrator.EXPECT().FetchCampaigns(gomock.Any(), "act_123").Return([]*domain.Campaign{
		{ExternalID: "cmp_1", Name: "Primeira ocorrência"},
		{ExternalID: "cmp_1", Name: "Repetida"},
	}, nil)
	m.campaignRepo.EXPECT().SaveOrUpdate(gomock.Any()).DoAndReturn(func(c *domain.Campaign) (string, error) {
		assert.Equal(t, "Primeira ocorrência", c.Name)
		return "id_cmp_1", nil
	}).Times(1)

	m.integrator.EXPECT().FetchAdSets(gomock.Any(), "act_123").Return(nil, nil)
	m.integrator.EXPECT().FetchAds(gomock.Any(), "act_123").Return(nil, nil)
	m.integrator.EXPECT().FetchAudiences(gomock.Any(), "act_123").Return(nil, nil)
	m.integrator.EXPECT().FetchMetrics(gomock.Any(), "act_123", gomock.Any(), gomock.Any()).Return(nil, nil)
	m.performanceRepo.EXPECT().SaveBatch(gomock.Any()).Return(0, nil)

	service := newServiceForTest(m)

	summary, err := service.Sync(context.Background(), validRequest())

	assert.NoError(t, err)
	assert.Equal(t, 1, summary.CampaignsUpserted)
	assert.Empty(t, summary.Warnings)
}

func TestSyncRepeatedRunIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newSyncMocks(ctrl)

	// Mesma resposta da plataforma nas duas execuções: a segunda gera
	// exatamente os mesmos upserts e o mesmo resumo, nenhuma escrita extra
	m.integrator.EXPECT().Platform().Return("meta").AnyTimes()
	m.integrationRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return("int_01", nil).Times(2)
	m.integrator.EXPECT().FetchAccount(gomock.Any(), "act_123").
		Return(&domain.PlatformAccount{ExternalID: "act_123", Name: "Conta Teste"}, nil).Times(2)
	m.accountRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return("acc_01", nil).Times(2)

	m.integrator.EXPECT().FetchCampaigns(gomock.Any(), "act_123").Return([]*domain.Campaign{
		{ExternalID: "cmp_1", Name: "Campanha"},
	}, nil).Times(2)
	m.campaignRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return("id_cmp_1", nil).Times(2)

	m.integrator.EXPECT().FetchAdSets(gomock.Any(), "act_123").Return([]*domain.AdSet{
		{ExternalID: "set_1", CampaignExternalID: "cmp_1"},
	}, nil).Times(2)
	m.adSetRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return("id_set_1", nil).Times(2)

	m.integrator.EXPECT().FetchAds(gomock.Any(), "act_123").Return([]*domain.Ad{
		{ExternalID: "ad_1", AdSetExternalID: "set_1", CreativeExternalID: "cr_1"},
	}, nil).Times(2)
	m.integrator.EXPECT().ResolveCreatives(gomock.Any(), "ws_01", []string{"cr_1"}).
		Return([]*domain.CreativeAsset{{ExternalID: "cr_1", Name: "Criativo"}}, nil).Times(2)
	m.creativeRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return("id_cr_1", nil).Times(2)
	m.adRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return("id_ad_1", nil).Times(2)

	m.integrator.EXPECT().FetchAudiences(gomock.Any(), "act_123").Return([]*domain.Audience{
		{ExternalID: "aud_1", Name: "Público"},
	}, nil).Times(2)
	m.audienceRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return("id_aud_1", nil).Times(2)

	date := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	m.integrator.EXPECT().FetchMetrics(gomock.Any(), "act_123", gomock.Any(), gomock.Any()).
		Return([]*domain.PerformanceMetric{
			{CampaignExternalID: "cmp_1", Granularity: domain.GranularityDaily, Date: date, Spend: 10.0},
		}, nil).Times(2)
	m.performanceRepo.EXPECT().SaveBatch(gomock.Any()).Return(1, nil).Times(2)

	service := newServiceForTest(m)

	first, err := service.Sync(context.Background(), validRequest())
	assert.NoError(t, err)

	second, err := service.Sync(context.Background(), validRequest())
	assert.NoError(t, err)

	assert.Equal(t, first.CampaignsUpserted, second.CampaignsUpserted)
	assert.Equal(t, first.AdSetsUpserted, second.AdSetsUpserted)
	assert.Equal(t, first.AdsUpserted, second.AdsUpserted)
	assert.Equal(t, first.CreativesUpserted, second.CreativesUpserted)
	assert.Equal(t, first.AudiencesUpserted, second.AudiencesUpserted)
	assert.Equal(t, first.PerformanceRowsWritten, second.PerformanceRowsWritten)
	assert.Empty(t, first.Warnings)
	assert.Empty(t, second.Warnings)
}

func TestSyncMetricsResolveInternalIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newSyncMocks(ctrl)
	expectBaseline(m)

	m.integrator.EXPECT().FetchCampaigns(gomock.Any(), "act_123").Return([]*domain.Campaign{
		{ExternalID: "cmp_1"},
	}, nil)
	m.campaignRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return("id_cmp_1", nil)

	m.integrator.EXPECT().FetchAdSets(gomock.Any(), "act_123").Return([]*domain.AdSet{
		{ExternalID: "set_1", CampaignExternalID: "cmp_1"},
	}, nil)
	m.adSetRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return("id_set_1", nil)

	m.integrator.EXPECT().FetchAds(gomock.Any(), "act_123").Return(nil, nil)
	m.integrator.EXPECT().FetchAudiences(gomock.Any(), "act_123").Return(nil, nil)

	date := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)

	m.integrator.EXPECT().FetchMetrics(gomock.Any(), "act_123", gomock.Any(), gomock.Any()).
		Return([]*domain.PerformanceMetric{
			{CampaignExternalID: "cmp_1", Granularity: domain.GranularityDaily, Date: date, Spend: 10.0},
			{CampaignExternalID: "cmp_1", AdSetExternalID: "set_1", Granularity: domain.GranularityDaily, Date: date, Spend: 4.0},
			// Campanha não sincronizada: linha pulada com warning
			{CampaignExternalID: "cmp_fantasma", Granularity: domain.GranularityDaily, Date: date, Spend: 1.0},
		}, nil)

	m.performanceRepo.EXPECT().SaveBatch(gomock.Any()).DoAndReturn(func(rows []*domain.PerformanceMetric) (int, error) {
		assert.Len(t, rows, 2)
		assert.Equal(t, "acc_01", rows[0].AccountID)
		assert.Equal(t, "id_cmp_1", rows[0].CampaignID)
		assert.Nil(t, rows[0].AdSetID)
		assert.NotNil(t, rows[1].AdSetID)
		assert.Equal(t, "id_set_1", *rows[1].AdSetID)
		return len(rows), nil
	})

	service := newServiceForTest(m)

	summary, err := service.Sync(context.Background(), validRequest())

	assert.NoError(t, err)
	assert.Equal(t, 2, summary.PerformanceRowsWritten)
	assert.Len(t, summary.Warnings, 1)
	assert.Contains(t, summary.Warnings[0], "cmp_fantasma")
}

func TestSyncFatalErrorsAbortTheRun(t *testing.T) {
	tests := []struct {
		name  string
		setup func(m *syncMocks)
	}{
		{
			name: "erro ao salvar a integração",
			setup: func(m *syncMocks) {
				m.integrator.EXPECT().Platform().Return("meta").AnyTimes()
				m.integrationRepo.EXPECT().SaveOrUpdate(gomock.Any()).
					Return("", errors.New("conexão recusada"))
			},
		},
		{
			name: "erro da API ao buscar a conta",
			setup: func(m *syncMocks) {
				m.integrator.EXPECT().Platform().Return("meta").AnyTimes()
				m.integrationRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return("int_01", nil)
				m.integrator.EXPECT().FetchAccount(gomock.Any(), "act_123").
					Return(nil, errors.New("token expirado"))
			},
		},
		{
			name: "erro de banco ao salvar campanha",
			setup: func(m *syncMocks) {
				expectBaseline(m)
				m.integrator.EXPECT().FetchCampaigns(gomock.Any(), "act_123").
					Return([]*domain.Campaign{{ExternalID: "cmp_1"}}, nil)
				m.campaignRepo.EXPECT().SaveOrUpdate(gomock.Any()).
					Return("", errors.New("deadlock detectado"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newSyncMocks(ctrl)
			tt.setup(m)

			service := newServiceForTest(m)

			summary, err := service.Sync(context.Background(), validRequest())

			assert.Error(t, err)
			assert.Nil(t, summary)
		})
	}
}

func TestSyncCancelledContextStopsBetweenStages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newSyncMocks(ctrl)
	m.integrator.EXPECT().Platform().Return("meta").AnyTimes()
	m.integrationRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return("int_01", nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	service := newServiceForTest(m)

	summary, err := service.Sync(ctx, validRequest())

	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, summary)
}
