package syncing

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-sync-api/infrastructure/repository"
	"github.com/vfg2006/ads-sync-api/internal/config"
	"github.com/vfg2006/ads-sync-api/internal/domain"
)

type Service struct {
	cfg               *config.Config
	newIntegrator     IntegratorFactory
	integrationRepo   repository.IntegrationRepository
	accountRepo       repository.AccountRepository
	campaignRepo      repository.CampaignRepository
	adSetRepo         repository.AdSetRepository
	adRepo            repository.AdRepository
	creativeAssetRepo repository.CreativeAssetRepository
	audienceRepo      repository.AudienceRepository
	performanceRepo   repository.PerformanceMetricRepository
}

func NewService(
	cfg *config.Config,
	newIntegrator IntegratorFactory,
	integrationRepo repository.IntegrationRepository,
	accountRepo repository.AccountRepository,
	campaignRepo repository.CampaignRepository,
	adSetRepo repository.AdSetRepository,
	adRepo repository.AdRepository,
	creativeAssetRepo repository.CreativeAssetRepository,
	audienceRepo repository.AudienceRepository,
	performanceRepo repository.PerformanceMetricRepository,
) Syncer {
	return &Service{
		cfg:               cfg,
		newIntegrator:     newIntegrator,
		integrationRepo:   integrationRepo,
		accountRepo:       accountRepo,
		campaignRepo:      campaignRepo,
		adSetRepo:         adSetRepo,
		adRepo:            adRepo,
		creativeAssetRepo: creativeAssetRepo,
		audienceRepo:      audienceRepo,
		performanceRepo:   performanceRepo,
	}
}

// Sync executa a reconciliação completa de uma conta na ordem
// integração -> conta -> campanhas -> conjuntos -> anúncios (com
// criativos antes) -> públicos -> métricas. Filhos cujo pai não foi
// resolvido na mesma execução são pulados com warning, nunca
// persistidos órfãos. Erros de API e de banco abortam a execução;
// falhas por item viram warnings no resumo
func (s *Service) Sync(ctx context.Context, req *domain.SyncRequest) (*domain.SyncSummary, error) {
	if req == nil || req.WorkspaceID == "" || req.AccountExternalID == "" {
		return nil, errors.New("workspace_id e account_external_id são obrigatórios")
	}

	now := time.Now().UTC()
	summary := &domain.SyncSummary{StartedAt: now}
	integrator := s.newIntegrator(req.AccessToken)

	logger := logrus.WithFields(logrus.Fields{
		"workspace_id": req.WorkspaceID,
		"account_id":   req.AccountExternalID,
		"platform":     integrator.Platform(),
	})
	logger.Info("Iniciando sincronização da conta")

	integrationID, err := s.integrationRepo.SaveOrUpdate(&domain.Integration{
		WorkspaceID:  req.WorkspaceID,
		Platform:     integrator.Platform(),
		Status:       domain.StatusActive,
		LastSyncedAt: now,
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao salvar a integração")
	}

	accountID, err := s.syncAccount(ctx, integrator, req, integrationID, now)
	if err != nil {
		return nil, err
	}

	campaignIDs, err := s.syncCampaigns(ctx, integrator, req, accountID, now, summary)
	if err != nil {
		return nil, err
	}

	adSetIDs, err := s.syncAdSets(ctx, integrator, req, campaignIDs, now, summary)
	if err != nil {
		return nil, err
	}

	adIDs, err := s.syncAds(ctx, integrator, req, adSetIDs, now, summary)
	if err != nil {
		return nil, err
	}

	if err := s.syncAudiences(ctx, integrator, req, accountID, now, summary); err != nil {
		return nil, err
	}

	if err := s.syncMetrics(ctx, integrator, req, accountID, campaignIDs, adSetIDs, adIDs, summary); err != nil {
		return nil, err
	}

	summary.CompletedAt = time.Now().UTC()

	logger.WithFields(logrus.Fields{
		"campaigns":        summary.CampaignsUpserted,
		"ad_sets":          summary.AdSetsUpserted,
		"ads":              summary.AdsUpserted,
		"creatives":        summary.CreativesUpserted,
		"audiences":        summary.AudiencesUpserted,
		"performance_rows": summary.PerformanceRowsWritten,
		"warnings":         len(summary.Warnings),
	}).Info("Sincronização concluída")

	return summary, nil
}

func (s *Service) syncAccount(ctx context.Context, integrator PlatformIntegrator, req *domain.SyncRequest, integrationID string, now time.Time) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	account, err := integrator.FetchAccount(ctx, req.AccountExternalID)
	if err != nil {
		return "", errors.Wrap(err, "erro ao buscar a conta na plataforma")
	}

	account.IntegrationID = integrationID
	account.WorkspaceID = req.WorkspaceID
	account.LastSyncedAt = now

	accountID, err := s.accountRepo.SaveOrUpdate(account)
	if err != nil {
		return "", errors.Wrap(err, "erro ao salvar a conta")
	}

	return accountID, nil
}

// syncCampaigns grava as campanhas e devolve o mapa external_id -> ID
// interno usado para resolver os filhos nas etapas seguintes
func (s *Service) syncCampaigns(ctx context.Context, integrator PlatformIntegrator, req *domain.SyncRequest, accountID string, now time.Time, summary *domain.SyncSummary) (map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	campaigns, err := integrator.FetchCampaigns(ctx, req.AccountExternalID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar campanhas na plataforma")
	}

	campaignIDs := make(map[string]string, len(campaigns))

	for _, campaign := range dedupeFirst(campaigns, func(c *domain.Campaign) string { return c.ExternalID }) {
		campaign.AccountID = accountID
		campaign.LastSyncedAt = now

		id, err := s.campaignRepo.SaveOrUpdate(campaign)
		if err != nil {
			return nil, errors.Wrapf(err, "erro ao salvar a campanha %s", campaign.ExternalID)
		}

		campaignIDs[campaign.ExternalID] = id
		summary.CampaignsUpserted++
	}

	return campaignIDs, nil
}

func (s *Service) syncAdSets(ctx context.Context, integrator PlatformIntegrator, req *domain.SyncRequest, campaignIDs map[string]string, now time.Time, summary *domain.SyncSummary) (map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	adSets, err := integrator.FetchAdSets(ctx, req.AccountExternalID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar conjuntos de anúncios na plataforma")
	}

	adSetIDs := make(map[string]string, len(adSets))

	for _, adSet := range dedupeFirst(adSets, func(a *domain.AdSet) string { return a.ExternalID }) {
		campaignID, ok := campaignIDs[adSet.CampaignExternalID]
		if !ok {
			summary.AddWarning(fmt.Sprintf(
				"conjunto de anúncios %s pulado: campanha %s não sincronizada nesta execução",
				adSet.ExternalID, adSet.CampaignExternalID,
			))
			continue
		}

		adSet.CampaignID = campaignID
		adSet.LastSyncedAt = now

		id, err := s.adSetRepo.SaveOrUpdate(adSet)
		if err != nil {
			return nil, errors.Wrapf(err, "erro ao salvar o conjunto de anúncios %s", adSet.ExternalID)
		}

		adSetIDs[adSet.ExternalID] = id
		summary.AdSetsUpserted++
	}

	return adSetIDs, nil
}

// syncAds resolve os criativos antes dos anúncios, para que o vínculo
// creative_asset_id já exista no momento do upsert do anúncio. Um
// criativo que falhou não impede o anúncio: o vínculo fica nulo e a
// falha vira warning
func (s *Service) syncAds(ctx context.Context, integrator PlatformIntegrator, req *domain.SyncRequest, adSetIDs map[string]string, now time.Time, summary *domain.SyncSummary) (map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ads, err := integrator.FetchAds(ctx, req.AccountExternalID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar anúncios na plataforma")
	}

	ads = dedupeFirst(ads, func(a *domain.Ad) string { return a.ExternalID })

	creativeIDs, err := s.syncCreatives(ctx, integrator, req, ads, now, summary)
	if err != nil {
		return nil, err
	}

	adIDs := make(map[string]string, len(ads))

	for _, ad := range ads {
		adSetID, ok := adSetIDs[ad.AdSetExternalID]
		if !ok {
			summary.AddWarning(fmt.Sprintf(
				"anúncio %s pulado: conjunto de anúncios %s não sincronizado nesta execução",
				ad.ExternalID, ad.AdSetExternalID,
			))
			continue
		}

		ad.AdSetID = adSetID
		ad.LastSyncedAt = now

		if ad.CreativeExternalID != "" {
			if creativeID, ok := creativeIDs[ad.CreativeExternalID]; ok {
				ad.CreativeAssetID = &creativeID
			}
		}

		id, err := s.adRepo.SaveOrUpdate(ad)
		if err != nil {
			return nil, errors.Wrapf(err, "erro ao salvar o anúncio %s", ad.ExternalID)
		}

		adIDs[ad.ExternalID] = id
		summary.AdsUpserted++
	}

	return adIDs, nil
}

func (s *Service) syncCreatives(ctx context.Context, integrator PlatformIntegrator, req *domain.SyncRequest, ads []*domain.Ad, now time.Time, summary *domain.SyncSummary) (map[string]string, error) {
	creativeExternalIDs := make([]string, 0, len(ads))
	seen := make(map[string]struct{}, len(ads))

	for _, ad := range ads {
		if ad.CreativeExternalID == "" {
			continue
		}
		if _, ok := seen[ad.CreativeExternalID]; ok {
			continue
		}
		seen[ad.CreativeExternalID] = struct{}{}
		creativeExternalIDs = append(creativeExternalIDs, ad.CreativeExternalID)
	}

	if len(creativeExternalIDs) == 0 {
		return nil, nil
	}

	assets, warnings := integrator.ResolveCreatives(ctx, req.WorkspaceID, creativeExternalIDs)
	for _, warning := range warnings {
		summary.AddWarning(warning)
	}

	creativeIDs := make(map[string]string, len(assets))

	for _, asset := range assets {
		asset.LastSyncedAt = now

		id, err := s.creativeAssetRepo.SaveOrUpdate(asset)
		if err != nil {
			return nil, errors.Wrapf(err, "erro ao salvar o criativo %s", asset.ExternalID)
		}

		creativeIDs[asset.ExternalID] = id
		summary.CreativesUpserted++
	}

	return creativeIDs, nil
}

func (s *Service) syncAudiences(ctx context.Context, integrator PlatformIntegrator, req *domain.SyncRequest, accountID string, now time.Time, summary *domain.SyncSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	audiences, err := integrator.FetchAudiences(ctx, req.AccountExternalID)
	if err != nil {
		return errors.Wrap(err, "erro ao buscar públicos na plataforma")
	}

	for _, audience := range dedupeFirst(audiences, func(a *domain.Audience) string { return a.ExternalID }) {
		audience.AccountID = accountID
		audience.LastSyncedAt = now

		if _, err := s.audienceRepo.SaveOrUpdate(audience); err != nil {
			return errors.Wrapf(err, "erro ao salvar o público %s", audience.ExternalID)
		}

		summary.AudiencesUpserted++
	}

	return nil
}

// syncMetrics resolve os IDs internos de cada linha antes da escrita em
// lote. Linhas que referenciam entidades não sincronizadas nesta
// execução são puladas com warning
func (s *Service) syncMetrics(ctx context.Context, integrator PlatformIntegrator, req *domain.SyncRequest, accountID string, campaignIDs, adSetIDs, adIDs map[string]string, summary *domain.SyncSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	lookbackDays := req.DateRangeDays
	if lookbackDays <= 0 {
		lookbackDays = s.cfg.Sync.LookbackDays
	}

	until := time.Now().UTC().Truncate(24 * time.Hour)
	since := until.AddDate(0, 0, -lookbackDays)

	metrics, err := integrator.FetchMetrics(ctx, req.AccountExternalID, since, until)
	if err != nil {
		return errors.Wrap(err, "erro ao buscar métricas na plataforma")
	}

	resolved := make([]*domain.PerformanceMetric, 0, len(metrics))

	for _, metric := range metrics {
		campaignID, ok := campaignIDs[metric.CampaignExternalID]
		if !ok {
			summary.AddWarning(fmt.Sprintf(
				"métrica de %s pulada: campanha %s não sincronizada nesta execução",
				metric.Date.Format("2006-01-02"), metric.CampaignExternalID,
			))
			continue
		}

		metric.AccountID = accountID
		metric.CampaignID = campaignID

		if metric.AdSetExternalID != "" {
			adSetID, ok := adSetIDs[metric.AdSetExternalID]
			if !ok {
				summary.AddWarning(fmt.Sprintf(
					"métrica de %s pulada: conjunto de anúncios %s não sincronizado nesta execução",
					metric.Date.Format("2006-01-02"), metric.AdSetExternalID,
				))
				continue
			}
			metric.AdSetID = &adSetID
		}

		if metric.AdExternalID != "" {
			adID, ok := adIDs[metric.AdExternalID]
			if !ok {
				summary.AddWarning(fmt.Sprintf(
					"métrica de %s pulada: anúncio %s não sincronizado nesta execução",
					metric.Date.Format("2006-01-02"), metric.AdExternalID,
				))
				continue
			}
			metric.AdID = &adID
		}

		resolved = append(resolved, metric)
	}

	written, err := s.performanceRepo.SaveBatch(resolved)
	if err != nil {
		return errors.Wrap(err, "erro ao gravar o lote de métricas")
	}

	summary.PerformanceRowsWritten = written

	return nil
}

// dedupeFirst remove duplicatas pela chave, mantendo a primeira
// ocorrência. Páginas da API ocasionalmente repetem itens na fronteira
// do cursor; a repetição é silenciosa e não gera warning
func dedupeFirst[T any](items []T, key func(T) string) []T {
	seen := make(map[string]struct{}, len(items))
	deduped := make([]T, 0, len(items))

	for _, item := range items {
		k := key(item)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		deduped = append(deduped, item)
	}

	return deduped
}
