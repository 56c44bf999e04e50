package meta

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-sync-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-sync-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-sync-api/infrastructure/storage"
	"github.com/vfg2006/ads-sync-api/internal/config"
	"github.com/vfg2006/ads-sync-api/internal/domain"
	"github.com/vfg2006/ads-sync-api/pkg/utils"
)

const Platform = "meta"

// MetaIntegrator busca entidades da Graph API e as converte para o
// modelo canônico, normalizando status, orçamentos e datas
type MetaIntegrator struct {
	cfg      *config.Config
	Client   metaclient.Client
	uploader storage.Uploader
}

func New(cfg *config.Config, client metaclient.Client, uploader storage.Uploader) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:      cfg,
		Client:   client,
		uploader: uploader,
	}
}

func (s *MetaIntegrator) Platform() string {
	return Platform
}

// FetchAccount busca os detalhes da conta e converte para o modelo
// canônico. O Status numérico da Meta (1 = ativa) vira o enum interno.
func (s *MetaIntegrator) FetchAccount(ctx context.Context, accountExternalID string) (*domain.PlatformAccount, error) {
	raw, err := s.Client.GetAdAccountByID(ctx, accountExternalID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_external_id": accountExternalID,
			"error":               err.Error(),
		}).Error("sync: falha ao buscar conta de anúncios na API")
		return nil, err
	}

	status := domain.StatusActive
	if raw.AccountStatus != 0 && raw.AccountStatus != 1 {
		status = domain.StatusPaused
	}

	return &domain.PlatformAccount{
		ExternalID: raw.AccountID,
		Name:       raw.Name,
		Currency:   raw.Currency,
		Timezone:   raw.TimezoneName,
		Status:     status,
		Metadata: domain.Metadata{
			"graph_id":       raw.ID,
			"account_status": raw.AccountStatus,
		},
	}, nil
}

// FetchCampaigns busca e normaliza todas as campanhas da conta
func (s *MetaIntegrator) FetchCampaigns(ctx context.Context, accountExternalID string) ([]*domain.Campaign, error) {
	rawCampaigns, err := s.Client.ListCampaignsByAccountID(ctx, accountExternalID)
	if err != nil {
		return nil, err
	}

	campaigns := make([]*domain.Campaign, 0, len(rawCampaigns))
	for _, raw := range rawCampaigns {
		status := NormalizeStatus(raw.Status, EntityKindCampaign)

		settings := domain.Metadata{}
		if raw.EffectiveStatus != "" {
			settings["effective_status"] = raw.EffectiveStatus
		}
		if len(raw.SpecialAdCategories) > 0 {
			settings["special_ad_categories"] = raw.SpecialAdCategories
		}

		budget := parseMinorUnits(raw.DailyBudget)
		if budget == nil {
			budget = parseMinorUnits(raw.LifetimeBudget)
		}

		campaigns = append(campaigns, &domain.Campaign{
			ExternalID: raw.ID,
			Name:       raw.Name,
			Status:     status,
			Objective:  raw.Objective,
			StartDate:  parseMetaTime(raw.StartTime),
			EndDate:    parseMetaTime(raw.StopTime),
			Budget:     budget,
			Settings:   settings,
			Archived:   status == domain.StatusArchived,
		})
	}

	return campaigns, nil
}

// FetchAdSets busca e normaliza todos os conjuntos de anúncios da conta.
// Sem orçamento próprio, o conjunto herda o da campanha (budget_type
// "campaign").
func (s *MetaIntegrator) FetchAdSets(ctx context.Context, accountExternalID string) ([]*domain.AdSet, error) {
	rawAdSets, err := s.Client.ListAdSetsByAccountID(ctx, accountExternalID)
	if err != nil {
		return nil, err
	}

	adSets := make([]*domain.AdSet, 0, len(rawAdSets))
	for _, raw := range rawAdSets {
		budgetType := domain.BudgetTypeCampaign
		budget := parseMinorUnits(raw.DailyBudget)
		if budget != nil {
			budgetType = domain.BudgetTypeDaily
		} else if budget = parseMinorUnits(raw.LifetimeBudget); budget != nil {
			budgetType = domain.BudgetTypeLifetime
		}

		adSets = append(adSets, &domain.AdSet{
			CampaignExternalID: raw.CampaignID,
			ExternalID:         raw.ID,
			Name:               raw.Name,
			Status:             NormalizeStatus(raw.Status, EntityKindAdSet),
			BidStrategy:        raw.BidStrategy,
			BudgetType:         budgetType,
			Budget:             budget,
			StartDate:          parseMetaTime(raw.StartTime),
			EndDate:            parseMetaTime(raw.EndTime),
			Targeting:          rawToMetadata(raw.Targeting),
		})
	}

	return adSets, nil
}

// FetchAds busca e normaliza todos os anúncios da conta
func (s *MetaIntegrator) FetchAds(ctx context.Context, accountExternalID string) ([]*domain.Ad, error) {
	rawAds, err := s.Client.ListAdsByAccountID(ctx, accountExternalID)
	if err != nil {
		return nil, err
	}

	ads := make([]*domain.Ad, 0, len(rawAds))
	for _, raw := range rawAds {
		ad := &domain.Ad{
			AdSetExternalID: raw.AdsetID,
			ExternalID:      raw.ID,
			Name:            raw.Name,
			Status:          NormalizeStatus(raw.Status, EntityKindAd),
			Metadata:        domain.Metadata{},
		}

		if raw.Creative != nil {
			ad.CreativeExternalID = raw.Creative.ID
			ad.Metadata["creative_external_id"] = raw.Creative.ID
		}

		ads = append(ads, ad)
	}

	return ads, nil
}

// FetchAudiences busca e normaliza os públicos customizados da conta. O
// delivery_status 200 da Meta indica público utilizável.
func (s *MetaIntegrator) FetchAudiences(ctx context.Context, accountExternalID string) ([]*domain.Audience, error) {
	rawAudiences, err := s.Client.ListAudiencesByAccountID(ctx, accountExternalID)
	if err != nil {
		return nil, err
	}

	audiences := make([]*domain.Audience, 0, len(rawAudiences))
	for _, raw := range rawAudiences {
		status := domain.StatusActive
		if raw.DeliveryStatus != nil && raw.DeliveryStatus.Code != 200 {
			status = domain.StatusPaused
		}

		metadata := domain.Metadata{}
		if raw.DeliveryStatus != nil {
			metadata["delivery_status"] = raw.DeliveryStatus.Code
		}
		if raw.OperationStatus != nil {
			metadata["operation_status"] = raw.OperationStatus.Code
		}

		audiences = append(audiences, &domain.Audience{
			ExternalID:   raw.ID,
			Name:         raw.Name,
			Kind:         raw.Subtype,
			Status:       status,
			SizeEstimate: raw.ApproximateCountLowerBound,
			Metadata:     metadata,
		})
	}

	return audiences, nil
}

// Níveis de insight buscados por execução. Uma linha por entidade por
// dia em cada nível; linhas de níveis diferentes não colidem porque
// ad_set_id/ad_id nulos fazem parte da chave.
var insightLevels = []string{"campaign", "adset", "ad"}

// FetchMetrics busca as métricas diárias da conta nos três níveis e as
// converte em linhas de performance com taxas derivadas calculadas
func (s *MetaIntegrator) FetchMetrics(ctx context.Context, accountExternalID string, since, until time.Time) ([]*domain.PerformanceMetric, error) {
	metrics := make([]*domain.PerformanceMetric, 0)

	for _, level := range insightLevels {
		rawInsights, err := s.Client.ListInsightsByAccountID(ctx, accountExternalID, level, since, until)
		if err != nil {
			return nil, err
		}

		for _, raw := range rawInsights {
			metric := factoryPerformanceMetric(&raw)
			if metric == nil {
				continue
			}
			metrics = append(metrics, metric)
		}
	}

	return metrics, nil
}

// Tipos de ação considerados conversão, em ordem de preferência
var conversionActionTypes = []string{
	"offsite_conversion.fb_pixel_purchase",
	"purchase",
	"lead",
	"offsite_conversion",
}

// factoryPerformanceMetric converte uma linha de insight crua em métrica
// canônica. Valores numéricos inválidos geram warning e viram zero, sem
// derrubar a linha.
func factoryPerformanceMetric(raw *metadomain.Insight) *domain.PerformanceMetric {
	date, err := time.Parse(time.DateOnly, raw.DateStart)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"date_start": raw.DateStart,
			"error":      err.Error(),
		}).Warn("sync: linha de insight sem data válida, ignorando")
		return nil
	}

	impressions := parseInt(raw.Impressions, "impressions")
	clicks := parseInt(raw.Clicks, "clicks")
	spend := parseFloat(raw.Spend, "spend")

	conversions, conversionValue := extractConversions(raw)

	metric := &domain.PerformanceMetric{
		CampaignExternalID: raw.CampaignID,
		AdSetExternalID:    raw.AdsetID,
		AdExternalID:       raw.AdID,
		Granularity:        domain.GranularityDaily,
		Date:               date,
		Impressions:        impressions,
		Clicks:             clicks,
		Spend:              spend,
		Conversions:        conversions,
		ConversionValue:    conversionValue,
	}

	if impressions > 0 {
		metric.CPM = utils.RoundWithTwoDecimalPlace(spend / float64(impressions) * 1000)
		metric.CTR = utils.RoundWithTwoDecimalPlace(float64(clicks) / float64(impressions) * 100)
	}
	if clicks > 0 {
		metric.CPC = utils.RoundWithTwoDecimalPlace(spend / float64(clicks))
	}
	if conversions > 0 {
		metric.CPA = utils.RoundWithTwoDecimalPlace(spend / float64(conversions))
	}
	if spend > 0 && conversionValue > 0 {
		metric.ROAS = utils.RoundWithTwoDecimalPlace(conversionValue / spend)
	}

	if len(raw.Actions) > 0 {
		extra := domain.Metadata{}
		for _, action := range raw.Actions {
			extra[action.ActionType] = action.Value
		}
		metric.ExtraMetrics = extra
	}

	return metric
}

func extractConversions(raw *metadomain.Insight) (int64, float64) {
	actions := make(map[string]string, len(raw.Actions))
	for _, action := range raw.Actions {
		actions[action.ActionType] = action.Value
	}

	values := make(map[string]string, len(raw.ActionValues))
	for _, action := range raw.ActionValues {
		values[action.ActionType] = action.Value
	}

	for _, actionType := range conversionActionTypes {
		if v, ok := actions[actionType]; ok {
			conversions := parseInt(v, actionType)
			conversionValue := 0.0
			if vv, ok := values[actionType]; ok {
				conversionValue = parseFloat(vv, actionType)
			}
			return conversions, conversionValue
		}
	}

	return 0, 0
}

// parseMinorUnits converte um orçamento em centavos (string) para a
// unidade principal da moeda. Retorna nil quando ausente ou inválido.
func parseMinorUnits(value string) *float64 {
	if value == "" {
		return nil
	}

	cents, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"budget_value": value,
			"error":        err.Error(),
		}).Warn("sync: erro ao converter orçamento")
		return nil
	}

	major := float64(cents) / 100
	return &major
}

const metaTimeLayout = "2006-01-02T15:04:05-0700"

func parseMetaTime(value string) *time.Time {
	if value == "" {
		return nil
	}

	for _, layout := range []string{metaTimeLayout, time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return &t
		}
	}

	logrus.WithField("time_value", value).Warn("sync: erro ao converter data da Graph API")
	return nil
}

func parseInt(value, field string) int64 {
	if value == "" {
		return 0
	}

	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"field": field,
			"value": value,
			"error": err.Error(),
		}).Warn("sync: erro ao converter valor inteiro")
		return 0
	}

	return n
}

func parseFloat(value, field string) float64 {
	if value == "" {
		return 0
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"field": field,
			"value": value,
			"error": err.Error(),
		}).Warn("sync: erro ao converter valor decimal")
		return 0
	}

	return f
}

func rawToMetadata(raw json.RawMessage) domain.Metadata {
	if len(raw) == 0 {
		return nil
	}

	metadata := domain.Metadata{}
	if err := json.Unmarshal(raw, &metadata); err != nil {
		logrus.WithError(err).Warn("sync: erro ao decodificar metadata opaco")
		return nil
	}

	return metadata
}
