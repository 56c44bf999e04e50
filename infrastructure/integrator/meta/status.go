package meta

import (
	"strings"

	"github.com/vfg2006/ads-sync-api/internal/domain"
)

// EntityKind identifica o tipo de entidade para fins de normalização de
// status. O default de status desconhecido depende do tipo.
type EntityKind string

const (
	EntityKindAccount  EntityKind = "account"
	EntityKindCampaign EntityKind = "campaign"
	EntityKindAdSet    EntityKind = "ad_set"
	EntityKindAd       EntityKind = "ad"
	EntityKindAudience EntityKind = "audience"
)

// Vocabulário de status da Meta -> enum canônico
var metaStatusTable = map[string]domain.Status{
	"ACTIVE":          domain.StatusActive,
	"PAUSED":          domain.StatusPaused,
	"CAMPAIGN_PAUSED": domain.StatusPaused,
	"ADSET_PAUSED":    domain.StatusPaused,
	"WITH_ISSUES":     domain.StatusPaused,
	"DISAPPROVED":     domain.StatusPaused,
	"ARCHIVED":        domain.StatusArchived,
	"DELETED":         domain.StatusArchived,
	"COMPLETED":       domain.StatusCompleted,
	"IN_PROCESS":      domain.StatusDraft,
	"PENDING_REVIEW":  domain.StatusDraft,
	"PREAPPROVED":     domain.StatusDraft,
	"DRAFT":           domain.StatusDraft,
}

// NormalizeStatus mapeia um status da Meta para o enum canônico. É uma
// função total: nunca falha, porque um status desconhecido jamais deve
// abortar uma sincronização que de resto deu certo. O default por tipo:
// contas e públicos nascem "active" (a plataforma só os lista quando
// utilizáveis); campanhas, conjuntos e anúncios desconhecidos viram
// "draft", o valor mais conservador.
func NormalizeStatus(raw string, kind EntityKind) domain.Status {
	key := strings.ToUpper(strings.TrimSpace(raw))

	if status, ok := metaStatusTable[key]; ok {
		return status
	}

	switch kind {
	case EntityKindAccount, EntityKindAudience:
		return domain.StatusActive
	default:
		return domain.StatusDraft
	}
}
