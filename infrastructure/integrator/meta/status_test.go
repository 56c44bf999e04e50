package meta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ads-sync-api/internal/domain"
)

func TestNormalizeStatus(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		kind     EntityKind
		expected domain.Status
	}{
		{
			name:     "Status conhecido é mapeado direto",
			raw:      "ACTIVE",
			kind:     EntityKindCampaign,
			expected: domain.StatusActive,
		},
		{
			name:     "Entrada com espaços e minúsculas é normalizada",
			raw:      "  paused  ",
			kind:     EntityKindAdSet,
			expected: domain.StatusPaused,
		},
		{
			name:     "DELETED vira archived",
			raw:      "DELETED",
			kind:     EntityKindCampaign,
			expected: domain.StatusArchived,
		},
		{
			name:     "Status pausado derivado do pai é mapeado",
			raw:      "CAMPAIGN_PAUSED",
			kind:     EntityKindAd,
			expected: domain.StatusPaused,
		},
		{
			name:     "Desconhecido em campanha vira draft",
			raw:      "ALGUM_STATUS_NOVO",
			kind:     EntityKindCampaign,
			expected: domain.StatusDraft,
		},
		{
			name:     "Desconhecido em conta vira active",
			raw:      "ALGUM_STATUS_NOVO",
			kind:     EntityKindAccount,
			expected: domain.StatusActive,
		},
		{
			name:     "Desconhecido em público vira active",
			raw:      "???",
			kind:     EntityKindAudience,
			expected: domain.StatusActive,
		},
		{
			name:     "Vazio em anúncio vira draft",
			raw:      "",
			kind:     EntityKindAd,
			expected: domain.StatusDraft,
		},
		{
			name:     "Vazio em conta vira active",
			raw:      "",
			kind:     EntityKindAccount,
			expected: domain.StatusActive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NormalizeStatus(tt.raw, tt.kind)
			assert.Equal(t, tt.expected, result)
			assert.True(t, result.IsValid())
		})
	}
}
