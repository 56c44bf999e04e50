package meta

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/vfg2006/ads-sync-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-sync-api/infrastructure/integrator/meta/metaclient/mocks"
	"github.com/vfg2006/ads-sync-api/internal/config"
	"github.com/vfg2006/ads-sync-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestDeriveCreativeKind(t *testing.T) {
	tests := []struct {
		name     string
		creative *metadomain.Creative
		expected domain.CreativeKind
	}{
		{
			name:     "Vídeo por video_id tem prioridade máxima",
			creative: &metadomain.Creative{VideoID: "v1", ImageURL: "http://img"},
			expected: domain.CreativeKindVideo,
		},
		{
			name: "Vídeo embutido no story spec",
			creative: &metadomain.Creative{
				ObjectStorySpec: &metadomain.ObjectStorySpec{VideoData: &metadomain.VideoData{VideoID: "v2"}},
			},
			expected: domain.CreativeKindVideo,
		},
		{
			name: "Carrossel vence imagem",
			creative: &metadomain.Creative{
				ImageURL: "http://img",
				ObjectStorySpec: &metadomain.ObjectStorySpec{
					LinkData: &metadomain.LinkData{ChildAttachments: []metadomain.ChildAttachment{{Name: "cartão"}}},
				},
			},
			expected: domain.CreativeKindCarousel,
		},
		{
			name: "Imagem por photo_data",
			creative: &metadomain.Creative{
				ObjectStorySpec: &metadomain.ObjectStorySpec{PhotoData: &metadomain.PhotoData{URL: "http://foto"}},
			},
			expected: domain.CreativeKindImage,
		},
		{
			name:     "Imagem por URL simples",
			creative: &metadomain.Creative{ImageURL: "http://img"},
			expected: domain.CreativeKindImage,
		},
		{
			name:     "Sem nenhum sinal vira texto",
			creative: &metadomain.Creative{Body: "só texto"},
			expected: domain.CreativeKindText,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, deriveCreativeKind(tt.creative))
		})
	}
}

func TestExtractTextContent(t *testing.T) {
	creative := &metadomain.Creative{
		Title: "título",
		ObjectStorySpec: &metadomain.ObjectStorySpec{
			LinkData: &metadomain.LinkData{
				Description: "descrição do link",
			},
		},
	}

	// Body vazio: a descrição do link vem antes do título
	assert.Equal(t, "descrição do link", extractTextContent(creative))

	creative.Body = "corpo do anúncio"
	assert.Equal(t, "corpo do anúncio", extractTextContent(creative))

	vazio := &metadomain.Creative{}
	assert.Equal(t, "", extractTextContent(vazio))
}

func TestResolveCreatives(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)

	cfg := &config.Config{
		Sync: config.Sync{CreativeWorkers: 2},
	}
	integrator := New(cfg, mockClient, nil)

	mockClient.EXPECT().
		GetCreativeByID(gomock.Any(), "cr1").
		Return(&metadomain.Creative{
			ID:       "cr1",
			Name:     "Criativo Um",
			ImageURL: "http://cdn.example/cr1.jpg",
		}, nil)

	// Falha de rede em um criativo individual não aborta o lote
	mockClient.EXPECT().
		GetCreativeByID(gomock.Any(), "cr2").
		Return(nil, errors.New("connection reset"))

	assets, warnings := integrator.ResolveCreatives(context.Background(), "ws1", []string{"cr1", "cr2"})

	require.Len(t, assets, 1)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "cr2")

	asset := assets[0]
	assert.Equal(t, "cr1", asset.ExternalID)
	assert.Equal(t, "ws1", asset.WorkspaceID)
	assert.Equal(t, domain.CreativeKindImage, asset.Kind)
	assert.Equal(t, "cr1", asset.ContentHash)
	assert.Equal(t, "cr1", asset.Metadata["external_id"])

	// Sem uploader configurado o espelhamento é pulado e a URL remota
	// é mantida
	require.NotNil(t, asset.StorageURL)
	assert.Equal(t, "http://cdn.example/cr1.jpg", *asset.StorageURL)
}

func TestBuildCreativeAsset_NomeSintetizadoQuandoAusente(t *testing.T) {
	cfg := &config.Config{Sync: config.Sync{CreativeWorkers: 1}}
	integrator := New(cfg, nil, nil)

	asset := integrator.buildCreativeAsset(context.Background(), "ws1", &metadomain.Creative{ID: "123"})

	assert.Equal(t, "Creative 123", asset.Name)
	assert.Equal(t, domain.CreativeKindText, asset.Kind)
	assert.Nil(t, asset.StorageURL)
}
