package meta

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-sync-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-sync-api/internal/domain"
	"github.com/vfg2006/ads-sync-api/pkg/utils"
)

// ResolveCreatives busca os detalhes de cada criativo referenciado pelos
// anúncios e monta os assets canônicos. As buscas são independentes e
// somente leitura, então rodam em um pool limitado de workers; a escrita
// no banco fica a cargo do orquestrador, em fase única.
//
// Falha de um criativo individual vira warning e o criativo é descartado
// do lote; os anúncios que o referenciam seguem sendo sincronizados sem
// referência de criativo.
func (s *MetaIntegrator) ResolveCreatives(ctx context.Context, workspaceID string, creativeIDs []string) ([]*domain.CreativeAsset, []string) {
	workers := s.cfg.Sync.CreativeWorkers
	if workers < 1 {
		workers = 1
	}

	semaphore := make(chan struct{}, workers)
	var wg sync.WaitGroup
	var mu sync.Mutex

	assets := make([]*domain.CreativeAsset, 0, len(creativeIDs))
	warnings := make([]string, 0)

	for _, creativeID := range creativeIDs {
		if err := ctx.Err(); err != nil {
			break
		}

		wg.Add(1)
		semaphore <- struct{}{}

		go func(id string) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			raw, err := s.Client.GetCreativeByID(ctx, id)
			if err != nil {
				logrus.WithFields(logrus.Fields{
					"creative_id": id,
					"error":       err.Error(),
				}).Warn("sync: falha ao buscar criativo, descartando do lote")

				mu.Lock()
				warnings = append(warnings, fmt.Sprintf("criativo %s: %v", id, err))
				mu.Unlock()
				return
			}

			asset := s.buildCreativeAsset(ctx, workspaceID, raw)

			mu.Lock()
			assets = append(assets, asset)
			mu.Unlock()
		}(creativeID)
	}

	wg.Wait()

	logrus.WithFields(logrus.Fields{
		"requested": len(creativeIDs),
		"resolved":  len(assets),
		"failed":    len(warnings),
	}).Info("sync: resolução de criativos concluída")

	return assets, warnings
}

// buildCreativeAsset monta o payload canônico de um criativo
func (s *MetaIntegrator) buildCreativeAsset(ctx context.Context, workspaceID string, raw *metadomain.Creative) *domain.CreativeAsset {
	kind := deriveCreativeKind(raw)
	thumbnailURL := selectThumbnail(raw)

	name := raw.Name
	if name == "" {
		name = fmt.Sprintf("Creative %s", raw.ID)
	}

	metadata := domain.Metadata{
		"external_id": raw.ID,
	}
	if len(raw.RawSpec) > 0 {
		metadata["object_story_spec"] = string(raw.RawSpec)
	}

	asset := &domain.CreativeAsset{
		WorkspaceID:  workspaceID,
		ExternalID:   raw.ID,
		Name:         name,
		Kind:         kind,
		ThumbnailURL: thumbnailURL,
		TextContent:  extractTextContent(raw),
		// TODO trocar por hash do conteúdo quando o download do asset
		// original for incorporado ao espelhamento
		ContentHash: raw.ID,
		Metadata:    metadata,
	}

	// Espelhamento é melhor-esforço: falha vira URL remota
	if mirrored := s.mirrorCreativeImage(ctx, raw.ID, thumbnailURL); mirrored != nil {
		asset.StorageURL = mirrored
	} else if remote := firstNonEmpty(raw.ImageURL, thumbnailURL); remote != "" {
		asset.StorageURL = &remote
	}

	return asset
}

// deriveCreativeKind deriva o tipo do criativo a partir do sinal mais
// rico disponível: vídeo > carrossel > imagem embutida > URL de imagem >
// texto
func deriveCreativeKind(raw *metadomain.Creative) domain.CreativeKind {
	spec := raw.ObjectStorySpec

	if raw.VideoID != "" || (spec != nil && spec.VideoData != nil) {
		return domain.CreativeKindVideo
	}

	if spec != nil && spec.LinkData != nil && len(spec.LinkData.ChildAttachments) > 0 {
		return domain.CreativeKindCarousel
	}

	if spec != nil && spec.PhotoData != nil {
		return domain.CreativeKindImage
	}

	if raw.ImageURL != "" {
		return domain.CreativeKindImage
	}

	return domain.CreativeKindText
}

// selectThumbnail escolhe a URL de thumbnail: campo explícito primeiro,
// depois a imagem principal, depois o que o story spec oferecer
func selectThumbnail(raw *metadomain.Creative) string {
	if raw.ThumbnailURL != "" {
		return raw.ThumbnailURL
	}
	if raw.ImageURL != "" {
		return raw.ImageURL
	}

	if spec := raw.ObjectStorySpec; spec != nil {
		if spec.VideoData != nil && spec.VideoData.ImageURL != "" {
			return spec.VideoData.ImageURL
		}
		if spec.LinkData != nil && spec.LinkData.Picture != "" {
			return spec.LinkData.Picture
		}
		if spec.PhotoData != nil && spec.PhotoData.URL != "" {
			return spec.PhotoData.URL
		}
	}

	return ""
}

// extractTextContent percorre os sub-objetos do criativo em ordem fixa
// de prioridade e retorna o primeiro texto não vazio
func extractTextContent(raw *metadomain.Creative) string {
	candidates := []string{raw.Body}

	if spec := raw.ObjectStorySpec; spec != nil {
		if spec.LinkData != nil {
			candidates = append(candidates, spec.LinkData.Message, spec.LinkData.Description)
		}
		if spec.VideoData != nil {
			candidates = append(candidates, spec.VideoData.Message, spec.VideoData.Title)
		}
		if spec.PhotoData != nil {
			candidates = append(candidates, spec.PhotoData.Caption)
		}
		if spec.LinkData != nil {
			for _, child := range spec.LinkData.ChildAttachments {
				candidates = append(candidates, child.Description, child.Name)
			}
		}
	}

	candidates = append(candidates, raw.Title)

	return firstNonEmpty(candidates...)
}

// mirrorCreativeImage baixa a imagem do criativo e a espelha no
// armazenamento durável. Qualquer falha (rede, cota, URL ausente)
// retorna nil e a sincronização segue com a URL remota.
func (s *MetaIntegrator) mirrorCreativeImage(ctx context.Context, externalID, imageURL string) *string {
	if imageURL == "" || s.uploader == nil {
		return nil
	}

	data, contentType, err := utils.DownloadFile(ctx, imageURL)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"creative_id": externalID,
			"error":       err.Error(),
		}).Warn("sync: falha ao baixar imagem do criativo, mantendo URL remota")
		return nil
	}

	filename := fmt.Sprintf("creatives/%s%s", externalID, extensionForContentType(contentType))

	url, err := s.uploader.Upload(ctx, s.cfg.Storage.Bucket, filename, data, contentType)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"creative_id": externalID,
			"filename":    filename,
			"error":       err.Error(),
		}).Warn("sync: falha ao espelhar imagem do criativo, mantendo URL remota")
		return nil
	}

	return &url
}

func extensionForContentType(contentType string) string {
	switch contentType {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	case "video/mp4":
		return ".mp4"
	default:
		return ".bin"
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
