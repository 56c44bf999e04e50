package repository

import (
	"encoding/json"

	"github.com/vfg2006/ads-sync-api/internal/domain"
)

// metadataValue serializa um metadata para a coluna jsonb. Mapas vazios
// viram NULL para não poluir o banco com objetos vazios
func metadataValue(m domain.Metadata) (interface{}, error) {
	if len(m) == 0 {
		return nil, nil
	}

	return json.Marshal(m)
}
