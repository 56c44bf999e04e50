package domain

import "time"

// CreativeKind classifica o tipo de criativo derivado da resposta remota
type CreativeKind string

const (
	CreativeKindVideo    CreativeKind = "video"
	CreativeKindImage    CreativeKind = "image"
	CreativeKindCarousel CreativeKind = "carousel"
	CreativeKindText     CreativeKind = "text"
)

// CreativeAsset representa um criativo deduplicado por workspace. O
// external_id vive dentro do metadata (não é coluna própria); o índice
// único usa a expressão (workspace_id, metadata->>'external_id').
// ContentHash hoje é o próprio external_id (hash fraco).
type CreativeAsset struct {
	ID           string       `json:"id"`
	WorkspaceID  string       `json:"workspace_id"`
	ExternalID   string       `json:"external_id"`
	Name         string       `json:"name"`
	Kind         CreativeKind `json:"kind"`
	StorageURL   *string      `json:"storage_url,omitempty"`
	ThumbnailURL string       `json:"thumbnail_url,omitempty"`
	TextContent  string       `json:"text_content,omitempty"`
	ContentHash  string       `json:"content_hash"`
	Metadata     Metadata     `json:"metadata,omitempty"`
	LastSyncedAt time.Time    `json:"last_synced_at"`
}
