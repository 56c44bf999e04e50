package metadomain

import "encoding/json"

// LinkData carrega o conteúdo de link/carrossel de um story spec
type LinkData struct {
	Message          string            `json:"message,omitempty"`
	Name             string            `json:"name,omitempty"`
	Description      string            `json:"description,omitempty"`
	Caption          string            `json:"caption,omitempty"`
	Picture          string            `json:"picture,omitempty"`
	ChildAttachments []ChildAttachment `json:"child_attachments,omitempty"`
}

// ChildAttachment é um cartão individual de um carrossel
type ChildAttachment struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Picture     string `json:"picture,omitempty"`
	Link        string `json:"link,omitempty"`
}

// VideoData carrega o conteúdo de vídeo de um story spec
type VideoData struct {
	VideoID  string `json:"video_id,omitempty"`
	Title    string `json:"title,omitempty"`
	Message  string `json:"message,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
}

// PhotoData carrega o conteúdo de imagem de um story spec
type PhotoData struct {
	Caption string `json:"caption,omitempty"`
	URL     string `json:"url,omitempty"`
}

// ObjectStorySpec é o spec embutido de um criativo. Apenas os campos
// necessários para derivar tipo, thumbnail e texto são modelados; o
// restante segue opaco no RawSpec do criativo.
type ObjectStorySpec struct {
	VideoData *VideoData `json:"video_data,omitempty"`
	LinkData  *LinkData  `json:"link_data,omitempty"`
	PhotoData *PhotoData `json:"photo_data,omitempty"`
}

// Creative é o criativo cru retornado pelo endpoint de detalhe
type Creative struct {
	ID              string           `json:"id"`
	Name            string           `json:"name,omitempty"`
	Title           string           `json:"title,omitempty"`
	Body            string           `json:"body,omitempty"`
	ThumbnailURL    string           `json:"thumbnail_url,omitempty"`
	ImageURL        string           `json:"image_url,omitempty"`
	VideoID         string           `json:"video_id,omitempty"`
	ObjectStorySpec *ObjectStorySpec `json:"object_story_spec,omitempty"`
	RawSpec         json.RawMessage  `json:"-"`
}
