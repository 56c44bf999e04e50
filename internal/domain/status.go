package domain

// Status é o enum canônico de status para entidades sincronizadas.
// Todos os vocabulários específicos de plataforma são normalizados para
// um destes valores.
type Status string

const (
	StatusActive    Status = "active"
	StatusPaused    Status = "paused"
	StatusArchived  Status = "archived"
	StatusDraft     Status = "draft"
	StatusCompleted Status = "completed"
)

// IsValid verifica se o status pertence ao enum canônico
func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusPaused, StatusArchived, StatusDraft, StatusCompleted:
		return true
	}
	return false
}
