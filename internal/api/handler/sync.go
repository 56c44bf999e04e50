package handler

import (
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-sync-api/internal/domain"
	"github.com/vfg2006/ads-sync-api/internal/scheduler"
	"github.com/vfg2006/ads-sync-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// triggerSyncRequest é o corpo esperado no disparo manual de uma
// sincronização. O token da plataforma só trafega aqui, nunca é
// persistido nem devolvido
type triggerSyncRequest struct {
	WorkspaceID       string `json:"workspace_id"`
	AccountExternalID string `json:"account_external_id"`
	AccessToken       string `json:"access_token"`
	DateRangeDays     int    `json:"date_range_days,omitempty"`
}

// TriggerSync dispara a sincronização assíncrona de uma conta
func TriggerSync(syncService *scheduler.PlatformSyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body triggerSyncRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		if body.WorkspaceID == "" || body.AccountExternalID == "" || body.AccessToken == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData,
				"workspace_id, account_external_id e access_token são obrigatórios", nil)
			return
		}

		req := &domain.SyncRequest{
			WorkspaceID:       body.WorkspaceID,
			AccountExternalID: body.AccountExternalID,
			AccessToken:       body.AccessToken,
			DateRangeDays:     body.DateRangeDays,
		}

		status, err := syncService.TriggerSync(r.Context(), req)
		if err != nil {
			if strings.Contains(err.Error(), "já em andamento") {
				apiErrors.WriteError(w, apiErrors.ErrSyncAlreadyRunning, err.Error(), nil)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		logrus.WithFields(logrus.Fields{
			"workspace_id": body.WorkspaceID,
			"account_id":   body.AccountExternalID,
		}).Info("Sincronização disparada manualmente")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		if err := json.NewEncoder(w).Encode(status); err != nil {
			logrus.WithError(err).Error("Erro ao serializar resposta do disparo de sincronização")
		}
	}
}

// GetSyncStatus devolve o estado das execuções conhecidas
func GetSyncStatus(syncService *scheduler.PlatformSyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		statuses := syncService.GetStatus()

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]any{
			"runs": statuses,
		}); err != nil {
			logrus.WithError(err).Error("Erro ao serializar status de sincronização")
		}
	}
}
