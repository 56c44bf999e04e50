package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-sync-api/infrastructure/repository"
	"github.com/vfg2006/ads-sync-api/pkg/apiErrors"
)

// GetAccount devolve a conta sincronizada identificada pelo external_id
// da plataforma dentro do workspace informado
func GetAccount(accountRepo repository.AccountRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())
		externalID := params.ByName("external_id")
		workspaceID := r.URL.Query().Get("workspace_id")

		if workspaceID == "" || externalID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData,
				"workspace_id e external_id são obrigatórios", nil)
			return
		}

		account, err := accountRepo.GetByExternalID(workspaceID, externalID)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"workspace_id": workspaceID,
				"account_id":   externalID,
			}).Error("Erro ao buscar conta sincronizada")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar conta", nil)
			return
		}

		if account == nil {
			apiErrors.WriteError(w, apiErrors.ErrResourceNotFound,
				"Conta ainda não sincronizada neste workspace", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(account); err != nil {
			logrus.WithError(err).Error("Erro ao serializar conta sincronizada")
		}
	}
}
