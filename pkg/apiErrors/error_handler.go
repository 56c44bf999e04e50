package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro expostos pela API
const (
	// Erros de autenticação (AUTH)
	ErrInvalidToken = "AUTH_001" // Token inválido
	ErrExpiredToken = "AUTH_002" // Token expirado

	// Erros de validação (VAL)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrResourceNotFound    = "VAL_003" // Recurso não encontrado

	// Erros de sincronização (SYNC)
	ErrSyncAlreadyRunning = "SYNC_001" // Sincronização já em andamento para a conta
	ErrReauthRequired     = "SYNC_002" // Credencial da plataforma expirada

	// Erros do servidor (SRV)
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrExternalService   = "SRV_003" // Erro em serviço externo
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidToken:        http.StatusUnauthorized,
	ErrExpiredToken:        http.StatusUnauthorized,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrResourceNotFound:    http.StatusNotFound,
	ErrSyncAlreadyRunning:  http.StatusConflict,
	ErrReauthRequired:      http.StatusUnprocessableEntity,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrDatabaseOperation:   http.StatusInternalServerError,
	ErrExternalService:     http.StatusBadGateway,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// FromError envolve um erro Go em um erro de API com o código informado
func FromError(w http.ResponseWriter, code string, err error) {
	message := ""
	if err != nil {
		message = err.Error()
	}

	WriteError(w, code, message, nil)
}
