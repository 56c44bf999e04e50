package metaclient

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	metadomain "github.com/vfg2006/ads-sync-api/infrastructure/integrator/meta/domain"
)

// Erros fatais da sincronização. A camada chamadora distingue
// ErrReauthRequired (pedir reconexão) de ErrMissingCredentials
// (configuração incompleta) de falhas genéricas (pedir nova tentativa).
var (
	ErrReauthRequired     = errors.New("credencial da Meta expirada ou revogada, reconexão necessária")
	ErrMissingCredentials = errors.New("credencial de acesso da Meta ausente")
)

// APIError representa uma resposta não-2xx da Graph API
type APIError struct {
	StatusCode int
	Code       int
	Subcode    int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("erro da Graph API: status=%d code=%d subcode=%d: %s", e.StatusCode, e.Code, e.Subcode, e.Message)
}

// classifyError converte o corpo de uma resposta não-2xx no erro
// apropriado. Falhas de autenticação viram ErrReauthRequired para que
// o chamador saiba pedir reconexão em vez de nova tentativa.
func classifyError(statusCode int, body []byte) error {
	var errResp metadomain.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error.Code != 0 {
		if errResp.IsAuthError() {
			return errors.Wrap(ErrReauthRequired, errResp.Error.Message)
		}

		return &APIError{
			StatusCode: statusCode,
			Code:       errResp.Error.Code,
			Subcode:    errResp.Error.ErrorSubcode,
			Message:    errResp.Error.Message,
		}
	}

	return &APIError{StatusCode: statusCode, Message: string(body)}
}
