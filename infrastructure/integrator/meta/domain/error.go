package metadomain

// ErrorResponse representa a estrutura de erro da Graph API
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes de erro da Graph API
type ErrorDetails struct {
	Message      string `json:"message"`
	Type         string `json:"type"`
	Code         int    `json:"code"`
	ErrorSubcode int    `json:"error_subcode,omitempty"`
	FBTraceID    string `json:"fbtrace_id"`
	ErrorData    any    `json:"error_data,omitempty"`
}

// IsTokenExpired verifica se o erro é de token expirado ou inválido.
// O código 190 representa "token expirado"; os subcódigos 460, 463 e
// 467 cobrem senha alterada, token vencido e token invalidado.
func (e *ErrorResponse) IsTokenExpired() bool {
	return e.Error.Code == 190 ||
		(e.Error.Type == "OAuthException" && (e.Error.ErrorSubcode == 460 || e.Error.ErrorSubcode == 463 || e.Error.ErrorSubcode == 467))
}

// IsAuthError verifica se o erro é de autenticação/autorização de forma
// geral (inclui permissão insuficiente, código 200-299 da Graph API)
func (e *ErrorResponse) IsAuthError() bool {
	if e.IsTokenExpired() {
		return true
	}
	return e.Error.Type == "OAuthException" || (e.Error.Code >= 200 && e.Error.Code <= 299)
}
