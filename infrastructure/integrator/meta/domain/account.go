package metadomain

// AdAccount é a conta de anúncios crua da Graph API. account_status é
// numérico: 1 ativa, 2 desativada, 3 inadimplente, 101 fechada.
type AdAccount struct {
	ID            string `json:"id"`
	AccountID     string `json:"account_id"`
	Name          string `json:"name"`
	Currency      string `json:"currency"`
	TimezoneName  string `json:"timezone_name"`
	AccountStatus int    `json:"account_status"`
}
