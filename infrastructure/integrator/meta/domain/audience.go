package metadomain

// Audience é o público customizado cru da Graph API
type Audience struct {
	ID                          string `json:"id"`
	Name                        string `json:"name"`
	Subtype                     string `json:"subtype,omitempty"`
	ApproximateCountLowerBound  int64  `json:"approximate_count_lower_bound,omitempty"`
	ApproximateCountUpperBound  int64  `json:"approximate_count_upper_bound,omitempty"`
	DeliveryStatus              *CodeStatus `json:"delivery_status,omitempty"`
	OperationStatus             *CodeStatus `json:"operation_status,omitempty"`
}

// CodeStatus é o par código/descrição usado nos status de públicos
type CodeStatus struct {
	Code        int    `json:"code"`
	Description string `json:"description,omitempty"`
}
