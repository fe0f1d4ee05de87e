package request

// CreateProposalRequest is a provider's offer against a quote.
type CreateProposalRequest struct {
	QuoteID       string  `json:"quote_id" binding:"required"`
	ProviderID    string  `json:"provider_id" binding:"required"`
	ProviderName  string  `json:"provider_name" binding:"required"`
	ProviderEmail string  `json:"provider_email" binding:"required"`
	Price         float64 `json:"price" binding:"required"`
	EstimatedDays int     `json:"estimated_days" binding:"required"`
	Description   string  `json:"description"`
}
