package response

import (
	"impressao_xpto/internal/domain/entities"
	"time"
)

type QuoteItemResponse struct {
	ProductID   string  `json:"product_id,omitempty"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}

type QuoteResponse struct {
	ID                 string              `json:"id"`
	SequenceNumber     string              `json:"sequence_number"`
	Origin             string              `json:"origin"`
	ServiceType        string              `json:"service_type"`
	ClientID           string              `json:"client_id"`
	Description        string              `json:"description,omitempty"`
	FileRefs           []string            `json:"file_refs,omitempty"`
	Items              []QuoteItemResponse `json:"items"`
	Subtotal           float64             `json:"subtotal"`
	Shipping           float64             `json:"shipping"`
	Total              float64             `json:"total"`
	PaymentMethod      string              `json:"payment_method,omitempty"`
	Notes              string              `json:"notes,omitempty"`
	Status             string              `json:"status"`
	SentToProviders    bool                `json:"sent_to_providers"`
	ProviderCount      int                 `json:"provider_count"`
	AcceptedProposalID string              `json:"accepted_proposal_id,omitempty"`
	SaleID             string              `json:"sale_id,omitempty"`
	CreatedAt          time.Time           `json:"created_at"`
	UpdatedAt          time.Time           `json:"updated_at"`
}

// FanoutResponse reports a provider fan-out outcome.
type FanoutResponse struct {
	Quote         QuoteResponse `json:"quote"`
	ProviderCount int           `json:"provider_count"`
}

func FromQuoteItems(items []entities.QuoteItem) []QuoteItemResponse {
	out := make([]QuoteItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, QuoteItemResponse{
			ProductID:   it.ProductID,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Total:       it.Total,
		})
	}
	return out
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		ID:                 q.ID,
		SequenceNumber:     q.SequenceNumber,
		Origin:             string(q.Origin),
		ServiceType:        string(q.ServiceType),
		ClientID:           q.ClientID,
		Description:        q.Description,
		FileRefs:           q.FileRefs,
		Items:              FromQuoteItems(q.Items),
		Subtotal:           q.Subtotal,
		Shipping:           q.Shipping,
		Total:              q.Total,
		PaymentMethod:      q.PaymentMethod,
		Notes:              q.Notes,
		Status:             string(q.Status),
		SentToProviders:    q.SentToProviders,
		ProviderCount:      q.ProviderCount,
		AcceptedProposalID: q.AcceptedProposalID,
		SaleID:             q.SaleID,
		CreatedAt:          q.CreatedAt,
		UpdatedAt:          q.UpdatedAt,
	}
}

func FromQuotes(qs []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(qs))
	for _, q := range qs {
		out = append(out, FromQuote(q))
	}
	return out
}
