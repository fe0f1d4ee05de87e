package response

import (
	"impressao_xpto/internal/domain/entities"
	"time"
)

type SaleResponse struct {
	ID            string              `json:"id"`
	QuoteID       string              `json:"quote_id"`
	ClientID      string              `json:"client_id"`
	Items         []QuoteItemResponse `json:"items"`
	Total         float64             `json:"total"`
	PaymentMethod string              `json:"payment_method,omitempty"`
	Status        string              `json:"status"`
	PaymentID     string              `json:"payment_id,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

func FromSale(s entities.Sale) SaleResponse {
	return SaleResponse{
		ID:            s.ID,
		QuoteID:       s.QuoteID,
		ClientID:      s.ClientID,
		Items:         FromQuoteItems(s.Items),
		Total:         s.Total,
		PaymentMethod: s.PaymentMethod,
		Status:        string(s.Status),
		PaymentID:     s.PaymentID,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

func FromSales(ss []entities.Sale) []SaleResponse {
	out := make([]SaleResponse, 0, len(ss))
	for _, s := range ss {
		out = append(out, FromSale(s))
	}
	return out
}
