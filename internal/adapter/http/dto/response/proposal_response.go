package response

import (
	"impressao_xpto/internal/domain/entities"
	"time"
)

type ProposalResponse struct {
	ID            string    `json:"id"`
	QuoteID       string    `json:"quote_id"`
	ProviderID    string    `json:"provider_id"`
	ProviderName  string    `json:"provider_name"`
	ProviderEmail string    `json:"provider_email"`
	Price         float64   `json:"price"`
	EstimatedDays int       `json:"estimated_days"`
	Description   string    `json:"description,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromProposal(p entities.Proposal) ProposalResponse {
	return ProposalResponse{
		ID:            p.ID,
		QuoteID:       p.QuoteID,
		ProviderID:    p.ProviderID,
		ProviderName:  p.ProviderName,
		ProviderEmail: p.ProviderEmail,
		Price:         p.Price,
		EstimatedDays: p.EstimatedDays,
		Description:   p.Description,
		Status:        string(p.Status),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func FromProposals(ps []entities.Proposal) []ProposalResponse {
	out := make([]ProposalResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromProposal(p))
	}
	return out
}
