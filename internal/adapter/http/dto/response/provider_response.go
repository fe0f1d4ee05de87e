package response

import (
	"impressao_xpto/internal/domain/entities"
	"time"
)

type ProviderResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	Services     []string  `json:"services"`
	Approved     bool      `json:"approved"`
	PortfolioURL string    `json:"portfolio_url,omitempty"`
	Rating       float64   `json:"rating"`
	CreatedAt    time.Time `json:"created_at"`
}

func FromProvider(p entities.Provider) ProviderResponse {
	services := make([]string, 0, len(p.Services))
	for _, s := range p.Services {
		services = append(services, string(s))
	}
	return ProviderResponse{
		ID:           p.ID,
		Name:         p.Name,
		Email:        p.Email,
		Phone:        p.Phone,
		Services:     services,
		Approved:     p.Approved,
		PortfolioURL: p.PortfolioURL,
		Rating:       p.Rating,
		CreatedAt:    p.CreatedAt,
	}
}

func FromProviders(ps []entities.Provider) []ProviderResponse {
	out := make([]ProviderResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromProvider(p))
	}
	return out
}
