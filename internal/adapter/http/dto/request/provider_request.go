package request

// RegisterProviderRequest registers a service provider with its declared
// capability set (service-type strings from the closed vocabulary).
type RegisterProviderRequest struct {
	Name         string   `json:"name" binding:"required"`
	Email        string   `json:"email" binding:"required"`
	Phone        string   `json:"phone"`
	Services     []string `json:"services" binding:"required"`
	PortfolioURL string   `json:"portfolio_url"`
}
