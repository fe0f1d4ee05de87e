package entities

import "time"

// Provider is a registered service provider with a declared capability set.
//
// Services holds service-type strings from the closed vocabulary; the
// matching engine does an exact membership test against it. Providers are
// listed in registration order (no ranking).
type Provider struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Email        string        `json:"email"`
	Phone        string        `json:"phone,omitempty"`
	Services     []ServiceType `json:"services"`
	Approved     bool          `json:"approved"`
	PortfolioURL string        `json:"portfolio_url,omitempty"`
	Rating       float64       `json:"rating"`
	CreatedAt    time.Time     `json:"created_at"`
}

// HasService reports whether the provider declared the given service type.
func (p Provider) HasService(s ServiceType) bool {
	for _, svc := range p.Services {
		if svc == s {
			return true
		}
	}
	return false
}
