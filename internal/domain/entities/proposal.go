package entities

import "time"

// ProposalStatus is the provider offer lifecycle.
//
// Invariant: for a given quote at most one proposal is ever accepted.
// Accepting one flips every still-pending sibling to rejected; proposals
// already rejected are never touched again.

type ProposalStatus string

const (
	ProposalStatusPending  ProposalStatus = "pending"
	ProposalStatusAccepted ProposalStatus = "accepted"
	ProposalStatusRejected ProposalStatus = "rejected"
)

// Proposal is a provider's priced, timed offer against a quote.
//
// Storage model (DynamoDB):
//   - PK: id
//   - filtered reads by quote_id and provider_id
//
// ProviderName/ProviderEmail are denormalized at submission time so the
// customer-facing views do not need a provider lookup.
type Proposal struct {
	ID            string         `json:"id"`
	QuoteID       string         `json:"quote_id"`
	ProviderID    string         `json:"provider_id"`
	ProviderName  string         `json:"provider_name"`
	ProviderEmail string         `json:"provider_email"`
	Price         float64        `json:"price"`
	EstimatedDays int            `json:"estimated_days"`
	Description   string         `json:"description,omitempty"`
	Status        ProposalStatus `json:"status"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}
