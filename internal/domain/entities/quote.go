package entities

import "time"

// QuoteStatus represents the lifecycle of a quote (orçamento).
//
// Domain notes:
//   - Quotes have two origins, each with its own status vocabulary.
//   - Marketplace quotes go through provider matching and proposals:
//     open -> sent_to_providers -> in_progress -> converted | cancelled.
//   - Direct quotes are priced by an administrator and only approve/reject:
//     pendente -> aprovado | recusado.
//   - Terminal statuses never transition again.

type QuoteStatus string

const (
	QuoteStatusOpen            QuoteStatus = "open"
	QuoteStatusSentToProviders QuoteStatus = "sent_to_providers"
	QuoteStatusInProgress      QuoteStatus = "in_progress"
	QuoteStatusConverted       QuoteStatus = "converted"
	QuoteStatusCancelled       QuoteStatus = "cancelled"

	QuoteStatusPendente QuoteStatus = "pendente"
	QuoteStatusAprovado QuoteStatus = "aprovado"
	QuoteStatusRecusado QuoteStatus = "recusado"
)

// IsTerminal reports whether no further transition is defined for the status.
func (s QuoteStatus) IsTerminal() bool {
	switch s {
	case QuoteStatusConverted, QuoteStatusCancelled, QuoteStatusAprovado, QuoteStatusRecusado:
		return true
	}
	return false
}

// QuoteOrigin is the canonical tag that tells the two quote paths apart.
// Core logic reads this tag instead of guessing from the status vocabulary.

type QuoteOrigin string

const (
	QuoteOriginMarketplace QuoteOrigin = "marketplace"
	QuoteOriginDireto      QuoteOrigin = "direto"
)

// ServiceType is the closed vocabulary of services the bureau offers.

type ServiceType string

const (
	ServiceTypeImpressao    ServiceType = "impressao"
	ServiceTypeModelagem    ServiceType = "modelagem"
	ServiceTypePintura      ServiceType = "pintura"
	ServiceTypeManutencao   ServiceType = "manutencao"
	ServiceTypeVendaProduto ServiceType = "venda_produto"
)

// ValidServiceType reports membership in the closed service-type set.
// Matching is case-sensitive exact string comparison.
func ValidServiceType(s ServiceType) bool {
	switch s {
	case ServiceTypeImpressao, ServiceTypeModelagem, ServiceTypePintura, ServiceTypeManutencao, ServiceTypeVendaProduto:
		return true
	}
	return false
}

// QuoteItem is one priced unit within a quote or sale.
// ProductID is empty for pure service lines (no stock involvement).
type QuoteItem struct {
	ProductID   string  `json:"product_id,omitempty"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}

// Quote is the customer service request persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - sequence numbers come from an atomic counter item ("ORC-<n>")
//
// Lifecycle fields:
//   - SentToProviders/ProviderCount are stamped by the notification fan-out.
//   - AcceptedProposalID is stamped when a proposal is accepted.
//   - SaleID is stamped by the conversion into a sale.
type Quote struct {
	ID             string      `json:"id"`
	SequenceNumber string      `json:"sequence_number"`
	Origin         QuoteOrigin `json:"origin"`
	ServiceType    ServiceType `json:"service_type"`
	ClientID       string      `json:"client_id"`
	Description    string      `json:"description,omitempty"`
	FileRefs       []string    `json:"file_refs,omitempty"`
	Items          []QuoteItem `json:"items"`
	Subtotal       float64     `json:"subtotal"`
	Shipping       float64     `json:"shipping"`
	Total          float64     `json:"total"`
	PaymentMethod  string      `json:"payment_method,omitempty"`
	Notes          string      `json:"notes,omitempty"`

	Status             QuoteStatus `json:"status"`
	SentToProviders    bool        `json:"sent_to_providers"`
	ProviderCount      int         `json:"provider_count"`
	AcceptedProposalID string      `json:"accepted_proposal_id,omitempty"`
	SaleID             string      `json:"sale_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
