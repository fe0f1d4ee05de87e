package entities

import "time"

// NotificationType tags the two fan-out trigger points.

type NotificationType string

const (
	NotificationTypeNewQuote    NotificationType = "new_quote"
	NotificationTypeNewProposal NotificationType = "new_proposal"
)

// RecipientKind tells whether a notification targets a provider or a client.

type RecipientKind string

const (
	RecipientKindProvider RecipientKind = "provider"
	RecipientKindCliente  RecipientKind = "cliente"
)

// Notification is created by the fan-out when a quote reaches providers and
// when a proposal reaches the customer. Only the read flag mutates afterward.
type Notification struct {
	ID            string           `json:"id"`
	RecipientID   string           `json:"recipient_id"`
	RecipientKind RecipientKind    `json:"recipient_kind"`
	QuoteID       string           `json:"quote_id"`
	Type          NotificationType `json:"type"`
	Title         string           `json:"title"`
	Message       string           `json:"message"`
	Read          bool             `json:"read"`
	CreatedAt     time.Time        `json:"created_at"`
}
