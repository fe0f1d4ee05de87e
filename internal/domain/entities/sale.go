package entities

import "time"

// SaleStatus represents the payment outcome of a sale.

type SaleStatus string

const (
	SaleStatusPendente  SaleStatus = "pendente"
	SaleStatusPago      SaleStatus = "pago"
	SaleStatusCancelado SaleStatus = "cancelado"
)

// Sale is the record materialized when a quote is converted.
//
// Storage model (DynamoDB):
//   - PK: id
//   - filtered reads by client_id
//
// Items and Total are a verbatim copy of the quote at conversion time;
// later edits to the quote never drift into the sale (copy-on-convert).
// Exactly one sale exists per converted quote.
type Sale struct {
	ID            string      `json:"id"`
	QuoteID       string      `json:"quote_id"`
	ClientID      string      `json:"client_id"`
	Items         []QuoteItem `json:"items"`
	Total         float64     `json:"total"`
	PaymentMethod string      `json:"payment_method,omitempty"`
	Status        SaleStatus  `json:"status"`
	PaymentID     string      `json:"payment_id,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}
