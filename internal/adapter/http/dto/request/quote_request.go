package request

// QuoteItemRequest is one line item in a quote submission.
type QuoteItemRequest struct {
	ProductID   string  `json:"product_id"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity" binding:"required"`
	UnitPrice   float64 `json:"unit_price"`
}

// CreateQuoteRequest is the quote submission payload. Origin defaults to
// marketplace when omitted; "direto" selects the admin-priced path.
type CreateQuoteRequest struct {
	Origin        string             `json:"origin"`
	ServiceType   string             `json:"service_type" binding:"required"`
	ClientID      string             `json:"client_id" binding:"required"`
	Description   string             `json:"description"`
	FileRefs      []string           `json:"file_refs"`
	Items         []QuoteItemRequest `json:"items" binding:"required"`
	Shipping      float64            `json:"shipping"`
	PaymentMethod string             `json:"payment_method"`
	Notes         string             `json:"notes"`
}
