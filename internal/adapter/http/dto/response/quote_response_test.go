package response

import (
	"testing"
	"time"

	"impressao_xpto/internal/domain/entities"
)

func TestFromQuote(t *testing.T) {
	now := time.Now().UTC()

	q := entities.Quote{
		ID:             "q-1",
		SequenceNumber: "ORC-000007",
		Origin:         entities.QuoteOriginMarketplace,
		ServiceType:    entities.ServiceTypeImpressao,
		ClientID:       "client-1",
		Items: []entities.QuoteItem{
			{ProductID: "prod-1", Description: "Peça", Quantity: 2, UnitPrice: 50, Total: 100},
		},
		Subtotal:           100,
		Shipping:           20,
		Total:              120,
		Status:             entities.QuoteStatusSentToProviders,
		SentToProviders:    true,
		ProviderCount:      3,
		AcceptedProposalID: "prop-1",
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	res := FromQuote(q)
	if res.ID != "q-1" || res.SequenceNumber != "ORC-000007" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Origin != "marketplace" || res.ServiceType != "impressao" || res.Status != "sent_to_providers" {
		t.Fatalf("unexpected vocabulary fields: %+v", res)
	}
	if len(res.Items) != 1 || res.Items[0].Total != 100 {
		t.Fatalf("unexpected items: %+v", res.Items)
	}
	if res.Subtotal != 100 || res.Shipping != 20 || res.Total != 120 {
		t.Fatalf("unexpected totals: %+v", res)
	}
	if !res.SentToProviders || res.ProviderCount != 3 || res.AcceptedProposalID != "prop-1" {
		t.Fatalf("unexpected lifecycle fields: %+v", res)
	}
	if !res.CreatedAt.Equal(now) {
		t.Fatalf("unexpected created_at: %v", res.CreatedAt)
	}
}

func TestFromQuotes_Empty(t *testing.T) {
	if got := FromQuotes(nil); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}
