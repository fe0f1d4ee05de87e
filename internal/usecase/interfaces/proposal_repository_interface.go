package interfaces

import (
	"context"
	"impressao_xpto/internal/domain/entities"
)

// IProposalRepository abstracts DynamoDB persistence for Proposal.
//
// List results come back in insertion (created_at) order. UpdateStatus is
// compare-and-swap: it only applies when the proposal still holds `from`,
// otherwise it returns an empty proposal.

type IProposalRepository interface {
	Create(ctx context.Context, p entities.Proposal) (entities.Proposal, error)
	GetByID(ctx context.Context, id string) (entities.Proposal, error)
	ListByQuoteID(ctx context.Context, quoteID string) ([]entities.Proposal, error)
	ListByProviderID(ctx context.Context, providerID string) ([]entities.Proposal, error)
	UpdateStatus(ctx context.Context, id string, from, to entities.ProposalStatus) (entities.Proposal, error)
}
