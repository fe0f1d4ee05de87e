package interfaces

import (
	"context"
	"impressao_xpto/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for Quote.
//
// Conventions (shared by every repository here):
//   - a zero-value entity with empty ID means "not found" or "condition
//     failed"; the use case decides which error that becomes
//   - status updates are compare-and-swap on the current status, so terminal
//     quotes can never be transitioned again even under concurrent callers
//
// NextSequence increments the quote counter item atomically and returns the
// new value, used to build human-readable sequence numbers.

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	ListByClientID(ctx context.Context, clientID string) ([]entities.Quote, error)
	UpdateStatus(ctx context.Context, id string, from, to entities.QuoteStatus) (entities.Quote, error)
	MarkSentToProviders(ctx context.Context, id string, providerCount int) (entities.Quote, error)
	NextSequence(ctx context.Context) (int64, error)
}
