package interfaces

import (
	"context"
	"impressao_xpto/internal/domain/entities"
)

// IProviderRepository abstracts DynamoDB persistence for Provider.
//
// List returns providers in registration order; the matching engine relies
// on that ordering (no ranking is performed downstream).

type IProviderRepository interface {
	Create(ctx context.Context, p entities.Provider) (entities.Provider, error)
	GetByID(ctx context.Context, id string) (entities.Provider, error)
	List(ctx context.Context) ([]entities.Provider, error)
	SetApproved(ctx context.Context, id string, approved bool) (entities.Provider, error)
}
