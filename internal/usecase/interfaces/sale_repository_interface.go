package interfaces

import (
	"context"
	"impressao_xpto/internal/domain/entities"
)

// ISaleRepository abstracts DynamoDB persistence for Sale.
//
// Sales are only ever created inside the conversion transaction
// (IMarketplaceTxRepository); this interface covers reads and the payment
// status flip.

type ISaleRepository interface {
	GetByID(ctx context.Context, id string) (entities.Sale, error)
	ListByClientID(ctx context.Context, clientID string) ([]entities.Sale, error)
	SetPaid(ctx context.Context, id string, paymentID string) (entities.Sale, error)
}
