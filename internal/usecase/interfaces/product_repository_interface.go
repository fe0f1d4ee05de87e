package interfaces

import (
	"context"
	"impressao_xpto/internal/domain/entities"
)

// IProductRepository abstracts DynamoDB persistence for stock-bearing
// catalog entities (products and raw material).
//
// Stock is never decremented through this interface; deductions happen only
// inside the conversion transaction (IMarketplaceTxRepository).

type IProductRepository interface {
	Create(ctx context.Context, p entities.Product) (entities.Product, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
	List(ctx context.Context) ([]entities.Product, error)
}
