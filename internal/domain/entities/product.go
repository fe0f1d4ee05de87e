package entities

import "time"

// ProductKind distinguishes finished products from raw printing material.
// Both kinds carry stock and share the non-negative stock invariant.

type ProductKind string

const (
	ProductKindProduto      ProductKind = "produto"
	ProductKindMateriaPrima ProductKind = "materia_prima"
)

// Product is a stock-bearing catalog entity.
//
// Storage model (DynamoDB):
//   - PK: id
//   - stock is an N attribute so conditional decrements can guard it
//
// Invariant: Stock never goes negative. All decrements go through the
// conversion transaction, each guarded by a stock >= quantity condition.
type Product struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Kind      ProductKind `json:"kind"`
	Stock     int         `json:"stock"`
	MinStock  int         `json:"min_stock"`
	CostPrice float64     `json:"cost_price"`
	SalePrice float64     `json:"sale_price"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// BelowMinStock reports whether the product needs restocking.
func (p Product) BelowMinStock() bool {
	return p.Stock < p.MinStock
}
