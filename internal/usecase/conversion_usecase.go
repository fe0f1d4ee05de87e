package usecase

import (
	"context"
	"errors"
	"fmt"
	"impressao_xpto/internal/domain/entities"
	"impressao_xpto/internal/usecase/interfaces"
	"log"
	"time"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("estoque insuficiente")
)

// IConversionUseCase turns a quote into a sale, deducting stock.
//
// Failure semantics: a stock shortage leaves every product's stock and the
// quote's status exactly as they were. The pre-flight pass catches shortages
// before any write; the transaction's per-item conditions catch stock that
// races away between pre-flight and commit.

type IConversionUseCase interface {
	ConvertQuote(ctx context.Context, quoteID string) (entities.Sale, error)
}

type ConversionUseCase struct {
	quoteRepo   interfaces.IQuoteRepository
	productRepo interfaces.IProductRepository
	tx          interfaces.IMarketplaceTxRepository
}

var _ IConversionUseCase = (*ConversionUseCase)(nil)

func NewConversionUseCase(quoteRepo interfaces.IQuoteRepository, productRepo interfaces.IProductRepository, tx interfaces.IMarketplaceTxRepository) *ConversionUseCase {
	return &ConversionUseCase{quoteRepo: quoteRepo, productRepo: productRepo, tx: tx}
}

func (u *ConversionUseCase) ConvertQuote(ctx context.Context, quoteID string) (entities.Sale, error) {
	q, err := u.quoteRepo.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Sale{}, err
	}
	if q.ID == "" {
		return entities.Sale{}, ErrQuoteNotFound
	}
	if q.Status.IsTerminal() {
		return entities.Sale{}, ErrQuoteTerminal
	}

	// Aggregate demand per product before checking anything. A quote may
	// reference the same product on several line items; the availability
	// check must see the combined quantity, and the transaction can carry
	// at most one update per DynamoDB item.
	demand := make(map[string]int, len(q.Items))
	productOrder := make([]string, 0, len(q.Items))
	for _, it := range q.Items {
		if it.ProductID == "" {
			continue
		}
		if _, seen := demand[it.ProductID]; !seen {
			productOrder = append(productOrder, it.ProductID)
		}
		demand[it.ProductID] += it.Quantity
	}

	// Pre-flight availability check before any write. One under-stocked
	// product aborts the whole conversion, naming the product.
	deductions := make([]interfaces.StockDeduction, 0, len(productOrder))
	for _, productID := range productOrder {
		quantity := demand[productID]
		product, err := u.productRepo.GetByID(ctx, productID)
		if err != nil {
			return entities.Sale{}, err
		}
		if product.ID == "" {
			return entities.Sale{}, fmt.Errorf("%w: %s", ErrProductNotFound, productID)
		}
		if product.Stock < quantity {
			return entities.Sale{}, fmt.Errorf("%w: %s (disponível %d, solicitado %d)", ErrInsufficientStock, product.Name, product.Stock, quantity)
		}
		deductions = append(deductions, interfaces.StockDeduction{ProductID: productID, Quantity: quantity})
	}

	now := time.Now().UTC()
	items := make([]entities.QuoteItem, len(q.Items))
	copy(items, q.Items)
	sale := entities.Sale{
		ID:            uuid.NewString(),
		QuoteID:       q.ID,
		ClientID:      q.ClientID,
		Items:         items,
		Total:         q.Total,
		PaymentMethod: q.PaymentMethod,
		Status:        entities.SaleStatusPendente,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	applied, err := u.tx.ConvertQuote(ctx, q, sale, deductions)
	if err != nil {
		return entities.Sale{}, err
	}
	if !applied {
		// A condition failed at commit: stock raced away or the quote moved
		// to a terminal status. Nothing was deducted.
		return entities.Sale{}, fmt.Errorf("%w: estoque alterado durante a conversão", ErrInsufficientStock)
	}

	log.Printf("[conversion][usecase] quote converted quote_id=%s sale_id=%s items=%d deductions=%d", q.ID, sale.ID, len(items), len(deductions))
	return sale, nil
}
