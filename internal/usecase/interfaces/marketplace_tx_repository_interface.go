package interfaces

import (
	"context"
	"impressao_xpto/internal/domain/entities"
)

// StockDeduction is one product decrement inside a conversion transaction.
type StockDeduction struct {
	ProductID string
	Quantity  int
}

// IMarketplaceTxRepository groups the two multi-record writes that must be
// atomic (DynamoDB TransactWriteItems with per-item conditions).
//
// Both methods return (false, nil) when the transaction was cancelled by a
// condition check: a lost acceptance race, a terminal quote, or stock that
// ran out between pre-flight and commit. Nothing is applied in that case.

type IMarketplaceTxRepository interface {
	// AcceptProposal atomically:
	//   - flips the target proposal pending -> accepted
	//   - flips every listed sibling pending -> rejected
	//   - moves the quote to in_progress and stamps accepted_proposal_id,
	//     provided the quote has no accepted proposal yet and is not terminal
	AcceptProposal(ctx context.Context, quoteID, proposalID string, pendingSiblingIDs []string) (bool, error)

	// ConvertQuote atomically:
	//   - decrements each product's stock, guarded by stock >= quantity
	//   - puts the new sale, guarded by id non-existence
	//   - moves the quote to converted and stamps sale_id, guarded by the
	//     quote's current (non-terminal) status
	ConvertQuote(ctx context.Context, quote entities.Quote, sale entities.Sale, deductions []StockDeduction) (bool, error)
}
