package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"impressao_xpto/internal/domain/entities"
	"impressao_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// MarketplaceTxDynamoRepository performs the two multi-record writes that
// must be all-or-nothing, using TransactWriteItems.
//
// Every item in a transaction carries its own condition; when any condition
// fails DynamoDB cancels the whole transaction and nothing is applied. That
// cancellation is the conflict signal: the repository reports it as
// (false, nil) and leaves the error channel for real failures.

type MarketplaceTxDynamoRepository struct {
	ddb            *dynamodb.Client
	quotesTable    string
	proposalsTable string
	productsTable  string
	salesTable     string
}

var _ interfaces.IMarketplaceTxRepository = (*MarketplaceTxDynamoRepository)(nil)

func NewMarketplaceTxDynamoRepository(ddb *dynamodb.Client) *MarketplaceTxDynamoRepository {
	return &MarketplaceTxDynamoRepository{
		ddb:            ddb,
		quotesTable:    getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
		proposalsTable: getenvDefault("PROPOSALS_TABLE", defaultProposalsTableName),
		productsTable:  getenvDefault("PRODUCTS_TABLE", defaultProductsTableName),
		salesTable:     getenvDefault("SALES_TABLE", defaultSalesTableName),
	}
}

func (r *MarketplaceTxDynamoRepository) AcceptProposal(ctx context.Context, quoteID, proposalID string, pendingSiblingIDs []string) (bool, error) {
	now := formatTime(time.Now())

	items := make([]types.TransactWriteItem, 0, len(pendingSiblingIDs)+2)
	items = append(items, r.proposalStatusFlip(proposalID, entities.ProposalStatusAccepted, now))
	for _, siblingID := range pendingSiblingIDs {
		items = append(items, r.proposalStatusFlip(siblingID, entities.ProposalStatusRejected, now))
	}

	items = append(items, types.TransactWriteItem{
		Update: &types.Update{
			TableName: aws.String(r.quotesTable),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: quoteID},
			},
			// Exactly one acceptance can ever pass this: the winner stamps
			// accepted_proposal_id, every later attempt fails the check.
			ConditionExpression: aws.String("attribute_exists(#id) AND attribute_not_exists(#accepted) AND (#status = :open OR #status = :sent)"),
			UpdateExpression:    aws.String("SET #status = :in_progress, #accepted = :proposal_id, #updated_at = :updated_at"),
			ExpressionAttributeNames: map[string]string{
				"#id":         "id",
				"#accepted":   "accepted_proposal_id",
				"#status":     "status",
				"#updated_at": "updated_at",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":open":        &types.AttributeValueMemberS{Value: string(entities.QuoteStatusOpen)},
				":sent":        &types.AttributeValueMemberS{Value: string(entities.QuoteStatusSentToProviders)},
				":in_progress": &types.AttributeValueMemberS{Value: string(entities.QuoteStatusInProgress)},
				":proposal_id": &types.AttributeValueMemberS{Value: proposalID},
				":updated_at":  &types.AttributeValueMemberS{Value: now},
			},
		},
	})

	return r.run(ctx, items)
}

func (r *MarketplaceTxDynamoRepository) proposalStatusFlip(proposalID string, to entities.ProposalStatus, now string) types.TransactWriteItem {
	return types.TransactWriteItem{
		Update: &types.Update{
			TableName: aws.String(r.proposalsTable),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: proposalID},
			},
			ConditionExpression: aws.String("attribute_exists(#id) AND #status = :pending"),
			UpdateExpression:    aws.String("SET #status = :to, #updated_at = :updated_at"),
			ExpressionAttributeNames: map[string]string{
				"#id":         "id",
				"#status":     "status",
				"#updated_at": "updated_at",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":pending":    &types.AttributeValueMemberS{Value: string(entities.ProposalStatusPending)},
				":to":         &types.AttributeValueMemberS{Value: string(to)},
				":updated_at": &types.AttributeValueMemberS{Value: now},
			},
		},
	}
}

func (r *MarketplaceTxDynamoRepository) ConvertQuote(ctx context.Context, quote entities.Quote, sale entities.Sale, deductions []interfaces.StockDeduction) (bool, error) {
	now := formatTime(time.Now())

	items := make([]types.TransactWriteItem, 0, len(deductions)+2)
	for _, d := range deductions {
		qty := strconv.Itoa(d.Quantity)
		items = append(items, types.TransactWriteItem{
			Update: &types.Update{
				TableName: aws.String(r.productsTable),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: d.ProductID},
				},
				// Guards the non-negative stock invariant at commit time.
				ConditionExpression: aws.String("attribute_exists(#id) AND #stock >= :qty"),
				UpdateExpression:    aws.String("SET #stock = #stock - :qty, #updated_at = :updated_at"),
				ExpressionAttributeNames: map[string]string{
					"#id":         "id",
					"#stock":      "stock",
					"#updated_at": "updated_at",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":qty":        &types.AttributeValueMemberN{Value: qty},
					":updated_at": &types.AttributeValueMemberS{Value: now},
				},
			},
		})
	}

	saleAV, err := attributevalue.MarshalMap(toSaleItem(sale))
	if err != nil {
		return false, err
	}
	items = append(items, types.TransactWriteItem{
		Put: &types.Put{
			TableName:           aws.String(r.salesTable),
			Item:                saleAV,
			ConditionExpression: aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{
				"#id": "id",
			},
		},
	})

	items = append(items, types.TransactWriteItem{
		Update: &types.Update{
			TableName: aws.String(r.quotesTable),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: quote.ID},
			},
			ConditionExpression: aws.String("attribute_exists(#id) AND #status = :from"),
			UpdateExpression:    aws.String("SET #status = :converted, #sale_id = :sale_id, #updated_at = :updated_at"),
			ExpressionAttributeNames: map[string]string{
				"#id":         "id",
				"#status":     "status",
				"#sale_id":    "sale_id",
				"#updated_at": "updated_at",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":from":       &types.AttributeValueMemberS{Value: string(quote.Status)},
				":converted":  &types.AttributeValueMemberS{Value: string(entities.QuoteStatusConverted)},
				":sale_id":    &types.AttributeValueMemberS{Value: sale.ID},
				":updated_at": &types.AttributeValueMemberS{Value: now},
			},
		},
	})

	return r.run(ctx, items)
}

func (r *MarketplaceTxDynamoRepository) run(ctx context.Context, items []types.TransactWriteItem) (bool, error) {
	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: items,
	})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
