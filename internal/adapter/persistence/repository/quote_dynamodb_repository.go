package repository

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"time"

	"impressao_xpto/internal/domain/entities"
	"impressao_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultQuotesTableName   = "quotes"
	defaultCountersTableName = "counters"
	quoteSequenceCounterID   = "quote_sequence"
)

type quoteLineItem struct {
	ProductID   string  `dynamodbav:"product_id,omitempty"`
	Description string  `dynamodbav:"description"`
	Quantity    int     `dynamodbav:"quantity"`
	UnitPrice   float64 `dynamodbav:"unit_price"`
	Total       float64 `dynamodbav:"total"`
}

type quoteItem struct {
	ID                 string          `dynamodbav:"id"`
	SequenceNumber     string          `dynamodbav:"sequence_number"`
	Origin             string          `dynamodbav:"origin"`
	ServiceType        string          `dynamodbav:"service_type"`
	ClientID           string          `dynamodbav:"client_id"`
	Description        string          `dynamodbav:"description,omitempty"`
	FileRefs           []string        `dynamodbav:"file_refs,omitempty"`
	Items              []quoteLineItem `dynamodbav:"items"`
	Subtotal           float64         `dynamodbav:"subtotal"`
	Shipping           float64         `dynamodbav:"shipping"`
	Total              float64         `dynamodbav:"total"`
	PaymentMethod      string          `dynamodbav:"payment_method,omitempty"`
	Notes              string          `dynamodbav:"notes,omitempty"`
	Status             string          `dynamodbav:"status"`
	SentToProviders    bool            `dynamodbav:"sent_to_providers"`
	ProviderCount      int             `dynamodbav:"provider_count"`
	AcceptedProposalID string          `dynamodbav:"accepted_proposal_id,omitempty"`
	SaleID             string          `dynamodbav:"sale_id,omitempty"`
	CreatedAt          string          `dynamodbav:"created_at"`
	UpdatedAt          string          `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - quotes: PK id (string)
//   - counters: PK id (string), seq (number), the atomic sequence source
//
// Status updates are compare-and-swap on the current status attribute, so a
// terminal quote can never transition again regardless of caller ordering.

type QuoteDynamoRepository struct {
	ddb           *dynamodb.Client
	tableName     string
	countersTable string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:           ddb,
		tableName:     getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
		countersTable: getenvDefault("COUNTERS_TABLE", defaultCountersTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) ListByClientID(ctx context.Context, clientID string) ([]entities.Quote, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#client_id = :client_id"),
		ExpressionAttributeNames: map[string]string{
			"#client_id": "client_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":client_id": &types.AttributeValueMemberS{Value: clientID},
		},
	})
	if err != nil {
		return nil, err
	}

	var items []quoteItem
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
		return nil, err
	}
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt < items[j].CreatedAt })

	quotes := make([]entities.Quote, 0, len(items))
	for _, it := range items {
		quotes = append(quotes, fromQuoteItem(it))
	}
	return quotes, nil
}

func (r *QuoteDynamoRepository) UpdateStatus(ctx context.Context, id string, from, to entities.QuoteStatus) (entities.Quote, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :from"),
		UpdateExpression:    aws.String("SET #status = :to, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from":       &types.AttributeValueMemberS{Value: string(from)},
			":to":         &types.AttributeValueMemberS{Value: string(to)},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(time.Now())},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) MarkSentToProviders(ctx context.Context, id string, providerCount int) (entities.Quote, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		// The sent flag is a one-way latch; a second fan-out fails here.
		ConditionExpression: aws.String("attribute_exists(#id) AND #sent = :not_sent AND #status = :open"),
		UpdateExpression:    aws.String("SET #sent = :sent, #count = :count, #status = :sent_status, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#sent":       "sent_to_providers",
			"#count":      "provider_count",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":not_sent":    &types.AttributeValueMemberBOOL{Value: false},
			":sent":        &types.AttributeValueMemberBOOL{Value: true},
			":count":       &types.AttributeValueMemberN{Value: strconv.Itoa(providerCount)},
			":open":        &types.AttributeValueMemberS{Value: string(entities.QuoteStatusOpen)},
			":sent_status": &types.AttributeValueMemberS{Value: string(entities.QuoteStatusSentToProviders)},
			":updated_at":  &types.AttributeValueMemberS{Value: formatTime(time.Now())},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) NextSequence(ctx context.Context) (int64, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.countersTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: quoteSequenceCounterID},
		},
		UpdateExpression: aws.String("ADD #seq :one"),
		ExpressionAttributeNames: map[string]string{
			"#seq": "seq",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return 0, err
	}

	n, ok := out.Attributes["seq"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, errors.New("counter attribute missing")
	}
	return strconv.ParseInt(n.Value, 10, 64)
}

func toQuoteLineItems(items []entities.QuoteItem) []quoteLineItem {
	out := make([]quoteLineItem, 0, len(items))
	for _, it := range items {
		out = append(out, quoteLineItem{
			ProductID:   it.ProductID,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Total:       it.Total,
		})
	}
	return out
}

func fromQuoteLineItems(items []quoteLineItem) []entities.QuoteItem {
	out := make([]entities.QuoteItem, 0, len(items))
	for _, it := range items {
		out = append(out, entities.QuoteItem{
			ProductID:   it.ProductID,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Total:       it.Total,
		})
	}
	return out
}

func toQuoteItem(q entities.Quote) quoteItem {
	return quoteItem{
		ID:                 q.ID,
		SequenceNumber:     q.SequenceNumber,
		Origin:             string(q.Origin),
		ServiceType:        string(q.ServiceType),
		ClientID:           q.ClientID,
		Description:        q.Description,
		FileRefs:           q.FileRefs,
		Items:              toQuoteLineItems(q.Items),
		Subtotal:           q.Subtotal,
		Shipping:           q.Shipping,
		Total:              q.Total,
		PaymentMethod:      q.PaymentMethod,
		Notes:              q.Notes,
		Status:             string(q.Status),
		SentToProviders:    q.SentToProviders,
		ProviderCount:      q.ProviderCount,
		AcceptedProposalID: q.AcceptedProposalID,
		SaleID:             q.SaleID,
		CreatedAt:          formatTime(q.CreatedAt),
		UpdatedAt:          formatTime(q.UpdatedAt),
	}
}

func fromQuoteItem(it quoteItem) entities.Quote {
	return entities.Quote{
		ID:                 it.ID,
		SequenceNumber:     it.SequenceNumber,
		Origin:             entities.QuoteOrigin(it.Origin),
		ServiceType:        entities.ServiceType(it.ServiceType),
		ClientID:           it.ClientID,
		Description:        it.Description,
		FileRefs:           it.FileRefs,
		Items:              fromQuoteLineItems(it.Items),
		Subtotal:           it.Subtotal,
		Shipping:           it.Shipping,
		Total:              it.Total,
		PaymentMethod:      it.PaymentMethod,
		Notes:              it.Notes,
		Status:             entities.QuoteStatus(it.Status),
		SentToProviders:    it.SentToProviders,
		ProviderCount:      it.ProviderCount,
		AcceptedProposalID: it.AcceptedProposalID,
		SaleID:             it.SaleID,
		CreatedAt:          parseTime(it.CreatedAt),
		UpdatedAt:          parseTime(it.UpdatedAt),
	}
}
