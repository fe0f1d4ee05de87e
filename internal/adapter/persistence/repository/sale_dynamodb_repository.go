package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"impressao_xpto/internal/domain/entities"
	"impressao_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSalesTableName = "sales"

type saleItem struct {
	ID            string          `dynamodbav:"id"`
	QuoteID       string          `dynamodbav:"quote_id"`
	ClientID      string          `dynamodbav:"client_id"`
	Items         []quoteLineItem `dynamodbav:"items"`
	Total         float64         `dynamodbav:"total"`
	PaymentMethod string          `dynamodbav:"payment_method,omitempty"`
	Status        string          `dynamodbav:"status"`
	PaymentID     string          `dynamodbav:"payment_id,omitempty"`
	CreatedAt     string          `dynamodbav:"created_at"`
	UpdatedAt     string          `dynamodbav:"updated_at"`
}

// SaleDynamoRepository persists Sale entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Sale rows are written by the conversion transaction; here we only read
// them and flip the payment status.

type SaleDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISaleRepository = (*SaleDynamoRepository)(nil)

func NewSaleDynamoRepository(ddb *dynamodb.Client) *SaleDynamoRepository {
	return &SaleDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SALES_TABLE", defaultSalesTableName),
	}
}

func (r *SaleDynamoRepository) GetByID(ctx context.Context, id string) (entities.Sale, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Sale{}, err
	}
	if len(out.Item) == 0 {
		return entities.Sale{}, nil
	}

	var it saleItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Sale{}, err
	}
	return fromSaleItem(it), nil
}

func (r *SaleDynamoRepository) ListByClientID(ctx context.Context, clientID string) ([]entities.Sale, error) {
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

	var items []saleItem
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
		return nil, err
	}
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt < items[j].CreatedAt })

	sales := make([]entities.Sale, 0, len(items))
	for _, it := range items {
		sales = append(sales, fromSaleItem(it))
	}
	return sales, nil
}

func (r *SaleDynamoRepository) SetPaid(ctx context.Context, id string, paymentID string) (entities.Sale, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :pendente"),
		UpdateExpression:    aws.String("SET #status = :pago, #payment_id = :payment_id, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#payment_id": "payment_id",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pendente":   &types.AttributeValueMemberS{Value: string(entities.SaleStatusPendente)},
			":pago":       &types.AttributeValueMemberS{Value: string(entities.SaleStatusPago)},
			":payment_id": &types.AttributeValueMemberS{Value: paymentID},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(time.Now())},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Sale{}, nil
		}
		return entities.Sale{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Sale{}, nil
	}

	var it saleItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Sale{}, err
	}
	return fromSaleItem(it), nil
}

func toSaleItem(s entities.Sale) saleItem {
	return saleItem{
		ID:            s.ID,
		QuoteID:       s.QuoteID,
		ClientID:      s.ClientID,
		Items:         toQuoteLineItems(s.Items),
		Total:         s.Total,
		PaymentMethod: s.PaymentMethod,
		Status:        string(s.Status),
		PaymentID:     s.PaymentID,
		CreatedAt:     formatTime(s.CreatedAt),
		UpdatedAt:     formatTime(s.UpdatedAt),
	}
}

func fromSaleItem(it saleItem) entities.Sale {
	return entities.Sale{
		ID:            it.ID,
		QuoteID:       it.QuoteID,
		ClientID:      it.ClientID,
		Items:         fromQuoteLineItems(it.Items),
		Total:         it.Total,
		PaymentMethod: it.PaymentMethod,
		Status:        entities.SaleStatus(it.Status),
		PaymentID:     it.PaymentID,
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
}
