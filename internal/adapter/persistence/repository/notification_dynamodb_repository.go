package repository

import (
	"context"
	"errors"
	"sort"

	"impressao_xpto/internal/domain/entities"
	"impressao_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultNotificationsTableName = "notifications"
	batchWriteChunkSize           = 25
)

type notificationItem struct {
	ID            string `dynamodbav:"id"`
	RecipientID   string `dynamodbav:"recipient_id"`
	RecipientKind string `dynamodbav:"recipient_kind"`
	QuoteID       string `dynamodbav:"quote_id"`
	Type          string `dynamodbav:"type"`
	Title         string `dynamodbav:"title"`
	Message       string `dynamodbav:"message"`
	Read          bool   `dynamodbav:"read"`
	CreatedAt     string `dynamodbav:"created_at"`
}

// NotificationDynamoRepository persists Notification entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// CreateBatch uses BatchWriteItem in chunks of 25 (the DynamoDB limit) so a
// provider fan-out lands as one batch append per chunk.

type NotificationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.INotificationRepository = (*NotificationDynamoRepository)(nil)

func NewNotificationDynamoRepository(ddb *dynamodb.Client) *NotificationDynamoRepository {
	return &NotificationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("NOTIFICATIONS_TABLE", defaultNotificationsTableName),
	}
}

func (r *NotificationDynamoRepository) Create(ctx context.Context, n entities.Notification) (entities.Notification, error) {
	av, err := attributevalue.MarshalMap(toNotificationItem(n))
	if err != nil {
		return entities.Notification{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Notification{}, err
	}
	return n, nil
}

func (r *NotificationDynamoRepository) CreateBatch(ctx context.Context, ns []entities.Notification) error {
	for start := 0; start < len(ns); start += batchWriteChunkSize {
		end := start + batchWriteChunkSize
		if end > len(ns) {
			end = len(ns)
		}

		writes := make([]types.WriteRequest, 0, end-start)
		for _, n := range ns[start:end] {
			av, err := attributevalue.MarshalMap(toNotificationItem(n))
			if err != nil {
				return err
			}
			writes = append(writes, types.WriteRequest{
				PutRequest: &types.PutRequest{Item: av},
			})
		}

		out, err := r.ddb.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
			RequestItems: map[string][]types.WriteRequest{
				r.tableName: writes,
			},
		})
		if err != nil {
			return err
		}
		// Retry once on throttled leftovers before giving up.
		if unprocessed := out.UnprocessedItems[r.tableName]; len(unprocessed) > 0 {
			retry, err := r.ddb.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
				RequestItems: map[string][]types.WriteRequest{
					r.tableName: unprocessed,
				},
			})
			if err != nil {
				return err
			}
			if len(retry.UnprocessedItems[r.tableName]) > 0 {
				return errors.New("notification batch write left unprocessed items")
			}
		}
	}
	return nil
}

func (r *NotificationDynamoRepository) ListByRecipientID(ctx context.Context, recipientID string) ([]entities.Notification, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#recipient_id = :recipient_id"),
		ExpressionAttributeNames: map[string]string{
			"#recipient_id": "recipient_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":recipient_id": &types.AttributeValueMemberS{Value: recipientID},
		},
	})
	if err != nil {
		return nil, err
	}

	var items []notificationItem
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
		return nil, err
	}
	// Unread first, then newest first.
	sort.Slice(items, func(i, j int) bool {
		if items[i].Read != items[j].Read {
			return !items[i].Read
		}
		return items[i].CreatedAt > items[j].CreatedAt
	})

	notifications := make([]entities.Notification, 0, len(items))
	for _, it := range items {
		notifications = append(notifications, fromNotificationItem(it))
	}
	return notifications, nil
}

func (r *NotificationDynamoRepository) MarkRead(ctx context.Context, id string) (entities.Notification, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #read = :read"),
		ExpressionAttributeNames: map[string]string{
			"#id":   "id",
			"#read": "read",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":read": &types.AttributeValueMemberBOOL{Value: true},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Notification{}, nil
		}
		return entities.Notification{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Notification{}, nil
	}

	var it notificationItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Notification{}, err
	}
	return fromNotificationItem(it), nil
}

func toNotificationItem(n entities.Notification) notificationItem {
	return notificationItem{
		ID:            n.ID,
		RecipientID:   n.RecipientID,
		RecipientKind: string(n.RecipientKind),
		QuoteID:       n.QuoteID,
		Type:          string(n.Type),
		Title:         n.Title,
		Message:       n.Message,
		Read:          n.Read,
		CreatedAt:     formatTime(n.CreatedAt),
	}
}

func fromNotificationItem(it notificationItem) entities.Notification {
	return entities.Notification{
		ID:            it.ID,
		RecipientID:   it.RecipientID,
		RecipientKind: entities.RecipientKind(it.RecipientKind),
		QuoteID:       it.QuoteID,
		Type:          entities.NotificationType(it.Type),
		Title:         it.Title,
		Message:       it.Message,
		Read:          it.Read,
		CreatedAt:     parseTime(it.CreatedAt),
	}
}
