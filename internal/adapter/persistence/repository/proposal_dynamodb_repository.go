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

const defaultProposalsTableName = "proposals"

type proposalItem struct {
	ID            string  `dynamodbav:"id"`
	QuoteID       string  `dynamodbav:"quote_id"`
	ProviderID    string  `dynamodbav:"provider_id"`
	ProviderName  string  `dynamodbav:"provider_name"`
	ProviderEmail string  `dynamodbav:"provider_email"`
	Price         float64 `dynamodbav:"price"`
	EstimatedDays int     `dynamodbav:"estimated_days"`
	Description   string  `dynamodbav:"description,omitempty"`
	Status        string  `dynamodbav:"status"`
	CreatedAt     string  `dynamodbav:"created_at"`
	UpdatedAt     string  `dynamodbav:"updated_at"`
}

// ProposalDynamoRepository persists Proposal entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Filtered reads scan on quote_id/provider_id and sort by created_at so
// callers observe insertion order.

type ProposalDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProposalRepository = (*ProposalDynamoRepository)(nil)

func NewProposalDynamoRepository(ddb *dynamodb.Client) *ProposalDynamoRepository {
	return &ProposalDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROPOSALS_TABLE", defaultProposalsTableName),
	}
}

func (r *ProposalDynamoRepository) Create(ctx context.Context, p entities.Proposal) (entities.Proposal, error) {
	av, err := attributevalue.MarshalMap(toProposalItem(p))
	if err != nil {
		return entities.Proposal{}, err
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
		return entities.Proposal{}, err
	}
	return p, nil
}

func (r *ProposalDynamoRepository) GetByID(ctx context.Context, id string) (entities.Proposal, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Proposal{}, err
	}
	if len(out.Item) == 0 {
		return entities.Proposal{}, nil
	}

	var it proposalItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Proposal{}, err
	}
	return fromProposalItem(it), nil
}

func (r *ProposalDynamoRepository) ListByQuoteID(ctx context.Context, quoteID string) ([]entities.Proposal, error) {
	return r.listByAttr(ctx, "quote_id", quoteID)
}

func (r *ProposalDynamoRepository) ListByProviderID(ctx context.Context, providerID string) ([]entities.Proposal, error) {
	return r.listByAttr(ctx, "provider_id", providerID)
}

func (r *ProposalDynamoRepository) listByAttr(ctx context.Context, attr, value string) ([]entities.Proposal, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#attr = :value"),
		ExpressionAttributeNames: map[string]string{
			"#attr": attr,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":value": &types.AttributeValueMemberS{Value: value},
		},
	})
	if err != nil {
		return nil, err
	}

	var items []proposalItem
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
		return nil, err
	}
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt < items[j].CreatedAt })

	proposals := make([]entities.Proposal, 0, len(items))
	for _, it := range items {
		proposals = append(proposals, fromProposalItem(it))
	}
	return proposals, nil
}

func (r *ProposalDynamoRepository) UpdateStatus(ctx context.Context, id string, from, to entities.ProposalStatus) (entities.Proposal, error) {
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
			return entities.Proposal{}, nil
		}
		return entities.Proposal{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Proposal{}, nil
	}

	var it proposalItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Proposal{}, err
	}
	return fromProposalItem(it), nil
}

func toProposalItem(p entities.Proposal) proposalItem {
	return proposalItem{
		ID:            p.ID,
		QuoteID:       p.QuoteID,
		ProviderID:    p.ProviderID,
		ProviderName:  p.ProviderName,
		ProviderEmail: p.ProviderEmail,
		Price:         p.Price,
		EstimatedDays: p.EstimatedDays,
		Description:   p.Description,
		Status:        string(p.Status),
		CreatedAt:     formatTime(p.CreatedAt),
		UpdatedAt:     formatTime(p.UpdatedAt),
	}
}

func fromProposalItem(it proposalItem) entities.Proposal {
	return entities.Proposal{
		ID:            it.ID,
		QuoteID:       it.QuoteID,
		ProviderID:    it.ProviderID,
		ProviderName:  it.ProviderName,
		ProviderEmail: it.ProviderEmail,
		Price:         it.Price,
		EstimatedDays: it.EstimatedDays,
		Description:   it.Description,
		Status:        entities.ProposalStatus(it.Status),
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
}
