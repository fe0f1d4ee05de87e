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

const defaultProvidersTableName = "providers"

type providerItem struct {
	ID           string   `dynamodbav:"id"`
	Name         string   `dynamodbav:"name"`
	Email        string   `dynamodbav:"email"`
	Phone        string   `dynamodbav:"phone,omitempty"`
	Services     []string `dynamodbav:"services"`
	Approved     bool     `dynamodbav:"approved"`
	PortfolioURL string   `dynamodbav:"portfolio_url,omitempty"`
	Rating       float64  `dynamodbav:"rating"`
	CreatedAt    string   `dynamodbav:"created_at"`
}

// ProviderDynamoRepository persists Provider entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// List sorts by created_at so matching sees registration order.

type ProviderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProviderRepository = (*ProviderDynamoRepository)(nil)

func NewProviderDynamoRepository(ddb *dynamodb.Client) *ProviderDynamoRepository {
	return &ProviderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROVIDERS_TABLE", defaultProvidersTableName),
	}
}

func (r *ProviderDynamoRepository) Create(ctx context.Context, p entities.Provider) (entities.Provider, error) {
	av, err := attributevalue.MarshalMap(toProviderItem(p))
	if err != nil {
		return entities.Provider{}, err
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
		return entities.Provider{}, err
	}
	return p, nil
}

func (r *ProviderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Provider, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Provider{}, err
	}
	if len(out.Item) == 0 {
		return entities.Provider{}, nil
	}

	var it providerItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Provider{}, err
	}
	return fromProviderItem(it), nil
}

func (r *ProviderDynamoRepository) List(ctx context.Context) ([]entities.Provider, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	var items []providerItem
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
		return nil, err
	}
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt < items[j].CreatedAt })

	providers := make([]entities.Provider, 0, len(items))
	for _, it := range items {
		providers = append(providers, fromProviderItem(it))
	}
	return providers, nil
}

func (r *ProviderDynamoRepository) SetApproved(ctx context.Context, id string, approved bool) (entities.Provider, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #approved = :approved"),
		ExpressionAttributeNames: map[string]string{
			"#id":       "id",
			"#approved": "approved",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":approved": &types.AttributeValueMemberBOOL{Value: approved},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Provider{}, nil
		}
		return entities.Provider{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Provider{}, nil
	}

	var it providerItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Provider{}, err
	}
	return fromProviderItem(it), nil
}

func toProviderItem(p entities.Provider) providerItem {
	services := make([]string, 0, len(p.Services))
	for _, s := range p.Services {
		services = append(services, string(s))
	}
	return providerItem{
		ID:           p.ID,
		Name:         p.Name,
		Email:        p.Email,
		Phone:        p.Phone,
		Services:     services,
		Approved:     p.Approved,
		PortfolioURL: p.PortfolioURL,
		Rating:       p.Rating,
		CreatedAt:    formatTime(p.CreatedAt),
	}
}

func fromProviderItem(it providerItem) entities.Provider {
	services := make([]entities.ServiceType, 0, len(it.Services))
	for _, s := range it.Services {
		services = append(services, entities.ServiceType(s))
	}
	return entities.Provider{
		ID:           it.ID,
		Name:         it.Name,
		Email:        it.Email,
		Phone:        it.Phone,
		Services:     services,
		Approved:     it.Approved,
		PortfolioURL: it.PortfolioURL,
		Rating:       it.Rating,
		CreatedAt:    parseTime(it.CreatedAt),
	}
}
