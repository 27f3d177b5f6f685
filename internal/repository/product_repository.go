package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/rakhigifts/shop-service/internal/domain"
)

const (
	activeProductsPK   = "PRODUCT#ACTIVE"
	inactiveProductsPK = "PRODUCT#INACTIVE"
)

type ProductRepository struct {
	client    *dynamodb.Client
	tableName string
}

func NewProductRepository(client *dynamodb.Client, tableName string) *ProductRepository {
	return &ProductRepository{
		client:    client,
		tableName: tableName,
	}
}

func productListPK(active bool) string {
	if active {
		return activeProductsPK
	}
	return inactiveProductsPK
}

func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) error {
	av, err := attributevalue.MarshalMap(product)
	if err != nil {
		return fmt.Errorf("failed to marshal product: %w", err)
	}

	key := domain.ProductKey(product.ID)
	withKeys(av, key, productListPK(product.IsActive), key.Encode())

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("failed to put item: %w", err)
	}

	return nil
}

func (r *ProductRepository) Get(ctx context.Context, productID string) (*domain.Product, error) {
	result, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       tableKey(domain.ProductKey(productID)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}

	if result.Item == nil {
		return nil, domain.ErrProductNotFound
	}

	var product domain.Product
	if err := attributevalue.UnmarshalMap(result.Item, &product); err != nil {
		return nil, fmt.Errorf("failed to unmarshal product: %w", err)
	}

	return &product, nil
}

func (r *ProductRepository) ListActive(ctx context.Context) ([]domain.Product, error) {
	keyCond := expression.Key(attrGSI1PK).Equal(expression.Value(activeProductsPK))

	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build expression: %w", err)
	}

	result, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String(userIndex),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}

	products := make([]domain.Product, 0, len(result.Items))
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &products); err != nil {
		return nil, fmt.Errorf("failed to unmarshal products: %w", err)
	}

	return products, nil
}

// Update serializes only the fields set on the partial update. The index
// partition moves between active and inactive when IsActive flips.
func (r *ProductRepository) Update(ctx context.Context, productID string, upd domain.ProductUpdate) (*domain.Product, error) {
	update := expression.Set(expression.Name("updatedAt"), expression.Value(time.Now().UTC()))

	if upd.Name != nil {
		update = update.Set(expression.Name("name"), expression.Value(*upd.Name))
	}
	if upd.Description != nil {
		update = update.Set(expression.Name("description"), expression.Value(*upd.Description))
	}
	if upd.Price != nil {
		update = update.Set(expression.Name("price"), expression.Value(*upd.Price))
	}
	if upd.Category != nil {
		update = update.Set(expression.Name("category"), expression.Value(*upd.Category))
	}
	if upd.Images != nil {
		update = update.Set(expression.Name("images"), expression.Value(*upd.Images))
	}
	if upd.Stock != nil {
		update = update.Set(expression.Name("stock"), expression.Value(*upd.Stock))
	}
	if upd.SKU != nil {
		update = update.Set(expression.Name("sku"), expression.Value(*upd.SKU))
	}
	if upd.Weight != nil {
		update = update.Set(expression.Name("weight"), expression.Value(*upd.Weight))
	}
	if upd.Dimensions != nil {
		update = update.Set(expression.Name("dimensions"), expression.Value(*upd.Dimensions))
	}
	if upd.DeliveryInfo != nil {
		update = update.Set(expression.Name("deliveryInfo"), expression.Value(*upd.DeliveryInfo))
	}
	if upd.IsActive != nil {
		update = update.
			Set(expression.Name("isActive"), expression.Value(*upd.IsActive)).
			Set(expression.Name(attrGSI1PK), expression.Value(productListPK(*upd.IsActive)))
	}

	condition := expression.AttributeExists(expression.Name(attrPK))

	expr, err := expression.NewBuilder().
		WithUpdate(update).
		WithCondition(condition).
		Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build expression: %w", err)
	}

	result, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       tableKey(domain.ProductKey(productID)),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		UpdateExpression:          expr.Update(),
		ConditionExpression:       expr.Condition(),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	var product domain.Product
	if err := attributevalue.UnmarshalMap(result.Attributes, &product); err != nil {
		return nil, fmt.Errorf("failed to unmarshal product: %w", err)
	}

	return &product, nil
}

func (r *ProductRepository) Delete(ctx context.Context, productID string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       tableKey(domain.ProductKey(productID)),
	})
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}
