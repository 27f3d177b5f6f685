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

type CartRepository struct {
	client    *dynamodb.Client
	tableName string
}

func NewCartRepository(client *dynamodb.Client, tableName string) *CartRepository {
	return &CartRepository{
		client:    client,
		tableName: tableName,
	}
}

func (r *CartRepository) Put(ctx context.Context, item *domain.CartItem) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("failed to marshal cart item: %w", err)
	}

	key := domain.CartKey(item.ID)
	withKeys(av, key, domain.UserKey(item.UserID).Encode(), key.Encode())

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("failed to put cart item: %w", err)
	}

	return nil
}

func (r *CartRepository) Get(ctx context.Context, itemID string) (*domain.CartItem, error) {
	result, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       tableKey(domain.CartKey(itemID)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get cart item: %w", err)
	}

	if result.Item == nil {
		return nil, domain.ErrCartItemNotFound
	}

	var item domain.CartItem
	if err := attributevalue.UnmarshalMap(result.Item, &item); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cart item: %w", err)
	}

	return &item, nil
}

func (r *CartRepository) ListByUser(ctx context.Context, userID string) ([]domain.CartItem, error) {
	keyCond := expression.
		Key(attrGSI1PK).Equal(expression.Value(domain.UserKey(userID).Encode())).
		And(expression.Key(attrGSI1SK).BeginsWith(string(domain.KindCart) + "#"))

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
		return nil, fmt.Errorf("failed to query cart: %w", err)
	}

	items := make([]domain.CartItem, 0, len(result.Items))
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cart items: %w", err)
	}

	return items, nil
}

func (r *CartRepository) UpdateQuantity(ctx context.Context, itemID string, quantity int) (*domain.CartItem, error) {
	update := expression.
		Set(expression.Name("quantity"), expression.Value(quantity)).
		Set(expression.Name("updatedAt"), expression.Value(time.Now().UTC()))

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
		Key:                       tableKey(domain.CartKey(itemID)),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		UpdateExpression:          expr.Update(),
		ConditionExpression:       expr.Condition(),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return nil, domain.ErrCartItemNotFound
		}
		return nil, fmt.Errorf("failed to update cart item: %w", err)
	}

	var item domain.CartItem
	if err := attributevalue.UnmarshalMap(result.Attributes, &item); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cart item: %w", err)
	}

	return &item, nil
}

// Delete is unconditional; deleting an absent item is indistinguishable from
// deleting one that never existed, which keeps cart clearing safe to retry.
func (r *CartRepository) Delete(ctx context.Context, itemID string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       tableKey(domain.CartKey(itemID)),
	})
	if err != nil {
		return fmt.Errorf("failed to delete cart item: %w", err)
	}
	return nil
}
