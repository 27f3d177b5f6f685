package repository

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/rakhigifts/shop-service/internal/domain"
)

type BlogRepository struct {
	client    *dynamodb.Client
	tableName string
}

func NewBlogRepository(client *dynamodb.Client, tableName string) *BlogRepository {
	return &BlogRepository{
		client:    client,
		tableName: tableName,
	}
}

func (r *BlogRepository) Put(ctx context.Context, post *domain.BlogPost) error {
	av, err := attributevalue.MarshalMap(post)
	if err != nil {
		return fmt.Errorf("failed to marshal blog post: %w", err)
	}

	withKeys(av, domain.BlogKey(post.Slug), "", "")

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("failed to put blog post: %w", err)
	}

	return nil
}

func (r *BlogRepository) Get(ctx context.Context, slug string) (*domain.BlogPost, error) {
	result, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       tableKey(domain.BlogKey(slug)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get blog post: %w", err)
	}

	if result.Item == nil {
		return nil, domain.ErrBlogPostNotFound
	}

	var post domain.BlogPost
	if err := attributevalue.UnmarshalMap(result.Item, &post); err != nil {
		return nil, fmt.Errorf("failed to unmarshal blog post: %w", err)
	}

	return &post, nil
}
