package repository

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/rakhigifts/shop-service/internal/domain"
	pkgconfig "github.com/rakhigifts/shop-service/pkg/config"
)

// Single-table layout: every entity is stored under PK = SK = Key.Encode(),
// with GSI1 (GSI1PK/GSI1SK) serving the per-user and active-product lookups.
const (
	userIndex = "GSI1"

	attrPK     = "PK"
	attrSK     = "SK"
	attrGSI1PK = "GSI1PK"
	attrGSI1SK = "GSI1SK"
)

func NewDynamoDBClient(ctx context.Context, cfg *pkgconfig.Config) (*dynamodb.Client, error) {
	if cfg.LocalMode {
		awsCfg, err := config.LoadDefaultConfig(ctx,
			config.WithRegion(cfg.AWSRegion),
			config.WithCredentialsProvider(
				credentials.NewStaticCredentialsProvider("local", "local", "")),
		)
		if err != nil {
			return nil, err
		}
		return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
			o.BaseEndpoint = aws.String(cfg.DynamoEndpoint)
		}), nil
	}

	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(cfg.AWSRegion),
	)
	if err != nil {
		return nil, err
	}
	return dynamodb.NewFromConfig(awsCfg), nil
}

func tableKey(k domain.Key) map[string]types.AttributeValue {
	encoded := &types.AttributeValueMemberS{Value: k.Encode()}
	return map[string]types.AttributeValue{
		attrPK: encoded,
		attrSK: encoded,
	}
}

func withKeys(av map[string]types.AttributeValue, primary domain.Key, gsi1pk, gsi1sk string) map[string]types.AttributeValue {
	encoded := primary.Encode()
	av[attrPK] = &types.AttributeValueMemberS{Value: encoded}
	av[attrSK] = &types.AttributeValueMemberS{Value: encoded}
	if gsi1pk != "" {
		av[attrGSI1PK] = &types.AttributeValueMemberS{Value: gsi1pk}
		av[attrGSI1SK] = &types.AttributeValueMemberS{Value: gsi1sk}
	}
	return av
}
