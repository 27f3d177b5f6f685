package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/rakhigifts/shop-service/pkg/tls"
)

type Config struct {
	Port      string `envconfig:"PORT" default:"8080"`
	AWSRegion string `envconfig:"AWS_REGION" default:"us-east-1"`
	TableName string `envconfig:"DYNAMODB_TABLE" default:"giftshop-table"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`

	// LocalMode points the DynamoDB client at DynamoEndpoint with static
	// credentials instead of the AWS default chain.
	LocalMode      bool   `envconfig:"LOCAL_MODE" default:"false"`
	DynamoEndpoint string `envconfig:"DYNAMODB_ENDPOINT" default:"http://localhost:8000"`

	StripeSecretKey     string `envconfig:"STRIPE_SECRET_KEY"`
	StripeWebhookSecret string `envconfig:"STRIPE_WEBHOOK_SECRET"`
	FrontendURL         string `envconfig:"FRONTEND_URL" default:"http://localhost:3000"`

	AdminAPIKey string `envconfig:"ADMIN_API_KEY"`

	// Empty brokers disable event publishing.
	KafkaBrokers string `envconfig:"KAFKA_BROKERS" default:""`

	OpenAIAPIKey string `envconfig:"OPENAI_API_KEY"`

	TLS tls.TLSConfig
}

func Load() (*Config, error) {
	godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
