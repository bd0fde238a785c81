package database

import (
	"context"
	"testing"

	"marcenaria_gestao/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

func TestNewAWSConfig(t *testing.T) {
	cfg := config.Config{AWSRegion: "sa-east-1", AWSAccessKeyID: "local", AWSSecretAccessKey: "local"}

	awsCfg, err := NewAWSConfig(context.Background(), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if awsCfg.Region != "sa-east-1" {
		t.Fatalf("expected region sa-east-1, got %s", awsCfg.Region)
	}
	creds, err := awsCfg.Credentials.Retrieve(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if creds.AccessKeyID != "local" {
		t.Fatalf("expected static credentials, got %s", creds.AccessKeyID)
	}
}

func TestEndpointOption(t *testing.T) {
	t.Run("custom endpoint", func(t *testing.T) {
		var o dynamodb.Options
		endpointOption("http://dynamodb:8000")(&o)
		if aws.ToString(o.BaseEndpoint) != "http://dynamodb:8000" {
			t.Fatalf("expected base endpoint, got %v", o.BaseEndpoint)
		}
	})

	t.Run("default endpoint", func(t *testing.T) {
		var o dynamodb.Options
		endpointOption("")(&o)
		if o.BaseEndpoint != nil {
			t.Fatalf("expected no base endpoint, got %s", *o.BaseEndpoint)
		}
	})
}
