package lib

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
)

// Session loads the shared aws config for one profile and region. Credentials
// come from the sdk's default chain. Retries are disabled.
func Session(ctx context.Context, profile, region string) (*aws.Config, error) {
	cfg, err := config.LoadDefaultConfig(
		ctx,
		config.WithRegion(region),
		config.WithSharedConfigProfile(profile),
		config.WithRetryMaxAttempts(1),
	)
	if err != nil {
		return nil, &ProviderError{Err: err}
	}
	return &cfg, nil
}
