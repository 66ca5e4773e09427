package mailing

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"github.com/ignite/bulkmail/internal/domain"
)

// sesAPI is the subset of the SES v2 client used by SESTransport.
type sesAPI interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// SESTransport submits mail through AWS SES v2.
type SESTransport struct {
	client sesAPI
}

// NewSESTransport creates an SES transport. When static keys are empty the
// default AWS credential chain is used.
func NewSESTransport(ctx context.Context, accessKey, secretKey, region string) (*SESTransport, error) {
	if region == "" {
		region = "us-east-1"
	}

	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(region)}
	if accessKey != "" && secretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return &SESTransport{client: sesv2.NewFromConfig(cfg)}, nil
}

// Name implements Transport.
func (s *SESTransport) Name() string { return "ses" }

// Submit implements Transport.
func (s *SESTransport) Submit(ctx context.Context, env domain.Envelope) error {
	body := &types.Body{
		Text: &types.Content{Data: aws.String(env.Text), Charset: aws.String("UTF-8")},
	}
	if env.HasHTML() {
		body.Html = &types.Content{Data: aws.String(env.HTML), Charset: aws.String("UTF-8")}
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(env.From),
		Destination:      &types.Destination{ToAddresses: env.To},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(env.Subject), Charset: aws.String("UTF-8")},
				Body:    body,
			},
		},
	}

	if _, err := s.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("ses send: %w", err)
	}
	return nil
}
