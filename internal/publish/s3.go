package publish

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	perrors "github.com/vango-dev/primitives/internal/errors"
)

// PutObjectAPI is the part of *s3.Client that S3Sink uses.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Sink uploads objects to a bucket, below Prefix.
type S3Sink struct {
	Client PutObjectAPI
	Bucket string
	Prefix string

	// CacheControl is sent with every object when set.
	CacheControl string
}

// Put implements Sink.
func (s *S3Sink) Put(ctx context.Context, key, contentType string, body []byte) error {
	input := &s3.PutObjectInput{
		Bucket:        aws.String(s.Bucket),
		Key:           aws.String(s.Key(key)),
		Body:          bytes.NewReader(body),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(body))),
		Metadata: map[string]string{
			"generator": "primitives",
		},
	}
	if s.CacheControl != "" {
		input.CacheControl = aws.String(s.CacheControl)
	}
	if _, err := s.Client.PutObject(ctx, input); err != nil {
		return fmt.Errorf("s3 upload of %s failed: %w", key, err)
	}
	return nil
}

// Key returns the object key for a published key.
func (s *S3Sink) Key(key string) string {
	if s.Prefix == "" {
		return key
	}
	return path.Join(s.Prefix, key)
}

// S3Config configures NewS3Client.
type S3Config struct {
	Region string

	// Endpoint overrides the S3 endpoint, for MinIO or LocalStack.
	Endpoint string

	// PathStyle addresses the bucket in the URL path.
	PathStyle bool
}

// NewS3Client creates a client using credentials from AWS_ACCESS_KEY_ID,
// AWS_SECRET_ACCESS_KEY and AWS_SESSION_TOKEN. It returns an E305 error
// when the key pair is not set.
func NewS3Client(cfg S3Config) (*s3.Client, error) {
	creds, err := EnvCredentials()
	if err != nil {
		return nil, err
	}
	opts := s3.Options{
		Region:       cfg.Region,
		Credentials:  aws.NewCredentialsCache(creds),
		UsePathStyle: cfg.PathStyle,
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
	}
	return s3.New(opts), nil
}

// EnvCredentials returns a provider for the credentials in the standard
// AWS environment variables.
func EnvCredentials() (aws.CredentialsProvider, error) {
	id := os.Getenv("AWS_ACCESS_KEY_ID")
	secret := os.Getenv("AWS_SECRET_ACCESS_KEY")
	if id == "" || secret == "" {
		return nil, perrors.New("E305").
			WithComponent("publish.NewS3Client").
			WithDetail("AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY must both be set")
	}
	creds := aws.Credentials{
		AccessKeyID:     id,
		SecretAccessKey: secret,
		SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
		Source:          "Environment",
	}
	return aws.CredentialsProviderFunc(func(context.Context) (aws.Credentials, error) {
		return creds, nil
	}), nil
}
