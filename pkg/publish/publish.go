// Package publish uploads rendered pages to S3-compatible object storage.
//
// Example usage:
//
//	client, err := publish.NewS3Client(cfg.Publish)
//	p := publish.New(client, cfg.Publish.Bucket, cfg.Publish.Prefix)
//	loc, err := p.Publish(ctx, "events/today.html", html)
package publish

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/wutup-dev/wutup/internal/config"
	"github.com/wutup-dev/wutup/internal/errors"
)

// ContentType is set on every published object.
const ContentType = "text/html; charset=utf-8"

// Putter is the subset of *s3.Client used by Publisher.
type Putter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Publisher writes HTML documents under a bucket prefix.
type Publisher struct {
	client Putter
	bucket string
	prefix string
	logger *slog.Logger
	now    func() time.Time
}

// New creates a Publisher. prefix may be empty.
func New(client Putter, bucket, prefix string) *Publisher {
	return &Publisher{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
		logger: slog.Default().With("component", "publish"),
		now:    time.Now,
	}
}

// WithLogger sets the logger.
func (p *Publisher) WithLogger(l *slog.Logger) *Publisher {
	p.logger = l
	return p
}

// Key returns the full object key for name.
func (p *Publisher) Key(name string) string {
	name = strings.TrimLeft(name, "/")
	if p.prefix == "" {
		return name
	}
	return path.Join(p.prefix, name)
}

// Publish uploads html as name and returns its s3:// location.
func (p *Publisher) Publish(ctx context.Context, name string, html []byte) (string, error) {
	if p.client == nil || p.bucket == "" {
		return "", errors.New("E041").
			WithSuggestion("Set publish.bucket in wutup.yaml or pass --bucket")
	}
	if strings.Trim(name, "/") == "" {
		return "", errors.New("E040").WithDetail("object key is empty")
	}

	key := p.Key(name)
	_, err := p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(p.bucket),
		Key:          aws.String(key),
		Body:         bytes.NewReader(html),
		ContentType:  aws.String(ContentType),
		CacheControl: aws.String("no-cache"),
		Metadata: map[string]string{
			"publish-time": p.now().UTC().Format(time.RFC3339),
		},
	})
	if err != nil {
		return "", errors.New("E040").WithDetailf("s3://%s/%s", p.bucket, key).Wrap(err)
	}

	loc := fmt.Sprintf("s3://%s/%s", p.bucket, key)
	p.logger.Info("published page", "location", loc, "bytes", len(html))
	return loc, nil
}

// NewS3Client builds an S3 client from cfg. Credentials come from
// AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY and AWS_SESSION_TOKEN.
func NewS3Client(cfg config.PublishConfig) (*s3.Client, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("E041").
			WithSuggestion("Set publish.bucket in wutup.yaml or pass --bucket")
	}

	region := cfg.Region
	if region == "" {
		region = os.Getenv("AWS_REGION")
	}
	if region == "" {
		region = "us-east-1"
	}

	opts := s3.Options{
		Region:       region,
		Credentials:  aws.NewCredentialsCache(aws.CredentialsProviderFunc(envCredentials)),
		UsePathStyle: cfg.PathStyle,
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
	}
	return s3.New(opts), nil
}

func envCredentials(context.Context) (aws.Credentials, error) {
	id := os.Getenv("AWS_ACCESS_KEY_ID")
	secret := os.Getenv("AWS_SECRET_ACCESS_KEY")
	if id == "" || secret == "" {
		return aws.Credentials{}, errors.New("E041").
			WithDetail("AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY are not set")
	}
	return aws.Credentials{
		AccessKeyID:     id,
		SecretAccessKey: secret,
		SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
		Source:          "Environment",
	}, nil
}
