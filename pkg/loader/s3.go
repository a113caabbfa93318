package loader

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/i18next/pkg/i18next"
)

// DefaultRegion is used when S3Config.Region is empty.
const DefaultRegion = "us-east-1"

// S3API is the subset of the S3 client used by the S3 source.
type S3API interface {
	s3.ListObjectsV2APIClient
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Config holds S3-compatible storage settings.
type S3Config struct {
	// Bucket is the bucket holding translation documents (required).
	Bucket string

	// AccessKey and SecretKey are static credentials.
	// When both are empty, requests are sent unsigned.
	AccessKey string
	SecretKey string

	// Endpoint is a custom endpoint URL (MinIO, R2, ...).
	Endpoint string

	// Region defaults to us-east-1.
	Region string

	// PathStyle enables path-style URLs (required for MinIO).
	PathStyle bool
}

// NewS3Client creates an S3 client from cfg.
func NewS3Client(cfg S3Config) (*s3.Client, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("%w: bucket is required", ErrInvalidConfig)
	}
	if (cfg.AccessKey == "") != (cfg.SecretKey == "") {
		return nil, fmt.Errorf("%w: access key and secret key must be set together", ErrInvalidConfig)
	}
	if cfg.Region == "" {
		cfg.Region = DefaultRegion
	}

	opts := []func(*s3.Options){
		func(o *s3.Options) {
			o.Region = cfg.Region
			if cfg.AccessKey != "" {
				o.Credentials = credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")
			} else {
				o.Credentials = aws.AnonymousCredentials{}
			}
		},
	}

	if cfg.Endpoint != "" {
		opts = append(opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = cfg.PathStyle
		})
	}

	return s3.New(s3.Options{}, opts...), nil
}

// S3 loads translation documents from a bucket. Object keys are matched
// against the pattern the same way file paths are.
type S3 struct {
	client  S3API
	opts    *options
	bucket  string
	pattern Pattern
}

var _ i18next.Source = (*S3)(nil)

// NewS3 creates a source listing bucket objects that match pattern,
// e.g. "locales/__lng__/__ns__.json".
func NewS3(client S3API, bucket, pattern string, opts ...Option) (*S3, error) {
	if client == nil {
		return nil, fmt.Errorf("%w: nil S3 client", ErrInvalidConfig)
	}
	if bucket == "" {
		return nil, fmt.Errorf("%w: bucket is required", ErrInvalidConfig)
	}
	p, err := ParsePattern(pattern)
	if err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	return &S3{client: client, bucket: bucket, pattern: p, opts: o}, nil
}

// Pattern returns the source's key pattern.
func (s *S3) Pattern() Pattern { return s.pattern }

// Load lists the bucket under the pattern's static prefix and fetches every
// matching object concurrently. Bundles are returned in listing order.
func (s *S3) Load(ctx context.Context, _ string) ([]i18next.Bundle, error) {
	keys, err := s.list(ctx)
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return nil, fmt.Errorf("%w: no objects in %q match %q", i18next.ErrSourceNotFound, s.bucket, s.pattern)
	}

	docs := make([][]byte, len(keys))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.concurrency)
	for idx, key := range keys {
		g.Go(func() error {
			data, err := s.fetch(gctx, key)
			if err != nil {
				return err
			}
			docs[idx] = data
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var bundles []i18next.Bundle
	for idx, key := range keys {
		b, err := bundlesFor(s.pattern, key, docs[idx])
		if err != nil {
			return nil, err
		}
		s.opts.logger.DebugContext(ctx, "translation document loaded",
			slog.String("bucket", s.bucket),
			slog.String("key", key),
			slog.Int("bundles", len(b)),
		)
		bundles = append(bundles, b...)
	}
	return bundles, nil
}

func (s *S3) list(ctx context.Context) ([]string, error) {
	input := &s3.ListObjectsV2Input{Bucket: aws.String(s.bucket)}
	if prefix := s.pattern.Prefix(); prefix != "" {
		input.Prefix = aws.String(prefix)
	}

	var keys []string
	paginator := s3.NewListObjectsV2Paginator(s.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, wrapS3Error(err, ErrReadFailed)
		}
		for _, obj := range page.Contents {
			key := aws.ToString(obj.Key)
			if _, ok := s.pattern.Match(key); ok {
				keys = append(keys, key)
			}
		}
	}
	return keys, nil
}

func (s *S3) fetch(ctx context.Context, key string) ([]byte, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, wrapS3Error(err, ErrReadFailed)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %q: %v", ErrReadFailed, key, err)
	}
	return data, nil
}
