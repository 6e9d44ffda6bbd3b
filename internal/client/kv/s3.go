package kv

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// ErrConflict is returned by Update when the object changed between the read
// and the conditional write.
var ErrConflict = errors.New("concurrent modification")

type s3API interface {
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Options describes how to reach an S3-compatible bucket.
type S3Options struct {
	Bucket    string
	Region    string
	Endpoint  string // empty for AWS, e.g. http://localhost:9000 for MinIO
	AccessKey string
	SecretKey string
	Prefix    string
}

// NewS3Client builds an S3 client from static credentials. A custom endpoint
// switches to path-style addressing, which MinIO and most self-hosted
// services require.
func NewS3Client(ctx context.Context, o S3Options) (*s3.Client, error) {
	loadOpts := []func(*config.LoadOptions) error{config.WithRegion(o.Region)}
	if o.AccessKey != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(o.AccessKey, o.SecretKey, ""),
		))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return s3.NewFromConfig(cfg, func(opts *s3.Options) {
		if o.Endpoint != "" {
			opts.BaseEndpoint = aws.String(o.Endpoint)
			opts.UsePathStyle = true
		}
	}), nil
}

// S3Repository stores each key as the object <prefix><key>.
type S3Repository struct {
	client s3API
	bucket string
	prefix string
}

func NewS3Repository(client s3API, bucket, prefix string) *S3Repository {
	return &S3Repository{client: client, bucket: bucket, prefix: prefix}
}

func (r *S3Repository) objectKey(key string) *string {
	return aws.String(r.prefix + key)
}

func (r *S3Repository) Get(ctx context.Context, key string) ([]byte, error) {
	value, _, err := r.get(ctx, key)
	return value, err
}

// Update writes conditionally on the ETag seen by the read, or on the object
// still being absent. A lost race returns ErrConflict.
func (r *S3Repository) Update(ctx context.Context, key string, fn UpdateFunc) error {
	current, etag, err := r.get(ctx, key)
	if err != nil {
		return err
	}

	next, err := fn(current)
	if err != nil {
		return err
	}

	in := &s3.PutObjectInput{
		Bucket:      aws.String(r.bucket),
		Key:         r.objectKey(key),
		Body:        bytes.NewReader(next),
		ContentType: aws.String("application/json"),
	}
	if etag != nil {
		in.IfMatch = etag
	} else {
		in.IfNoneMatch = aws.String("*")
	}

	if _, err := r.client.PutObject(ctx, in); err != nil {
		if isPreconditionFailed(err) {
			return fmt.Errorf("failed to put object %s: %w", r.prefix+key, ErrConflict)
		}
		return fmt.Errorf("failed to put object %s: %w", r.prefix+key, err)
	}
	return nil
}

func (r *S3Repository) get(ctx context.Context, key string) ([]byte, *string, error) {
	out, err := r.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    r.objectKey(key),
	})
	if err != nil {
		if isNoSuchKey(err) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("failed to get object %s: %w", r.prefix+key, err)
	}
	defer out.Body.Close()

	value, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read object %s: %w", r.prefix+key, err)
	}
	return value, out.ETag, nil
}

func isNoSuchKey(err error) bool {
	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return true
	}
	var apiErr smithy.APIError
	return errors.As(err, &apiErr) && apiErr.ErrorCode() == "NotFound"
}

func isPreconditionFailed(err error) bool {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	switch apiErr.ErrorCode() {
	case "PreconditionFailed", "ConditionalRequestConflict":
		return true
	}
	return false
}
