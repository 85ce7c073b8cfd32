package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	aws "github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/iliyamo/house-listing-api/internal/config"
)

// S3 stores uploads in an S3-compatible bucket (AWS S3 or MinIO).
// Minimal surface area: a single bucket, keys under the uploads/
// prefix, objects assumed publicly readable by bucket policy. This is
// the provider-backed counterpart to the local Filesystem driver.
type S3 struct {
	client   *s3.Client
	bucket   string
	region   string
	endpoint string // optional explicit endpoint for constructing URLs
}

// NewS3 builds a client from the default AWS credentials chain plus the
// service configuration. S3_BUCKET is required; S3_ENDPOINT and
// S3_PATH_STYLE exist for MinIO-style deployments.
func NewS3(ctx context.Context, cfg config.Config) (*S3, error) {
	if cfg.S3Bucket == "" {
		return nil, fmt.Errorf("S3_BUCKET required for s3 upload driver")
	}
	region := cfg.S3Region
	if region == "" {
		region = "us-east-1"
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, err
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3PathStyle {
			o.UsePathStyle = true
		}
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
		}
	})
	return &S3{client: client, bucket: cfg.S3Bucket, region: region, endpoint: cfg.S3Endpoint}, nil
}

// Save uploads the file under uploads/<uuid><ext> and returns the
// object's public URL.
func (s *S3) Save(ctx context.Context, originalName, contentType string, r io.Reader) (string, error) {
	key := "uploads/" + uuid.New().String() + filepath.Ext(originalName)
	input := &s3.PutObjectInput{Bucket: &s.bucket, Key: &key, Body: r}
	if contentType != "" {
		input.ContentType = &contentType
	}
	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}
	return s.objectURL(key), nil
}

// objectURL builds the browser-facing URL for a stored object. With a
// custom endpoint the bucket becomes a path segment; against AWS the
// standard virtual-hosted form is used.
func (s *S3) objectURL(key string) string {
	if s.endpoint != "" {
		return strings.TrimSuffix(s.endpoint, "/") + "/" + s.bucket + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}
