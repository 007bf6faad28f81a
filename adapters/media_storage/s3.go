package media_storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/dimasadrian/portfolio/internal/application/service"
	"github.com/dimasadrian/portfolio/internal/config"
	"github.com/dimasadrian/portfolio/internal/domain/asset"
	"github.com/dimasadrian/portfolio/pkg/logger"
)

// s3Storage writes to any S3 compatible service (AWS, MinIO, R2).
// Each logical bucket becomes BucketPrefix+bucket.
type s3Storage struct {
	client        *s3.Client
	bucketPrefix  string
	publicBaseURL string
	endpoint      string
	usePathStyle  bool
}

func NewS3Storage(ctx context.Context, cfg config.Config, log logger.Logger) (service.ObjectStorage, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.S3.Region),
	}
	if cfg.S3.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3.AccessKey, cfg.S3.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("cannot load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3.Endpoint)
		}
		o.UsePathStyle = cfg.S3.UsePathStyle
	})

	log.Info("Initialize S3 storage successfully.")
	return &s3Storage{
		client:        client,
		bucketPrefix:  cfg.S3.BucketPrefix,
		publicBaseURL: cfg.S3.PublicBaseURL,
		endpoint:      cfg.S3.Endpoint,
		usePathStyle:  cfg.S3.UsePathStyle,
	}, nil
}

func (s *s3Storage) bucketName(bucket string) string {
	return s.bucketPrefix + bucket
}

// objectURL puts the bucket in the path for path-style access and in the
// host otherwise.
func (s *s3Storage) objectURL(bucket, name string) string {
	base := strings.TrimRight(s.publicBaseURL, "/")
	if base == "" {
		base = strings.TrimRight(s.endpoint, "/")
	}
	if base == "" {
		return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucketName(bucket), name)
	}
	bucketName := s.bucketName(bucket)
	if !s.usePathStyle {
		if u, err := url.Parse(base); err == nil && u.Host != "" {
			u.Host = bucketName + "." + u.Host
			return strings.TrimRight(u.String(), "/") + "/" + name
		}
	}
	return base + "/" + bucketName + "/" + name
}

func (s *s3Storage) Upload(ctx context.Context, bucket, name string, r io.Reader, contentType string) (string, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucketName(bucket)),
		Key:         aws.String(name),
		Body:        r,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload s3 object: %w", err)
	}
	return s.objectURL(bucket, name), nil
}

// Delete checks existence first. DeleteObject succeeds on missing keys.
func (s *s3Storage) Delete(ctx context.Context, bucket, name string) error {
	b := aws.String(s.bucketName(bucket))
	key := aws.String(name)

	if _, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{Bucket: b, Key: key}); err != nil {
		var notFound *types.NotFound
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &notFound) || errors.As(err, &noSuchKey) {
			return asset.ErrObjectNotFound
		}
		return fmt.Errorf("failed to stat s3 object: %w", err)
	}

	if _, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{Bucket: b, Key: key}); err != nil {
		return fmt.Errorf("failed to delete s3 object: %w", err)
	}
	return nil
}
