package resume

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// Storage persists resume file payloads outside the relational store.
type Storage interface {
	Put(ctx context.Context, key string, contentType string, r io.Reader, size int64) error
	Delete(ctx context.Context, key string) error
}

type s3Storage struct {
	client *s3.Client
	bucket string
}

// NewS3Storage builds a client for any S3-compatible endpoint (MinIO works
// with path-style addressing).
func NewS3Storage(ctx context.Context) (Storage, error) {
	region := os.Getenv("S3_REGION")
	if region == "" {
		region = "us-east-1"
	}
	bucket := os.Getenv("S3_BUCKET")
	if bucket == "" {
		return nil, fmt.Errorf("S3_BUCKET is not set")
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			os.Getenv("S3_ACCESS_KEY"),
			os.Getenv("S3_SECRET_KEY"),
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("load s3 config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint := os.Getenv("S3_ENDPOINT"); endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})

	return &s3Storage{client: client, bucket: bucket}, nil
}

func (s *s3Storage) Put(ctx context.Context, key string, contentType string, r io.Reader, size int64) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          r,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
	})
	return err
}

func (s *s3Storage) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return err
}

func newStorageKey() string {
	d := time.Now().UTC()
	return fmt.Sprintf("resumes/%d/%02d/%02d/%v", d.Year(), d.Month(), d.Day(), uuid.New())
}
