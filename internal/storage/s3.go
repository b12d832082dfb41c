// filepath: internal/storage/s3.go
package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

var _ BlobStore = (*S3Store)(nil)

// S3Store uploads images to an S3 bucket with public-read objects. When a
// base URL is configured (a CloudFront distribution, typically) it is used
// for the returned URLs instead of the bucket endpoint.
type S3Store struct {
	Client  *s3.Client
	Bucket  string
	Region  string
	BaseURL string
}

// NewS3Store loads the default AWS credential chain for the given region.
func NewS3Store(ctx context.Context, bucket, region, baseURL string) (*S3Store, error) {
	if bucket == "" {
		return nil, fmt.Errorf("s3 storage requires a bucket name")
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS config: %w", err)
	}

	return &S3Store{
		Client:  s3.NewFromConfig(cfg),
		Bucket:  bucket,
		Region:  region,
		BaseURL: strings.TrimSuffix(baseURL, "/"),
	}, nil
}

// Name implements BlobStore.
func (s *S3Store) Name() string { return "s3" }

// Store uploads the file under recipe-images/ and returns its public URL.
func (s *S3Store) Store(ctx context.Context, data []byte, contentType, filename string) (string, error) {
	key := "recipe-images/" + objectName(contentType, filename)

	_, err := s.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
		ACL:         s3types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	if s.BaseURL != "" {
		return fmt.Sprintf("%s/%s", s.BaseURL, key), nil
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.Bucket, s.Region, key), nil
}
