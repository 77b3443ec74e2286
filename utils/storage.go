package utils

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

const uploadSlotTTL = 15 * time.Minute

// UploadSlot is a one-time presigned PUT target. The client uploads the
// image bytes directly; the key is what gets stored on the menu item.
type UploadSlot struct {
	Key       string `json:"key"`
	UploadURL string `json:"uploadUrl"`
}

func newS3Client(ctx context.Context) (*s3.Client, error) {
	endpoint := os.Getenv("S3_ENDPOINT")
	accessKey := os.Getenv("S3_ACCESS_KEY")
	secretKey := os.Getenv("S3_SECRET_KEY")

	opts := []func(*config.LoadOptions) error{
		config.WithRegion(getEnvOr("S3_REGION", "auto")),
	}
	if accessKey != "" && secretKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		))
	}
	if endpoint != "" {
		opts = append(opts, config.WithEndpointResolverWithOptions(
			aws.EndpointResolverWithOptionsFunc(
				func(service, region string, options ...interface{}) (aws.Endpoint, error) {
					if service == s3.ServiceID {
						return aws.Endpoint{URL: endpoint, SigningRegion: "auto"}, nil
					}
					return aws.Endpoint{}, &aws.EndpointNotFoundError{}
				},
			),
		))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("error loading storage config: %w", err)
	}
	return s3.NewFromConfig(cfg), nil
}

// PresignUpload creates an upload slot with a fresh object key.
func PresignUpload(ctx context.Context) (*UploadSlot, error) {
	bucket := os.Getenv("S3_BUCKET")
	if bucket == "" {
		return nil, fmt.Errorf("S3_BUCKET is not configured")
	}

	client, err := newS3Client(ctx)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("menu/%s", uuid.NewString())
	presigner := s3.NewPresignClient(client)
	req, err := presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(uploadSlotTTL))
	if err != nil {
		return nil, fmt.Errorf("failed to presign upload: %w", err)
	}

	return &UploadSlot{Key: key, UploadURL: req.URL}, nil
}

// AssetURL resolves a stored object key to its public URL. Empty keys
// resolve to an empty URL.
func AssetURL(key string) string {
	if key == "" {
		return ""
	}
	if base := os.Getenv("ASSET_BASE_URL"); base != "" {
		return fmt.Sprintf("%s/%s", base, key)
	}
	return fmt.Sprintf("https://%s/%s", os.Getenv("S3_BUCKET"), key)
}

func getEnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
