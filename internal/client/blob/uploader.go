// Package blob uploads profile images to S3-compatible object storage and
// returns the resolvable public URL the profile record may reference. A URL
// is only ever returned after the upload has fully completed, so a profile
// can never point at an in-flight or failed upload.
package blob

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/ashish-aa/skillmesh/internal/common"
	"github.com/ashish-aa/skillmesh/internal/filex"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// Uploader stores a locally picked image and resolves its public address.
type Uploader interface {
	UploadImage(ctx context.Context, accountID string, localPath string) (string, error)
}

// Config carries the object-storage settings the uploader needs.
type Config struct {
	AccessKey    string
	SecretKey    string
	Bucket       string
	Region       string
	BaseEndpoint string // set for MinIO and other S3-compatible backends
	PublicURL    string // base for returned URLs; empty means AWS virtual-hosted style
}

type s3Uploader struct {
	cfg Config

	// seam for tests
	newClient func(ctx context.Context, cfg Config) (s3PutObjectAPI, error)
}

type s3PutObjectAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

func newS3Client(ctx context.Context, cfg Config) (s3PutObjectAPI, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.BaseEndpoint)
			o.UsePathStyle = true
		}
	})
	return client, nil
}

// NewS3Uploader builds an Uploader over an S3 bucket.
func NewS3Uploader(cfg Config) Uploader {
	return &s3Uploader{cfg: cfg, newClient: newS3Client}
}

// objectKey places each image under its owner with a random name, matching
// the backend's media layout.
func objectKey(accountID string) string {
	return fmt.Sprintf("profile_images/%s/%s.jpg", accountID, uuid.New())
}

// UploadImage reads the image at localPath and stores it under the
// account's media prefix. On success it returns the public URL of the
// uploaded object. Any failure is reported as common.ErrUpload.
func (u *s3Uploader) UploadImage(ctx context.Context, accountID string, localPath string) (string, error) {
	data, contentType, err := filex.ReadImage(localPath)
	if err != nil {
		return "", fmt.Errorf("%w: %w", common.ErrUpload, err)
	}

	client, err := u.newClient(ctx, u.cfg)
	if err != nil {
		return "", fmt.Errorf("%w: %w", common.ErrUpload, err)
	}

	key := objectKey(accountID)

	_, err = client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.cfg.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", common.ErrUpload, err)
	}

	return u.publicURL(key), nil
}

func (u *s3Uploader) publicURL(key string) string {
	if u.cfg.PublicURL != "" {
		return strings.TrimRight(u.cfg.PublicURL, "/") + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.cfg.Bucket, u.cfg.Region, key)
}
