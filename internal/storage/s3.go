package storage

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/lanavaja/barber-platform/internal/config"
)

const signedURLTTL = 15 * time.Minute

// Store writes objects under two key prefixes: public/ objects resolve to
// a direct bucket URL, private/ objects only through a short-lived signed
// URL.
type Store struct {
	client  *s3.Client
	presign *s3.PresignClient
	bucket  string
	region  string
}

func New(cfg *config.Config) *Store {
	awsCfg := aws.Config{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey, cfg.S3SecretKey, "",
		),
	}

	client := s3.NewFromConfig(awsCfg)

	return &Store{
		client:  client,
		presign: s3.NewPresignClient(client),
		bucket:  cfg.S3Bucket,
		region:  cfg.S3Region,
	}
}

// UploadPublic stores data under public/{prefix}/{uuid}{ext} and returns
// the object key and its direct URL.
func (s *Store) UploadPublic(
	ctx context.Context,
	prefix string,
	data []byte,
	ext string,
	contentType string,
) (string, string, error) {

	key := fmt.Sprintf("public/%s/%s%s", prefix, uuid.NewString(), ext)
	if err := s.put(ctx, key, data, contentType); err != nil {
		return "", "", err
	}

	return key, s.PublicURL(key), nil
}

// UploadPrivate stores data under private/{prefix}/{uuid}{ext}; the key is
// only resolvable through SignedURL.
func (s *Store) UploadPrivate(
	ctx context.Context,
	prefix string,
	data []byte,
	ext string,
	contentType string,
) (string, error) {

	key := fmt.Sprintf("private/%s/%s%s", prefix, uuid.NewString(), ext)
	if err := s.put(ctx, key, data, contentType); err != nil {
		return "", err
	}

	return key, nil
}

func (s *Store) put(ctx context.Context, key string, data []byte, contentType string) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	return err
}

func (s *Store) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return err
}

func (s *Store) PublicURL(key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}

// SignedURL returns a 15-minute GET URL for a private key.
func (s *Store) SignedURL(ctx context.Context, key string) (string, error) {
	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(signedURLTTL))
	if err != nil {
		return "", err
	}

	return req.URL, nil
}
