package blob

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"

	"github.com/zainaaazz/FullStackWebApplication/config"
)

// objectAPI the subset of *minio.Client the store uses
type objectAPI interface {
	PutObject(ctx context.Context, bucket, objectName string, reader io.Reader, size int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	RemoveObject(ctx context.Context, bucket, objectName string, opts minio.RemoveObjectOptions) error
	StatObject(ctx context.Context, bucket, objectName string, opts minio.StatObjectOptions) (minio.ObjectInfo, error)
	GetObject(ctx context.Context, bucket, objectName string, opts minio.GetObjectOptions) (*minio.Object, error)
	PresignedGetObject(ctx context.Context, bucket, objectName string, expires time.Duration, reqParams url.Values) (*url.URL, error)
}

// MinioStore S3-compatible backend for local development and self-hosting
type MinioStore struct {
	client   objectAPI
	endpoint string
	secure   bool
	bucket   string
	logger   *zap.Logger
}

// NewMinioStore connects and creates the bucket when missing
func NewMinioStore(ctx context.Context, cfg *config.StorageConfig, logger *zap.Logger) (*MinioStore, error) {
	client, err := minio.New(cfg.Minio.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Minio.AccessKey, cfg.Minio.SecretKey, ""),
		Secure: cfg.Minio.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("creating minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Container)
	if err != nil {
		return nil, fmt.Errorf("checking bucket %s: %w", cfg.Container, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Container, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("creating bucket %s: %w", cfg.Container, err)
		}
	}

	logger.Info("minio storage ready",
		zap.String("endpoint", cfg.Minio.Endpoint),
		zap.String("bucket", cfg.Container),
	)

	return &MinioStore{
		client:   client,
		endpoint: cfg.Minio.Endpoint,
		secure:   cfg.Minio.UseSSL,
		bucket:   cfg.Container,
		logger:   logger,
	}, nil
}

func (s *MinioStore) Upload(ctx context.Context, name string, r io.Reader, size int64, contentType string) error {
	if _, err := s.client.PutObject(ctx, s.bucket, name, r, size, minio.PutObjectOptions{ContentType: contentType}); err != nil {
		return fmt.Errorf("uploading %s: %w", name, err)
	}
	return nil
}

func (s *MinioStore) Delete(ctx context.Context, name string) error {
	// RemoveObject succeeds on missing keys, so stat first to report ErrNotFound
	if _, err := s.client.StatObject(ctx, s.bucket, name, minio.StatObjectOptions{}); err != nil {
		if isNoSuchKey(err) {
			return ErrNotFound
		}
		return fmt.Errorf("stat %s: %w", name, err)
	}
	if err := s.client.RemoveObject(ctx, s.bucket, name, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("deleting %s: %w", name, err)
	}
	return nil
}

func (s *MinioStore) URL(name string) string {
	scheme := "http"
	if s.secure {
		scheme = "https"
	}
	u := url.URL{Scheme: scheme, Host: s.endpoint, Path: "/" + s.bucket + "/" + name}
	return u.String()
}

func (s *MinioStore) SignedURL(ctx context.Context, name string, ttl time.Duration) (string, error) {
	u, err := s.client.PresignedGetObject(ctx, s.bucket, name, ttl, url.Values{})
	if err != nil {
		return "", fmt.Errorf("presigning %s: %w", name, err)
	}
	return u.String(), nil
}

func (s *MinioStore) Open(ctx context.Context, name string) (*Object, error) {
	info, err := s.client.StatObject(ctx, s.bucket, name, minio.StatObjectOptions{})
	if err != nil {
		if isNoSuchKey(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("stat %s: %w", name, err)
	}

	obj, err := s.client.GetObject(ctx, s.bucket, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", name, err)
	}

	contentType := info.ContentType
	if contentType == "" {
		contentType = "video/mp4"
	}
	return &Object{Body: obj, Size: info.Size, ContentType: contentType}, nil
}

func isNoSuchKey(err error) bool {
	return minio.ToErrorResponse(err).Code == "NoSuchKey"
}
