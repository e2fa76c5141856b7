package blob

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/zainaaazz/FullStackWebApplication/config"
)

// ErrNotFound the named object does not exist
var ErrNotFound = errors.New("blob not found")

// Object an opened object; the caller closes Body
type Object struct {
	Body        io.ReadCloser
	Size        int64
	ContentType string
}

// Store object storage gateway for video files
type Store interface {
	// Upload writes r under name; size may be -1 when unknown.
	Upload(ctx context.Context, name string, r io.Reader, size int64, contentType string) error
	// Delete removes name. A missing object returns ErrNotFound.
	Delete(ctx context.Context, name string) error
	// URL the unsigned object URL
	URL(name string) string
	// SignedURL a read-only URL valid for ttl
	SignedURL(ctx context.Context, name string, ttl time.Duration) (string, error)
	Open(ctx context.Context, name string) (*Object, error)
}

// NewStore builds the Store selected by cfg.Driver
func NewStore(ctx context.Context, cfg *config.StorageConfig, logger *zap.Logger) (Store, error) {
	switch cfg.Driver {
	case "azure":
		s, err := NewAzureStore(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
		return s, nil
	case "minio":
		s, err := NewMinioStore(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
		return s, nil
	case "memory":
		logger.Warn("using in-memory object store; videos are lost on restart")
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
