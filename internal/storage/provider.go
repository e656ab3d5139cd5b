package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"image-board/internal/config"
)

// Provider defines the behavior for any image storage backend.
// Keys are flat token names such as "2f1c...e9.jpg".
type Provider interface {
	Put(ctx context.Context, key string, body io.ReadSeeker, contentType string) error
	Get(ctx context.Context, key string) (*FileObject, error)
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) ([]string, error)
	// URL returns the public address of a stored object.
	URL(key string) string
}

// FileObject is the provider-agnostic representation of a stored file.
type FileObject struct {
	Body          io.ReadCloser
	ContentLength int64
	ContentType   string
	LastModified  time.Time
}

// New selects the backend configured under storage.provider.
func New(cfg *config.Config) (Provider, error) {
	switch cfg.Storage.Provider {
	case "", "local":
		return NewLocalProvider(cfg.Storage.Path, cfg.Storage.URLPrefix)
	case "s3":
		return NewS3Provider(cfg.Storage.S3)
	default:
		return nil, fmt.Errorf("unknown storage provider %q", cfg.Storage.Provider)
	}
}
