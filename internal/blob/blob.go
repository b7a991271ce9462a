package blob

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/BruksfildServices01/salon-scheduler/internal/config"
)

var ErrNotFound = errors.New("blob: not found")

// Store keeps opaque objects under slash-separated keys.
type Store interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Get(ctx context.Context, key string) ([]byte, error)
}

// New builds the store selected by BLOB_BACKEND.
func New(cfg config.BlobConfig) (Store, error) {
	switch cfg.Backend {
	case "", "local":
		return NewLocalStore(cfg.Dir)
	case "s3":
		return NewS3Store(cfg), nil
	default:
		return nil, fmt.Errorf("unsupported BLOB_BACKEND %q", cfg.Backend)
	}
}

func validKey(key string) error {
	if key == "" || strings.HasPrefix(key, "/") || strings.Contains(key, "..") {
		return fmt.Errorf("blob: invalid key %q", key)
	}
	return nil
}
