package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// Store is the file-storage collaborator: it persists a byte stream under
// a destination key and returns a retrievable URL. Every upload-accepting
// operation goes through it.
type Store interface {
	Save(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}

// NewFromEnv selects the backend: STORAGE_BACKEND=minio uses object
// storage, anything else falls back to the local disk store.
func NewFromEnv() (Store, error) {
	switch strings.ToLower(os.Getenv("STORAGE_BACKEND")) {
	case "minio":
		return NewMinioStore()
	case "", "local":
		return NewLocalStore(os.Getenv("UPLOAD_PATH"), os.Getenv("UPLOAD_BASE_URL"))
	default:
		return nil, fmt.Errorf("unknown storage backend %q", os.Getenv("STORAGE_BACKEND"))
	}
}
