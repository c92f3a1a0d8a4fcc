package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	"gorm.io/gorm"
)

// ErrNotFound is returned when no object lives at the requested path.
var ErrNotFound = errors.New("storage: object not found")

// Object is a stored binary with its metadata.
type Object struct {
	Path     string
	Filename string
	MimeType string
	Size     int64
	Data     []byte
}

// Storage is the binary store behind every uploaded asset. Paths are
// opaque to callers; Save mints them, everything else consumes them.
type Storage interface {
	// Save stores the reader's content under a freshly generated path
	// inside folder and returns that path.
	Save(ctx context.Context, reader io.Reader, originalName, folder string) (string, error)

	// Get returns the object at path, or ErrNotFound.
	Get(ctx context.Context, path string) (*Object, error)

	// Exists reports whether an object lives at path.
	Exists(ctx context.Context, path string) (bool, error)

	// Delete removes the object at path. The bool reports whether
	// anything was actually removed.
	Delete(ctx context.Context, path string) (bool, error)

	// URL returns the serving URL for path.
	URL(path string) string

	// Resolve returns what a client should embed for path: a data URI
	// for inline backends, a direct URL otherwise. ErrNotFound when
	// the path dangles.
	Resolve(ctx context.Context, path string) (string, error)
}

// Config holds storage configuration.
type Config struct {
	Type      string // database, s3
	BaseURL   string // public URL base for served files
	Bucket    string // for s3
	Region    string // for s3
	AccessKey string // for s3
	SecretKey string // for s3
	Endpoint  string // for s3-compatible providers
	UseSSL    bool
}

// NewStorage creates a storage instance based on configuration.
func NewStorage(cfg Config, db *gorm.DB) (Storage, error) {
	switch cfg.Type {
	case "database":
		return NewDatabaseStorage(db, cfg.BaseURL), nil
	case "s3":
		return NewS3Storage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
