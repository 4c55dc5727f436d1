package ports

import (
	"context"
	"io"
)

// FileStore defines the contract for document byte storage.
// Keys are opaque locators produced at upload time.
type FileStore interface {
	// Write stores the content under the given key, replacing any
	// existing object. Size must match the reader's length.
	Write(ctx context.Context, key string, content io.Reader, size int64, contentType string) error

	// Read opens the object stored under the given key.
	// The caller must close the returned reader.
	Read(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes the object stored under the given key.
	// Deleting a missing object is not an error.
	Delete(ctx context.Context, key string) error
}
