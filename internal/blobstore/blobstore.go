// Package blobstore stores uploaded file contents under opaque keys.
package blobstore

import (
	"context"
	"errors"
	"io"
	"regexp"
)

var (
	// ErrNotFound is returned by Get when no blob exists under the key.
	ErrNotFound = errors.New("blob not found")
	// ErrInvalidKey is returned for keys that could escape the store.
	ErrInvalidKey = errors.New("invalid blob key")
)

// Object is an open blob. Callers must close Body.
type Object struct {
	Body        io.ReadCloser
	Size        int64
	ContentType string
}

// Store is a key-addressed byte store that is safe for concurrent use.
type Store interface {
	// Put writes r under key. A partially written blob is never visible.
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	// Get opens the blob stored under key.
	Get(ctx context.Context, key string) (*Object, error)
	// Delete removes the blob under key. Deleting a missing blob is not an error.
	Delete(ctx context.Context, key string) error
}

var keyPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]{0,254}$`)

// ValidKey reports whether key is a single safe path segment.
func ValidKey(key string) bool {
	return keyPattern.MatchString(key) && key != "." && key != ".."
}
