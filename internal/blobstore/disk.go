package blobstore

import (
	"context"
	"io"
	"mime"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// DiskStore keeps blobs as files in a single directory.
type DiskStore struct {
	dir string
}

// NewDiskStore creates dir if needed and returns a store rooted there.
func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "create upload dir %s", dir)
	}
	return &DiskStore{dir: dir}, nil
}

func (s *DiskStore) path(key string) (string, error) {
	if !ValidKey(key) {
		return "", ErrInvalidKey
	}
	return filepath.Join(s.dir, key), nil
}

func (s *DiskStore) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	dst, err := s.path(key)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		return errors.Wrap(err, "create temp blob")
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			tmp.Close()
			os.Remove(tmpName)
		}
	}()

	if _, err := io.Copy(tmp, r); err != nil {
		return errors.Wrap(err, "write blob")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "close blob")
	}
	if err := os.Rename(tmpName, dst); err != nil {
		return errors.Wrap(err, "commit blob")
	}
	committed = true

	return nil
}

func (s *DiskStore) Get(ctx context.Context, key string) (*Object, error) {
	p, err := s.path(key)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(p)
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "open blob")
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, errors.Wrap(err, "stat blob")
	}

	contentType := mime.TypeByExtension(filepath.Ext(key))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return &Object{Body: f, Size: info.Size(), ContentType: contentType}, nil
}

func (s *DiskStore) Delete(ctx context.Context, key string) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}

	if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "remove blob")
	}
	return nil
}
