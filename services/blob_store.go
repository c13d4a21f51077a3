package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// BlobStore keeps photo binaries. Paths are slash-separated and relative to
// the store root, e.g. "rooms/4b1c....jpg".
type BlobStore interface {
	Save(ctx context.Context, subdir, name string, r io.Reader) (path string, size int64, err error)
	Open(path string) (io.ReadCloser, int64, error)
	Remove(path string) error
}

type LocalBlobStore struct {
	Root string
}

func NewLocalBlobStore(root string) *LocalBlobStore {
	return &LocalBlobStore{Root: root}
}

func (s *LocalBlobStore) resolve(path string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(path))
	if filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("blob path %q escapes store root", path)
	}
	return filepath.Join(s.Root, clean), nil
}

// Save writes r to a temp file and renames it into place, so a partially
// written blob is never visible under its final name.
func (s *LocalBlobStore) Save(ctx context.Context, subdir, name string, r io.Reader) (string, int64, error) {
	rel := filepath.ToSlash(filepath.Join(subdir, name))
	full, err := s.resolve(rel)
	if err != nil {
		return "", 0, err
	}

	dir := filepath.Dir(full)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", 0, fmt.Errorf("mkdir uploads dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".upload-*")
	if err != nil {
		return "", 0, fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	size, err := io.Copy(tmp, &ctxReader{ctx: ctx, r: r})
	if err != nil {
		tmp.Close()
		return "", 0, fmt.Errorf("write file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", 0, fmt.Errorf("close file: %w", err)
	}
	if err := os.Rename(tmp.Name(), full); err != nil {
		return "", 0, fmt.Errorf("rename file: %w", err)
	}
	return rel, size, nil
}

func (s *LocalBlobStore) Open(path string) (io.ReadCloser, int64, error) {
	full, err := s.resolve(path)
	if err != nil {
		return nil, 0, err
	}
	f, err := os.Open(full)
	if err != nil {
		return nil, 0, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, err
	}
	return f, info.Size(), nil
}

func (s *LocalBlobStore) Remove(path string) error {
	full, err := s.resolve(path)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// ctxReader stops a long copy once the request is cancelled.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
