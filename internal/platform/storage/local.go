// Package storage keeps uploaded images on local disk and serves them under
// a public path.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ErrForeignURL is returned by Destroy for a URL this store did not issue.
var ErrForeignURL = errors.New("storage: url not managed by this store")

// LocalStore writes files into dir and publishes them as basePath/<name>.
type LocalStore struct {
	dir      string
	basePath string
}

// NewLocalStore creates dir if needed.
func NewLocalStore(dir, basePath string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: create %s: %w", dir, err)
	}
	return &LocalStore{dir: dir, basePath: "/" + strings.Trim(basePath, "/")}, nil
}

// Dir returns the directory served at BasePath.
func (s *LocalStore) Dir() string { return s.dir }

// BasePath returns the public URL prefix.
func (s *LocalStore) BasePath() string { return s.basePath }

// Upload stores an image read from r and returns its public URL. The
// content must sniff as an allowed image type; the stored extension comes
// from that type, never from filename.
func (s *LocalStore) Upload(ctx context.Context, filename string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := io.ReadAll(io.LimitReader(r, MaxImageSize+1))
	if err != nil {
		return "", fmt.Errorf("storage: read %q: %w", filename, err)
	}
	return s.store(data)
}

// UploadDataURI decodes a data: URI and stores its payload. The declared
// media type is ignored in favour of the sniffed one.
func (s *LocalStore) UploadDataURI(ctx context.Context, uri string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	_, data, err := DecodeDataURI(uri)
	if err != nil {
		return "", err
	}
	return s.store(data)
}

func (s *LocalStore) store(data []byte) (string, error) {
	if len(data) > MaxImageSize {
		return "", ErrImageTooLarge
	}
	ext, err := imageExt(data)
	if err != nil {
		return "", err
	}
	name := uuid.NewString() + ext

	f, err := os.OpenFile(filepath.Join(s.dir, name), os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return "", fmt.Errorf("storage: create file: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("storage: write file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("storage: close file: %w", err)
	}
	return path.Join(s.basePath, name), nil
}

// Destroy removes the file behind url. A missing file is not an error.
func (s *LocalStore) Destroy(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !strings.HasPrefix(url, s.basePath+"/") {
		return ErrForeignURL
	}
	name := filepath.Base(strings.TrimPrefix(url, s.basePath+"/"))
	if name == "." || name == "/" || name == ".." {
		return ErrForeignURL
	}
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("storage: remove: %w", err)
	}
	return nil
}
