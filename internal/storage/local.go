package storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
)

// LocalStore guarda los archivos bajo un directorio base en disco.
type LocalStore struct {
	base string
}

func NewLocalStore(base string) (*LocalStore, error) {
	for _, dir := range []string{base, filepath.Join(base, "images"), filepath.Join(base, "pdfs")} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("storage: creating %s: %w", dir, err)
		}
	}
	return &LocalStore{base: base}, nil
}

func (s *LocalStore) Save(ctx context.Context, key string, r io.Reader, contentType string) error {
	if !validKey(key) {
		return ErrInvalidKey
	}

	path := filepath.Join(s.base, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}

func (s *LocalStore) Open(ctx context.Context, key string) (io.ReadCloser, string, error) {
	if !validKey(key) {
		return nil, "", ErrInvalidKey
	}

	f, err := os.Open(filepath.Join(s.base, filepath.FromSlash(key)))
	if err != nil {
		return nil, "", err
	}

	contentType := mime.TypeByExtension(filepath.Ext(key))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return f, contentType, nil
}

var _ FileStore = (*LocalStore)(nil)
