package storage

import (
	"context"
	"errors"
	"io"
	"strings"
)

// FileStore guarda y recupera los archivos del taller (imágenes
// subidas y comprobantes PDF). Las claves son rutas relativas tipo
// "images/20240101_120000_foto.jpg".
type FileStore interface {
	Save(ctx context.Context, key string, r io.Reader, contentType string) error

	// Open devuelve el contenido y su content type.
	Open(ctx context.Context, key string) (io.ReadCloser, string, error)
}

var ErrInvalidKey = errors.New("storage: invalid key")

func validKey(key string) bool {
	if key == "" || strings.HasPrefix(key, "/") {
		return false
	}
	for _, part := range strings.Split(key, "/") {
		if part == "" || part == "." || part == ".." {
			return false
		}
	}
	return true
}
