package storage

import (
	"bytes"
	"context"
	"io"
	"testing"
)

func TestLocalStore_SaveOpen(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatalf("no se pudo crear el store: %v", err)
	}

	contenido := []byte("contenido de prueba")
	if err := store.Save(context.Background(), "images/foto.jpg", bytes.NewReader(contenido), "image/jpeg"); err != nil {
		t.Fatalf("esperaba guardar sin error: %v", err)
	}

	rc, contentType, err := store.Open(context.Background(), "images/foto.jpg")
	if err != nil {
		t.Fatalf("esperaba abrir sin error: %v", err)
	}
	defer rc.Close()

	if contentType != "image/jpeg" {
		t.Errorf("content type: got %q", contentType)
	}

	got, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("no se pudo leer el archivo: %v", err)
	}
	if !bytes.Equal(got, contenido) {
		t.Errorf("contenido distinto: got %q", got)
	}
}

func TestLocalStore_ClaveInvalida(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatalf("no se pudo crear el store: %v", err)
	}

	for _, key := range []string{"", "/abs.txt", "../fuera.txt", "images/../../fuera.txt"} {
		if err := store.Save(context.Background(), key, bytes.NewReader(nil), "text/plain"); err != ErrInvalidKey {
			t.Errorf("Save(%q): esperaba ErrInvalidKey, obtuve %v", key, err)
		}
		if _, _, err := store.Open(context.Background(), key); err != ErrInvalidKey {
			t.Errorf("Open(%q): esperaba ErrInvalidKey, obtuve %v", key, err)
		}
	}
}

func TestLocalStore_AbrirInexistente(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatalf("no se pudo crear el store: %v", err)
	}

	if _, _, err := store.Open(context.Background(), "pdfs/no_existe.pdf"); err == nil {
		t.Fatal("esperaba error al abrir un archivo inexistente")
	}
}
