package handlers

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sergiodev3/taller-autos-app/internal/audit"
	"github.com/sergiodev3/taller-autos-app/internal/httperr"
	"github.com/sergiodev3/taller-autos-app/internal/images"
	"github.com/sergiodev3/taller-autos-app/internal/storage"
)

type UploadHandler struct {
	store     storage.FileStore
	audit     *audit.Dispatcher
	imageWebP bool
}

func NewUploadHandler(store storage.FileStore, audit *audit.Dispatcher, imageWebP bool) *UploadHandler {
	return &UploadHandler{
		store:     store,
		audit:     audit,
		imageWebP: imageWebP,
	}
}

// UploadImage guarda una imagen del vehículo bajo un nombre con
// prefijo de fecha. Con IMAGE_WEBP activo además se re-codifica a
// WebP y se genera una miniatura.
func (h *UploadHandler) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		httperr.BadRequest(c, "invalid_request", "Se requiere el archivo 'file'.")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "upload_failed", "Error al leer el archivo.")
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		httperr.Internal(c, "upload_failed", "Error al leer el archivo.")
		return
	}

	base := filepath.Base(fileHeader.Filename)
	if base == "." || base == "/" || base == "" {
		base = uuid.NewString()
	}
	// El uuid corto evita colisiones de subidas en el mismo segundo
	filename := fmt.Sprintf(
		"%s_%s_%s",
		time.Now().Format("20060102_150405"),
		uuid.NewString()[:8],
		base,
	)
	contentType := images.MimeByExt(filename)

	if h.imageWebP && images.Convertible(filename) {
		converted, err := images.ToWebP(data)
		if err != nil {
			httperr.BadRequest(c, "invalid_image", "El archivo no es una imagen válida.")
			return
		}

		// La miniatura es best-effort: su fallo no frena la subida
		if thumb, err := images.Thumbnail(data); err == nil {
			thumbName := "thumb_" + strings.TrimSuffix(filename, filepath.Ext(filename)) + ".webp"
			if err := h.store.Save(c.Request.Context(), "images/"+thumbName, bytes.NewReader(thumb), "image/webp"); err != nil {
				log.Println("thumbnail save error:", err)
			}
		}

		data = converted
		filename = strings.TrimSuffix(filename, filepath.Ext(filename)) + ".webp"
		contentType = "image/webp"
	}

	if err := h.store.Save(c.Request.Context(), "images/"+filename, bytes.NewReader(data), contentType); err != nil {
		httperr.Internal(c, "upload_failed", "Error al guardar la imagen.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "image_uploaded",
		Entity:   "image",
		Metadata: map[string]any{"filename": filename},
	})

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"filename": filename,
		"url":      "/uploads/images/" + filename,
	})
}

// Serve entrega los archivos previamente guardados (imágenes y
// comprobantes) sin importar el backend de almacenamiento.
func (h *UploadHandler) Serve(c *gin.Context) {
	key := strings.TrimPrefix(c.Param("filepath"), "/")

	rc, contentType, err := h.store.Open(c.Request.Context(), key)
	if err != nil {
		httperr.NotFound(c, "archivo_no_encontrado", "Archivo no encontrado")
		return
	}
	defer rc.Close()

	c.Header("Content-Type", contentType)
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, rc)
}
