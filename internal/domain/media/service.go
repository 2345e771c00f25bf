package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"path"
	"strings"
	"time"

	"pet-registry/internal/platform/logger"
	"pet-registry/internal/ports/blob"
)

// MaxFileSize es el tope por archivo.
const MaxFileSize = 25 * 1024 * 1024

var allowedTypes = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
}

var ErrEmptyBatch = errors.New("empty batch")

type Service struct {
	store blob.Store
	log   logger.Logger
	now   func() time.Time
}

func NewService(store blob.Store, log logger.Logger) *Service {
	return &Service{
		store: store,
		log:   log,
		now:   time.Now,
	}
}

// File es un archivo recibido en el batch multipart.
type File struct {
	Name string
	Data []byte
}

// BatchResult: qué se aceptó, qué se rechazó y el mensaje para la UI.
// Un batch con exceso no falla entero: se aceptan los que entran en los
// slots disponibles y el mensaje nombra el límite.
type BatchResult struct {
	URLs         []string `json:"urls"`
	Rejected     []string `json:"rejected,omitempty"`
	ErrorMessage string   `json:"error_message,omitempty"`
}

// Upload valida y sube un batch de imágenes para una entidad (mascota o
// reporte). currentCount es cuántas imágenes ya tiene el documento y
// maxFiles su tope. No hay rollback de blobs ya subidos si una subida
// posterior falla; un blob huérfano es preferible a perder los que entraron.
func (s *Service) Upload(ctx context.Context, ownerUserID, entityID string, currentCount, maxFiles int, files []File) (BatchResult, error) {
	if len(files) == 0 {
		return BatchResult{}, ErrEmptyBatch
	}

	var res BatchResult
	var valid []File
	var invalidNames []string

	for _, f := range files {
		if len(f.Data) == 0 || len(f.Data) > MaxFileSize || sniffExt(f.Data) == "" {
			invalidNames = append(invalidNames, path.Base(strings.TrimSpace(f.Name)))
			continue
		}
		valid = append(valid, f)
	}
	res.Rejected = append(res.Rejected, invalidNames...)

	availableSlots := maxFiles - currentCount
	if availableSlots < 0 {
		availableSlots = 0
	}
	if len(valid) > availableSlots {
		res.Rejected = append(res.Rejected, names(valid[availableSlots:])...)
		res.ErrorMessage = fmt.Sprintf("Solo puedes agregar %d foto(s) más. Máximo %d fotos.", availableSlots, maxFiles)
		valid = valid[:availableSlots]
	}

	if len(invalidNames) > 0 {
		msg := fmt.Sprintf("Archivos inválidos: %s. Solo se permiten imágenes JPG, PNG, WEBP hasta 25MB.", strings.Join(invalidNames, ", "))
		if res.ErrorMessage != "" {
			res.ErrorMessage += " " + msg
		} else {
			res.ErrorMessage = msg
		}
	}

	ts := s.now().UnixMilli()
	for i, f := range valid {
		ext := sniffExt(f.Data)
		key := fmt.Sprintf("pets/%s/%s/pet_%s_%d_%d.%s", ownerUserID, entityID, entityID, currentCount+i, ts, ext)

		url, err := s.store.Put(ctx, key, bytes.NewReader(f.Data), contentTypeFor(ext))
		if err != nil {
			// los blobs ya subidos quedan; el caller decide si persiste las URLs
			s.log.Error("image upload failed", map[string]any{"key": key, "err": err.Error()})
			return res, err
		}
		res.URLs = append(res.URLs, url)
	}

	return res, nil
}

// sniffExt detecta el tipo real por contenido, no por extensión del nombre.
// Devuelve "" si el tipo no está permitido.
func sniffExt(data []byte) string {
	ct := http.DetectContentType(data)
	return allowedTypes[ct]
}

func contentTypeFor(ext string) string {
	for ct, e := range allowedTypes {
		if e == ext {
			return ct
		}
	}
	return "application/octet-stream"
}

func names(files []File) []string {
	out := make([]string, 0, len(files))
	for _, f := range files {
		out = append(out, path.Base(strings.TrimSpace(f.Name)))
	}
	return out
}
