package blob

import (
	"context"
	"io"
)

// Store es el object storage donde viven las fotos.
// Los documentos referencian blobs por URL pública, nunca por contenido.
type Store interface {
	// Put sube un objeto y devuelve su URL pública.
	Put(ctx context.Context, key string, r io.Reader, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}
