package media_test

import (
	"context"
	"strings"
	"testing"

	blobmem "pet-registry/internal/adapters/blob/memory"
	"pet-registry/internal/domain/media"
	"pet-registry/internal/platform/logger"
)

// pngBytes arma un payload que http.DetectContentType reconoce como image/png.
func pngBytes() []byte {
	return append([]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, make([]byte, 64)...)
}

func jpegBytes() []byte {
	return append([]byte{0xFF, 0xD8, 0xFF, 0xE0}, make([]byte, 64)...)
}

func newService(store *blobmem.Store) *media.Service {
	return media.NewService(store, logger.New(logger.Options{App: "test"}))
}

func TestUpload_AcceptsImagesAndRejectsOtherTypes(t *testing.T) {
	store := blobmem.NewStore()
	svc := newService(store)

	res, err := svc.Upload(context.Background(), "owner-1", "pet-1", 0, 5, []media.File{
		{Name: "foto.png", Data: pngBytes()},
		{Name: "foto.jpg", Data: jpegBytes()},
		{Name: "notas.txt", Data: []byte("esto no es una imagen, es texto plano")},
	})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	if len(res.URLs) != 2 {
		t.Fatalf("expected 2 accepted, got %d", len(res.URLs))
	}
	if len(res.Rejected) != 1 || res.Rejected[0] != "notas.txt" {
		t.Fatalf("expected notas.txt rejected, got %+v", res.Rejected)
	}
	if !strings.Contains(res.ErrorMessage, "Archivos inválidos") {
		t.Fatalf("expected invalid-files message, got %q", res.ErrorMessage)
	}
	if store.Len() != 2 {
		t.Fatalf("expected 2 blobs stored, got %d", store.Len())
	}
}

func TestUpload_TruncatesBeyondAvailableSlots(t *testing.T) {
	store := blobmem.NewStore()
	svc := newService(store)

	files := []media.File{
		{Name: "a.png", Data: pngBytes()},
		{Name: "b.png", Data: pngBytes()},
		{Name: "c.png", Data: pngBytes()},
		{Name: "d.png", Data: pngBytes()},
	}

	// reporte con tope 3 y sin fotos previas: entran 3, queda 1 afuera
	res, err := svc.Upload(context.Background(), "owner-1", "report-1", 0, 3, files)
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	if len(res.URLs) != 3 {
		t.Fatalf("expected 3 accepted, got %d", len(res.URLs))
	}
	if len(res.Rejected) != 1 || res.Rejected[0] != "d.png" {
		t.Fatalf("expected d.png rejected, got %+v", res.Rejected)
	}
	if !strings.Contains(res.ErrorMessage, "Máximo 3 fotos") {
		t.Fatalf("expected message naming the cap, got %q", res.ErrorMessage)
	}
}

func TestUpload_RejectsOversizeAndEmptyFiles(t *testing.T) {
	store := blobmem.NewStore()
	svc := newService(store)

	big := append([]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, make([]byte, media.MaxFileSize)...)

	res, err := svc.Upload(context.Background(), "owner-1", "pet-1", 0, 5, []media.File{
		{Name: "gigante.png", Data: big},
		{Name: "vacio.png", Data: nil},
	})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	if len(res.URLs) != 0 || len(res.Rejected) != 2 {
		t.Fatalf("expected everything rejected, got %+v", res)
	}
	if store.Len() != 0 {
		t.Fatalf("expected no blobs stored, got %d", store.Len())
	}
}

func TestUpload_EmptyBatch(t *testing.T) {
	svc := newService(blobmem.NewStore())

	if _, err := svc.Upload(context.Background(), "owner-1", "pet-1", 0, 5, nil); err != media.ErrEmptyBatch {
		t.Fatalf("expected ErrEmptyBatch, got %v", err)
	}
}

func TestUpload_KeyConvention(t *testing.T) {
	store := blobmem.NewStore()
	svc := newService(store)

	res, err := svc.Upload(context.Background(), "owner-1", "pet-1", 2, 5, []media.File{
		{Name: "foto.png", Data: pngBytes()},
	})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if len(res.URLs) != 1 {
		t.Fatalf("expected 1 url, got %d", len(res.URLs))
	}

	// mem:// + pets/{owner}/{entity}/pet_{entity}_{index}_{ts}.{ext}
	url := res.URLs[0]
	if !strings.HasPrefix(url, "mem://pets/owner-1/pet-1/pet_pet-1_2_") || !strings.HasSuffix(url, ".png") {
		t.Fatalf("unexpected key convention: %q", url)
	}
}
