package media

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"pet-registry/internal/domain/pets"
	"pet-registry/internal/domain/reports"
	"pet-registry/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// maxBatchBody limita el body multipart completo.
const maxBatchBody = 6 * MaxFileSize

func RegisterRoutes(r chi.Router, svc *Service, petsSvc *pets.Service, reportsSvc *reports.Service) {
	r.Post("/pets/{petID}/images", uploadPetImagesHandler(svc, petsSvc))
	r.Post("/reports/{reportID}/images", uploadReportImagesHandler(svc, reportsSvc))
}

type uploadResponse struct {
	BatchResult
	Images []string `json:"images"` // estado final del documento
}

func uploadPetImagesHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		p, err := petsSvc.GetByID(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}
		if p.OwnerUserID != claims.UserID {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		files, err := readBatch(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		res, err := svc.Upload(r.Context(), claims.UserID, p.ID, len(p.Images), pets.MaxImages, files)
		if err == ErrEmptyBatch {
			http.Error(w, "no files", http.StatusBadRequest)
			return
		}
		if err != nil {
			http.Error(w, "upload failed", http.StatusBadGateway)
			return
		}

		images := p.Images
		if len(res.URLs) > 0 {
			updated, err := petsSvc.AppendImages(r.Context(), p.ID, claims.UserID, res.URLs)
			if err != nil {
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}
			images = updated.Images
		}

		writeJSON(w, http.StatusOK, uploadResponse{BatchResult: res, Images: images})
	}
}

func uploadReportImagesHandler(svc *Service, reportsSvc *reports.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		rep, err := reportsSvc.GetByID(r.Context(), chi.URLParam(r, "reportID"))
		if err != nil {
			http.Error(w, "report not found", http.StatusNotFound)
			return
		}
		if rep.OwnerUserID != claims.UserID {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		files, err := readBatch(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		res, err := svc.Upload(r.Context(), claims.UserID, rep.ID, len(rep.Images), reports.MaxImages, files)
		if err == ErrEmptyBatch {
			http.Error(w, "no files", http.StatusBadRequest)
			return
		}
		if err != nil {
			http.Error(w, "upload failed", http.StatusBadGateway)
			return
		}

		images := rep.Images
		if len(res.URLs) > 0 {
			updated, err := reportsSvc.AppendImages(r.Context(), rep.ID, claims.UserID, res.URLs)
			if err != nil {
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}
			images = updated.Images
		}

		writeJSON(w, http.StatusOK, uploadResponse{BatchResult: res, Images: images})
	}
}

// readBatch lee los archivos del multipart form (campo "images").
func readBatch(r *http.Request) ([]File, error) {
	r.Body = http.MaxBytesReader(nil, r.Body, maxBatchBody)
	if err := r.ParseMultipartForm(maxBatchBody); err != nil {
		return nil, err
	}

	var files []File
	for _, fh := range r.MultipartForm.File["images"] {
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		data, err := io.ReadAll(io.LimitReader(f, MaxFileSize+1))
		_ = f.Close()
		if err != nil {
			return nil, err
		}
		files = append(files, File{Name: fh.Filename, Data: data})
	}
	return files, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
