package reports

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"pet-registry/internal/domain/lifecycle"
	"pet-registry/internal/middleware"
	"pet-registry/internal/platform/validate"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/reports", func(rr chi.Router) {
		rr.Post("/", submitReportHandler(svc))
		rr.Get("/", listReportsHandler(svc))
		rr.Get("/stats", statsHandler(svc))
		rr.Get("/{reportID}", getReportHandler(svc))
		rr.Post("/{reportID}/cancel", cancelReportHandler(svc))
	})

	r.Get("/me/reports", listMyReportsHandler(svc))

	// markSafe toca reporte y mascota, por eso vive en este módulo.
	r.Post("/pets/{petID}/safe", markSafeHandler(svc))
}

type submitReportRequest struct {
	PetID            string   `json:"pet_id"`
	ReportType       int      `json:"report_type"`
	IncidentDate     string   `json:"incident_date"` // YYYY-MM-DD
	IncidentTime     string   `json:"incident_time"` // HH:MM
	LastSeenLocation string   `json:"last_seen_location"`
	Latitude         float64  `json:"latitude"`
	Longitude        float64  `json:"longitude"`
	Circumstances    string   `json:"circumstances"`
	RewardAmount     float64  `json:"reward_amount"`
	Images           []string `json:"images"`
}

type reportResponse struct {
	ID               string          `json:"id"`
	PetID            string          `json:"pet_id"`
	OwnerUserID      string          `json:"owner_user_id"`
	ReportType       int             `json:"report_type"`
	TypeBadge        lifecycle.Badge `json:"type_badge"`
	IncidentDate     string          `json:"incident_date"`
	IncidentTime     string          `json:"incident_time,omitempty"`
	LastSeenLocation string          `json:"last_seen_location"`
	Latitude         float64         `json:"latitude"`
	Longitude        float64         `json:"longitude"`
	Circumstances    string          `json:"circumstances,omitempty"`
	RewardAmount     float64         `json:"reward_amount"`
	Images           []string        `json:"images"`
	Status           int             `json:"status"`
	StatusBadge      lifecycle.Badge `json:"status_badge"`
	CreatedAt        time.Time       `json:"created_at"`
	ResolvedAt       *time.Time      `json:"resolved_at,omitempty"`

	PetInfo   *PetInfo   `json:"pet_info,omitempty"`
	OwnerInfo *OwnerInfo `json:"owner_info,omitempty"`
}

func submitReportHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req submitReportRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		errs := validate.Check(
			validate.Field{Name: "pet_id", Value: req.PetID, Rules: []validate.Rule{validate.Required()}},
			validate.Field{Name: "incident_date", Value: req.IncidentDate, Rules: []validate.Rule{validate.Required()}},
			validate.Field{Name: "last_seen_location", Value: req.LastSeenLocation, Rules: []validate.Rule{validate.Required(), validate.MinLen(5)}},
		)
		if len(errs) > 0 {
			http.Error(w, validate.Aggregate(errs), http.StatusBadRequest)
			return
		}

		incidentDate, err := time.Parse("2006-01-02", req.IncidentDate)
		if err != nil {
			http.Error(w, "incident_date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		if req.IncidentTime != "" {
			if _, err := time.Parse("15:04", req.IncidentTime); err != nil {
				http.Error(w, "incident_time must be HH:MM", http.StatusBadRequest)
				return
			}
		}

		reportType := lifecycle.ReportType(req.ReportType)
		if req.ReportType == 0 {
			reportType = lifecycle.ReportTypeLost
		}

		rep, err := svc.Submit(r.Context(), claims.UserID, SubmitInput{
			PetID:            req.PetID,
			ReportType:       reportType,
			IncidentDate:     incidentDate,
			IncidentTime:     req.IncidentTime,
			LastSeenLocation: req.LastSeenLocation,
			Latitude:         req.Latitude,
			Longitude:        req.Longitude,
			Circumstances:    req.Circumstances,
			RewardAmount:     req.RewardAmount,
			Images:           req.Images,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toReportResponse(rep, nil, nil))
	}
}

func listReportsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.GetClaims(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]reportResponse, 0, len(items))
		for _, rep := range items {
			out = append(out, toReportResponse(rep, nil, nil))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func listMyReportsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.ListByOwner(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]reportResponse, 0, len(items))
		for _, rep := range items {
			out = append(out, toReportResponse(rep, nil, nil))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getReportHandler devuelve el reporte enriquecido con mascota y dueño.
func getReportHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.GetClaims(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		rep, err := svc.GetByID(r.Context(), chi.URLParam(r, "reportID"))
		if err != nil {
			http.Error(w, "report not found", http.StatusNotFound)
			return
		}

		petInfo, ownerInfo, found := svc.Enrich(r.Context(), rep)
		if !found {
			// referencias huérfanas: se devuelve el reporte pelado
			writeJSON(w, http.StatusOK, toReportResponse(rep, nil, nil))
			return
		}

		writeJSON(w, http.StatusOK, toReportResponse(rep, &petInfo, &ownerInfo))
	}
}

func cancelReportHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		rep, err := svc.Cancel(r.Context(), chi.URLParam(r, "reportID"), claims.UserID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toReportResponse(rep, nil, nil))
	}
}

func markSafeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		p, err := svc.MarkSafe(r.Context(), chi.URLParam(r, "petID"), claims.UserID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"pet_id":         p.ID,
			"current_status": int(p.CurrentStatus),
			"status_badge":   lifecycle.PetStatusBadge(p.CurrentStatus),
		})
	}
}

func statsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.GetClaims(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		st, err := svc.Stats(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, st)
	}
}

func toReportResponse(rep Report, petInfo *PetInfo, ownerInfo *OwnerInfo) reportResponse {
	images := rep.Images
	if images == nil {
		images = []string{}
	}

	return reportResponse{
		ID:               rep.ID,
		PetID:            rep.PetID,
		OwnerUserID:      rep.OwnerUserID,
		ReportType:       int(rep.ReportType),
		TypeBadge:        lifecycle.ReportTypeBadge(rep.ReportType),
		IncidentDate:     rep.IncidentDate.Format("2006-01-02"),
		IncidentTime:     rep.IncidentTime,
		LastSeenLocation: rep.LastSeenLocation,
		Latitude:         rep.Latitude,
		Longitude:        rep.Longitude,
		Circumstances:    rep.Circumstances,
		RewardAmount:     rep.RewardAmount,
		Images:           images,
		Status:           int(rep.Status),
		StatusBadge:      lifecycle.ReportStatusBadge(rep.Status),
		CreatedAt:        rep.CreatedAt,
		ResolvedAt:       rep.ResolvedAt,
		PetInfo:          petInfo,
		OwnerInfo:        ownerInfo,
	}
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch err {
	case ErrInvalidInput:
		http.Error(w, err.Error(), http.StatusBadRequest)
	case ErrNotFound:
		http.Error(w, "not found", http.StatusNotFound)
	case ErrForbidden:
		http.Error(w, "forbidden", http.StatusForbidden)
	case ErrBadState:
		http.Error(w, "invalid state", http.StatusConflict)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
