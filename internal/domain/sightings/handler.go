package sightings

import (
	"encoding/json"
	"net/http"
	"time"

	"pet-registry/internal/platform/validate"

	"github.com/go-chi/chi/v5"
)

// Las rutas de sightings no exigen sesión: cualquiera que vio a la mascota
// puede reportar un avistamiento dejando sus datos de contacto.
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/reports/{reportID}/sightings", func(sr chi.Router) {
		sr.Post("/", createSightingHandler(svc))
		sr.Get("/", listSightingsHandler(svc))
	})
}

type createSightingRequest struct {
	ReporterName  string `json:"reporter_name"`
	ReporterEmail string `json:"reporter_email"`
	ReporterPhone string `json:"reporter_phone"`

	SightingDate     string  `json:"sighting_date"` // YYYY-MM-DD
	SightingTime     string  `json:"sighting_time"` // HH:MM
	SightingLocation string  `json:"sighting_location"`
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`

	Description     string `json:"description"`
	PetCondition    string `json:"pet_condition"`
	ConfidenceLevel int    `json:"confidence_level"`
	FollowUpNeeded  bool   `json:"follow_up_needed"`
}

type sightingResponse struct {
	ID                   string    `json:"id"`
	ReportID             string    `json:"report_id"`
	PetID                string    `json:"pet_id"`
	ReporterName         string    `json:"reporter_name"`
	ReporterEmail        string    `json:"reporter_email,omitempty"`
	ReporterPhone        string    `json:"reporter_phone,omitempty"`
	SightingDate         string    `json:"sighting_date"`
	SightingTime         string    `json:"sighting_time,omitempty"`
	SightingLocation     string    `json:"sighting_location"`
	Latitude             float64   `json:"latitude"`
	Longitude            float64   `json:"longitude"`
	Description          string    `json:"description,omitempty"`
	PetCondition         string    `json:"pet_condition,omitempty"`
	ConfidenceLevel      int       `json:"confidence_level"`
	DistanceFromLastSeen float64   `json:"distance_from_last_seen"`
	FollowUpNeeded       bool      `json:"follow_up_needed"`
	Status               int       `json:"status"`
	CreatedAt            time.Time `json:"created_at"`
}

func createSightingHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createSightingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		errs := validate.Check(
			validate.Field{Name: "reporter_name", Value: req.ReporterName, Rules: []validate.Rule{validate.Required(), validate.MinLen(2)}},
			validate.Field{Name: "reporter_email", Value: req.ReporterEmail, Rules: []validate.Rule{validate.Email()}},
			validate.Field{Name: "sighting_date", Value: req.SightingDate, Rules: []validate.Rule{validate.Required()}},
		)
		if len(errs) > 0 {
			http.Error(w, validate.Aggregate(errs), http.StatusBadRequest)
			return
		}

		date, err := time.Parse("2006-01-02", req.SightingDate)
		if err != nil {
			http.Error(w, "sighting_date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		sg, err := svc.Create(r.Context(), chi.URLParam(r, "reportID"), CreateInput{
			ReporterName:     req.ReporterName,
			ReporterEmail:    req.ReporterEmail,
			ReporterPhone:    req.ReporterPhone,
			SightingDate:     date,
			SightingTime:     req.SightingTime,
			SightingLocation: req.SightingLocation,
			Latitude:         req.Latitude,
			Longitude:        req.Longitude,
			Description:      req.Description,
			PetCondition:     req.PetCondition,
			ConfidenceLevel:  req.ConfidenceLevel,
			FollowUpNeeded:   req.FollowUpNeeded,
		})
		if err != nil {
			switch err {
			case ErrInvalidInput:
				http.Error(w, err.Error(), http.StatusBadRequest)
			case ErrNotFound:
				http.Error(w, "report not found", http.StatusNotFound)
			case ErrBadState:
				http.Error(w, "report is not active", http.StatusConflict)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusCreated, toSightingResponse(sg))
	}
}

func listSightingsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListByReport(r.Context(), chi.URLParam(r, "reportID"))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]sightingResponse, 0, len(items))
		for _, sg := range items {
			out = append(out, toSightingResponse(sg))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func toSightingResponse(sg Sighting) sightingResponse {
	return sightingResponse{
		ID:                   sg.ID,
		ReportID:             sg.ReportID,
		PetID:                sg.PetID,
		ReporterName:         sg.ReporterName,
		ReporterEmail:        sg.ReporterEmail,
		ReporterPhone:        sg.ReporterPhone,
		SightingDate:         sg.SightingDate.Format("2006-01-02"),
		SightingTime:         sg.SightingTime,
		SightingLocation:     sg.SightingLocation,
		Latitude:             sg.Latitude,
		Longitude:            sg.Longitude,
		Description:          sg.Description,
		PetCondition:         sg.PetCondition,
		ConfidenceLevel:      sg.ConfidenceLevel,
		DistanceFromLastSeen: sg.DistanceFromLastSeen,
		FollowUpNeeded:       sg.FollowUpNeeded,
		Status:               int(sg.Status),
		CreatedAt:            sg.CreatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
