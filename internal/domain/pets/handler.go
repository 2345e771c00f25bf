package pets

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"pet-registry/internal/domain/contact"
	"pet-registry/internal/domain/lifecycle"
	"pet-registry/internal/domain/profiles"
	"pet-registry/internal/middleware"
	"pet-registry/internal/platform/validate"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, profilesSvc *profiles.Service) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Post("/", createPetHandler(svc))
		pr.Get("/", listPetsHandler(svc))

		pr.Get("/{petID}", getPetHandler(svc))
		pr.Patch("/{petID}", updatePetHandler(svc))
		pr.Delete("/{petID}", deceasePetHandler(svc))

		pr.Post("/{petID}/adoption", adoptionHandler(svc))
		pr.Delete("/{petID}/adoption", revertAdoptionHandler(svc))

		pr.Get("/{petID}/contact", contactHandler(svc, profilesSvc))
	})

	r.Get("/me/pets", listMyPetsHandler(svc))
	r.Get("/catalog", catalogHandler())
}

type createPetRequest struct {
	Name           string   `json:"name"`
	Species        int      `json:"species"`
	BreedID        string   `json:"breed_id"`
	BirthDate      string   `json:"birth_date"` // YYYY-MM-DD
	Gender         int      `json:"gender"`
	ColorPrimary   string   `json:"color_primary"`
	ColorSecondary []string `json:"color_secondary"`
	FurType        string   `json:"fur_type"`
	Description    string   `json:"description"`
	HasPedigree    bool     `json:"has_pedigree"`
	IsDeceased     bool     `json:"is_deceased"`
	IsNeutered     bool     `json:"is_neutered"`
}

type petResponse struct {
	ID             string          `json:"id"`
	OwnerUserID    string          `json:"owner_user_id"`
	Name           string          `json:"name"`
	Species        int             `json:"species"`
	BreedID        string          `json:"breed_id"`
	BirthDate      string          `json:"birth_date"`
	Gender         int             `json:"gender"`
	ColorPrimary   string          `json:"color_primary"`
	ColorSecondary []string        `json:"color_secondary"`
	FurType        string          `json:"fur_type,omitempty"`
	Description    string          `json:"description,omitempty"`
	Images         []string        `json:"images"`
	CurrentStatus  int             `json:"current_status"`
	StatusBadge    lifecycle.Badge `json:"status_badge"`
	AgeYears       int             `json:"age_years"`
	AgeStage       string          `json:"age_stage"`
	HasPedigree    bool            `json:"has_pedigree"`
	IsDeceased     bool            `json:"is_deceased"`
	IsNeutered     bool            `json:"is_neutered"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

type updatePetRequest struct {
	// Punteros para PATCH real: nil = no tocar.
	Name           *string   `json:"name"`
	BreedID        *string   `json:"breed_id"`
	BirthDate      *string   `json:"birth_date"` // YYYY-MM-DD
	Gender         *int      `json:"gender"`
	ColorPrimary   *string   `json:"color_primary"`
	ColorSecondary *[]string `json:"color_secondary"`
	FurType        *string   `json:"fur_type"`
	Description    *string   `json:"description"`
	HasPedigree    *bool     `json:"has_pedigree"`
	IsNeutered     *bool     `json:"is_neutered"`
}

func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createPetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		// Validación declarativa de presencia; lo semántico (fecha plausible,
		// cardinalidad de colores) lo chequea el service.
		errs := validate.Check(
			validate.Field{Name: "name", Value: req.Name, Rules: []validate.Rule{validate.Required(), validate.MinLen(2)}},
			validate.Field{Name: "breed_id", Value: req.BreedID, Rules: []validate.Rule{validate.Required()}},
			validate.Field{Name: "birth_date", Value: req.BirthDate, Rules: []validate.Rule{validate.Required()}},
			validate.Field{Name: "color_primary", Value: req.ColorPrimary, Rules: []validate.Rule{validate.Required()}},
		)
		if len(errs) > 0 {
			http.Error(w, validate.Aggregate(errs), http.StatusBadRequest)
			return
		}

		bd, err := time.Parse("2006-01-02", req.BirthDate)
		if err != nil {
			http.Error(w, "birth_date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		p, err := svc.Create(r.Context(), claims.UserID, CreateInput{
			Name:           req.Name,
			Species:        lifecycle.Species(req.Species),
			BreedID:        req.BreedID,
			BirthDate:      bd,
			Gender:         lifecycle.Gender(req.Gender),
			ColorPrimary:   req.ColorPrimary,
			ColorSecondary: req.ColorSecondary,
			FurType:        req.FurType,
			Description:    req.Description,
			HasPedigree:    req.HasPedigree,
			IsDeceased:     req.IsDeceased,
			IsNeutered:     req.IsNeutered,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusCreated, toPetResponse(p, time.Now()))
	}
}

// listPetsHandler: listado público autenticado, con filtro ?status=N.
func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.GetClaims(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var status lifecycle.PetStatus
		if raw := strings.TrimSpace(r.URL.Query().Get("status")); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || !lifecycle.ValidPetStatus(lifecycle.PetStatus(n)) {
				http.Error(w, "invalid status filter", http.StatusBadRequest)
				return
			}
			status = lifecycle.PetStatus(n)
		}

		items, err := svc.List(r.Context(), status)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		now := time.Now()
		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p, now))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func listMyPetsHandler(svc *Service) http.HandlerFunc {
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

		now := time.Now()
		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p, now))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.GetClaims(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, toPetResponse(p, time.Now()))
	}
}

func updatePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req updatePetRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in := UpdateInput{
			Name:           req.Name,
			BreedID:        req.BreedID,
			ColorPrimary:   req.ColorPrimary,
			ColorSecondary: req.ColorSecondary,
			FurType:        req.FurType,
			Description:    req.Description,
			HasPedigree:    req.HasPedigree,
			IsNeutered:     req.IsNeutered,
		}
		if req.BirthDate != nil {
			bd, err := time.Parse("2006-01-02", *req.BirthDate)
			if err != nil {
				http.Error(w, "birth_date must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			in.BirthDate = &bd
		}
		if req.Gender != nil {
			g := lifecycle.Gender(*req.Gender)
			in.Gender = &g
		}

		p, err := svc.UpdateProfile(r.Context(), chi.URLParam(r, "petID"), claims.UserID, in)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toPetResponse(p, time.Now()))
	}
}

// deceasePetHandler: DELETE es una transición suave a fallecida.
func deceasePetHandler(svc *Service) http.HandlerFunc {
	return transitionHandler(func(svc *Service, r *http.Request, petID, userID string) (Pet, error) {
		return svc.Decease(r.Context(), petID, userID)
	}, svc)
}

func adoptionHandler(svc *Service) http.HandlerFunc {
	return transitionHandler(func(svc *Service, r *http.Request, petID, userID string) (Pet, error) {
		return svc.MarkForAdoption(r.Context(), petID, userID)
	}, svc)
}

func revertAdoptionHandler(svc *Service) http.HandlerFunc {
	return transitionHandler(func(svc *Service, r *http.Request, petID, userID string) (Pet, error) {
		return svc.RevertAdoption(r.Context(), petID, userID)
	}, svc)
}

func transitionHandler(fn func(*Service, *http.Request, string, string) (Pet, error), svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		p, err := fn(svc, r, chi.URLParam(r, "petID"), claims.UserID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toPetResponse(p, time.Now()))
	}
}

type contactResponse struct {
	OwnerName string `json:"owner_name"`
	WhatsApp  string `json:"whatsapp,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// contactHandler genera los deep links para contactar al dueño. El mensaje
// prellenado depende del estado de la mascota (adopción vs información).
func contactHandler(svc *Service, profilesSvc *profiles.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.GetClaims(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}

		owner, err := profilesSvc.GetByID(r.Context(), p.OwnerUserID)
		if err != nil {
			http.Error(w, "owner not found", http.StatusNotFound)
			return
		}

		resp := contactResponse{OwnerName: owner.Name}
		adoption := p.CurrentStatus == lifecycle.PetStatusAdoption

		if owner.Phone != "" {
			msg := contact.WhatsAppMessageInfo(p.Name)
			if adoption {
				msg = contact.WhatsAppMessageAdoption(p.Name)
			}
			resp.WhatsApp = contact.WhatsAppLink(owner.Phone, msg)
			resp.Phone = contact.PhoneLink(owner.Phone)
		}
		if owner.Email != "" {
			subject, body := contact.EmailSubjectInfo(p.Name), contact.EmailBodyInfo(owner.Name, p.Name)
			if adoption {
				subject, body = contact.EmailSubjectAdoption(p.Name), contact.EmailBodyAdoption(owner.Name, p.Name)
			}
			resp.Email = contact.EmailLink(owner.Email, subject, body)
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

type catalogResponse struct {
	Colors      []Color           `json:"colors"`
	FurTypes    []FurType         `json:"fur_types"`
	Breeds      []Breed           `json:"breeds"`
	PetStatuses []lifecycle.Badge `json:"pet_statuses"`
	ReportTypes []lifecycle.Badge `json:"report_types"`
}

func catalogHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var species lifecycle.Species
		if raw := strings.TrimSpace(r.URL.Query().Get("species")); raw != "" {
			if n, err := strconv.Atoi(raw); err == nil {
				species = lifecycle.Species(n)
			}
		}

		writeJSON(w, http.StatusOK, catalogResponse{
			Colors:      Colors(),
			FurTypes:    FurTypes(),
			Breeds:      BreedsBySpecies(species),
			PetStatuses: lifecycle.PetStatusBadges(),
			ReportTypes: lifecycle.ReportTypeBadges(),
		})
	}
}

func toPetResponse(p Pet, now time.Time) petResponse {
	secondary := p.ColorSecondary
	if secondary == nil {
		secondary = []string{}
	}
	images := p.Images
	if images == nil {
		images = []string{}
	}

	return petResponse{
		ID:             p.ID,
		OwnerUserID:    p.OwnerUserID,
		Name:           p.Name,
		Species:        int(p.Species),
		BreedID:        p.BreedID,
		BirthDate:      p.BirthDate.Format("2006-01-02"),
		Gender:         int(p.Gender),
		ColorPrimary:   p.ColorPrimary,
		ColorSecondary: secondary,
		FurType:        p.FurType,
		Description:    p.Description,
		Images:         images,
		CurrentStatus:  int(p.CurrentStatus),
		StatusBadge:    lifecycle.PetStatusBadge(p.CurrentStatus),
		AgeYears:       lifecycle.AgeYears(p.BirthDate, now),
		AgeStage:       lifecycle.AgeStage(p.BirthDate, now),
		HasPedigree:    p.HasPedigree,
		IsDeceased:     p.IsDeceased,
		IsNeutered:     p.IsNeutered,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch err {
	case ErrInvalidInput:
		http.Error(w, err.Error(), http.StatusBadRequest)
	case ErrNotFound:
		http.Error(w, "pet not found", http.StatusNotFound)
	case ErrForbidden:
		http.Error(w, "forbidden", http.StatusForbidden)
	case ErrBadState:
		http.Error(w, "invalid state", http.StatusConflict)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// writeJSON está duplicado a propósito en los handlers de cada módulo,
// igual que en el resto del código: evita un paquete helper prematuro.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
