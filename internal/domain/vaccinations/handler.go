package vaccinations

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"pet-care-hub/internal/domain/pets"
	"pet-care-hub/internal/middleware"
)

// RegisterRoutes necesita el módulo de mascotas para resolver el snapshot
// petName/petType al crear y validar que la mascota exista.
func RegisterRoutes(r chi.Router, svc *Service, petsSvc *pets.Service) {
	r.Route("/vaccinations", func(vr chi.Router) {
		vr.Post("/", createVaccinationHandler(svc, petsSvc))
		vr.Get("/", listVaccinationsHandler(svc))
		vr.Get("/schedule", scheduleHandler(svc))

		vr.Patch("/{vaccinationID}", updateVaccinationHandler(svc))
		vr.Delete("/{vaccinationID}", deleteVaccinationHandler(svc))
		vr.Post("/{vaccinationID}/status", setStatusHandler(svc))
	})
}

type createVaccinationRequest struct {
	PetID               string `json:"pet_id"`
	Type                string `json:"type"`
	VaccinationDate     string `json:"vaccination_date"`      // YYYY-MM-DD
	NextVaccinationDate string `json:"next_vaccination_date"` // YYYY-MM-DD opcional
	Status              string `json:"status"`
	Notes               string `json:"notes"`
}

type updateVaccinationRequest struct {
	Type                *string `json:"type"`
	VaccinationDate     *string `json:"vaccination_date"`
	NextVaccinationDate *string `json:"next_vaccination_date"`
	Notes               *string `json:"notes"`
}

type setStatusRequest struct {
	Status string `json:"status"`
}

type vaccinationResponse struct {
	ID                  string    `json:"id"`
	PetID               string    `json:"pet_id"`
	PetName             string    `json:"pet_name"`
	PetType             string    `json:"pet_type"`
	Type                string    `json:"type"`
	VaccinationDate     string    `json:"vaccination_date"`
	NextVaccinationDate *string   `json:"next_vaccination_date,omitempty"`
	Status              string    `json:"status"`
	Notes               string    `json:"notes,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
}

type scheduleEntryResponse struct {
	vaccinationResponse
	Urgency string `json:"urgency"`
}

func createVaccinationHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createVaccinationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		// Validación de campos requeridos antes de tocar estado:
		// sin mascota/tipo/fecha no se crea ningún registro parcial.
		if strings.TrimSpace(req.PetID) == "" || strings.TrimSpace(req.Type) == "" {
			http.Error(w, "pet_id and type are required", http.StatusBadRequest)
			return
		}
		vd, err := time.Parse("2006-01-02", req.VaccinationDate)
		if err != nil {
			http.Error(w, "vaccination_date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		var next *time.Time
		if strings.TrimSpace(req.NextVaccinationDate) != "" {
			t, err := time.Parse("2006-01-02", req.NextVaccinationDate)
			if err != nil {
				http.Error(w, "next_vaccination_date must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			next = &t
		}

		// El petId debe referenciar una mascota existente al crear;
		// de ella sale el snapshot desnormalizado.
		p, err := petsSvc.GetByID(r.Context(), req.PetID)
		if err != nil {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}

		v, err := svc.Create(r.Context(), PetRef{
			ID:   p.ID,
			Name: p.Name,
			Type: string(p.Type),
		}, CreateInput{
			Type:                req.Type,
			VaccinationDate:     vd,
			NextVaccinationDate: next,
			Status:              req.Status,
			Notes:               req.Notes,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusCreated, toVaccinationResponse(v))
	}
}

func listVaccinationsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]vaccinationResponse, 0, len(items))
		for _, v := range items {
			out = append(out, toVaccinationResponse(v))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

func scheduleHandler(svc *Service) http.HandlerFunc {
	// Urgencia derivada contra "hoy"; se recalcula en cada request.
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		entries, err := svc.Schedule(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]scheduleEntryResponse, 0, len(entries))
		for _, e := range entries {
			out = append(out, scheduleEntryResponse{
				vaccinationResponse: toVaccinationResponse(e.Vaccination),
				Urgency:             string(e.Urgency),
			})
		}

		writeJSON(w, http.StatusOK, out)
	}
}

func updateVaccinationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()

		var req updateVaccinationRequest
		if err := dec.Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in := UpdateInput{Type: req.Type, Notes: req.Notes}
		if req.VaccinationDate != nil {
			t, err := time.Parse("2006-01-02", *req.VaccinationDate)
			if err != nil {
				http.Error(w, "vaccination_date must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			in.VaccinationDate = &t
		}
		if req.NextVaccinationDate != nil {
			t, err := time.Parse("2006-01-02", *req.NextVaccinationDate)
			if err != nil {
				http.Error(w, "next_vaccination_date must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			in.NextVaccinationDate = &t
		}

		updated, err := svc.Update(r.Context(), chi.URLParam(r, "vaccinationID"), in)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, ErrNotFound):
				http.Error(w, "vaccination not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, toVaccinationResponse(updated))
	}
}

func deleteVaccinationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if err := svc.Delete(r.Context(), chi.URLParam(r, "vaccinationID")); err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				http.Error(w, "vaccination not found", http.StatusNotFound)
			default:
				http.Error(w, err.Error(), http.StatusBadRequest)
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func setStatusHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req setStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		v, err := svc.SetStatus(r.Context(), chi.URLParam(r, "vaccinationID"), Status(req.Status))
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, "status must be scheduled or completed", http.StatusBadRequest)
			case errors.Is(err, ErrNotFound):
				http.Error(w, "vaccination not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, toVaccinationResponse(v))
	}
}

func toVaccinationResponse(v Vaccination) vaccinationResponse {
	resp := vaccinationResponse{
		ID:              v.ID,
		PetID:           v.PetID,
		PetName:         v.PetName,
		PetType:         v.PetType,
		Type:            string(v.Type),
		VaccinationDate: v.VaccinationDate.Format("2006-01-02"),
		Status:          string(v.Status),
		Notes:           v.Notes,
		CreatedAt:       v.CreatedAt,
	}
	if v.NextVaccinationDate != nil {
		s := v.NextVaccinationDate.Format("2006-01-02")
		resp.NextVaccinationDate = &s
	}
	return resp
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// (pets/vaccinations/session) para evitar helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
