package pets

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"pet-care-hub/internal/middleware"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Post("/", createPetHandler(svc))
		pr.Get("/", listPetsHandler(svc))

		pr.Get("/{petID}", getPetHandler(svc))
		pr.Patch("/{petID}", updatePetHandler(svc))
		pr.Delete("/{petID}", deletePetHandler(svc))

		pr.Post("/{petID}/favorite", toggleFavoriteHandler(svc))
	})
}

type createPetRequest struct {
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Breed       string  `json:"breed"`
	Age         int     `json:"age"`
	Weight      float64 `json:"weight"`
	ImageURL    string  `json:"image_url"`
	Description string  `json:"description"`
}

type updatePetRequest struct {
	// Punteros para PATCH real: nil = no tocar.
	Name        *string  `json:"name"`
	Type        *string  `json:"type"`
	Breed       *string  `json:"breed"`
	Age         *int     `json:"age"`
	Weight      *float64 `json:"weight"`
	ImageURL    *string  `json:"image_url"`
	Description *string  `json:"description"`
}

type petResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Breed       string    `json:"breed"`
	Age         int       `json:"age"`
	Weight      float64   `json:"weight"`
	OwnerID     string    `json:"owner_id"`
	ImageURL    string    `json:"image_url,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	Favorite    bool      `json:"favorite"`
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

		p, err := svc.Create(r.Context(), claims.UserID, CreateInput{
			Name:        req.Name,
			Type:        req.Type,
			Breed:       req.Breed,
			Age:         req.Age,
			Weight:      req.Weight,
			ImageURL:    req.ImageURL,
			Description: req.Description,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusCreated, toPetResponse(p))
	}
}

func listPetsHandler(svc *Service) http.HandlerFunc {
	// ?q= busca por nombre/raza; ?type= filtra por tipo ("all" = todos).
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.Search(r.Context(), r.URL.Query().Get("q"), r.URL.Query().Get("type"))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

func updatePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()

		var req updatePetRequest
		if err := dec.Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		updated, err := svc.Update(r.Context(), chi.URLParam(r, "petID"), UpdateInput{
			Name:        req.Name,
			Type:        req.Type,
			Breed:       req.Breed,
			Age:         req.Age,
			Weight:      req.Weight,
			ImageURL:    req.ImageURL,
			Description: req.Description,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, ErrNotFound):
				http.Error(w, "pet not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, toPetResponse(updated))
	}
}

func deletePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if err := svc.Delete(r.Context(), chi.URLParam(r, "petID")); err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				http.Error(w, "pet not found", http.StatusNotFound)
			default:
				http.Error(w, err.Error(), http.StatusBadRequest)
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func toggleFavoriteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		p, err := svc.ToggleFavorite(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

func toPetResponse(p Pet) petResponse {
	return petResponse{
		ID:          p.ID,
		Name:        p.Name,
		Type:        string(p.Type),
		Breed:       p.Breed,
		Age:         p.Age,
		Weight:      p.Weight,
		OwnerID:     p.OwnerID,
		ImageURL:    p.ImageURL,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		Favorite:    p.Favorite,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// (pets/vaccinations/session) para evitar helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
