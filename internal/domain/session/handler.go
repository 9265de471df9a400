package session

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"pet-care-hub/internal/middleware"
)

// TokenIssuer firma tokens de sesión. Puede ser nil (modo dev con
// X-Debug-User-ID): en ese caso el login no devuelve token.
type TokenIssuer interface {
	Issue(userID, email string) (string, error)
}

func RegisterRoutes(r chi.Router, svc *Service, issuer TokenIssuer) {
	r.Route("/auth", func(ar chi.Router) {
		ar.Post("/login", loginHandler(svc, issuer))
		ar.Post("/logout", logoutHandler(svc))
	})

	r.Get("/me", currentUserHandler(svc))
	r.Patch("/me", updateUserHandler(svc))
}

type loginRequest struct {
	Email string `json:"email"`
	// Password se acepta y se ignora: el login es demo, sin verificación.
	Password string `json:"password"`
}

type loginResponse struct {
	User  userResponse `json:"user"`
	Token string       `json:"token,omitempty"`
}

type updateUserRequest struct {
	Name      *string `json:"name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
	AvatarURL *string `json:"avatar_url"`
}

type userResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

func loginHandler(svc *Service, issuer TokenIssuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(req.Email) == "" {
			http.Error(w, "email is required", http.StatusBadRequest)
			return
		}

		u, err := svc.Login(r.Context(), req.Email)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		resp := loginResponse{User: toUserResponse(u)}
		if issuer != nil {
			t, err := issuer.Issue(u.ID, u.Email)
			if err != nil {
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}
			resp.Token = t
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

func logoutHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if err := svc.Logout(r.Context()); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func currentUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		u, ok := svc.Current()
		if !ok {
			http.Error(w, "no active session", http.StatusUnauthorized)
			return
		}

		writeJSON(w, http.StatusOK, toUserResponse(u))
	}
}

func updateUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()

		var req updateUserRequest
		if err := dec.Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		u, err := svc.Update(r.Context(), UpdateInput{
			Name:      req.Name,
			Email:     req.Email,
			Phone:     req.Phone,
			Address:   req.Address,
			AvatarURL: req.AvatarURL,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrNoSession):
				http.Error(w, "no active session", http.StatusUnauthorized)
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, toUserResponse(u))
	}
}

func toUserResponse(u User) userResponse {
	return userResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		Address:   u.Address,
		AvatarURL: u.AvatarURL,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// (pets/vaccinations/session) para evitar helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
