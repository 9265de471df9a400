package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"pet-care-hub/internal/adapters/storage/localstore"
	"pet-care-hub/internal/domain/pets"
	"pet-care-hub/internal/domain/session"
	"pet-care-hub/internal/domain/vaccinations"
	"pet-care-hub/internal/middleware"
	"pet-care-hub/internal/platform/logger"
	"pet-care-hub/internal/ports/auth"
)

type Options struct {
	// Verifier puede ser nil (modo dev): identidad vía X-Debug-User-ID.
	Verifier auth.AuthVerifier
	// Issuer puede ser nil (modo dev): el login no devuelve token.
	Issuer session.TokenIssuer

	Logger logger.Logger

	// Servicios ya hidratados. Si vienen en nil, el router arma unos
	// in-memory (útil en tests, igual que el fallback sin DB de siempre).
	Session      *session.Service
	Pets         *pets.Service
	Vaccinations *vaccinations.Service
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	log := opts.Logger
	if log == nil {
		log = logger.Nop{}
	}

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLog(log))

	r.Use(middleware.AuthContext(opts.Verifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Contenido informativo estático (frecuencias recomendadas de vacunación).
	r.Get("/appointments", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"recommendations":[` +
			`{"pet_type":"cat","frequency":"yearly","vaccination":"complex"},` +
			`{"pet_type":"dog","frequency":"yearly","vaccination":"complex and rabies"},` +
			`{"pet_type":"bird","frequency":"every 6-12 months","vaccination":"diseases"}]}`))
	})

	sessionSvc := opts.Session
	petsSvc := opts.Pets
	vaccSvc := opts.Vaccinations

	if sessionSvc == nil || petsSvc == nil || vaccSvc == nil {
		kv := localstore.NewMemoryKV()
		if sessionSvc == nil {
			sessionSvc = session.NewService(localstore.NewSessionStore(kv))
		}
		if petsSvc == nil {
			petsSvc = pets.NewService(localstore.NewPetsRepo(kv))
		}
		if vaccSvc == nil {
			vaccSvc = vaccinations.NewService(localstore.NewVaccinationsRepo(kv))
		}
	}

	// Rutas por módulo
	session.RegisterRoutes(r, sessionSvc, opts.Issuer)
	pets.RegisterRoutes(r, petsSvc)
	vaccinations.RegisterRoutes(r, vaccSvc, petsSvc)

	return r
}
