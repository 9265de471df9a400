// Package bootstrap hace la hidratación única de arranque: carga sesión y
// listas persistidas hacia los slices en memoria, y siembra las mascotas
// demo cuando corresponde. El router recién sirve tráfico cuando terminó.
package bootstrap

import (
	"context"
	"sync"
	"time"

	"pet-care-hub/internal/adapters/storage/localstore"
	"pet-care-hub/internal/domain/pets"
	"pet-care-hub/internal/domain/session"
	"pet-care-hub/internal/domain/vaccinations"
	"pet-care-hub/internal/platform/logger"
)

type Deps struct {
	KV           localstore.KeyValue
	Session      *session.Service
	Pets         *pets.Service
	Vaccinations *vaccinations.Service
	Logger       logger.Logger
	Now          func() time.Time
}

// Runner garantiza exactamente una pasada de hidratación por proceso.
type Runner struct {
	once sync.Once
	err  error
}

func (r *Runner) Run(ctx context.Context, deps Deps) error {
	r.once.Do(func() {
		r.err = hydrate(ctx, deps)
	})
	return r.err
}

func hydrate(ctx context.Context, deps Deps) error {
	log := deps.Logger
	if log == nil {
		log = logger.Nop{}
	}
	now := deps.Now
	if now == nil {
		now = time.Now
	}

	// 1) Sesión: si hay usuario guardado, se restaura sin revalidar.
	// El Persister ya reporta ausentes los blobs corruptos o sin id.
	u, authenticated, err := deps.Session.Restore(ctx)
	if err != nil {
		return err
	}
	if authenticated {
		log.Info("session restored", map[string]any{"user_id": u.ID})
	}

	// 2) Mascotas: si la clave existe, gana la lista guardada aunque esté
	// vacía (borrar la última mascota persiste una lista vacía). Recién
	// cuando nunca se guardó nada y hay sesión se siembran las tres demo.
	var stored []pets.Pet
	ok, err := deps.KV.Load(ctx, localstore.KeyPets, &stored)
	if err != nil {
		return err
	}
	switch {
	case ok:
		if len(stored) > 0 {
			if err := deps.Pets.ReplaceAll(ctx, stored); err != nil {
				return err
			}
			log.Info("pets restored", map[string]any{"count": len(stored)})
		}
	case authenticated:
		seed := SeedPets(now())
		if err := deps.Pets.ReplaceAll(ctx, seed); err != nil {
			return err
		}
		log.Info("pets seeded", map[string]any{"count": len(seed)})
	}

	// 3) Vacunaciones.
	var records []vaccinations.Vaccination
	ok, err = deps.KV.Load(ctx, localstore.KeyVaccinations, &records)
	if err != nil {
		return err
	}
	if ok && len(records) > 0 {
		if err := deps.Vaccinations.ReplaceAll(ctx, records); err != nil {
			return err
		}
		log.Info("vaccinations restored", map[string]any{"count": len(records)})
	}

	return nil
}

// SeedPets son las tres mascotas de demostración con atributos fijos
// (gato, perro y pájaro), dueñas del usuario demo.
func SeedPets(createdAt time.Time) []pets.Pet {
	return []pets.Pet{
		{
			ID:          "1",
			Name:        "Barsik",
			Type:        pets.TypeCat,
			Breed:       "British Shorthair",
			Age:         3,
			Weight:      4.5,
			OwnerID:     "1",
			ImageURL:    "/api/placeholder/300/200",
			Description: "Calm and affectionate cat",
			CreatedAt:   createdAt,
			Favorite:    false,
		},
		{
			ID:          "2",
			Name:        "Rex",
			Type:        pets.TypeDog,
			Breed:       "German Shepherd",
			Age:         2,
			Weight:      28,
			OwnerID:     "1",
			ImageURL:    "/api/placeholder/300/200",
			Description: "Active and smart dog",
			CreatedAt:   createdAt,
			Favorite:    true,
		},
		{
			ID:          "3",
			Name:        "Kesha",
			Type:        pets.TypeBird,
			Breed:       "Parrot",
			Age:         1,
			Weight:      0.3,
			OwnerID:     "1",
			ImageURL:    "/api/placeholder/300/200",
			Description: "Talkative parrot",
			CreatedAt:   createdAt,
			Favorite:    false,
		},
	}
}
