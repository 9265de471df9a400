package localstore

import (
	"context"
	"errors"
	"sync"

	"pet-care-hub/internal/domain/pets"
)

// petsRepo mantiene la lista en memoria y espeja el blob "pets" tras cada
// mutación. Primero hace flush de la lista nueva y recién entonces la
// commitea en memoria, así caller ve memoria y storage consistentes.
type petsRepo struct {
	mu   sync.RWMutex
	kv   KeyValue
	pets []pets.Pet
}

func NewPetsRepo(kv KeyValue) pets.Repository {
	return &petsRepo{kv: kv, pets: []pets.Pet{}}
}

func (r *petsRepo) Add(ctx context.Context, p pets.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.ID == "" {
		return errors.New("pet id required")
	}
	for _, existing := range r.pets {
		if existing.ID == p.ID {
			return errors.New("pet already exists")
		}
	}

	next := append(append([]pets.Pet{}, r.pets...), p)
	if err := r.kv.Save(ctx, KeyPets, next); err != nil {
		return err
	}
	r.pets = next
	return nil
}

func (r *petsRepo) Update(ctx context.Context, p pets.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i := range r.pets {
		if r.pets[i].ID == p.ID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return pets.ErrNotFound
	}

	next := append([]pets.Pet{}, r.pets...)
	next[idx] = p
	if err := r.kv.Save(ctx, KeyPets, next); err != nil {
		return err
	}
	r.pets = next
	return nil
}

func (r *petsRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]pets.Pet, 0, len(r.pets))
	found := false
	for _, p := range r.pets {
		if p.ID == id {
			found = true
			continue
		}
		next = append(next, p)
	}
	if !found {
		return pets.ErrNotFound
	}

	if err := r.kv.Save(ctx, KeyPets, next); err != nil {
		return err
	}
	r.pets = next
	return nil
}

func (r *petsRepo) ReplaceAll(ctx context.Context, ps []pets.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := append([]pets.Pet{}, ps...)
	if err := r.kv.Save(ctx, KeyPets, next); err != nil {
		return err
	}
	r.pets = next
	return nil
}

func (r *petsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.pets {
		if p.ID == id {
			return p, nil
		}
	}
	return pets.Pet{}, pets.ErrNotFound
}

func (r *petsRepo) List(ctx context.Context) ([]pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]pets.Pet{}, r.pets...), nil
}
