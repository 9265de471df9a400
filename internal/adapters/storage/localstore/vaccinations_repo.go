package localstore

import (
	"context"
	"errors"
	"sync"

	"pet-care-hub/internal/domain/vaccinations"
)

// vaccinationsRepo: misma disciplina que petsRepo sobre el blob
// "vaccinations".
type vaccinationsRepo struct {
	mu      sync.RWMutex
	kv      KeyValue
	records []vaccinations.Vaccination
}

func NewVaccinationsRepo(kv KeyValue) vaccinations.Repository {
	return &vaccinationsRepo{kv: kv, records: []vaccinations.Vaccination{}}
}

func (r *vaccinationsRepo) Add(ctx context.Context, v vaccinations.Vaccination) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if v.ID == "" {
		return errors.New("vaccination id required")
	}
	for _, existing := range r.records {
		if existing.ID == v.ID {
			return errors.New("vaccination already exists")
		}
	}

	next := append(append([]vaccinations.Vaccination{}, r.records...), v)
	if err := r.kv.Save(ctx, KeyVaccinations, next); err != nil {
		return err
	}
	r.records = next
	return nil
}

func (r *vaccinationsRepo) Update(ctx context.Context, v vaccinations.Vaccination) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i := range r.records {
		if r.records[i].ID == v.ID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return vaccinations.ErrNotFound
	}

	next := append([]vaccinations.Vaccination{}, r.records...)
	next[idx] = v
	if err := r.kv.Save(ctx, KeyVaccinations, next); err != nil {
		return err
	}
	r.records = next
	return nil
}

func (r *vaccinationsRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]vaccinations.Vaccination, 0, len(r.records))
	found := false
	for _, v := range r.records {
		if v.ID == id {
			found = true
			continue
		}
		next = append(next, v)
	}
	if !found {
		return vaccinations.ErrNotFound
	}

	if err := r.kv.Save(ctx, KeyVaccinations, next); err != nil {
		return err
	}
	r.records = next
	return nil
}

func (r *vaccinationsRepo) ReplaceAll(ctx context.Context, vs []vaccinations.Vaccination) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := append([]vaccinations.Vaccination{}, vs...)
	if err := r.kv.Save(ctx, KeyVaccinations, next); err != nil {
		return err
	}
	r.records = next
	return nil
}

func (r *vaccinationsRepo) GetByID(ctx context.Context, id string) (vaccinations.Vaccination, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, v := range r.records {
		if v.ID == id {
			return v, nil
		}
	}
	return vaccinations.Vaccination{}, vaccinations.ErrNotFound
}

func (r *vaccinationsRepo) List(ctx context.Context) ([]vaccinations.Vaccination, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]vaccinations.Vaccination{}, r.records...), nil
}
