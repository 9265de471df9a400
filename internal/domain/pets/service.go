package pets

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("pet not found")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Name        string
	Type        string
	Breed       string
	Age         int
	Weight      float64
	ImageURL    string
	Description string
}

func (s *Service) Create(ctx context.Context, ownerID string, in CreateInput) (Pet, error) {
	if strings.TrimSpace(ownerID) == "" {
		return Pet{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Name) == "" {
		return Pet{}, ErrInvalidInput
	}
	if !ValidType(Type(in.Type)) {
		return Pet{}, ErrInvalidInput
	}
	if in.Age < 0 || in.Weight < 0 {
		return Pet{}, ErrInvalidInput
	}

	p := Pet{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(in.Name),
		Type:        Type(in.Type),
		Breed:       strings.TrimSpace(in.Breed),
		Age:         in.Age,
		Weight:      in.Weight,
		OwnerID:     ownerID,
		ImageURL:    strings.TrimSpace(in.ImageURL),
		Description: strings.TrimSpace(in.Description),
		CreatedAt:   s.now(),
	}

	if err := s.repo.Add(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

type UpdateInput struct {
	// Punteros para PATCH real: nil = no tocar.
	Name        *string
	Type        *string
	Breed       *string
	Age         *int
	Weight      *float64
	ImageURL    *string
	Description *string
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Pet{}, ErrInvalidInput
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Pet{}, err
	}

	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return Pet{}, ErrInvalidInput
		}
		current.Name = strings.TrimSpace(*in.Name)
	}
	if in.Type != nil {
		if !ValidType(Type(*in.Type)) {
			return Pet{}, ErrInvalidInput
		}
		current.Type = Type(*in.Type)
	}
	if in.Breed != nil {
		current.Breed = strings.TrimSpace(*in.Breed)
	}
	if in.Age != nil {
		if *in.Age < 0 {
			return Pet{}, ErrInvalidInput
		}
		current.Age = *in.Age
	}
	if in.Weight != nil {
		if *in.Weight < 0 {
			return Pet{}, ErrInvalidInput
		}
		current.Weight = *in.Weight
	}
	if in.ImageURL != nil {
		current.ImageURL = strings.TrimSpace(*in.ImageURL)
	}
	if in.Description != nil {
		current.Description = strings.TrimSpace(*in.Description)
	}

	if err := s.repo.Update(ctx, current); err != nil {
		return Pet{}, err
	}
	return current, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}
	return s.repo.Delete(ctx, id)
}

// ReplaceAll pisa la lista completa. Lo usa la hidratación; los tipos
// desconocidos de datos viejos se coercionan a "other" en vez de fallar.
func (s *Service) ReplaceAll(ctx context.Context, ps []Pet) error {
	for i := range ps {
		if strings.TrimSpace(ps[i].ID) == "" {
			return ErrInvalidInput
		}
		ps[i].Type = CoerceType(ps[i].Type)
	}
	return s.repo.ReplaceAll(ctx, ps)
}

func (s *Service) ToggleFavorite(ctx context.Context, id string) (Pet, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Pet{}, err
	}

	p.Favorite = !p.Favorite
	if err := s.repo.Update(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Pet, error) {
	return s.repo.List(ctx)
}

// Search es una proyección pura de lectura: substring case-insensitive
// sobre nombre/raza más filtro exacto por tipo. No muta ni persiste nada.
func (s *Service) Search(ctx context.Context, query string, petType string) ([]Pet, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	t := strings.TrimSpace(petType)

	out := make([]Pet, 0, len(all))
	for _, p := range all {
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Breed), q) {
			continue
		}
		if t != "" && t != "all" && p.Type != Type(t) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}
