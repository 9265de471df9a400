package vaccinations

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("vaccination not found")
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

// PetRef es el snapshot de la mascota que queda copiado en el registro.
// El handler lo resuelve contra el módulo de mascotas al crear.
type PetRef struct {
	ID   string
	Name string
	Type string
}

type CreateInput struct {
	Type            string
	VaccinationDate time.Time
	// Si viene, manda sobre la derivación automática.
	NextVaccinationDate *time.Time
	Status              string // default: scheduled
	Notes               string
}

func (s *Service) Create(ctx context.Context, pet PetRef, in CreateInput) (Vaccination, error) {
	if strings.TrimSpace(pet.ID) == "" {
		return Vaccination{}, ErrInvalidInput
	}
	if !ValidType(Type(in.Type)) {
		return Vaccination{}, ErrInvalidInput
	}
	if in.VaccinationDate.IsZero() {
		return Vaccination{}, ErrInvalidInput
	}

	status := Status(in.Status)
	if in.Status == "" {
		status = StatusScheduled
	}
	if !ValidStatus(status) {
		return Vaccination{}, ErrInvalidInput
	}

	// La fecha explícita manda; sin ella, se deriva de tipo + fecha.
	next := in.NextVaccinationDate
	if next == nil {
		d := NextDue(Type(in.Type), in.VaccinationDate)
		next = &d
	} else {
		d := DateOnly(*next)
		next = &d
	}

	v := Vaccination{
		ID:                  uuid.NewString(),
		PetID:               pet.ID,
		PetName:             pet.Name,
		PetType:             pet.Type,
		Type:                Type(in.Type),
		VaccinationDate:     DateOnly(in.VaccinationDate),
		NextVaccinationDate: next,
		Status:              status,
		Notes:               strings.TrimSpace(in.Notes),
		CreatedAt:           s.now(),
	}

	if err := s.repo.Add(ctx, v); err != nil {
		return Vaccination{}, err
	}
	return v, nil
}

type UpdateInput struct {
	// Punteros para PATCH real: nil = no tocar.
	Type                *string
	VaccinationDate     *time.Time
	NextVaccinationDate *time.Time
	Notes               *string
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Vaccination, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Vaccination{}, ErrInvalidInput
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Vaccination{}, err
	}

	rederive := false
	if in.Type != nil {
		if !ValidType(Type(*in.Type)) {
			return Vaccination{}, ErrInvalidInput
		}
		current.Type = Type(*in.Type)
		rederive = true
	}
	if in.VaccinationDate != nil {
		if in.VaccinationDate.IsZero() {
			return Vaccination{}, ErrInvalidInput
		}
		current.VaccinationDate = DateOnly(*in.VaccinationDate)
		rederive = true
	}
	if in.NextVaccinationDate != nil {
		d := DateOnly(*in.NextVaccinationDate)
		current.NextVaccinationDate = &d
		rederive = false
	} else if rederive {
		d := NextDue(current.Type, current.VaccinationDate)
		current.NextVaccinationDate = &d
	}
	if in.Notes != nil {
		current.Notes = strings.TrimSpace(*in.Notes)
	}

	if err := s.repo.Update(ctx, current); err != nil {
		return Vaccination{}, err
	}
	return current, nil
}

// SetStatus cambia solo el campo status del registro.
func (s *Service) SetStatus(ctx context.Context, id string, status Status) (Vaccination, error) {
	if !ValidStatus(status) {
		return Vaccination{}, ErrInvalidInput
	}

	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Vaccination{}, err
	}

	v.Status = status
	if err := s.repo.Update(ctx, v); err != nil {
		return Vaccination{}, err
	}
	return v, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) ReplaceAll(ctx context.Context, vs []Vaccination) error {
	for i := range vs {
		if strings.TrimSpace(vs[i].ID) == "" {
			return ErrInvalidInput
		}
	}
	return s.repo.ReplaceAll(ctx, vs)
}

func (s *Service) GetByID(ctx context.Context, id string) (Vaccination, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Vaccination, error) {
	return s.repo.List(ctx)
}

// ScheduleEntry es un registro más su clasificación relativa a hoy.
type ScheduleEntry struct {
	Vaccination Vaccination
	Urgency     Urgency
}

// Schedule lista los registros clasificados contra la fecha actual.
// La urgencia se recalcula siempre, nunca se guarda en el registro.
func (s *Service) Schedule(ctx context.Context) ([]ScheduleEntry, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	today := s.now()
	out := make([]ScheduleEntry, 0, len(all))
	for _, v := range all {
		out = append(out, ScheduleEntry{
			Vaccination: v,
			Urgency:     Classify(today, v),
		})
	}
	return out, nil
}
