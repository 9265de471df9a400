package vaccinations

import "context"

// Repository es el slice de vacunaciones, misma disciplina que el de
// mascotas: lista ordenada por inserción, flush completo tras cada mutación.
type Repository interface {
	Add(ctx context.Context, v Vaccination) error
	Update(ctx context.Context, v Vaccination) error
	Delete(ctx context.Context, id string) error
	ReplaceAll(ctx context.Context, vs []Vaccination) error

	GetByID(ctx context.Context, id string) (Vaccination, error)
	List(ctx context.Context) ([]Vaccination, error)
}
