package pets

import "context"

// Repository es el slice de mascotas: una lista ordenada por inserción.
// Toda mutación exitosa deja la lista completa persistida (los adapters
// con bridge hacen mutate-then-flush; el in-memory solo muta).
type Repository interface {
	Add(ctx context.Context, p Pet) error
	Update(ctx context.Context, p Pet) error
	Delete(ctx context.Context, id string) error
	ReplaceAll(ctx context.Context, ps []Pet) error

	GetByID(ctx context.Context, id string) (Pet, error)
	List(ctx context.Context) ([]Pet, error)
}
