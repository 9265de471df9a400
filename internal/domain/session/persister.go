package session

import "context"

// Persister espeja el usuario de la sesión en el storage, clave "user".
// Restore reporta ausente (false) si nunca se guardó o el blob estaba
// corrupto (el bridge lo descarta solo).
type Persister interface {
	Persist(ctx context.Context, u User) error
	Clear(ctx context.Context) error
	Restore(ctx context.Context) (User, bool, error)
}
