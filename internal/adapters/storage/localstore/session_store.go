package localstore

import (
	"context"

	"pet-care-hub/internal/domain/session"
)

// sessionStore espeja el usuario de la sesión bajo la clave "user".
type sessionStore struct {
	kv KeyValue
}

func NewSessionStore(kv KeyValue) session.Persister {
	return &sessionStore{kv: kv}
}

func (s *sessionStore) Persist(ctx context.Context, u session.User) error {
	return s.kv.Save(ctx, KeyUser, u)
}

func (s *sessionStore) Clear(ctx context.Context) error {
	return s.kv.Remove(ctx, KeyUser)
}

func (s *sessionStore) Restore(ctx context.Context) (session.User, bool, error) {
	var u session.User
	ok, err := s.kv.Load(ctx, KeyUser, &u)
	if err != nil || !ok {
		return session.User{}, false, err
	}
	if u.ID == "" {
		// blob viejo sin id: inservible, mejor descartarlo
		_ = s.kv.Remove(ctx, KeyUser)
		return session.User{}, false, nil
	}
	return u, true, nil
}
