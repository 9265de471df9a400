package session

import (
	"context"
	"errors"
	"strings"
	"sync"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNoSession    = errors.New("no active session")
)

// Valores fijos del usuario demo. El login no verifica credenciales:
// cualquier email produce el mismo usuario con ese email.
const (
	demoUserID    = "1"
	demoUserName  = "Ivan Petrenko"
	demoUserPhone = "+380991234567"
	demoUserAddr  = "Kyiv, Shevchenka St. 1"
	demoAvatarURL = "/api/placeholder/150/150"
)

// Service mantiene la sesión única en memoria y la espeja vía Persister.
type Service struct {
	mu            sync.RWMutex
	persister     Persister
	user          User
	authenticated bool
}

func NewService(p Persister) *Service {
	return &Service{persister: p}
}

// Login fabrica el usuario demo determinístico a partir del email.
func (s *Service) Login(ctx context.Context, email string) (User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return User{}, ErrInvalidInput
	}

	u := User{
		ID:        demoUserID,
		Name:      demoUserName,
		Email:     email,
		Phone:     demoUserPhone,
		Address:   demoUserAddr,
		AvatarURL: demoAvatarURL,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persister.Persist(ctx, u); err != nil {
		return User{}, err
	}
	s.user = u
	s.authenticated = true
	return u, nil
}

// Restore carga el usuario espejado por el Persister e instala la sesión
// si existe, sin revalidar nada. Lo usa la hidratación al arrancar; el
// storage ya reporta ausentes los blobs corruptos o sin id.
func (s *Service) Restore(ctx context.Context) (User, bool, error) {
	u, ok, err := s.persister.Restore(ctx)
	if err != nil || !ok {
		return User{}, false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = u
	s.authenticated = true
	return u, true, nil
}

func (s *Service) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persister.Clear(ctx); err != nil {
		return err
	}
	s.user = User{}
	s.authenticated = false
	return nil
}

type UpdateInput struct {
	// Punteros para PATCH real: nil = no tocar.
	Name      *string
	Email     *string
	Phone     *string
	Address   *string
	AvatarURL *string
}

func (s *Service) Update(ctx context.Context, in UpdateInput) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.authenticated {
		return User{}, ErrNoSession
	}

	u := s.user
	if in.Name != nil {
		u.Name = strings.TrimSpace(*in.Name)
	}
	if in.Email != nil {
		if strings.TrimSpace(*in.Email) == "" {
			return User{}, ErrInvalidInput
		}
		u.Email = strings.TrimSpace(*in.Email)
	}
	if in.Phone != nil {
		u.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.Address != nil {
		u.Address = strings.TrimSpace(*in.Address)
	}
	if in.AvatarURL != nil {
		u.AvatarURL = strings.TrimSpace(*in.AvatarURL)
	}

	if err := s.persister.Persist(ctx, u); err != nil {
		return User{}, err
	}
	s.user = u
	return u, nil
}

func (s *Service) Current() (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user, s.authenticated
}
