package token

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"pet-care-hub/internal/ports/auth"
)

var (
	ErrInvalidToken = errors.New("invalid token")
)

// Manager firma y verifica tokens de sesión HS256 locales.
// No hay backend de auth: el login es mock y el token solo transporta
// la identidad de la sesión entre requests.
type Manager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewManager(secret string, ttl time.Duration) (*Manager, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, errors.New("token: secret required")
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Manager{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

type sessionClaims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

func (m *Manager) Issue(userID, email string) (string, error) {
	if strings.TrimSpace(userID) == "" {
		return "", errors.New("token: user id required")
	}

	now := m.now()
	claims := sessionClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(m.secret)
}

// Verify implementa auth.AuthVerifier.
func (m *Manager) Verify(ctx context.Context, raw string) (auth.Claims, error) {
	var claims sessionClaims

	t, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now))
	if err != nil || !t.Valid {
		return auth.Claims{}, ErrInvalidToken
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return auth.Claims{}, ErrInvalidToken
	}

	return auth.Claims{UserID: claims.Subject, Email: claims.Email}, nil
}
