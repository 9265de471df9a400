package pets

import "time"

// Type define los tipos de mascota soportados. Enumeración cerrada:
// un valor desconocido se rechaza en escritura y se coerciona a "other"
// al rehidratar datos viejos.
type Type string

const (
	TypeDog   Type = "dog"
	TypeCat   Type = "cat"
	TypeBird  Type = "bird"
	TypeFish  Type = "fish"
	TypeOther Type = "other"
)

func ValidType(t Type) bool {
	switch t {
	case TypeDog, TypeCat, TypeBird, TypeFish, TypeOther:
		return true
	}
	return false
}

// CoerceType normaliza un tipo desconocido a "other" (lectura tolerante).
func CoerceType(t Type) Type {
	if ValidType(t) {
		return t
	}
	return TypeOther
}

// Pet representa una mascota del registro.
// Los tags JSON siguen el formato de los blobs persistidos bajo la
// clave "pets" (camelCase, heredado del formato original almacenado).
type Pet struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Type    Type    `json:"type"`
	Breed   string  `json:"breed"`
	Age     int     `json:"age"`    // años
	Weight  float64 `json:"weight"` // kilogramos
	OwnerID string  `json:"ownerId"`

	ImageURL    string `json:"imageUrl,omitempty"`
	Description string `json:"description,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	Favorite  bool      `json:"favorite"`
}
