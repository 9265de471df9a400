package vaccinations

import "time"

// Type define los tipos de vacunación soportados.
type Type string

const (
	TypeComplex   Type = "complex"
	TypeRabies    Type = "rabies"
	TypeParasites Type = "parasites"
	TypeDiseases  Type = "diseases"
	TypeOther     Type = "other"
)

func ValidType(t Type) bool {
	switch t {
	case TypeComplex, TypeRabies, TypeParasites, TypeDiseases, TypeOther:
		return true
	}
	return false
}

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
)

func ValidStatus(s Status) bool {
	return s == StatusScheduled || s == StatusCompleted
}

// Vaccination es un registro del plan de vacunación.
// PetName y PetType son un snapshot desnormalizado tomado al crear el
// registro; ediciones posteriores de la mascota NO se propagan (a propósito).
// Los tags JSON siguen el formato del blob persistido bajo "vaccinations".
type Vaccination struct {
	ID      string `json:"id"`
	PetID   string `json:"petId"`
	PetName string `json:"petName"`
	PetType string `json:"petType"`

	Type Type `json:"type"`

	VaccinationDate     time.Time  `json:"vaccinationDate"`
	NextVaccinationDate *time.Time `json:"nextVaccinationDate,omitempty"`

	Status Status `json:"status"`
	Notes  string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}
