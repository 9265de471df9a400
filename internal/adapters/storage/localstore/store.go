// Package localstore es el bridge clave-valor del sistema: blobs JSON con
// nombre, espejo persistente del estado en memoria. Cada repositorio de
// este paquete muta su lista en memoria y hace flush completo del blob en
// la misma llamada (mutate-then-flush), igual que el storage local que
// este sistema reemplaza.
package localstore

import "context"

// Claves persistidas. Sin campo de versión: un blob ausente o malformado
// se trata como ausente (y el malformado se elimina, self-healing).
const (
	KeyUser         = "user"
	KeyPets         = "pets"
	KeyVaccinations = "vaccinations"
)

// KeyValue serializa value a JSON bajo key. Load decodifica en dst y
// devuelve false si la clave nunca se guardó; si el blob está corrupto,
// lo elimina y también devuelve false, nunca error por eso.
type KeyValue interface {
	Save(ctx context.Context, key string, value any) error
	Load(ctx context.Context, key string, dst any) (bool, error)
	Remove(ctx context.Context, key string) error
}
