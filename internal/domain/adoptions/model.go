package adoptions

import "time"

// Adoption vincula un usuario (owner) con una mascota adoptada.
// Se crea exactamente una vez por adopción exitosa y es inmutable,
// salvo el borrado que usan los paths de limpieza.
type Adoption struct {
	ID string

	OwnerID string // referencia a User
	PetID   string // referencia a Pet

	CreatedAt time.Time
}
