package pets

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("pet not found")

	// ErrAlreadyAdopted lo devuelve MarkAdopted cuando la mascota ya tenía
	// adopted=true. Es la señal con la que el workflow detecta una carrera
	// perdida entre dos adopciones concurrentes.
	ErrAlreadyAdopted = errors.New("pet already adopted")
)

// Repository expone mutaciones acotadas sobre mascotas.
// MarkAdopted es la única forma de tocar el flag adopted y el owner:
// es un update condicional (adopted=false como guarda), así dos requests
// concurrentes para la misma mascota no pueden adoptarla dos veces.
type Repository interface {
	Create(ctx context.Context, p Pet) error
	GetByID(ctx context.Context, id string) (Pet, error)
	List(ctx context.Context) ([]Pet, error)

	// MarkAdopted setea adopted=true y owner=ownerID solo si adopted=false.
	// Devuelve ErrAlreadyAdopted si la guarda falla y ErrNotFound si la
	// mascota no existe.
	MarkAdopted(ctx context.Context, petID, ownerID string) error

	Delete(ctx context.Context, id string) error
}
