package pets

import "time"

// Species define las especies soportadas.
// @Enum dog, cat, horse, rabbit
type Species string

const (
	SpeciesDog    Species = "dog"
	SpeciesCat    Species = "cat"
	SpeciesHorse  Species = "horse"
	SpeciesRabbit Species = "rabbit"
)

// Pet representa una mascota registrada y su estado de adopción.
//
// Estados respecto de la adopción:
//   - disponible: Adopted=false, OwnerID=nil
//   - adoptada:   Adopted=true, OwnerID=<usuario>
//
// La única transición definida es disponible -> adoptada, vía el
// workflow de adopciones. No hay vuelta atrás (re-listar una mascota
// está fuera de alcance).
type Pet struct {
	ID string

	Name    string
	Species Species

	BirthDate *time.Time
	Image     string // URL de la imagen

	Adopted bool
	OwnerID *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
