package users

import "time"

// Role define los roles soportados.
// @Enum user, admin
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User representa una cuenta registrada en el sistema.
// Pets es un set de referencias (ids de mascotas adoptadas); el orden no importa.
type User struct {
	ID string

	FirstName string
	LastName  string
	Email     string // único
	Password  string // credencial ya hasheada por la capa de sesiones

	Role Role
	Pets []string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasPet indica si el usuario ya tiene la referencia a la mascota.
func (u User) HasPet(petID string) bool {
	for _, id := range u.Pets {
		if id == petID {
			return true
		}
	}
	return false
}
