package users

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("user not found")
)

// Repository expone mutaciones acotadas sobre usuarios.
// AppendPet es la única forma de tocar User.Pets: mantiene el invariante
// de que una referencia solo aparece tras una adopción.
type Repository interface {
	Create(ctx context.Context, u User) error
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)

	// AppendPet agrega petID al set de mascotas del usuario.
	// Idempotente: si la referencia ya existe no hace nada.
	AppendPet(ctx context.Context, userID, petID string) error

	Delete(ctx context.Context, id string) error
}
