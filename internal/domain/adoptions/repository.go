package adoptions

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("adoption not found")
)

type Repository interface {
	Create(ctx context.Context, a Adoption) error
	GetByID(ctx context.Context, id string) (Adoption, error)
	List(ctx context.Context) ([]Adoption, error)

	// Delete borra solo el registro de adopción; no toca Pet ni User.
	// Lo usan el teardown de tests y la compensación por carrera perdida.
	Delete(ctx context.Context, id string) error
}
