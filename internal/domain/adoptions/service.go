package adoptions

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-adoptions/internal/domain/pets"
	"pet-adoptions/internal/domain/users"
	"pet-adoptions/internal/platform/logger"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")

	ErrUserNotFound   = errors.New("user not found")
	ErrPetNotFound    = errors.New("pet not found")
	ErrAlreadyAdopted = errors.New("pet already adopted")

	// ErrPersistence envuelve cualquier falla de escritura posterior a las
	// precondiciones (store caído, etc.). No hay rollback automático más
	// allá de la compensación por carrera perdida; ver Adopt.
	ErrPersistence = errors.New("adoption persistence failure")
)

// UserDirectory es el contrato que el workflow consume del directorio de
// usuarios. Lo implementa users.Service; los tests lo sustituyen para
// simular carreras y fallas del store.
type UserDirectory interface {
	GetByID(ctx context.Context, id string) (users.User, error)
	AppendPet(ctx context.Context, userID, petID string) error
}

// PetRegistry es el contrato que el workflow consume del registro de mascotas.
type PetRegistry interface {
	GetByID(ctx context.Context, id string) (pets.Pet, error)
	MarkAdopted(ctx context.Context, petID, ownerID string) error
}

// Metrics recibe los resultados del workflow. Implementada por
// internal/metrics; nil => no-op.
type Metrics interface {
	AdoptionCompleted()
	AdoptionRejected(reason string)
}

type noopMetrics struct{}

func (noopMetrics) AdoptionCompleted()             {}
func (noopMetrics) AdoptionRejected(reason string) {}

// Service orquesta la transacción de adopción: precondiciones sobre
// usuario y mascota, alta del registro de adopción y las dos
// actualizaciones dependientes (mascota y usuario).
type Service struct {
	dir UserDirectory
	reg PetRegistry

	repo Repository

	now     func() time.Time
	log     logger.Logger
	metrics Metrics
}

func NewService(dir UserDirectory, reg PetRegistry, repo Repository, log logger.Logger, m Metrics) *Service {
	if log == nil {
		log = logger.Nop()
	}
	if m == nil {
		m = noopMetrics{}
	}
	return &Service{
		dir:     dir,
		reg:     reg,
		repo:    repo,
		now:     time.Now,
		log:     log,
		metrics: m,
	}
}

// Adopt ejecuta la transacción de adopción para (userID, petID).
//
// Precondiciones, en orden y con corte en la primera que falla:
//  1. el usuario existe                -> ErrUserNotFound
//  2. la mascota existe               -> ErrPetNotFound
//  3. la mascota no está adoptada     -> ErrAlreadyAdopted
//
// Escrituras (no atómicas entre sí):
//  a. alta del registro Adoption
//  b. update condicional de la mascota (adopted=true, owner=userID)
//  c. append de petID al set de mascotas del usuario
//
// Si (b) pierde la carrera contra otra adopción concurrente, se borra el
// registro creado en (a) y se devuelve ErrAlreadyAdopted: nunca quedan dos
// adopciones para la misma mascota. Cualquier otra falla en (a)-(c) se
// reporta como ErrPersistence sin compensación (gap documentado).
func (s *Service) Adopt(ctx context.Context, userID, petID string) (Adoption, error) {
	userID = strings.TrimSpace(userID)
	petID = strings.TrimSpace(petID)
	if userID == "" || petID == "" {
		return Adoption{}, ErrInvalidInput
	}

	if _, err := s.dir.GetByID(ctx, userID); err != nil {
		if errors.Is(err, users.ErrNotFound) {
			s.metrics.AdoptionRejected("user_not_found")
			return Adoption{}, ErrUserNotFound
		}
		return Adoption{}, fmt.Errorf("%w: user lookup: %v", ErrPersistence, err)
	}

	p, err := s.reg.GetByID(ctx, petID)
	if err != nil {
		if errors.Is(err, pets.ErrNotFound) {
			s.metrics.AdoptionRejected("pet_not_found")
			return Adoption{}, ErrPetNotFound
		}
		return Adoption{}, fmt.Errorf("%w: pet lookup: %v", ErrPersistence, err)
	}
	if p.Adopted {
		s.metrics.AdoptionRejected("already_adopted")
		return Adoption{}, ErrAlreadyAdopted
	}

	a := Adoption{
		ID:        uuid.NewString(),
		OwnerID:   userID,
		PetID:     petID,
		CreatedAt: s.now(),
	}

	if err := s.repo.Create(ctx, a); err != nil {
		s.logPersistence("create adoption", a, err)
		return Adoption{}, fmt.Errorf("%w: create adoption: %v", ErrPersistence, err)
	}

	if err := s.reg.MarkAdopted(ctx, petID, userID); err != nil {
		if errors.Is(err, pets.ErrAlreadyAdopted) {
			// Carrera perdida: otro request marcó la mascota entre nuestra
			// precondición y el update. Limpiamos nuestro registro.
			if derr := s.repo.Delete(ctx, a.ID); derr != nil {
				s.logPersistence("cleanup after lost race", a, derr)
			}
			s.metrics.AdoptionRejected("already_adopted")
			return Adoption{}, ErrAlreadyAdopted
		}
		s.logPersistence("mark pet adopted", a, err)
		return Adoption{}, fmt.Errorf("%w: mark pet adopted: %v", ErrPersistence, err)
	}

	if err := s.dir.AppendPet(ctx, userID, petID); err != nil {
		// El registro y la mascota ya quedaron escritos; estado parcial
		// conocido, se reporta y no se revierte.
		s.logPersistence("append pet to user", a, err)
		return Adoption{}, fmt.Errorf("%w: append pet to user: %v", ErrPersistence, err)
	}

	s.metrics.AdoptionCompleted()
	return a, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Adoption, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Adoption{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// List devuelve todas las adopciones. El orden no es contractual
// (los adapters devuelven orden de inserción).
func (s *Service) List(ctx context.Context) ([]Adoption, error) {
	return s.repo.List(ctx)
}

// Delete borra solo el registro de adopción; el estado de Pet/User queda
// a cargo del caller (se usa en teardown de tests y limpieza).
func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) logPersistence(step string, a Adoption, err error) {
	s.log.Error("adoption persistence failure", map[string]any{
		"step":        step,
		"adoption_id": a.ID,
		"user_id":     a.OwnerID,
		"pet_id":      a.PetID,
		"err":         err.Error(),
	})
}
