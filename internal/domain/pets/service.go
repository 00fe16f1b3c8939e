package pets

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

// Service es el registro de mascotas que consume el workflow de adopciones.
type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Name      string
	Species   string
	BirthDate *time.Time
	Image     string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Pet, error) {
	if strings.TrimSpace(in.Name) == "" {
		return Pet{}, ErrInvalidInput
	}

	species, err := parseSpecies(in.Species)
	if err != nil {
		return Pet{}, err
	}

	now := s.now()
	p := Pet{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(in.Name),
		Species:   species,
		BirthDate: in.BirthDate,
		Image:     strings.TrimSpace(in.Image),
		Adopted:   false,
		OwnerID:   nil,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Pet, error) {
	return s.repo.List(ctx)
}

// MarkAdopted marca la mascota como adoptada por ownerID.
// Delegación directa al update condicional del repo; ver Repository.
func (s *Service) MarkAdopted(ctx context.Context, petID, ownerID string) error {
	petID = strings.TrimSpace(petID)
	ownerID = strings.TrimSpace(ownerID)
	if petID == "" || ownerID == "" {
		return ErrInvalidInput
	}
	return s.repo.MarkAdopted(ctx, petID, ownerID)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}
	return s.repo.Delete(ctx, id)
}

func parseSpecies(raw string) (Species, error) {
	sp := Species(strings.ToLower(strings.TrimSpace(raw)))
	switch sp {
	case SpeciesDog, SpeciesCat, SpeciesHorse, SpeciesRabbit:
		return sp, nil
	default:
		return "", ErrInvalidInput
	}
}
