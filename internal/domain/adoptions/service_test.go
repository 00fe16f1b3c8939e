package adoptions_test

import (
	"context"
	"errors"
	"testing"

	mem "pet-adoptions/internal/adapters/storage/memory"
	"pet-adoptions/internal/domain/adoptions"
	"pet-adoptions/internal/domain/pets"
	"pet-adoptions/internal/domain/users"
)

type fixture struct {
	users     *users.Service
	pets      *pets.Service
	adoptions *adoptions.Service
	repo      adoptions.Repository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	usersSvc := users.NewService(mem.NewUsersRepo())
	petsSvc := pets.NewService(mem.NewPetsRepo())
	repo := mem.NewAdoptionsRepo()

	return &fixture{
		users:     usersSvc,
		pets:      petsSvc,
		adoptions: adoptions.NewService(usersSvc, petsSvc, repo, nil, nil),
		repo:      repo,
	}
}

func (f *fixture) seedUser(t *testing.T) users.User {
	t.Helper()

	u, err := f.users.Create(context.Background(), users.CreateInput{
		FirstName: "Test",
		LastName:  "User",
		Email:     "testing.user@example.com",
		Password:  "hashed-secret",
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func (f *fixture) seedPet(t *testing.T) pets.Pet {
	t.Helper()

	p, err := f.pets.Create(context.Background(), pets.CreateInput{
		Name:    "Firulais",
		Species: "dog",
	})
	if err != nil {
		t.Fatalf("seed pet: %v", err)
	}
	return p
}

func TestAdopt_HappyPath(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	u := f.seedUser(t)
	p := f.seedPet(t)

	a, err := f.adoptions.Adopt(ctx, u.ID, p.ID)
	if err != nil {
		t.Fatalf("Adopt: %v", err)
	}
	if a.ID == "" {
		t.Fatal("expected adoption id")
	}
	if a.OwnerID != u.ID || a.PetID != p.ID {
		t.Fatalf("adoption references mismatch: %+v", a)
	}

	// Exactamente un registro de adopción
	items, err := f.adoptions.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 adoption, got %d", len(items))
	}

	// Mascota adoptada y con owner
	updatedPet, err := f.pets.GetByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("GetByID pet: %v", err)
	}
	if !updatedPet.Adopted {
		t.Fatal("expected pet.Adopted = true")
	}
	if updatedPet.OwnerID == nil || *updatedPet.OwnerID != u.ID {
		t.Fatalf("expected pet owner %s, got %v", u.ID, updatedPet.OwnerID)
	}

	// Referencia agregada al usuario
	updatedUser, err := f.users.GetByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("GetByID user: %v", err)
	}
	if !updatedUser.HasPet(p.ID) {
		t.Fatalf("expected user pets to contain %s, got %v", p.ID, updatedUser.Pets)
	}
}

func TestAdopt_SecondCallAlreadyAdopted(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	u := f.seedUser(t)
	p := f.seedPet(t)

	if _, err := f.adoptions.Adopt(ctx, u.ID, p.ID); err != nil {
		t.Fatalf("first Adopt: %v", err)
	}

	_, err := f.adoptions.Adopt(ctx, u.ID, p.ID)
	if !errors.Is(err, adoptions.ErrAlreadyAdopted) {
		t.Fatalf("expected ErrAlreadyAdopted, got %v", err)
	}

	items, _ := f.adoptions.List(ctx)
	if len(items) != 1 {
		t.Fatalf("expected exactly 1 adoption after retry, got %d", len(items))
	}
}

func TestAdopt_UserNotFound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p := f.seedPet(t)

	_, err := f.adoptions.Adopt(ctx, "b4f9c6f4-0000-4000-8000-000000000000", p.ID)
	if !errors.Is(err, adoptions.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}

	// Ninguna escritura: mascota intacta, sin registros
	unchanged, _ := f.pets.GetByID(ctx, p.ID)
	if unchanged.Adopted {
		t.Fatal("pet must remain available")
	}
	items, _ := f.adoptions.List(ctx)
	if len(items) != 0 {
		t.Fatalf("expected no adoptions, got %d", len(items))
	}
}

func TestAdopt_PetNotFound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	u := f.seedUser(t)

	_, err := f.adoptions.Adopt(ctx, u.ID, "b4f9c6f4-0000-4000-8000-000000000001")
	if !errors.Is(err, adoptions.ErrPetNotFound) {
		t.Fatalf("expected ErrPetNotFound, got %v", err)
	}

	items, _ := f.adoptions.List(ctx)
	if len(items) != 0 {
		t.Fatalf("expected no adoptions, got %d", len(items))
	}
}

func TestAdopt_PreconditionOrder(t *testing.T) {
	// Con usuario y mascota inexistentes, gana el chequeo de usuario.
	f := newFixture(t)

	_, err := f.adoptions.Adopt(context.Background(),
		"b4f9c6f4-0000-4000-8000-000000000000",
		"b4f9c6f4-0000-4000-8000-000000000001")
	if !errors.Is(err, adoptions.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound first, got %v", err)
	}
}

// racingRegistry simula la carrera: la lectura ve la mascota disponible
// pero el update condicional ya la encuentra adoptada.
type racingRegistry struct {
	adoptions.PetRegistry
}

func (r racingRegistry) MarkAdopted(ctx context.Context, petID, ownerID string) error {
	return pets.ErrAlreadyAdopted
}

func TestAdopt_LostRaceCompensates(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	u := f.seedUser(t)
	p := f.seedPet(t)

	svc := adoptions.NewService(f.users, racingRegistry{f.pets}, f.repo, nil, nil)

	_, err := svc.Adopt(ctx, u.ID, p.ID)
	if !errors.Is(err, adoptions.ErrAlreadyAdopted) {
		t.Fatalf("expected ErrAlreadyAdopted, got %v", err)
	}

	// El registro creado en el paso (a) tiene que haberse limpiado.
	items, _ := f.adoptions.List(ctx)
	if len(items) != 0 {
		t.Fatalf("expected orphan adoption to be cleaned up, got %d records", len(items))
	}

	// Y la referencia nunca llegó al usuario.
	updatedUser, _ := f.users.GetByID(ctx, u.ID)
	if updatedUser.HasPet(p.ID) {
		t.Fatal("user must not reference the pet after a lost race")
	}
}

// failingRepo falla todas las escrituras (store caído).
type failingRepo struct {
	adoptions.Repository
}

func (failingRepo) Create(ctx context.Context, a adoptions.Adoption) error {
	return errors.New("store unavailable")
}

func TestAdopt_PersistenceFailure(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	u := f.seedUser(t)
	p := f.seedPet(t)

	svc := adoptions.NewService(f.users, f.pets, failingRepo{f.repo}, nil, nil)

	_, err := svc.Adopt(ctx, u.ID, p.ID)
	if !errors.Is(err, adoptions.ErrPersistence) {
		t.Fatalf("expected ErrPersistence, got %v", err)
	}

	// Precondiciones pasaron pero la mascota no debe quedar marcada.
	unchanged, _ := f.pets.GetByID(ctx, p.ID)
	if unchanged.Adopted {
		t.Fatal("pet must remain available when the adoption record failed")
	}
}

func TestGetByID_ReturnsCreatedAdoption(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	u := f.seedUser(t)
	p := f.seedPet(t)

	created, err := f.adoptions.Adopt(ctx, u.ID, p.ID)
	if err != nil {
		t.Fatalf("Adopt: %v", err)
	}

	got, err := f.adoptions.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.OwnerID != u.ID || got.PetID != p.ID {
		t.Fatalf("unexpected adoption %+v", got)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.adoptions.GetByID(context.Background(), "b4f9c6f4-0000-4000-8000-00000000dead")
	if !errors.Is(err, adoptions.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDelete_RemovesOnlyTheRecord(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	u := f.seedUser(t)
	p := f.seedPet(t)

	created, err := f.adoptions.Adopt(ctx, u.ID, p.ID)
	if err != nil {
		t.Fatalf("Adopt: %v", err)
	}

	if err := f.adoptions.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, err := f.adoptions.GetByID(ctx, created.ID); !errors.Is(err, adoptions.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}

	// Sin cascada: el estado de la mascota y del usuario queda igual.
	stillAdopted, _ := f.pets.GetByID(ctx, p.ID)
	if !stillAdopted.Adopted {
		t.Fatal("delete must not touch pet state")
	}
	owner, _ := f.users.GetByID(ctx, u.ID)
	if !owner.HasPet(p.ID) {
		t.Fatal("delete must not touch user state")
	}
}

func TestDelete_NotFound(t *testing.T) {
	f := newFixture(t)

	err := f.adoptions.Delete(context.Background(), "b4f9c6f4-0000-4000-8000-00000000dead")
	if !errors.Is(err, adoptions.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
