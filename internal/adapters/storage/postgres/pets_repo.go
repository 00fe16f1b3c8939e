package postgres

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"pet-adoptions/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pets (
			id, name, species, birth_date, image,
			adopted, owner_id,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		p.ID,
		p.Name,
		string(p.Species),
		toNullDate(p.BirthDate),
		p.Image,
		p.Adopted,
		toNullString(p.OwnerID),
		p.CreatedAt,
		p.UpdatedAt,
	)
	return err
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return pets.Pet{}, pets.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, species, birth_date, image,
		       adopted, owner_id,
		       created_at, updated_at
		FROM pets
		WHERE id = $1
	`, id)

	p, err := scanPet(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, err
	}
	return p, nil
}

func (r *PetsRepo) List(ctx context.Context) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, species, birth_date, image,
		       adopted, owner_id,
		       created_at, updated_at
		FROM pets
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, rows.Err()
}

// MarkAdopted es el update condicional que serializa adopciones
// concurrentes de la misma mascota: la guarda adopted=FALSE garantiza
// que solo un request la gana.
func (r *PetsRepo) MarkAdopted(ctx context.Context, petID, ownerID string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE pets
		SET adopted = TRUE,
		    owner_id = $2,
		    updated_at = $3
		WHERE id = $1
		  AND adopted = FALSE
	`, petID, ownerID, time.Now())
	if err != nil {
		return err
	}

	n, _ := res.RowsAffected()
	if n > 0 {
		return nil
	}

	// 0 filas: o la mascota no existe, o perdimos la carrera.
	var exists bool
	if err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM pets WHERE id = $1)`, petID,
	).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return pets.ErrNotFound
	}
	return pets.ErrAlreadyAdopted
}

func (r *PetsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM pets WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return pets.ErrNotFound
	}
	return nil
}

func scanPet(row rowScanner) (pets.Pet, error) {
	var p pets.Pet
	var species string
	var bd sql.NullTime
	var owner sql.NullString
	if err := row.Scan(
		&p.ID,
		&p.Name,
		&species,
		&bd,
		&p.Image,
		&p.Adopted,
		&owner,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return pets.Pet{}, err
	}

	p.Species = pets.Species(species)
	if bd.Valid {
		t := bd.Time
		// birth_date es DATE, pgx lo mapea a midnight UTC
		p.BirthDate = &t
	}
	if owner.Valid {
		o := owner.String
		p.OwnerID = &o
	}

	return p, nil
}

func toNullDate(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func toNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
