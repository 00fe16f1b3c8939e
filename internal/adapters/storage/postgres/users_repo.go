package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"pet-adoptions/internal/domain/users"
)

type UsersRepo struct {
	db *sql.DB
}

func NewUsersRepo(db *sql.DB) *UsersRepo {
	return &UsersRepo{db: db}
}

func (r *UsersRepo) Create(ctx context.Context, u users.User) error {
	// pgx encodea []string como text[] directo en los argumentos.
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (
			id, first_name, last_name, email, password, role, pets,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		u.ID,
		u.FirstName,
		u.LastName,
		u.Email,
		u.Password,
		string(u.Role),
		u.Pets,
		u.CreatedAt,
		u.UpdatedAt,
	)
	return err
}

func (r *UsersRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return users.User{}, users.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, first_name, last_name, email, password, role,
		       array_to_json(pets)::text,
		       created_at, updated_at
		FROM users
		WHERE id = $1
	`, id)
	return scanUser(row)
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return users.User{}, users.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, first_name, last_name, email, password, role,
		       array_to_json(pets)::text,
		       created_at, updated_at
		FROM users
		WHERE email = $1
	`, email)
	return scanUser(row)
}

// AppendPet agrega petID a users.pets en un solo UPDATE; la guarda
// `NOT pets @> ...` lo hace idempotente sin round-trip previo.
func (r *UsersRepo) AppendPet(ctx context.Context, userID, petID string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET pets = array_append(pets, $2),
		    updated_at = $3
		WHERE id = $1
		  AND NOT pets @> ARRAY[$2]::text[]
	`, userID, petID, time.Now())
	if err != nil {
		return err
	}

	n, _ := res.RowsAffected()
	if n > 0 {
		return nil
	}

	// 0 filas: o el usuario no existe, o la referencia ya estaba.
	var exists bool
	if err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, userID,
	).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return users.ErrNotFound
	}
	return nil
}

func (r *UsersRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return users.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanUser lee pets como JSON (array_to_json en el SELECT): database/sql
// no sabe escanear text[] a []string.
func scanUser(row rowScanner) (users.User, error) {
	var u users.User
	var role string
	var petsJSON string
	if err := row.Scan(
		&u.ID,
		&u.FirstName,
		&u.LastName,
		&u.Email,
		&u.Password,
		&role,
		&petsJSON,
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return users.User{}, users.ErrNotFound
		}
		return users.User{}, err
	}

	u.Role = users.Role(role)
	u.Pets = []string{}
	if petsJSON != "" && petsJSON != "null" {
		if err := json.Unmarshal([]byte(petsJSON), &u.Pets); err != nil {
			return users.User{}, err
		}
	}
	return u, nil
}
