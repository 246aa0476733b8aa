package account

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type pgRepo struct{ pool *pgxpool.Pool }

// NewPGRepo returns a Repository backed by PostgreSQL.
func NewPGRepo(pool *pgxpool.Pool) Repository {
	return &pgRepo{pool: pool}
}

const accountCols = `id, name, email, phone, practice_state, practice_city, license_number, password, created_at`

func scanAccount(row pgx.Row) (*Account, error) {
	var a Account
	err := row.Scan(&a.ID, &a.Name, &a.Email, &a.Phone,
		&a.PracticeState, &a.PracticeCity, &a.LicenseNumber, &a.Password, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *pgRepo) Create(ctx context.Context, a *Account) error {
	a.ID = uuid.New()
	err := r.pool.QueryRow(ctx, `
		INSERT INTO accounts (id, name, email, phone, practice_state, practice_city, license_number, password)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING created_at`,
		a.ID, a.Name, a.Email, a.Phone, a.PracticeState, a.PracticeCity, a.LicenseNumber, a.Password,
	).Scan(&a.CreatedAt)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrDuplicateEmail
	}
	return err
}

func (r *pgRepo) FindByEmail(ctx context.Context, email string) (*Account, error) {
	a, err := scanAccount(r.pool.QueryRow(ctx,
		`SELECT `+accountCols+` FROM accounts WHERE lower(email) = lower($1)`, email))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return a, err
}

func (r *pgRepo) FindByID(ctx context.Context, id uuid.UUID) (*Account, error) {
	a, err := scanAccount(r.pool.QueryRow(ctx,
		`SELECT `+accountCols+` FROM accounts WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return a, err
}
