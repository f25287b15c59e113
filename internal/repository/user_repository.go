package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/hr-service/internal/domain"
)

// UserRepository defines persistence access for employee accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ListByStates(ctx context.Context, states []domain.UserState) ([]*domain.User, error)
	ListByCompany(ctx context.Context, companyID string) ([]*domain.User, error)
}

type userRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository returns a Postgres-backed implementation.
func NewUserRepository(pool *pgxpool.Pool) UserRepository {
	return &userRepository{pool: pool}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	const query = `
        INSERT INTO users (company_id, name, email, password_hash, state)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		user.CompanyID,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.State,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	const query = `
        UPDATE users SET company_id=$1, name=$2, email=$3, password_hash=$4, state=$5, updated_at=NOW()
        WHERE id=$6`

	cmd, err := r.pool.Exec(ctx, query,
		user.CompanyID,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.State,
		user.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	const query = `
        SELECT id, company_id, name, email, password_hash, state, created_at, updated_at
        FROM users WHERE id=$1`

	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	const query = `
        SELECT id, company_id, name, email, password_hash, state, created_at, updated_at
        FROM users WHERE email=$1`

	return r.scanOne(r.pool.QueryRow(ctx, query, email))
}

func (r *userRepository) ListByStates(ctx context.Context, states []domain.UserState) ([]*domain.User, error) {
	const query = `
        SELECT id, company_id, name, email, password_hash, state, created_at, updated_at
        FROM users WHERE state = ANY($1)
        ORDER BY created_at`

	labels := make([]string, 0, len(states))
	for _, state := range states {
		labels = append(labels, string(state))
	}

	rows, err := r.pool.Query(ctx, query, labels)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.scanMany(rows)
}

func (r *userRepository) ListByCompany(ctx context.Context, companyID string) ([]*domain.User, error) {
	const query = `
        SELECT id, company_id, name, email, password_hash, state, created_at, updated_at
        FROM users WHERE company_id=$1
        ORDER BY name`

	rows, err := r.pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.scanMany(rows)
}

func (r *userRepository) scanOne(row pgx.Row) (*domain.User, error) {
	var user domain.User
	if err := row.Scan(
		&user.ID,
		&user.CompanyID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.State,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) scanMany(rows pgx.Rows) ([]*domain.User, error) {
	users := make([]*domain.User, 0)
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(
			&user.ID,
			&user.CompanyID,
			&user.Name,
			&user.Email,
			&user.PasswordHash,
			&user.State,
			&user.CreatedAt,
			&user.UpdatedAt,
		); err != nil {
			return nil, err
		}
		users = append(users, &user)
	}
	return users, rows.Err()
}
