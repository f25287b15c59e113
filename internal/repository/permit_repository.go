package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/hr-service/internal/domain"
)

// PermitRepository defines persistence access for holiday requests.
type PermitRepository interface {
	Create(ctx context.Context, permit *domain.Permit) error
	Update(ctx context.Context, permit *domain.Permit) error
	GetByID(ctx context.Context, id string) (*domain.Permit, error)
	ListByState(ctx context.Context, state domain.PermitState) ([]*domain.Permit, error)
}

type permitRepository struct {
	pool *pgxpool.Pool
}

// NewPermitRepository returns a Postgres-backed implementation.
func NewPermitRepository(pool *pgxpool.Pool) PermitRepository {
	return &permitRepository{pool: pool}
}

func (r *permitRepository) Create(ctx context.Context, permit *domain.Permit) error {
	const query = `
        INSERT INTO permits (user_id, permit_type, start_date, end_date, description, state)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		permit.UserID,
		permit.Type,
		permit.StartDate,
		permit.EndDate,
		permit.Description,
		permit.State,
	).Scan(&permit.ID, &permit.CreatedAt, &permit.UpdatedAt)
}

func (r *permitRepository) Update(ctx context.Context, permit *domain.Permit) error {
	const query = `
        UPDATE permits SET permit_type=$1, start_date=$2, end_date=$3, description=$4, state=$5, updated_at=NOW()
        WHERE id=$6`

	cmd, err := r.pool.Exec(ctx, query,
		permit.Type,
		permit.StartDate,
		permit.EndDate,
		permit.Description,
		permit.State,
		permit.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *permitRepository) GetByID(ctx context.Context, id string) (*domain.Permit, error) {
	const query = `
        SELECT id, user_id, permit_type, start_date, end_date, description, state, created_at, updated_at
        FROM permits WHERE id=$1`

	var permit domain.Permit
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&permit.ID,
		&permit.UserID,
		&permit.Type,
		&permit.StartDate,
		&permit.EndDate,
		&permit.Description,
		&permit.State,
		&permit.CreatedAt,
		&permit.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &permit, nil
}

func (r *permitRepository) ListByState(ctx context.Context, state domain.PermitState) ([]*domain.Permit, error) {
	const query = `
        SELECT id, user_id, permit_type, start_date, end_date, description, state, created_at, updated_at
        FROM permits WHERE state=$1
        ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, state)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	permits := make([]*domain.Permit, 0)
	for rows.Next() {
		var permit domain.Permit
		if err := rows.Scan(
			&permit.ID,
			&permit.UserID,
			&permit.Type,
			&permit.StartDate,
			&permit.EndDate,
			&permit.Description,
			&permit.State,
			&permit.CreatedAt,
			&permit.UpdatedAt,
		); err != nil {
			return nil, err
		}
		permits = append(permits, &permit)
	}
	return permits, rows.Err()
}
