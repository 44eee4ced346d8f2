package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/timezone-service/internal/domain"
)

// TimezoneRepository encapsulates timezone persistence.
type TimezoneRepository interface {
	Create(ctx context.Context, timezone *domain.Timezone) error
	GetByID(ctx context.Context, id string) (*domain.Timezone, error)
	List(ctx context.Context) ([]domain.Timezone, error)
}

type timezoneRepository struct {
	pool *pgxpool.Pool
}

// NewTimezoneRepository instantiates repository.
func NewTimezoneRepository(pool *pgxpool.Pool) TimezoneRepository {
	return &timezoneRepository{pool: pool}
}

func (r *timezoneRepository) Create(ctx context.Context, timezone *domain.Timezone) error {
	const query = `
        INSERT INTO timezones (name, city, difference_to_gmt, creator_user_id)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		timezone.Name,
		timezone.City,
		timezone.DifferenceToGMT,
		timezone.CreatorID,
	).Scan(&timezone.ID, &timezone.CreatedAt)
}

func (r *timezoneRepository) GetByID(ctx context.Context, id string) (*domain.Timezone, error) {
	const query = `
        SELECT id, name, city, difference_to_gmt, creator_user_id, created_at
        FROM timezones WHERE id=$1`

	var timezone domain.Timezone
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&timezone.ID,
		&timezone.Name,
		&timezone.City,
		&timezone.DifferenceToGMT,
		&timezone.CreatorID,
		&timezone.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &timezone, nil
}

func (r *timezoneRepository) List(ctx context.Context) ([]domain.Timezone, error) {
	const query = `
        SELECT id, name, city, difference_to_gmt, creator_user_id, created_at
        FROM timezones ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	timezones := make([]domain.Timezone, 0)
	for rows.Next() {
		var timezone domain.Timezone
		if err := rows.Scan(
			&timezone.ID,
			&timezone.Name,
			&timezone.City,
			&timezone.DifferenceToGMT,
			&timezone.CreatorID,
			&timezone.CreatedAt,
		); err != nil {
			return nil, err
		}
		timezones = append(timezones, timezone)
	}
	return timezones, rows.Err()
}
