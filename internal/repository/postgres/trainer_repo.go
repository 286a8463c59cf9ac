package postgres

import (
	"context"
	"database/sql"
	"errors"

	"fitstudio/internal/domain"
)

type trainerRepository struct {
	DB *sql.DB
}

// NewTrainerRepository returns a domain.TrainerRepository implemented with Postgres.
func NewTrainerRepository(db *sql.DB) domain.TrainerRepository {
	return &trainerRepository{DB: db}
}

func (r *trainerRepository) GetByID(ctx context.Context, id string) (*domain.Trainer, error) {
	query := `
		SELECT id, name, email, created_at, updated_at
		FROM trainers
		WHERE id = $1
	`
	t := &domain.Trainer{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&t.ID, &t.Name, &t.Email, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return t, nil
}
