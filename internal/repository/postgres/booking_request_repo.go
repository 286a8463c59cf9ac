package postgres

import (
	"context"
	"database/sql"

	"fitstudio/internal/domain"

	"github.com/lib/pq"
)

type bookingRequestRepository struct {
	DB *sql.DB
}

// NewBookingRequestRepository returns a domain.BookingRequestRepository implemented with Postgres.
func NewBookingRequestRepository(db *sql.DB) domain.BookingRequestRepository {
	return &bookingRequestRepository{DB: db}
}

func (r *bookingRequestRepository) Create(ctx context.Context, req *domain.BookingRequest) error {
	query := `
		INSERT INTO booking_requests (trainer_id, user_id, class_identifiers, total_price, user_email, trainer_name, trainer_email, requested_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		req.TrainerID, req.UserID, pq.Array(req.ClassIdentifiers), req.TotalPrice,
		req.UserEmail, req.TrainerName, req.TrainerEmail, req.CurrentTime,
	).Scan(&req.ID)
}

func (r *bookingRequestRepository) ListByTrainerID(ctx context.Context, trainerID string, page domain.PaginationParams) ([]*domain.BookingRequest, int, error) {
	query := `
		SELECT id, trainer_id, user_id, class_identifiers, total_price, user_email, trainer_name, trainer_email, requested_at,
		       COUNT(*) OVER() AS total
		FROM booking_requests
		WHERE trainer_id = $1
		ORDER BY requested_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.DB.QueryContext(ctx, query, trainerID, page.PageSize, page.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := []*domain.BookingRequest{}
	total := 0
	for rows.Next() {
		req := &domain.BookingRequest{}
		var ids pq.StringArray
		if err := rows.Scan(&req.ID, &req.TrainerID, &req.UserID, &ids, &req.TotalPrice,
			&req.UserEmail, &req.TrainerName, &req.TrainerEmail, &req.CurrentTime, &total); err != nil {
			return nil, 0, err
		}
		req.ClassIdentifiers = []string(ids)
		out = append(out, req)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}
