package postgres

import (
	"context"
	"database/sql"

	"fitstudio/internal/domain"

	"github.com/lib/pq"
)

type scheduleRepository struct {
	DB *sql.DB
}

// NewScheduleRepository returns a domain.ScheduleRepository implemented with Postgres.
func NewScheduleRepository(db *sql.DB) domain.ScheduleRepository {
	return &scheduleRepository{DB: db}
}

func (r *scheduleRepository) ListSlotsByTrainerID(ctx context.Context, trainerID string) ([]*domain.SessionSlot, error) {
	query := `
		SELECT day, time_start, time_end, class_type, class_identifier, price, participants
		FROM schedule_slots
		WHERE trainer_id = $1
		ORDER BY time_start, day
	`
	rows, err := r.DB.QueryContext(ctx, query, trainerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	slots := []*domain.SessionSlot{}
	for rows.Next() {
		s := &domain.SessionSlot{}
		var price sql.NullFloat64
		var participants pq.StringArray
		if err := rows.Scan(&s.Day, &s.TimeStart, &s.TimeEnd, &s.ClassType, &s.ClassIdentifier, &price, &participants); err != nil {
			return nil, err
		}
		if price.Valid {
			s.Price = domain.Price(price.Float64)
		}
		s.Participants = []string(participants)
		if s.Participants == nil {
			s.Participants = []string{}
		}
		slots = append(slots, s)
	}
	return slots, rows.Err()
}
