package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"fitstudio/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrainerRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		want    *domain.Trainer
		errIs   error
		wantErr bool
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, name, email, created_at, updated_at FROM trainers`).
					WithArgs("tr-1").
					WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "created_at", "updated_at"}).
						AddRow("tr-1", "Dana", "dana@studio.test", createdAt, createdAt))
			},
			want: &domain.Trainer{ID: "tr-1", Name: "Dana", Email: "dana@studio.test", CreatedAt: createdAt, UpdatedAt: createdAt},
		},
		{
			name: "not found",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, name, email`).
					WithArgs("tr-1").
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: true,
			errIs:   domain.ErrNotFound,
		},
		{
			name: "db error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, name, email`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
			errIs:   sql.ErrConnDone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewTrainerRepository(db)
			got, err := repo.GetByID(ctx, "tr-1")
			if tt.wantErr {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestScheduleRepository_ListSlotsByTrainerID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	cols := []string{"day", "time_start", "time_end", "class_type", "class_identifier", "price", "participants"}
	mock.ExpectQuery(`SELECT day, time_start, time_end, class_type, class_identifier, price, participants FROM schedule_slots`).
		WithArgs("tr-1").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow("Monday", "09:00", "10:00", "Private Training", "cls-1", 40.0, "{}").
			AddRow("Monday", "10:00", "11:00", "Private Training", "cls-2", nil, "{u1}").
			AddRow("Tuesday", "18:00", "19:00", "Group Classes", "cls-3", 15.5, nil))

	repo := NewScheduleRepository(db)
	slots, err := repo.ListSlotsByTrainerID(context.Background(), "tr-1")
	require.NoError(t, err)
	require.Len(t, slots, 3)

	assert.Equal(t, domain.Price(40), slots[0].Price)
	assert.Equal(t, []string{}, slots[0].Participants)
	assert.Equal(t, domain.Price(0), slots[1].Price)
	assert.Equal(t, []string{"u1"}, slots[1].Participants)
	assert.Equal(t, domain.SlotBooked, domain.ClassifySlot(slots[1], nil))
	assert.Equal(t, []string{}, slots[2].Participants)
	assert.Equal(t, domain.Price(15.5), slots[2].Price)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestScheduleRepository_ListSlotsByTrainerID_Error(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`FROM schedule_slots`).WillReturnError(sql.ErrConnDone)

	_, err = NewScheduleRepository(db).ListSlotsByTrainerID(context.Background(), "tr-1")
	require.ErrorIs(t, err, sql.ErrConnDone)
}

func TestBookingRequestRepository_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 5, 9, 30, 0, 0, time.UTC)
	req := &domain.BookingRequest{
		TrainerID:        "tr-1",
		UserID:           "u1",
		ClassIdentifiers: []string{"cls-1", "cls-3"},
		TotalPrice:       55.5,
		UserEmail:        "u1@example.com",
		TrainerName:      "Dana",
		TrainerEmail:     "dana@studio.test",
		CurrentTime:      now,
	}

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO booking_requests`).
		WithArgs("tr-1", "u1", pq.Array([]string{"cls-1", "cls-3"}), 55.5, "u1@example.com", "Dana", "dana@studio.test", now).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("br-uuid-1"))

	require.NoError(t, NewBookingRequestRepository(db).Create(ctx, req))
	assert.Equal(t, "br-uuid-1", req.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRequestRepository_ListByTrainerID(t *testing.T) {
	now := time.Date(2025, 6, 5, 9, 30, 0, 0, time.UTC)
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	cols := []string{"id", "trainer_id", "user_id", "class_identifiers", "total_price", "user_email", "trainer_name", "trainer_email", "requested_at", "total"}
	mock.ExpectQuery(`FROM booking_requests`).
		WithArgs("tr-1", 20, 20).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow("br-1", "tr-1", "u1", "{cls-1,cls-3}", 55.5, "u1@example.com", "Dana", "dana@studio.test", now, 21))

	out, total, err := NewBookingRequestRepository(db).ListByTrainerID(context.Background(), "tr-1", domain.PaginationParams{Page: 2, PageSize: 20})
	require.NoError(t, err)
	assert.Equal(t, 21, total)
	require.Len(t, out, 1)
	assert.Equal(t, []string{"cls-1", "cls-3"}, out[0].ClassIdentifiers)
	assert.Equal(t, now, out[0].CurrentTime)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRequestRepository_ListByTrainerID_Empty(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`FROM booking_requests`).
		WithArgs("tr-1", 10, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	out, total, err := NewBookingRequestRepository(db).ListByTrainerID(context.Background(), "tr-1", domain.PaginationParams{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, 0, total)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}
