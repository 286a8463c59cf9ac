package postgres

import (
	"context"
	"database/sql"
	"testing"

	"fitstudio/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyticsRepository_DailyPayments(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`FROM payments`).
		WillReturnRows(sqlmock.NewRows([]string{"day", "sum", "count"}).
			AddRow("2025-06-05", 100.0, int64(2)).
			AddRow("garbage", 5.0, int64(1)).
			AddRow("2025-06-07", 30.0, int64(1)))

	records, err := NewAnalyticsRepository(db).DailyPayments(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "2025-06-05", records[0].DateString())
	assert.Equal(t, 100.0, records[0].Value(domain.FieldTotalRevenue))
	assert.Equal(t, 2.0, records[0].Value(domain.FieldCount))
	assert.Equal(t, "2025-06-07", records[1].DateString())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalyticsRepository_DailyRefunds(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`FROM refunds`).
		WillReturnRows(sqlmock.NewRows([]string{"day", "sum", "count"}).
			AddRow("2025-06-05", 20.0, int64(1)))

	records, err := NewAnalyticsRepository(db).DailyRefunds(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 20.0, records[0].Value(domain.FieldTotalRefunded))
	assert.Equal(t, 0.0, records[0].Value(domain.FieldTotalRevenue))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalyticsRepository_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`FROM refunds`).WillReturnError(sql.ErrConnDone)

	_, err = NewAnalyticsRepository(db).DailyRefunds(context.Background())
	require.ErrorIs(t, err, sql.ErrConnDone)
	assert.Contains(t, err.Error(), "totalRefunded")
}
