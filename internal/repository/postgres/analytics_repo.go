package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"fitstudio/internal/domain"
)

type analyticsRepository struct {
	DB *sql.DB
}

// NewAnalyticsRepository returns a domain.AnalyticsSource that aggregates the
// payments and refunds tables per UTC day.
func NewAnalyticsRepository(db *sql.DB) domain.AnalyticsSource {
	return &analyticsRepository{DB: db}
}

func (r *analyticsRepository) DailyPayments(ctx context.Context) ([]domain.Record, error) {
	query := `
		SELECT to_char(paid_at AT TIME ZONE 'UTC', 'YYYY-MM-DD') AS day, COALESCE(SUM(amount), 0), COUNT(*)
		FROM payments
		WHERE status = 'succeeded'
		GROUP BY day
		ORDER BY day
	`
	return r.daily(ctx, query, domain.FieldTotalRevenue)
}

func (r *analyticsRepository) DailyRefunds(ctx context.Context) ([]domain.Record, error) {
	query := `
		SELECT to_char(refunded_at AT TIME ZONE 'UTC', 'YYYY-MM-DD') AS day, COALESCE(SUM(amount), 0), COUNT(*)
		FROM refunds
		GROUP BY day
		ORDER BY day
	`
	return r.daily(ctx, query, domain.FieldTotalRefunded)
}

// daily scans (day, amount, count) rows into records, storing the amount
// under amountField. Rows with an unparseable day are skipped.
func (r *analyticsRepository) daily(ctx context.Context, query, amountField string) ([]domain.Record, error) {
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query daily %s: %w", amountField, err)
	}
	defer rows.Close()

	out := []domain.Record{}
	for rows.Next() {
		var day string
		var amount float64
		var count int64
		if err := rows.Scan(&day, &amount, &count); err != nil {
			return nil, err
		}
		d, ok := domain.ParseRecordDate(day)
		if !ok {
			continue
		}
		out = append(out, domain.NewRecord(d, map[string]float64{
			amountField:       amount,
			domain.FieldCount: float64(count),
		}))
	}
	return out, rows.Err()
}
