package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"fitstudio/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAnalyticsSource serves fixed datasets and counts calls.
type fakeAnalyticsSource struct {
	payments []domain.Record
	refunds  []domain.Record
	err      error
	calls    int
}

func (f *fakeAnalyticsSource) DailyPayments(ctx context.Context) ([]domain.Record, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.payments, nil
}

func (f *fakeAnalyticsSource) DailyRefunds(ctx context.Context) ([]domain.Record, error) {
	return f.refunds, nil
}

// fakeCache is an in-memory AnalyticsCache.
type fakeCache struct {
	data   map[string][]byte
	getErr error
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string][]byte)}
}

func (c *fakeCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	d, ok := c.data[key]
	return d, ok, nil
}

func (c *fakeCache) Set(ctx context.Context, key string, data []byte) error {
	c.data[key] = data
	return nil
}

func record(date string, values map[string]float64) domain.Record {
	d, ok := domain.ParseRecordDate(date)
	if !ok {
		panic("bad date " + date)
	}
	return domain.NewRecord(d, values)
}

func newSource() *fakeAnalyticsSource {
	return &fakeAnalyticsSource{
		payments: []domain.Record{
			record("2025-05-10", map[string]float64{domain.FieldTotalRevenue: 200, domain.FieldCount: 4}),
			record("2025-06-05", map[string]float64{domain.FieldTotalRevenue: 100, domain.FieldCount: 2}),
			record("2025-06-20", map[string]float64{domain.FieldTotalRevenue: 50, domain.FieldCount: 1}),
		},
		refunds: []domain.Record{
			record("2025-06-05", map[string]float64{domain.FieldTotalRefunded: 20, domain.FieldCount: 1}),
		},
	}
}

var june2025 = domain.MonthKey{Year: 2025, Month: time.June}

func TestAnalyticsService_Months(t *testing.T) {
	svc := NewAnalyticsService(newSource(), nil, testLogger, time.Second)

	months, err := svc.Months(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.MonthBucket{
		{Value: "2025-06", Label: "June 2025"},
		{Value: "2025-05", Label: "May 2025"},
	}, months)
}

func TestAnalyticsService_Months_NoData(t *testing.T) {
	svc := NewAnalyticsService(&fakeAnalyticsSource{}, nil, testLogger, time.Second)

	months, err := svc.Months(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, months)
	assert.Empty(t, months)
}

func TestAnalyticsService_MonthlySummary(t *testing.T) {
	svc := NewAnalyticsService(newSource(), nil, testLogger, time.Second)

	sum, err := svc.MonthlySummary(context.Background(), june2025)
	require.NoError(t, err)

	assert.Equal(t, "2025-06", sum.Month.Value)
	assert.Equal(t, "May 2025", sum.PreviousMonth.Label)
	assert.Equal(t, 150.0, sum.TotalRevenue)
	assert.Equal(t, 20.0, sum.TotalRefunded)
	assert.Equal(t, 3.0, sum.PaymentCount)
	assert.Equal(t, 1.0, sum.RefundCount)
	assert.Equal(t, domain.Change{Percent: 25, Direction: domain.DirectionDown}, sum.RevenueChange)
	assert.Equal(t, domain.Change{Percent: 100, Direction: domain.DirectionUp}, sum.RefundedChange)
	assert.Equal(t, domain.Change{Percent: 25, Direction: domain.DirectionDown}, sum.PaymentChange)
}

func TestAnalyticsService_DailySeries(t *testing.T) {
	svc := NewAnalyticsService(newSource(), nil, testLogger, time.Second)

	days, err := svc.DailySeries(context.Background(), june2025)
	require.NoError(t, err)
	require.Len(t, days, 30)
	assert.Equal(t, domain.DailyRecord{Date: "2025-06-05", TotalRevenue: 100, TotalRefunded: 20, PaymentCount: 2, RefundCount: 1}, days[4])
	assert.Equal(t, 50.0, days[19].TotalRevenue)
}

func TestAnalyticsService_SourceError(t *testing.T) {
	src := newSource()
	src.err = errors.New("db down")
	svc := NewAnalyticsService(src, newFakeCache(), testLogger, time.Second)

	_, err := svc.MonthlySummary(context.Background(), june2025)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load payments")
}

func TestAnalyticsService_UsesCache(t *testing.T) {
	src := newSource()
	cache := newFakeCache()
	svc := NewAnalyticsService(src, cache, testLogger, time.Second)
	ctx := context.Background()

	first, err := svc.DailySeries(ctx, june2025)
	require.NoError(t, err)
	second, err := svc.DailySeries(ctx, june2025)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, src.calls)
	assert.Contains(t, cache.data, "analytics:daily:2025-06")
}

func TestAnalyticsService_CacheErrorFallsThrough(t *testing.T) {
	src := newSource()
	cache := newFakeCache()
	cache.getErr = errors.New("redis unavailable")
	svc := NewAnalyticsService(src, cache, testLogger, time.Second)

	months, err := svc.Months(context.Background())
	require.NoError(t, err)
	assert.Len(t, months, 2)
	assert.Equal(t, 1, src.calls)
}
