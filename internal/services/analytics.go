package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"fitstudio/internal/domain"
)

type analyticsService struct {
	source         domain.AnalyticsSource
	cache          domain.AnalyticsCache
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewAnalyticsService creates an AnalyticsService reading from source.
// cache may be nil to disable caching.
func NewAnalyticsService(source domain.AnalyticsSource, cache domain.AnalyticsCache, logger *slog.Logger, timeout time.Duration) domain.AnalyticsService {
	return &analyticsService{
		source:         source,
		cache:          cache,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *analyticsService) datasets(ctx context.Context) (payments, refunds []domain.Record, err error) {
	payments, err = s.source.DailyPayments(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load payments: %w", err)
	}
	refunds, err = s.source.DailyRefunds(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load refunds: %w", err)
	}
	return payments, refunds, nil
}

func (s *analyticsService) Months(ctx context.Context) ([]domain.MonthBucket, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var out []domain.MonthBucket
	err := cached(ctx, s, "analytics:months", &out, func() error {
		payments, refunds, err := s.datasets(ctx)
		if err != nil {
			return err
		}
		out = domain.ExtractMonths(payments, refunds)
		return nil
	})
	return out, err
}

func (s *analyticsService) MonthlySummary(ctx context.Context, month domain.MonthKey) (*domain.MonthlySummary, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var out domain.MonthlySummary
	err := cached(ctx, s, "analytics:summary:"+month.String(), &out, func() error {
		payments, refunds, err := s.datasets(ctx)
		if err != nil {
			return err
		}
		prev := month.Previous()
		curPay, prevPay := domain.FilterByMonth(payments, month), domain.FilterByMonth(payments, prev)
		curRef, prevRef := domain.FilterByMonth(refunds, month), domain.FilterByMonth(refunds, prev)

		revenue := domain.SumField(curPay, domain.FieldTotalRevenue)
		refunded := domain.SumField(curRef, domain.FieldTotalRefunded)
		paymentCount := domain.SumCount(curPay)
		refundCount := domain.SumCount(curRef)

		out = domain.MonthlySummary{
			Month:          domain.MonthBucket{Value: month.String(), Label: month.Label()},
			PreviousMonth:  domain.MonthBucket{Value: prev.String(), Label: prev.Label()},
			TotalRevenue:   revenue,
			TotalRefunded:  refunded,
			PaymentCount:   paymentCount,
			RefundCount:    refundCount,
			RevenueChange:  domain.PercentChange(revenue, domain.SumField(prevPay, domain.FieldTotalRevenue)),
			RefundedChange: domain.PercentChange(refunded, domain.SumField(prevRef, domain.FieldTotalRefunded)),
			PaymentChange:  domain.PercentChange(paymentCount, domain.SumCount(prevPay)),
			RefundChange:   domain.PercentChange(refundCount, domain.SumCount(prevRef)),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *analyticsService) DailySeries(ctx context.Context, month domain.MonthKey) ([]domain.DailyRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var out []domain.DailyRecord
	err := cached(ctx, s, "analytics:daily:"+month.String(), &out, func() error {
		payments, refunds, err := s.datasets(ctx)
		if err != nil {
			return err
		}
		out = domain.MergeDailySeries(payments, refunds, month)
		return nil
	})
	return out, err
}

// cached serves dest from the cache when possible, otherwise runs compute and
// stores the result. Cache errors are logged and never fail the request.
func cached[T any](ctx context.Context, s *analyticsService, key string, dest *T, compute func() error) error {
	if s.cache != nil {
		data, ok, err := s.cache.Get(ctx, key)
		if err != nil {
			s.logger.WarnContext(ctx, "analytics cache get failed", "key", key, "err", err)
		} else if ok {
			if err := json.Unmarshal(data, dest); err == nil {
				return nil
			}
		}
	}

	if err := compute(); err != nil {
		return err
	}

	if s.cache != nil {
		data, err := json.Marshal(dest)
		if err != nil {
			return nil
		}
		if err := s.cache.Set(ctx, key, data); err != nil {
			s.logger.WarnContext(ctx, "analytics cache set failed", "key", key, "err", err)
		}
	}
	return nil
}
