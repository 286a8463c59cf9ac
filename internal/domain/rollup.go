package domain

import (
	"math"
	"sort"
)

// Direction of a period-over-period change.
type Direction string

const (
	DirectionUp      Direction = "up"
	DirectionDown    Direction = "down"
	DirectionNeutral Direction = "neutral"
)

// Change is a rounded percentage change with its direction.
// swagger:model Change
type Change struct {
	Percent   int       `json:"percent"`
	Direction Direction `json:"direction"`
}

// ExtractMonths returns the distinct months present in the datasets, latest first.
// Records with a zero date are ignored.
func ExtractMonths(datasets ...[]Record) []MonthBucket {
	seen := make(map[MonthKey]struct{})
	var months []MonthKey
	for _, ds := range datasets {
		for _, r := range ds {
			if r.Date.IsZero() {
				continue
			}
			m := MonthOf(r.Date)
			if _, ok := seen[m]; ok {
				continue
			}
			seen[m] = struct{}{}
			months = append(months, m)
		}
	}
	sort.Slice(months, func(i, j int) bool {
		return months[j].Before(months[i])
	})
	out := make([]MonthBucket, 0, len(months))
	for _, m := range months {
		out = append(out, MonthBucket{Value: m.String(), Label: m.Label()})
	}
	return out
}

// FilterByMonth returns the records dated within month, preserving order.
func FilterByMonth(records []Record, month MonthKey) []Record {
	out := []Record{}
	for _, r := range records {
		if r.Date.IsZero() || !month.Contains(r.Date) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// SumField sums field across records; missing values count as zero.
func SumField(records []Record, field string) float64 {
	var total float64
	for _, r := range records {
		total += r.Value(field)
	}
	return total
}

// SumCount sums the count field.
func SumCount(records []Record) float64 {
	return SumField(records, FieldCount)
}

// PercentChange compares current with previous. A zero previous value is
// reported as a 100% increase regardless of current.
func PercentChange(current, previous float64) Change {
	if previous == 0 {
		return Change{Percent: 100, Direction: DirectionUp}
	}
	if current == previous {
		return Change{Percent: 0, Direction: DirectionNeutral}
	}
	pct := int(math.Round(math.Abs((current-previous)/previous) * 100))
	if current > previous {
		return Change{Percent: pct, Direction: DirectionUp}
	}
	return Change{Percent: pct, Direction: DirectionDown}
}

// DailyRecord is one day of the merged payment/refund series.
// swagger:model DailyRecord
type DailyRecord struct {
	Date          string  `json:"date"`
	TotalRevenue  float64 `json:"totalRevenue"`
	TotalRefunded float64 `json:"totalRefunded"`
	PaymentCount  float64 `json:"paymentCount"`
	RefundCount   float64 `json:"refundCount"`
}

// MergeDailySeries builds one zeroed record per day of month and overlays
// payments and refunds by exact date. When a dataset has several records for
// the same day the first one wins. The result is in ascending date order.
func MergeDailySeries(payments, refunds []Record, month MonthKey) []DailyRecord {
	firstByDay := func(rs []Record) map[string]Record {
		m := make(map[string]Record, len(rs))
		for _, r := range rs {
			if r.Date.IsZero() {
				continue
			}
			d := r.DateString()
			if _, ok := m[d]; !ok {
				m[d] = r
			}
		}
		return m
	}
	pay := firstByDay(payments)
	ref := firstByDay(refunds)

	days := month.DaysIn()
	out := make([]DailyRecord, 0, days)
	start := month.Start()
	for i := 0; i < days; i++ {
		d := start.AddDate(0, 0, i).Format(DateLayout)
		rec := DailyRecord{Date: d}
		if p, ok := pay[d]; ok {
			rec.TotalRevenue = p.Value(FieldTotalRevenue)
			rec.PaymentCount = p.Value(FieldCount)
		}
		if r, ok := ref[d]; ok {
			rec.TotalRefunded = r.Value(FieldTotalRefunded)
			rec.RefundCount = r.Value(FieldCount)
		}
		out = append(out, rec)
	}
	return out
}
