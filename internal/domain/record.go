package domain

import (
	"context"
	"encoding/json"
	"time"
)

// Numeric field names carried by time-series records.
const (
	FieldTotalRevenue  = "totalRevenue"
	FieldTotalRefunded = "totalRefunded"
	FieldTotalPaid     = "totalPaid"
	FieldCount         = "count"
	FieldSessions      = "sessions"
)

// DateLayout is the day format used by every record source.
const DateLayout = "2006-01-02"

// Record is one daily aggregation bucket in canonical form.
// Date is midnight UTC of the bucket's day.
type Record struct {
	Date   time.Time
	Values map[string]float64
}

// NewRecord returns a record for date with the given values.
func NewRecord(date time.Time, values map[string]float64) Record {
	if values == nil {
		values = map[string]float64{}
	}
	return Record{Date: truncateDay(date), Values: values}
}

// Value returns the named field, or 0 when absent.
func (r Record) Value(field string) float64 {
	return r.Values[field]
}

// DateString returns the record date as "YYYY-MM-DD".
func (r Record) DateString() string {
	return r.Date.Format(DateLayout)
}

func truncateDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseRecordDate parses the leading "YYYY-MM-DD" of s. Longer timestamps
// such as "2025-06-05T10:00:00Z" are accepted; only the date part is used.
func ParseRecordDate(s string) (time.Time, bool) {
	if len(s) < len(DateLayout) {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, s[:len(DateLayout)])
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// RecordAdapter describes how one source names its date and value fields.
// Renames maps source field names onto canonical ones (e.g. totalPaid to totalRevenue).
type RecordAdapter struct {
	DateFields []string
	Renames    map[string]string
}

// Source adapters for the record shapes served by the legacy backend.
var (
	PaymentRecordAdapter = RecordAdapter{
		DateFields: []string{"_id", "date"},
		Renames:    map[string]string{FieldTotalPaid: FieldTotalRevenue},
	}
	RefundRecordAdapter = RecordAdapter{
		DateFields: []string{"_id", "date"},
	}
)

// Normalize converts raw JSON objects into canonical records. Objects without
// a parseable date are skipped, as are non-numeric values. When an object
// carries both a canonical field and a source alias for it, the canonical one wins.
func (a RecordAdapter) Normalize(raw []map[string]json.RawMessage) []Record {
	out := make([]Record, 0, len(raw))
	for _, obj := range raw {
		date, ok := a.date(obj)
		if !ok {
			continue
		}
		values := make(map[string]float64, len(obj))
		for name, v := range obj {
			if _, renamed := a.Renames[name]; renamed {
				continue
			}
			if n, ok := numeric(v); ok {
				values[name] = n
			}
		}
		// A renamed field only fills its canonical name when the source omits it.
		for name, canonical := range a.Renames {
			if _, set := values[canonical]; set {
				continue
			}
			if n, ok := numeric(obj[name]); ok {
				values[canonical] = n
			}
		}
		out = append(out, Record{Date: date, Values: values})
	}
	return out
}

func numeric(v json.RawMessage) (float64, bool) {
	if v == nil {
		return 0, false
	}
	var n float64
	if err := json.Unmarshal(v, &n); err != nil {
		return 0, false
	}
	return n, true
}

func (a RecordAdapter) date(obj map[string]json.RawMessage) (time.Time, bool) {
	for _, f := range a.DateFields {
		v, ok := obj[f]
		if !ok {
			continue
		}
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			continue
		}
		if t, ok := ParseRecordDate(s); ok {
			return t, true
		}
	}
	return time.Time{}, false
}

// AnalyticsSource provides the daily payment and refund datasets.
type AnalyticsSource interface {
	DailyPayments(ctx context.Context) ([]Record, error)
	DailyRefunds(ctx context.Context) ([]Record, error)
}

// AnalyticsCache stores serialised analytics results.
// Get returns ok=false on a miss.
type AnalyticsCache interface {
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)
	Set(ctx context.Context, key string, data []byte) error
}
