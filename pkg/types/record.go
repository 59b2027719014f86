package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// Record is one in-memory record instance: field values keyed by column
// name, extension-attribute values, and owned lines. The caller owns the
// instance; the backend owns the durable row; the engine mediates and never
// caches instances across calls.
type Record struct {
	ID     int64
	Values map[string]any
	Extras map[string]any
	Lines  []map[string]any
}

// NewRecord returns an empty record with initialized value maps.
func NewRecord() *Record {
	return &Record{
		Values: make(map[string]any),
		Extras: make(map[string]any),
	}
}

// Set assigns a field value and returns the record for chaining.
func (r *Record) Set(name string, v any) *Record {
	if r.Values == nil {
		r.Values = make(map[string]any)
	}
	r.Values[name] = v
	return r
}

// Int returns the named value coerced to int64. Missing or non-numeric
// values return 0.
func (r *Record) Int(name string) int64 {
	switch v := r.Values[name].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	default:
		return 0
	}
}

// String returns the named value as a string, or "" when absent.
func (r *Record) String(name string) string {
	if v, ok := r.Values[name].(string); ok {
		return v
	}
	return ""
}

// Decimal returns the named value as a decimal. Missing or unparsable
// values return zero.
func (r *Record) Decimal(name string) decimal.Decimal {
	switch v := r.Values[name].(type) {
	case decimal.Decimal:
		return v
	case string:
		d, err := decimal.NewFromString(v)
		if err == nil {
			return d
		}
	case float64:
		return decimal.NewFromFloat(v)
	case int64:
		return decimal.NewFromInt(v)
	}
	return decimal.Decimal{}
}

// Time returns the named value as a time. A zero time means unset; the
// engine maps stored zero-date sentinels to it on load.
func (r *Record) Time(name string) time.Time {
	if v, ok := r.Values[name].(time.Time); ok {
		return v
	}
	return time.Time{}
}

// Bool returns the named value as a bool. Stored integers 0/1 coerce.
func (r *Record) Bool(name string) bool {
	switch v := r.Values[name].(type) {
	case bool:
		return v
	case int64:
		return v != 0
	default:
		return false
	}
}

// Status returns the status field value as a Status.
func (r *Record) Status(name string) Status {
	return Status(r.Int(name))
}
