package sqlite

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerline/rentbook/pkg/types"
)

// Storage layouts for temporal columns.
const (
	datetimeLayout = time.RFC3339
	dateLayout     = "2006-01-02"
)

// zeroDateSentinels are stored values that mean "no date". Legacy imports
// carry the old zero-date markers; all collapse to the zero time on load.
var zeroDateSentinels = map[string]bool{
	"":                    true,
	"0000-00-00":          true,
	"0000-00-00 00:00:00": true,
	"1000-01-01 00:00:00": true,
}

// driverValue converts an in-memory field value to its stored form. An
// empty value on a NullIfEmpty field stores NULL, not the empty form.
func driverValue(f types.Field, v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	if f.NotNull == types.NullIfEmpty && isEmptyValue(v) {
		return nil, nil
	}
	switch f.Type {
	case types.TypeDate, types.TypeDatetime:
		t, ok := v.(time.Time)
		if !ok {
			if s, isStr := v.(string); isStr {
				return s, nil // already in storage form
			}
			return nil, fmt.Errorf("field %s: expected time.Time, got %T", f.Name, v)
		}
		if t.IsZero() {
			return nil, nil
		}
		if f.Type == types.TypeDate {
			return t.Format(dateLayout), nil
		}
		return t.Format(datetimeLayout), nil
	case types.TypeBoolean:
		switch b := v.(type) {
		case bool:
			return boolToInt(b), nil
		case int, int64:
			return v, nil
		default:
			return nil, fmt.Errorf("field %s: expected bool, got %T", f.Name, v)
		}
	case types.TypeDecimal:
		switch d := v.(type) {
		case decimal.Decimal:
			return d.String(), nil
		case string, int, int64, float64:
			return v, nil
		default:
			return nil, fmt.Errorf("field %s: expected decimal, got %T", f.Name, v)
		}
	case types.TypeList:
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("field %s: encoding list: %w", f.Name, err)
		}
		return string(raw), nil
	default:
		return v, nil
	}
}

// isRefSentinel reports whether a reference value means "unset". The
// conventional unset marker from selection forms is -1; blank counts too.
func isRefSentinel(v any) bool {
	switch n := v.(type) {
	case nil:
		return true
	case int:
		return n <= 0
	case int64:
		return n <= 0
	case string:
		return n == "" || n == "-1"
	default:
		return false
	}
}

// isEmptyValue reports whether a caller value counts as absent for
// required-field validation and default application.
func isEmptyValue(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case time.Time:
		return t.IsZero()
	default:
		return false
	}
}

// defaultValue parses a schema literal default into a typed value.
func defaultValue(f types.Field) any {
	switch f.Type {
	case types.TypeInteger, types.TypeReference, types.TypeBoolean:
		var n int64
		fmt.Sscanf(f.Default, "%d", &n)
		return n
	case types.TypeDecimal:
		d, err := decimal.NewFromString(f.Default)
		if err != nil {
			return decimal.Decimal{}
		}
		return d
	default:
		return f.Default
	}
}

// parseStoredTime converts a stored temporal string to a time. Zero-date
// sentinels collapse to the zero time. Both the current layouts and the
// legacy space-separated datetime form are accepted.
func parseStoredTime(s string) (time.Time, error) {
	if zeroDateSentinels[s] {
		return time.Time{}, nil
	}
	for _, layout := range []string{datetimeLayout, "2006-01-02 15:04:05", dateLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized stored time %q", s)
}

// decodeList deserializes a stored list column. JSON is the current
// encoding; a comma-separated form survives from legacy imports and is
// accepted as a fallback.
func decodeList(s string) []any {
	if s == "" {
		return nil
	}
	var out []any
	if err := json.Unmarshal([]byte(s), &out); err == nil {
		return out
	}
	parts := strings.Split(s, ",")
	out = make([]any, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}
