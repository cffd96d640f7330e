package domain

import (
	"fmt"
	"math"
	"reflect"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// NormalizeValue converts a tracked field value into the canonical form used
// for comparison and JSON persistence:
//   - nil and typed-nil pointers become nil; other pointers are dereferenced
//   - time.Time becomes an RFC 3339 string in UTC with microsecond precision
//   - decimal.Decimal, uuid.UUID and fmt.Stringer values become strings
//   - integers widen to int64; floats become float64, or int64 when integral
//
// Two values are considered equal iff their normalised forms are equal.
func NormalizeValue(v any) any {
	if v == nil {
		return nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		return NormalizeValue(rv.Elem().Interface())
	}

	switch x := v.(type) {
	case string:
		return x
	case bool:
		return x
	case int:
		return int64(x)
	case int8:
		return int64(x)
	case int16:
		return int64(x)
	case int32:
		return int64(x)
	case int64:
		return x
	case uint:
		return int64(x)
	case uint8:
		return int64(x)
	case uint16:
		return int64(x)
	case uint32:
		return int64(x)
	case uint64:
		if x > math.MaxInt64 {
			return x
		}
		return int64(x)
	case float32:
		return normalizeFloat(float64(x))
	case float64:
		return normalizeFloat(x)
	case time.Time:
		return FormatTimestamp(x)
	case decimal.Decimal:
		return x.String()
	case uuid.UUID:
		return x.String()
	case fmt.Stringer:
		return x.String()
	}

	return v
}

// NormalizeField normalises v as the tracked field name. Timestamp fields
// also accept RFC 3339 strings, so values decoded from JSON compare equal to
// the same instant given as time.Time.
func NormalizeField(name string, v any) any {
	n := NormalizeValue(v)
	if !isTimestampField(name) {
		return n
	}
	s, ok := n.(string)
	if !ok {
		return n
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return s
	}
	return FormatTimestamp(t)
}

func isTimestampField(name string) bool {
	return name == FieldExternalCreatedAt || name == FieldExternalModifiedAt
}

// normalizeFloat folds integral floats into int64 so JSON numbers match
// their integer counterparts.
func normalizeFloat(f float64) any {
	if f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64 {
		return int64(f)
	}
	return f
}

// FormatTimestamp renders t the way tracked timestamps are stored in change maps.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Truncate(time.Microsecond).Format(time.RFC3339Nano)
}
