package table

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Row is one record of tabular data, keyed by field name. Values may be
// strings, integer or float kinds, bools, time.Time, fmt.Stringer, or nil.
type Row map[string]any

// Lookup returns the value stored under field and whether it is present.
// A missing key and a nil value are both absent.
func (r Row) Lookup(field string) (any, bool) {
	v, ok := r[field]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// FormatValue converts a cell value to its display text.
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case time.Time:
		if val.Hour() == 0 && val.Minute() == 0 && val.Second() == 0 && val.Nanosecond() == 0 {
			return val.Format(time.DateOnly)
		}
		return val.Format(time.DateTime)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}

// number holds a numeric cell value. Signed integers keep their exact value
// so large IDs compare correctly; everything else goes through float64.
type number struct {
	i     int64
	f     float64
	isInt bool
}

func asNumber(v any) (number, bool) {
	switch val := v.(type) {
	case int:
		return number{i: int64(val), f: float64(val), isInt: true}, true
	case int8:
		return number{i: int64(val), f: float64(val), isInt: true}, true
	case int16:
		return number{i: int64(val), f: float64(val), isInt: true}, true
	case int32:
		return number{i: int64(val), f: float64(val), isInt: true}, true
	case int64:
		return number{i: val, f: float64(val), isInt: true}, true
	case uint:
		return fromUint(uint64(val)), true
	case uint8:
		return fromUint(uint64(val)), true
	case uint16:
		return fromUint(uint64(val)), true
	case uint32:
		return fromUint(uint64(val)), true
	case uint64:
		return fromUint(val), true
	case float32:
		return number{f: float64(val)}, true
	case float64:
		return number{f: val}, true
	default:
		return number{}, false
	}
}

func fromUint(u uint64) number {
	if u <= math.MaxInt64 {
		return number{i: int64(u), f: float64(u), isInt: true}
	}
	return number{f: float64(u)}
}

func compareNumbers(a, b number) int {
	if a.isInt && b.isInt {
		switch {
		case a.i < b.i:
			return -1
		case a.i > b.i:
			return 1
		default:
			return 0
		}
	}
	switch {
	case a.f < b.f:
		return -1
	case a.f > b.f:
		return 1
	default:
		return 0
	}
}

// CompareValues orders two present cell values by their natural ordering.
// Numbers compare numerically across integer and float kinds, strings
// lexically, bools false before true, and times chronologically. Values of
// unrelated kinds compare by their display text.
func CompareValues(a, b any) int {
	if an, ok := asNumber(a); ok {
		if bn, ok := asNumber(b); ok {
			return compareNumbers(an, bn)
		}
	}

	switch av := a.(type) {
	case string:
		if bv, ok := b.(string); ok {
			return strings.Compare(av, bv)
		}
	case bool:
		if bv, ok := b.(bool); ok {
			switch {
			case av == bv:
				return 0
			case !av:
				return -1
			default:
				return 1
			}
		}
	case time.Time:
		if bv, ok := b.(time.Time); ok {
			return av.Compare(bv)
		}
	}

	return strings.Compare(FormatValue(a), FormatValue(b))
}
