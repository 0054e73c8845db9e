package validator

import (
	"cmp"
	"encoding/json"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// numericKind holds the range checks shared by Integer and Float.
type numericKind struct{ identity }

func (numericKind) check(f *Field, value any) (any, error) {
	if f.minValue != nil && compareBound(value, *f.minValue) < 0 {
		return nil, f.fail(CodeMinValue, nil)
	}
	if f.maxValue != nil && compareBound(value, *f.maxValue) > 0 {
		return nil, f.fail(CodeMaxValue, nil)
	}
	return value, nil
}

// compareBound compares value against bound. An int64 against a whole bound
// is compared as integers so values past 2^53 keep their precision.
func compareBound(value any, bound float64) int {
	if i, ok := value.(int64); ok && bound == math.Trunc(bound) {
		switch {
		case bound >= math.MaxInt64:
			return -1
		case bound < math.MinInt64:
			return 1
		}
		return cmp.Compare(i, int64(bound))
	}
	n, _ := asNumber(value)
	return cmp.Compare(n, bound)
}

type integerKind struct{ numericKind }

func (integerKind) name() string { return "integer" }

func (integerKind) defaults() map[string]string { return integerMessages }

func (integerKind) toInternal(_ *Field, value any) (any, bool) {
	n, ok := toInt64(value)
	if !ok {
		return nil, false
	}
	return n, true
}

func (integerKind) isValid(f *Field, value any) error {
	if _, ok := value.(int64); !ok {
		return f.fail(CodeInvalid, nil)
	}
	return nil
}

// Integer coerces numbers and numeric text to int64. Fractional values are rejected.
func Integer(opts ...Option) *Field {
	return newField(integerKind{}, opts...)
}

type floatKind struct{ numericKind }

func (floatKind) name() string { return "float" }

func (floatKind) defaults() map[string]string { return floatMessages }

func (floatKind) toInternal(_ *Field, value any) (any, bool) {
	n, ok := toFloat64(value)
	if !ok {
		return nil, false
	}
	return n, true
}

func (floatKind) isValid(f *Field, value any) error {
	n, ok := value.(float64)
	if !ok || math.IsNaN(n) || math.IsInf(n, 0) {
		return f.fail(CodeInvalid, nil)
	}
	return nil
}

// Float coerces numbers and numeric text to float64.
func Float(opts ...Option) *Field {
	return newField(floatKind{}, opts...)
}

func toInt64(value any) (int64, bool) {
	switch v := value.(type) {
	case bool:
		return 0, false
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		return n, err == nil
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return n, true
		}
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return wholeFloat(f)
	case float32:
		return wholeFloat(float64(v))
	case float64:
		return wholeFloat(v)
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		return int64(u), u <= math.MaxInt64
	default:
		return 0, false
	}
}

func wholeFloat(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

func toFloat64(value any) (float64, bool) {
	switch v := value.(type) {
	case bool:
		return 0, false
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	}
	return asNumber(value)
}
