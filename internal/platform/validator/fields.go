package validator

import (
	"encoding/json"
	"reflect"
	"unicode/utf8"
)

type booleanKind struct{ identity }

func (booleanKind) name() string { return "boolean" }

func (booleanKind) defaults() map[string]string { return booleanMessages }

func (booleanKind) isValid(f *Field, value any) error {
	if _, ok := value.(bool); !ok {
		return f.fail(CodeInvalid, nil)
	}
	return nil
}

// Boolean accepts exactly true or false. Truthy values are rejected.
func Boolean(opts ...Option) *Field {
	return newField(booleanKind{}, opts...)
}

type stringKind struct{ identity }

func (stringKind) name() string { return "string" }

func (stringKind) defaults() map[string]string { return stringMessages }

func (stringKind) isValid(f *Field, value any) error {
	if _, ok := value.(string); !ok {
		return f.fail(CodeInvalid, nil)
	}
	return nil
}

func (stringKind) check(f *Field, value any) (any, error) {
	n := utf8.RuneCountInString(value.(string))
	if f.minLength != nil && n < *f.minLength {
		return nil, f.fail(CodeMinLength, nil)
	}
	if f.maxLength != nil && n > *f.maxLength {
		return nil, f.fail(CodeMaxLength, nil)
	}
	return value, nil
}

// String accepts text, bounded by MinLength and MaxLength counted in characters.
func String(opts ...Option) *Field {
	return newField(stringKind{}, opts...)
}

type choiceKind struct{ identity }

func (choiceKind) name() string { return "choice" }

func (choiceKind) defaults() map[string]string { return choiceMessages }

func (choiceKind) isValid(f *Field, value any) error {
	if !contains(f.choices, value) {
		return f.fail(CodeInvalid, nil)
	}
	return nil
}

// Choice accepts a single value out of choices.
func Choice(choices []any, opts ...Option) *Field {
	return newField(choiceKind{}, append([]Option{withChoices(choices)}, opts...)...)
}

func withChoices(choices []any) Option {
	return func(f *Field) {
		f.choices = make([]any, len(choices))
		copy(f.choices, choices)
	}
}

func contains(choices []any, value any) bool {
	for _, c := range choices {
		if sameValue(c, value) {
			return true
		}
	}
	return false
}

// sameValue compares numbers by value regardless of their Go type, so a JSON
// decoded 1.0 matches a declared 1.
func sameValue(a, b any) bool {
	if x, ok := asNumber(a); ok {
		if y, ok := asNumber(b); ok {
			return x == y
		}
		return false
	}
	return reflect.DeepEqual(a, b)
}

func asNumber(v any) (float64, bool) {
	if n, ok := v.(json.Number); ok {
		f, err := n.Float64()
		return f, err == nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}
