package validator

import (
	"strconv"
)

type unset struct{}

// Unset marks a value that was not supplied at all. Validating Unset falls back
// to the field's default.
var Unset any = unset{}

// Validatable is anything that can validate a single value.
type Validatable interface {
	Validate(value any) (any, error)
}

// Func is a user supplied validator. It returns the value to carry forward or an error.
type Func func(value any) (any, error)

type Option func(*Field)

// Field validates one value. The zero configuration is required with no default.
// A Field is immutable once built and safe for concurrent use.
type Field struct {
	kind       kind
	def        any
	required   bool
	validators []Func
	overrides  map[string]string
	messages   map[string]string

	minLength *int
	maxLength *int
	minValue  *float64
	maxValue  *float64
	choices   []any
	child     Validatable
}

// kind is the per-type behavior plugged into Field.
type kind interface {
	name() string
	defaults() map[string]string
	toInternal(f *Field, value any) (any, bool)
	isValid(f *Field, value any) error
	check(f *Field, value any) (any, error)
	toRepresentation(f *Field, value any) (any, error)
}

// identity provides the pass-through steps shared by most kinds.
type identity struct{}

func (identity) toInternal(_ *Field, value any) (any, bool) { return value, true }

func (identity) check(_ *Field, value any) (any, error) { return value, nil }

func (identity) toRepresentation(_ *Field, value any) (any, error) { return value, nil }

func Default(value any) Option {
	return func(f *Field) { f.def = value }
}

// Optional lets the field resolve to nil when no value and no default are given.
func Optional() Option {
	return func(f *Field) { f.required = false }
}

func Required(required bool) Option {
	return func(f *Field) { f.required = required }
}

func Validators(fns ...Func) Option {
	return func(f *Field) { f.validators = append(f.validators, fns...) }
}

// ErrorMessages overrides message templates by key. Keys not given keep their defaults.
func ErrorMessages(messages map[string]string) Option {
	return func(f *Field) {
		if f.overrides == nil {
			f.overrides = make(map[string]string, len(messages))
		}
		for k, v := range messages {
			f.overrides[k] = v
		}
	}
}

func MinLength(n int) Option {
	return func(f *Field) { f.minLength = &n }
}

func MaxLength(n int) Option {
	return func(f *Field) { f.maxLength = &n }
}

func MinValue(v float64) Option {
	return func(f *Field) { f.minValue = &v }
}

func MaxValue(v float64) Option {
	return func(f *Field) { f.maxValue = &v }
}

// Child sets the validator applied to every item of an array field.
func Child(child Validatable) Option {
	return func(f *Field) { f.child = child }
}

// NewField builds a field without a concrete kind. Such a field can only
// resolve absent values; anything else reports ErrNotImplemented.
func NewField(opts ...Option) *Field {
	return newField(nil, opts...)
}

func newField(k kind, opts ...Option) *Field {
	f := &Field{kind: k, required: true}
	for _, opt := range opts {
		opt(f)
	}

	defaults := baseMessages
	if k != nil {
		defaults = k.defaults()
	}
	f.messages = extend(defaults, f.overrides)
	return f
}

func (f *Field) Kind() string {
	if f.kind == nil {
		return "field"
	}
	return f.kind.name()
}

func (f *Field) DefaultValue() any { return f.def }

func (f *Field) IsRequired() bool { return f.required }

func (f *Field) Validators() []Func {
	out := make([]Func, len(f.validators))
	copy(out, f.validators)
	return out
}

// Message returns the effective template for key formatted with the field's constraints.
func (f *Field) Message(key string) string {
	return FormatMessage(f.messages[key], f.params())
}

// Validate runs the field pipeline: default, required, coercion, shape check,
// constraints, validators and representation, in that order.
func (f *Field) Validate(value any) (any, error) {
	if _, ok := value.(unset); ok {
		value = f.def
	}

	if value == nil {
		if f.required {
			return nil, f.fail(CodeRequired, nil)
		}
		return nil, nil
	}

	if f.kind == nil {
		return nil, ErrNotImplemented
	}

	value, ok := f.kind.toInternal(f, value)
	if !ok {
		return nil, f.fail(CodeInvalid, nil)
	}

	if err := f.IsValid(value); err != nil {
		return nil, err
	}

	value, err := f.kind.check(f, value)
	if err != nil {
		return nil, err
	}

	for _, fn := range f.validators {
		value, err = fn(value)
		if err != nil {
			return nil, err
		}
	}

	return f.kind.toRepresentation(f, value)
}

// IsValid reports whether value has the shape this field accepts.
func (f *Field) IsValid(value any) error {
	if f.kind == nil {
		return ErrNotImplemented
	}
	return f.kind.isValid(f, value)
}

// ToRepresentation shapes an already validated value for output.
func (f *Field) ToRepresentation(value any) (any, error) {
	if f.kind == nil {
		return value, nil
	}
	return f.kind.toRepresentation(f, value)
}

func (f *Field) fail(key string, extra map[string]string) *ValidationError {
	params := f.params()
	for k, v := range extra {
		params[k] = v
	}
	return &ValidationError{Message: FormatMessage(f.messages[key], params), Code: key}
}

func (f *Field) params() map[string]string {
	params := make(map[string]string, 5)
	if f.minLength != nil {
		params["min_length"] = strconv.Itoa(*f.minLength)
	}
	if f.maxLength != nil {
		params["max_length"] = strconv.Itoa(*f.maxLength)
	}
	if f.minValue != nil {
		params["min_value"] = formatFloat(*f.minValue)
	}
	if f.maxValue != nil {
		params["max_value"] = formatFloat(*f.maxValue)
	}
	if f.choices != nil {
		params["choices"] = formatChoices(f.choices)
	}
	return params
}
