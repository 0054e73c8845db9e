package validator

import (
	"errors"
)

// Hook transforms a field's value after the field validated it successfully.
type Hook func(value any) (any, error)

// Declaration binds a field to its name inside a schema.
type Declaration struct {
	name  string
	field Validatable
	hook  Hook
}

func Declare(name string, field Validatable) Declaration {
	return Declaration{name: name, field: field}
}

// WithHook returns a copy of the declaration that runs hook after validation.
func (d Declaration) WithHook(hook Hook) Declaration {
	d.hook = hook
	return d
}

func (d Declaration) Name() string { return d.name }

func (d Declaration) Field() Validatable { return d.field }

// Schema validates a mapping field by field in declaration order.
// It holds no state besides its declarations and may be shared between goroutines.
type Schema struct {
	name  string
	decls []Declaration
}

// NewSchema collects declarations in order. A repeated name replaces the earlier
// declaration in its original position.
func NewSchema(name string, decls ...Declaration) *Schema {
	s := &Schema{name: name}
	index := make(map[string]int, len(decls))
	for _, d := range decls {
		if i, ok := index[d.name]; ok {
			s.decls[i] = d
			continue
		}
		index[d.name] = len(s.decls)
		s.decls = append(s.decls, d)
	}
	return s
}

func (s *Schema) Name() string { return s.name }

func (s *Schema) Declarations() []Declaration {
	out := make([]Declaration, len(s.decls))
	copy(out, s.decls)
	return out
}

// Validate returns the normalized mapping, or a *ValidationError whose Message
// maps field names to their messages. With stopOnError the first failing field
// ends validation and its code is carried over. Errors other than
// *ValidationError abort validation and are returned unchanged.
func (s *Schema) Validate(data map[string]any, stopOnError bool) (map[string]any, error) {
	out := make(map[string]any, len(s.decls))
	failed := make(map[string]any)
	var order []string

	for _, d := range s.decls {
		raw, ok := data[d.name]
		if !ok {
			raw = Unset
		}

		value, err := d.field.Validate(raw)
		if err == nil && d.hook != nil {
			value, err = d.hook(value)
			if err != nil {
				return nil, err
			}
		}

		if err != nil {
			var ve *ValidationError
			if !errors.As(err, &ve) {
				return nil, err
			}
			failed[d.name] = ve.Message
			order = append(order, d.name)
			if stopOnError {
				return nil, &ValidationError{Message: failed, Code: ve.Code, order: order}
			}
			continue
		}

		out[d.name] = value
	}

	if len(failed) > 0 {
		return nil, &ValidationError{Message: failed, order: order}
	}
	return out, nil
}
