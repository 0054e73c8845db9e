package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotImplemented is returned when a field has no concrete kind to check values against.
var ErrNotImplemented = errors.New("validator: shape check not implemented")

type FieldError struct {
	Field   string `json:"field"`
	Message any    `json:"message"`
}

func (fe FieldError) Error() string {
	return fmt.Sprintf("field %s: %s", fe.Field, messageText(fe.Message))
}

// ValidationError carries a failed check. Message is a string for a single field,
// nil when a validator failed without a payload, or a map of field name to message
// for schema-level errors.
type ValidationError struct {
	Message any
	Code    string

	order []string
}

func NewValidationError(message any, code string) *ValidationError {
	return &ValidationError{Message: message, Code: code}
}

// NewSchemaError builds a schema-level error from ordered field errors.
func NewSchemaError(fields []FieldError, code string) *ValidationError {
	msgs := make(map[string]any, len(fields))
	order := make([]string, 0, len(fields))
	for _, fe := range fields {
		if _, seen := msgs[fe.Field]; !seen {
			order = append(order, fe.Field)
		}
		msgs[fe.Field] = fe.Message
	}
	return &ValidationError{Message: msgs, Code: code, order: order}
}

func (ve *ValidationError) Error() string {
	switch msg := ve.Message.(type) {
	case nil:
		return "validation failed"
	case map[string]any:
		var errs []string
		for _, fe := range ve.Fields() {
			errs = append(errs, fe.Error())
		}
		return fmt.Sprintf("validation failed: %s", strings.Join(errs, ", "))
	default:
		return messageText(msg)
	}
}

// Fields returns the per-field errors of a schema-level error in declaration order.
// A field-level error yields nil.
func (ve *ValidationError) Fields() []FieldError {
	msgs, ok := ve.Message.(map[string]any)
	if !ok {
		return nil
	}

	names := ve.order
	if len(names) != len(msgs) {
		names = make([]string, 0, len(msgs))
		for name := range msgs {
			names = append(names, name)
		}
		sort.Strings(names)
	}

	out := make([]FieldError, 0, len(names))
	for _, name := range names {
		out = append(out, FieldError{Field: name, Message: msgs[name]})
	}
	return out
}

func (ve *ValidationError) MarshalJSON() ([]byte, error) {
	var code *string
	if ve.Code != "" {
		code = &ve.Code
	}
	return json.Marshal(struct {
		Error any     `json:"error"`
		Code  *string `json:"code"`
	}{
		Error: ve.Message,
		Code:  code,
	})
}

// StructValidator validates tagged Go structs.
type StructValidator interface {
	Validate(s interface{}) error
}

func messageText(msg any) string {
	switch m := msg.(type) {
	case nil:
		return ""
	case string:
		return m
	case error:
		return m.Error()
	default:
		return fmt.Sprint(m)
	}
}
