package validator

import (
	"errors"
	"reflect"
	"strconv"
)

type arrayKind struct{ identity }

func (arrayKind) name() string { return "array" }

func (arrayKind) defaults() map[string]string { return arrayMessages }

func (arrayKind) toInternal(_ *Field, value any) (any, bool) {
	items, ok := toSlice(value)
	if !ok {
		return nil, false
	}
	return items, true
}

func (arrayKind) isValid(f *Field, value any) error {
	if _, ok := value.([]any); !ok {
		return f.fail(CodeInvalid, nil)
	}
	return nil
}

// check enforces the item count bounds, then validates items in index order
// through the child field. The first failing item aborts the check.
func (arrayKind) check(f *Field, value any) (any, error) {
	items := value.([]any)
	if f.minLength != nil && len(items) < *f.minLength {
		return nil, f.fail(CodeMinLength, nil)
	}
	if f.maxLength != nil && len(items) > *f.maxLength {
		return nil, f.fail(CodeMaxLength, nil)
	}
	if f.child == nil {
		return items, nil
	}

	out := make([]any, len(items))
	for i, item := range items {
		v, err := f.child.Validate(item)
		if err != nil {
			var ve *ValidationError
			if !errors.As(err, &ve) {
				return nil, err
			}
			return nil, f.fail(CodeChild, map[string]string{
				"index":   strconv.Itoa(i),
				"message": messageText(ve.Message),
			})
		}
		out[i] = v
	}
	return out, nil
}

// Array accepts a list of values. Strings are not lists.
func Array(opts ...Option) *Field {
	return newField(arrayKind{}, opts...)
}

type multipleChoiceKind struct{ arrayKind }

func (multipleChoiceKind) name() string { return "multiple_choice" }

func (multipleChoiceKind) defaults() map[string]string { return multipleChoiceMessages }

func (k multipleChoiceKind) check(f *Field, value any) (any, error) {
	checked, err := k.arrayKind.check(f, value)
	if err != nil {
		return nil, err
	}
	for _, item := range checked.([]any) {
		if !contains(f.choices, item) {
			return nil, f.fail(CodeChoices, nil)
		}
	}
	return checked, nil
}

// MultipleChoice accepts a list whose every item is one of choices.
func MultipleChoice(choices []any, opts ...Option) *Field {
	return newField(multipleChoiceKind{}, append([]Option{withChoices(choices)}, opts...)...)
}

func toSlice(value any) ([]any, bool) {
	switch v := value.(type) {
	case string:
		return nil, false
	case []any:
		out := make([]any, len(v))
		copy(out, v)
		return out, true
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}
