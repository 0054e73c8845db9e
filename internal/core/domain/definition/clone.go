package definition

import "maps"

// Clone returns a deep copy so stored definitions cannot be changed through
// pointers held by callers.
func (d *Definition) Clone() *Definition {
	if d == nil {
		return nil
	}
	out := *d
	if d.Fields != nil {
		out.Fields = make([]FieldDefinition, len(d.Fields))
		for i := range d.Fields {
			out.Fields[i] = *d.Fields[i].clone()
		}
	}
	return &out
}

func (f *FieldDefinition) clone() *FieldDefinition {
	if f == nil {
		return nil
	}
	out := *f
	out.Required = clonePtr(f.Required)
	out.MinLength = clonePtr(f.MinLength)
	out.MaxLength = clonePtr(f.MaxLength)
	out.MinValue = clonePtr(f.MinValue)
	out.MaxValue = clonePtr(f.MaxValue)
	out.Default = cloneValue(f.Default)
	out.Items = f.Items.clone()
	if f.Choices != nil {
		out.Choices = cloneValue(f.Choices).([]any)
	}
	if f.Validators != nil {
		out.Validators = append([]string(nil), f.Validators...)
	}
	out.ErrorMessages = maps.Clone(f.ErrorMessages)
	return &out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// cloneValue copies the containers a decoded JSON or YAML document can hold.
func cloneValue(v any) any {
	switch t := v.(type) {
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = cloneValue(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[k] = cloneValue(item)
		}
		return out
	default:
		return v
	}
}
