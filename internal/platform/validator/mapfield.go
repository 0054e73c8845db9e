package validator

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"reflect"
)

type mapKind struct{ identity }

func (mapKind) name() string { return "map" }

func (mapKind) defaults() map[string]string { return mapMessages }

// toInternal decodes JSON text and normalizes string keyed maps to map[string]any.
func (mapKind) toInternal(_ *Field, value any) (any, bool) {
	if s, ok := value.(string); ok {
		var decoded any
		if err := decodeExact([]byte(s), &decoded); err != nil {
			return nil, false
		}
		value = decoded
	}

	if m, ok := value.(map[string]any); ok {
		return m, true
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		// left for isValid to reject
		return value, true
	}
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, true
}

func (mapKind) isValid(f *Field, value any) error {
	if _, ok := value.(map[string]any); !ok {
		return f.fail(CodeInvalid, nil)
	}
	return nil
}

// toRepresentation round-trips the value through JSON so nested values come out
// as plain JSON types. Numbers come out as json.Number and keep their digits.
func (mapKind) toRepresentation(f *Field, value any) (any, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, f.fail(CodeInvalid, nil)
	}
	var out map[string]any
	if err := decodeExact(raw, &out); err != nil {
		return nil, f.fail(CodeInvalid, nil)
	}
	return out, nil
}

// decodeExact decodes a single JSON document with numbers kept as
// json.Number. Trailing content is an error.
func decodeExact(data []byte, out any) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	if err := decoder.Decode(out); err != nil {
		return err
	}
	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return errTrailingJSON
	}
	return nil
}

var errTrailingJSON = errors.New("unexpected data after JSON document")

// Map accepts a JSON object, either already decoded or as JSON text.
func Map(opts ...Option) *Field {
	return newField(mapKind{}, opts...)
}
