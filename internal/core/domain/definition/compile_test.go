package definition

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gateguard/internal/platform/validator"
)

func requireValidationError(t *testing.T, err error) *validator.ValidationError {
	t.Helper()
	var ve *validator.ValidationError
	require.True(t, errors.As(err, &ve), "expected *validator.ValidationError, got %v", err)
	return ve
}

func intPtr(n int) *int { return &n }

func floatPtr(f float64) *float64 { return &f }

func boolPtr(b bool) *bool { return &b }

func signupDefinition() *Definition {
	return &Definition{
		Name: "signup",
		Fields: []FieldDefinition{
			{Name: "username", Type: TypeSlug, MinLength: intPtr(3), Validators: []string{"lower"}},
			{Name: "age", Type: TypeInteger, MinValue: floatPtr(18)},
			{Name: "plan", Type: TypeChoice, Choices: []any{"free", "pro"}, Default: "free"},
			{Name: "tags", Type: TypeArray, Required: boolPtr(false), Items: &FieldDefinition{Type: TypeString, MaxLength: intPtr(8)}},
			{Name: "nick", Type: TypeString, Required: boolPtr(false), Hook: "upper"},
		},
	}
}

func TestCompile(t *testing.T) {
	schema, err := Compile(signupDefinition())
	require.NoError(t, err)

	assert.Equal(t, "signup", schema.Name())
	decls := schema.Declarations()
	require.Len(t, decls, 5)
	assert.Equal(t, "username", decls[0].Name())
	assert.Equal(t, "nick", decls[4].Name())

	data, err := schema.Validate(map[string]any{
		"username": "Milli_V",
		"age":      "21",
		"tags":     []any{"go"},
		"nick":     "mv",
	}, false)
	require.NoError(t, err)

	assert.Equal(t, "milli_v", data["username"])
	assert.Equal(t, int64(21), data["age"])
	assert.Equal(t, "free", data["plan"])
	assert.Equal(t, []any{"go"}, data["tags"])
	assert.Equal(t, "MV", data["nick"])
}

func TestCompile_CollectsErrors(t *testing.T) {
	schema, err := Compile(signupDefinition())
	require.NoError(t, err)

	_, err = schema.Validate(map[string]any{
		"username": "no spaces",
		"age":      10,
		"tags":     []any{"far too long"},
	}, false)

	ve := requireValidationError(t, err)
	fields := ve.Fields()
	require.Len(t, fields, 3)
	assert.Equal(t, "username", fields[0].Field)
	assert.Equal(t, "age", fields[1].Field)
	assert.Equal(t, "Ensure this value is greater than or equal to 18.", fields[1].Message)
	assert.Equal(t, "tags", fields[2].Field)
	assert.Equal(t, "Item 0: Ensure this value has at most 8 characters.", fields[2].Message)
}

func TestCompile_ErrorMessagesOverride(t *testing.T) {
	def := &Definition{
		Name: "override",
		Fields: []FieldDefinition{
			{Name: "age", Type: TypeInteger, ErrorMessages: map[string]string{"required": "Age please."}},
		},
	}

	schema, err := Compile(def)
	require.NoError(t, err)

	_, err = schema.Validate(map[string]any{}, true)
	ve := requireValidationError(t, err)
	assert.Equal(t, map[string]any{"age": "Age please."}, ve.Message)
	assert.Equal(t, "required", ve.Code)
}

func TestCompile_AllTypes(t *testing.T) {
	tests := []struct {
		field FieldDefinition
		input any
		want  any
	}{
		{field: FieldDefinition{Type: TypeBoolean}, input: true, want: true},
		{field: FieldDefinition{Type: TypeString}, input: "x", want: "x"},
		{field: FieldDefinition{Type: TypeInteger}, input: 4, want: int64(4)},
		{field: FieldDefinition{Type: TypeFloat}, input: "1.5", want: 1.5},
		{field: FieldDefinition{Type: TypeChoice, Choices: []any{"a"}}, input: "a", want: "a"},
		{field: FieldDefinition{Type: TypeMultipleChoice, Choices: []any{"a", "b"}}, input: []any{"b"}, want: []any{"b"}},
		{field: FieldDefinition{Type: TypeArray}, input: []any{1}, want: []any{1}},
		{field: FieldDefinition{Type: TypeURL}, input: "https://example.com", want: "https://example.com"},
		{field: FieldDefinition{Type: TypeHost}, input: "Example.COM", want: "example.com"},
		{field: FieldDefinition{Type: TypeMap}, input: `{"a":"b"}`, want: map[string]any{"a": "b"}},
		{field: FieldDefinition{Type: TypeSlug}, input: "a-b_c", want: "a-b_c"},
	}

	for _, tt := range tests {
		t.Run(tt.field.Type, func(t *testing.T) {
			field, err := compileField(&tt.field)
			require.NoError(t, err)
			assert.Equal(t, tt.field.Type, field.Kind())

			got, err := field.Validate(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCompile_UnknownType(t *testing.T) {
	def := &Definition{Name: "bad", Fields: []FieldDefinition{{Name: "x", Type: "decimal"}}}

	_, err := Compile(def)
	assert.ErrorIs(t, err, ErrUnknownFieldType)
}

func TestCompile_UnknownTransform(t *testing.T) {
	tests := []struct {
		name  string
		field FieldDefinition
	}{
		{name: "validator", field: FieldDefinition{Name: "x", Type: TypeString, Validators: []string{"reverse"}}},
		{name: "hook", field: FieldDefinition{Name: "x", Type: TypeString, Hook: "reverse"}},
		{name: "items validator", field: FieldDefinition{Name: "x", Type: TypeArray, Items: &FieldDefinition{Type: TypeString, Validators: []string{"reverse"}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(&Definition{Name: "bad", Fields: []FieldDefinition{tt.field}})
			assert.ErrorIs(t, err, ErrUnknownTransform)
		})
	}
}
