package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gateguard/internal/core/domain/definition"
	validatorPlatform "gateguard/internal/platform/validator"
)

type TestUser struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Age   int    `json:"age" validate:"min=0,max=120"`
	Notes string `json:"-" validate:"max=4"`
}

type TestEmpty struct{}

func validDefinition() *definition.Definition {
	return &definition.Definition{
		Name:   "signup",
		Fields: []definition.FieldDefinition{{Name: "username", Type: definition.TypeSlug}},
	}
}

func requireSchemaError(t *testing.T, err error) *validatorPlatform.ValidationError {
	t.Helper()
	require.Error(t, err)
	var validationErr *validatorPlatform.ValidationError
	require.ErrorAs(t, err, &validationErr)
	return validationErr
}

func TestNewPlaygroundAdapter(t *testing.T) {
	validator := NewPlaygroundAdapter()

	require.NotNil(t, validator)
	assert.Implements(t, (*validatorPlatform.StructValidator)(nil), validator)
}

func TestPlaygroundValidator_Validate_Success(t *testing.T) {
	validator := NewPlaygroundAdapter()

	err := validator.Validate(TestUser{Name: "John Doe", Email: "john@example.com", Age: 25})

	assert.NoError(t, err)
}

func TestPlaygroundValidator_Validate_EmptyStruct(t *testing.T) {
	validator := NewPlaygroundAdapter()

	err := validator.Validate(TestEmpty{})

	assert.NoError(t, err)
}

func TestPlaygroundValidator_Validate_RequiredFieldMissing(t *testing.T) {
	validator := NewPlaygroundAdapter()

	err := validator.Validate(TestUser{Email: "john@example.com", Age: 25})

	validationErr := requireSchemaError(t, err)
	fields := validationErr.Fields()
	require.Len(t, fields, 1)
	assert.Equal(t, "name", fields[0].Field)
	assert.Equal(t, "This field is required.", fields[0].Message)
	assert.Equal(t, "required", validationErr.Code)
}

func TestPlaygroundValidator_Validate_MultipleErrorsKeepOrder(t *testing.T) {
	validator := NewPlaygroundAdapter()

	err := validator.Validate(TestUser{Email: "invalid-email", Age: 121})

	validationErr := requireSchemaError(t, err)
	fields := validationErr.Fields()
	require.Len(t, fields, 3)
	assert.Equal(t, "name", fields[0].Field)
	assert.Equal(t, "email", fields[1].Field)
	assert.Equal(t, "This field failed on the 'email' tag.", fields[1].Message)
	assert.Equal(t, "age", fields[2].Field)
	assert.Equal(t, "Ensure this value is less than or equal to 120.", fields[2].Message)
}

func TestPlaygroundValidator_Validate_SkippedJSONNameFallsBackToStructName(t *testing.T) {
	validator := NewPlaygroundAdapter()

	err := validator.Validate(TestUser{Name: "John", Email: "john@example.com", Notes: "too long"})

	validationErr := requireSchemaError(t, err)
	fields := validationErr.Fields()
	require.Len(t, fields, 1)
	assert.Equal(t, "Ensure this field has at most 4 characters.", fields[0].Message)
}

func TestPlaygroundValidator_Validate_NonStructError(t *testing.T) {
	validator := NewPlaygroundAdapter()

	err := validator.Validate("not a struct")

	require.Error(t, err)
	var validationErr *validatorPlatform.ValidationError
	assert.False(t, errors.As(err, &validationErr))
}

func TestPlaygroundValidator_Validate_Definition(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(*definition.Definition)
		expectedField string
		expectedMsg   string
	}{
		{
			name:          "missing name",
			mutate:        func(d *definition.Definition) { d.Name = "" },
			expectedField: "name",
			expectedMsg:   "This field is required.",
		},
		{
			name:          "no fields",
			mutate:        func(d *definition.Definition) { d.Fields = nil },
			expectedField: "fields",
			expectedMsg:   "This field is required.",
		},
		{
			name:          "empty fields",
			mutate:        func(d *definition.Definition) { d.Fields = []definition.FieldDefinition{} },
			expectedField: "fields",
			expectedMsg:   "Ensure this field has at least 1 items.",
		},
		{
			name:          "unknown type",
			mutate:        func(d *definition.Definition) { d.Fields[0].Type = "decimal" },
			expectedField: "fields[0].type",
			expectedMsg:   "Value must be one of: boolean, string, integer, float, choice, multiple_choice, array, url, host, map, slug.",
		},
		{
			name: "negative min length",
			mutate: func(d *definition.Definition) {
				n := -1
				d.Fields[0].MinLength = &n
			},
			expectedField: "fields[0].min_length",
			expectedMsg:   "Ensure this value is greater than or equal to 0.",
		},
	}

	validator := NewPlaygroundAdapter()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := validDefinition()
			tt.mutate(def)

			err := validator.Validate(def)

			validationErr := requireSchemaError(t, err)
			fields := validationErr.Fields()
			require.NotEmpty(t, fields)
			assert.Equal(t, tt.expectedField, fields[0].Field)
			assert.Equal(t, tt.expectedMsg, fields[0].Message)
		})
	}
}

func TestPlaygroundValidator_Validate_ValidDefinition(t *testing.T) {
	validator := NewPlaygroundAdapter()

	assert.NoError(t, validator.Validate(validDefinition()))
}

func BenchmarkPlaygroundValidator_Validate_Success(b *testing.B) {
	validator := NewPlaygroundAdapter()
	def := validDefinition()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = validator.Validate(def)
	}
}

func BenchmarkPlaygroundValidator_Validate_WithErrors(b *testing.B) {
	validator := NewPlaygroundAdapter()
	user := TestUser{Email: "invalid-email", Age: 25}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = validator.Validate(user)
	}
}
