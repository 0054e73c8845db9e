package definition

import (
	"errors"
	"fmt"
)

var (
	ErrDefinitionNotFound = errors.New("schema definition not found")
	ErrInvalidDefinition  = errors.New("invalid schema definition")
	ErrUnknownFieldType   = errors.New("unknown field type")
	ErrUnknownTransform   = errors.New("unknown transform")
)

type AlreadyExistsError struct {
	Name string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("schema definition '%s' already exists", e.Name)
}

const (
	TypeBoolean        = "boolean"
	TypeString         = "string"
	TypeInteger        = "integer"
	TypeFloat          = "float"
	TypeChoice         = "choice"
	TypeMultipleChoice = "multiple_choice"
	TypeArray          = "array"
	TypeURL            = "url"
	TypeHost           = "host"
	TypeMap            = "map"
	TypeSlug           = "slug"
)

// Definition is the serializable form of a schema.
type Definition struct {
	Name        string            `json:"name" mapstructure:"name" validate:"required,max=128"`
	Description string            `json:"description,omitempty" mapstructure:"description" validate:"max=1024"`
	StopOnError bool              `json:"stop_on_error,omitempty" mapstructure:"stop_on_error"`
	Fields      []FieldDefinition `json:"fields" mapstructure:"fields" validate:"required,min=1,dive"`
}

func (d *Definition) GetID() string {
	return d.Name
}

// FieldDefinition describes one field. Items is the child definition of array
// and multiple_choice fields; its Name is ignored.
type FieldDefinition struct {
	Name          string            `json:"name,omitempty" mapstructure:"name" validate:"max=128"`
	Type          string            `json:"type" mapstructure:"type" validate:"required,oneof=boolean string integer float choice multiple_choice array url host map slug"`
	Required      *bool             `json:"required,omitempty" mapstructure:"required"`
	Default       any               `json:"default,omitempty" mapstructure:"default"`
	MinLength     *int              `json:"min_length,omitempty" mapstructure:"min_length" validate:"omitempty,min=0"`
	MaxLength     *int              `json:"max_length,omitempty" mapstructure:"max_length" validate:"omitempty,min=0"`
	MinValue      *float64          `json:"min_value,omitempty" mapstructure:"min_value"`
	MaxValue      *float64          `json:"max_value,omitempty" mapstructure:"max_value"`
	Choices       []any             `json:"choices,omitempty" mapstructure:"choices"`
	Items         *FieldDefinition  `json:"items,omitempty" mapstructure:"items"`
	Validators    []string          `json:"validators,omitempty" mapstructure:"validators"`
	Hook          string            `json:"hook,omitempty" mapstructure:"hook"`
	ErrorMessages map[string]string `json:"error_messages,omitempty" mapstructure:"error_messages"`
}

func (f *FieldDefinition) IsRequired() bool {
	return f.Required == nil || *f.Required
}
