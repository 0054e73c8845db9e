package definition

import (
	"fmt"

	"gateguard/internal/platform/validator"
)

var nameField = validator.Slug(validator.MaxLength(128))

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// CheckDefinition enforces the rules struct tags cannot express. Every
// returned error wraps ErrInvalidDefinition.
func (s *Service) CheckDefinition(def *Definition) error {
	if _, err := nameField.Validate(def.Name); err != nil {
		return fmt.Errorf("%w: name %q: %v", ErrInvalidDefinition, def.Name, err)
	}

	seen := make(map[string]struct{}, len(def.Fields))
	for i := range def.Fields {
		fd := &def.Fields[i]
		if fd.Name == "" {
			return fmt.Errorf("%w: field %d has no name", ErrInvalidDefinition, i)
		}
		if _, dup := seen[fd.Name]; dup {
			return fmt.Errorf("%w: duplicate field %q", ErrInvalidDefinition, fd.Name)
		}
		seen[fd.Name] = struct{}{}

		if err := checkField(fd); err != nil {
			return fmt.Errorf("%w: field %q: %v", ErrInvalidDefinition, fd.Name, err)
		}
		if fd.Hook != "" {
			if _, err := lookupTransform(fd.Hook); err != nil {
				return fmt.Errorf("%w: field %q hook: %v", ErrInvalidDefinition, fd.Name, err)
			}
		}
	}
	return nil
}

func checkField(fd *FieldDefinition) error {
	switch fd.Type {
	case TypeChoice, TypeMultipleChoice:
		if len(fd.Choices) == 0 {
			return fmt.Errorf("type %s needs choices", fd.Type)
		}
	default:
		if len(fd.Choices) > 0 {
			return fmt.Errorf("type %s does not take choices", fd.Type)
		}
	}

	if fd.Items != nil {
		if fd.Type != TypeArray && fd.Type != TypeMultipleChoice {
			return fmt.Errorf("type %s does not take items", fd.Type)
		}
		if fd.Items.Hook != "" {
			return fmt.Errorf("items do not take a hook, use validators")
		}
		if err := checkField(fd.Items); err != nil {
			return fmt.Errorf("items: %v", err)
		}
	}

	if fd.MinLength != nil && fd.MaxLength != nil && *fd.MinLength > *fd.MaxLength {
		return fmt.Errorf("min_length %d exceeds max_length %d", *fd.MinLength, *fd.MaxLength)
	}
	if fd.MinValue != nil && fd.MaxValue != nil && *fd.MinValue > *fd.MaxValue {
		return fmt.Errorf("min_value %v exceeds max_value %v", *fd.MinValue, *fd.MaxValue)
	}

	for _, name := range fd.Validators {
		if _, err := lookupTransform(name); err != nil {
			return err
		}
	}

	if _, err := compileField(fd); err != nil {
		return err
	}
	return nil
}
