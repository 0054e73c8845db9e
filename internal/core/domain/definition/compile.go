package definition

import (
	"fmt"

	"gateguard/internal/platform/validator"
)

// Compile turns a definition into a ready to use schema. The definition is
// expected to have passed Service.CheckDefinition.
func Compile(def *Definition) (*validator.Schema, error) {
	decls := make([]validator.Declaration, 0, len(def.Fields))
	for i := range def.Fields {
		fd := &def.Fields[i]
		field, err := compileField(fd)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", fd.Name, err)
		}

		decl := validator.Declare(fd.Name, field)
		if fd.Hook != "" {
			fn, err := lookupTransform(fd.Hook)
			if err != nil {
				return nil, fmt.Errorf("field %s hook: %w", fd.Name, err)
			}
			decl = decl.WithHook(validator.Hook(fn))
		}
		decls = append(decls, decl)
	}
	return validator.NewSchema(def.Name, decls...), nil
}

func compileField(fd *FieldDefinition) (*validator.Field, error) {
	opts, err := fieldOptions(fd)
	if err != nil {
		return nil, err
	}

	switch fd.Type {
	case TypeBoolean:
		return validator.Boolean(opts...), nil
	case TypeString:
		return validator.String(opts...), nil
	case TypeInteger:
		return validator.Integer(opts...), nil
	case TypeFloat:
		return validator.Float(opts...), nil
	case TypeChoice:
		return validator.Choice(fd.Choices, opts...), nil
	case TypeMultipleChoice:
		return validator.MultipleChoice(fd.Choices, opts...), nil
	case TypeArray:
		return validator.Array(opts...), nil
	case TypeURL:
		return validator.URL(opts...), nil
	case TypeHost:
		return validator.Host(opts...), nil
	case TypeMap:
		return validator.Map(opts...), nil
	case TypeSlug:
		return validator.Slug(opts...), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFieldType, fd.Type)
	}
}

func fieldOptions(fd *FieldDefinition) ([]validator.Option, error) {
	var opts []validator.Option

	if !fd.IsRequired() {
		opts = append(opts, validator.Optional())
	}
	if fd.Default != nil {
		opts = append(opts, validator.Default(fd.Default))
	}
	if fd.MinLength != nil {
		opts = append(opts, validator.MinLength(*fd.MinLength))
	}
	if fd.MaxLength != nil {
		opts = append(opts, validator.MaxLength(*fd.MaxLength))
	}
	if fd.MinValue != nil {
		opts = append(opts, validator.MinValue(*fd.MinValue))
	}
	if fd.MaxValue != nil {
		opts = append(opts, validator.MaxValue(*fd.MaxValue))
	}
	if len(fd.ErrorMessages) > 0 {
		opts = append(opts, validator.ErrorMessages(fd.ErrorMessages))
	}

	if fd.Items != nil {
		child, err := compileField(fd.Items)
		if err != nil {
			return nil, fmt.Errorf("items: %w", err)
		}
		opts = append(opts, validator.Child(child))
	}

	if len(fd.Validators) > 0 {
		fns := make([]validator.Func, 0, len(fd.Validators))
		for _, name := range fd.Validators {
			fn, err := lookupTransform(name)
			if err != nil {
				return nil, err
			}
			fns = append(fns, fn)
		}
		opts = append(opts, validator.Validators(fns...))
	}

	return opts, nil
}
