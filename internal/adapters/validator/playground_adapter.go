package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	validatorPlatform "gateguard/internal/platform/validator"
)

type playgroundValidator struct {
	validate *validator.Validate
}

// NewPlaygroundAdapter reports struct tag violations as a schema-level
// ValidationError keyed by the JSON path of the offending field.
func NewPlaygroundAdapter() validatorPlatform.StructValidator {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	return &playgroundValidator{
		validate: validate,
	}
}

func (v *playgroundValidator) Validate(s interface{}) error {
	if err := v.validate.Struct(s); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			outErrors := make([]validatorPlatform.FieldError, len(validationErrors))
			for i, fe := range validationErrors {
				outErrors[i] = validatorPlatform.FieldError{
					Field:   fieldPath(fe),
					Message: getValidationErrorMessage(fe),
				}
			}
			return validatorPlatform.NewSchemaError(outErrors, validationErrors[0].Tag())
		}
		return err
	}
	return nil
}

// fieldPath drops the root struct name from the namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func getValidationErrorMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required."
	case "oneof":
		return fmt.Sprintf("Value must be one of: %s.", strings.Join(strings.Fields(e.Param()), ", "))
	case "min":
		if unit := lengthUnit(e.Kind()); unit != "" {
			return fmt.Sprintf("Ensure this field has at least %s %s.", e.Param(), unit)
		}
		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", e.Param())
	case "max":
		if unit := lengthUnit(e.Kind()); unit != "" {
			return fmt.Sprintf("Ensure this field has at most %s %s.", e.Param(), unit)
		}
		return fmt.Sprintf("Ensure this value is less than or equal to %s.", e.Param())
	default:
		return fmt.Sprintf("This field failed on the '%s' tag.", e.Tag())
	}
}

func lengthUnit(kind reflect.Kind) string {
	switch kind {
	case reflect.String:
		return "characters"
	case reflect.Slice, reflect.Array, reflect.Map:
		return "items"
	default:
		return ""
	}
}
