package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is the singleton validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report fields by their JSON names
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
}

// Error wraps validation errors with structured details
type Error struct {
	Message string
	Fields  map[string]string
}

// Error implements the error interface
func (e *Error) Error() string {
	return e.Message
}

// NewError creates a single-field validation error
func NewError(field, message string) *Error {
	return &Error{
		Message: "validation failed",
		Fields:  map[string]string{field: message},
	}
}

// Struct validates a struct using go-playground/validator
func Struct(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			return fromValidator(validationErrors)
		}
		return err
	}
	return nil
}

func fromValidator(errs validator.ValidationErrors) *Error {
	fields := make(map[string]string, len(errs))
	for _, err := range errs {
		field := err.Field()

		switch err.Tag() {
		case "required":
			fields[field] = fmt.Sprintf("%s is required", field)
		case "email":
			fields[field] = fmt.Sprintf("%s must be a valid email", field)
		case "gt":
			fields[field] = fmt.Sprintf("%s must be greater than %s", field, err.Param())
		case "gte":
			fields[field] = fmt.Sprintf("%s must be at least %s", field, err.Param())
		case "min":
			fields[field] = fmt.Sprintf("%s must be at least %s characters", field, err.Param())
		case "max":
			fields[field] = fmt.Sprintf("%s must be at most %s characters", field, err.Param())
		case "oneof":
			fields[field] = fmt.Sprintf("%s must be one of: %s", field, err.Param())
		default:
			fields[field] = fmt.Sprintf("%s is invalid", field)
		}
	}

	return &Error{
		Message: "validation failed",
		Fields:  fields,
	}
}
