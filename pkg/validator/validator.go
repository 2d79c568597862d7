package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON names so messages match the request payload
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &CustomValidator{
		validator: v,
	}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// HasMissingFields reports whether err contains at least one failed "required" rule
func (cv *CustomValidator) HasMissingFields(err error) bool {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			if e.Tag() == "required" {
				return true
			}
		}
	}
	return false
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Namespace()
			switch e.Tag() {
			case "required":
				errors[field] = e.Field() + " is required"
			case "min":
				errors[field] = e.Field() + " must be at least " + e.Param()
			case "max":
				errors[field] = e.Field() + " must be at most " + e.Param()
			case "gt":
				errors[field] = e.Field() + " must be greater than " + e.Param()
			case "gte":
				errors[field] = e.Field() + " must be greater than or equal to " + e.Param()
			case "lte":
				errors[field] = e.Field() + " must be less than or equal to " + e.Param()
			default:
				errors[field] = e.Field() + " is invalid"
			}
		}
	}

	return errors
}
