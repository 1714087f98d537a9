package validator

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"appointment-editor/internal/domain/entity"

	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()

	// Report fields by their JSON names, matching what clients send
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	v.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
		_, err := entity.ParseClockTime(fl.Field().String())
		return err == nil
	})
	v.RegisterValidation("date", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(entity.DraftDateLayout, fl.Field().String())
		return err == nil
	})

	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// ValidateVar checks a single value against a tag expression
func (cv *CustomValidator) ValidateVar(value interface{}, tag string) error {
	return cv.validator.Var(value, tag)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, e := range validationErrors {
			errs[e.Field()] = message(e.Field(), e)
		}
	}

	return errs
}

// FormatVarErrors reports a ValidateVar failure under name
func (cv *CustomValidator) FormatVarErrors(name string, err error) map[string]string {
	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, e := range validationErrors {
			errs[name] = message(name, e)
		}
	}

	return errs
}

func message(field string, e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return field + " is required"
	case "uuid":
		return field + " must be a valid UUID"
	case "oneof":
		return field + " must be one of: " + e.Param()
	case "clock":
		return field + " must be a time of day like 09:30 or 9:30 am"
	case "date":
		return field + " must be a date like 2019-10-11"
	case "min":
		return field + " must be at least " + e.Param()
	case "max":
		return field + " must be at most " + e.Param()
	case "gte":
		return field + " must be greater than or equal to " + e.Param()
	case "lte":
		return field + " must be less than or equal to " + e.Param()
	default:
		return field + " is invalid"
	}
}
