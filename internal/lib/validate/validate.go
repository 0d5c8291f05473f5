// Package validate configures go-playground/validator for request payloads and
// turns its errors into apperr.ValidationError values naming the first violation.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/tutor-marketplace/internal/lib/apperr"
	"github.com/magabrotheeeer/tutor-marketplace/internal/models"
)

// New returns a validator that reports fields by their JSON names.
func New() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	// oneof splits on spaces, curriculum names contain them.
	_ = v.RegisterValidation("curriculum", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case models.CurriculumGES, models.CurriculumBritish:
			return true
		}
		return false
	})
	// max counts runes; bcrypt rejects passwords longer than 72 bytes.
	_ = v.RegisterValidation("maxbytes", func(fl validator.FieldLevel) bool {
		limit, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		return len(fl.Field().String()) <= limit
	})
	return v
}

// First converts the result of validator.Struct into an *apperr.ValidationError
// describing the first violation. Non-validation errors are returned unchanged.
func First(err error) error {
	if err == nil {
		return nil
	}
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return err
	}
	fe := errs[0]
	return &apperr.ValidationError{Field: fe.Field(), Message: Message(fe)}
}

// Message renders a single field violation.
func Message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.ActualTag() {
	case "required":
		return fmt.Sprintf("field %s is a required field", field)
	case "required_without":
		return fmt.Sprintf("field %s is required when %s is missing", field, lowerFirst(fe.Param()))
	case "email":
		return fmt.Sprintf("field %s must be a valid email", field)
	case "min":
		return fmt.Sprintf("field %s must be at least %s long", field, fe.Param())
	case "max":
		return fmt.Sprintf("field %s must be at most %s long", field, fe.Param())
	case "maxbytes":
		return fmt.Sprintf("field %s must be at most %s bytes long", field, fe.Param())
	case "gte":
		return fmt.Sprintf("field %s must be greater than or equal to %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("field %s must be less than or equal to %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("field %s must be one of [%s]", field, fe.Param())
	case "curriculum":
		return fmt.Sprintf("field %s must be one of [%s, %s]", field, models.CurriculumGES, models.CurriculumBritish)
	case "uuid":
		return fmt.Sprintf("field %s can contain only uuid", field)
	case "numeric":
		return fmt.Sprintf("field %s can contain only numbers", field)
	case "datetime":
		return fmt.Sprintf("field %s must match the format %s", field, fe.Param())
	default:
		return fmt.Sprintf("field %s is not valid", field)
	}
}

// required_without params name the Go field; replies use JSON names.
func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
