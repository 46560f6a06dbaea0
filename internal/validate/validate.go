// Package validate builds the request validator shared by all handlers.
//
// The validator is built once in main and passed to handler factories.
// A configured *validator.Validate is safe for concurrent use.
package validate

import (
	"reflect"
	"strings"

	"github.com/aanand-mishra/gpa-api/internal/gpa"
	"github.com/go-playground/validator/v10"
)

// GradeTag is the struct-tag name that checks a string against the grade set.
const GradeTag = "grade"

// New returns a validator with the custom "grade" rule registered and
// field errors reported under their JSON names.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Field errors use the json tag name ("course_code") rather than the
	// Go field name ("CourseCode"), so clients see the keys they sent.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	// RegisterValidation only fails on an empty tag or a nil func.
	if err := v.RegisterValidation(GradeTag, validGrade); err != nil {
		panic(err)
	}

	return v
}

func validGrade(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	return gpa.IsValidGrade(fl.Field().String())
}
