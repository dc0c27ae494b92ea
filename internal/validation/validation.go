// Package validation holds the struct validator shared by the dataset and
// config types.
package validation

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Struct validates s against its `validate` tags.
func Struct(s any) error { return validate.Struct(s) }

// RegisterStructValidation adds a cross-field rule for the given types.
// Call it from package init only; the validator is not safe to configure
// concurrently.
func RegisterStructValidation(fn validator.StructLevelFunc, types ...any) {
	validate.RegisterStructValidation(fn, types...)
}

// First returns the first field error in err, if err came from Struct.
func First(err error) (validator.FieldError, bool) {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return nil, false
	}
	return errs[0], true
}
