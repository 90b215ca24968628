package validation

import "github.com/go-playground/validator/v10"

// validate is the shared validator instance. validator.Validate caches
// struct metadata, so a single instance is reused process-wide.
var validate = validator.New()

// Struct runs tag-based validation on s. Request types implement
// Validatable by delegating here, adding CustomValidationErrors for
// rules tags cannot express.
func Struct(s any) error {
	return validate.Struct(s)
}
