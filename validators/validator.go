package validators

import (
	"github.com/go-playground/validator/v10"
)

// Validator implements echo.Validator over go-playground/validator.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates the request validator registered on the Echo instance
func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate checks a bound request struct against its validation tags
func (v *Validator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}
