package handlers

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var panPattern = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)

// RegisterValidations installs the custom binding validations used by the
// request DTOs. Must run before the engine starts serving.
func RegisterValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("panformat", func(fl validator.FieldLevel) bool {
		return panPattern.MatchString(fl.Field().String())
	})
}
