package utils

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// NewValidator returns a validator with the custom tags used by request models
func NewValidator() *validator.Validate {
	validate := validator.New()
	_ = validate.RegisterValidation("amount", func(fl validator.FieldLevel) bool {
		return IsValidAmount(fl.Field().String())
	})
	_ = validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return validate
}
