package dto

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Shape only; casing is canonicalized by domain.NormalizeCurrencyCode in the
// services, so "usd" and "USD" name the same registry entry.
var currencyCodePattern = regexp.MustCompile(`^[A-Za-z]{3,4}$`)

// RegisterCustomValidators installs the binding rules used by the DTOs on
// gin's validator engine. Must be called once before routes are served.
func RegisterCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("currencycode", func(fl validator.FieldLevel) bool {
		return currencyCodePattern.MatchString(fl.Field().String())
	})
}
