package handlers

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Code prefixes are at most 4 uppercase letters. Empty is valid: the flagship
// company issues bare {YY}{NNNN} codes.
var codePrefixPattern = regexp.MustCompile(`^[A-Z]{0,4}$`)

func validateCodePrefix(fl validator.FieldLevel) bool {
	return codePrefixPattern.MatchString(fl.Field().String())
}

// registerCustomValidators hooks domain-specific validations into gin's
// binding engine.
func registerCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("codeprefix", validateCodePrefix)
	}
}
