package utils

import (
	"regexp"
	"time"

	"sonrisitas-client/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("dni", validateDNI)
	validate.RegisterValidation("fecha", validateFechaNacimiento)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

var dniRegex = regexp.MustCompile(`^\d{7,9}$`)

func validateDNI(fl validator.FieldLevel) bool {
	return dniRegex.MatchString(fl.Field().String())
}

// Birth dates arrive normalized to YYYY-MM-DD and can never be in the future.
func validateFechaNacimiento(fl validator.FieldLevel) bool {
	fecha, err := time.Parse(constvars.DateLayoutFechaNacimiento, fl.Field().String())
	if err != nil {
		return false
	}
	return !fecha.After(time.Now())
}
