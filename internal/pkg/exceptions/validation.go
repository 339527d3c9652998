package exceptions

import (
	"strings"

	"sonrisitas-client/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

func FormatFirstValidationError(err error) string {
	if err == nil {
		return constvars.ErrClientCannotProcessRequest
	}

	if validationErrors, ok := err.(validator.ValidationErrors); ok && len(validationErrors) > 0 {
		firstErr := validationErrors[0]
		fieldName := strings.ToLower(firstErr.Field())
		switch firstErr.Tag() {
		case "required":
			return "El campo " + fieldName + " es obligatorio"
		case "email":
			return "El email no es válido"
		case "dni":
			return "El DNI no es válido"
		case "fecha":
			return "La fecha no es válida"
		default:
			return "El campo " + fieldName + " no es válido"
		}
	}
	return constvars.ErrClientCannotProcessRequest
}
