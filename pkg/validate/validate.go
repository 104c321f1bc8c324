// Package validate centraliza la validación estructural de los DTOs
// (tags `validate:`). Garantiza que toda entrada numérica llega
// pre-validada al motor de cálculo; los motores asumen entrada válida.
package validate

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var v = validator.New()

// Struct valida un DTO según sus tags `validate:`.
func Struct(s interface{}) error {
	return v.Struct(s)
}

// Explain convierte los errores de validación en un mapa campo→regla legible
// para la respuesta HTTP.
func Explain(err error) map[string]string {
	out := make(map[string]string)
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		out["_"] = err.Error()
		return out
	}
	for _, ve := range verrs {
		out[strings.ToLower(ve.Field())] = ve.Tag()
	}
	return out
}
